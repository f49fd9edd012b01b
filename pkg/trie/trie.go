/*
Package trie implements the prefix tree used for bounded edit-distance
candidate search.

The trie is a derived, disposable artifact: built once from a finalized word
set (typically the dictionary's deduplicated words), read-only afterwards,
and simply rebuilt if the backing set ever changes. It keeps no reference to
the dictionary it came from.
*/
package trie

import "sort"

type node struct {
	children map[rune]*node
	terminal bool
}

func newNode() *node {
	return &node{children: make(map[rune]*node)}
}

// Trie is a rooted tree with one rune per edge; terminal nodes mark complete
// words. Write-once, read-many per build.
type Trie struct {
	root  *node
	words int
}

// New creates an empty trie.
func New() *Trie {
	return &Trie{root: newNode()}
}

// Build constructs a trie from a word set. Construction cost is linear in
// the total rune count.
func Build(words []string) *Trie {
	t := New()
	for _, w := range words {
		t.Add(w)
	}
	return t
}

// Add inserts one word, creating nodes as needed.
func (t *Trie) Add(word string) {
	n := t.root
	for _, r := range word {
		child, ok := n.children[r]
		if !ok {
			child = newNode()
			n.children[r] = child
		}
		n = child
	}
	if !n.terminal {
		n.terminal = true
		t.words++
	}
}

// Contains reports exact membership in O(len(word)).
func (t *Trie) Contains(word string) bool {
	n := t.root
	for _, r := range word {
		child, ok := n.children[r]
		if !ok {
			return false
		}
		n = child
	}
	return n.terminal
}

// Size returns the number of distinct words in the trie.
func (t *Trie) Size() int {
	return t.words
}

// Match is one bounded-search hit with its exact Levenshtein distance from
// the query.
type Match struct {
	Word     string
	Distance int
}

// WithinDistance returns every trie word within Levenshtein distance k of
// the query, sorted by ascending distance then lexically.
//
// Each visited node carries the dynamic-programming row between the query
// and the path so far; a branch is abandoned the moment every entry in its
// row exceeds k, so the walk touches a small fraction of the trie instead of
// scoring the whole vocabulary.
func (t *Trie) WithinDistance(query string, k int) []Match {
	if k < 0 {
		return nil
	}
	q := []rune(query)

	row := make([]int, len(q)+1)
	for j := range row {
		row[j] = j
	}

	var matches []Match
	if t.root.terminal && row[len(q)] <= k {
		matches = append(matches, Match{Word: "", Distance: row[len(q)]})
	}
	path := make([]rune, 0, len(q)+k)
	for r, child := range t.root.children {
		matches = searchNode(child, append(path, r), r, q, row, k, matches)
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Distance != matches[j].Distance {
			return matches[i].Distance < matches[j].Distance
		}
		return matches[i].Word < matches[j].Word
	})
	return matches
}

func searchNode(n *node, path []rune, edge rune, q []rune, prev []int, k int, matches []Match) []Match {
	row := make([]int, len(q)+1)
	row[0] = prev[0] + 1
	minDist := row[0]
	for j := 1; j <= len(q); j++ {
		insert := row[j-1] + 1
		remove := prev[j] + 1
		replace := prev[j-1]
		if q[j-1] != edge {
			replace++
		}
		row[j] = min(insert, remove, replace)
		if row[j] < minDist {
			minDist = row[j]
		}
	}

	if n.terminal && row[len(q)] <= k {
		matches = append(matches, Match{Word: string(path), Distance: row[len(q)]})
	}
	if minDist > k {
		return matches
	}
	for r, child := range n.children {
		matches = searchNode(child, append(path, r), r, q, row, k, matches)
	}
	return matches
}
