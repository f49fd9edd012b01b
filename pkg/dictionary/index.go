/*
Package dictionary implements the multi-index word store backing the
spellchecker.

A Dictionary owns the canonical ordered list of word entries plus five
derived lookup structures: exact text, case-folded text, prefix, suffix and
affix flag. Entries are append-only; nothing is ever removed or renumbered,
so a built dictionary is safe for concurrent readers once loading finishes.

Duplicate word texts are legal - each insertion gets its own entry and index,
which lets loaders keep metadata variants (alternate capitalizations, source
annotations) side by side. Lookup deliberately surfaces only the earliest
entry; later duplicates are reachable through Each or EntryAt.
*/
package dictionary

import (
	"math/rand"
	"regexp"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/lexhart/spellserve/internal/utils"
)

// Dictionary is the in-memory indexed word store. Build it fully before
// sharing it: reads need no locking, but AddWord is not safe to interleave
// with queries from other goroutines.
type Dictionary struct {
	entries []*WordEntry

	exact  map[string][]int
	folded map[string][]int

	// prefixes keys words by their own text, suffixes by their reversal,
	// so both directions ride on patricia subtree visits.
	prefixes *patricia.Trie
	suffixes *patricia.Trie

	// flags maps an affix flag token to the word texts carrying it.
	// Populated by the affix engine during load, never by AddWord.
	flags map[string][]string
}

// New creates an empty dictionary.
func New() *Dictionary {
	return &Dictionary{
		exact:    make(map[string][]int),
		folded:   make(map[string][]int),
		prefixes: patricia.NewTrie(),
		suffixes: patricia.NewTrie(),
		flags:    make(map[string][]string),
	}
}

// AddWord appends a word entry, assigns the next sequential index and
// updates the derived indexes. It never fails; an empty word is legal but
// contributes nothing to the prefix and suffix tries.
func (d *Dictionary) AddWord(word string, meta Metadata) *WordEntry {
	entry := &WordEntry{
		Word:  word,
		Index: len(d.entries),
		Meta:  meta,
	}
	d.entries = append(d.entries, entry)

	d.exact[word] = append(d.exact[word], entry.Index)
	lower := utils.FoldCase(word)
	d.folded[lower] = append(d.folded[lower], entry.Index)

	if word != "" {
		d.indexInto(d.prefixes, word, entry.Index)
		d.indexInto(d.suffixes, utils.Reverse(word), entry.Index)
	}
	return entry
}

func (d *Dictionary) indexInto(trie *patricia.Trie, key string, index int) {
	prefix := patricia.Prefix(key)
	if item := trie.Get(prefix); item != nil {
		trie.Set(prefix, append(item.([]int), index))
		return
	}
	trie.Set(prefix, []int{index})
}

// AddWords appends plain words with no metadata.
func (d *Dictionary) AddWords(words []string) {
	for _, w := range words {
		d.AddWord(w, nil)
	}
}

// Size returns the number of entries, duplicates included.
func (d *Dictionary) Size() int {
	return len(d.entries)
}

// HasWord reports exact-text membership.
func (d *Dictionary) HasWord(word string) bool {
	_, ok := d.exact[word]
	return ok
}

// HasWordFold reports case-folded membership.
func (d *Dictionary) HasWordFold(word string) bool {
	_, ok := d.folded[utils.FoldCase(word)]
	return ok
}

// Lookup returns the first-inserted entry with the exact word text.
// First-match-wins is intentional: duplicate texts exist for metadata
// variants, and the earliest entry is the canonical one. Later duplicates
// are reachable via Each or EntryAt only.
func (d *Dictionary) Lookup(word string) (*WordEntry, bool) {
	indices, ok := d.exact[word]
	if !ok {
		return nil, false
	}
	return d.entries[indices[0]], true
}

// LookupFold is Lookup against the case-folded index.
func (d *Dictionary) LookupFold(word string) (*WordEntry, bool) {
	indices, ok := d.folded[utils.FoldCase(word)]
	if !ok {
		return nil, false
	}
	return d.entries[indices[0]], true
}

// EntryAt returns the entry at insertion position i.
func (d *Dictionary) EntryAt(i int) (*WordEntry, bool) {
	if i < 0 || i >= len(d.entries) {
		return nil, false
	}
	return d.entries[i], true
}

// Each visits every entry in insertion order.
func (d *Dictionary) Each(fn func(i int, entry *WordEntry)) {
	for i, e := range d.entries {
		fn(i, e)
	}
}

// AllWords returns every word text in insertion order, duplicates included.
func (d *Dictionary) AllWords() []string {
	words := make([]string, len(d.entries))
	for i, e := range d.entries {
		words[i] = e.Word
	}
	return words
}

// UniqueWords returns the deduplicated word set in first-insertion order.
// This is the feed for trie construction.
func (d *Dictionary) UniqueWords() []string {
	seen := make(map[string]struct{}, len(d.entries))
	var words []string
	for _, e := range d.entries {
		if _, ok := seen[e.Word]; ok {
			continue
		}
		seen[e.Word] = struct{}{}
		words = append(words, e.Word)
	}
	return words
}

// TagFlag records that word carries the given affix flag, updating both the
// flag index and every entry sharing that text. Returns false when the word
// is not in the dictionary.
func (d *Dictionary) TagFlag(flag, word string) bool {
	indices, ok := d.exact[word]
	if !ok {
		log.Debugf("flag %q references unknown word %q", flag, word)
		return false
	}
	d.flags[flag] = append(d.flags[flag], word)
	for _, i := range indices {
		if !d.entries[i].HasFlag(flag) {
			d.entries[i].Flags = append(d.entries[i].Flags, flag)
		}
	}
	return true
}

// WordsWithFlag returns the word texts tagged with flag.
func (d *Dictionary) WordsWithFlag(flag string) []string {
	return d.flags[flag]
}

// HasFlag reports whether any entry with the given text carries flag.
func (d *Dictionary) HasFlag(word, flag string) bool {
	indices, ok := d.exact[word]
	if !ok {
		return false
	}
	for _, i := range indices {
		if d.entries[i].HasFlag(flag) {
			return true
		}
	}
	return false
}

// FindByPrefix returns the words having p as a proper prefix (the word
// itself is excluded; a full-length match is not a prefix). Case-sensitive
// queries ride the patricia index and may return the same text more than
// once when duplicate entries share it. Case-insensitive queries fall back
// to a linear scan: no folded prefix index is kept, trading query cost for
// a bounded index count.
func (d *Dictionary) FindByPrefix(p string, foldCase bool) []string {
	if p == "" {
		return nil
	}
	if foldCase {
		var words []string
		for _, e := range d.entries {
			if utils.HasPrefixIgnoreCase(e.Word, p) && !strings.EqualFold(e.Word, p) {
				words = append(words, e.Word)
			}
		}
		return words
	}

	var words []string
	_ = d.prefixes.VisitSubtree(patricia.Prefix(p), func(key patricia.Prefix, item patricia.Item) error {
		word := string(key)
		if word == p {
			return nil
		}
		for range item.([]int) {
			words = append(words, word)
		}
		return nil
	})
	return words
}

// FindBySuffix mirrors FindByPrefix over the reversed-key suffix index.
func (d *Dictionary) FindBySuffix(s string, foldCase bool) []string {
	if s == "" {
		return nil
	}
	if foldCase {
		var words []string
		for _, e := range d.entries {
			if utils.HasSuffixIgnoreCase(e.Word, s) && !strings.EqualFold(e.Word, s) {
				words = append(words, e.Word)
			}
		}
		return words
	}

	var words []string
	_ = d.suffixes.VisitSubtree(patricia.Prefix(utils.Reverse(s)), func(key patricia.Prefix, item patricia.Item) error {
		reversed := string(key)
		word := utils.Reverse(reversed)
		if word == s {
			return nil
		}
		for range item.([]int) {
			words = append(words, word)
		}
		return nil
	})
	return words
}

// FindByPattern returns the words matching the anchored regular expression
// pattern. Linear scan; pattern queries are diagnostics, not hot path.
func (d *Dictionary) FindByPattern(pattern string) ([]string, error) {
	re, err := regexp.Compile("^(?:" + pattern + ")$")
	if err != nil {
		return nil, err
	}
	var words []string
	for _, e := range d.entries {
		if re.MatchString(e.Word) {
			words = append(words, e.Word)
		}
	}
	return words, nil
}

// FindByLength returns the words of exactly n runes.
func (d *Dictionary) FindByLength(n int) ([]string, error) {
	return d.FindByLengthRange(n, n)
}

// FindByLengthRange returns the words whose rune count falls in [min, max].
func (d *Dictionary) FindByLengthRange(min, max int) ([]string, error) {
	if min < 0 || max < min {
		return nil, &OptionError{Option: "length range", Detail: "bounds must satisfy 0 <= min <= max"}
	}
	var words []string
	for _, e := range d.entries {
		if n := len([]rune(e.Word)); n >= min && n <= max {
			words = append(words, e.Word)
		}
	}
	return words, nil
}

// RandomWords returns a uniform sample without replacement of
// min(count, size) words. An empty dictionary yields an empty result.
func (d *Dictionary) RandomWords(count int) []string {
	if count <= 0 || len(d.entries) == 0 {
		return nil
	}
	if count > len(d.entries) {
		count = len(d.entries)
	}
	perm := rand.Perm(len(d.entries))
	words := make([]string, count)
	for i := 0; i < count; i++ {
		words[i] = d.entries[perm[i]].Word
	}
	return words
}
