package suggest

import "sort"

// Source records where a candidate came from: a literal dictionary/trie hit
// or an affix-derived surface form.
type Source int

const (
	SourceDictionary Source = iota
	SourceAffix
)

func (s Source) String() string {
	if s == SourceAffix {
		return "affix-derived"
	}
	return "dictionary"
}

// Candidate is one correction proposal with its edit cost. Lower is better;
// costs need not be integral (case corrections and affix penalties are
// fractional so they interleave deterministically with edit distances).
type Candidate struct {
	Word   string
	Cost   float64
	Source Source
}

// Set is an ordered, deduplicated collection of candidates. Adding the same
// word twice keeps the cheaper cost. Not safe for concurrent use; a set
// lives for one query.
type Set struct {
	candidates []Candidate
	position   map[string]int
}

// NewSet creates an empty suggestion set.
func NewSet() *Set {
	return &Set{position: make(map[string]int)}
}

// Add inserts a candidate, deduplicating by word text and keeping the
// lowest cost seen.
func (s *Set) Add(c Candidate) {
	if i, ok := s.position[c.Word]; ok {
		if c.Cost < s.candidates[i].Cost {
			s.candidates[i] = c
		}
		return
	}
	s.position[c.Word] = len(s.candidates)
	s.candidates = append(s.candidates, c)
}

// Len returns the candidate count.
func (s *Set) Len() int {
	return len(s.candidates)
}

// Empty reports whether the set holds no candidates.
func (s *Set) Empty() bool {
	return len(s.candidates) == 0
}

// sort orders candidates by ascending cost, ties broken lexically.
func (s *Set) sort() {
	sort.Slice(s.candidates, func(i, j int) bool {
		if s.candidates[i].Cost != s.candidates[j].Cost {
			return s.candidates[i].Cost < s.candidates[j].Cost
		}
		return s.candidates[i].Word < s.candidates[j].Word
	})
	for i, c := range s.candidates {
		s.position[c.Word] = i
	}
}

// truncate caps the set at n candidates; n <= 0 leaves it unbounded.
func (s *Set) truncate(n int) {
	if n <= 0 || len(s.candidates) <= n {
		return
	}
	for _, c := range s.candidates[n:] {
		delete(s.position, c.Word)
	}
	s.candidates = s.candidates[:n]
}

// Candidates returns the ordered candidates.
func (s *Set) Candidates() []Candidate {
	return s.candidates
}

// Words returns just the ordered word strings, ready for display.
func (s *Set) Words() []string {
	words := make([]string, len(s.candidates))
	for i, c := range s.candidates {
		words[i] = c.Word
	}
	return words
}
