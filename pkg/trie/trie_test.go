package trie

import (
	"math/rand"
	"testing"

	"github.com/lexhart/spellserve/internal/utils"
)

func TestContains(t *testing.T) {
	words := []string{"color", "colour", "the", "there", "a"}
	tr := Build(words)

	for _, w := range words {
		if !tr.Contains(w) {
			t.Errorf("Contains(%q) = false for an inserted word", w)
		}
	}
	for _, w := range []string{"colo", "colors", "th", "b", ""} {
		if tr.Contains(w) {
			t.Errorf("Contains(%q) = true for a non-word", w)
		}
	}
	if tr.Size() != len(words) {
		t.Errorf("Size() = %d, want %d", tr.Size(), len(words))
	}
}

func TestSizeIgnoresDuplicates(t *testing.T) {
	tr := Build([]string{"the", "the", "there"})
	if tr.Size() != 2 {
		t.Errorf("Size() = %d, want 2", tr.Size())
	}
}

func TestWithinDistanceBasics(t *testing.T) {
	tr := Build([]string{"color", "colour", "the", "there"})

	cases := []struct {
		query string
		k     int
		want  map[string]int
	}{
		{"color", 0, map[string]int{"color": 0}},
		{"collor", 2, map[string]int{"color": 1, "colour": 2}},
		{"ther", 1, map[string]int{"the": 1, "there": 1}},
		{"xyzzy", 1, map[string]int{}},
		{"color", -1, map[string]int{}},
	}
	for _, tc := range cases {
		got := tr.WithinDistance(tc.query, tc.k)
		if len(got) != len(tc.want) {
			t.Errorf("WithinDistance(%q, %d) = %v, want %v", tc.query, tc.k, got, tc.want)
			continue
		}
		for _, m := range got {
			if want, ok := tc.want[m.Word]; !ok || want != m.Distance {
				t.Errorf("WithinDistance(%q, %d) returned %v, want %v", tc.query, tc.k, m, tc.want)
			}
		}
	}
}

func TestWithinDistanceOrdering(t *testing.T) {
	tr := Build([]string{"cart", "card", "care", "car", "cat"})
	matches := tr.WithinDistance("carx", 2)
	for i := 1; i < len(matches); i++ {
		prev, curr := matches[i-1], matches[i]
		if prev.Distance > curr.Distance {
			t.Fatalf("matches out of distance order: %v", matches)
		}
		if prev.Distance == curr.Distance && prev.Word > curr.Word {
			t.Fatalf("ties out of lexical order: %v", matches)
		}
	}
}

// The bounded search must return exactly the brute-force Levenshtein scan
// restricted to distance <= k, for randomized word lists and k in {0,1,2}.
func TestWithinDistanceMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	alphabet := []rune("abc")

	randomWord := func(maxLen int) string {
		n := 1 + rng.Intn(maxLen)
		runes := make([]rune, n)
		for i := range runes {
			runes[i] = alphabet[rng.Intn(len(alphabet))]
		}
		return string(runes)
	}

	for round := 0; round < 5; round++ {
		words := make([]string, 60)
		for i := range words {
			words[i] = randomWord(6)
		}
		tr := Build(words)

		unique := make(map[string]struct{})
		for _, w := range words {
			unique[w] = struct{}{}
		}

		for q := 0; q < 20; q++ {
			query := randomWord(7)
			for k := 0; k <= 2; k++ {
				want := make(map[string]int)
				for w := range unique {
					if d := utils.Levenshtein(query, w); d <= k {
						want[w] = d
					}
				}

				got := tr.WithinDistance(query, k)
				if len(got) != len(want) {
					t.Fatalf("query %q k=%d: got %v, want %v", query, k, got, want)
				}
				for _, m := range got {
					if d, ok := want[m.Word]; !ok || d != m.Distance {
						t.Fatalf("query %q k=%d: got %v, want %v", query, k, m, want)
					}
				}
			}
		}
	}
}
