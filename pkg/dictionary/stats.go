package dictionary

import (
	"math"
	"unicode"
)

// Stats aggregates counts over the dictionary contents. Deterministic for a
// given dictionary; meant for diagnostics and telemetry consumers.
type Stats struct {
	Size          int
	UniqueWords   int
	MinLength     int
	MaxLength     int
	AvgLength     float64
	ByFirstLetter map[string]int
	ByLength      map[int]int
}

// Statistics computes aggregate counts over all entries. Lengths are rune
// counts; first-letter buckets are keyed by the upper-cased first rune;
// AvgLength is rounded to two decimal places.
func (d *Dictionary) Statistics() Stats {
	stats := Stats{
		ByFirstLetter: make(map[string]int),
		ByLength:      make(map[int]int),
	}
	stats.Size = len(d.entries)
	stats.UniqueWords = len(d.exact)
	if stats.Size == 0 {
		return stats
	}

	total := 0
	stats.MinLength = math.MaxInt
	for _, e := range d.entries {
		runes := []rune(e.Word)
		n := len(runes)
		total += n
		if n < stats.MinLength {
			stats.MinLength = n
		}
		if n > stats.MaxLength {
			stats.MaxLength = n
		}
		stats.ByLength[n]++
		if n > 0 {
			stats.ByFirstLetter[string(unicode.ToUpper(runes[0]))]++
		}
	}
	stats.AvgLength = math.Round(float64(total)/float64(stats.Size)*100) / 100
	return stats
}
