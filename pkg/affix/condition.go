package affix

import "fmt"

// charClass matches a single rune: either any rune (.), or membership in a
// bracketed set, possibly negated ([^aeiou]).
type charClass struct {
	any    bool
	negate bool
	set    map[rune]bool
}

func (c charClass) match(r rune) bool {
	if c.any {
		return true
	}
	return c.set[r] != c.negate
}

// condition is a compiled sequence of character classes, anchored at the
// stem's start for prefix rules and at its end for suffix rules. Conditions
// compile once at rule-parse time; queries never touch pattern text.
type condition []charClass

// compileCondition turns Hunspell condition text like "[^aeiou]y" into a
// compiled matcher. The bare "." condition means no constraint and compiles
// to an empty sequence.
func compileCondition(text string) (condition, error) {
	if text == "" || text == "." {
		return nil, nil
	}
	var cond condition
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		switch runes[i] {
		case '.':
			cond = append(cond, charClass{any: true})
		case '[':
			j := i + 1
			negate := false
			if j < len(runes) && runes[j] == '^' {
				negate = true
				j++
			}
			set := make(map[rune]bool)
			for j < len(runes) && runes[j] != ']' {
				set[runes[j]] = true
				j++
			}
			if j >= len(runes) {
				return nil, fmt.Errorf("unterminated character class in %q", text)
			}
			if len(set) == 0 {
				return nil, fmt.Errorf("empty character class in %q", text)
			}
			cond = append(cond, charClass{negate: negate, set: set})
			i = j
		case ']':
			return nil, fmt.Errorf("unmatched ']' in %q", text)
		default:
			cond = append(cond, charClass{set: map[rune]bool{runes[i]: true}})
		}
	}
	return cond, nil
}

// matches tests the condition against one side of the stem: the first
// len(cond) runes for prefix rules, the last len(cond) for suffix rules.
// A stem shorter than the condition never matches.
func (c condition) matches(stem string, kind Kind) bool {
	if len(c) == 0 {
		return true
	}
	runes := []rune(stem)
	if len(runes) < len(c) {
		return false
	}
	offset := 0
	if kind == Suffix {
		offset = len(runes) - len(c)
	}
	for i, class := range c {
		if !class.match(runes[offset+i]) {
			return false
		}
	}
	return true
}
