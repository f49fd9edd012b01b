package affix

import (
	"strings"

	"github.com/lexhart/spellserve/pkg/dictionary"
)

// Engine answers morphological questions over one immutable rule set and
// one built dictionary. It holds no state of its own beyond those two
// references; every method is a pure function over them, so a single engine
// is safe for any number of concurrent readers.
type Engine struct {
	rules *RuleSet
	dict  *dictionary.Dictionary
}

// NewEngine binds a rule set to a dictionary.
func NewEngine(rules *RuleSet, dict *dictionary.Dictionary) *Engine {
	if rules == nil {
		rules = NewRuleSet()
	}
	return &Engine{rules: rules, dict: dict}
}

// Rules returns the bound rule set.
func (e *Engine) Rules() *RuleSet {
	return e.rules
}

// AttachFlags walks the dictionary and registers every entry's raw flag run
// (the "flags" metadata written by the .dic loader) in the dictionary's flag
// index. Call once after load, before any queries.
func (e *Engine) AttachFlags() {
	e.dict.Each(func(_ int, entry *dictionary.WordEntry) {
		raw, ok := entry.Meta["flags"]
		if !ok {
			return
		}
		for _, f := range raw {
			e.dict.TagFlag(string(f), entry.Word)
		}
	})
}

// Stem is one accepted stemming of a surface form: the dictionary stem and
// the rule that produced it (SuffixRule nil for prefix-only stems and vice
// versa).
type Stem struct {
	Word       string
	PrefixRule *Rule
	SuffixRule *Rule
}

// StemCandidates reverses every applicable rule against the surface form
// and keeps a candidate only when the resulting stem is a dictionary entry
// carrying the rule's flag. Cross-product pairs count as one candidate with
// both rules set.
func (e *Engine) StemCandidates(surface string) []Stem {
	var stems []Stem

	e.rules.EachSuffix(func(r *Rule) {
		if stem, ok := e.reverseSuffix(surface, r); ok {
			stems = append(stems, Stem{Word: stem, SuffixRule: r})
		}
	})
	e.rules.EachPrefix(func(p *Rule) {
		if stem, ok := e.reversePrefix(surface, p); ok {
			stems = append(stems, Stem{Word: stem, PrefixRule: p})
		}
		if !p.CrossProduct {
			return
		}
		// Cross-product: peel the prefix, then try combinable suffixes on
		// the remainder.
		mid, ok := undoPrefix(surface, p)
		if !ok {
			return
		}
		e.rules.EachSuffix(func(s *Rule) {
			if !s.CrossProduct {
				return
			}
			stem, ok := undoSuffix(mid, s)
			if !ok || !p.Applies(stem) || !s.Applies(stem) {
				return
			}
			if e.dict.HasFlag(stem, p.Flag) && e.dict.HasFlag(stem, s.Flag) {
				stems = append(stems, Stem{Word: stem, PrefixRule: p, SuffixRule: s})
			}
		})
	})
	return stems
}

// IsValidForm reports whether word is itself a dictionary entry or is
// derivable from one via exactly one prefix and/or one suffix rule.
func (e *Engine) IsValidForm(word string) bool {
	if e.dict.HasWord(word) {
		return true
	}
	if word == "" {
		return false
	}
	return len(e.StemCandidates(word)) > 0
}

// reverseSuffix undoes one suffix rule and validates condition, dictionary
// membership and flag attachment.
func (e *Engine) reverseSuffix(surface string, r *Rule) (string, bool) {
	stem, ok := undoSuffix(surface, r)
	if !ok || !r.Applies(stem) {
		return "", false
	}
	if !e.dict.HasFlag(stem, r.Flag) {
		return "", false
	}
	return stem, true
}

func (e *Engine) reversePrefix(surface string, r *Rule) (string, bool) {
	stem, ok := undoPrefix(surface, r)
	if !ok || !r.Applies(stem) {
		return "", false
	}
	if !e.dict.HasFlag(stem, r.Flag) {
		return "", false
	}
	return stem, true
}

// undoSuffix computes the stem a suffix rule would have started from:
// surface minus Add, plus Strip back on the end.
func undoSuffix(surface string, r *Rule) (string, bool) {
	if r.Add != "" && !strings.HasSuffix(surface, r.Add) {
		return "", false
	}
	stem := surface[:len(surface)-len(r.Add)] + r.Strip
	if stem == "" || stem == surface {
		return "", false
	}
	return stem, true
}

func undoPrefix(surface string, r *Rule) (string, bool) {
	if r.Add != "" && !strings.HasPrefix(surface, r.Add) {
		return "", false
	}
	stem := r.Strip + surface[len(r.Add):]
	if stem == "" || stem == surface {
		return "", false
	}
	return stem, true
}

// DeriveForms generates every surface form reachable from the stem by one
// application of a rule tagged with one of the given flags, plus
// cross-product prefix+suffix combinations. Used to widen the suggestion
// pool beyond literal dictionary entries; output is deduplicated and never
// contains the stem itself.
func (e *Engine) DeriveForms(stem string, flags []string) []string {
	seen := make(map[string]struct{})
	var forms []string
	emit := func(form string) {
		if form == stem || form == "" {
			return
		}
		if _, ok := seen[form]; ok {
			return
		}
		seen[form] = struct{}{}
		forms = append(forms, form)
	}

	var prefixRules []*Rule
	var suffixed []string
	for _, flag := range flags {
		for _, r := range e.rules.PrefixRules(flag) {
			if form, ok := applyPrefix(stem, r); ok {
				emit(form)
				if r.CrossProduct {
					prefixRules = append(prefixRules, r)
				}
			}
		}
		for _, r := range e.rules.SuffixRules(flag) {
			if form, ok := applySuffix(stem, r); ok {
				emit(form)
				if r.CrossProduct {
					suffixed = append(suffixed, form)
				}
			}
		}
	}

	// Cross-product: prefix layered over each suffixed form. Conditions
	// were already tested against the bare stem; the suffix never touches
	// the stem's start, so the prefix strip still lines up.
	for _, p := range prefixRules {
		for _, sform := range suffixed {
			if p.Strip != "" && !strings.HasPrefix(sform, p.Strip) {
				continue
			}
			emit(p.Add + sform[len(p.Strip):])
		}
	}
	return forms
}

// applySuffix produces stem minus Strip plus Add on the end, gated by the
// rule condition.
func applySuffix(stem string, r *Rule) (string, bool) {
	if !r.Applies(stem) {
		return "", false
	}
	if r.Strip != "" && !strings.HasSuffix(stem, r.Strip) {
		return "", false
	}
	return stem[:len(stem)-len(r.Strip)] + r.Add, true
}

func applyPrefix(stem string, r *Rule) (string, bool) {
	if !r.Applies(stem) {
		return "", false
	}
	if r.Strip != "" && !strings.HasPrefix(stem, r.Strip) {
		return "", false
	}
	return r.Add + stem[len(r.Strip):], true
}
