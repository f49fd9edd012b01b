/*
Package affix implements Hunspell-style prefix and suffix rules: parsing a
rule table into an immutable rule set, deciding whether a surface form is
derivable from a dictionary stem, and generating derived forms for the
suggestion pool.

A rule describes one strip/add transformation guarded by a character-class
condition on the stem. Prefix rules match the start of the stem, suffix
rules the end. Cross-product rules may combine with a rule of the opposite
kind on the same word; others apply alone.
*/
package affix

import "fmt"

// Kind separates prefix (PFX) from suffix (SFX) rules.
type Kind int

const (
	Prefix Kind = iota
	Suffix
)

func (k Kind) String() string {
	if k == Prefix {
		return "PFX"
	}
	return "SFX"
}

// Rule is one strip/add transformation. Surface = stem with Strip removed
// from the rule's side and Add attached in its place; the condition is
// tested against the stem, not the surface form. Immutable after parse.
type Rule struct {
	Flag         string
	Kind         Kind
	CrossProduct bool
	Strip        string
	Add          string
	cond         condition
}

// Applies reports whether the rule's condition accepts the stem.
func (r *Rule) Applies(stem string) bool {
	return r.cond.matches(stem, r.Kind)
}

func (r *Rule) String() string {
	return fmt.Sprintf("%s %s: -%q +%q", r.Kind, r.Flag, r.Strip, r.Add)
}

// RuleSet groups parsed rules by flag and kind. Built once per dictionary
// load, read-only afterwards, safe to share across engines.
type RuleSet struct {
	prefixes map[string][]*Rule
	suffixes map[string][]*Rule
	count    int
}

// NewRuleSet creates an empty rule set.
func NewRuleSet() *RuleSet {
	return &RuleSet{
		prefixes: make(map[string][]*Rule),
		suffixes: make(map[string][]*Rule),
	}
}

func (rs *RuleSet) add(r *Rule) {
	if r.Kind == Prefix {
		rs.prefixes[r.Flag] = append(rs.prefixes[r.Flag], r)
	} else {
		rs.suffixes[r.Flag] = append(rs.suffixes[r.Flag], r)
	}
	rs.count++
}

// PrefixRules returns the prefix rules for a flag.
func (rs *RuleSet) PrefixRules(flag string) []*Rule {
	return rs.prefixes[flag]
}

// SuffixRules returns the suffix rules for a flag.
func (rs *RuleSet) SuffixRules(flag string) []*Rule {
	return rs.suffixes[flag]
}

// Size returns the total rule count.
func (rs *RuleSet) Size() int {
	return rs.count
}

// EachPrefix visits every prefix rule.
func (rs *RuleSet) EachPrefix(fn func(r *Rule)) {
	for _, rules := range rs.prefixes {
		for _, r := range rules {
			fn(r)
		}
	}
}

// EachSuffix visits every suffix rule.
func (rs *RuleSet) EachSuffix(fn func(r *Rule)) {
	for _, rules := range rs.suffixes {
		for _, r := range rules {
			fn(r)
		}
	}
}
