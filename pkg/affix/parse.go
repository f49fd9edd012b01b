package affix

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
)

// RuleError reports one rule line that failed to parse, carrying the
// offending text.
type RuleError struct {
	Line   string
	Reason string
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("affix rule %q: %s", e.Line, e.Reason)
}

// ParseOptions controls rule-table parsing. With Strict unset, malformed
// lines are skipped and reported back; with Strict set, the first malformed
// line aborts the whole parse. The policy is a caller choice, not a baked-in
// default.
type ParseOptions struct {
	Strict bool
}

// ParseRuleSet parses affix-table lines (already split and stripped of
// comments) into a rule set. Lines look like:
//
//	PFX A Y 1
//	PFX A 0 re .
//	SFX S y ies [^aeiou]y
//
// Header lines declare a flag's cross-product marker and an entry count used
// only as a hint. Directive lines that are not PFX/SFX (SET, TRY, REP, ...)
// are ignored. Returns the rule set and the skipped lines; in strict mode a
// skipped line becomes the returned error instead.
func ParseRuleSet(lines []string, opts ParseOptions) (*RuleSet, []*RuleError, error) {
	rs := NewRuleSet()
	cross := make(map[string]bool)
	var skipped []*RuleError

	fail := func(line, reason string) error {
		rerr := &RuleError{Line: line, Reason: reason}
		if opts.Strict {
			return rerr
		}
		log.Warnf("skipping %v", rerr)
		skipped = append(skipped, rerr)
		return nil
	}

	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		var kind Kind
		switch fields[0] {
		case "PFX":
			kind = Prefix
		case "SFX":
			kind = Suffix
		default:
			continue
		}

		switch len(fields) {
		case 4:
			// Header: PFX <flag> <Y|N> <count>
			if fields[2] != "Y" && fields[2] != "N" {
				// Four-field rule line with the condition omitted.
				if err := addRule(rs, cross, kind, fields[1], fields[2], fields[3], "."); err != nil {
					if ferr := fail(line, err.Error()); ferr != nil {
						return nil, skipped, ferr
					}
				}
				continue
			}
			cross[crossKey(kind, fields[1])] = fields[2] == "Y"
		case 5:
			if err := addRule(rs, cross, kind, fields[1], fields[2], fields[3], fields[4]); err != nil {
				if ferr := fail(line, err.Error()); ferr != nil {
					return nil, skipped, ferr
				}
			}
		default:
			if ferr := fail(line, "expected 4 or 5 fields"); ferr != nil {
				return nil, skipped, ferr
			}
		}
	}
	log.Debugf("parsed %d affix rules (%d skipped)", rs.Size(), len(skipped))
	return rs, skipped, nil
}

func crossKey(kind Kind, flag string) string {
	return kind.String() + flag
}

func addRule(rs *RuleSet, cross map[string]bool, kind Kind, flag, strip, add, condText string) error {
	// "0" is the Hunspell spelling of the empty string.
	if strip == "0" {
		strip = ""
	}
	if add == "0" {
		add = ""
	}
	// Continuation flags on the add field ("ing/S") are not modelled; keep
	// the surface text only.
	add, _, _ = strings.Cut(add, "/")
	if strip == "" && add == "" {
		return fmt.Errorf("rule strips and adds nothing")
	}
	cond, err := compileCondition(condText)
	if err != nil {
		return err
	}
	rs.add(&Rule{
		Flag:         flag,
		Kind:         kind,
		CrossProduct: cross[crossKey(kind, flag)],
		Strip:        strip,
		Add:          add,
		cond:         cond,
	})
	return nil
}
