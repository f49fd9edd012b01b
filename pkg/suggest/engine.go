/*
Package suggest turns a misspelled token into ranked correction candidates.

Candidates are merged from three sources: a bounded edit-distance walk over
the trie, a case-folded dictionary hit (scored below any edit result so pure
capitalization errors win), and affix-derived surface forms of nearby stems
(scored at the base distance plus a fixed derivation penalty so literal hits
always outrank derived guesses at equal distance). The merged set is sorted
by ascending cost, tie-broken lexically, and capped at a configured size.
*/
package suggest

import (
	"fmt"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/lexhart/spellserve/pkg/affix"
	"github.com/lexhart/spellserve/pkg/dictionary"
	"github.com/lexhart/spellserve/pkg/trie"
)

// Default knobs. MaxEdits bounds the trie walk; together with
// MaxSuggestions it caps worst-case query work, which is the only latency
// control the engine needs (no internal timeouts, per the read-only model).
const (
	DefaultMaxEdits       = 2
	DefaultMaxSuggestions = 16
	DefaultCaseCost       = 0.25
	DefaultAffixPenalty   = 0.5
)

// Options configures a suggestion engine. The zero value means defaults.
type Options struct {
	// MaxEdits is the Levenshtein radius of the trie search.
	MaxEdits int
	// MaxSuggestions caps the returned candidate count.
	MaxSuggestions int
	// CaseCost scores a case-only correction; must stay below 1 so it
	// outranks every genuine edit.
	CaseCost float64
	// AffixPenalty is added to the base distance of derived forms.
	AffixPenalty float64
}

func (o Options) withDefaults() Options {
	if o.MaxEdits == 0 {
		o.MaxEdits = DefaultMaxEdits
	}
	if o.MaxSuggestions == 0 {
		o.MaxSuggestions = DefaultMaxSuggestions
	}
	if o.CaseCost == 0 {
		o.CaseCost = DefaultCaseCost
	}
	if o.AffixPenalty == 0 {
		o.AffixPenalty = DefaultAffixPenalty
	}
	return o
}

// Validate rejects option values that cannot work.
func (o Options) Validate() error {
	if o.MaxEdits < 0 {
		return fmt.Errorf("invalid option MaxEdits: %d (must be >= 0)", o.MaxEdits)
	}
	if o.MaxSuggestions < 0 {
		return fmt.Errorf("invalid option MaxSuggestions: %d (must be >= 0)", o.MaxSuggestions)
	}
	if o.CaseCost < 0 || o.CaseCost >= 1 {
		return fmt.Errorf("invalid option CaseCost: %v (must be in [0,1))", o.CaseCost)
	}
	if o.AffixPenalty < 0 {
		return fmt.Errorf("invalid option AffixPenalty: %v (must be >= 0)", o.AffixPenalty)
	}
	return nil
}

// QueryError surfaces an internal failure during a query, always naming the
// offending word. Swallowing it would masquerade as "no suggestions".
type QueryError struct {
	Word   string
	Reason string
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("spellcheck failed for %q: %s", e.Word, e.Reason)
}

// Engine orchestrates the dictionary, trie and affix engine for one loaded
// dictionary. All three are read-only after build, so one engine serves any
// number of concurrent callers.
type Engine struct {
	dict  *dictionary.Dictionary
	trie  *trie.Trie
	affix *affix.Engine
	opts  Options
}

// NewEngine wires an engine over already-built components.
func NewEngine(dict *dictionary.Dictionary, tr *trie.Trie, ae *affix.Engine, opts Options) (*Engine, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Engine{dict: dict, trie: tr, affix: ae, opts: opts.withDefaults()}, nil
}

// Options returns the effective (defaulted) options.
func (e *Engine) Options() Options {
	return e.opts
}

// IsValidForm reports whether the token needs no correction: a dictionary
// entry or a form derivable via the affix rules.
func (e *Engine) IsValidForm(token string) bool {
	return e.affix.IsValidForm(token)
}

// Suggest produces ranked corrections for a token. Valid forms and the
// empty token yield an empty set, never an error.
func (e *Engine) Suggest(token string) (*Set, error) {
	set := NewSet()
	if token == "" {
		return set, nil
	}
	if !utf8.ValidString(token) {
		return nil, &QueryError{Word: token, Reason: "not valid UTF-8"}
	}
	if e.affix.IsValidForm(token) {
		return set, nil
	}

	// Case-only correction first: cheapest by construction.
	if entry, ok := e.dict.LookupFold(token); ok && entry.Word != token {
		set.Add(Candidate{Word: entry.Word, Cost: e.opts.CaseCost, Source: SourceDictionary})
	}

	matches := e.trie.WithinDistance(token, e.opts.MaxEdits)
	log.Debugf("trie search for %q: %d candidates within distance %d", token, len(matches), e.opts.MaxEdits)

	for _, m := range matches {
		if m.Word == "" {
			continue
		}
		set.Add(Candidate{Word: m.Word, Cost: float64(m.Distance), Source: SourceDictionary})

		// Widen the pool with one-step derivations of candidate stems.
		entry, ok := e.dict.Lookup(m.Word)
		if !ok || len(entry.Flags) == 0 {
			continue
		}
		for _, form := range e.affix.DeriveForms(m.Word, entry.Flags) {
			set.Add(Candidate{
				Word:   form,
				Cost:   float64(m.Distance) + e.opts.AffixPenalty,
				Source: SourceAffix,
			})
		}
	}

	set.sort()
	set.truncate(e.opts.MaxSuggestions)
	return set, nil
}
