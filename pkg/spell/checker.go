/*
Package spell is the public query surface over one loaded dictionary: is a
token a valid word form, and if not, what are the ranked corrections.

A Checker owns an indexed dictionary, a trie derived from its word set, an
affix rule engine and a suggestion engine, all built once at load time and
read-only afterwards. One checker may be shared by any number of concurrent
readers; build a new one to pick up a changed dictionary.
*/
package spell

import (
	"github.com/charmbracelet/log"

	"github.com/lexhart/spellserve/pkg/affix"
	"github.com/lexhart/spellserve/pkg/dictionary"
	"github.com/lexhart/spellserve/pkg/suggest"
	"github.com/lexhart/spellserve/pkg/trie"
)

// Options configures a checker.
type Options struct {
	Suggest suggest.Options
	// StrictAffix aborts loading on the first malformed affix rule instead
	// of skipping it.
	StrictAffix bool
}

// Checker is the spellchecker façade.
type Checker struct {
	dict   *dictionary.Dictionary
	trie   *trie.Trie
	affix  *affix.Engine
	engine *suggest.Engine
}

// New assembles a checker over an already-built dictionary and rule set:
// attaches affix flags, derives the trie from the deduplicated word set and
// wires the suggestion engine. The dictionary must be finished - nothing may
// add words after this point.
func New(dict *dictionary.Dictionary, rules *affix.RuleSet, opts Options) (*Checker, error) {
	ae := affix.NewEngine(rules, dict)
	ae.AttachFlags()

	tr := trie.Build(dict.UniqueWords())
	engine, err := suggest.NewEngine(dict, tr, ae, opts.Suggest)
	if err != nil {
		return nil, err
	}
	log.Debugf("checker ready: %d entries, %d trie words, %d affix rules",
		dict.Size(), tr.Size(), ae.Rules().Size())
	return &Checker{dict: dict, trie: tr, affix: ae, engine: engine}, nil
}

// Load builds a checker from Hunspell-style .dic and .aff files. affPath
// may be empty for a dictionary without morphology. Any error during
// loading or parsing means no checker at all - a partially-indexed
// dictionary never escapes.
func Load(dicPath, affPath string, opts Options) (*Checker, error) {
	entries, err := dictionary.ReadDic(dicPath)
	if err != nil {
		return nil, err
	}

	rules := affix.NewRuleSet()
	if affPath != "" {
		lines, err := dictionary.ReadAffixLines(affPath)
		if err != nil {
			return nil, err
		}
		parsed, skipped, err := affix.ParseRuleSet(lines, affix.ParseOptions{Strict: opts.StrictAffix})
		if err != nil {
			return nil, err
		}
		if len(skipped) > 0 {
			log.Warnf("%s: skipped %d malformed affix rules", affPath, len(skipped))
		}
		rules = parsed
	}

	return New(dictionary.BuildFromDic(entries), rules, opts)
}

// LoadWordList builds a checker from a plain word-list file, with no affix
// rules.
func LoadWordList(path string, opts Options) (*Checker, error) {
	dict, err := dictionary.LoadWordList(path)
	if err != nil {
		return nil, err
	}
	return New(dict, nil, opts)
}

// Correct reports whether the word is a valid form: a dictionary entry or
// derivable via the affix rules.
func (c *Checker) Correct(word string) bool {
	return c.engine.IsValidForm(word)
}

// Suggest returns ranked corrections for a word; empty for valid forms and
// for the empty token. Query failures come back as a CheckError rather than
// an empty set.
func (c *Checker) Suggest(word string) (*suggest.Set, error) {
	set, err := c.engine.Suggest(word)
	if err != nil {
		return nil, &CheckError{Word: word, Err: err}
	}
	return set, nil
}

// Dictionary exposes the backing dictionary for diagnostics.
func (c *Checker) Dictionary() *dictionary.Dictionary {
	return c.dict
}

// Statistics reports aggregate dictionary counts.
func (c *Checker) Statistics() dictionary.Stats {
	return c.dict.Statistics()
}
