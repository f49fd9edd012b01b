package affix

import (
	"testing"

	"github.com/lexhart/spellserve/pkg/dictionary"
)

func TestCompileCondition(t *testing.T) {
	cases := []struct {
		text    string
		stem    string
		kind    Kind
		want    bool
		wantErr bool
	}{
		{".", "anything", Suffix, true, false},
		{"", "anything", Suffix, true, false},
		{"y", "try", Suffix, true, false},
		{"y", "trap", Suffix, false, false},
		{"[^aeiou]y", "try", Suffix, true, false},
		{"[^aeiou]y", "play", Suffix, false, false},
		{"[aeiou]", "tr", Suffix, false, false},
		{"un", "under", Prefix, true, false},
		{"un", "trunk", Prefix, false, false},
		{"abc", "ab", Suffix, false, false}, // stem shorter than condition
		{"[^aeiou", "", Suffix, false, true},
		{"a]b", "", Suffix, false, true},
		{"[]y", "", Suffix, false, true},
	}
	for _, tc := range cases {
		cond, err := compileCondition(tc.text)
		if tc.wantErr {
			if err == nil {
				t.Errorf("compileCondition(%q): expected error", tc.text)
			}
			continue
		}
		if err != nil {
			t.Errorf("compileCondition(%q): %v", tc.text, err)
			continue
		}
		if got := cond.matches(tc.stem, tc.kind); got != tc.want {
			t.Errorf("condition %q on %q (%v) = %v, want %v", tc.text, tc.stem, tc.kind, got, tc.want)
		}
	}
}

var ruleLines = []string{
	"PFX U Y 1",
	"PFX U 0 un .",
	"SFX S Y 2",
	"SFX S 0 s [^s]",
	"SFX S 0 es s",
	"SFX Y N 1",
	"SFX Y y ies [^aeiou]y",
}

func TestParseRuleSet(t *testing.T) {
	rs, skipped, err := ParseRuleSet(ruleLines, ParseOptions{})
	if err != nil {
		t.Fatalf("ParseRuleSet: %v", err)
	}
	if len(skipped) != 0 {
		t.Fatalf("skipped = %v, want none", skipped)
	}
	if rs.Size() != 4 {
		t.Fatalf("Size() = %d, want 4 rules", rs.Size())
	}
	if got := rs.PrefixRules("U"); len(got) != 1 || !got[0].CrossProduct {
		t.Errorf("PrefixRules(U) = %v, want one cross-product rule", got)
	}
	if got := rs.SuffixRules("Y"); len(got) != 1 || got[0].CrossProduct {
		t.Errorf("SuffixRules(Y) = %v, want one non-cross rule", got)
	}
	if got := rs.SuffixRules("S"); len(got) != 2 {
		t.Errorf("SuffixRules(S) = %v, want two rules", got)
	}
}

func TestParseRuleSetSkipsNonRuleDirectives(t *testing.T) {
	lines := append([]string{"SET UTF-8", "TRY esianrtolc", "REP 2"}, ruleLines...)
	rs, skipped, err := ParseRuleSet(lines, ParseOptions{})
	if err != nil || len(skipped) != 0 {
		t.Fatalf("err=%v skipped=%v, want clean parse", err, skipped)
	}
	if rs.Size() != 4 {
		t.Errorf("Size() = %d, want 4", rs.Size())
	}
}

func TestParseRuleSetMalformed(t *testing.T) {
	lines := []string{
		"SFX S Y 1",
		"SFX S 0 s [^s",  // unterminated class
		"SFX S 0 s [^s]", // fine
		"SFX S 0",        // too few fields
	}

	rs, skipped, err := ParseRuleSet(lines, ParseOptions{})
	if err != nil {
		t.Fatalf("lenient parse: %v", err)
	}
	if rs.Size() != 1 {
		t.Errorf("Size() = %d, want 1 surviving rule", rs.Size())
	}
	if len(skipped) != 2 {
		t.Errorf("skipped = %v, want 2 entries", skipped)
	}
	for _, s := range skipped {
		if s.Line == "" {
			t.Error("skipped rule error lost the offending line")
		}
	}

	_, _, err = ParseRuleSet(lines, ParseOptions{Strict: true})
	if err == nil {
		t.Fatal("strict parse accepted a malformed line")
	}
	if _, ok := err.(*RuleError); !ok {
		t.Errorf("strict error = %T, want *RuleError", err)
	}
}

func testEngine(t *testing.T) *Engine {
	t.Helper()
	rs, _, err := ParseRuleSet(ruleLines, ParseOptions{})
	if err != nil {
		t.Fatal(err)
	}
	dict := dictionary.BuildFromDic([]dictionary.DicEntry{
		{Word: "color", Flags: "S"},
		{Word: "lock", Flags: "US"},
		{Word: "try", Flags: "Y"},
		{Word: "glass", Flags: "S"},
		{Word: "the"},
	})
	e := NewEngine(rs, dict)
	e.AttachFlags()
	return e
}

func TestAttachFlags(t *testing.T) {
	e := testEngine(t)
	if !e.dict.HasFlag("lock", "U") || !e.dict.HasFlag("lock", "S") {
		t.Error("lock should carry both U and S")
	}
	if e.dict.HasFlag("the", "S") {
		t.Error("the should carry no flags")
	}
	if words := e.dict.WordsWithFlag("S"); len(words) != 3 {
		t.Errorf("WordsWithFlag(S) = %v, want color/lock/glass", words)
	}
}

func TestIsValidForm(t *testing.T) {
	e := testEngine(t)

	cases := []struct {
		word string
		want bool
		desc string
	}{
		{"color", true, "plain dictionary entry"},
		{"the", true, "entry without flags"},
		{"colors", true, "suffix rule S"},
		{"glasses", true, "es-after-s suffix rule"},
		{"glasss", false, "condition [^s] blocks bare s after s"},
		{"tries", true, "strip y add ies"},
		{"trys", false, "no rule derives trys"},
		{"unlock", true, "prefix rule U"},
		{"locks", true, "suffix rule on lock"},
		{"unlocks", true, "cross-product prefix+suffix"},
		{"untry", false, "try has no U flag"},
		{"untries", false, "Y is not cross-product"},
		{"colorss", false, "only one suffix application allowed"},
		{"", false, "empty token"},
		{"xyzzy", false, "unknown word"},
	}
	for _, tc := range cases {
		if got := e.IsValidForm(tc.word); got != tc.want {
			t.Errorf("IsValidForm(%q) = %v, want %v (%s)", tc.word, got, tc.want, tc.desc)
		}
	}
}

func TestStemCandidates(t *testing.T) {
	e := testEngine(t)

	stems := e.StemCandidates("colors")
	if len(stems) != 1 || stems[0].Word != "color" {
		t.Fatalf("StemCandidates(colors) = %v, want [color]", stems)
	}
	if stems[0].SuffixRule == nil || stems[0].PrefixRule != nil {
		t.Errorf("colors stem should be suffix-only: %+v", stems[0])
	}

	stems = e.StemCandidates("unlocks")
	found := false
	for _, s := range stems {
		if s.Word == "lock" && s.PrefixRule != nil && s.SuffixRule != nil {
			found = true
		}
	}
	if !found {
		t.Errorf("StemCandidates(unlocks) = %v, want a cross-product lock stem", stems)
	}

	if stems := e.StemCandidates("xyzzys"); len(stems) != 0 {
		t.Errorf("StemCandidates(xyzzys) = %v, want none", stems)
	}
}

func TestDeriveForms(t *testing.T) {
	e := testEngine(t)

	cases := []struct {
		stem  string
		flags []string
		want  map[string]bool
	}{
		{"color", []string{"S"}, map[string]bool{"colors": true}},
		{"try", []string{"Y"}, map[string]bool{"tries": true}},
		{"glass", []string{"S"}, map[string]bool{"glasses": true}},
		{"lock", []string{"U", "S"}, map[string]bool{"locks": true, "unlock": true, "unlocks": true}},
		{"the", nil, map[string]bool{}},
	}
	for _, tc := range cases {
		got := e.DeriveForms(tc.stem, tc.flags)
		if len(got) != len(tc.want) {
			t.Errorf("DeriveForms(%q, %v) = %v, want %v", tc.stem, tc.flags, got, tc.want)
			continue
		}
		for _, form := range got {
			if !tc.want[form] {
				t.Errorf("DeriveForms(%q, %v) produced unexpected %q", tc.stem, tc.flags, form)
			}
		}
	}
}

// Every derived form of a flagged stem must round-trip through IsValidForm.
func TestDeriveFormsRoundTrip(t *testing.T) {
	e := testEngine(t)
	e.dict.Each(func(_ int, entry *dictionary.WordEntry) {
		for _, form := range e.DeriveForms(entry.Word, entry.Flags) {
			if !e.IsValidForm(form) {
				t.Errorf("derived form %q of %q rejected by IsValidForm", form, entry.Word)
			}
		}
	})
}
