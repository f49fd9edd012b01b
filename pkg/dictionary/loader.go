package dictionary

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// DicEntry is one parsed line of a Hunspell .dic file: the word plus its
// raw run of affix flag characters ("colour/PS" -> Word "colour", Flags "PS").
type DicEntry struct {
	Word  string
	Flags string
}

// LoadWordList reads a plain word-list file into a dictionary. Each line is
// either a bare word or "word frequency"; frequency lands in entry metadata.
// Blank lines and #-comments are skipped. The returned dictionary is fully
// built; any error means no dictionary at all.
func LoadWordList(path string) (*Dictionary, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, err
	}
	defer file.Close()

	dict := New()
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch len(fields) {
		case 1:
			dict.AddWord(fields[0], nil)
		case 2:
			if _, err := strconv.Atoi(fields[1]); err != nil {
				return nil, fmt.Errorf("%w: %s line %d: bad frequency %q", ErrInvalidFormat, path, lineNo, fields[1])
			}
			dict.AddWord(fields[0], Metadata{"frequency": fields[1]})
		default:
			return nil, fmt.Errorf("%w: %s line %d: expected word or word+frequency", ErrInvalidFormat, path, lineNo)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFormat, path, err)
	}
	log.Debugf("loaded %d words from %s", dict.Size(), path)
	return dict, nil
}

// ReadDic parses a Hunspell .dic file into word/flag pairs. The optional
// first-line entry count is treated as a hint; a mismatch is logged, not
// fatal, matching how hunspell itself behaves.
func ReadDic(path string) ([]DicEntry, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, err
	}
	defer file.Close()

	var entries []DicEntry
	declared := -1
	scanner := bufio.NewScanner(file)
	first := true
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if first {
			first = false
			if n, err := strconv.Atoi(line); err == nil {
				declared = n
				continue
			}
		}
		word, flags, _ := strings.Cut(line, "/")
		if word == "" {
			return nil, fmt.Errorf("%w: %s: flag line with empty word: %q", ErrInvalidFormat, path, line)
		}
		entries = append(entries, DicEntry{Word: word, Flags: flags})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFormat, path, err)
	}
	if declared >= 0 && declared != len(entries) {
		log.Warnf("%s declares %d entries, found %d", path, declared, len(entries))
	}
	return entries, nil
}

// ReadAffixLines reads a Hunspell .aff file into trimmed non-empty lines
// ready for affix rule parsing. Comment lines are dropped here so the rule
// parser only ever sees rule material.
func ReadAffixLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, err
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFormat, path, err)
	}
	return lines, nil
}

// BuildFromDic builds a dictionary from parsed .dic entries. Flags stay in
// metadata here; attaching them to the flag index is the affix engine's job
// once the rule set is known.
func BuildFromDic(entries []DicEntry) *Dictionary {
	dict := New()
	for _, e := range entries {
		var meta Metadata
		if e.Flags != "" {
			meta = Metadata{"flags": e.Flags}
		}
		dict.AddWord(e.Word, meta)
	}
	return dict
}
