package dictionary

// Metadata is the extensible key-value bag attached to a word entry.
// Values are plain strings so stored metadata stays checkable; callers that
// need typed values parse them at the edge.
type Metadata map[string]string

// WordEntry is one row of the dictionary. Index is the entry's stable
// position in insertion order and never changes; it is the join key every
// derived index refers back to. Entries are immutable after insertion except
// for metadata and flag additions.
type WordEntry struct {
	Word  string
	Index int
	Flags []string
	Meta  Metadata
}

// HasFlag reports whether the entry carries the given affix flag.
func (e *WordEntry) HasFlag(flag string) bool {
	for _, f := range e.Flags {
		if f == flag {
			return true
		}
	}
	return false
}
