package game

// EntryKind tags a journal entry.
type EntryKind uint8

const (
	EntryNote EntryKind = iota
	EntryTrade
	EntryTravel
)

// Entry is a single line in the journal.
type Entry struct {
	Text string
	Kind EntryKind
}

// Journal is a bounded FIFO of the journey's events.
type Journal struct {
	Entries []Entry
	maxSize int
}

// NewJournal creates a journal that keeps the most recent maxSize entries.
func NewJournal(maxSize int) *Journal {
	maxSize = max(maxSize, 1)
	return &Journal{
		Entries: make([]Entry, 0, maxSize),
		maxSize: maxSize,
	}
}

// Add appends an entry, evicting the oldest if full.
func (j *Journal) Add(text string, kind EntryKind) {
	e := Entry{Text: text, Kind: kind}
	if len(j.Entries) >= j.maxSize {
		copy(j.Entries, j.Entries[1:])
		j.Entries[len(j.Entries)-1] = e
		return
	}
	j.Entries = append(j.Entries, e)
}

// Recent returns the last n entries (or fewer if the journal is shorter).
func (j *Journal) Recent(n int) []Entry {
	if n > len(j.Entries) {
		n = len(j.Entries)
	}
	return j.Entries[len(j.Entries)-n:]
}

// Count returns how many entries of kind are kept.
func (j *Journal) Count(kind EntryKind) int {
	n := 0
	for _, e := range j.Entries {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
