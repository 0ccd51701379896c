package ledger

import (
	"sort"
	"strings"
)

// Journal is an ordered collection of transactions and comments. It
// owns its entries exclusively; nothing outside the journal should
// hold onto them once added.
type Journal struct {
	entries []Entry
}

// NewJournal builds an empty journal.
func NewJournal() *Journal {
	return &Journal{}
}

// AddTransaction appends a transaction.
func (j *Journal) AddTransaction(t *Transaction) {
	j.entries = append(j.entries, t)
}

// AddComment appends a comment.
func (j *Journal) AddComment(c Comment) {
	j.entries = append(j.entries, c)
}

// Entries returns the journal contents in current order.
func (j *Journal) Entries() []Entry {
	return j.entries
}

// ToLedger renders every entry at column zero, separated by one blank
// line.
func (j *Journal) ToLedger() string {
	parts := make([]string, len(j.entries))
	for i, e := range j.entries {
		parts[i] = e.ToLedger(0)
	}
	return strings.Join(parts, "\n\n")
}

// Sort stably reorders the journal: comments first (keeping their
// relative order), then transactions by date, code, and note. An
// absent code or note compares as the empty string, so it sorts before
// any present value.
func (j *Journal) Sort() {
	sort.SliceStable(j.entries, func(a, b int) bool {
		ta, aIsTx := j.entries[a].(*Transaction)
		tb, bIsTx := j.entries[b].(*Transaction)
		if !aIsTx || !bIsTx {
			return !aIsTx && bIsTx
		}
		if c := ta.Date.Compare(tb.Date); c != 0 {
			return c < 0
		}
		if ta.Code != tb.Code {
			return ta.Code < tb.Code
		}
		return ta.Note < tb.Note
	})
}
