package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJournalToLedger_BlankLineBetweenEntries(t *testing.T) {
	j := NewJournal()

	tx1 := NewTransaction(Date{2024, 1, 15})
	tx1.Payee = "First"
	p := NewPosting("Assets:A")
	p.Amount = mustCostedAmount(t, "$1")
	tx1.AddPosting(p)
	j.AddTransaction(tx1)

	tx2 := NewTransaction(Date{2024, 1, 16})
	tx2.Payee = "Second"
	j.AddTransaction(tx2)

	expected := "2024-01-15 First\n" +
		"    Assets:A  $1.00\n" +
		"\n" +
		"2024-01-16 Second\n"
	assert.Equal(t, expected, j.ToLedger())
}

func TestJournalToLedger_CommentEntry(t *testing.T) {
	j := NewJournal()
	j.AddComment(NewComment("generated file"))
	j.AddTransaction(NewTransaction(Date{2024, 1, 1}))

	assert.Equal(t, "; generated file\n\n2024-01-01\n", j.ToLedger())
}

func TestJournalSort_CommentsFirst(t *testing.T) {
	j := NewJournal()
	feb := NewTransaction(Date{2024, 2, 1})
	jan := NewTransaction(Date{2024, 1, 1})
	j.AddTransaction(feb)
	j.AddComment(NewComment("one"))
	j.AddTransaction(jan)
	j.AddComment(NewComment("two"))

	j.Sort()

	entries := j.Entries()
	require.Len(t, entries, 4)
	assert.Equal(t, NewComment("one"), entries[0])
	assert.Equal(t, NewComment("two"), entries[1])
	assert.Same(t, jan, entries[2])
	assert.Same(t, feb, entries[3])
}

func TestJournalSort_CodeAndNoteTiebreak(t *testing.T) {
	newTx := func(code, note string) *Transaction {
		tx := NewTransaction(Date{2024, 1, 1})
		tx.Code = code
		tx.Note = note
		return tx
	}

	noCode := newTx("", "z")
	codeA := newTx("a", "b")
	codeANoteA := newTx("a", "a")
	codeB := newTx("b", "")

	j := NewJournal()
	j.AddTransaction(codeB)
	j.AddTransaction(codeA)
	j.AddTransaction(noCode)
	j.AddTransaction(codeANoteA)

	j.Sort()

	entries := j.Entries()
	require.Len(t, entries, 4)
	// Absent code sorts as the empty string, before any present code.
	assert.Same(t, noCode, entries[0])
	assert.Same(t, codeANoteA, entries[1])
	assert.Same(t, codeA, entries[2])
	assert.Same(t, codeB, entries[3])
}

func TestJournalSort_StableForEqualTransactions(t *testing.T) {
	first := NewTransaction(Date{2024, 1, 1})
	second := NewTransaction(Date{2024, 1, 1})

	j := NewJournal()
	j.AddTransaction(first)
	j.AddTransaction(second)
	j.Sort()

	entries := j.Entries()
	assert.Same(t, first, entries[0])
	assert.Same(t, second, entries[1])
}

func TestJournalToLedger_Idempotent(t *testing.T) {
	j := NewJournal()
	j.AddComment(NewComment("a\nb"))
	tx := NewTransaction(Date{2024, 1, 1})
	p := NewPosting("Assets:A")
	p.Amount = mustCostedAmount(t, "10 USD @ 2 EUR")
	tx.AddPosting(p)
	j.AddTransaction(tx)

	assert.Equal(t, j.ToLedger(), j.ToLedger())
}
