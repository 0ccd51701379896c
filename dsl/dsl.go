// Package dsl provides fluent builders for assembling ledger journals
// from plain strings. Builders accept free-form dates and amounts
// ("2024-01-15", "5.00 USD", "10 AAPL @@ $1500") and defer parse
// failures until Build, which reports the first one.
package dsl

import (
	"github.com/ledgerdev/ledgerkit/ledger"
)

// JournalBuilder accumulates journal entries and the first
// construction error.
type JournalBuilder struct {
	journal *ledger.Journal
	err     error
}

// Journal starts a new journal builder.
func Journal() *JournalBuilder {
	return &JournalBuilder{journal: ledger.NewJournal()}
}

func (b *JournalBuilder) setErr(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Comment appends a standalone comment to the journal.
func (b *JournalBuilder) Comment(text string) *JournalBuilder {
	b.journal.AddComment(ledger.NewComment(text))
	return b
}

// Transaction appends a transaction dated by the given YYYY-MM-DD
// string and returns its builder.
func (b *JournalBuilder) Transaction(date string) *TransactionBuilder {
	d, err := ledger.ParseDate(date)
	if err != nil {
		b.setErr(err)
	}
	tx := ledger.NewTransaction(d)
	b.journal.AddTransaction(tx)
	return &TransactionBuilder{journal: b, tx: tx}
}

// Build returns the assembled journal, or the first error any builder
// call produced.
func (b *JournalBuilder) Build() (*ledger.Journal, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.journal, nil
}

// TransactionBuilder fills in one transaction's header and body.
type TransactionBuilder struct {
	journal *JournalBuilder
	tx      *ledger.Transaction
}

// Date2 sets the secondary date from a YYYY-MM-DD string.
func (b *TransactionBuilder) Date2(date string) *TransactionBuilder {
	d, err := ledger.ParseDate(date)
	if err != nil {
		b.journal.setErr(err)
		return b
	}
	b.tx.Date2 = d
	return b
}

// Status sets the transaction status.
func (b *TransactionBuilder) Status(s ledger.Status) *TransactionBuilder {
	b.tx.Status = s
	return b
}

// Cleared marks the transaction cleared.
func (b *TransactionBuilder) Cleared() *TransactionBuilder {
	return b.Status(ledger.StatusCleared)
}

// Pending marks the transaction pending.
func (b *TransactionBuilder) Pending() *TransactionBuilder {
	return b.Status(ledger.StatusPending)
}

// Code sets the transaction code.
func (b *TransactionBuilder) Code(code string) *TransactionBuilder {
	b.tx.Code = code
	return b
}

// Payee sets the payee.
func (b *TransactionBuilder) Payee(payee string) *TransactionBuilder {
	b.tx.Payee = payee
	return b
}

// Note sets the note.
func (b *TransactionBuilder) Note(note string) *TransactionBuilder {
	b.tx.Note = note
	return b
}

// Tag upserts a header tag.
func (b *TransactionBuilder) Tag(name, value string) *TransactionBuilder {
	b.tx.Tags = b.tx.Tags.Upsert(name, value)
	return b
}

// Comment appends a comment line to the transaction body.
func (b *TransactionBuilder) Comment(text string) *TransactionBuilder {
	b.tx.AddComment(ledger.NewComment(text))
	return b
}

// Posting appends a posting against the given account and returns its
// builder.
func (b *TransactionBuilder) Posting(account string) *PostingBuilder {
	p := ledger.NewPosting(account)
	b.tx.AddPosting(p)
	return &PostingBuilder{tx: b, posting: p}
}

// Done returns to the journal builder.
func (b *TransactionBuilder) Done() *JournalBuilder {
	return b.journal
}

// PostingBuilder fills in one posting.
type PostingBuilder struct {
	tx      *TransactionBuilder
	posting *ledger.Posting
}

// Status sets the posting status.
func (b *PostingBuilder) Status(s ledger.Status) *PostingBuilder {
	b.posting.Status = s
	return b
}

// Cleared marks the posting cleared.
func (b *PostingBuilder) Cleared() *PostingBuilder {
	return b.Status(ledger.StatusCleared)
}

// Pending marks the posting pending.
func (b *PostingBuilder) Pending() *PostingBuilder {
	return b.Status(ledger.StatusPending)
}

// Amount parses a free-form amount string, cost annotation included.
func (b *PostingBuilder) Amount(s string) *PostingBuilder {
	ca, err := ledger.ParseCostedAmount(s)
	if err != nil {
		b.tx.journal.setErr(err)
		return b
	}
	b.posting.Amount = &ca
	return b
}

// AmountValue sets the amount from an already-built costed amount.
func (b *PostingBuilder) AmountValue(ca ledger.CostedAmount) *PostingBuilder {
	b.posting.Amount = &ca
	return b
}

// Balance parses a free-form balance assertion amount.
func (b *PostingBuilder) Balance(s string) *PostingBuilder {
	ca, err := ledger.ParseCostedAmount(s)
	if err != nil {
		b.tx.journal.setErr(err)
		return b
	}
	b.posting.Balance = &ca
	return b
}

// BalanceValue sets the balance from an already-built costed amount.
func (b *PostingBuilder) BalanceValue(ca ledger.CostedAmount) *PostingBuilder {
	b.posting.Balance = &ca
	return b
}

// Comment attaches a comment to the posting.
func (b *PostingBuilder) Comment(text string) *PostingBuilder {
	c := ledger.NewComment(text)
	b.posting.Comment = &c
	return b
}

// Date sets the posting date from a YYYY-MM-DD string.
func (b *PostingBuilder) Date(date string) *PostingBuilder {
	d, err := ledger.ParseDate(date)
	if err != nil {
		b.tx.journal.setErr(err)
		return b
	}
	b.posting.Date = d
	return b
}

// Date2 sets the secondary posting date from a YYYY-MM-DD string.
func (b *PostingBuilder) Date2(date string) *PostingBuilder {
	d, err := ledger.ParseDate(date)
	if err != nil {
		b.tx.journal.setErr(err)
		return b
	}
	b.posting.Date2 = d
	return b
}

// Tag upserts a posting tag.
func (b *PostingBuilder) Tag(name, value string) *PostingBuilder {
	b.posting.Tags = b.posting.Tags.Upsert(name, value)
	return b
}

// Done returns to the transaction builder.
func (b *PostingBuilder) Done() *TransactionBuilder {
	return b.tx
}
