package ledger

import "strings"

// Transaction is a dated group of postings and comments with header
// metadata. Entries render in the order they were added; the
// transaction never reorders them.
type Transaction struct {
	Date   Date
	Date2  Date
	Status Status
	Code   string
	Payee  string
	Note   string
	Tags   Tags

	entries []Entry
}

// NewTransaction builds an unmarked transaction on the given date.
func NewTransaction(date Date) *Transaction {
	return &Transaction{Date: date}
}

// AddPosting appends a posting to the transaction body.
func (t *Transaction) AddPosting(p *Posting) {
	t.entries = append(t.entries, p)
}

// AddComment appends a comment to the transaction body.
func (t *Transaction) AddComment(c Comment) {
	t.entries = append(t.entries, c)
}

// Entries returns the body in append order.
func (t *Transaction) Entries() []Entry {
	return t.entries
}

// ToLedger renders the header line followed by each body entry at a
// fixed 4-space indent:
//
//	<date>=<date2> <status> (<code>) <payee> | <note> ; <tags>
//
// The status marker uses the suffix form (" !" / " *") after the
// dates. Transactions always start at column zero; the indent argument
// is ignored.
func (t *Transaction) ToLedger(indent int) string {
	var sb strings.Builder
	sb.WriteString(t.Date.String())
	if !t.Date2.IsZero() {
		sb.WriteString("=")
		sb.WriteString(t.Date2.String())
	}
	sb.WriteString(t.Status.headerSuffix())
	if t.Code != "" {
		sb.WriteString(" (")
		sb.WriteString(t.Code)
		sb.WriteString(")")
	}
	if t.Payee != "" {
		sb.WriteString(" ")
		sb.WriteString(t.Payee)
	}
	if t.Note != "" {
		sb.WriteString(" | ")
		sb.WriteString(t.Note)
	}
	if tagsStr := t.Tags.String(); tagsStr != "" {
		sb.WriteString(" ; ")
		sb.WriteString(tagsStr)
	}
	sb.WriteString("\n")
	for i, e := range t.entries {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(e.ToLedger(4))
	}
	return sb.String()
}
