package ledger

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// Posting is one account leg of a transaction: a debit or credit
// against an account, with optional amount, balance assertion,
// comment, dates, and tags. A zero Date/Date2 means unset; empty
// strings mean absent.
type Posting struct {
	Account string
	Status  Status
	Amount  *CostedAmount
	Balance *CostedAmount
	Comment *Comment
	Date    Date
	Date2   Date
	Tags    Tags
}

// NewPosting builds an unmarked posting against the given account.
func NewPosting(account string) *Posting {
	return &Posting{Account: account}
}

// Clone returns an independent deep copy of the posting.
func (p *Posting) Clone() *Posting {
	q := *p
	if p.Amount != nil {
		a := p.Amount.Clone()
		q.Amount = &a
	}
	if p.Balance != nil {
		b := p.Balance.Clone()
		q.Balance = &b
	}
	if p.Comment != nil {
		c := *p.Comment
		q.Comment = &c
	}
	q.Tags = slices.Clone(p.Tags)
	return &q
}

// ToLedger renders the posting as one logical ledger line, indented by
// the given number of spaces:
//
//	<indent><status><account>  <amount> = <balance> ; <tags> <comment>
//
// The status marker uses the prefix form ("! " / "* "). Date and Date2
// are rendered as synthetic "date"/"date2" tags, upserted after the
// posting's own tags so they win on a name collision. With no tags the
// comment's first line joins the posting line and later lines align
// under it; with tags the whole comment moves to fully indented lines.
func (p *Posting) ToLedger(indent int) string {
	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", indent))
	sb.WriteString(p.Status.postingPrefix())
	sb.WriteString(p.Account)
	sb.WriteString(" ")
	if p.Amount != nil {
		sb.WriteString(" ")
		sb.WriteString(p.Amount.ToLedger())
	}
	if p.Balance != nil {
		sb.WriteString(" = ")
		sb.WriteString(p.Balance.ToLedger())
	}
	commentCol := utf8.RuneCountInString(sb.String()) + 1

	tags := slices.Clone(p.Tags)
	if !p.Date.IsZero() {
		tags = tags.Upsert("date", p.Date.String())
	}
	if !p.Date2.IsZero() {
		tags = tags.Upsert("date2", p.Date2.String())
	}
	tagsStr := tags.String()
	if tagsStr != "" {
		sb.WriteString(" ; ")
		sb.WriteString(tagsStr)
	}

	if p.Comment != nil {
		rendered := p.Comment.ToLedger(commentCol)
		if tagsStr == "" {
			sb.WriteString(" ")
			sb.WriteString(strings.TrimLeft(rendered, " "))
		} else {
			sb.WriteString("\n")
			sb.WriteString(rendered)
		}
	}

	return sb.String()
}
