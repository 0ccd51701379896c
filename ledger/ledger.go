// Package ledger models double-entry accounting data (journals,
// transactions, postings, amounts) and renders it as plain text in the
// format consumed by ledger-compatible command line tools.
//
// Values are built programmatically, attached bottom-up (amounts to
// postings, postings to transactions, transactions to a journal), and
// rendered in one shot with ToLedger. Rendering is a pure read of
// current state: calling it twice on an unmodified value yields
// byte-identical output.
package ledger

// Entry is a renderable element of a journal or transaction body.
type Entry interface {
	// ToLedger renders the entry indented by the given number of spaces.
	ToLedger(indent int) string
}
