package ledger

import "strings"

// Comment is a free-text annotation, possibly spanning several lines.
type Comment struct {
	Text string
}

// NewComment builds a comment from its text.
func NewComment(text string) Comment {
	return Comment{Text: text}
}

// ToLedger renders every line of the comment as "; text" at the given
// indent, with surrounding whitespace trimmed per line.
func (c Comment) ToLedger(indent int) string {
	pad := strings.Repeat(" ", indent)
	lines := strings.Split(c.Text, "\n")
	for i, line := range lines {
		lines[i] = pad + "; " + strings.TrimSpace(line)
	}
	return strings.Join(lines, "\n")
}
