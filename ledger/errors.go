package ledger

import "fmt"

// ParseError reports input that could not be interpreted during
// construction. Construction is all-or-nothing: a ParseError means no
// value was produced.
type ParseError struct {
	Input  string
	Reason string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("parsing %q: %s", e.Input, e.Reason)
}

// InvalidStateError reports an attempt to construct a value whose
// fields would violate an internal invariant.
type InvalidStateError struct {
	Reason string
}

func (e InvalidStateError) Error() string {
	return "invalid state: " + e.Reason
}
