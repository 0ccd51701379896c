package ledger

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Matches an optional non-numeric prefix, a numeric token, and an
// optional non-numeric suffix. Leftmost match, unanchored.
var amountPattern = regexp.MustCompile(`([^0-9.-]*)([0-9.-]+)([^0-9.-]*)`)

// Amount is a decimal value bound to a Unit. The value is exact
// base-10 arithmetic; binary floats are never involved.
type Amount struct {
	Value decimal.Decimal
	Unit  Unit
}

// NewAmount builds an amount from an explicit value and unit.
func NewAmount(value decimal.Decimal, unit Unit) Amount {
	return Amount{Value: value, Unit: unit}
}

// ParseAmount extracts a value and unit from a free-form string such
// as "$100", "100 USD", or "-50.25 EUR". A symbol before the number
// makes a prefixed unit, a symbol after it a suffixed one; when both
// sides carry symbol characters they concatenate into a single
// prefixed symbol ("$100USD" yields "$USD"). A purely numeric string
// gets the empty unit. A malformed numeric token is a ParseError.
func ParseAmount(s string) (Amount, error) {
	m := amountPattern.FindStringSubmatch(s)
	if m == nil {
		return Amount{}, ParseError{Input: s, Reason: "no numeric token"}
	}
	value, err := decimal.NewFromString(m[2])
	if err != nil {
		return Amount{}, ParseError{Input: s, Reason: "invalid decimal " + m[2]}
	}
	unit := EmptyUnit()
	prefix := strings.TrimSpace(m[1])
	suffix := strings.TrimSpace(m[3])
	if prefix != "" || suffix != "" {
		unit = Unit{Symbol: prefix + suffix, Precision: 2, Prefix: prefix != ""}
	}
	return Amount{Value: value, Unit: unit}, nil
}

// ToLedger renders the amount rounded (half away from zero) to the
// unit's precision, always showing the full count of decimal digits.
// Prefixed symbols attach with no space; suffixed ones follow a single
// space. An empty symbol still gets its separator space, a quirk kept
// for compatibility with existing generated files.
func (a Amount) ToLedger() string {
	formatted := a.Value.StringFixed(a.Unit.Precision)
	if a.Unit.Prefix {
		return a.Unit.Symbol + formatted
	}
	return formatted + " " + a.Unit.Symbol
}
