package ledger

// Unit describes how a commodity renders: its symbol, display
// precision, and whether the symbol sits before the value. An empty
// symbol means no currency information is available.
//
// Units are plain values: every Amount owns its own copy, so no two
// amounts ever share one.
type Unit struct {
	Symbol    string
	Precision int32
	Prefix    bool
}

// NewUnit builds a prefixed unit with the default precision of 2.
func NewUnit(symbol string) Unit {
	return Unit{Symbol: symbol, Precision: 2, Prefix: true}
}

// EmptyUnit is the unit used whenever no currency information is
// available: no symbol, precision 2, prefixed.
func EmptyUnit() Unit {
	return Unit{Precision: 2, Prefix: true}
}
