package ledger

import "strings"

// CostType says how a cost annotation applies to its amount.
type CostType int

const (
	CostNone CostType = iota
	CostUnit
	CostTotal
)

// CostedAmount pairs an amount with an optional acquisition cost in
// another unit. The cost and its type always agree: a cost is present
// exactly when the type is CostUnit or CostTotal. The cost fields are
// unexported so the pairing cannot be broken from outside.
type CostedAmount struct {
	Amount Amount
	cost   *Amount
	typ    CostType
}

// NewCostedAmount builds a costed amount with no cost attached.
func NewCostedAmount(amount Amount) CostedAmount {
	return CostedAmount{Amount: amount}
}

// NewCostedAmountWithCost builds a costed amount with an explicit cost
// and type. CostNone is rejected: a present cost needs CostUnit or
// CostTotal.
func NewCostedAmountWithCost(amount, cost Amount, typ CostType) (CostedAmount, error) {
	if typ != CostUnit && typ != CostTotal {
		return CostedAmount{}, InvalidStateError{Reason: "cost present but cost type is none"}
	}
	return CostedAmount{Amount: amount, cost: &cost, typ: typ}, nil
}

// ParseCostedAmount reads a free-form string with an optional cost
// annotation: "10 USD @ 2 EUR" is a per-unit cost, "10 USD @@ 20 EUR"
// a total cost. A string with several operators splits at the last run
// of '@' characters. Without an operator the whole string is a plain
// amount.
func ParseCostedAmount(s string) (CostedAmount, error) {
	if i := strings.LastIndex(s, "@"); i >= 0 {
		left, right := s[:i], s[i+1:]
		typ := CostUnit
		if strings.HasSuffix(left, "@") {
			left = left[:len(left)-1]
			typ = CostTotal
		}
		amount, err := ParseAmount(strings.TrimSpace(left))
		if err != nil {
			return CostedAmount{}, err
		}
		cost, err := ParseAmount(strings.TrimSpace(right))
		if err != nil {
			return CostedAmount{}, err
		}
		return CostedAmount{Amount: amount, cost: &cost, typ: typ}, nil
	}
	amount, err := ParseAmount(s)
	if err != nil {
		return CostedAmount{}, err
	}
	return CostedAmount{Amount: amount}, nil
}

// Cost returns the cost amount and whether one is present.
func (c CostedAmount) Cost() (Amount, bool) {
	if c.cost == nil {
		return Amount{}, false
	}
	return *c.cost, true
}

// Type returns the cost type; CostNone iff no cost is present.
func (c CostedAmount) Type() CostType {
	return c.typ
}

// UnitCost sets a per-unit cost and returns the receiver for chaining.
func (c *CostedAmount) UnitCost(cost Amount) *CostedAmount {
	c.cost = &cost
	c.typ = CostUnit
	return c
}

// TotalCost sets a total cost and returns the receiver for chaining.
func (c *CostedAmount) TotalCost(cost Amount) *CostedAmount {
	c.cost = &cost
	c.typ = CostTotal
	return c
}

// Clone returns an independent copy; mutating it never touches the
// original.
func (c CostedAmount) Clone() CostedAmount {
	if c.cost != nil {
		cost := *c.cost
		c.cost = &cost
	}
	return c
}

// ToLedger renders the amount, then " @ cost" or " @@ cost" when a
// cost is attached.
func (c CostedAmount) ToLedger() string {
	amount := c.Amount.ToLedger()
	switch c.typ {
	case CostUnit:
		return amount + " @ " + c.cost.ToLedger()
	case CostTotal:
		return amount + " @@ " + c.cost.ToLedger()
	default:
		return amount
	}
}
