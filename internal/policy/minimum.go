// Package policy holds the minimum-investment rules. Business has changed the
// rule more than once (flat floor vs. percentage tiers), so the variant is
// picked by configuration at construction, never hard-coded at call sites.
package policy

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MinimumInvestment maps the loan size to the smallest ticket an investor may
// commit. Output is never clamped to remaining capacity here; admission does
// that (the floor relaxes as the loan tops off).
type MinimumInvestment interface {
	MinimumFor(amountRequested decimal.Decimal) decimal.Decimal
}

// Flat is a constant floor regardless of loan size.
type Flat struct {
	Floor decimal.Decimal
}

func (f Flat) MinimumFor(decimal.Decimal) decimal.Decimal { return f.Floor }

// Tiered scales the floor as a percentage of the loan by bracket:
// up to 1k the whole loan, up to 10k 5%, up to 100k 10%, above 20%.
type Tiered struct{}

var (
	tier1Cap = decimal.NewFromInt(1_000)
	tier2Cap = decimal.NewFromInt(10_000)
	tier3Cap = decimal.NewFromInt(100_000)

	pct5  = decimal.NewFromFloat(0.05)
	pct10 = decimal.NewFromFloat(0.10)
	pct20 = decimal.NewFromFloat(0.20)
)

func (Tiered) MinimumFor(amountRequested decimal.Decimal) decimal.Decimal {
	switch {
	case amountRequested.LessThanOrEqual(tier1Cap):
		return amountRequested
	case amountRequested.LessThanOrEqual(tier2Cap):
		return amountRequested.Mul(pct5)
	case amountRequested.LessThanOrEqual(tier3Cap):
		return amountRequested.Mul(pct10)
	default:
		return amountRequested.Mul(pct20)
	}
}

// DefaultFlatFloor is the constant ticket floor for the flat variant.
var DefaultFlatFloor = decimal.NewFromInt(100)

// FromName resolves a configured variant name ("flat" or "tiered").
func FromName(name string) (MinimumInvestment, error) {
	switch name {
	case "", "flat":
		return Flat{Floor: DefaultFlatFloor}, nil
	case "tiered":
		return Tiered{}, nil
	default:
		return nil, fmt.Errorf("unknown minimum-investment policy %q", name)
	}
}
