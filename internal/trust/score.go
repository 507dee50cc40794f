// Package trust computes the borrower rating shown next to every loan
// request. Pure function of profile inputs; no I/O.
package trust

import "github.com/shopspring/decimal"

const (
	MinRating = 1.0
	MaxRating = 5.0
)

// Config carries the knobs product has not pinned down. The penalty for a
// sub-70% success rate shipped as -1.0 in one surface and -0.5 in another;
// until product settles it, severity is a constructor argument.
type Config struct {
	LowSuccessPenalty float64
}

const (
	PenaltySevere = 1.0
	PenaltyMild   = 0.5
)

func DefaultConfig() Config { return Config{LowSuccessPenalty: PenaltySevere} }

// ConfigFromName resolves the configured severity ("severe" or "mild").
func ConfigFromName(name string) Config {
	if name == "mild" {
		return Config{LowSuccessPenalty: PenaltyMild}
	}
	return DefaultConfig()
}

type Input struct {
	CreditScore          *int
	SuccessfulLoansCount int
	DefaultsCount        int
	TotalInvested        decimal.Decimal
}

var activityBonusThreshold = decimal.NewFromInt(10_000)

// Score returns a rating in [1.0, 5.0] quantized to 0.5 steps.
func Score(in Input, cfg Config) float64 {
	rating := baseRating(in.CreditScore)

	if total := in.SuccessfulLoansCount + in.DefaultsCount; total > 0 {
		successRate := float64(in.SuccessfulLoansCount) / float64(total)
		switch {
		case successRate == 1 && in.SuccessfulLoansCount >= 3:
			rating += 0.5
		case successRate >= 0.9:
			rating += 0.25
		case successRate < 0.7:
			rating -= cfg.LowSuccessPenalty
		}
	}

	if in.TotalInvested.GreaterThan(activityBonusThreshold) {
		rating += 0.25
	}

	if rating < MinRating {
		rating = MinRating
	}
	if rating > MaxRating {
		rating = MaxRating
	}
	return quantizeHalf(rating)
}

func baseRating(creditScore *int) float64 {
	if creditScore == nil {
		return 3.0
	}
	switch s := *creditScore; {
	case s >= 750:
		return 5.0
	case s >= 700:
		return 4.5
	case s >= 650:
		return 4.0
	case s >= 600:
		return 3.5
	default:
		return 3.0
	}
}

// quantizeHalf rounds to the nearest 0.5 step.
func quantizeHalf(r float64) float64 {
	doubled := r * 2
	rounded := float64(int(doubled + 0.5))
	return rounded / 2
}
