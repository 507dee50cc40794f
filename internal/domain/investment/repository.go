package investment

import (
	"context"

	"github.com/shopspring/decimal"
)

type Repository interface {
	Create(ctx context.Context, inv *Investment) error
	// SumByLoanID is the authoritative funded amount for a loan. Callers
	// needing a race-free value must hold the loan row lock first.
	SumByLoanID(ctx context.Context, loanNumericID uint64) (decimal.Decimal, error)
	SumByInvestorID(ctx context.Context, investorID string) (decimal.Decimal, error)
	CountByLoanID(ctx context.Context, loanNumericID uint64) (int64, error)
	ListByLoanID(ctx context.Context, loanNumericID uint64) ([]Investment, error)
	ListByInvestorID(ctx context.Context, investorID string) ([]Investment, error)
}
