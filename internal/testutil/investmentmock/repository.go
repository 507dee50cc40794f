package investmentmock

import (
	"context"

	domain "peerlend-backend/internal/domain/investment"

	"github.com/shopspring/decimal"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn           func(ctx context.Context, inv *domain.Investment) error
	SumByLoanIDFn      func(ctx context.Context, loanNumericID uint64) (decimal.Decimal, error)
	SumByInvestorIDFn  func(ctx context.Context, investorID string) (decimal.Decimal, error)
	CountByLoanIDFn    func(ctx context.Context, loanNumericID uint64) (int64, error)
	ListByLoanIDFn     func(ctx context.Context, loanNumericID uint64) ([]domain.Investment, error)
	ListByInvestorIDFn func(ctx context.Context, investorID string) ([]domain.Investment, error)
}

func (m *Repo) Create(ctx context.Context, inv *domain.Investment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, inv)
	}
	return nil
}

func (m *Repo) SumByLoanID(ctx context.Context, loanNumericID uint64) (decimal.Decimal, error) {
	if m.SumByLoanIDFn != nil {
		return m.SumByLoanIDFn(ctx, loanNumericID)
	}
	return decimal.Zero, nil
}

func (m *Repo) SumByInvestorID(ctx context.Context, investorID string) (decimal.Decimal, error) {
	if m.SumByInvestorIDFn != nil {
		return m.SumByInvestorIDFn(ctx, investorID)
	}
	return decimal.Zero, nil
}

func (m *Repo) CountByLoanID(ctx context.Context, loanNumericID uint64) (int64, error) {
	if m.CountByLoanIDFn != nil {
		return m.CountByLoanIDFn(ctx, loanNumericID)
	}
	return 0, nil
}

func (m *Repo) ListByLoanID(ctx context.Context, loanNumericID uint64) ([]domain.Investment, error) {
	if m.ListByLoanIDFn != nil {
		return m.ListByLoanIDFn(ctx, loanNumericID)
	}
	return nil, nil
}

func (m *Repo) ListByInvestorID(ctx context.Context, investorID string) ([]domain.Investment, error) {
	if m.ListByInvestorIDFn != nil {
		return m.ListByInvestorIDFn(ctx, investorID)
	}
	return nil, nil
}
