package repayment

import "context"

type Repository interface {
	Create(ctx context.Context, r *Repayment) error
	GetByLoanID(ctx context.Context, loanNumericID uint64) (*Repayment, error)
}
