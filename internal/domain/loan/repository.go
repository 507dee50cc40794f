package loan

import "context"

type Repository interface {
	Create(ctx context.Context, l *LoanRequest) error
	GetByLoanID(ctx context.Context, loanID string) (*LoanRequest, error)
	// GetByID resolves the internal numeric key investments reference.
	GetByID(ctx context.Context, id uint64) (*LoanRequest, error)
	// GetByLoanIDForUpdate locks the loan row for the duration of the
	// surrounding transaction. Admission and settlement serialize on it.
	GetByLoanIDForUpdate(ctx context.Context, loanID string) (*LoanRequest, error)
	ListOpen(ctx context.Context) ([]LoanRequest, error)
	Save(ctx context.Context, l *LoanRequest) error
	SoftDelete(ctx context.Context, l *LoanRequest, deletedBy string) error
}
