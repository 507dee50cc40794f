package borrowermock

import (
	"context"

	domain "peerlend-backend/internal/domain/borrower"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	GetByUserIDFn              func(ctx context.Context, userID string) (*domain.Profile, error)
	SaveFn                     func(ctx context.Context, p *domain.Profile) error
	IncrementSuccessfulLoansFn func(ctx context.Context, userID string) error
}

func (m *Repo) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	if m.GetByUserIDFn != nil {
		return m.GetByUserIDFn(ctx, userID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) Save(ctx context.Context, p *domain.Profile) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, p)
	}
	return nil
}

func (m *Repo) IncrementSuccessfulLoans(ctx context.Context, userID string) error {
	if m.IncrementSuccessfulLoansFn != nil {
		return m.IncrementSuccessfulLoansFn(ctx, userID)
	}
	return nil
}
