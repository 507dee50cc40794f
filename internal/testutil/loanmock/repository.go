package loanmock

import (
	"context"

	domain "peerlend-backend/internal/domain/loan"

	"gorm.io/gorm"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Only fill in the methods a test needs.
type Repo struct {
	CreateFn               func(ctx context.Context, l *domain.LoanRequest) error
	GetByLoanIDFn          func(ctx context.Context, loanID string) (*domain.LoanRequest, error)
	GetByIDFn              func(ctx context.Context, id uint64) (*domain.LoanRequest, error)
	GetByLoanIDForUpdateFn func(ctx context.Context, loanID string) (*domain.LoanRequest, error)
	ListOpenFn             func(ctx context.Context) ([]domain.LoanRequest, error)
	SaveFn                 func(ctx context.Context, l *domain.LoanRequest) error
	SoftDeleteFn           func(ctx context.Context, l *domain.LoanRequest, deletedBy string) error
}

func (m *Repo) Create(ctx context.Context, l *domain.LoanRequest) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByLoanID(ctx context.Context, loanID string) (*domain.LoanRequest, error) {
	if m.GetByLoanIDFn != nil {
		return m.GetByLoanIDFn(ctx, loanID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.LoanRequest, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*domain.LoanRequest, error) {
	if m.GetByLoanIDForUpdateFn != nil {
		return m.GetByLoanIDForUpdateFn(ctx, loanID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) ListOpen(ctx context.Context) ([]domain.LoanRequest, error) {
	if m.ListOpenFn != nil {
		return m.ListOpenFn(ctx)
	}
	return nil, nil
}

func (m *Repo) Save(ctx context.Context, l *domain.LoanRequest) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}

func (m *Repo) SoftDelete(ctx context.Context, l *domain.LoanRequest, deletedBy string) error {
	if m.SoftDeleteFn != nil {
		return m.SoftDeleteFn(ctx, l, deletedBy)
	}
	return nil
}
