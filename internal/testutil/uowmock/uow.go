package uowmock

import (
	"context"
	"errors"
	"sync"

	"peerlend-backend/internal/domain/loan"
	"peerlend-backend/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn     func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinLoanTxFn func(ctx context.Context, loanID string, fn func(r uow.Repos, l *loan.LoanRequest) error) error
}

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinLoanTx(ctx context.Context, loanID string, fn func(r uow.Repos, l *loan.LoanRequest) error) error {
	if m.WithinLoanTxFn != nil {
		return m.WithinLoanTxFn(ctx, loanID, fn)
	}
	return errUnimplemented
}

// Serialized mimics the production lock discipline in memory: WithinLoanTx
// holds a per-loan mutex around fn, the way the row lock does in MySQL.
// Concurrency tests drive goroutines through it.
type Serialized struct {
	Loan  *loan.LoanRequest
	Repos uow.Repos

	mu sync.Mutex
}

func (s *Serialized) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.Repos)
}

func (s *Serialized) WithinLoanTx(ctx context.Context, loanID string, fn func(r uow.Repos, l *loan.LoanRequest) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Loan == nil || s.Loan.LoanID != loanID {
		return loan.ErrNotFound
	}
	return fn(s.Repos, s.Loan)
}
