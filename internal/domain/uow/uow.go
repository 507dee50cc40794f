package uow

import (
	"context"

	"peerlend-backend/internal/domain/borrower"
	"peerlend-backend/internal/domain/investment"
	"peerlend-backend/internal/domain/loan"
	"peerlend-backend/internal/domain/repayment"
)

type Repos struct {
	Loans       loan.Repository
	Investments investment.Repository
	Repayments  repayment.Repository
	Borrowers   borrower.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the loan row first, then pass it in. Every admission
	// or settlement on the same loan serializes behind this lock; loans with
	// different ids never contend.
	WithinLoanTx(ctx context.Context, loanID string, fn func(r Repos, l *loan.LoanRequest) error) error
}
