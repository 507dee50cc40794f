package mysql

import (
	"context"
	"errors"

	"peerlend-backend/internal/domain/loan"
	"peerlend-backend/internal/domain/uow"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(reposFor(tx))
	})
	return translateErr(err)
}

func (u *GormUoW) WithinLoanTx(ctx context.Context, loanID string, fn func(r uow.Repos, l *loan.LoanRequest) error) error {
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := reposFor(tx)
		// lock the loan row up-front to prevent races
		l, err := r.Loans.GetByLoanIDForUpdate(ctx, loanID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return loan.ErrNotFound
		}
		if err != nil {
			return err
		}
		return fn(r, l)
	})
	return translateErr(err)
}

func reposFor(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Loans:       &LoanRepository{db: tx},
		Investments: &InvestmentRepository{db: tx},
		Repayments:  &RepaymentRepository{db: tx},
		Borrowers:   &BorrowerRepository{db: tx},
	}
}

// MySQL errno values the engine treats as transient serialization failures.
const (
	errnoLockWaitTimeout = 1205
	errnoDeadlock        = 1213
)

// translateErr maps driver-level lock contention onto the domain conflict
// sentinel so callers can do a bounded retry with fresh reads.
func translateErr(err error) error {
	if err == nil {
		return nil
	}
	var my *mysql.MySQLError
	if errors.As(err, &my) {
		switch my.Number {
		case errnoLockWaitTimeout, errnoDeadlock:
			return loan.ErrConcurrencyConflict
		}
	}
	return err
}
