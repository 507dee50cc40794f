// Package repayment settles a fully funded loan exactly once: one repayment
// row, one track-record bump, one status transition, all in the same
// transaction under the loan row lock. Re-running settlement is a no-op
// surfaced as ErrAlreadySettled.
package repayment

import (
	"context"
	"errors"
	"time"

	domainLoan "peerlend-backend/internal/domain/loan"
	domainRepayment "peerlend-backend/internal/domain/repayment"
	"peerlend-backend/internal/domain/uow"
	"peerlend-backend/pkg/id"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OnTimeFn decides is_on_time for the repayment record. Whether it should
// compare against a real due date is an open product question; the default
// always reports on time, matching current behavior.
type OnTimeFn func(l *domainLoan.LoanRequest, paidAt time.Time) bool

func AlwaysOnTime(*domainLoan.LoanRequest, time.Time) bool { return true }

type Usecase struct {
	uow    uow.UnitOfWork
	onTime OnTimeFn
	now    func() time.Time
}

func NewUsecase(tx uow.UnitOfWork, onTime OnTimeFn) *Usecase {
	if onTime == nil {
		onTime = AlwaysOnTime
	}
	return &Usecase{uow: tx, onTime: onTime, now: time.Now}
}

var (
	hundred  = decimal.NewFromInt(100)
	twelve   = decimal.NewFromInt(12)
	oneExact = decimal.NewFromInt(1)
)

// TotalRepayment is the payoff under simple (non-compounding) interest:
// principal * (1 + rate/100 * months/12), rounded to cents.
func TotalRepayment(principal, aprPercent decimal.Decimal, termMonths int) decimal.Decimal {
	months := decimal.NewFromInt(int64(termMonths))
	interestFactor := aprPercent.Div(hundred).Mul(months).Div(twelve)
	return principal.Mul(oneExact.Add(interestFactor)).Round(2)
}

// Settle finalizes the loan. Principal is the funded sum, not the original
// ask, in case funding was capped below it.
func (u *Usecase) Settle(ctx context.Context, in SettleInput) (*RepaymentDTO, error) {
	var dto *RepaymentDTO
	err := u.uow.WithinLoanTx(ctx, in.LoanID, func(r uow.Repos, l *domainLoan.LoanRequest) error {
		if l.BorrowerID != in.BorrowerID {
			return domainLoan.ErrNotOwner
		}
		if l.Status == domainLoan.StatusCompleted {
			return domainRepayment.ErrAlreadySettled
		}

		funded, err := r.Investments.SumByLoanID(ctx, l.ID)
		if err != nil {
			return err
		}
		if funded.LessThan(l.AmountRequested) {
			return domainRepayment.ErrInsufficientFunding
		}

		// The unique index on repayments.loan_id is the storage backstop;
		// under the row lock this check is already race-free.
		if _, err := r.Repayments.GetByLoanID(ctx, l.ID); err == nil {
			return domainRepayment.ErrAlreadySettled
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		paidAt := u.now().UTC()
		rep := &domainRepayment.Repayment{
			RepaymentID: id.NewID32(),
			LoanID:      l.ID,
			Amount:      TotalRepayment(funded, l.InterestRate, l.RepaymentMonths),
			IsOnTime:    u.onTime(l, paidAt),
			PaymentDate: paidAt,
		}
		if err := r.Repayments.Create(ctx, rep); err != nil {
			return err
		}

		if err := r.Borrowers.IncrementSuccessfulLoans(ctx, l.BorrowerID); err != nil {
			return err
		}

		l.Status = domainLoan.StatusCompleted
		l.StatusUpdatedAt = paidAt
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}

		dto = &RepaymentDTO{
			RepaymentID: rep.RepaymentID,
			LoanID:      l.LoanID,
			Amount:      rep.Amount,
			IsOnTime:    rep.IsOnTime,
			PaymentDate: rep.PaymentDate,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}
