package loan

import (
	"context"
	"errors"
	"fmt"
	"time"

	"peerlend-backend/internal/domain/loan"
	"peerlend-backend/internal/domain/uow"
	"peerlend-backend/internal/fx"
	"peerlend-backend/pkg/id"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Usecase struct {
	repo loan.Repository
	uow  uow.UnitOfWork
}

func NewUsecase(r loan.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: r, uow: tx}
}

func (u *Usecase) Create(ctx context.Context, in CreateLoanInput) (*LoanDTO, error) {
	if err := validateTerms(in.BorrowerID, in.AmountRequested, in.InterestRate, in.RepaymentMonths, in.Currency); err != nil {
		return nil, err
	}

	l := &loan.LoanRequest{
		LoanID:          id.NewID32(),
		BorrowerID:      in.BorrowerID,
		Title:           in.Title,
		Description:     in.Description,
		AmountRequested: in.AmountRequested,
		InterestRate:    in.InterestRate,
		RepaymentMonths: in.RepaymentMonths,
		Currency:        in.Currency,
		Status:          loan.StatusOpen,
		StatusUpdatedAt: time.Now().UTC(),
	}
	if err := u.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	return toDTO(l, decimal.Zero), nil
}

func (u *Usecase) Get(ctx context.Context, loanID string) (*LoanDTO, error) {
	l, err := u.repo.GetByLoanID(ctx, loanID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, loan.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	funded, err := u.FundedAmount(ctx, loanID)
	if err != nil {
		return nil, err
	}
	return toDTO(l, funded), nil
}

// ListOpen returns open loans for the investor browse view, newest first,
// each with its funded total so the UI can show remaining capacity.
func (u *Usecase) ListOpen(ctx context.Context) ([]LoanDTO, error) {
	var out []LoanDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		loans, err := r.Loans.ListOpen(ctx)
		if err != nil {
			return err
		}
		out = make([]LoanDTO, 0, len(loans))
		for i := range loans {
			funded, err := r.Investments.SumByLoanID(ctx, loans[i].ID)
			if err != nil {
				return err
			}
			out = append(out, *toDTO(&loans[i], funded))
		}
		return nil
	})
	return out, err
}

// FundedAmount is the authoritative running total for a loan: the SUM over
// committed investments, never a stored column.
func (u *Usecase) FundedAmount(ctx context.Context, loanID string) (decimal.Decimal, error) {
	var funded decimal.Decimal
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		l, err := r.Loans.GetByLoanID(ctx, loanID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return loan.ErrNotFound
		}
		if err != nil {
			return err
		}
		funded, err = r.Investments.SumByLoanID(ctx, l.ID)
		return err
	})
	return funded, err
}

// Update rewrites the terms of a loan that has not attracted any investment
// yet. Once a single investment exists the loan is immutable except for
// status transitions, so the check runs under the loan row lock.
func (u *Usecase) Update(ctx context.Context, in UpdateLoanInput) (*LoanDTO, error) {
	if err := validateTerms(in.BorrowerID, in.AmountRequested, in.InterestRate, in.RepaymentMonths, in.Currency); err != nil {
		return nil, err
	}

	var dto *LoanDTO
	err := u.uow.WithinLoanTx(ctx, in.LoanID, func(r uow.Repos, l *loan.LoanRequest) error {
		if l.BorrowerID != in.BorrowerID {
			return loan.ErrNotOwner
		}
		n, err := r.Investments.CountByLoanID(ctx, l.ID)
		if err != nil {
			return err
		}
		if n > 0 {
			return loan.ErrHasInvestments
		}
		l.Title = in.Title
		l.Description = in.Description
		l.AmountRequested = in.AmountRequested
		l.InterestRate = in.InterestRate
		l.RepaymentMonths = in.RepaymentMonths
		l.Currency = in.Currency
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		dto = toDTO(l, decimal.Zero)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Delete soft-deletes an uninvested loan owned by the caller.
func (u *Usecase) Delete(ctx context.Context, loanID, borrowerID string) error {
	return u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *loan.LoanRequest) error {
		if l.BorrowerID != borrowerID {
			return loan.ErrNotOwner
		}
		n, err := r.Investments.CountByLoanID(ctx, l.ID)
		if err != nil {
			return err
		}
		if n > 0 {
			return loan.ErrHasInvestments
		}
		return r.Loans.SoftDelete(ctx, l, borrowerID)
	})
}

func validateTerms(borrowerID string, amount, rate decimal.Decimal, months int, currency string) error {
	if len(borrowerID) != 32 {
		return fmt.Errorf("%w: borrower_id must be 32-char hex", loan.ErrValidation)
	}
	if amount.LessThan(loan.MinLoanAmount) {
		return fmt.Errorf("%w: amount_requested below minimum %s", loan.ErrValidation, loan.MinLoanAmount)
	}
	if rate.LessThan(loan.MinInterestRate) {
		return fmt.Errorf("%w: interest_rate below minimum %s%%", loan.ErrValidation, loan.MinInterestRate)
	}
	if months < 1 {
		return fmt.Errorf("%w: repayment_months must be positive", loan.ErrValidation)
	}
	if !fx.IsSupported(currency) {
		return fmt.Errorf("%w: unsupported currency %q", loan.ErrValidation, currency)
	}
	return nil
}

func toDTO(l *loan.LoanRequest, funded decimal.Decimal) *LoanDTO {
	return &LoanDTO{
		LoanID:          l.LoanID,
		BorrowerID:      l.BorrowerID,
		Title:           l.Title,
		Description:     l.Description,
		AmountRequested: l.AmountRequested,
		AmountFunded:    funded,
		InterestRate:    l.InterestRate,
		RepaymentMonths: l.RepaymentMonths,
		Currency:        l.Currency,
		Status:          string(l.Status),
		CreatedAt:       l.CreatedAt,
	}
}
