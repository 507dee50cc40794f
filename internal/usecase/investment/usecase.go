// Package investment is the admission gate for the funding ledger: the only
// write path for investment records. Each commit runs under the loan row
// lock, so for a single loan all admissions have a total order and the funded
// sum can never pass amount_requested.
package investment

import (
	"context"
	"errors"
	"fmt"
	"time"

	domainInvestment "peerlend-backend/internal/domain/investment"
	domainLoan "peerlend-backend/internal/domain/loan"
	"peerlend-backend/internal/domain/uow"
	"peerlend-backend/internal/policy"
	"peerlend-backend/pkg/id"

	"gorm.io/gorm"
)

// maxAdmissionRetries bounds the retry loop on transient lock contention.
const maxAdmissionRetries = 3

type Usecase struct {
	uow     uow.UnitOfWork
	minimum policy.MinimumInvestment
}

func NewUsecase(tx uow.UnitOfWork, minimum policy.MinimumInvestment) *Usecase {
	return &Usecase{uow: tx, minimum: minimum}
}

// Invest validates the prospective investment against the ledger and the
// minimum-ticket policy, then commits it atomically. Rejections leave no
// side effects. A transient conflict is retried with fresh reads.
func (u *Usecase) Invest(ctx context.Context, in InvestInput) (*InvestmentDTO, error) {
	if u.uow == nil {
		return nil, errors.New("investment usecase: no unit of work")
	}
	if len(in.InvestorID) != 32 {
		return nil, fmt.Errorf("%w: investor_id must be 32-char hex", domainLoan.ErrValidation)
	}
	if !in.Amount.IsPositive() {
		return nil, domainInvestment.ErrInvalidAmount
	}

	var dto *InvestmentDTO
	var err error
	for attempt := 0; attempt < maxAdmissionRetries; attempt++ {
		dto, err = u.admit(ctx, in)
		if !errors.Is(err, domainLoan.ErrConcurrencyConflict) {
			break
		}
	}
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// ListForLoan returns every admitted investment on a loan. Investors who
// opted into anonymity are reported with a blank investor_id so the list can
// be shown publicly without exposing them.
func (u *Usecase) ListForLoan(ctx context.Context, loanID string) ([]InvestmentDTO, error) {
	if u.uow == nil {
		return nil, errors.New("investment usecase: no unit of work")
	}
	var out []InvestmentDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		l, err := r.Loans.GetByLoanID(ctx, loanID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainLoan.ErrNotFound
			}
			return err
		}
		invs, err := r.Investments.ListByLoanID(ctx, l.ID)
		if err != nil {
			return err
		}
		out = make([]InvestmentDTO, 0, len(invs))
		for _, inv := range invs {
			investorID := inv.InvestorID
			if inv.IsAnonymous {
				investorID = ""
			}
			out = append(out, InvestmentDTO{
				InvestmentID: inv.InvestmentID,
				LoanID:       l.LoanID,
				InvestorID:   investorID,
				Amount:       inv.Amount,
				IsAnonymous:  inv.IsAnonymous,
				LoanStatus:   string(l.Status),
				CreatedAt:    inv.CreatedAt,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListByInvestor returns the investor's own portfolio with the loan each
// ticket funds. Anonymity is a public-facing mask, so the owner still sees
// their own entries in full.
func (u *Usecase) ListByInvestor(ctx context.Context, investorID string) ([]PortfolioEntryDTO, error) {
	if u.uow == nil {
		return nil, errors.New("investment usecase: no unit of work")
	}
	var out []PortfolioEntryDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		invs, err := r.Investments.ListByInvestorID(ctx, investorID)
		if err != nil {
			return err
		}
		loans := make(map[uint64]*domainLoan.LoanRequest, len(invs))
		out = make([]PortfolioEntryDTO, 0, len(invs))
		for _, inv := range invs {
			l, ok := loans[inv.LoanID]
			if !ok {
				l, err = r.Loans.GetByID(ctx, inv.LoanID)
				if err != nil {
					return err
				}
				loans[inv.LoanID] = l
			}
			out = append(out, PortfolioEntryDTO{
				InvestmentID: inv.InvestmentID,
				LoanID:       l.LoanID,
				LoanTitle:    l.Title,
				LoanStatus:   string(l.Status),
				Amount:       inv.Amount,
				IsAnonymous:  inv.IsAnonymous,
				CreatedAt:    inv.CreatedAt,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (u *Usecase) admit(ctx context.Context, in InvestInput) (*InvestmentDTO, error) {
	var dto *InvestmentDTO
	err := u.uow.WithinLoanTx(ctx, in.LoanID, func(r uow.Repos, l *domainLoan.LoanRequest) error {
		if l.Status != domainLoan.StatusOpen {
			return domainLoan.ErrNotOpen
		}

		funded, err := r.Investments.SumByLoanID(ctx, l.ID)
		if err != nil {
			return err
		}
		remaining := l.RemainingCapacity(funded)

		// The policy floor relaxes as the loan tops off so the last sliver
		// can still be filled.
		policyMin := u.minimum.MinimumFor(l.AmountRequested)
		effectiveMin := policyMin
		if remaining.LessThan(effectiveMin) {
			effectiveMin = remaining
		}

		if in.Amount.LessThan(effectiveMin) {
			return fmt.Errorf("%w: minimum for this loan is %s", domainInvestment.ErrTooSmall, effectiveMin.StringFixed(2))
		}
		if in.Amount.GreaterThan(remaining) {
			return fmt.Errorf("%w: remaining capacity is %s", domainInvestment.ErrExceedsCapacity, remaining.StringFixed(2))
		}

		inv := &domainInvestment.Investment{
			InvestmentID: id.NewID32(),
			LoanID:       l.ID,
			InvestorID:   in.InvestorID,
			Amount:       in.Amount,
			IsAnonymous:  in.IsAnonymous,
		}
		if err := r.Investments.Create(ctx, inv); err != nil {
			return err
		}

		// Still inside the lock scope: the full-funding transition cannot
		// race another commit on the same loan.
		if funded.Add(in.Amount).Equal(l.AmountRequested) {
			l.Status = domainLoan.StatusFunded
			l.StatusUpdatedAt = time.Now().UTC()
			if err := r.Loans.Save(ctx, l); err != nil {
				return err
			}
		}

		dto = &InvestmentDTO{
			InvestmentID: inv.InvestmentID,
			LoanID:       l.LoanID,
			InvestorID:   inv.InvestorID,
			Amount:       inv.Amount,
			IsAnonymous:  inv.IsAnonymous,
			LoanStatus:   string(l.Status),
			CreatedAt:    inv.CreatedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}
