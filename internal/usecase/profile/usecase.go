package profile

import (
	"context"
	"errors"
	"fmt"

	"peerlend-backend/internal/domain/borrower"
	"peerlend-backend/internal/domain/investment"
	"peerlend-backend/internal/domain/loan"
	"peerlend-backend/internal/trust"

	"github.com/shopspring/decimal"
)

type Usecase struct {
	borrowers   borrower.Repository
	investments investment.Repository
	trustCfg    trust.Config
}

func NewUsecase(b borrower.Repository, inv investment.Repository, cfg trust.Config) *Usecase {
	return &Usecase{borrowers: b, investments: inv, trustCfg: cfg}
}

type ProfileDTO struct {
	UserID               string          `json:"user_id"`
	CreditScore          *int            `json:"credit_score,omitempty"`
	SuccessfulLoansCount int             `json:"successful_loans_count"`
	DefaultsCount        int             `json:"defaults_count"`
	Bio                  string          `json:"bio"`
	IsVerified           bool            `json:"is_verified"`
	TotalInvested        decimal.Decimal `json:"total_invested"`
	TrustScore           float64         `json:"trust_score"`
}

type UpsertInput struct {
	UserID      string `json:"-"`
	CreditScore *int   `json:"credit_score"`
	Bio         string `json:"bio"`
}

// Get returns the profile with the derived trust score. A user with no
// profile row still gets a score (base rating, no history).
func (u *Usecase) Get(ctx context.Context, userID string) (*ProfileDTO, error) {
	p, err := u.borrowers.GetByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, borrower.ErrNotFound) {
			return nil, err
		}
		p = &borrower.Profile{UserID: userID}
	}

	totalInvested, err := u.investments.SumByInvestorID(ctx, userID)
	if err != nil {
		return nil, err
	}

	score := trust.Score(trust.Input{
		CreditScore:          p.CreditScore,
		SuccessfulLoansCount: p.SuccessfulLoansCount,
		DefaultsCount:        p.DefaultsCount,
		TotalInvested:        totalInvested,
	}, u.trustCfg)

	return &ProfileDTO{
		UserID:               p.UserID,
		CreditScore:          p.CreditScore,
		SuccessfulLoansCount: p.SuccessfulLoansCount,
		DefaultsCount:        p.DefaultsCount,
		Bio:                  p.Bio,
		IsVerified:           p.IsVerified,
		TotalInvested:        totalInvested,
		TrustScore:           score,
	}, nil
}

// TrustScore is the score alone, for callers that only render the stars.
func (u *Usecase) TrustScore(ctx context.Context, userID string) (float64, error) {
	dto, err := u.Get(ctx, userID)
	if err != nil {
		return 0, err
	}
	return dto.TrustScore, nil
}

// Upsert writes the self-service profile fields. Track-record counters are
// owned by settlement and the default-marking process, never set here. An
// absent credit_score leaves the stored one untouched, so a bio-only edit
// cannot drop it.
func (u *Usecase) Upsert(ctx context.Context, in UpsertInput) (*ProfileDTO, error) {
	if in.CreditScore != nil {
		if s := *in.CreditScore; s < borrower.MinCreditScore || s > borrower.MaxCreditScore {
			return nil, fmt.Errorf("%w: credit_score must be between %d and %d", loan.ErrValidation, borrower.MinCreditScore, borrower.MaxCreditScore)
		}
	}

	p, err := u.borrowers.GetByUserID(ctx, in.UserID)
	if err != nil {
		if !errors.Is(err, borrower.ErrNotFound) {
			return nil, err
		}
		p = &borrower.Profile{UserID: in.UserID}
	}
	if in.CreditScore != nil {
		p.CreditScore = in.CreditScore
	}
	p.Bio = in.Bio
	if err := u.borrowers.Save(ctx, p); err != nil {
		return nil, err
	}
	return u.Get(ctx, in.UserID)
}
