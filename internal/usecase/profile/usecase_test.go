package profile

import (
	"context"
	"errors"
	"testing"

	"peerlend-backend/internal/domain/borrower"
	"peerlend-backend/internal/domain/loan"
	"peerlend-backend/internal/testutil/borrowermock"
	"peerlend-backend/internal/testutil/investmentmock"
	"peerlend-backend/internal/trust"

	"github.com/shopspring/decimal"
)

func intPtr(v int) *int { return &v }

func TestGet_WithProfile(t *testing.T) {
	borrowers := &borrowermock.Repo{
		GetByUserIDFn: func(ctx context.Context, userID string) (*borrower.Profile, error) {
			return &borrower.Profile{
				UserID:               userID,
				CreditScore:          intPtr(760),
				SuccessfulLoansCount: 4,
				Bio:                  "smallholder coffee farm",
				IsVerified:           true,
			}, nil
		},
	}
	investments := &investmentmock.Repo{
		SumByInvestorIDFn: func(ctx context.Context, investorID string) (decimal.Decimal, error) {
			return decimal.NewFromInt(2_500), nil
		},
	}

	uc := NewUsecase(borrowers, investments, trust.DefaultConfig())
	dto, err := uc.Get(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if dto.TrustScore != 5.0 {
		t.Errorf("trust score = %v, want 5.0", dto.TrustScore)
	}
	if !dto.TotalInvested.Equal(decimal.NewFromInt(2_500)) {
		t.Errorf("total invested = %s", dto.TotalInvested)
	}
	if dto.Bio != "smallholder coffee farm" || !dto.IsVerified {
		t.Errorf("profile fields lost: %+v", dto)
	}
}

func TestGet_NoProfileRowStillScores(t *testing.T) {
	uc := NewUsecase(&borrowermock.Repo{}, &investmentmock.Repo{}, trust.DefaultConfig())

	dto, err := uc.Get(context.Background(), "ghost")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if dto.CreditScore != nil {
		t.Errorf("expected nil credit score, got %v", *dto.CreditScore)
	}
	// No credit score, no history: the base rating for an unknown borrower.
	if dto.TrustScore != 3.0 {
		t.Errorf("trust score = %v, want 3.0", dto.TrustScore)
	}
}

func TestUpsert_RejectsOutOfRangeScore(t *testing.T) {
	uc := NewUsecase(&borrowermock.Repo{}, &investmentmock.Repo{}, trust.DefaultConfig())

	for _, s := range []int{299, 851} {
		_, err := uc.Upsert(context.Background(), UpsertInput{UserID: "u1", CreditScore: intPtr(s)})
		if !errors.Is(err, loan.ErrValidation) {
			t.Errorf("score %d: expected validation error, got %v", s, err)
		}
	}
}

func TestUpsert_BioOnlyKeepsCreditScore(t *testing.T) {
	stored := &borrower.Profile{UserID: "u1", CreditScore: intPtr(710), Bio: "old"}
	borrowers := &borrowermock.Repo{
		GetByUserIDFn: func(ctx context.Context, userID string) (*borrower.Profile, error) {
			return stored, nil
		},
		SaveFn: func(ctx context.Context, p *borrower.Profile) error {
			stored = p
			return nil
		},
	}

	uc := NewUsecase(borrowers, &investmentmock.Repo{}, trust.DefaultConfig())
	dto, err := uc.Upsert(context.Background(), UpsertInput{UserID: "u1", Bio: "new bio"})
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if stored.CreditScore == nil || *stored.CreditScore != 710 {
		t.Fatalf("bio-only edit dropped the credit score: %+v", stored)
	}
	if dto.Bio != "new bio" {
		t.Errorf("bio not applied: %+v", dto)
	}
}

func TestUpsert_NeverTouchesCounters(t *testing.T) {
	var saved *borrower.Profile
	borrowers := &borrowermock.Repo{
		GetByUserIDFn: func(ctx context.Context, userID string) (*borrower.Profile, error) {
			if saved != nil {
				return saved, nil
			}
			return &borrower.Profile{UserID: userID, SuccessfulLoansCount: 7, DefaultsCount: 1}, nil
		},
		SaveFn: func(ctx context.Context, p *borrower.Profile) error {
			saved = p
			return nil
		},
	}

	uc := NewUsecase(borrowers, &investmentmock.Repo{}, trust.DefaultConfig())
	dto, err := uc.Upsert(context.Background(), UpsertInput{UserID: "u1", CreditScore: intPtr(680), Bio: "updated"})
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if saved.SuccessfulLoansCount != 7 || saved.DefaultsCount != 1 {
		t.Errorf("counters rewritten on upsert: %+v", saved)
	}
	if dto.Bio != "updated" || dto.CreditScore == nil || *dto.CreditScore != 680 {
		t.Errorf("upserted fields not applied: %+v", dto)
	}
}
