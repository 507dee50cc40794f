package mysql

import (
	"context"
	"errors"

	borrowerDomain "peerlend-backend/internal/domain/borrower"

	"gorm.io/gorm"
)

type BorrowerRepository struct{ db *gorm.DB }

func NewBorrowerRepository(db *gorm.DB) *BorrowerRepository {
	return &BorrowerRepository{db: db}
}

func (r *BorrowerRepository) GetByUserID(ctx context.Context, userID string) (*borrowerDomain.Profile, error) {
	var out borrowerDomain.Profile
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, borrowerDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *BorrowerRepository) Save(ctx context.Context, p *borrowerDomain.Profile) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *BorrowerRepository) IncrementSuccessfulLoans(ctx context.Context, userID string) error {
	res := r.db.WithContext(ctx).
		Model(&borrowerDomain.Profile{}).
		Where("user_id = ?", userID).
		UpdateColumn("successful_loans_count", gorm.Expr("successful_loans_count + 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// Borrower never filled a profile in; seed one with the first success.
		return r.db.WithContext(ctx).Create(&borrowerDomain.Profile{
			UserID:               userID,
			SuccessfulLoansCount: 1,
		}).Error
	}
	return nil
}
