package mysql

import (
	"context"

	repaymentDomain "peerlend-backend/internal/domain/repayment"

	"gorm.io/gorm"
)

type RepaymentRepository struct{ db *gorm.DB }

func NewRepaymentRepository(db *gorm.DB) *RepaymentRepository {
	return &RepaymentRepository{db: db}
}

func (r *RepaymentRepository) Create(ctx context.Context, rep *repaymentDomain.Repayment) error {
	return r.db.WithContext(ctx).Create(rep).Error
}

func (r *RepaymentRepository) GetByLoanID(ctx context.Context, loanNumericID uint64) (*repaymentDomain.Repayment, error) {
	var out repaymentDomain.Repayment
	res := r.db.WithContext(ctx).
		Where("loan_id = ?", loanNumericID).
		First(&out)
	return &out, res.Error
}
