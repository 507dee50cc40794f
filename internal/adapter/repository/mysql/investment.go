package mysql

import (
	"context"
	"database/sql"

	investmentDomain "peerlend-backend/internal/domain/investment"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type InvestmentRepository struct{ db *gorm.DB }

func NewInvestmentRepository(db *gorm.DB) *InvestmentRepository {
	return &InvestmentRepository{db: db}
}

func (r *InvestmentRepository) Create(ctx context.Context, inv *investmentDomain.Investment) error {
	return r.db.WithContext(ctx).Create(inv).Error
}

func (r *InvestmentRepository) SumByLoanID(ctx context.Context, loanNumericID uint64) (decimal.Decimal, error) {
	return r.sum(ctx, "loan_id = ?", loanNumericID)
}

func (r *InvestmentRepository) SumByInvestorID(ctx context.Context, investorID string) (decimal.Decimal, error) {
	return r.sum(ctx, "investor_id = ?", investorID)
}

func (r *InvestmentRepository) sum(ctx context.Context, cond string, arg any) (decimal.Decimal, error) {
	var total sql.NullString
	res := r.db.WithContext(ctx).
		Model(&investmentDomain.Investment{}).
		Select("SUM(amount)").
		Where(cond, arg).
		Scan(&total)
	if res.Error != nil {
		return decimal.Zero, res.Error
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(total.String)
}

func (r *InvestmentRepository) CountByLoanID(ctx context.Context, loanNumericID uint64) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).
		Model(&investmentDomain.Investment{}).
		Where("loan_id = ?", loanNumericID).
		Count(&n)
	return n, res.Error
}

func (r *InvestmentRepository) ListByLoanID(ctx context.Context, loanNumericID uint64) ([]investmentDomain.Investment, error) {
	var out []investmentDomain.Investment
	res := r.db.WithContext(ctx).
		Where("loan_id = ?", loanNumericID).
		Order("created_at ASC, id ASC").
		Find(&out)
	return out, res.Error
}

func (r *InvestmentRepository) ListByInvestorID(ctx context.Context, investorID string) ([]investmentDomain.Investment, error) {
	var out []investmentDomain.Investment
	res := r.db.WithContext(ctx).
		Where("investor_id = ?", investorID).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}
