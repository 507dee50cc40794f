package investment

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrTooSmall        = errors.New("investment below minimum ticket for this loan")
	ErrExceedsCapacity = errors.New("investment exceeds remaining loan capacity")
	ErrInvalidAmount   = errors.New("investment amount must be positive")
)

// Investment is append-only: never updated or deleted once committed.
// All writes go through the admission usecase; nothing inserts rows directly.
type Investment struct {
	ID           uint64          `gorm:"primaryKey;column:id" json:"-"`
	InvestmentID string          `gorm:"size:32;uniqueIndex:ux_investments_investment_id" json:"investment_id"`
	LoanID       uint64          `gorm:"column:loan_id;not null;index:idx_investments_loan" json:"-"`
	InvestorID   string          `gorm:"size:32;index:idx_investments_investor" json:"investor_id"`
	Amount       decimal.Decimal `gorm:"type:decimal(18,2)" json:"amount"`
	IsAnonymous  bool            `gorm:"column:is_anonymous" json:"is_anonymous"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (Investment) TableName() string { return "investments" }
