package repayment

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound            = errors.New("repayment not found")
	ErrAlreadySettled      = errors.New("loan already settled")
	ErrInsufficientFunding = errors.New("loan is not fully funded")
)

// Table: repayments. The unique index on loan_id enforces the 1:1 shape at
// the storage layer; the usecase checks under the loan row lock first.
type Repayment struct {
	ID          uint64          `gorm:"column:id;primaryKey;autoIncrement"`
	RepaymentID string          `gorm:"column:repayment_id;type:char(32);not null;uniqueIndex:ux_repayments_repayment_id"`
	LoanID      uint64          `gorm:"column:loan_id;not null;uniqueIndex:ux_repayments_loan"`
	Amount      decimal.Decimal `gorm:"column:amount;type:decimal(18,2)"`
	IsOnTime    bool            `gorm:"column:is_on_time"`
	PaymentDate time.Time       `gorm:"column:payment_date;not null"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime"`
}

func (Repayment) TableName() string { return "repayments" }
