package loan

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Status string

const (
	StatusOpen      Status = "open"
	StatusFunded    Status = "funded"
	StatusCompleted Status = "completed"
)

var (
	ErrNotFound            = errors.New("loan not found")
	ErrValidation          = errors.New("invalid loan terms")
	ErrNotOpen             = errors.New("loan is not open for funding")
	ErrHasInvestments      = errors.New("loan already has investments")
	ErrNotOwner            = errors.New("loan does not belong to this borrower")
	ErrConcurrencyConflict = errors.New("concurrent update conflict, retry with fresh state")
)

// MinLoanAmount is the floor on amount_requested, in the loan's own currency.
var MinLoanAmount = decimal.NewFromInt(100)

// MinInterestRate is the APR floor in percent.
var MinInterestRate = decimal.NewFromInt(4)

type LoanRequest struct {
	ID              uint64          `gorm:"primaryKey;column:id" json:"-"`
	LoanID          string          `gorm:"size:32;uniqueIndex:ux_loan_requests_loan_id_active" json:"loan_id"`
	BorrowerID      string          `gorm:"size:32;index:idx_loan_requests_borrower" json:"borrower_id"`
	Title           string          `gorm:"size:255" json:"title"`
	Description     string          `gorm:"type:text" json:"description"`
	AmountRequested decimal.Decimal `gorm:"type:decimal(18,2)" json:"amount_requested"`
	InterestRate    decimal.Decimal `gorm:"type:decimal(6,2)" json:"interest_rate"`
	RepaymentMonths int             `gorm:"column:repayment_months" json:"repayment_months"`
	Currency        string          `gorm:"size:3" json:"currency"`
	Status          Status          `gorm:"type:enum('open','funded','completed');default:'open'" json:"status"`
	StatusUpdatedAt time.Time       `gorm:"autoCreateTime" json:"status_updated_at"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt       gorm.DeletedAt  `gorm:"index" json:"-"`
	DeletedBy       string          `gorm:"size:32" json:"-"`
}

func (LoanRequest) TableName() string { return "loan_requests" }

// RemainingCapacity is amount_requested minus funded, floored at zero.
func (l *LoanRequest) RemainingCapacity(funded decimal.Decimal) decimal.Decimal {
	rem := l.AmountRequested.Sub(funded)
	if rem.IsNegative() {
		return decimal.Zero
	}
	return rem
}
