package repayment

import (
	"time"

	"github.com/shopspring/decimal"
)

type SettleInput struct {
	LoanID     string `json:"-"`
	BorrowerID string `json:"borrower_id"`
}

type RepaymentDTO struct {
	RepaymentID string          `json:"repayment_id"`
	LoanID      string          `json:"loan_id"`
	Amount      decimal.Decimal `json:"amount"`
	IsOnTime    bool            `json:"is_on_time"`
	PaymentDate time.Time       `json:"payment_date"`
}
