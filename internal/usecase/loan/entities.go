package loan

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateLoanInput struct {
	BorrowerID      string          `json:"borrower_id"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	AmountRequested decimal.Decimal `json:"amount_requested"`
	InterestRate    decimal.Decimal `json:"interest_rate"`
	RepaymentMonths int             `json:"repayment_months"`
	Currency        string          `json:"currency"`
}

type UpdateLoanInput struct {
	LoanID          string          `json:"-"`
	BorrowerID      string          `json:"borrower_id"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	AmountRequested decimal.Decimal `json:"amount_requested"`
	InterestRate    decimal.Decimal `json:"interest_rate"`
	RepaymentMonths int             `json:"repayment_months"`
	Currency        string          `json:"currency"`
}

type LoanDTO struct {
	LoanID          string          `json:"loan_id"`
	BorrowerID      string          `json:"borrower_id"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	AmountRequested decimal.Decimal `json:"amount_requested"`
	AmountFunded    decimal.Decimal `json:"amount_funded"`
	InterestRate    decimal.Decimal `json:"interest_rate"`
	RepaymentMonths int             `json:"repayment_months"`
	Currency        string          `json:"currency"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
}
