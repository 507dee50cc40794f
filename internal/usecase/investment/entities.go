package investment

import (
	"time"

	"github.com/shopspring/decimal"
)

type InvestInput struct {
	LoanID      string          `json:"-"`
	InvestorID  string          `json:"investor_id"`
	Amount      decimal.Decimal `json:"amount"`
	IsAnonymous bool            `json:"is_anonymous"`
}

// PortfolioEntryDTO is one row of an investor's portfolio: the investment
// joined with the loan it funds.
type PortfolioEntryDTO struct {
	InvestmentID string          `json:"investment_id"`
	LoanID       string          `json:"loan_id"`
	LoanTitle    string          `json:"loan_title"`
	LoanStatus   string          `json:"loan_status"`
	Amount       decimal.Decimal `json:"amount"`
	IsAnonymous  bool            `json:"is_anonymous"`
	CreatedAt    time.Time       `json:"created_at"`
}

type InvestmentDTO struct {
	InvestmentID string          `json:"investment_id"`
	LoanID       string          `json:"loan_id"`
	InvestorID   string          `json:"investor_id"`
	Amount       decimal.Decimal `json:"amount"`
	IsAnonymous  bool            `json:"is_anonymous"`
	LoanStatus   string          `json:"loan_status"`
	CreatedAt    time.Time       `json:"created_at"`
}
