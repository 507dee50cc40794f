package http

import (
	"net/http"

	"peerlend-backend/internal/usecase/loan"
	"peerlend-backend/pkg/id"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type LoanHandler struct{ uc *loan.Usecase }

func NewLoanHandler(uc *loan.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type loanTermsReq struct {
	BorrowerID      string          `json:"borrower_id" validate:"required,hex32"`
	Title           string          `json:"title" validate:"required"`
	Description     string          `json:"description"`
	AmountRequested decimal.Decimal `json:"amount_requested" validate:"required"`
	InterestRate    decimal.Decimal `json:"interest_rate" validate:"required"`
	RepaymentMonths int             `json:"repayment_months" validate:"required,gte=1"`
	Currency        string          `json:"currency" validate:"required,currency_supported"`
}

func (h *LoanHandler) CreateLoan(c echo.Context) error {
	var req loanTermsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.Create(c.Request().Context(), loan.CreateLoanInput{
		BorrowerID:      req.BorrowerID,
		Title:           req.Title,
		Description:     req.Description,
		AmountRequested: req.AmountRequested,
		InterestRate:    req.InterestRate,
		RepaymentMonths: req.RepaymentMonths,
		Currency:        req.Currency,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) ListOpenLoans(c echo.Context) error {
	out, err := h.uc.ListOpen(c.Request().Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LoanHandler) UpdateLoan(c echo.Context) error {
	var req loanTermsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.Update(c.Request().Context(), loan.UpdateLoanInput{
		LoanID:          c.Param("loan_id"),
		BorrowerID:      req.BorrowerID,
		Title:           req.Title,
		Description:     req.Description,
		AmountRequested: req.AmountRequested,
		InterestRate:    req.InterestRate,
		RepaymentMonths: req.RepaymentMonths,
		Currency:        req.Currency,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) DeleteLoan(c echo.Context) error {
	borrowerID := c.Request().Header.Get("X-User-Id")
	if !id.Valid(borrowerID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing or invalid X-User-Id"})
	}
	if err := h.uc.Delete(c.Request().Context(), c.Param("loan_id"), borrowerID); err != nil {
		return writeDomainError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *LoanHandler) GetFundedAmount(c echo.Context) error {
	funded, err := h.uc.FundedAmount(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"loan_id":       c.Param("loan_id"),
		"amount_funded": funded,
	})
}
