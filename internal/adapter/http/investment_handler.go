package http

import (
	"net/http"

	"peerlend-backend/internal/usecase/investment"
	"peerlend-backend/pkg/id"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type InvestmentHandler struct{ uc *investment.Usecase }

func NewInvestmentHandler(uc *investment.Usecase) *InvestmentHandler {
	return &InvestmentHandler{uc: uc}
}

type investReq struct {
	InvestorID  string          `json:"investor_id" validate:"required,hex32"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	IsAnonymous bool            `json:"is_anonymous"`
}

func (h *InvestmentHandler) Invest(c echo.Context) error {
	var req investReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.Invest(c.Request().Context(), investment.InvestInput{
		LoanID:      c.Param("loan_id"),
		InvestorID:  req.InvestorID,
		Amount:      req.Amount,
		IsAnonymous: req.IsAnonymous,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *InvestmentHandler) ListForLoan(c echo.Context) error {
	out, err := h.uc.ListForLoan(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *InvestmentHandler) ListByInvestor(c echo.Context) error {
	investorID := c.Param("user_id")
	if !id.Valid(investorID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user_id"})
	}
	out, err := h.uc.ListByInvestor(c.Request().Context(), investorID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
