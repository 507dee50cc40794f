package http

import (
	"net/http"

	"peerlend-backend/internal/usecase/repayment"

	"github.com/labstack/echo/v4"
)

type RepaymentHandler struct{ uc *repayment.Usecase }

func NewRepaymentHandler(uc *repayment.Usecase) *RepaymentHandler {
	return &RepaymentHandler{uc: uc}
}

type settleReq struct {
	BorrowerID string `json:"borrower_id" validate:"required,hex32"`
}

func (h *RepaymentHandler) Settle(c echo.Context) error {
	var req settleReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.Settle(c.Request().Context(), repayment.SettleInput{
		LoanID:     c.Param("loan_id"),
		BorrowerID: req.BorrowerID,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}
