package http

import (
	"errors"
	"net/http"

	domainBorrower "peerlend-backend/internal/domain/borrower"
	domainInvestment "peerlend-backend/internal/domain/investment"
	domainLoan "peerlend-backend/internal/domain/loan"
	domainRepayment "peerlend-backend/internal/domain/repayment"

	"github.com/labstack/echo/v4"
)

// writeDomainError maps the domain sentinels onto HTTP statuses. Everything
// not recognized is a 500 with the bare message.
func writeDomainError(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domainLoan.ErrNotFound),
		errors.Is(err, domainRepayment.ErrNotFound),
		errors.Is(err, domainBorrower.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domainLoan.ErrValidation),
		errors.Is(err, domainInvestment.ErrInvalidAmount):
		status = http.StatusBadRequest
	case errors.Is(err, domainLoan.ErrNotOwner):
		status = http.StatusForbidden
	case errors.Is(err, domainLoan.ErrNotOpen),
		errors.Is(err, domainLoan.ErrHasInvestments),
		errors.Is(err, domainLoan.ErrConcurrencyConflict),
		errors.Is(err, domainRepayment.ErrAlreadySettled):
		status = http.StatusConflict
	case errors.Is(err, domainInvestment.ErrTooSmall),
		errors.Is(err, domainInvestment.ErrExceedsCapacity),
		errors.Is(err, domainRepayment.ErrInsufficientFunding):
		status = http.StatusUnprocessableEntity
	}
	return c.JSON(status, ErrorResponse{Error: err.Error()})
}
