package http

import (
	"net/http"

	"peerlend-backend/internal/fx"
	"peerlend-backend/internal/usecase/profile"
	"peerlend-backend/pkg/id"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type ProfileHandler struct {
	uc *profile.Usecase
	fx *fx.Service
}

func NewProfileHandler(uc *profile.Usecase, rates *fx.Service) *ProfileHandler {
	return &ProfileHandler{uc: uc, fx: rates}
}

func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID := c.Param("user_id")
	if !id.Valid(userID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user_id"})
	}
	dto, err := h.uc.Get(c.Request().Context(), userID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ProfileHandler) GetTrustScore(c echo.Context) error {
	userID := c.Param("user_id")
	if !id.Valid(userID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user_id"})
	}
	score, err := h.uc.TrustScore(c.Request().Context(), userID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"user_id":     userID,
		"trust_score": score,
	})
}

type upsertProfileReq struct {
	CreditScore *int   `json:"credit_score" validate:"omitempty,gte=300,lte=850"`
	Bio         string `json:"bio"`
}

func (h *ProfileHandler) UpsertProfile(c echo.Context) error {
	userID := c.Param("user_id")
	if !id.Valid(userID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user_id"})
	}
	var req upsertProfileReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.Upsert(c.Request().Context(), profile.UpsertInput{
		UserID:      userID,
		CreditScore: req.CreditScore,
		Bio:         req.Bio,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// Convert serves display conversion: may return cached or fallback rates,
// never an upstream provider error.
func (h *ProfileHandler) Convert(c echo.Context) error {
	amount, err := decimal.NewFromString(c.QueryParam("amount"))
	if err != nil || !amount.IsPositive() {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "amount must be a positive decimal"})
	}
	from, to := c.QueryParam("from"), c.QueryParam("to")
	converted, err := h.fx.Convert(c.Request().Context(), amount, from, to)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"amount":    amount,
		"from":      from,
		"to":        to,
		"converted": converted.Round(2),
	})
}
