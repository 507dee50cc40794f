package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	startedAt time.Time
}

func NewHandler() *Handler { return &Handler{startedAt: time.Now().UTC()} }

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":  "ok",
		"service": "peerlend-backend",
		"uptime":  time.Since(h.startedAt).Truncate(time.Second).String(),
	})
}
