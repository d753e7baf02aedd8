package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"emogo/internal/application/usecase/abstraction"
)

type HealthHandler struct {
	checker abstraction.HealthChecker
}

func NewHealthHandler(checker abstraction.HealthChecker) *HealthHandler {
	return &HealthHandler{checker: checker}
}

// Handle handles GET /health requests.
func (h *HealthHandler) Handle(c echo.Context) error {
	status := h.checker.Check(c.Request().Context())

	code := http.StatusOK
	if status.Status != "healthy" {
		code = http.StatusServiceUnavailable
	}

	return c.JSON(code, status)
}
