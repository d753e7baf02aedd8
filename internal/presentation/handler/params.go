package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"emogo/internal/domain"
	"emogo/internal/presentation"
)

// parseLimit reads the optional limit query parameter. Zero means "use the
// store default".
func parseLimit(c echo.Context) (int64, error) {
	raw := c.QueryParam(presentation.LimitQuery)
	if raw == "" {
		return 0, nil
	}

	limit, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || limit < 0 {
		return 0, domain.NewValidationError(presentation.LimitQuery, "must be a non-negative integer")
	}

	return limit, nil
}
