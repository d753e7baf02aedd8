package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"emogo/internal/domain"
	"emogo/pkg/logger"
)

// writeError maps the domain error taxonomy onto client responses. Every
// handler funnels failures through here so status codes stay consistent.
func writeError(c echo.Context, err error) error {
	var validationErr domain.ValidationError
	if errors.As(err, &validationErr) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": validationErr.Error()})
	}

	var mediaTypeErr domain.UnsupportedMediaTypeError
	if errors.As(err, &mediaTypeErr) {
		return c.JSON(http.StatusUnsupportedMediaType, map[string]string{"error": mediaTypeErr.Error()})
	}

	switch {
	case errors.Is(err, domain.ErrInvalidID):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id format"})

	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrBlobNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}

	var storageErr domain.StorageError
	if errors.As(err, &storageErr) {
		logger.Error("blob storage failure", "err", err)

		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to store file, please try again later",
		})
	}

	logger.Error("request failed", "path", c.Path(), "err", err)

	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
}
