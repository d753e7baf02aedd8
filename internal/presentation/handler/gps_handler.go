package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"emogo/internal/application/usecase/abstraction"
	"emogo/internal/domain"
	"emogo/internal/domain/dto"
	"emogo/internal/domain/model"
	"emogo/internal/presentation"
)

type GPSHandler struct {
	ingestor abstraction.Ingestor
	fetcher  abstraction.Fetcher
}

func NewGPSHandler(ingestor abstraction.Ingestor, fetcher abstraction.Fetcher) *GPSHandler {
	return &GPSHandler{
		ingestor: ingestor,
		fetcher:  fetcher,
	}
}

// HandleCreate handles POST /api/gps requests.
func (h *GPSHandler) HandleCreate(c echo.Context) error {
	var gps model.GPSCoordinate
	if err := c.Bind(&gps); err != nil {
		return writeError(c, domain.NewValidationError("body", "malformed JSON payload"))
	}

	id, err := h.ingestor.IngestGPS(c.Request().Context(), &gps)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.CreateResult{
		Message: "GPS coordinate created successfully",
		ID:      id,
	})
}

// HandleList handles GET /api/gps requests.
func (h *GPSHandler) HandleList(c echo.Context) error {
	limit, err := parseLimit(c)
	if err != nil {
		return writeError(c, err)
	}

	coordinates, err := h.fetcher.GPSCoordinates(c.Request().Context(), c.QueryParam(presentation.UserIDQuery), limit)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, coordinates)
}

// HandleGet handles GET /api/gps/:id requests.
func (h *GPSHandler) HandleGet(c echo.Context) error {
	gps, err := h.fetcher.GPSByID(c.Request().Context(), c.Param(presentation.IDParam))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, gps)
}
