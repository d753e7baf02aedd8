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

type SentimentHandler struct {
	ingestor abstraction.Ingestor
	fetcher  abstraction.Fetcher
}

func NewSentimentHandler(ingestor abstraction.Ingestor, fetcher abstraction.Fetcher) *SentimentHandler {
	return &SentimentHandler{
		ingestor: ingestor,
		fetcher:  fetcher,
	}
}

// HandleCreate handles POST /api/sentiments requests.
func (h *SentimentHandler) HandleCreate(c echo.Context) error {
	var sentiment model.Sentiment
	if err := c.Bind(&sentiment); err != nil {
		return writeError(c, domain.NewValidationError("body", "malformed JSON payload"))
	}

	id, err := h.ingestor.IngestSentiment(c.Request().Context(), &sentiment)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.CreateResult{
		Message: "Sentiment created successfully",
		ID:      id,
	})
}

// HandleList handles GET /api/sentiments requests.
func (h *SentimentHandler) HandleList(c echo.Context) error {
	limit, err := parseLimit(c)
	if err != nil {
		return writeError(c, err)
	}

	sentiments, err := h.fetcher.Sentiments(c.Request().Context(), c.QueryParam(presentation.UserIDQuery), limit)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, sentiments)
}

// HandleGet handles GET /api/sentiments/:id requests.
func (h *SentimentHandler) HandleGet(c echo.Context) error {
	sentiment, err := h.fetcher.SentimentByID(c.Request().Context(), c.Param(presentation.IDParam))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, sentiment)
}
