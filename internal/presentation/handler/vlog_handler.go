package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"emogo/internal/application/usecase/abstraction"
	"emogo/internal/domain"
	"emogo/internal/domain/dto"
	"emogo/internal/domain/entity"
	"emogo/internal/domain/model"
	"emogo/internal/presentation"
)

type VlogHandler struct {
	ingestor abstraction.Ingestor
	fetcher  abstraction.Fetcher
}

func NewVlogHandler(ingestor abstraction.Ingestor, fetcher abstraction.Fetcher) *VlogHandler {
	return &VlogHandler{
		ingestor: ingestor,
		fetcher:  fetcher,
	}
}

// HandleCreate handles POST /api/vlogs requests (JSON body, external video
// URL).
func (h *VlogHandler) HandleCreate(c echo.Context) error {
	var vlog model.Vlog
	if err := c.Bind(&vlog); err != nil {
		return writeError(c, domain.NewValidationError("body", "malformed JSON payload"))
	}

	id, err := h.ingestor.IngestVlog(c.Request().Context(), &vlog)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.CreateResult{
		Message: "Vlog created successfully",
		ID:      id,
	})
}

// HandleUpload handles POST /api/vlogs/upload requests
// (multipart/form-data with a video file).
func (h *VlogHandler) HandleUpload(c echo.Context) error {
	fileHeader, err := c.FormFile("video")
	if err != nil {
		return writeError(c, domain.NewValidationError("video", "file is required"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return writeError(c, domain.StorageError{Op: "put", Err: err})
	}
	defer file.Close()

	result, err := h.ingestor.IngestVlogUpload(c.Request().Context(), entity.VlogUpload{
		UserID:      c.FormValue("user_id"),
		Filename:    fileHeader.Filename,
		File:        file,
		Title:       optionalFormValue(c, "title"),
		Description: optionalFormValue(c, "description"),
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, result)
}

// HandleList handles GET /api/vlogs requests.
func (h *VlogHandler) HandleList(c echo.Context) error {
	limit, err := parseLimit(c)
	if err != nil {
		return writeError(c, err)
	}

	vlogs, err := h.fetcher.Vlogs(c.Request().Context(), c.QueryParam(presentation.UserIDQuery), limit)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, vlogs)
}

// HandleGet handles GET /api/vlogs/:id requests.
func (h *VlogHandler) HandleGet(c echo.Context) error {
	vlog, err := h.fetcher.VlogByID(c.Request().Context(), c.Param(presentation.IDParam))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, vlog)
}

func optionalFormValue(c echo.Context, name string) *string {
	value := c.FormValue(name)
	if value == "" {
		return nil
	}

	return &value
}
