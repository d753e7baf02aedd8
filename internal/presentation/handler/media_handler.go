package handler

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"emogo/internal/application/usecase/abstraction"
	"emogo/internal/presentation"
)

type MediaHandler struct {
	downloader abstraction.Downloader
}

func NewMediaHandler(downloader abstraction.Downloader) *MediaHandler {
	return &MediaHandler{downloader: downloader}
}

// HandleView handles GET /uploads/videos/:filename requests, streaming the
// video inline.
func (h *MediaHandler) HandleView(c echo.Context) error {
	return h.serve(c, false)
}

// HandleDownload handles GET /api/vlogs/download/:filename requests,
// forcing an attachment download.
func (h *MediaHandler) HandleDownload(c echo.Context) error {
	return h.serve(c, true)
}

func (h *MediaHandler) serve(c echo.Context, attachment bool) error {
	filename := c.Param(presentation.FilenameParam)

	body, info, err := h.downloader.OpenVideo(c.Request().Context(), filename)
	if err != nil {
		return writeError(c, err)
	}
	defer body.Close()

	if attachment {
		c.Response().Header().Set(echo.HeaderContentDisposition,
			fmt.Sprintf("attachment; filename=%q", filename))
	}
	c.Response().Header().Set(echo.HeaderContentType, info.ContentType)

	// Both blob backends return seekable streams, so Range requests get
	// partial content. The plain stream path is kept for stores that don't
	// seek, without advertising ranges it can't serve.
	if seeker, ok := body.(io.ReadSeeker); ok {
		http.ServeContent(c.Response(), c.Request(), filename, time.Time{}, seeker)

		return nil
	}

	c.Response().Header().Set(echo.HeaderContentLength, strconv.FormatInt(info.Size, 10))

	return c.Stream(http.StatusOK, info.ContentType, body)
}
