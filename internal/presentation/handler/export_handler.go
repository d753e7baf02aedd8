package handler

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/labstack/echo/v4"

	"emogo/internal/application/usecase/abstraction"
)

type ExportHandler struct {
	exporter abstraction.Exporter
}

func NewExportHandler(exporter abstraction.Exporter) *ExportHandler {
	return &ExportHandler{exporter: exporter}
}

// HandleBundle handles GET /api/export/all requests.
func (h *ExportHandler) HandleBundle(c echo.Context) error {
	bundle, err := h.exporter.Bundle(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, bundle)
}

// HandlePage handles GET /export requests: a browsable page with live
// per-collection counts and download links.
func (h *ExportHandler) HandlePage(c echo.Context) error {
	counts, err := h.exporter.Counts(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	var page bytes.Buffer
	if err := exportPage.Execute(&page, counts); err != nil {
		return writeError(c, err)
	}

	return c.HTML(http.StatusOK, page.String())
}

var exportPage = template.Must(template.New("export").Parse(`<!DOCTYPE html>
<html>
<head>
    <title>EmoGo Data Export</title>
    <style>
        body { font-family: Arial, sans-serif; max-width: 1200px; margin: 50px auto; padding: 20px; background-color: #f5f5f5; }
        h1 { color: #333; text-align: center; }
        .container { background: white; padding: 30px; border-radius: 10px; box-shadow: 0 2px 10px rgba(0,0,0,0.1); }
        .data-section { margin: 20px 0; padding: 20px; background: #f9f9f9; border-left: 4px solid #007bff; border-radius: 5px; }
        .data-section h2 { color: #007bff; margin-top: 0; }
        .count { font-size: 24px; font-weight: bold; color: #28a745; }
        .view-btn, .download-btn { display: inline-block; padding: 10px 20px; margin: 10px 10px 10px 0; color: white; text-decoration: none; border-radius: 5px; }
        .view-btn { background-color: #28a745; }
        .download-btn { background-color: #007bff; }
        .info { color: #666; font-style: italic; }
    </style>
</head>
<body>
    <div class="container">
        <h1>EmoGo Data Export &amp; Download</h1>
        <p class="info">View and download all collected data.</p>

        <div class="data-section">
            <h2>Vlogs (Video Logs)</h2>
            <p class="count">Total: {{.Vlogs}} entries</p>
            <a href="/api/vlogs" class="view-btn" target="_blank">View JSON</a>
        </div>

        <div class="data-section">
            <h2>Sentiments (Emotion Data)</h2>
            <p class="count">Total: {{.Sentiments}} entries</p>
            <a href="/api/sentiments" class="view-btn" target="_blank">View JSON</a>
        </div>

        <div class="data-section">
            <h2>GPS Coordinates (Location Data)</h2>
            <p class="count">Total: {{.GPSCoordinates}} entries</p>
            <a href="/api/gps" class="view-btn" target="_blank">View JSON</a>
        </div>

        <div class="data-section">
            <h2>Export All Data</h2>
            <a href="/api/export/all" class="download-btn">Download All Data (JSON)</a>
        </div>

        <hr style="margin: 30px 0;">
        <div style="text-align: center;">
            <p><a href="/">Back to Home</a></p>
        </div>
    </div>
</body>
</html>
`))
