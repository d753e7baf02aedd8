package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type IndexHandler struct{}

func NewIndexHandler() *IndexHandler {
	return &IndexHandler{}
}

// Handle handles GET / requests with a short HTML overview of the API.
func (h *IndexHandler) Handle(c echo.Context) error {
	return c.HTML(http.StatusOK, indexPage)
}

const indexPage = `<!DOCTYPE html>
<html>
<head>
    <title>EmoGo Backend API</title>
    <style>
        body { font-family: Arial, sans-serif; max-width: 800px; margin: 50px auto; padding: 20px; }
        h1 { color: #333; }
        .endpoint { background: #f4f4f4; padding: 10px; margin: 10px 0; border-radius: 5px; }
        .method { font-weight: bold; color: #007bff; }
        a { color: #007bff; text-decoration: none; }
        a:hover { text-decoration: underline; }
    </style>
</head>
<body>
    <h1>Welcome to EmoGo Backend API</h1>
    <p>This API collects and manages vlogs, sentiments, and GPS coordinates.</p>

    <h2>Available Endpoints:</h2>
    <div class="endpoint"><span class="method">POST</span> /api/vlogs - Create a vlog (JSON data with video URL)</div>
    <div class="endpoint"><span class="method">POST</span> /api/vlogs/upload - Create a vlog with video file (multipart/form-data)</div>
    <div class="endpoint"><span class="method">POST</span> /api/sentiments - Upload sentiment data</div>
    <div class="endpoint"><span class="method">POST</span> /api/gps - Upload GPS coordinates</div>
    <div class="endpoint"><span class="method">GET</span> /api/vlogs - Get all vlogs</div>
    <div class="endpoint"><span class="method">GET</span> /api/sentiments - Get all sentiments</div>
    <div class="endpoint"><span class="method">GET</span> /api/gps - Get all GPS coordinates</div>
    <div class="endpoint"><span class="method">GET</span> <a href="/export">/export</a> - Data export/download page</div>
    <div class="endpoint"><span class="method">GET</span> <a href="/health">/health</a> - Health check</div>
</body>
</html>
`
