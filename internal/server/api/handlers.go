package api

import (
	"context"
	"errors"
	"net/http"

	"foldertree/internal/server/service"

	"github.com/labstack/echo/v4"
)

// Handler contains the HTTP handlers for the tree API.
type Handler struct {
	svc *service.TreeService
}

// NewHandler creates a new handler with the given service dependency.
func NewHandler(svc *service.TreeService) *Handler {
	return &Handler{svc: svc}
}

// HandleTree handles GET /api/tree.
// Serves the printed structure as plain text. A matching If-None-Match
// header gets 304 with no body.
func (h *Handler) HandleTree(c echo.Context) error {
	r, err := h.svc.Render(c.Request().Context())
	if err != nil {
		return mapServiceError(c, err)
	}

	c.Response().Header().Set("ETag", r.ETag)
	if c.Request().Header.Get("If-None-Match") == r.ETag {
		return c.NoContent(http.StatusNotModified)
	}

	return c.Blob(http.StatusOK, echo.MIMETextPlainCharsetUTF8, r.Body)
}

// HandleStats handles GET /api/tree/stats.
func (h *Handler) HandleStats(c echo.Context) error {
	stats, err := h.svc.Stats(c.Request().Context())
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"files":   stats.Files,
		"folders": stats.Folders,
		"nodes":   stats.Nodes(),
		"depth":   stats.Depth,
	})
}

// HandleHealth handles GET /health.
func (h *Handler) HandleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"status": "healthy",
	})
}

// mapServiceError translates service-layer errors into appropriate HTTP responses.
func mapServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrNoTree):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "no tree loaded"})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "request cancelled"})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
	}
}
