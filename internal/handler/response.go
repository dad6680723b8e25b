package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aymanabdelsalam/ai-summarized-rss/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(c echo.Context, status int, message string) error {
	return c.JSON(status, errorResponse{Error: message})
}

// writeServiceError maps service sentinel errors onto HTTP statuses.
func writeServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalid):
		return writeError(c, http.StatusBadRequest, "invalid request")
	case errors.Is(err, service.ErrAlreadyRunning):
		return writeError(c, http.StatusConflict, "refresh already running")
	case errors.Is(err, service.ErrFeedFetch):
		return writeError(c, http.StatusBadGateway, "feed fetch failed")
	case errors.Is(err, service.ErrNoSummaries):
		return writeError(c, http.StatusBadGateway, "no summaries produced")
	default:
		return writeError(c, http.StatusInternalServerError, "internal error")
	}
}
