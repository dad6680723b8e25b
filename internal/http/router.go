package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/aymanabdelsalam/ai-summarized-rss/internal/handler"
	"github.com/aymanabdelsalam/ai-summarized-rss/internal/service"
)

// NewRouter wires the HTTP surface: the generated feed, a health probe and
// the refresh API. The API group requires a bearer token when auth is enabled.
func NewRouter(feedHandler *handler.FeedHandler, authService service.AuthService) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(RequestLoggerMiddleware())

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/feed.xml", feedHandler.ServeFeed)

	api := e.Group("/api")
	if authService != nil && authService.Enabled() {
		api.Use(JWTAuthMiddleware(authService))
	}
	feedHandler.RegisterRoutes(api)

	return e
}
