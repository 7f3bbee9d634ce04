package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/octobees/vacation-recommendations/web/internal/config"
	"github.com/octobees/vacation-recommendations/web/internal/handler"
	middlewarepkg "github.com/octobees/vacation-recommendations/web/internal/middleware"
	"github.com/octobees/vacation-recommendations/web/internal/session"
)

// Handlers aggregates HTTP handlers used by the router.
type Handlers struct {
	Form *handler.FormHandler
	API  *handler.APIHandler
}

// Sessions bundles what the session middleware needs.
type Sessions struct {
	Tokens *session.TokenManager
	Store  *session.Store
}

// Register wires all HTTP routes. Everything except /healthz runs inside a
// visitor session, and submissions share one rate limiter.
func Register(e *echo.Echo, cfg *config.Config, sessions Sessions, handlers Handlers) {
	e.GET("/healthz", func(c echo.Context) error {
		return handler.Success(c, http.StatusOK, "service healthy", map[string]any{"status": "ok"})
	})

	app := e.Group("")
	app.Use(middlewarepkg.Session(sessions.Tokens, sessions.Store))
	app.Use(middlewarepkg.SubmitRateLimiter(cfg.RateLimitSubmit))

	app.GET("/", handlers.Form.Index)
	app.POST("/recommendations", handlers.Form.SubmitRatings)
	app.POST("/cost", handlers.Form.SubmitCost)
	app.POST("/city-info", handlers.Form.FetchCityInfo)

	if handlers.API != nil {
		api := app.Group("/api")
		api.GET("/state", handlers.API.State)
		api.POST("/recommendations", handlers.API.Recommend)
		api.POST("/cost", handlers.API.EstimateCost)
		api.GET("/city-info", handlers.API.CityInfo)
	}
}
