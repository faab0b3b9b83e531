package http

import (
	"golang-stock-sentiment/internal/dashboard/service"
	"golang-stock-sentiment/pkg/logger"

	"github.com/labstack/echo/v4"
)

// Services bundles what the handlers depend on.
type Services struct {
	Sessions  service.SessionService
	News      service.NewsService
	Stocks    service.StockService
	Sentiment service.SentimentService
	Forecast  service.ForecastService
	Settings  service.SettingsService
}

// RegisterRoutes mounts every dashboard route under g, behind the session middleware.
func RegisterRoutes(g *echo.Group, svc Services, log *logger.Logger) {
	g.Use(SessionMiddleware(svc.Sessions, log))

	NewOptionsHandler().RegisterRoutes(g.Group("/options"))
	NewNewsHandler(svc.News, log).RegisterRoutes(g.Group("/news"))
	NewStockHandler(svc.Stocks, log).RegisterRoutes(g.Group("/stocks"))
	NewSentimentHandler(svc.Sentiment, log).RegisterRoutes(g.Group("/sentiment"))
	NewForecastHandler(svc.Forecast, log).RegisterRoutes(g.Group("/forecast"))

	settings := NewSettingsHandler(svc.Settings, log)
	settings.RegisterRoutes(g.Group("/settings"))
	settings.RegisterCacheRoutes(g.Group("/cache"))
}
