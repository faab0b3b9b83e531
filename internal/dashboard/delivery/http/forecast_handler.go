package http

import (
	"net/http"

	"golang-stock-sentiment/internal/dashboard/dto"
	"golang-stock-sentiment/internal/dashboard/service"
	"golang-stock-sentiment/internal/entity"
	"golang-stock-sentiment/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ForecastHandler handles HTTP requests for price forecasts.
type ForecastHandler struct {
	forecastService service.ForecastService
	logger          *logger.Logger
}

// NewForecastHandler creates a new ForecastHandler.
func NewForecastHandler(forecastService service.ForecastService, logger *logger.Logger) *ForecastHandler {
	return &ForecastHandler{forecastService: forecastService, logger: logger}
}

// RegisterRoutes registers the forecast routes to the Echo group.
func (h *ForecastHandler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.Forecast)
}

// Forecast godoc
// @Summary Forecast closing prices
// @Description Fit a degree-2 polynomial of weekday and month to the session's stock data and predict the next 7, 14 or 30 days
// @Tags forecast
// @Accept  json
// @Produce  json
// @Param   X-Session-ID header string false "Session id"
// @Param   request body dto.ForecastRequest true "Forecast horizon"
// @Success 200 {object} dto.ForecastResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /forecast [post]
func (h *ForecastHandler) Forecast(c echo.Context) error {
	var req dto.ForecastRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}
	if !service.IsSupportedHorizon(req.Days) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "days must be one of 7, 14 or 30"})
	}

	session := sessionFrom(c)
	points, err := h.forecastService.Forecast(c.Request().Context(), session.StockData, req.Days)
	if err != nil {
		h.logger.ErrorContext(c.Request().Context(), "Failed to forecast", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	session.Forecast = points

	resp := dto.ForecastResponse{
		Days:    req.Days,
		Points:  points,
		Summary: h.forecastService.Summarize(points),
	}
	if resp.Points == nil {
		resp.Points = []entity.ForecastPoint{}
	}
	if len(session.StockData) == 0 {
		resp.Warnings = append(resp.Warnings, "no stock data in session; fetch stock data first")
	}
	return c.JSON(http.StatusOK, resp)
}
