package http

import (
	"net/http"

	"golang-stock-sentiment/internal/dashboard/dto"
	"golang-stock-sentiment/internal/dashboard/service"
	"golang-stock-sentiment/internal/entity"
	"golang-stock-sentiment/pkg/logger"

	"github.com/labstack/echo/v4"
)

var (
	emptyHeadlines   = []entity.Headline{}
	emptyPricePoints = []entity.PricePoint{}
)

// StockHandler handles HTTP requests for stock price history.
type StockHandler struct {
	stockService service.StockService
	logger       *logger.Logger
}

// NewStockHandler creates a new StockHandler.
func NewStockHandler(stockService service.StockService, logger *logger.Logger) *StockHandler {
	return &StockHandler{stockService: stockService, logger: logger}
}

// RegisterRoutes registers the stock routes to the Echo group.
func (h *StockHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/fetch", h.FetchStock)
	g.GET("", h.GetStock)
}

// FetchStock godoc
// @Summary Fetch stock data
// @Description Load daily prices with MA5 and MA20 into the session
// @Tags stocks
// @Accept  json
// @Produce  json
// @Param   X-Session-ID header string false "Session id"
// @Param   request body dto.FetchStockRequest true "Symbol and period"
// @Success 200 {object} dto.StockResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /stocks/fetch [post]
func (h *StockHandler) FetchStock(c echo.Context) error {
	var req dto.FetchStockRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}

	resp, err := h.stockService.Fetch(c.Request().Context(), req)
	if err != nil {
		return errorResponse(c, err)
	}

	session := sessionFrom(c)
	session.StockSymbol = resp.Symbol
	session.StockPeriod = resp.Period
	session.StockData = resp.Points
	session.Forecast = nil
	return c.JSON(http.StatusOK, resp)
}

// GetStock godoc
// @Summary Get session stock data
// @Description Stock data currently held by the session
// @Tags stocks
// @Produce  json
// @Param   X-Session-ID header string false "Session id"
// @Success 200 {object} dto.StockResponse
// @Router /stocks [get]
func (h *StockHandler) GetStock(c echo.Context) error {
	session := sessionFrom(c)
	resp := dto.StockResponse{
		Symbol: session.StockSymbol,
		Period: session.StockPeriod,
		Count:  len(session.StockData),
		Points: session.StockData,
	}
	if n := len(session.StockData); n > 0 {
		latest := session.StockData[n-1].Close
		resp.LatestClose = &latest
	} else {
		resp.Points = emptyPricePoints
	}
	return c.JSON(http.StatusOK, resp)
}
