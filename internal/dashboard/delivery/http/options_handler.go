package http

import (
	"net/http"

	"golang-stock-sentiment/internal/dashboard/service"

	"github.com/labstack/echo/v4"
)

// OptionsHandler serves the allowed values of the dashboard controls.
type OptionsHandler struct{}

func NewOptionsHandler() *OptionsHandler {
	return &OptionsHandler{}
}

// RegisterRoutes registers the options routes to the Echo group.
func (h *OptionsHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.GetOptions)
}

// GetOptions godoc
// @Summary List control options
// @Description Supported news languages, stock symbols, periods, slider ranges and forecast horizons
// @Tags options
// @Produce  json
// @Success 200 {object} dto.OptionsResponse
// @Router /options [get]
func (h *OptionsHandler) GetOptions(c echo.Context) error {
	return c.JSON(http.StatusOK, service.Options())
}
