package http

import (
	"net/http"

	"golang-stock-sentiment/internal/dashboard/dto"
	"golang-stock-sentiment/internal/dashboard/service"
	"golang-stock-sentiment/pkg/logger"

	"github.com/labstack/echo/v4"
)

// SettingsHandler handles HTTP requests for preferences and maintenance actions.
type SettingsHandler struct {
	settingsService service.SettingsService
	logger          *logger.Logger
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(settingsService service.SettingsService, logger *logger.Logger) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService, logger: logger}
}

// RegisterRoutes registers the settings routes to the Echo group.
func (h *SettingsHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.GetSettings)
	g.PUT("", h.UpdateSettings)
	g.POST("/verify-key", h.VerifyAPIKey)
}

// RegisterCacheRoutes registers the cache maintenance routes.
func (h *SettingsHandler) RegisterCacheRoutes(g *echo.Group) {
	g.DELETE("", h.ClearCache)
}

// GetSettings godoc
// @Summary Get settings
// @Description Preferences of the session and whether its API key was verified
// @Tags settings
// @Produce  json
// @Param   X-Session-ID header string false "Session id"
// @Success 200 {object} dto.SettingsResponse
// @Router /settings [get]
func (h *SettingsHandler) GetSettings(c echo.Context) error {
	return c.JSON(http.StatusOK, settingsResponse(c))
}

// UpdateSettings godoc
// @Summary Save settings
// @Description Save the preferred language and stock
// @Tags settings
// @Accept  json
// @Produce  json
// @Param   X-Session-ID header string false "Session id"
// @Param   request body dto.SettingsRequest true "Preferences"
// @Success 200 {object} dto.SettingsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /settings [put]
func (h *SettingsHandler) UpdateSettings(c echo.Context) error {
	var req dto.SettingsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}
	if err := h.settingsService.UpdatePreferences(sessionFrom(c), req); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, settingsResponse(c))
}

// VerifyAPIKey godoc
// @Summary Verify API key
// @Description Check the configured chat-completion API key against the models endpoint
// @Tags settings
// @Produce  json
// @Param   X-Session-ID header string false "Session id"
// @Success 200 {object} dto.VerifyKeyResponse
// @Router /settings/verify-key [post]
func (h *SettingsHandler) VerifyAPIKey(c echo.Context) error {
	resp := h.settingsService.VerifyAPIKey(c.Request().Context(), sessionFrom(c))
	return c.JSON(http.StatusOK, resp)
}

// ClearCache godoc
// @Summary Clear cached data
// @Description Drop every memoized result and reset the session data. Preferences are kept.
// @Tags settings
// @Produce  json
// @Param   X-Session-ID header string false "Session id"
// @Success 200 {object} dto.ClearCacheResponse
// @Router /cache [delete]
func (h *SettingsHandler) ClearCache(c echo.Context) error {
	h.settingsService.ClearCache(c.Request().Context(), sessionFrom(c))
	return c.JSON(http.StatusOK, dto.ClearCacheResponse{Message: "Cache cleared"})
}

func settingsResponse(c echo.Context) dto.SettingsResponse {
	session := sessionFrom(c)
	return dto.SettingsResponse{
		PreferredLanguage: session.Preferences.PreferredLanguage,
		PreferredStock:    session.Preferences.PreferredStock,
		APIValid:          session.APIValid,
	}
}
