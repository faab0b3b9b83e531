package http

import (
	"net/http"

	"golang-stock-sentiment/internal/dashboard/dto"
	"golang-stock-sentiment/internal/dashboard/service"
	"golang-stock-sentiment/pkg/logger"

	"github.com/labstack/echo/v4"
)

// NewsHandler handles HTTP requests for news headlines.
type NewsHandler struct {
	newsService service.NewsService
	logger      *logger.Logger
}

// NewNewsHandler creates a new NewsHandler.
func NewNewsHandler(newsService service.NewsService, logger *logger.Logger) *NewsHandler {
	return &NewsHandler{newsService: newsService, logger: logger}
}

// RegisterRoutes registers the news routes to the Echo group.
func (h *NewsHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/fetch", h.FetchNews)
	g.GET("", h.GetNews)
}

// FetchNews godoc
// @Summary Fetch news
// @Description Search Google News for the keyword and make the result the session's current news. The previous current news moves to the historical pool.
// @Tags news
// @Accept  json
// @Produce  json
// @Param   X-Session-ID header string false "Session id"
// @Param   request body dto.FetchNewsRequest true "Search parameters"
// @Success 200 {object} dto.NewsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /news/fetch [post]
func (h *NewsHandler) FetchNews(c echo.Context) error {
	var req dto.FetchNewsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}

	resp, err := h.newsService.Fetch(c.Request().Context(), req)
	if err != nil {
		return errorResponse(c, err)
	}

	session := sessionFrom(c)
	if len(resp.Headlines) > 0 {
		session.ReplaceCurrentNews(resp.Headlines)
	}
	return c.JSON(http.StatusOK, resp)
}

// GetNews godoc
// @Summary Get session news
// @Description Current news of the session
// @Tags news
// @Produce  json
// @Param   X-Session-ID header string false "Session id"
// @Success 200 {object} dto.NewsResponse
// @Router /news [get]
func (h *NewsHandler) GetNews(c echo.Context) error {
	session := sessionFrom(c)
	resp := dto.NewsResponse{Count: len(session.CurrentNews), Headlines: session.CurrentNews}
	if resp.Headlines == nil {
		resp.Headlines = emptyHeadlines
	}
	return c.JSON(http.StatusOK, resp)
}
