package http

import (
	"fmt"
	"net/http"

	"golang-stock-sentiment/internal/dashboard/dto"
	"golang-stock-sentiment/internal/dashboard/service"
	"golang-stock-sentiment/internal/entity"
	"golang-stock-sentiment/pkg/common"
	"golang-stock-sentiment/pkg/logger"

	"github.com/labstack/echo/v4"
)

// SentimentHandler handles HTTP requests for sentiment analysis.
type SentimentHandler struct {
	sentimentService service.SentimentService
	logger           *logger.Logger
}

// NewSentimentHandler creates a new SentimentHandler.
func NewSentimentHandler(sentimentService service.SentimentService, logger *logger.Logger) *SentimentHandler {
	return &SentimentHandler{sentimentService: sentimentService, logger: logger}
}

// RegisterRoutes registers the sentiment routes to the Echo group.
func (h *SentimentHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/analyze", h.AnalyzeText)
	g.POST("/batch", h.AnalyzeBatch)
	g.GET("/batch/export", h.ExportBatch)
}

// AnalyzeText godoc
// @Summary Analyze text sentiment
// @Description Score free text as -1, 0 or +1. Detailed mode is reserved and always returns 0.
// @Tags sentiment
// @Accept  json
// @Produce  json
// @Param   request body dto.AnalyzeSentimentRequest true "Text to analyze"
// @Success 200 {object} dto.AnalyzeSentimentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /sentiment/analyze [post]
func (h *SentimentHandler) AnalyzeText(c echo.Context) error {
	var req dto.AnalyzeSentimentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}

	analysis := h.sentimentService.Analyze(c.Request().Context(), req.Text, req.Detailed)
	return c.JSON(http.StatusOK, dto.AnalyzeSentimentResponse{
		Score:    analysis.Score,
		Label:    analysis.Score.Label(),
		Warnings: analysis.Warnings(),
	})
}

// AnalyzeBatch godoc
// @Summary Batch sentiment analysis
// @Description Score the first article_count headlines of the current or historical news and store the results in the session
// @Tags sentiment
// @Accept  json
// @Produce  json
// @Param   X-Session-ID header string false "Session id"
// @Param   request body dto.BatchSentimentRequest true "Batch parameters"
// @Success 200 {object} dto.BatchSentimentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /sentiment/batch [post]
func (h *SentimentHandler) AnalyzeBatch(c echo.Context) error {
	var req dto.BatchSentimentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}
	if req.Source == "" {
		req.Source = common.NewsSourceCurrent
	}
	count, err := service.NormalizeBatchCount(req.ArticleCount)
	if err != nil {
		return errorResponse(c, err)
	}

	session := sessionFrom(c)
	var source []entity.Headline
	switch req.Source {
	case common.NewsSourceCurrent:
		source = session.CurrentNews
	case common.NewsSourceHistorical:
		source = session.HistoricalNews
	default:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": fmt.Sprintf("source must be %q or %q", common.NewsSourceCurrent, common.NewsSourceHistorical)})
	}

	results := h.sentimentService.AnalyzeBatch(c.Request().Context(), source, count)
	session.SentimentResults = results

	resp := h.sentimentService.Summarize(results)
	if len(source) == 0 {
		resp.Warnings = append(resp.Warnings, fmt.Sprintf("no %s news in session; fetch news first", req.Source))
	} else if skipped := min(len(source), count) - len(results); skipped > 0 {
		resp.Warnings = append(resp.Warnings, fmt.Sprintf("%d headlines could not be analyzed", skipped))
	}
	return c.JSON(http.StatusOK, resp)
}

// ExportBatch godoc
// @Summary Export batch results as CSV
// @Description Download the session's last batch results with columns time, label, score, title
// @Tags sentiment
// @Produce  text/csv
// @Param   X-Session-ID header string false "Session id"
// @Success 200 {string} string "CSV file"
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sentiment/batch/export [get]
func (h *SentimentHandler) ExportBatch(c echo.Context) error {
	session := sessionFrom(c)
	if len(session.SentimentResults) == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "No sentiment results to export"})
	}

	out, err := h.sentimentService.ExportCSV(session.SentimentResults)
	if err != nil {
		h.logger.ErrorContext(c.Request().Context(), "Failed to export sentiment results", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to export sentiment results"})
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="sentiment_results.csv"`)
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", []byte(out))
}
