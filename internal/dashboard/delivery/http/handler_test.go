package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"golang-stock-sentiment/internal/dashboard/classifier"
	"golang-stock-sentiment/internal/dashboard/config"
	"golang-stock-sentiment/internal/dashboard/dto"
	"golang-stock-sentiment/internal/dashboard/repository"
	"golang-stock-sentiment/internal/dashboard/service"
	"golang-stock-sentiment/internal/entity"
	"golang-stock-sentiment/pkg/common"
	"golang-stock-sentiment/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubNewsRepo struct {
	headlines []entity.Headline
}

func (s *stubNewsRepo) Search(context.Context, dto.GetNewsParam) ([]entity.Headline, error) {
	return s.headlines, nil
}

type stubYahooRepo struct {
	data *dto.StockData
}

func (s *stubYahooRepo) Get(context.Context, dto.GetStockDataParam) (*dto.StockData, error) {
	return s.data, nil
}

type stubKeyRepo struct{ valid bool }

func (s *stubKeyRepo) ValidateAPIKey(context.Context) (bool, error) { return s.valid, nil }

type englishDetector struct{}

func (englishDetector) Detect(string) string { return classifier.LanguageEnglish }

type testServer struct {
	e    *echo.Echo
	news *stubNewsRepo
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	cfg := &config.Config{
		Sentiment: config.Sentiment{LocalLanguages: []string{"en", "zh"}, BatchPause: time.Millisecond},
		Defaults:  config.Defaults{Language: "English", Stock: "1810.HK"},
		AI:        config.AI{Provider: common.AIProviderNone},
	}
	log := logger.NewNop()
	memo := service.NewMemo()

	start := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	points := make([]entity.PricePoint, 30)
	for i := range points {
		c := 100 + float64(i)
		points[i] = entity.PricePoint{Date: start.AddDate(0, 0, i), Open: c, High: c, Low: c, Close: c}
	}

	news := &stubNewsRepo{headlines: []entity.Headline{
		{Title: "Xiaomi shares surge", Link: "https://example.com/a", Published: start.Add(2 * time.Hour)},
		{Title: "Xiaomi shares plunge", Link: "https://example.com/b", Published: start},
		{Title: "Xiaomi unveils a phone", Link: "https://example.com/c", Published: start.Add(time.Hour)},
	}}

	var ai repository.AIRepository
	svc := Services{
		Sessions:  service.NewSessionService(cfg, repository.NewMemorySessionRepository(time.Hour), log),
		News:      service.NewNewsService(news, log, memo),
		Stocks:    service.NewStockService(&stubYahooRepo{data: &dto.StockData{Symbol: "1810.HK", Points: points}}, log, memo),
		Sentiment: service.NewSentimentService(cfg, log, englishDetector{}, classifier.NewDefaultRegistry(cfg.Sentiment.LocalLanguages), ai, memo),
		Forecast:  service.NewForecastService(log, memo),
		Settings:  service.NewSettingsService(&stubKeyRepo{valid: true}, memo, log),
	}

	e := echo.New()
	RegisterRoutes(e.Group("/api/v1"), svc, log)
	return &testServer{e: e, news: news}
}

func (s *testServer) do(t *testing.T, method, path, sessionID string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if sessionID != "" {
		req.Header.Set(common.HeaderSessionID, sessionID)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func TestOptions(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/api/v1/options", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.OptionsResponse
	decode(t, rec, &resp)
	assert.Len(t, resp.Languages, 4)
	assert.Equal(t, []int{7, 14, 30}, resp.ForecastHorizons)
}

func TestSessionIsIssuedAndReused(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/api/v1/settings", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	id := rec.Header().Get(common.HeaderSessionID)
	require.NotEmpty(t, id)

	rec = s.do(t, http.MethodGet, "/api/v1/settings", id, nil)
	assert.Equal(t, id, rec.Header().Get(common.HeaderSessionID))

	var resp dto.SettingsResponse
	decode(t, rec, &resp)
	assert.Equal(t, "English", resp.PreferredLanguage)
	assert.Equal(t, "1810.HK", resp.PreferredStock)
	assert.False(t, resp.APIValid)
}

func TestFetchNews(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/v1/news/fetch", "", dto.FetchNewsRequest{Keyword: "Xiaomi", Language: "English"})
	require.Equal(t, http.StatusOK, rec.Code)
	id := rec.Header().Get(common.HeaderSessionID)

	var fetched dto.NewsResponse
	decode(t, rec, &fetched)
	assert.Equal(t, 3, fetched.Count)

	rec = s.do(t, http.MethodGet, "/api/v1/news", id, nil)
	var current dto.NewsResponse
	decode(t, rec, &current)
	assert.Equal(t, 3, current.Count)
	assert.Equal(t, "Xiaomi shares surge", current.Headlines[0].Title)
}

func TestFetchNews_InvalidInput(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/v1/news/fetch", "", dto.FetchNewsRequest{Keyword: "  ", Language: "English"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/v1/news/fetch", "", dto.FetchNewsRequest{Keyword: "Xiaomi", Language: "Klingon"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/v1/news/fetch", "", dto.FetchNewsRequest{Keyword: "Xiaomi", Language: "English", MaxArticles: 15})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyzeText(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name string
		req  dto.AnalyzeSentimentRequest
		want entity.Score
	}{
		{name: "positive", req: dto.AnalyzeSentimentRequest{Text: "Xiaomi shares surge"}, want: entity.ScorePositive},
		{name: "negative", req: dto.AnalyzeSentimentRequest{Text: "Xiaomi shares plunge"}, want: entity.ScoreNegative},
		{name: "empty", req: dto.AnalyzeSentimentRequest{Text: ""}, want: entity.ScoreNeutral},
		{name: "detailed", req: dto.AnalyzeSentimentRequest{Text: "Xiaomi shares surge", Detailed: true}, want: entity.ScoreNeutral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(t, http.MethodPost, "/api/v1/sentiment/analyze", "", tt.req)
			require.Equal(t, http.StatusOK, rec.Code)

			var resp dto.AnalyzeSentimentResponse
			decode(t, rec, &resp)
			assert.Equal(t, tt.want, resp.Score)
			assert.Equal(t, tt.want.Label(), resp.Label)
		})
	}
}

func TestBatchSentimentAndExport(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/v1/news/fetch", "", dto.FetchNewsRequest{Keyword: "Xiaomi", Language: "English"})
	require.Equal(t, http.StatusOK, rec.Code)
	id := rec.Header().Get(common.HeaderSessionID)

	rec = s.do(t, http.MethodPost, "/api/v1/sentiment/batch", id, dto.BatchSentimentRequest{Source: "current", ArticleCount: 5})
	require.Equal(t, http.StatusOK, rec.Code)

	var batch dto.BatchSentimentResponse
	decode(t, rec, &batch)
	require.Equal(t, 3, batch.Count)
	assert.Equal(t, 1, batch.Distribution[entity.LabelPositive])
	assert.Equal(t, 1, batch.Distribution[entity.LabelNegative])
	assert.Equal(t, 1, batch.Distribution[entity.LabelNeutral])
	assert.Equal(t, "Xiaomi shares plunge", batch.Trend[0].Title)
	assert.Equal(t, "Xiaomi shares surge", batch.Trend[2].Title)

	rec = s.do(t, http.MethodGet, "/api/v1/sentiment/batch/export", id, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/csv")
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "sentiment_results.csv")
	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "time,label,score,title", lines[0])
	assert.Equal(t, "2024-01-15T02:00:00Z,Positive,1,Xiaomi shares surge", lines[1])
}

func TestBatchSentiment_Historical(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/v1/news/fetch", "", dto.FetchNewsRequest{Keyword: "Xiaomi", Language: "English"})
	id := rec.Header().Get(common.HeaderSessionID)

	rec = s.do(t, http.MethodPost, "/api/v1/sentiment/batch", id, dto.BatchSentimentRequest{Source: "historical"})
	require.Equal(t, http.StatusOK, rec.Code)
	var empty dto.BatchSentimentResponse
	decode(t, rec, &empty)
	assert.Equal(t, 0, empty.Count)
	assert.NotEmpty(t, empty.Warnings)

	s.news.headlines = []entity.Headline{{Title: "Xiaomi earnings beat", Link: "https://example.com/d", Published: time.Now()}}
	rec = s.do(t, http.MethodPost, "/api/v1/news/fetch", id, dto.FetchNewsRequest{Keyword: "Xiaomi earnings", Language: "English"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/v1/sentiment/batch", id, dto.BatchSentimentRequest{Source: "historical", ArticleCount: 10})
	require.Equal(t, http.StatusOK, rec.Code)
	var hist dto.BatchSentimentResponse
	decode(t, rec, &hist)
	assert.Equal(t, 3, hist.Count)
}

func TestBatchSentiment_InvalidInput(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/v1/sentiment/batch", "", dto.BatchSentimentRequest{Source: "current", ArticleCount: 7})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/v1/sentiment/batch", "", dto.BatchSentimentRequest{Source: "archive"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExport_NoResults(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/api/v1/sentiment/batch/export", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStockAndForecast(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/v1/stocks/fetch", "", dto.FetchStockRequest{Symbol: "1810.HK", Period: "1y"})
	require.Equal(t, http.StatusOK, rec.Code)
	id := rec.Header().Get(common.HeaderSessionID)

	var stock dto.StockResponse
	decode(t, rec, &stock)
	assert.Equal(t, 30, stock.Count)
	require.NotNil(t, stock.LatestClose)
	assert.Equal(t, 129.0, *stock.LatestClose)

	rec = s.do(t, http.MethodPost, "/api/v1/forecast", id, dto.ForecastRequest{Days: 7})
	require.Equal(t, http.StatusOK, rec.Code)

	var forecast dto.ForecastResponse
	decode(t, rec, &forecast)
	require.Len(t, forecast.Points, 7)
	assert.True(t, forecast.Points[0].Date.Equal(time.Date(2024, 2, 14, 0, 0, 0, 0, time.UTC)))
	require.NotNil(t, forecast.Summary)
	assert.Empty(t, forecast.Warnings)
}

func TestStock_InvalidSymbol(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/v1/stocks/fetch", "", dto.FetchStockRequest{Symbol: "AAPL", Period: "1y"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestForecast_WithoutStockData(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/v1/forecast", "", dto.ForecastRequest{Days: 14})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.ForecastResponse
	decode(t, rec, &resp)
	assert.Empty(t, resp.Points)
	assert.NotEmpty(t, resp.Warnings)

	rec = s.do(t, http.MethodPost, "/api/v1/forecast", "", dto.ForecastRequest{Days: 10})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSettingsAndClearCache(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPut, "/api/v1/settings", "", dto.SettingsRequest{PreferredLanguage: "Martian", PreferredStock: "1810.HK"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodPut, "/api/v1/settings", "", dto.SettingsRequest{PreferredLanguage: "Spanish", PreferredStock: "XIACF"})
	require.Equal(t, http.StatusOK, rec.Code)
	id := rec.Header().Get(common.HeaderSessionID)

	rec = s.do(t, http.MethodPost, "/api/v1/settings/verify-key", id, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var verify dto.VerifyKeyResponse
	decode(t, rec, &verify)
	assert.True(t, verify.Valid)

	rec = s.do(t, http.MethodPost, "/api/v1/news/fetch", id, dto.FetchNewsRequest{Keyword: "Xiaomi", Language: "English"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodDelete, "/api/v1/cache", id, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/v1/news", id, nil)
	var news dto.NewsResponse
	decode(t, rec, &news)
	assert.Equal(t, 0, news.Count)

	rec = s.do(t, http.MethodGet, "/api/v1/settings", id, nil)
	var settings dto.SettingsResponse
	decode(t, rec, &settings)
	assert.Equal(t, "Spanish", settings.PreferredLanguage)
	assert.Equal(t, "XIACF", settings.PreferredStock)
	assert.True(t, settings.APIValid)
}
