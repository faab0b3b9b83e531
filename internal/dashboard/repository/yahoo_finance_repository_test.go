package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"golang-stock-sentiment/internal/dashboard/config"
	"golang-stock-sentiment/internal/dashboard/dto"
	"golang-stock-sentiment/pkg/common"
	"golang-stock-sentiment/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Timestamps are 09:30 HKT (01:30 UTC) on 2024-01-15, 16 and 17; the 16th is a null bar.
const sampleChart = `{
  "chart": {
    "result": [{
      "meta": {"currency": "HKD", "symbol": "1810.HK", "exchangeName": "HKG", "gmtoffset": 28800},
      "timestamp": [1705282200, 1705368600, 1705455000],
      "indicators": {"quote": [{
        "open":   [13.1, null, 13.4],
        "high":   [13.5, null, 13.9],
        "low":    [12.9, null, 13.2],
        "close":  [13.3, null, 13.8],
        "volume": [1000, null, 2000]
      }]}
    }],
    "error": null
  }
}`

func newYahooTestRepo(baseURL string) YahooFinanceRepository {
	cfg := &config.Config{YahooFinance: config.YahooFinance{
		BaseURL:             baseURL,
		Timeout:             5 * time.Second,
		MaxRequestPerMinute: 6000,
	}}
	return NewYahooFinanceRepository(cfg, logger.NewNop())
}

func TestYahooFinanceRepository_Get(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v8/finance/chart/1810.HK", r.URL.Path)
		assert.Equal(t, "1d", r.URL.Query().Get("interval"))
		assert.Equal(t, "1mo", r.URL.Query().Get("range"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleChart))
	}))
	defer srv.Close()

	data, err := newYahooTestRepo(srv.URL).Get(context.Background(), dto.GetStockDataParam{Symbol: "1810.HK", Range: "1mo"})
	require.NoError(t, err)

	assert.Equal(t, "1810.HK", data.Symbol)
	assert.Equal(t, "HKD", data.Currency)
	require.Len(t, data.Points, 2)

	first := data.Points[0]
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), first.Date)
	assert.Equal(t, 13.1, first.Open)
	assert.Equal(t, 13.3, first.Close)
	assert.Equal(t, 1000.0, first.Volume)
	assert.Nil(t, first.MA5)

	assert.Equal(t, time.Date(2024, 1, 17, 0, 0, 0, 0, time.UTC), data.Points[1].Date)
}

func TestYahooFinanceRepository_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"non-ok status", http.StatusTooManyRequests, "slow down", common.ErrNetworkFailure},
		{"invalid json", http.StatusOK, "{not json", common.ErrParseFailure},
		{"api error", http.StatusOK, `{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found"}}}`, common.ErrParseFailure},
		{"empty result", http.StatusOK, `{"chart":{"result":[],"error":null}}`, common.ErrParseFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := newYahooTestRepo(srv.URL).Get(context.Background(), dto.GetStockDataParam{Symbol: "XIACF", Range: "1y"})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestToPricePoints_CollapsesSameDay(t *testing.T) {
	c1, c2 := 10.0, 11.0
	result := dto.YahooChartResult{
		Meta:      dto.YahooChartMeta{GMTOffset: 0},
		Timestamp: []int64{1705305600, 1705320000},
		Indicators: dto.YahooChartIndicators{Quote: []dto.YahooQuote{{
			Close: []*float64{&c1, &c2},
		}}},
	}

	points := toPricePoints(result)
	require.Len(t, points, 1)
	assert.Equal(t, 11.0, points[0].Close)
}
