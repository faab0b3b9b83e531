package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang-stock-sentiment/internal/dashboard/config"
	"golang-stock-sentiment/internal/dashboard/dto"
	"golang-stock-sentiment/internal/entity"
	"golang-stock-sentiment/pkg/common"
	"golang-stock-sentiment/pkg/logger"
	"golang-stock-sentiment/pkg/utils"

	"golang.org/x/time/rate"
)

type yahooFinanceRepository struct {
	cfg            *config.Config
	log            *logger.Logger
	httpClient     *http.Client
	requestLimiter *rate.Limiter
}

// NewYahooFinanceRepository creates a Yahoo Finance chart API repository.
func NewYahooFinanceRepository(cfg *config.Config, log *logger.Logger) YahooFinanceRepository {
	secondsPerRequest := time.Minute / time.Duration(cfg.YahooFinance.MaxRequestPerMinute)
	requestLimiter := rate.NewLimiter(rate.Every(secondsPerRequest), 1)
	return &yahooFinanceRepository{
		cfg: cfg,
		log: log,
		httpClient: &http.Client{
			Timeout: cfg.YahooFinance.Timeout,
		},
		requestLimiter: requestLimiter,
	}
}

// Get returns the daily bars for the symbol, oldest first. Bars with a null
// close are skipped.
func (r *yahooFinanceRepository) Get(ctx context.Context, param dto.GetStockDataParam) (*dto.StockData, error) {
	interval := param.Interval
	if interval == "" {
		interval = "1d"
	}
	apiURL := fmt.Sprintf("%s/v8/finance/chart/%s?interval=%s&range=%s",
		strings.TrimRight(r.cfg.YahooFinance.BaseURL, "/"),
		url.PathEscape(param.Symbol),
		url.QueryEscape(interval),
		url.QueryEscape(param.Range),
	)

	body, err := r.sendRequest(ctx, apiURL)
	if err != nil {
		return nil, err
	}

	var chart dto.YahooChartResponse
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, common.Tag(common.ErrParseFailure, fmt.Errorf("failed to decode chart response: %w", err))
	}
	if chart.Chart.Error != nil {
		return nil, common.Tag(common.ErrParseFailure, fmt.Errorf("yahoo finance error %s: %s", chart.Chart.Error.Code, chart.Chart.Error.Description))
	}
	if len(chart.Chart.Result) == 0 {
		return nil, common.Tag(common.ErrParseFailure, fmt.Errorf("no chart result for %s", param.Symbol))
	}

	result := chart.Chart.Result[0]
	data := &dto.StockData{
		Symbol:       result.Meta.Symbol,
		Currency:     result.Meta.Currency,
		ExchangeName: result.Meta.ExchangeName,
		Points:       toPricePoints(result),
	}
	if data.Symbol == "" {
		data.Symbol = param.Symbol
	}

	r.log.DebugContext(ctx, "Fetched stock data",
		logger.StringField("symbol", param.Symbol),
		logger.StringField("range", param.Range),
		logger.IntField("points", len(data.Points)),
	)

	return data, nil
}

func toPricePoints(result dto.YahooChartResult) []entity.PricePoint {
	if len(result.Indicators.Quote) == 0 {
		return nil
	}
	quote := result.Indicators.Quote[0]

	points := make([]entity.PricePoint, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		closePrice := valueAt(quote.Close, i)
		if closePrice == nil {
			continue
		}
		p := entity.PricePoint{
			Date:  utils.LocalDate(ts, result.Meta.GMTOffset),
			Close: *closePrice,
		}
		if v := valueAt(quote.Open, i); v != nil {
			p.Open = *v
		}
		if v := valueAt(quote.High, i); v != nil {
			p.High = *v
		}
		if v := valueAt(quote.Low, i); v != nil {
			p.Low = *v
		}
		if v := valueAt(quote.Volume, i); v != nil {
			p.Volume = *v
		}
		// Yahoo repeats the live bar with the same date while a session is open.
		if n := len(points); n > 0 && points[n-1].Date.Equal(p.Date) {
			points[n-1] = p
			continue
		}
		points = append(points, p)
	}
	return points
}

func valueAt(values []*float64, i int) *float64 {
	if i >= len(values) {
		return nil
	}
	return values[i]
}

func (r *yahooFinanceRepository) sendRequest(ctx context.Context, apiURL string) ([]byte, error) {
	if err := r.requestLimiter.Wait(ctx); err != nil {
		r.log.ErrorContext(ctx, "Failed to wait for request limit", logger.ErrorField(err), logger.StringField("url", apiURL))
		return nil, common.Tag(common.ErrNetworkFailure, fmt.Errorf("failed to wait for request limit: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create new http request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")
	req.Header.Set("Accept", "application/json, text/plain, */*")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		r.log.ErrorContext(ctx, "Failed to send request to Yahoo Finance API", logger.ErrorField(err), logger.StringField("url", apiURL))
		return nil, common.Tag(common.ErrNetworkFailure, fmt.Errorf("failed to send request to Yahoo Finance API: %w", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, common.Tag(common.ErrNetworkFailure, fmt.Errorf("failed to read response body: %w", err))
	}

	if resp.StatusCode != http.StatusOK {
		r.log.ErrorContext(ctx, "Received non-OK response from Yahoo Finance API",
			logger.IntField("status_code", resp.StatusCode),
			logger.StringField("url", apiURL),
		)
		return nil, common.Tag(common.ErrNetworkFailure, fmt.Errorf("received non-OK response from Yahoo Finance API: %d - %s", resp.StatusCode, string(body)))
	}

	return body, nil
}
