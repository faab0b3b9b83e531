package service

import (
	"context"
	"fmt"
	"strings"

	"golang-stock-sentiment/internal/dashboard/dto"
	"golang-stock-sentiment/internal/dashboard/repository"
	"golang-stock-sentiment/internal/entity"
	"golang-stock-sentiment/pkg/common"
	"golang-stock-sentiment/pkg/logger"
)

// StockService fetches price history with moving averages.
type StockService interface {
	Fetch(ctx context.Context, req dto.FetchStockRequest) (*dto.StockResponse, error)
}

type stockService struct {
	yahooFinance repository.YahooFinanceRepository
	log          *logger.Logger
	memo         *Memo
}

func NewStockService(yahooFinance repository.YahooFinanceRepository, log *logger.Logger, memo *Memo) StockService {
	return &stockService{yahooFinance: yahooFinance, log: log, memo: memo}
}

// Fetch validates the request and loads the history. Upstream failures are
// reported as a warning with an empty series; only bad input is an error.
func (s *stockService) Fetch(ctx context.Context, req dto.FetchStockRequest) (*dto.StockResponse, error) {
	symbol := strings.TrimSpace(req.Symbol)
	period := strings.TrimSpace(req.Period)
	if period == "" {
		period = defaultPeriod
	}
	if !IsSupportedStock(symbol) {
		return nil, fmt.Errorf("%w: unsupported stock symbol %q", common.ErrInvalidInput, req.Symbol)
	}
	if !IsSupportedPeriod(period) {
		return nil, fmt.Errorf("%w: unsupported period %q", common.ErrInvalidInput, req.Period)
	}

	resp := &dto.StockResponse{Symbol: symbol, Period: period, Points: []entity.PricePoint{}}

	key := s.memo.Key("stock.Fetch", symbol, period)
	points, err := memoize(s.memo, key, func() ([]entity.PricePoint, error) {
		data, err := s.yahooFinance.Get(ctx, dto.GetStockDataParam{Symbol: symbol, Range: period, Interval: "1d"})
		if err != nil {
			return nil, err
		}
		return ComputeMovingAverages(data.Points), nil
	})
	if err != nil {
		s.log.WarnContext(ctx, "Failed to fetch stock data", logger.ErrorField(err), logger.StringField("symbol", symbol))
		resp.Warnings = append(resp.Warnings, fmt.Sprintf("stock data unavailable for %s: %v", symbol, err))
		return resp, nil
	}
	if len(points) == 0 {
		resp.Warnings = append(resp.Warnings, fmt.Sprintf("no stock data returned for %s", symbol))
		return resp, nil
	}

	resp.Points = points
	resp.Count = len(points)
	latest := points[len(points)-1].Close
	resp.LatestClose = &latest
	return resp, nil
}

// ComputeMovingAverages returns a copy of points with MA5 and MA20 set over
// trailing windows that include the current close.
func ComputeMovingAverages(points []entity.PricePoint) []entity.PricePoint {
	out := make([]entity.PricePoint, len(points))
	copy(out, points)
	ma5 := simpleMovingAverage(out, 5)
	ma20 := simpleMovingAverage(out, 20)
	for i := range out {
		out[i].MA5 = ma5[i]
		out[i].MA20 = ma20[i]
	}
	return out
}

func simpleMovingAverage(points []entity.PricePoint, window int) []*float64 {
	result := make([]*float64, len(points))
	if window <= 0 {
		return result
	}
	var sum float64
	for i, p := range points {
		sum += p.Close
		if i >= window {
			sum -= points[i-window].Close
		}
		if i >= window-1 {
			avg := sum / float64(window)
			result[i] = &avg
		}
	}
	return result
}
