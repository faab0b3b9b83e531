package service

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"

	"golang-stock-sentiment/internal/dashboard/dto"
	"golang-stock-sentiment/internal/entity"
	"golang-stock-sentiment/pkg/logger"
	"golang-stock-sentiment/pkg/polyreg"
	"golang-stock-sentiment/pkg/utils"
)

const (
	forecastDegree = 2

	DirectionUp     = "uptrend"
	DirectionDown   = "downtrend"
	DirectionStable = "stable"

	// stablePercent is the largest absolute percent change still reported as stable.
	stablePercent = 0.01
)

// ForecastService predicts future closes from a price history.
type ForecastService interface {
	Forecast(ctx context.Context, history []entity.PricePoint, days int) ([]entity.ForecastPoint, error)
	Summarize(points []entity.ForecastPoint) *dto.ForecastSummary
}

type forecastService struct {
	log  *logger.Logger
	memo *Memo
}

func NewForecastService(log *logger.Logger, memo *Memo) ForecastService {
	return &forecastService{log: log, memo: memo}
}

// calendarFeatures is the (weekday, month) pair the model is fitted on, with
// Monday as 0.
func calendarFeatures(p entity.PricePoint) []float64 {
	return []float64{float64(utils.MondayFirstWeekday(p.Date)), float64(p.Date.Month())}
}

// Forecast fits a degree-2 polynomial of weekday and month to the closes and
// predicts the next days calendar days. An empty history or a non-positive
// horizon yields an empty forecast.
func (s *forecastService) Forecast(ctx context.Context, history []entity.PricePoint, days int) ([]entity.ForecastPoint, error) {
	if len(history) == 0 || days <= 0 {
		return []entity.ForecastPoint{}, nil
	}

	key := s.memo.Key("forecast.Forecast", historyFingerprint(history), days)
	return memoize(s.memo, key, func() ([]entity.ForecastPoint, error) {
		return s.forecast(ctx, history, days)
	})
}

func (s *forecastService) forecast(ctx context.Context, history []entity.PricePoint, days int) ([]entity.ForecastPoint, error) {
	X := make([][]float64, len(history))
	y := make([]float64, len(history))
	last := history[0].Date
	for i, p := range history {
		X[i] = calendarFeatures(p)
		y[i] = p.Close
		if p.Date.After(last) {
			last = p.Date
		}
	}

	model, err := polyreg.Fit(X, y, forecastDegree)
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to fit forecast model", logger.ErrorField(err), logger.IntField("samples", len(history)))
		return nil, fmt.Errorf("failed to fit forecast model: %w", err)
	}

	dates := utils.NextDays(last, days)
	points := make([]entity.ForecastPoint, len(dates))
	for i, d := range dates {
		points[i] = entity.ForecastPoint{
			Date:           d,
			PredictedClose: model.Predict(calendarFeatures(entity.PricePoint{Date: d})),
		}
	}

	s.log.DebugContext(ctx, "Forecast generated",
		logger.IntField("samples", len(history)),
		logger.IntField("days", days),
	)
	return points, nil
}

// Summarize describes the move from the first to the last predicted close.
func (s *forecastService) Summarize(points []entity.ForecastPoint) *dto.ForecastSummary {
	if len(points) == 0 {
		return nil
	}
	start := points[0].PredictedClose
	end := points[len(points)-1].PredictedClose
	change := end - start

	var pct float64
	if start != 0 {
		pct = change / start * 100
	}

	direction := DirectionStable
	switch {
	case math.Abs(pct) < stablePercent:
	case change > 0:
		direction = DirectionUp
	case change < 0:
		direction = DirectionDown
	}

	return &dto.ForecastSummary{
		StartPrice:    start,
		EndPrice:      end,
		Change:        change,
		PercentChange: pct,
		Direction:     direction,
	}
}

func historyFingerprint(history []entity.PricePoint) string {
	h := fnv.New64a()
	for _, p := range history {
		fmt.Fprintf(h, "%d:%g;", p.Date.Unix(), p.Close)
	}
	return fmt.Sprintf("%d-%x", len(history), h.Sum64())
}
