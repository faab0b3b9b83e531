package dto

import "golang-stock-sentiment/internal/entity"

// ForecastRequest asks for a prediction over the session's stock data.
type ForecastRequest struct {
	Days int `json:"days" example:"7" enums:"7,14,30"`
}

// ForecastSummary describes the movement across the predicted window.
type ForecastSummary struct {
	StartPrice    float64 `json:"start_price"`
	EndPrice      float64 `json:"end_price"`
	Change        float64 `json:"change"`
	PercentChange float64 `json:"percent_change"`
	Direction     string  `json:"direction" enums:"uptrend,downtrend,stable"`
}

// ForecastResponse holds predicted closes and their summary.
type ForecastResponse struct {
	Days     int                    `json:"days"`
	Points   []entity.ForecastPoint `json:"points"`
	Summary  *ForecastSummary       `json:"summary,omitempty"`
	Warnings []string               `json:"warnings,omitempty"`
}
