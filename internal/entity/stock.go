package entity

import "time"

// PricePoint is one trading day of a stock.
type PricePoint struct {
	Date   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume float64   `json:"volume"`
	// MA5 and MA20 stay nil until enough closes exist for the window.
	MA5  *float64 `json:"ma5"`
	MA20 *float64 `json:"ma20"`
}

// Up reports whether the day closed above its open.
func (p PricePoint) Up() bool {
	return p.Close > p.Open
}

// ForecastPoint is a predicted close for a future calendar day.
type ForecastPoint struct {
	Date           time.Time `json:"date"`
	PredictedClose float64   `json:"predicted_close"`
}
