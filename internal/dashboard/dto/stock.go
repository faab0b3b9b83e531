package dto

import "golang-stock-sentiment/internal/entity"

// FetchStockRequest is the body of a stock data fetch.
type FetchStockRequest struct {
	Symbol string `json:"symbol" example:"1810.HK"`
	Period string `json:"period" example:"1y"`
}

// StockResponse carries a price history with its moving averages.
type StockResponse struct {
	Symbol      string              `json:"symbol"`
	Period      string              `json:"period"`
	Count       int                 `json:"count"`
	LatestClose *float64            `json:"latest_close"`
	Points      []entity.PricePoint `json:"points"`
	Warnings    []string            `json:"warnings,omitempty"`
}

// GetStockDataParam is the query sent to the finance data API.
type GetStockDataParam struct {
	Symbol   string
	Range    string
	Interval string
}

// StockData is a normalized daily price history.
type StockData struct {
	Symbol       string
	Currency     string
	ExchangeName string
	Points       []entity.PricePoint
}
