package dto

import "golang-stock-sentiment/internal/entity"

// FetchNewsRequest is the body of a news fetch.
type FetchNewsRequest struct {
	Keyword     string `json:"keyword" example:"Xiaomi"`
	Language    string `json:"language" example:"English"`
	MaxArticles int    `json:"max_articles" example:"50"`
}

// NewsResponse lists the session's current headlines.
type NewsResponse struct {
	Count     int               `json:"count"`
	Headlines []entity.Headline `json:"headlines"`
	Warnings  []string          `json:"warnings,omitempty"`
}

// GetNewsParam is the query sent to the news feed.
type GetNewsParam struct {
	Keyword      string
	LanguageCode string
	// RegionCode is the Google News edition id, e.g. "US:en".
	RegionCode string
	Limit      int
}
