package dto

import "golang-stock-sentiment/internal/entity"

// AnalyzeSentimentRequest scores one piece of text.
type AnalyzeSentimentRequest struct {
	Text     string `json:"text" example:"The company reported record profits and growth"`
	Detailed bool   `json:"detailed"`
}

// AnalyzeSentimentResponse is the result of a single text analysis.
type AnalyzeSentimentResponse struct {
	Score    entity.Score `json:"score"`
	Label    entity.Label `json:"label"`
	Warnings []string     `json:"warnings,omitempty"`
}

// BatchSentimentRequest scores the first ArticleCount headlines of a source.
type BatchSentimentRequest struct {
	Source       string `json:"source" example:"current" enums:"current,historical"`
	ArticleCount int    `json:"article_count" example:"20"`
}

// BatchSentimentResponse holds batch results and the aggregates the dashboard charts.
type BatchSentimentResponse struct {
	Count        int                      `json:"count"`
	Results      []entity.SentimentResult `json:"results"`
	Distribution map[entity.Label]int     `json:"distribution"`
	Histogram    map[entity.Score]int     `json:"histogram"`
	Trend        []entity.SentimentResult `json:"trend"`
	Warnings     []string                 `json:"warnings,omitempty"`
}

// SentimentCSVRow is one line of the batch export.
type SentimentCSVRow struct {
	Time  string `csv:"time"`
	Label string `csv:"label"`
	Score int    `csv:"score"`
	Title string `csv:"title"`
}
