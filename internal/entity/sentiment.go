package entity

import "time"

// Score is a sentiment polarity: -1, 0 or +1.
type Score int

const (
	ScoreNegative Score = -1
	ScoreNeutral  Score = 0
	ScorePositive Score = 1
)

// Label is the human readable form of a Score.
type Label string

const (
	LabelPositive Label = "Positive"
	LabelNeutral  Label = "Neutral"
	LabelNegative Label = "Negative"
)

// Label maps the score to its label.
func (s Score) Label() Label {
	switch {
	case s > 0:
		return LabelPositive
	case s < 0:
		return LabelNegative
	default:
		return LabelNeutral
	}
}

// SentimentResult is the scored form of a headline.
type SentimentResult struct {
	Title string    `json:"title"`
	Score Score     `json:"score"`
	Label Label     `json:"label"`
	Time  time.Time `json:"time"`
}

// NewSentimentResult builds a result whose label agrees with its score.
func NewSentimentResult(title string, score Score, at time.Time) SentimentResult {
	return SentimentResult{
		Title: title,
		Score: score,
		Label: score.Label(),
		Time:  at,
	}
}
