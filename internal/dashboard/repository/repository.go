package repository

import (
	"context"

	"golang-stock-sentiment/internal/dashboard/dto"
	"golang-stock-sentiment/internal/entity"
)

// NewsRepository fetches headlines from a news feed.
type NewsRepository interface {
	Search(ctx context.Context, param dto.GetNewsParam) ([]entity.Headline, error)
}

// YahooFinanceRepository fetches daily price history.
type YahooFinanceRepository interface {
	Get(ctx context.Context, param dto.GetStockDataParam) (*dto.StockData, error)
}

// AIRepository asks a chat-completion model for a one-word sentiment verdict.
type AIRepository interface {
	Provider() string
	AnalyzeSentiment(ctx context.Context, text string) (string, error)
}

// APIKeyRepository checks whether the configured remote API key is accepted.
type APIKeyRepository interface {
	ValidateAPIKey(ctx context.Context) (bool, error)
}

// SessionRepository stores dashboard sessions.
type SessionRepository interface {
	Get(ctx context.Context, id string) (*entity.Session, error)
	Save(ctx context.Context, session *entity.Session) error
	Delete(ctx context.Context, id string) error
}
