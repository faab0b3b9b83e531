package app

import (
	"context"
	"fmt"

	"golang-stock-sentiment/internal/dashboard/classifier"
	"golang-stock-sentiment/internal/dashboard/config"
	delivery "golang-stock-sentiment/internal/dashboard/delivery/http"
	"golang-stock-sentiment/internal/dashboard/repository"
	"golang-stock-sentiment/internal/dashboard/service"
	"golang-stock-sentiment/pkg/common"
	"golang-stock-sentiment/pkg/logger"
	"golang-stock-sentiment/pkg/redis"

	"google.golang.org/genai"
)

// App is the wired dashboard: repositories, services and the resources they hold.
type App struct {
	Config   *config.Config
	Services delivery.Services
	Memo     *service.Memo

	redisClient *redis.Client
}

// New builds every repository and service from cfg.
func New(ctx context.Context, cfg *config.Config, log *logger.Logger) (*App, error) {
	a := &App{Config: cfg, Memo: service.NewMemo()}

	sessionRepo, err := a.sessionRepository(cfg, log)
	if err != nil {
		return nil, err
	}

	aiRepo, err := newAIRepository(ctx, cfg, log)
	if err != nil {
		a.Close()
		return nil, err
	}

	registry := classifier.NewDefaultRegistry(cfg.Sentiment.LocalLanguages)
	log.Info("Local sentiment classifiers loaded", logger.Field("languages", registry.Languages()))

	// Key verification always goes through the OpenAI models endpoint.
	keyRepo := repository.NewOpenAIRepository(cfg, log)

	a.Services = delivery.Services{
		Sessions:  service.NewSessionService(cfg, sessionRepo, log),
		News:      service.NewNewsService(repository.NewNewsRepository(cfg, log), log, a.Memo),
		Stocks:    service.NewStockService(repository.NewYahooFinanceRepository(cfg, log), log, a.Memo),
		Sentiment: service.NewSentimentService(cfg, log, classifier.NewWhatlangDetector(), registry, aiRepo, a.Memo),
		Forecast:  service.NewForecastService(log, a.Memo),
		Settings:  service.NewSettingsService(keyRepo, a.Memo, log),
	}
	return a, nil
}

func (a *App) sessionRepository(cfg *config.Config, log *logger.Logger) (repository.SessionRepository, error) {
	if cfg.Session.Store != common.SessionStoreRedis {
		return repository.NewMemorySessionRepository(cfg.Session.TTL), nil
	}

	client, err := redis.NewClient(redis.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize redis session store: %w", err)
	}
	a.redisClient = client
	return repository.NewRedisSessionRepository(client.Client, log, cfg.Session.TTL), nil
}

// newAIRepository returns the remote sentiment provider, or nil when none is
// configured or its key is missing.
func newAIRepository(ctx context.Context, cfg *config.Config, log *logger.Logger) (repository.AIRepository, error) {
	switch cfg.AI.Provider {
	case common.AIProviderOpenAI:
		return repository.NewOpenAIRepository(cfg, log), nil
	case common.AIProviderGemini:
		if cfg.Gemini.APIKey == "" {
			log.Warn("Gemini API key is not set, remote sentiment is disabled")
			return nil, nil
		}
		genAiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cfg.Gemini.APIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Gemini AI client: %w", err)
		}
		return repository.NewGeminiAIRepository(cfg, log, genAiClient)
	case common.AIProviderNone:
		log.Info("Remote sentiment is disabled")
		return nil, nil
	default:
		return nil, fmt.Errorf("invalid AI provider %q", cfg.AI.Provider)
	}
}

// Close releases the resources held by the app.
func (a *App) Close() {
	if a.redisClient != nil {
		_ = a.redisClient.Close()
	}
}
