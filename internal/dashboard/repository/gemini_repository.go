package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang-stock-sentiment/internal/dashboard/config"
	"golang-stock-sentiment/pkg/common"
	"golang-stock-sentiment/pkg/logger"
	"golang-stock-sentiment/pkg/ratelimit"
	"golang-stock-sentiment/pkg/trace"

	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// geminiAIRepository is an implementation of AIRepository that uses the Google Gemini API.
type geminiAIRepository struct {
	cfg            *config.Config
	logger         *logger.Logger
	tokenLimiter   *ratelimit.TokenLimiter
	requestLimiter *rate.Limiter
	genAiClient    *genai.Client
}

// NewGeminiAIRepository creates a new instance of geminiAIRepository.
func NewGeminiAIRepository(cfg *config.Config, log *logger.Logger, genAiClient *genai.Client) (AIRepository, error) {
	if genAiClient == nil {
		return nil, errors.New("gemini client is required")
	}
	secondsPerRequest := time.Minute / time.Duration(cfg.Gemini.MaxRequestPerMinute)
	requestLimiter := rate.NewLimiter(rate.Every(secondsPerRequest), 1)

	return &geminiAIRepository{
		cfg:            cfg,
		logger:         log,
		requestLimiter: requestLimiter,
		tokenLimiter:   ratelimit.NewTokenLimiter(cfg.Gemini.MaxTokenPerMinute),
		genAiClient:    genAiClient,
	}, nil
}

func (r *geminiAIRepository) Provider() string {
	return common.AIProviderGemini
}

// AnalyzeSentiment asks Gemini for a one-word sentiment verdict.
func (r *geminiAIRepository) AnalyzeSentiment(ctx context.Context, text string) (string, error) {
	ctx, span := trace.StartSpan(ctx, "gemini.AnalyzeSentiment")
	defer span.End()

	contents := []*genai.Content{
		genai.NewContentFromText(text, genai.RoleUser),
	}

	if err := r.tokenLimiter.Wait(ctx, estimateTokens(r.cfg.Sentiment.SystemPrompt+text)+r.cfg.Gemini.MaxTokens); err != nil {
		return "", fmt.Errorf("failed to wait for token limit: %w", err)
	}
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("failed to wait for request limit: %w", err)
	}

	temperature := r.cfg.Gemini.Temperature
	resp, err := r.genAiClient.Models.GenerateContent(ctx, r.cfg.Gemini.Model, contents, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(r.cfg.Sentiment.SystemPrompt, genai.RoleUser),
		Temperature:       &temperature,
		MaxOutputTokens:   int32(r.cfg.Gemini.MaxTokens),
	})
	if err != nil {
		span.RecordError(err)
		r.logger.ErrorContext(ctx, "Failed to send request to Gemini API", logger.ErrorField(err))
		return "", common.Tag(common.ErrNetworkFailure, fmt.Errorf("failed to send request to Gemini API: %w", err))
	}

	reply := resp.Text()
	if reply == "" {
		return "", common.Tag(common.ErrParseFailure, errors.New("no content found in Gemini response"))
	}

	r.logger.DebugContext(ctx, "Gemini sentiment reply", logger.StringField("reply", reply))
	return reply, nil
}
