package repository

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang-stock-sentiment/internal/dashboard/config"
	"golang-stock-sentiment/pkg/common"
	"golang-stock-sentiment/pkg/logger"
	"golang-stock-sentiment/pkg/ratelimit"
	"golang-stock-sentiment/pkg/trace"

	"github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"
)

// OpenAIRepository is the OpenAI sentiment fallback that can also verify its key.
type OpenAIRepository interface {
	AIRepository
	APIKeyRepository
}

type openaiAIRepository struct {
	client         *openai.Client
	cfg            *config.Config
	logger         *logger.Logger
	tokenLimiter   *ratelimit.TokenLimiter
	requestLimiter *rate.Limiter
}

// NewOpenAIRepository creates a chat-completion repository for OpenAI compatible APIs.
func NewOpenAIRepository(cfg *config.Config, log *logger.Logger) OpenAIRepository {
	secondsPerRequest := time.Minute / time.Duration(cfg.OpenAI.MaxRequestPerMinute)
	requestLimiter := rate.NewLimiter(rate.Every(secondsPerRequest), 1)

	clientConfig := openai.DefaultConfig(cfg.OpenAI.APIKey)
	if cfg.OpenAI.BaseURL != "" {
		clientConfig.BaseURL = strings.TrimRight(cfg.OpenAI.BaseURL, "/")
	}
	clientConfig.HTTPClient = &http.Client{Timeout: cfg.OpenAI.Timeout}

	return &openaiAIRepository{
		client:         openai.NewClientWithConfig(clientConfig),
		cfg:            cfg,
		logger:         log,
		requestLimiter: requestLimiter,
		tokenLimiter:   ratelimit.NewTokenLimiter(cfg.OpenAI.MaxTokenPerMinute),
	}
}

func (r *openaiAIRepository) Provider() string {
	return common.AIProviderOpenAI
}

// AnalyzeSentiment sends text with the sentiment instruction and returns the raw reply.
func (r *openaiAIRepository) AnalyzeSentiment(ctx context.Context, text string) (string, error) {
	if r.cfg.OpenAI.APIKey == "" {
		return "", common.Tag(common.ErrModelUnavailable, errors.New("openai api key is not configured"))
	}

	ctx, span := trace.StartSpan(ctx, "openai.AnalyzeSentiment")
	defer span.End()

	if err := r.tokenLimiter.Wait(ctx, estimateTokens(r.cfg.Sentiment.SystemPrompt+text)+r.cfg.OpenAI.MaxTokens); err != nil {
		return "", fmt.Errorf("failed to wait for token limit: %w", err)
	}
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("failed to wait for request limit: %w", err)
	}

	resp, err := r.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: r.cfg.OpenAI.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: r.cfg.Sentiment.SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		MaxTokens:   r.cfg.OpenAI.MaxTokens,
		Temperature: r.cfg.OpenAI.Temperature,
	})
	if err != nil {
		span.RecordError(err)
		r.logger.ErrorContext(ctx, "Failed to send request to OpenAI API", logger.ErrorField(err))
		return "", common.Tag(common.ErrNetworkFailure, fmt.Errorf("failed to send request to OpenAI API: %w", err))
	}
	if len(resp.Choices) == 0 {
		return "", common.Tag(common.ErrParseFailure, errors.New("no choices in OpenAI response"))
	}

	reply := resp.Choices[0].Message.Content
	r.logger.DebugContext(ctx, "OpenAI sentiment reply",
		logger.StringField("reply", reply),
		logger.IntField("total_tokens", resp.Usage.TotalTokens),
	)
	return reply, nil
}

// ValidateAPIKey lists the models with the configured key; only an
// authentication failure reports the key as invalid without an error.
func (r *openaiAIRepository) ValidateAPIKey(ctx context.Context) (bool, error) {
	if r.cfg.OpenAI.APIKey == "" {
		return false, nil
	}

	_, err := r.client.ListModels(ctx)
	if err == nil {
		return true, nil
	}

	var apiErr *openai.APIError
	var reqErr *openai.RequestError
	switch {
	case errors.As(err, &apiErr) && apiErr.HTTPStatusCode > 0:
		r.logger.WarnContext(ctx, "API key rejected", logger.IntField("status_code", apiErr.HTTPStatusCode))
		return false, nil
	case errors.As(err, &reqErr) && reqErr.HTTPStatusCode > 0:
		r.logger.WarnContext(ctx, "API key rejected", logger.IntField("status_code", reqErr.HTTPStatusCode))
		return false, nil
	}

	r.logger.ErrorContext(ctx, "Failed to validate API key", logger.ErrorField(err))
	return false, common.Tag(common.ErrNetworkFailure, fmt.Errorf("failed to validate API key: %w", err))
}

// estimateTokens approximates the prompt size at four characters per token.
func estimateTokens(s string) int {
	return len(s)/4 + 1
}
