package app

import (
	"context"
	"strconv"
	"testing"
	"time"

	"golang-stock-sentiment/internal/dashboard/config"
	"golang-stock-sentiment/internal/entity"
	"golang-stock-sentiment/pkg/common"
	pkgconfig "golang-stock-sentiment/pkg/config"
	"golang-stock-sentiment/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseConfig() *config.Config {
	return &config.Config{
		Session:   config.Session{Store: common.SessionStoreMemory, TTL: time.Hour},
		AI:        config.AI{Provider: common.AIProviderNone},
		Sentiment: config.Sentiment{LocalLanguages: []string{"en", "zh"}, BatchPause: time.Millisecond},
		Defaults:  config.Defaults{Language: "English", Stock: "1810.HK"},
		YahooFinance: config.YahooFinance{
			BaseURL:             "http://127.0.0.1:0",
			MaxRequestPerMinute: 60,
		},
		OpenAI: config.OpenAI{BaseURL: "http://127.0.0.1:0/v1", MaxRequestPerMinute: 60},
		Gemini: config.Gemini{MaxRequestPerMinute: 60},
	}
}

func TestNew_MemoryStore(t *testing.T) {
	a, err := New(context.Background(), baseConfig(), logger.NewNop())
	require.NoError(t, err)
	defer a.Close()

	assert.NotNil(t, a.Services.Sessions)
	assert.NotNil(t, a.Services.News)
	assert.NotNil(t, a.Services.Stocks)
	assert.NotNil(t, a.Services.Sentiment)
	assert.NotNil(t, a.Services.Forecast)
	assert.NotNil(t, a.Services.Settings)

	score := a.Services.Sentiment.Score(context.Background(), "Xiaomi shares surge to a record high after the company reported strong quarterly profits and growth")
	assert.Equal(t, entity.ScorePositive, score)
}

func TestNew_RedisStore(t *testing.T) {
	mr := miniredis.RunT(t)

	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)

	cfg := baseConfig()
	cfg.Session.Store = common.SessionStoreRedis
	cfg.Redis = pkgconfig.Redis{Host: mr.Host(), Port: port, PoolSize: 2}

	a, err := New(context.Background(), cfg, logger.NewNop())
	require.NoError(t, err)
	defer a.Close()

	ctx := context.Background()
	session, err := a.Services.Sessions.Load(ctx, "")
	require.NoError(t, err)
	require.NoError(t, a.Services.Sessions.Save(ctx, session))
	assert.True(t, mr.Exists(common.RedisSessionKeyPrefix+session.ID))
}

func TestNew_GeminiWithoutKeyDisablesRemote(t *testing.T) {
	cfg := baseConfig()
	cfg.AI.Provider = common.AIProviderGemini

	ai, err := newAIRepository(context.Background(), cfg, logger.NewNop())
	require.NoError(t, err)
	assert.Nil(t, ai)
}

func TestNew_InvalidProvider(t *testing.T) {
	cfg := baseConfig()
	cfg.AI.Provider = "claude"

	_, err := New(context.Background(), cfg, logger.NewNop())
	assert.Error(t, err)
}
