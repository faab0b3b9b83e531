package service

import (
	"context"
	"sync"
	"time"

	"golang-stock-sentiment/internal/dashboard/config"
	"golang-stock-sentiment/internal/dashboard/dto"
	"golang-stock-sentiment/internal/entity"
	"golang-stock-sentiment/pkg/common"
)

type fakeAI struct {
	mu    sync.Mutex
	reply string
	err   error
	calls []string
}

func (f *fakeAI) Provider() string { return "fake" }

func (f *fakeAI) AnalyzeSentiment(_ context.Context, text string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, text)
	return f.reply, f.err
}

func (f *fakeAI) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

type fixedDetector string

func (d fixedDetector) Detect(string) string { return string(d) }

type fakeNewsRepo struct {
	headlines []entity.Headline
	err       error
	calls     int
	lastParam dto.GetNewsParam
}

func (f *fakeNewsRepo) Search(_ context.Context, param dto.GetNewsParam) ([]entity.Headline, error) {
	f.calls++
	f.lastParam = param
	if f.err != nil {
		return nil, f.err
	}
	return f.headlines, nil
}

type fakeYahooRepo struct {
	data  *dto.StockData
	err   error
	calls int
}

func (f *fakeYahooRepo) Get(_ context.Context, _ dto.GetStockDataParam) (*dto.StockData, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.data, nil
}

type fakeKeyRepo struct {
	valid bool
	err   error
}

func (f *fakeKeyRepo) ValidateAPIKey(context.Context) (bool, error) {
	return f.valid, f.err
}

func testConfig() *config.Config {
	return &config.Config{
		Sentiment: config.Sentiment{
			LocalLanguages: []string{"en", "zh"},
			SystemPrompt:   "Analyze sentiment as POSITIVE, NEUTRAL, or NEGATIVE.",
			BatchPause:     time.Millisecond,
		},
		Defaults: config.Defaults{Language: "English", Stock: "1810.HK"},
		AI:       config.AI{Provider: common.AIProviderOpenAI},
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
