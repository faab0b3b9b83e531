package service

import (
	"fmt"

	"golang-stock-sentiment/internal/dashboard/dto"
	"golang-stock-sentiment/pkg/common"
)

var supportedLanguages = []dto.LanguageOption{
	{Name: "English", LanguageCode: "en-US", RegionCode: "US:en"},
	{Name: "Simplified Chinese", LanguageCode: "zh-CN", RegionCode: "CN:zh-Hans"},
	{Name: "Traditional Chinese", LanguageCode: "zh-TW", RegionCode: "TW:zh-Hant"},
	{Name: "Spanish", LanguageCode: "es-ES", RegionCode: "ES:es"},
}

var supportedStocks = []dto.StockOption{
	{Market: "Hong Kong Stock Exchange", Symbol: "1810.HK"},
	{Market: "OTC Market", Symbol: "XIACF"},
}

var supportedPeriods = []string{"1mo", "3mo", "6mo", "1y", "5y"}

var forecastHorizons = []int{7, 14, 30}

const (
	defaultPeriod = "1y"

	minArticles     = 10
	maxArticles     = 200
	articleStep     = 10
	defaultArticles = 50

	minBatch     = 5
	maxBatch     = 50
	batchStep    = 5
	defaultBatch = 20
)

// LookupLanguage finds a news language by its display name.
func LookupLanguage(name string) (dto.LanguageOption, bool) {
	for _, l := range supportedLanguages {
		if l.Name == name {
			return l, true
		}
	}
	return dto.LanguageOption{}, false
}

func IsSupportedStock(symbol string) bool {
	for _, s := range supportedStocks {
		if s.Symbol == symbol {
			return true
		}
	}
	return false
}

func IsSupportedPeriod(period string) bool {
	for _, p := range supportedPeriods {
		if p == period {
			return true
		}
	}
	return false
}

func IsSupportedHorizon(days int) bool {
	for _, h := range forecastHorizons {
		if h == days {
			return true
		}
	}
	return false
}

// inSteppedRange reports whether v lies in [min, max] on the step grid.
func inSteppedRange(v, min, max, step int) bool {
	return v >= min && v <= max && (v-min)%step == 0
}

// Options lists the allowed values of every dashboard control.
func Options() dto.OptionsResponse {
	return dto.OptionsResponse{
		Languages:        append([]dto.LanguageOption(nil), supportedLanguages...),
		Stocks:           append([]dto.StockOption(nil), supportedStocks...),
		Periods:          append([]string(nil), supportedPeriods...),
		DefaultPeriod:    defaultPeriod,
		ArticleCount:     dto.RangeOption{Min: minArticles, Max: maxArticles, Step: articleStep, Default: defaultArticles},
		BatchCount:       dto.RangeOption{Min: minBatch, Max: maxBatch, Step: batchStep, Default: defaultBatch},
		ForecastHorizons: append([]int(nil), forecastHorizons...),
		NewsSources:      []string{common.NewsSourceCurrent, common.NewsSourceHistorical},
	}
}

// NormalizeBatchCount applies the default to a zero count and rejects counts
// off the batch grid.
func NormalizeBatchCount(n int) (int, error) {
	if n == 0 {
		return defaultBatch, nil
	}
	if !inSteppedRange(n, minBatch, maxBatch, batchStep) {
		return 0, fmt.Errorf("%w: article_count must be between %d and %d in steps of %d", common.ErrInvalidInput, minBatch, maxBatch, batchStep)
	}
	return n, nil
}
