package classifier

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"golang-stock-sentiment/internal/entity"
)

const (
	LanguageEnglish = "en"
	LanguageChinese = "zh"
)

// LexiconClassifier is an offline keyword classifier. Each matched term adds its
// weight to the bullish or bearish side and the larger side wins.
type LexiconClassifier struct {
	language string
	bullish  map[string]float64
	bearish  map[string]float64
	// spaced languages are matched on word boundaries, the rest on substrings.
	spaced bool
}

// NewLexiconClassifier creates a classifier from custom term weights.
func NewLexiconClassifier(language string, bullish, bearish map[string]float64, spaced bool) *LexiconClassifier {
	return &LexiconClassifier{
		language: language,
		bullish:  bullish,
		bearish:  bearish,
		spaced:   spaced,
	}
}

func NewEnglishClassifier() *LexiconClassifier {
	return NewLexiconClassifier(LanguageEnglish, englishBullish, englishBearish, true)
}

func NewChineseClassifier() *LexiconClassifier {
	return NewLexiconClassifier(LanguageChinese, chineseBullish, chineseBearish, false)
}

func (c *LexiconClassifier) Language() string {
	return c.language
}

// Classify returns +1 or -1 for the dominant side, 0 on a tie, and ErrNoSignal
// when no term matched.
func (c *LexiconClassifier) Classify(ctx context.Context, text string) (entity.Score, error) {
	if err := ctx.Err(); err != nil {
		return entity.ScoreNeutral, fmt.Errorf("%w: %v", ErrInference, err)
	}

	normalized := c.normalize(text)
	if normalized == "" {
		return entity.ScoreNeutral, ErrNoSignal
	}

	bull, bullHits := c.sum(normalized, c.bullish)
	bear, bearHits := c.sum(normalized, c.bearish)
	if bullHits+bearHits == 0 {
		return entity.ScoreNeutral, ErrNoSignal
	}

	switch {
	case bull > bear:
		return entity.ScorePositive, nil
	case bear > bull:
		return entity.ScoreNegative, nil
	default:
		return entity.ScoreNeutral, nil
	}
}

func (c *LexiconClassifier) sum(text string, terms map[string]float64) (float64, int) {
	var total float64
	var hits int
	for term, weight := range terms {
		needle := term
		if c.spaced {
			needle = " " + term + " "
		}
		if strings.Contains(text, needle) {
			total += weight
			hits++
		}
	}
	return total, hits
}

// normalize lower-cases the text; for spaced languages punctuation becomes a
// single space and the result is padded so every word has a space on both sides.
func (c *LexiconClassifier) normalize(text string) string {
	lower := strings.ToLower(strings.TrimSpace(text))
	if !c.spaced {
		return lower
	}
	fields := strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-'
	})
	if len(fields) == 0 {
		return ""
	}
	return " " + strings.Join(fields, " ") + " "
}

var englishBullish = map[string]float64{
	"bullish": 0.7, "rally": 0.6, "rallies": 0.6, "surge": 0.7, "surges": 0.7, "soar": 0.7, "soars": 0.7,
	"jump": 0.5, "jumps": 0.5, "gain": 0.4, "gains": 0.4, "rise": 0.4, "rises": 0.4, "rose": 0.4,
	"upbeat": 0.5, "positive": 0.4, "growth": 0.4, "grows": 0.4, "upgrade": 0.6, "upgraded": 0.6,
	"outperform": 0.6, "buy": 0.5, "strong": 0.4, "stronger": 0.4, "recovery": 0.5, "rebound": 0.5,
	"breakout": 0.6, "record high": 0.7, "all-time high": 0.7, "beat": 0.5, "beats": 0.5,
	"exceeds": 0.5, "expansion": 0.4, "profit": 0.3, "profits": 0.3, "record": 0.3,
	"dividend": 0.4, "success": 0.5, "successful": 0.5, "boost": 0.5, "boosts": 0.5,
	"optimistic": 0.5, "win": 0.4, "wins": 0.4, "launch": 0.2, "launches": 0.2,
}

var englishBearish = map[string]float64{
	"bearish": 0.7, "crash": 0.8, "crashes": 0.8, "plunge": 0.7, "plunges": 0.7, "slump": 0.6,
	"slumps": 0.6, "tumble": 0.6, "tumbles": 0.6, "drop": 0.5, "drops": 0.5, "negative": 0.4,
	"downgrade": 0.6, "downgraded": 0.6, "underperform": 0.6, "sell": 0.5, "weak": 0.4,
	"weaker": 0.4, "decline": 0.5, "declines": 0.5, "loss": 0.4, "losses": 0.4, "selloff": 0.7,
	"sell-off": 0.7, "fall": 0.4, "falls": 0.4, "fell": 0.4, "correction": 0.5, "default": 0.7,
	"fraud": 0.8, "scam": 0.8, "investigation": 0.5, "probe": 0.5, "lawsuit": 0.5, "cut": 0.3,
	"cuts": 0.3, "miss": 0.5, "misses": 0.5, "warning": 0.5, "concern": 0.3, "concerns": 0.3,
	"ban": 0.6, "sanctions": 0.6, "recall": 0.5, "layoffs": 0.5, "pessimistic": 0.5,
}

var chineseBullish = map[string]float64{
	"大涨": 0.7, "上涨": 0.5, "涨": 0.3, "飙升": 0.7, "暴涨": 0.7, "新高": 0.7, "创新高": 0.7,
	"增长": 0.4, "成长": 0.4, "利好": 0.6, "盈利": 0.4, "获利": 0.4, "强劲": 0.5, "看好": 0.5,
	"看涨": 0.6, "上调": 0.5, "买入": 0.5, "增持": 0.5, "突破": 0.5, "反弹": 0.5, "回升": 0.4,
	"超预期": 0.6, "优于预期": 0.6, "成功": 0.4, "领先": 0.4, "热销": 0.5, "派息": 0.4, "分红": 0.4,
	"漲": 0.3, "大漲": 0.7, "上漲": 0.5, "看漲": 0.6, "獲利": 0.4, "強勁": 0.5, "增長": 0.4,
}

var chineseBearish = map[string]float64{
	"大跌": 0.7, "下跌": 0.5, "跌": 0.3, "暴跌": 0.8, "崩盘": 0.8, "新低": 0.7, "亏损": 0.5,
	"下滑": 0.5, "下降": 0.4, "利空": 0.6, "疲软": 0.5, "看空": 0.6, "看跌": 0.6, "下调": 0.5,
	"卖出": 0.5, "减持": 0.5, "低于预期": 0.6, "不及预期": 0.6, "调查": 0.5, "诉讼": 0.5,
	"罚款": 0.6, "制裁": 0.6, "裁员": 0.5, "召回": 0.5, "风险": 0.3, "担忧": 0.4,
	"虧損": 0.5, "崩盤": 0.8, "賣出": 0.5, "減持": 0.5, "擔憂": 0.4, "風險": 0.3,
}
