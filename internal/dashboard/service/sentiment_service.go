package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"golang-stock-sentiment/internal/dashboard/classifier"
	"golang-stock-sentiment/internal/dashboard/config"
	"golang-stock-sentiment/internal/dashboard/dto"
	"golang-stock-sentiment/internal/dashboard/repository"
	"golang-stock-sentiment/internal/entity"
	"golang-stock-sentiment/pkg/common"
	"golang-stock-sentiment/pkg/logger"
	"golang-stock-sentiment/pkg/utils"

	"github.com/gocarina/gocsv"
	"golang.org/x/time/rate"
)

// Tier failures. Each tier reports one of these (or classifier.ErrNoSignal /
// classifier.ErrInference / common.ErrModelUnavailable) instead of a score.
var (
	ErrRemoteUnavailable = errors.New("remote sentiment provider unavailable")
	ErrRemoteCall        = errors.New("remote sentiment call failed")
)

const (
	TierLocal  = "local"
	TierRemote = "remote"
)

// TierOutcome records what one scoring tier did with a text.
type TierOutcome struct {
	Tier     string
	Language string
	Score    entity.Score
	Err      error
}

// Analysis is the full trace of a single text through the tiers.
type Analysis struct {
	Score    entity.Score
	Language string
	Tiers    []TierOutcome
}

// Warnings describes every failed tier, for surfacing to the caller.
func (a Analysis) Warnings() []string {
	var warnings []string
	for _, t := range a.Tiers {
		if t.Err == nil || errors.Is(t.Err, classifier.ErrNoSignal) {
			continue
		}
		warnings = append(warnings, fmt.Sprintf("%s sentiment tier failed: %v", t.Tier, t.Err))
	}
	return warnings
}

// SentimentService scores text and headline batches.
type SentimentService interface {
	Score(ctx context.Context, text string) entity.Score
	Analyze(ctx context.Context, text string, detailed bool) Analysis
	AnalyzeBatch(ctx context.Context, headlines []entity.Headline, k int) []entity.SentimentResult
	Summarize(results []entity.SentimentResult) dto.BatchSentimentResponse
	ExportCSV(results []entity.SentimentResult) (string, error)
}

type sentimentService struct {
	cfg          *config.Config
	log          *logger.Logger
	detector     classifier.LanguageDetector
	registry     *classifier.Registry
	ai           repository.AIRepository
	memo         *Memo
	batchLimiter *rate.Limiter
}

// NewSentimentService wires the scorer. ai may be nil, in which case the remote
// tier always reports ErrRemoteUnavailable.
func NewSentimentService(
	cfg *config.Config,
	log *logger.Logger,
	detector classifier.LanguageDetector,
	registry *classifier.Registry,
	ai repository.AIRepository,
	memo *Memo,
) SentimentService {
	pause := cfg.Sentiment.BatchPause
	limit := rate.Inf
	if pause > 0 {
		limit = rate.Every(pause)
	}
	return &sentimentService{
		cfg:          cfg,
		log:          log,
		detector:     detector,
		registry:     registry,
		ai:           ai,
		memo:         memo,
		batchLimiter: rate.NewLimiter(limit, 1),
	}
}

// Score returns -1, 0 or +1 for text. It never fails: when every tier fails the
// score is neutral.
func (s *sentimentService) Score(ctx context.Context, text string) entity.Score {
	return s.analyzeCached(ctx, text).Score
}

// Analyze scores text. The detailed mode is reserved and always yields a
// neutral score without consulting any tier.
func (s *sentimentService) Analyze(ctx context.Context, text string, detailed bool) Analysis {
	if detailed {
		return Analysis{Score: entity.ScoreNeutral}
	}
	return s.analyzeCached(ctx, text)
}

func (s *sentimentService) scoreKey(text string) string {
	return s.memo.Key("sentiment.Score", text)
}

func (s *sentimentService) analyzeCached(ctx context.Context, text string) Analysis {
	key := s.scoreKey(text)
	if v, ok := s.memo.Get(key); ok {
		if a, ok := v.(Analysis); ok {
			return a
		}
	}
	a := s.analyze(ctx, text)
	// A failed remote call is not memoized so a later attempt can still succeed.
	if !a.remoteFailed() {
		s.memo.Set(key, a)
	}
	return a
}

func (a Analysis) remoteFailed() bool {
	for _, t := range a.Tiers {
		if t.Tier == TierRemote && errors.Is(t.Err, ErrRemoteCall) {
			return true
		}
	}
	return false
}

func (s *sentimentService) analyze(ctx context.Context, text string) Analysis {
	cleaned := utils.StripMarkup(utils.CleanToValidUTF8(text))
	if cleaned == "" {
		return Analysis{Score: entity.ScoreNeutral}
	}

	lang := s.detectLanguage(cleaned)
	a := Analysis{Language: lang}

	local := s.localTier(ctx, lang, cleaned)
	a.Tiers = append(a.Tiers, local)
	if local.Err == nil {
		a.Score = local.Score
		return a
	}

	remote := s.remoteTier(ctx, cleaned)
	a.Tiers = append(a.Tiers, remote)
	if remote.Err == nil {
		a.Score = remote.Score
		return a
	}

	s.log.DebugContext(ctx, "All sentiment tiers failed, scoring neutral",
		logger.StringField("language", lang),
		logger.Field("local_error", local.Err.Error()),
		logger.Field("remote_error", remote.Err.Error()),
	)
	a.Score = entity.ScoreNeutral
	return a
}

func (s *sentimentService) detectLanguage(text string) string {
	if s.detector == nil {
		return classifier.DefaultLanguage
	}
	lang := s.detector.Detect(text)
	if lang == "" {
		return classifier.DefaultLanguage
	}
	return lang
}

func (s *sentimentService) localTier(ctx context.Context, lang, text string) TierOutcome {
	out := TierOutcome{Tier: TierLocal, Language: lang}

	c, ok := s.registry.Lookup(lang)
	if !ok {
		out.Err = fmt.Errorf("%w: no local classifier for %q", common.ErrModelUnavailable, lang)
		return out
	}

	score, err := c.Classify(ctx, text)
	switch {
	case err == nil:
		out.Score = score
	case errors.Is(err, classifier.ErrNoSignal), errors.Is(err, classifier.ErrInference), errors.Is(err, common.ErrModelUnavailable):
		out.Err = err
	default:
		out.Err = fmt.Errorf("%w: %v", classifier.ErrInference, err)
	}
	return out
}

func (s *sentimentService) remoteTier(ctx context.Context, text string) TierOutcome {
	out := TierOutcome{Tier: TierRemote}
	if s.ai == nil {
		out.Err = ErrRemoteUnavailable
		return out
	}
	out.Language = s.ai.Provider()

	reply, err := s.ai.AnalyzeSentiment(ctx, text)
	if err != nil {
		if errors.Is(err, common.ErrModelUnavailable) {
			out.Err = errors.Join(ErrRemoteUnavailable, err)
		} else {
			out.Err = errors.Join(ErrRemoteCall, err)
		}
		return out
	}
	out.Score = ParseSentimentReply(reply)
	return out
}

// ParseSentimentReply maps a free-form model reply onto a score.
// POSITIVE takes precedence over NEGATIVE when both appear.
func ParseSentimentReply(reply string) entity.Score {
	upper := strings.ToUpper(reply)
	switch {
	case strings.Contains(upper, "POSITIVE"):
		return entity.ScorePositive
	case strings.Contains(upper, "NEGATIVE"):
		return entity.ScoreNegative
	default:
		return entity.ScoreNeutral
	}
}

// AnalyzeBatch scores the first k headlines in order. Uncached items are paced
// by the batch limiter; an item whose wait fails is logged and skipped.
func (s *sentimentService) AnalyzeBatch(ctx context.Context, headlines []entity.Headline, k int) []entity.SentimentResult {
	if k > len(headlines) {
		k = len(headlines)
	}
	if k <= 0 {
		return []entity.SentimentResult{}
	}

	results := make([]entity.SentimentResult, 0, k)
	for i, h := range headlines[:k] {
		if !s.memo.Has(s.scoreKey(h.Title)) {
			if err := s.batchLimiter.Wait(ctx); err != nil {
				s.log.WarnContext(ctx, "Skipping headline in batch",
					logger.IntField("index", i),
					logger.StringField("title", h.Title),
					logger.ErrorField(err),
				)
				continue
			}
		}
		results = append(results, entity.NewSentimentResult(h.Title, s.Score(ctx, h.Title), h.Published))
	}

	s.log.DebugContext(ctx, "Batch sentiment complete",
		logger.IntField("requested", k),
		logger.IntField("scored", len(results)),
	)
	return results
}

// Summarize builds the distribution, histogram and time-ordered trend of a batch.
func (s *sentimentService) Summarize(results []entity.SentimentResult) dto.BatchSentimentResponse {
	resp := dto.BatchSentimentResponse{
		Count:   len(results),
		Results: results,
		Distribution: map[entity.Label]int{
			entity.LabelPositive: 0,
			entity.LabelNeutral:  0,
			entity.LabelNegative: 0,
		},
		Histogram: map[entity.Score]int{
			entity.ScoreNegative: 0,
			entity.ScoreNeutral:  0,
			entity.ScorePositive: 0,
		},
	}
	for _, r := range results {
		resp.Distribution[r.Label]++
		resp.Histogram[r.Score]++
	}

	trend := append([]entity.SentimentResult(nil), results...)
	sort.SliceStable(trend, func(i, j int) bool {
		return trend[i].Time.Before(trend[j].Time)
	})
	resp.Trend = trend
	return resp
}

// ExportCSV renders results with the columns time, label, score, title.
func (s *sentimentService) ExportCSV(results []entity.SentimentResult) (string, error) {
	rows := make([]*dto.SentimentCSVRow, 0, len(results))
	for _, r := range results {
		rows = append(rows, &dto.SentimentCSVRow{
			Time:  r.Time.UTC().Format(time.RFC3339),
			Label: string(r.Label),
			Score: int(r.Score),
			Title: r.Title,
		})
	}
	out, err := gocsv.MarshalString(&rows)
	if err != nil {
		return "", fmt.Errorf("failed to marshal sentiment csv: %w", err)
	}
	return out, nil
}
