package service

import (
	"context"
	"fmt"
	"strings"

	"golang-stock-sentiment/internal/dashboard/dto"
	"golang-stock-sentiment/internal/dashboard/repository"
	"golang-stock-sentiment/internal/entity"
	"golang-stock-sentiment/pkg/common"
	"golang-stock-sentiment/pkg/logger"
)

// NewsService searches headlines for a company.
type NewsService interface {
	Fetch(ctx context.Context, req dto.FetchNewsRequest) (*dto.NewsResponse, error)
}

type newsService struct {
	newsRepo repository.NewsRepository
	log      *logger.Logger
	memo     *Memo
}

func NewNewsService(newsRepo repository.NewsRepository, log *logger.Logger, memo *Memo) NewsService {
	return &newsService{newsRepo: newsRepo, log: log, memo: memo}
}

// Fetch validates the request and searches the feed. A feed failure yields an
// empty list with a warning.
func (s *newsService) Fetch(ctx context.Context, req dto.FetchNewsRequest) (*dto.NewsResponse, error) {
	keyword := strings.TrimSpace(req.Keyword)
	if keyword == "" {
		return nil, fmt.Errorf("%w: keyword is required", common.ErrInvalidInput)
	}
	lang, ok := LookupLanguage(req.Language)
	if !ok {
		return nil, fmt.Errorf("%w: unsupported language %q", common.ErrInvalidInput, req.Language)
	}
	limit := req.MaxArticles
	if limit == 0 {
		limit = defaultArticles
	}
	if !inSteppedRange(limit, minArticles, maxArticles, articleStep) {
		return nil, fmt.Errorf("%w: max_articles must be between %d and %d in steps of %d", common.ErrInvalidInput, minArticles, maxArticles, articleStep)
	}

	resp := &dto.NewsResponse{Headlines: []entity.Headline{}}

	key := s.memo.Key("news.Fetch", strings.ToLower(keyword), lang.Name, limit)
	headlines, err := memoize(s.memo, key, func() ([]entity.Headline, error) {
		return s.newsRepo.Search(ctx, dto.GetNewsParam{
			Keyword:      keyword,
			LanguageCode: lang.LanguageCode,
			RegionCode:   lang.RegionCode,
			Limit:        limit,
		})
	})
	if err != nil {
		s.log.WarnContext(ctx, "Failed to fetch news", logger.ErrorField(err), logger.StringField("keyword", keyword))
		resp.Warnings = append(resp.Warnings, fmt.Sprintf("news unavailable: %v", err))
		return resp, nil
	}
	if len(headlines) == 0 {
		resp.Warnings = append(resp.Warnings, "no news found")
	}

	resp.Headlines = headlines
	resp.Count = len(headlines)
	return resp, nil
}
