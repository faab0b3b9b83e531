package repository

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang-stock-sentiment/internal/dashboard/config"
	"golang-stock-sentiment/internal/dashboard/dto"
	"golang-stock-sentiment/internal/entity"
	"golang-stock-sentiment/pkg/common"
	"golang-stock-sentiment/pkg/logger"
	"golang-stock-sentiment/pkg/utils"

	"github.com/mmcdole/gofeed"
)

type newsRepository struct {
	cfg    *config.Config
	log    *logger.Logger
	parser *gofeed.Parser
	now    func() time.Time
}

// NewNewsRepository creates a Google News RSS repository.
func NewNewsRepository(cfg *config.Config, log *logger.Logger) NewsRepository {
	parser := gofeed.NewParser()
	parser.Client = &http.Client{Timeout: cfg.News.Timeout}
	parser.UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

	return &newsRepository{
		cfg:    cfg,
		log:    log,
		parser: parser,
		now:    time.Now,
	}
}

// Search returns at most param.Limit headlines in feed order.
func (r *newsRepository) Search(ctx context.Context, param dto.GetNewsParam) ([]entity.Headline, error) {
	feedURL := r.buildSearchURL(param)

	feed, err := r.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		r.log.ErrorContext(ctx, "Failed to parse news feed", logger.ErrorField(err), logger.StringField("url", feedURL))
		return nil, classifyFeedError(fmt.Errorf("failed to parse news feed: %w", err))
	}

	now := r.now()
	headlines := make([]entity.Headline, 0, len(feed.Items))
	for _, item := range feed.Items {
		if param.Limit > 0 && len(headlines) >= param.Limit {
			break
		}
		if item == nil {
			continue
		}
		title := utils.StripMarkup(utils.CleanToValidUTF8(item.Title))
		if title == "" {
			r.log.DebugContext(ctx, "Skipping news item without title", logger.StringField("link", item.Link))
			continue
		}
		published := now
		if item.PublishedParsed != nil {
			published = *item.PublishedParsed
		}
		headlines = append(headlines, entity.Headline{
			Title:     title,
			Link:      item.Link,
			Published: published,
		})
	}

	r.log.DebugContext(ctx, "Fetched news",
		logger.StringField("keyword", param.Keyword),
		logger.IntField("items", len(feed.Items)),
		logger.IntField("returned", len(headlines)),
	)

	return headlines, nil
}

func (r *newsRepository) buildSearchURL(param dto.GetNewsParam) string {
	country := param.RegionCode
	if i := strings.Index(country, ":"); i >= 0 {
		country = country[:i]
	}
	return fmt.Sprintf("%s/search?q=%s&hl=%s&gl=%s&ceid=%s",
		strings.TrimRight(r.cfg.News.BaseURL, "/"),
		url.QueryEscape(param.Keyword),
		param.LanguageCode,
		country,
		param.RegionCode,
	)
}

func classifyFeedError(err error) error {
	var httpErr gofeed.HTTPError
	var urlErr *url.Error
	if errors.As(err, &httpErr) || errors.As(err, &urlErr) || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return common.Tag(common.ErrNetworkFailure, err)
	}
	return common.Tag(common.ErrParseFailure, err)
}
