package entity

import "time"

// Preferences are the per-session settings.
type Preferences struct {
	PreferredLanguage string `json:"preferred_language"`
	PreferredStock    string `json:"preferred_stock"`
}

// Session holds the transient working data of one dashboard user.
type Session struct {
	ID               string            `json:"id"`
	CurrentNews      []Headline        `json:"current_news"`
	HistoricalNews   []Headline        `json:"historical_news"`
	StockSymbol      string            `json:"stock_symbol"`
	StockPeriod      string            `json:"stock_period"`
	StockData        []PricePoint      `json:"stock_data"`
	SentimentResults []SentimentResult `json:"sentiment_results"`
	Forecast         []ForecastPoint   `json:"forecast"`
	Preferences      Preferences       `json:"preferences"`
	APIValid         bool              `json:"api_valid"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

// NewSession returns an empty session with the given defaults.
func NewSession(id string, prefs Preferences) *Session {
	return &Session{
		ID:          id,
		Preferences: prefs,
		UpdatedAt:   time.Now(),
	}
}

// ReplaceCurrentNews installs fresh headlines and moves the previous batch
// into the historical pool.
func (s *Session) ReplaceCurrentNews(news []Headline) {
	if len(s.CurrentNews) > 0 {
		s.HistoricalNews = MergeHeadlines(s.HistoricalNews, s.CurrentNews)
	}
	s.CurrentNews = news
}

// Reset clears every data field, keeping the id and preferences.
func (s *Session) Reset() {
	s.CurrentNews = nil
	s.HistoricalNews = nil
	s.StockSymbol = ""
	s.StockPeriod = ""
	s.StockData = nil
	s.SentimentResults = nil
	s.Forecast = nil
}
