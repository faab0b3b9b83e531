package dto

// LanguageOption is a supported news language.
type LanguageOption struct {
	Name         string `json:"name"`
	LanguageCode string `json:"language_code"`
	RegionCode   string `json:"region_code"`
}

// StockOption is a supported stock listing.
type StockOption struct {
	Market string `json:"market"`
	Symbol string `json:"symbol"`
}

// RangeOption describes a slider.
type RangeOption struct {
	Min     int `json:"min"`
	Max     int `json:"max"`
	Step    int `json:"step"`
	Default int `json:"default"`
}

// OptionsResponse lists the allowed values for every dashboard control.
type OptionsResponse struct {
	Languages        []LanguageOption `json:"languages"`
	Stocks           []StockOption    `json:"stocks"`
	Periods          []string         `json:"periods"`
	DefaultPeriod    string           `json:"default_period"`
	ArticleCount     RangeOption      `json:"article_count"`
	BatchCount       RangeOption      `json:"batch_count"`
	ForecastHorizons []int            `json:"forecast_horizons"`
	NewsSources      []string         `json:"news_sources"`
}
