package dto

// SettingsRequest updates the session preferences.
type SettingsRequest struct {
	PreferredLanguage string `json:"preferred_language" example:"English"`
	PreferredStock    string `json:"preferred_stock" example:"1810.HK"`
}

// SettingsResponse returns the session preferences.
type SettingsResponse struct {
	PreferredLanguage string `json:"preferred_language"`
	PreferredStock    string `json:"preferred_stock"`
	APIValid          bool   `json:"api_valid"`
}

// VerifyKeyResponse reports whether the remote API key works.
type VerifyKeyResponse struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

// ClearCacheResponse confirms a cache clear.
type ClearCacheResponse struct {
	Message string `json:"message"`
}
