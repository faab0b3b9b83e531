package common

const (
	RedisSessionKeyPrefix = "dashboard.session."

	HeaderSessionID = "X-Session-ID"

	NewsSourceCurrent    = "current"
	NewsSourceHistorical = "historical"

	AIProviderOpenAI = "openai"
	AIProviderGemini = "gemini"
	AIProviderNone   = "none"

	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)
