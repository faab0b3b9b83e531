package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.API.Port)
	assert.Equal(t, "memory", cfg.Session.Store)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.Equal(t, "openai", cfg.AI.Provider)
	assert.Equal(t, "gpt-3.5-turbo", cfg.OpenAI.Model)
	assert.Equal(t, 10, cfg.OpenAI.MaxTokens)
	assert.InDelta(t, 0.3, cfg.OpenAI.Temperature, 1e-6)
	assert.Equal(t, 200*time.Millisecond, cfg.Sentiment.BatchPause)
	assert.Equal(t, []string{"en", "zh"}, cfg.Sentiment.LocalLanguages)
	assert.Equal(t, "English", cfg.Defaults.Language)
	assert.Equal(t, "1810.HK", cfg.Defaults.Stock)
}

func TestLoad_FileOverrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	path := writeConfig(t, `
api:
  port: 9090
session:
  store: redis
  ttl: 2h
ai:
  provider: gemini
sentiment:
  local_languages: ["en"]
  batch_pause: 50ms
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.API.Port)
	assert.Equal(t, "redis", cfg.Session.Store)
	assert.Equal(t, 2*time.Hour, cfg.Session.TTL)
	assert.Equal(t, "gemini", cfg.AI.Provider)
	assert.Equal(t, []string{"en"}, cfg.Sentiment.LocalLanguages)
	assert.Equal(t, 50*time.Millisecond, cfg.Sentiment.BatchPause)
}

func TestLoad_EnvOverrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "sk-test", cfg.OpenAI.APIKey)
}

func TestLoad_InvalidProvider(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	path := writeConfig(t, "ai:\n  provider: claude\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_InvalidSessionStore(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	path := writeConfig(t, "session:\n  store: postgres\n")
	_, err := Load(path)
	assert.Error(t, err)
}
