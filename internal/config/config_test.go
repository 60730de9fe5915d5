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

func defaultConfig(t *testing.T) *Config {
	t.Helper()
	v := viper.New()
	setDefaults(v)
	var cfg Config
	require.NoError(t, v.Unmarshal(&cfg))
	cfg.applyFallbacks()
	return &cfg
}

func TestDefaultsAreValid(t *testing.T) {
	cfg := defaultConfig(t)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "gemini", cfg.AI.Provider)
	assert.Equal(t, 300, cfg.Analysis.MinWords)
	assert.Equal(t, 1200, cfg.Analysis.MaxWords)
	assert.InDelta(t, 0.02, cfg.Analysis.IndustryThreshold, 1e-9)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "json", cfg.App.DefaultFormat)
}

func TestValidateRejectsBadWordBounds(t *testing.T) {
	cfg := defaultConfig(t)
	cfg.Analysis.MaxWords = cfg.Analysis.MinWords
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsWatcherWithoutFile(t *testing.T) {
	cfg := defaultConfig(t)
	cfg.Analysis.WatchTunables = true
	cfg.Analysis.TunablesFile = ""
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsUnknownDefaultFormat(t *testing.T) {
	cfg := defaultConfig(t)
	cfg.App.DefaultFormat = "xml"
	assert.Error(t, cfg.Validate())
}

func TestOperationConfigInheritsGlobals(t *testing.T) {
	cfg := defaultConfig(t)
	cfg.AI.APIKey = "global-key"
	cfg.AI.Model = "gemini-2.0-flash"

	suggest := cfg.GetSuggestConfig()
	assert.Equal(t, "global-key", suggest.APIKey)
	assert.Equal(t, "gemini-2.0-flash", suggest.Model)
	require.NotNil(t, suggest.Temperature)
	assert.InDelta(t, 0.3, float64(*suggest.Temperature), 1e-6)
	require.NotNil(t, suggest.Timeout)
	assert.Equal(t, 90*time.Second, *suggest.Timeout)

	realtime := cfg.GetRealtimeConfig()
	require.NotNil(t, realtime.Timeout)
	assert.Equal(t, 30*time.Second, *realtime.Timeout)
}

func TestOperationConfigOverrides(t *testing.T) {
	cfg := defaultConfig(t)
	cfg.AI.APIKey = "global-key"
	cfg.AI.Suggest.APIKey = "suggest-key"
	cfg.AI.Suggest.Model = "gemini-2.5-pro"

	suggest := cfg.GetSuggestConfig()
	assert.Equal(t, "suggest-key", suggest.APIKey)
	assert.Equal(t, "gemini-2.5-pro", suggest.Model)
}

func TestServerAPIKeysFromEnvironment(t *testing.T) {
	t.Setenv("RESUMETRIC_SERVER_APIKEYS", "alpha, beta ,gamma")

	cfg := defaultConfig(t)
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, cfg.Server.APIKeys)
}

func TestLegacyGeminiKeyFallback(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "legacy-key")

	cfg := defaultConfig(t)
	assert.Equal(t, "legacy-key", cfg.AI.APIKey)
}

func TestReadTunablesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tunables.yaml")
	require.NoError(t, os.WriteFile(path, []byte("minWords: 250\nmaxWords: 900\ntopSuggestions: 7\n"), 0o600))

	got, err := ReadTunablesFile(path)
	require.NoError(t, err)
	assert.Equal(t, 250, got.MinWords)
	assert.Equal(t, 900, got.MaxWords)
	assert.Equal(t, 7, got.TopSuggestions)
	assert.Zero(t, got.IndustryThreshold, "unset fields stay zero")
}

func TestReadTunablesFileInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tunables.yaml")
	require.NoError(t, os.WriteFile(path, []byte("minWords: [not a number"), 0o600))

	_, err := ReadTunablesFile(path)
	assert.Error(t, err)
}
