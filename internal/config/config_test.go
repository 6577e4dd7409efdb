package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/pageinsights/internal/config"
	"github.com/jonesrussell/pageinsights/internal/logger"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8060", cfg.Server.Addr())
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, "pageinsights", cfg.Mongo.Database)
	assert.Equal(t, "https://www.linkedin.com", cfg.Scraper.BaseURL)
	assert.Equal(t, 20, cfg.Scraper.MaxPosts)
	assert.Equal(t, 50, cfg.Scraper.MaxEmployees)
	assert.Equal(t, 30*time.Second, cfg.Render.RequestTimeout)
	assert.NotEmpty(t, cfg.Render.UserAgent)
	assert.Equal(t, 30*time.Second, cfg.Navigator.OpenTimeout)
	assert.Equal(t, 5*time.Second, cfg.Navigator.SectionTimeout)
	assert.Equal(t, time.Second, cfg.Navigator.SettleDelay)
	assert.Equal(t, 3, cfg.Navigator.ScrollSteps)
	assert.Equal(t, logger.InfoLevel, cfg.Logging.Level)
	assert.Empty(t, cfg.CORS.AllowedOrigins)
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: 9090
mongo:
  uri: mongodb://db.internal:27017
  database: insights_test
scraper:
  base_url: https://staging.example.com
  max_posts: 5
navigator:
  settle_delay: 250ms
cors:
  allowed_origins:
    - https://app.example.com
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "mongodb://db.internal:27017", cfg.Mongo.URI)
	assert.Equal(t, "insights_test", cfg.Mongo.Database)
	assert.Equal(t, "https://staging.example.com", cfg.Scraper.BaseURL)
	assert.Equal(t, 5, cfg.Scraper.MaxPosts)
	assert.Equal(t, 250*time.Millisecond, cfg.Navigator.SettleDelay)
	assert.Equal(t, []string{"https://app.example.com"}, cfg.CORS.AllowedOrigins)

	// Untouched keys keep their defaults.
	assert.Equal(t, "0.0.0.0", cfg.Server.Address)
	assert.Equal(t, 50, cfg.Scraper.MaxEmployees)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PAGEINSIGHTS_SERVER_PORT", "7070")
	t.Setenv("PAGEINSIGHTS_MONGO_DATABASE", "insights_env")
	t.Setenv("PAGEINSIGHTS_LOGGING_LEVEL", "debug")
	t.Setenv("PAGEINSIGHTS_LOGGING_DEVELOPMENT", "true")
	t.Setenv("PAGEINSIGHTS_NAVIGATOR_SETTLE_DELAY", "2s")
	t.Setenv("PAGEINSIGHTS_SCRAPER_MAX_POSTS", "7")

	cfg, err := config.Load("")
	require.NoError(t, err)

	// Non-string fields must decode from the string values the
	// environment delivers.
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "insights_env", cfg.Mongo.Database)
	assert.Equal(t, logger.DebugLevel, cfg.Logging.Level)
	assert.True(t, cfg.Logging.Development)
	assert.Equal(t, 2*time.Second, cfg.Navigator.SettleDelay)
	assert.Equal(t, 7, cfg.Scraper.MaxPosts)
}

func TestLoadMissingMongoURI(t *testing.T) {
	path := writeConfigFile(t, `
mongo:
  uri: ""
`)

	_, err := config.Load(path)
	assert.ErrorIs(t, err, config.ErrMissingMongoURI)
}

func TestLoadUnreadableFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
