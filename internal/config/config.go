// Package config provides configuration management for the service.
// Settings come from an optional config.yaml, overridden by environment
// variables with the PAGEINSIGHTS_ prefix.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/jonesrussell/pageinsights/internal/logger"
	"github.com/jonesrussell/pageinsights/internal/render"
	"github.com/jonesrussell/pageinsights/internal/scraper"
	"github.com/jonesrussell/pageinsights/internal/storage"
)

// Default configuration values.
const (
	defaultServerAddress  = "0.0.0.0"
	defaultServerPort     = 8060
	defaultReadTimeout    = "30s"
	defaultWriteTimeout   = "30s"
	defaultIdleTimeout    = "60s"
	defaultMongoURI       = "mongodb://localhost:27017"
	defaultMongoDatabase  = "pageinsights"
	defaultConnectTimeout = "10s"
	defaultBaseURL        = "https://www.linkedin.com"
	defaultUserAgent      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	defaultRequestTimeout = "30s"
	defaultOpenTimeout    = "30s"
	defaultSectionTimeout = "5s"
	defaultSettleDelay    = "1s"
	defaultScrollSteps    = 3
	defaultScrollPixels   = 1000
	defaultMaxPosts       = 20
	defaultMaxEmployees   = 50
	defaultLogLevel       = "info"
	defaultLogEncoding    = "console"
	envPrefix             = "PAGEINSIGHTS"
)

// ErrMissingMongoURI is returned when no store URI is configured.
var ErrMissingMongoURI = errors.New("mongo.uri is required")

// Config is the complete service configuration.
type Config struct {
	Server    ServerConfig           `mapstructure:"server" yaml:"server"`
	Mongo     storage.MongoConfig    `mapstructure:"mongo" yaml:"mongo"`
	Scraper   scraper.Config         `mapstructure:"scraper" yaml:"scraper"`
	Render    render.HTTPConfig      `mapstructure:"render" yaml:"render"`
	Navigator render.NavigatorConfig `mapstructure:"navigator" yaml:"navigator"`
	Logging   logger.Config          `mapstructure:"logging" yaml:"logging"`
	CORS      CORSConfig             `mapstructure:"cors" yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Address      string        `mapstructure:"address" yaml:"address"`
	Port         int           `mapstructure:"port" yaml:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout" yaml:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout" yaml:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout" yaml:"idle_timeout"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Address, s.Port)
}

// CORSConfig holds the allowed origins for browser clients.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins" yaml:"allowed_origins"`
}

// Load reads configuration from the given file (or the default search
// paths when empty), applying defaults and environment overrides.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/pageinsights")
	}

	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		// No config file is fine; defaults and env cover everything.
	}

	cfg := &Config{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
		// Environment overrides arrive as strings; numeric and boolean
		// fields need the weak conversion to accept them.
		WeaklyTypedInput: true,
		Result:           cfg,
	})
	if err != nil {
		return nil, fmt.Errorf("create config decoder: %w", err)
	}
	if decodeErr := decoder.Decode(v.AllSettings()); decodeErr != nil {
		return nil, fmt.Errorf("decode config: %w", decodeErr)
	}

	if validateErr := cfg.Validate(); validateErr != nil {
		return nil, validateErr
	}
	return cfg, nil
}

// Validate checks the loaded configuration for required values.
func (c *Config) Validate() error {
	if c.Mongo.URI == "" {
		return ErrMissingMongoURI
	}
	return nil
}

// setDefaults installs the default value for every known key.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", defaultServerAddress)
	v.SetDefault("server.port", defaultServerPort)
	v.SetDefault("server.read_timeout", defaultReadTimeout)
	v.SetDefault("server.write_timeout", defaultWriteTimeout)
	v.SetDefault("server.idle_timeout", defaultIdleTimeout)

	v.SetDefault("mongo.uri", defaultMongoURI)
	v.SetDefault("mongo.database", defaultMongoDatabase)
	v.SetDefault("mongo.connect_timeout", defaultConnectTimeout)

	v.SetDefault("scraper.base_url", defaultBaseURL)
	v.SetDefault("scraper.max_posts", defaultMaxPosts)
	v.SetDefault("scraper.max_employees", defaultMaxEmployees)

	v.SetDefault("render.user_agent", defaultUserAgent)
	v.SetDefault("render.request_timeout", defaultRequestTimeout)

	v.SetDefault("navigator.open_timeout", defaultOpenTimeout)
	v.SetDefault("navigator.section_timeout", defaultSectionTimeout)
	v.SetDefault("navigator.settle_delay", defaultSettleDelay)
	v.SetDefault("navigator.scroll_steps", defaultScrollSteps)
	v.SetDefault("navigator.scroll_pixels", defaultScrollPixels)

	v.SetDefault("logging.level", defaultLogLevel)
	v.SetDefault("logging.encoding", defaultLogEncoding)
	v.SetDefault("logging.development", false)

	v.SetDefault("cors.allowed_origins", []string{})
}
