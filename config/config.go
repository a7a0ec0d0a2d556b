package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Dialogue store backends.
const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Routing
	Router     RouterConfig
	Preprocess PreprocessConfig
	Dialogue   DialogueConfig

	// Storage
	SQLite SQLiteConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	RequestsPerMin int
	MaxClients     int
	ClientTTL      time.Duration
}

type RouterConfig struct {
	DefaultTimezone string
	MatchLimit      int
	ConfidenceScore float64
}

type PreprocessConfig struct {
	MaxInputRunes int
}

type DialogueConfig struct {
	Store     string
	MaxFrames int
	CacheSize int
	TTL       time.Duration
}

type SQLiteConfig struct {
	// Path of the database file; ":memory:" keeps everything in process.
	Path string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, . and /etc/cognitive-router/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/cognitive-router/")

	return load(v)
}

// LoadFile reads configuration from an explicit path.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = v.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")
	cfg.RateLimit.MaxClients = v.GetInt("rate_limit.max_clients")
	cfg.RateLimit.ClientTTL = v.GetDuration("rate_limit.client_ttl")

	// Routing
	cfg.Router.DefaultTimezone = v.GetString("router.default_timezone")
	cfg.Router.MatchLimit = v.GetInt("router.match_limit")
	cfg.Router.ConfidenceScore = v.GetFloat64("router.confidence_score")
	cfg.Preprocess.MaxInputRunes = v.GetInt("preprocess.max_input_runes")

	cfg.Dialogue.Store = strings.ToLower(v.GetString("dialogue.store"))
	cfg.Dialogue.MaxFrames = v.GetInt("dialogue.max_frames")
	cfg.Dialogue.CacheSize = v.GetInt("dialogue.cache_size")
	cfg.Dialogue.TTL = v.GetDuration("dialogue.ttl")

	// Storage
	cfg.SQLite.Path = v.GetString("sqlite.path")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.shutdown_timeout", "10s")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("rate_limit.requests_per_min", 120)
	v.SetDefault("rate_limit.max_clients", 10000)
	v.SetDefault("rate_limit.client_ttl", "10m")

	v.SetDefault("router.default_timezone", "UTC")
	v.SetDefault("router.match_limit", 5)
	v.SetDefault("router.confidence_score", 0.9)
	v.SetDefault("preprocess.max_input_runes", 4096)

	v.SetDefault("dialogue.store", StoreMemory)
	v.SetDefault("dialogue.max_frames", 16)
	// Stacks live until their owner clears them; size and ttl bounds are opt-in.
	v.SetDefault("dialogue.cache_size", 0)
	v.SetDefault("dialogue.ttl", "0s")

	v.SetDefault("sqlite.path", "data/cognitive-router.db")
}

// Validate rejects configurations the service cannot start with.
func (c *Config) Validate() error {
	if c.HTTPServer.Port <= 0 || c.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port %d is out of range", c.HTTPServer.Port)
	}
	if _, err := time.LoadLocation(c.Router.DefaultTimezone); err != nil {
		return fmt.Errorf("router.default_timezone: %w", err)
	}
	if c.Router.ConfidenceScore < 0 || c.Router.ConfidenceScore > 1 {
		return fmt.Errorf("router.confidence_score must be within [0, 1], got %v", c.Router.ConfidenceScore)
	}
	if c.Router.MatchLimit < 0 {
		return errors.New("router.match_limit must not be negative")
	}
	switch c.Dialogue.Store {
	case StoreMemory, StoreSQLite:
	default:
		return fmt.Errorf("dialogue.store must be %q or %q, got %q", StoreMemory, StoreSQLite, c.Dialogue.Store)
	}
	if c.Dialogue.MaxFrames < 0 {
		return errors.New("dialogue.max_frames must not be negative")
	}
	if c.Dialogue.CacheSize < 0 || c.Dialogue.TTL < 0 {
		return errors.New("dialogue.cache_size and dialogue.ttl must not be negative")
	}
	return nil
}
