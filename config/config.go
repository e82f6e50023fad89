package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Parsing engine
	Parser ParserConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// ParserConfig tunes the parsing pipeline and its HTTP boundary.
type ParserConfig struct {
	DefaultTimezone string  // IANA zone anchoring "now" when the request names none
	DefaultLocale   string  // detection fallback pack
	AmbiguityGap    float64 // intent scorer: surface top two within this gap
	MinConfidence   float64 // intent scorer: drop predictions below this
	MaxPredictions  int     // intent scorer: ranked list cap
	CacheSize       int     // delivery-layer response cache entries; 0 disables
	RateLimitPerMin int     // per-client requests per minute; 0 disables
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Parser
	cfg.Parser.DefaultTimezone = viper.GetString("parser.default_timezone")
	cfg.Parser.DefaultLocale = viper.GetString("parser.default_locale")
	cfg.Parser.AmbiguityGap = viper.GetFloat64("parser.ambiguity_gap")
	cfg.Parser.MinConfidence = viper.GetFloat64("parser.min_confidence")
	cfg.Parser.MaxPredictions = viper.GetInt("parser.max_predictions")
	cfg.Parser.CacheSize = viper.GetInt("parser.cache_size")
	cfg.Parser.RateLimitPerMin = viper.GetInt("parser.rate_limit_per_min")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if _, err := time.LoadLocation(c.Parser.DefaultTimezone); err != nil {
		return fmt.Errorf("invalid parser.default_timezone %q: %w", c.Parser.DefaultTimezone, err)
	}
	if c.Parser.MaxPredictions < 1 {
		return fmt.Errorf("parser.max_predictions must be at least 1")
	}
	if c.Parser.MinConfidence < 0 || c.Parser.MinConfidence > 1 {
		return fmt.Errorf("parser.min_confidence must be in [0, 1]")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// Parser defaults
	viper.SetDefault("parser.default_timezone", "UTC")
	viper.SetDefault("parser.default_locale", "en")
	viper.SetDefault("parser.ambiguity_gap", 0.3)
	viper.SetDefault("parser.min_confidence", 0.2)
	viper.SetDefault("parser.max_predictions", 3)
	viper.SetDefault("parser.cache_size", 1024)
	viper.SetDefault("parser.rate_limit_per_min", 120)
}
