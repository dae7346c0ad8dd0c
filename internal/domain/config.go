package domain

import (
	"fmt"
	"time"
)

// Generator modes.
const (
	GeneratorTemplate  = "template"
	GeneratorInference = "inference"
)

// ValidGeneratorModes enumerates all recognized generator modes.
var ValidGeneratorModes = []string{GeneratorTemplate, GeneratorInference}

// ValidLogLevels enumerates all recognized log levels.
var ValidLogLevels = []string{"debug", "info", "warn", "warning", "error"}

// AppConfig holds process-level configuration. It is loaded from defaults,
// an optional config file and JEKI_* environment variables.
type AppConfig struct {
	Server      ServerConfig      `mapstructure:"server"      yaml:"server"      json:"server"`
	Log         LogConfig         `mapstructure:"log"         yaml:"log"         json:"log"`
	Leaderboard LeaderboardConfig `mapstructure:"leaderboard" yaml:"leaderboard" json:"leaderboard"`
	Generator   GeneratorConfig   `mapstructure:"generator"   yaml:"generator"   json:"generator"`
	RulesFile   string            `mapstructure:"rules_file"  yaml:"rules_file"  json:"rules_file,omitempty"`
}

type ServerConfig struct {
	Addr         string        `mapstructure:"addr"          yaml:"addr"          json:"addr"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"  yaml:"read_timeout"  json:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout" yaml:"write_timeout" json:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"  yaml:"idle_timeout"  json:"idle_timeout"`
	RateLimit    float64       `mapstructure:"rate_limit"    yaml:"rate_limit"    json:"rate_limit"` // requests per second per client
	RateBurst    int           `mapstructure:"rate_burst"    yaml:"rate_burst"    json:"rate_burst"`
}

type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level" json:"level"`
}

type LeaderboardConfig struct {
	URL         string        `mapstructure:"url"          yaml:"url"          json:"url"`
	Timeout     time.Duration `mapstructure:"timeout"      yaml:"timeout"      json:"timeout"`
	CacheTTL    time.Duration `mapstructure:"cache_ttl"    yaml:"cache_ttl"    json:"cache_ttl"`
	MaxProjects int           `mapstructure:"max_projects" yaml:"max_projects" json:"max_projects"`
}

type GeneratorConfig struct {
	Mode         string        `mapstructure:"mode"          yaml:"mode"          json:"mode"`
	Seed         int64         `mapstructure:"seed"          yaml:"seed"          json:"seed"` // 0 seeds from the clock
	InferenceURL string        `mapstructure:"inference_url" yaml:"inference_url" json:"inference_url"`
	APIKey       string        `mapstructure:"api_key"       yaml:"api_key"       json:"-"`
	Timeout      time.Duration `mapstructure:"timeout"       yaml:"timeout"       json:"timeout"`
}

// DefaultAppConfig returns the configuration used when nothing is overridden.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		Server: ServerConfig{
			Addr:         "127.0.0.1:5000",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
			RateLimit:    5,
			RateBurst:    10,
		},
		Log: LogConfig{Level: "info"},
		Leaderboard: LeaderboardConfig{
			URL:         "https://yaps.kaito.ai/pre-tge",
			Timeout:     10 * time.Second,
			CacheTTL:    5 * time.Minute,
			MaxProjects: 20,
		},
		Generator: GeneratorConfig{
			Mode:         GeneratorTemplate,
			InferenceURL: "https://api-inference.huggingface.co/models/meta-llama/Meta-Llama-3-8B-Instruct",
			Timeout:      30 * time.Second,
		},
	}
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c AppConfig) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr must not be empty")
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 || c.Server.IdleTimeout <= 0 {
		return fmt.Errorf("server timeouts must be > 0")
	}
	if c.Server.RateLimit <= 0 {
		return fmt.Errorf("server.rate_limit must be > 0 (got %g)", c.Server.RateLimit)
	}
	if c.Server.RateBurst <= 0 {
		return fmt.Errorf("server.rate_burst must be > 0 (got %d)", c.Server.RateBurst)
	}

	if !contains(ValidLogLevels, c.Log.Level) {
		return fmt.Errorf("unknown log.level %q (valid: debug, info, warn, error)", c.Log.Level)
	}

	if c.Leaderboard.URL == "" {
		return fmt.Errorf("leaderboard.url must not be empty")
	}
	if c.Leaderboard.Timeout <= 0 {
		return fmt.Errorf("leaderboard.timeout must be > 0")
	}
	if c.Leaderboard.CacheTTL < 0 {
		return fmt.Errorf("leaderboard.cache_ttl must not be negative")
	}
	if c.Leaderboard.MaxProjects <= 0 {
		return fmt.Errorf("leaderboard.max_projects must be > 0 (got %d)", c.Leaderboard.MaxProjects)
	}

	if !contains(ValidGeneratorModes, c.Generator.Mode) {
		return fmt.Errorf("unknown generator.mode %q (valid: template, inference)", c.Generator.Mode)
	}
	if c.Generator.Mode == GeneratorInference && c.Generator.InferenceURL == "" {
		return fmt.Errorf("generator.inference_url is required in inference mode")
	}
	if c.Generator.Timeout <= 0 {
		return fmt.Errorf("generator.timeout must be > 0")
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
