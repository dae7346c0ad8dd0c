package config

import (
	"fmt"
	"strings"

	"github.com/antekerwin/jeki/internal/domain"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. JEKI_SERVER_ADDR.
const EnvPrefix = "JEKI"

// AppLoader implements domain.ConfigLoader with viper: defaults, then an
// optional config file, then JEKI_* environment variables.
type AppLoader struct{}

// NewAppLoader creates an AppLoader.
func NewAppLoader() *AppLoader { return &AppLoader{} }

// Load builds the app config. An empty path skips the file layer; a path that
// cannot be read is an error.
func (l *AppLoader) Load(path string) (domain.AppConfig, error) {
	v := viper.New()
	setDefaults(v, domain.DefaultAppConfig())

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return domain.AppConfig{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg domain.AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return domain.AppConfig{}, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return domain.AppConfig{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// setDefaults registers every key so AutomaticEnv can resolve it on Unmarshal.
func setDefaults(v *viper.Viper, d domain.AppConfig) {
	v.SetDefault("server.addr", d.Server.Addr)
	v.SetDefault("server.read_timeout", d.Server.ReadTimeout)
	v.SetDefault("server.write_timeout", d.Server.WriteTimeout)
	v.SetDefault("server.idle_timeout", d.Server.IdleTimeout)
	v.SetDefault("server.rate_limit", d.Server.RateLimit)
	v.SetDefault("server.rate_burst", d.Server.RateBurst)

	v.SetDefault("log.level", d.Log.Level)

	v.SetDefault("leaderboard.url", d.Leaderboard.URL)
	v.SetDefault("leaderboard.timeout", d.Leaderboard.Timeout)
	v.SetDefault("leaderboard.cache_ttl", d.Leaderboard.CacheTTL)
	v.SetDefault("leaderboard.max_projects", d.Leaderboard.MaxProjects)

	v.SetDefault("generator.mode", d.Generator.Mode)
	v.SetDefault("generator.seed", d.Generator.Seed)
	v.SetDefault("generator.inference_url", d.Generator.InferenceURL)
	v.SetDefault("generator.api_key", d.Generator.APIKey)
	v.SetDefault("generator.timeout", d.Generator.Timeout)

	v.SetDefault("rules_file", d.RulesFile)
}
