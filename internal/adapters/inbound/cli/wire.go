package cli

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/antekerwin/jeki/internal/adapters/outbound/config"
	"github.com/antekerwin/jeki/internal/adapters/outbound/inference"
	"github.com/antekerwin/jeki/internal/adapters/outbound/leaderboard"
	"github.com/antekerwin/jeki/internal/adapters/outbound/logging"
	"github.com/antekerwin/jeki/internal/adapters/outbound/metrics"
	"github.com/antekerwin/jeki/internal/application"
	"github.com/antekerwin/jeki/internal/domain"
	"github.com/antekerwin/jeki/internal/domain/generator"
	"github.com/antekerwin/jeki/internal/domain/scoring"
)

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	configPath string
	rulesPath  string
	logLevel   string
}

// app is the composed process: config, logger, metrics and services.
type app struct {
	cfg      domain.AppConfig
	rules    domain.RuleTable
	logger   *zap.Logger
	registry *prometheus.Registry
	metrics  *metrics.Metrics
	services *application.Services
}

// buildApp loads config and rules and wires every adapter. seed overrides
// generator.seed when non-zero.
func buildApp(opts *globalOptions, seed int64) (*app, error) {
	cfg, err := config.NewAppLoader().Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid configuration: %w", err)
		}
	}

	// A --rules path must exist; rules_file from config falls back to defaults.
	loader := config.NewRulesLoader()
	rulesPath := opts.rulesPath
	var rules domain.RuleTable
	if rulesPath != "" {
		rules, err = loader.LoadFile(rulesPath)
	} else {
		rulesPath = cfg.RulesFile
		rules, err = loader.Load(rulesPath)
	}
	if err != nil {
		return nil, fmt.Errorf("loading rules: %w", err)
	}

	scorer, err := scoring.NewScorer(rules)
	if err != nil {
		return nil, err
	}

	logger, err := logging.NewLogger(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	if seed == 0 {
		seed = cfg.Generator.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	templates := generator.NewSeeded(uint64(seed))

	var producer domain.TextProducer = templates
	if cfg.Generator.Mode == domain.GeneratorInference {
		client := inference.New(inference.Config{
			URL:     cfg.Generator.InferenceURL,
			APIKey:  cfg.Generator.APIKey,
			Timeout: cfg.Generator.Timeout,
		}, logger, m)
		producer = inference.NewProducer(client, templates, templates, logger)
	}

	fetcher := leaderboard.New(cfg.Leaderboard, logger, m)

	logger.Debug("app wired",
		zap.String("generator", cfg.Generator.Mode),
		zap.String("rules", rulesPath),
		zap.Int64("seed", seed),
	)

	return &app{
		cfg:      cfg,
		rules:    scorer.Rules(),
		logger:   logger,
		registry: reg,
		metrics:  m,
		services: application.NewServices(scorer, producer, fetcher, m),
	}, nil
}

// close flushes the logger; sync errors on stderr are expected and ignored.
func (a *app) close() {
	_ = a.logger.Sync()
}
