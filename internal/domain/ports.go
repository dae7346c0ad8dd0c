package domain

import "context"

// TextProducer yields a candidate post for a generation request.
type TextProducer interface {
	Produce(ctx context.Context, req GenerateRequest) (Draft, error)
}

// LeaderboardSource lists leaderboard projects. Implementations degrade to a
// static list instead of failing.
type LeaderboardSource interface {
	Projects(ctx context.Context) []Project
}

// RulesLoader reads a rule table, falling back to DefaultRules when no file exists.
type RulesLoader interface {
	Load(path string) (RuleTable, error)
}

// ConfigLoader reads the application configuration.
type ConfigLoader interface {
	Load(path string) (AppConfig, error)
}

// ReportRecorder observes scoring outcomes, typically for metrics.
type ReportRecorder interface {
	RecordAnalysis(origin string, report QualityReport)
	RecordGeneration(source string)
}

// NopRecorder discards everything recorded.
type NopRecorder struct{}

func (NopRecorder) RecordAnalysis(string, QualityReport) {}
func (NopRecorder) RecordGeneration(string)             {}
