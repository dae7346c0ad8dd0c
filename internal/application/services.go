package application

import (
	"github.com/antekerwin/jeki/internal/domain"
	"github.com/antekerwin/jeki/internal/domain/scoring"
)

// Services bundles the use cases the inbound surfaces expose. The CLI, the
// HTTP API and the MCP server share one instance, and with it one scorer.
type Services struct {
	Analyze  *AnalyzeService
	Generate *GenerateService
	Home     *HomeService
}

// NewServices wires all use cases around a single scorer.
func NewServices(
	scorer *scoring.Scorer,
	producer domain.TextProducer,
	leaderboard domain.LeaderboardSource,
	recorder domain.ReportRecorder,
) *Services {
	return &Services{
		Analyze:  NewAnalyzeService(scorer, recorder),
		Generate: NewGenerateService(producer, scorer, recorder),
		Home:     NewHomeService(leaderboard),
	}
}
