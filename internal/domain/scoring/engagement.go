package scoring

import "github.com/antekerwin/jeki/internal/domain"

// ScoreEngagementStrategy rewards conversation hooks. Weight: 0.5 by default,
// the dominant input of the composite.
func ScoreEngagementStrategy(f Features, rules domain.RuleTable) domain.CategoryScore {
	p := rules.Points
	cat := domain.CategoryScore{
		Name:   domain.CategoryEngagementStrategy,
		Weight: rules.Weights.EngagementStrategy,
		SubMetrics: []domain.SubMetric{
			gated("question", p.Question, f.HasQuestion, "yes", "no"),
			gated("data_driven", p.DataDriven, f.HasDigit, "yes", "no data/metrics"),
			gated("call_to_action", p.CallToAction, f.HasCallToAction, "yes", "no call-to-action"),
		},
	}
	return sumCategory(cat, rules.Thresholds.SubScoreCap)
}
