package scoring

import "github.com/antekerwin/jeki/internal/domain"

// ScoreContentQuality rewards concrete metrics, depth and clean text.
// Weight: 0.2 by default.
func ScoreContentQuality(f Features, rules domain.RuleTable) domain.CategoryScore {
	p := rules.Points

	spamFail := "spam pattern detected"
	if !f.HasContent {
		spamFail = "no content"
	}

	cat := domain.CategoryScore{
		Name:   domain.CategoryContentQuality,
		Weight: rules.Weights.ContentQuality,
		SubMetrics: []domain.SubMetric{
			gated("metrics", p.Metrics, f.HasMetricPattern, "includes metrics", "no specific metrics"),
			gated("analysis_depth", p.AnalysisDepth, f.HasAnalysisDepth, "detailed analysis", "surface-level"),
			gated("spam_check", p.SpamCheck, f.NoSpamPattern, "clean", spamFail),
		},
	}
	return sumCategory(cat, rules.Thresholds.SubScoreCap)
}
