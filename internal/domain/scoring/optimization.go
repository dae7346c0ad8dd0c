package scoring

import (
	"fmt"

	"github.com/antekerwin/jeki/internal/domain"
)

// ScoreContentOptimization rewards length, topical focus and originality.
// Weight: 0.3 by default.
func ScoreContentOptimization(f Features, rules domain.RuleTable) domain.CategoryScore {
	p := rules.Points
	l := rules.Length

	cat := domain.CategoryScore{
		Name:   domain.CategoryContentOptimization,
		Weight: rules.Weights.ContentOptimization,
		SubMetrics: []domain.SubMetric{
			gated("minimum_length", p.MinimumLength, f.IsMinimumLength,
				fmt.Sprintf("%d chars (min %d)", f.CharCount, l.Minimum),
				fmt.Sprintf("%d chars, below the %d char minimum", f.CharCount, l.Minimum)),
			gated("optimal_length", p.OptimalLength, f.IsOptimalLength,
				fmt.Sprintf("%d chars optimal", f.CharCount),
				fmt.Sprintf("%d chars, adjust to %d-%d", f.CharCount, l.OptimalMin, l.OptimalMax)),
			gated("crypto_focus", p.CryptoFocus, f.HasCryptoFocus, "yes", "no crypto topic"),
			gated("originality", p.Originality, f.IsOriginal, "original", "too generic"),
			keywordDetail(f.KeywordCount),
		},
	}
	return sumCategory(cat, rules.Thresholds.SubScoreCap)
}

// keywordDetail is informational only; one to three keywords reads naturally.
func keywordDetail(count int) domain.SubMetric {
	detail := fmt.Sprintf("%d keywords", count)
	if count >= 1 && count <= 3 {
		detail += " (ideal)"
	} else {
		detail += " (aim for 1-3)"
	}
	return domain.SubMetric{Name: "keywords", Detail: detail}
}
