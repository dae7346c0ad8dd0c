package scoring

import (
	"math"

	"github.com/antekerwin/jeki/internal/domain"
)

// Composite combines the three sub-scores with the rule table's weights and
// rounds to one decimal place.
func Composite(opt, eng, qual int, rules domain.RuleTable) float64 {
	w := rules.Weights
	raw := float64(opt)*w.ContentOptimization + float64(eng)*w.EngagementStrategy + float64(qual)*w.ContentQuality
	rounded := math.Round(raw*10) / 10
	return math.Max(0, math.Min(rounded, float64(rules.Thresholds.SubScoreCap)))
}

// RatingFor thresholds a composite score. Bounds are inclusive.
func RatingFor(composite float64, rules domain.RuleTable) string {
	r := rules.Ratings
	switch {
	case composite >= r.Excellent:
		return domain.RatingExcellent
	case composite >= r.Good:
		return domain.RatingGood
	case composite >= r.Fair:
		return domain.RatingFair
	default:
		return domain.RatingPoor
	}
}

// EstimatedEngagementUnits is a linear projection of the composite, not a
// prediction. The multiplication order matters for bit-exact results.
func EstimatedEngagementUnits(composite float64, rules domain.RuleTable) int {
	return int(math.Floor(composite * rules.Projection.Factor * rules.Projection.Multiplier))
}
