package scoring

import (
	"fmt"

	"github.com/antekerwin/jeki/internal/domain"
)

const standardEngagement = "Standard engagement"

var algorithmNotes = []string{
	"Reply (75x) > Conversation (30x) > Retweet (10x) > Like (1x)",
	"The first 30 minutes matter most for velocity",
	"A question invites replies, the 75x engagement weight",
}

// ScorePlatform computes the distribution-algorithm score in [0, 100]. It
// shares features with the composite but is never derived from it.
func ScorePlatform(f Features, rules domain.RuleTable) domain.PlatformScore {
	p := rules.Platform
	l := rules.Length

	score := 0
	factors := []string{}
	penalties := []string{}

	if f.HasQuestion {
		score += p.Question
		factors = append(factors, fmt.Sprintf("Has question (+%d pts, drives replies)", p.Question))
	}
	if f.HasCallToAction {
		score += p.CallToAction
		factors = append(factors, fmt.Sprintf("Call-to-action (+%d pts)", p.CallToAction))
	}
	if f.HasDigit {
		score += p.Digit
		factors = append(factors, fmt.Sprintf("Data/metrics (+%d pts)", p.Digit))
	}
	if f.IsOptimalLength {
		score += p.OptimalLength
		factors = append(factors, fmt.Sprintf("Optimal length %d-%d chars (+%d pts)", l.OptimalMin, l.OptimalMax, p.OptimalLength))
	}
	if f.NoSpamPattern {
		score += p.NoSpam
		factors = append(factors, fmt.Sprintf("No spam patterns (+%d pts)", p.NoSpam))
	}

	if f.HasEngagementFarming {
		score -= p.FarmingPenalty
		penalties = append(penalties, fmt.Sprintf("Engagement farming detected (-%d pts)", p.FarmingPenalty))
	}
	if f.KeywordStuffing {
		score -= p.StuffingPenalty
		penalties = append(penalties, fmt.Sprintf("Keyword stuffing (-%d pts)", p.StuffingPenalty))
	}

	score = clamp(score, 0, 100)
	if len(factors) == 0 {
		factors = []string{standardEngagement}
	}

	rating := PlatformRatingFor(score, rules)
	return domain.PlatformScore{
		Score:             score,
		Rating:            rating,
		RatingSummary:     domain.PlatformSummaryFor(rating),
		EngagementFactors: factors,
		Penalties:         penalties,
		Notes:             append([]string(nil), algorithmNotes...),
	}
}

// PlatformRatingFor thresholds a platform score. Bounds are inclusive.
func PlatformRatingFor(score int, rules domain.RuleTable) string {
	p := rules.Platform
	switch {
	case score >= p.Viral:
		return domain.PlatformViral
	case score >= p.Good:
		return domain.PlatformGood
	case score >= p.Average:
		return domain.PlatformAverage
	default:
		return domain.PlatformLow
	}
}
