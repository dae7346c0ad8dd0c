package domain

// Rating tiers for the composite score.
const (
	RatingExcellent = "excellent"
	RatingGood      = "good"
	RatingFair      = "fair"
	RatingPoor      = "poor"
)

// Rating tiers for the platform score.
const (
	PlatformViral   = "viral-potential"
	PlatformGood    = "good-reach"
	PlatformAverage = "average-reach"
	PlatformLow     = "low-reach"
)

// Category names, in report order.
const (
	CategoryContentOptimization = "content_optimization"
	CategoryEngagementStrategy  = "engagement_strategy"
	CategoryContentQuality      = "content_quality"
)

// QualityReport is the full result of scoring one post draft.
type QualityReport struct {
	ContentOptimization      CategoryScore  `json:"content_optimization"`
	EngagementStrategy       CategoryScore  `json:"engagement_strategy"`
	ContentQuality           CategoryScore  `json:"content_quality"`
	CompositeScore           float64        `json:"composite_score"`
	Rating                   string         `json:"rating"`
	RatingSummary            string         `json:"rating_summary"`
	EstimatedEngagementUnits int            `json:"estimated_engagement_units"`
	Platform                 PlatformScore  `json:"platform"`
	ContentTypeTags          []string       `json:"content_type_tags"`
	Penalties                []string       `json:"penalties"`
	Suggestions              []string       `json:"suggestions"`
	Features                 FeatureSummary `json:"features"`
}

// Categories returns the three sub-scores in report order.
func (r QualityReport) Categories() []CategoryScore {
	return []CategoryScore{r.ContentOptimization, r.EngagementStrategy, r.ContentQuality}
}

// CategoryScore is one of the three bounded 0-10 sub-scores.
type CategoryScore struct {
	Name       string      `json:"name"`
	Score      int         `json:"score"`
	Weight     float64     `json:"weight"`
	SubMetrics []SubMetric `json:"sub_metrics"`
}

// SubMetric is a single scoring condition. Points is what the condition is worth,
// Score what the text earned. Detail-only entries carry zero points.
type SubMetric struct {
	Name   string `json:"name"`
	Score  int    `json:"score"`
	Points int    `json:"points"`
	Detail string `json:"detail,omitempty"`
}

// PlatformScore models the distribution-algorithm heuristic. It is computed
// independently of the composite score and never merged with it.
type PlatformScore struct {
	Score             int      `json:"score"`
	Rating            string   `json:"rating"`
	RatingSummary     string   `json:"rating_summary"`
	EngagementFactors []string `json:"engagement_factors"`
	Penalties         []string `json:"penalties"`
	Notes             []string `json:"notes"`
}

// FeatureSummary exposes the lexical features a report was computed from.
type FeatureSummary struct {
	CharCount           int  `json:"char_count"`
	WordCount           int  `json:"word_count"`
	KeywordCount        int  `json:"keyword_count"`
	GenericPhraseCount  int  `json:"generic_phrase_count"`
	HasQuestion         bool `json:"has_question"`
	HasDigit            bool `json:"has_digit"`
	HasCallToAction     bool `json:"has_call_to_action"`
	HasMetricPattern    bool `json:"has_metric_pattern"`
	HasRepeatedCharSpam bool `json:"has_repeated_char_spam"`
	IsOptimalLength     bool `json:"is_optimal_length"`
	IsMinimumLength     bool `json:"is_minimum_length"`
}

// RatingSummaryFor returns the human label shown next to a composite rating.
func RatingSummaryFor(rating string) string {
	switch rating {
	case RatingExcellent:
		return "Excellent - high engagement potential"
	case RatingGood:
		return "Good - solid content"
	case RatingFair:
		return "Fair - needs improvement"
	default:
		return "Poor - optimize further"
	}
}

// PlatformSummaryFor returns the human label shown next to a platform rating.
func PlatformSummaryFor(rating string) string {
	switch rating {
	case PlatformViral:
		return "Viral potential - very high engagement"
	case PlatformGood:
		return "Good reach - above average"
	case PlatformAverage:
		return "Average reach - standard"
	default:
		return "Low reach - needs optimization"
	}
}
