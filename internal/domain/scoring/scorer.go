package scoring

import (
	"fmt"
	"strings"

	"github.com/antekerwin/jeki/internal/domain"
)

// Scorer turns post drafts into quality reports. It holds a private copy of
// its rule table and no other state, so one Scorer may be shared by any
// number of goroutines.
type Scorer struct {
	rules domain.RuleTable
}

// NewScorer validates rules and fixes a lowercased copy of them.
func NewScorer(rules domain.RuleTable) (*Scorer, error) {
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rule table: %w", err)
	}
	r := rules.Clone()
	lowerAll(r.Keywords)
	lowerAll(r.GenericPhrases)
	lowerAll(r.CallToActionWords)
	lowerAll(r.FarmingPhrases)
	r.MentionHandle = strings.ToLower(r.MentionHandle)
	return &Scorer{rules: r}, nil
}

// MustNewScorer is NewScorer for tables known to be valid, such as DefaultRules.
func MustNewScorer(rules domain.RuleTable) *Scorer {
	s, err := NewScorer(rules)
	if err != nil {
		panic(err)
	}
	return s
}

// Rules returns a copy of the table the scorer runs on.
func (s *Scorer) Rules() domain.RuleTable {
	return s.rules.Clone()
}

// Score runs the pipeline: features, sub-scores, composite and platform
// scores, then tags, penalties and suggestions. It is total over all strings.
func (s *Scorer) Score(text string) domain.QualityReport {
	f := Extract(text, s.rules)

	opt := ScoreContentOptimization(f, s.rules)
	eng := ScoreEngagementStrategy(f, s.rules)
	qual := ScoreContentQuality(f, s.rules)

	composite := Composite(opt.Score, eng.Score, qual.Score, s.rules)
	rating := RatingFor(composite, s.rules)

	tags := ContentTypeTags(strings.ToLower(text), f)
	penalties := Penalties(text, f, s.rules)
	suggestions := Suggestions(f, tags, s.rules)

	return domain.QualityReport{
		ContentOptimization:      opt,
		EngagementStrategy:       eng,
		ContentQuality:           qual,
		CompositeScore:           composite,
		Rating:                   rating,
		RatingSummary:            domain.RatingSummaryFor(rating),
		EstimatedEngagementUnits: EstimatedEngagementUnits(composite, s.rules),
		Platform:                 ScorePlatform(f, s.rules),
		ContentTypeTags:          orDefault(tags, DefaultContentType),
		Penalties:                orDefault(penalties, DefaultPenalty),
		Suggestions:              orDefault(suggestions, DefaultSuggestion),
		Features:                 f.Summary(),
	}
}

func lowerAll(list []string) {
	for i, s := range list {
		list[i] = strings.ToLower(s)
	}
}
