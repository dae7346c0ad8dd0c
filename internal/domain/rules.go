package domain

import (
	"fmt"
	"math"
)

// RuleTable is the fixed set of keyword lists, point values, weights and
// thresholds the scorer runs on. A scorer copies its table at construction,
// so a table is never changed underneath a running scorer.
type RuleTable struct {
	Keywords          []string `yaml:"keywords"            json:"keywords"`
	GenericPhrases    []string `yaml:"generic_phrases"     json:"generic_phrases"`
	CallToActionWords []string `yaml:"call_to_action"      json:"call_to_action"`
	FarmingPhrases    []string `yaml:"farming_phrases"     json:"farming_phrases"`
	MentionHandle     string   `yaml:"mention_handle"      json:"mention_handle"`

	Length     LengthRules     `yaml:"length"     json:"length"`
	Thresholds ThresholdRules  `yaml:"thresholds" json:"thresholds"`
	Points     CategoryPoints  `yaml:"points"     json:"points"`
	Weights    CategoryWeights `yaml:"weights"    json:"weights"`
	Ratings    RatingRules     `yaml:"ratings"    json:"ratings"`
	Platform   PlatformRules   `yaml:"platform"   json:"platform"`
	Projection ProjectionRules `yaml:"projection" json:"projection"`
}

// LengthRules bounds character counts (in code points).
type LengthRules struct {
	Minimum    int `yaml:"minimum"     json:"minimum"`
	OptimalMin int `yaml:"optimal_min" json:"optimal_min"`
	OptimalMax int `yaml:"optimal_max" json:"optimal_max"`
}

// ThresholdRules holds the count thresholds that gate individual conditions.
type ThresholdRules struct {
	AnalysisWords   int `yaml:"analysis_words"   json:"analysis_words"`   // word count must exceed this
	KeywordStuffing int `yaml:"keyword_stuffing" json:"keyword_stuffing"` // keyword count must exceed this
	GenericLimit    int `yaml:"generic_limit"    json:"generic_limit"`    // original while below this
	GenericOveruse  int `yaml:"generic_overuse"  json:"generic_overuse"`  // penalized at or above this
	SubScoreCap     int `yaml:"sub_score_cap"    json:"sub_score_cap"`
}

// CategoryPoints lists the points each satisfied condition earns.
type CategoryPoints struct {
	MinimumLength int `yaml:"minimum_length"  json:"minimum_length"`
	OptimalLength int `yaml:"optimal_length"  json:"optimal_length"`
	CryptoFocus   int `yaml:"crypto_focus"    json:"crypto_focus"`
	Originality   int `yaml:"originality"     json:"originality"`
	Question      int `yaml:"question"        json:"question"`
	DataDriven    int `yaml:"data_driven"     json:"data_driven"`
	CallToAction  int `yaml:"call_to_action"  json:"call_to_action"`
	Metrics       int `yaml:"metrics"         json:"metrics"`
	AnalysisDepth int `yaml:"analysis_depth"  json:"analysis_depth"`
	SpamCheck     int `yaml:"spam_check"      json:"spam_check"`
}

// CategoryWeights combine the three sub-scores into the composite. They must sum to 1.
type CategoryWeights struct {
	ContentOptimization float64 `yaml:"content_optimization" json:"content_optimization"`
	EngagementStrategy  float64 `yaml:"engagement_strategy"  json:"engagement_strategy"`
	ContentQuality      float64 `yaml:"content_quality"      json:"content_quality"`
}

// RatingRules are inclusive lower bounds on the composite score.
type RatingRules struct {
	Excellent float64 `yaml:"excellent" json:"excellent"`
	Good      float64 `yaml:"good"      json:"good"`
	Fair      float64 `yaml:"fair"      json:"fair"`
}

// PlatformRules is the additive/subtractive table of the platform score.
type PlatformRules struct {
	Question        int `yaml:"question"         json:"question"`
	CallToAction    int `yaml:"call_to_action"   json:"call_to_action"`
	Digit           int `yaml:"digit"            json:"digit"`
	OptimalLength   int `yaml:"optimal_length"   json:"optimal_length"`
	NoSpam          int `yaml:"no_spam"          json:"no_spam"`
	FarmingPenalty  int `yaml:"farming_penalty"  json:"farming_penalty"`
	StuffingPenalty int `yaml:"stuffing_penalty" json:"stuffing_penalty"`
	Viral           int `yaml:"viral"            json:"viral"`
	Good            int `yaml:"good"             json:"good"`
	Average         int `yaml:"average"          json:"average"`
}

// ProjectionRules feed estimated_engagement_units = floor(composite * Factor * Multiplier).
type ProjectionRules struct {
	Factor     float64 `yaml:"factor"     json:"factor"`
	Multiplier float64 `yaml:"multiplier" json:"multiplier"`
}

// DefaultRules returns the standard rule table.
func DefaultRules() RuleTable {
	return RuleTable{
		Keywords: []string{
			"defi", "layer", "l2", "ai", "rwa", "tvl", "airdrop", "protocol",
			"chain", "token", "nft", "dao", "staking", "yield", "bridge", "zk",
			"rollup", "evm", "smart contract", "agi", "funding", "liquidity",
		},
		GenericPhrases: []string{
			"to the moon", "lfg", "gm", "ser", "ngmi", "wagmi", "bullish", "bearish",
		},
		CallToActionWords: []string{
			"what", "how", "why", "thoughts", "think", "opinion", "see", "do you",
		},
		FarmingPhrases: []string{"follow me", "rt this", "like if"},
		MentionHandle:  "kaito",
		Length:         LengthRules{Minimum: 50, OptimalMin: 150, OptimalMax: 280},
		Thresholds: ThresholdRules{
			AnalysisWords:   15,
			KeywordStuffing: 5,
			GenericLimit:    2,
			GenericOveruse:  3,
			SubScoreCap:     10,
		},
		Points: CategoryPoints{
			MinimumLength: 2, OptimalLength: 3, CryptoFocus: 3, Originality: 2,
			Question: 4, DataDriven: 3, CallToAction: 3,
			Metrics: 4, AnalysisDepth: 3, SpamCheck: 3,
		},
		Weights: CategoryWeights{
			ContentOptimization: 0.3,
			EngagementStrategy:  0.5,
			ContentQuality:      0.2,
		},
		Ratings: RatingRules{Excellent: 9, Good: 7, Fair: 5},
		Platform: PlatformRules{
			Question: 35, CallToAction: 25, Digit: 15, OptimalLength: 15, NoSpam: 10,
			FarmingPenalty: 20, StuffingPenalty: 15,
			Viral: 80, Good: 60, Average: 40,
		},
		Projection: ProjectionRules{Factor: 0.7, Multiplier: 75},
	}
}

// Clone returns a deep copy of the table.
func (r RuleTable) Clone() RuleTable {
	c := r
	c.Keywords = append([]string(nil), r.Keywords...)
	c.GenericPhrases = append([]string(nil), r.GenericPhrases...)
	c.CallToActionWords = append([]string(nil), r.CallToActionWords...)
	c.FarmingPhrases = append([]string(nil), r.FarmingPhrases...)
	return c
}

// Validate checks the table for values the scorer cannot work with.
func (r RuleTable) Validate() error {
	if len(r.Keywords) == 0 {
		return fmt.Errorf("keywords must not be empty")
	}
	if len(r.CallToActionWords) == 0 {
		return fmt.Errorf("call_to_action must not be empty")
	}
	for name, list := range map[string][]string{
		"keywords":        r.Keywords,
		"generic_phrases": r.GenericPhrases,
		"call_to_action":  r.CallToActionWords,
		"farming_phrases": r.FarmingPhrases,
	} {
		for i, s := range list {
			if s == "" {
				return fmt.Errorf("%s[%d] must not be empty", name, i)
			}
		}
	}

	if r.Length.Minimum < 0 || r.Length.OptimalMin < 0 {
		return fmt.Errorf("length bounds must not be negative")
	}
	if r.Length.OptimalMin > r.Length.OptimalMax {
		return fmt.Errorf("length.optimal_min %d exceeds length.optimal_max %d", r.Length.OptimalMin, r.Length.OptimalMax)
	}
	if r.Thresholds.SubScoreCap <= 0 {
		return fmt.Errorf("thresholds.sub_score_cap must be > 0 (got %d)", r.Thresholds.SubScoreCap)
	}

	points := map[string]int{
		"minimum_length": r.Points.MinimumLength,
		"optimal_length": r.Points.OptimalLength,
		"crypto_focus":   r.Points.CryptoFocus,
		"originality":    r.Points.Originality,
		"question":       r.Points.Question,
		"data_driven":    r.Points.DataDriven,
		"call_to_action": r.Points.CallToAction,
		"metrics":        r.Points.Metrics,
		"analysis_depth": r.Points.AnalysisDepth,
		"spam_check":     r.Points.SpamCheck,
	}
	for name, p := range points {
		if p < 0 {
			return fmt.Errorf("points.%s must not be negative (got %d)", name, p)
		}
	}

	w := r.Weights
	if w.ContentOptimization < 0 || w.EngagementStrategy < 0 || w.ContentQuality < 0 {
		return fmt.Errorf("weights must not be negative")
	}
	if sum := w.ContentOptimization + w.EngagementStrategy + w.ContentQuality; math.Abs(sum-1.0) > 0.01 {
		return fmt.Errorf("weights sum to %.2f (must be 1.0)", sum)
	}

	if !(r.Ratings.Excellent > r.Ratings.Good && r.Ratings.Good > r.Ratings.Fair) {
		return fmt.Errorf("ratings must be strictly descending (excellent > good > fair)")
	}

	p := r.Platform
	for name, v := range map[string]int{
		"question": p.Question, "call_to_action": p.CallToAction, "digit": p.Digit,
		"optimal_length": p.OptimalLength, "no_spam": p.NoSpam,
		"farming_penalty": p.FarmingPenalty, "stuffing_penalty": p.StuffingPenalty,
	} {
		if v < 0 {
			return fmt.Errorf("platform.%s must not be negative (got %d)", name, v)
		}
	}
	if !(p.Viral > p.Good && p.Good > p.Average) {
		return fmt.Errorf("platform tiers must be strictly descending (viral > good > average)")
	}

	if r.Projection.Factor < 0 || r.Projection.Multiplier < 0 {
		return fmt.Errorf("projection constants must not be negative")
	}
	return nil
}
