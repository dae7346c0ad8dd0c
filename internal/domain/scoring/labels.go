package scoring

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/antekerwin/jeki/internal/domain"
)

// Placeholders substituted when a list would otherwise be empty.
const (
	DefaultContentType = "Standard tweet format"
	DefaultPenalty     = "No penalties detected"
	DefaultSuggestion  = "Content is well-optimized!"
)

var threadMarker = regexp.MustCompile(`thread|1/`)

// tagRule fires a content-type tag. Rules run in declaration order and the
// output keeps that order.
type tagRule struct {
	label string
	match func(lower string, f Features) bool
}

var tagRules = []tagRule{
	{"Protocol analysis", func(lower string, _ Features) bool {
		return strings.Contains(lower, "tvl") || strings.Contains(lower, "revenue")
	}},
	{"Comparison", func(lower string, f Features) bool {
		return f.HasMetricPattern && (strings.Contains(lower, "vs") || strings.Contains(lower, "compare"))
	}},
	{"Airdrop strategy", func(lower string, _ Features) bool {
		return strings.Contains(lower, "airdrop") && strings.Contains(lower, "risk")
	}},
	{"Thread format", func(lower string, _ Features) bool {
		return threadMarker.MatchString(lower)
	}},
	{"Narrative format", func(lower string, _ Features) bool {
		return strings.Contains(lower, "•") || strings.Contains(lower, "👇")
	}},
}

// ContentTypeTags returns the tags whose rules fire, without the placeholder.
func ContentTypeTags(lower string, f Features) []string {
	var tags []string
	for _, r := range tagRules {
		if r.match(lower, f) {
			tags = append(tags, r.label)
		}
	}
	return tags
}

// Penalties lists quality problems in fixed order, without the placeholder.
func Penalties(text string, f Features, rules domain.RuleTable) []string {
	lower := strings.ToLower(text)
	var out []string
	if f.KeywordStuffing {
		out = append(out, "Keyword stuffing detected")
	}
	if h := rules.MentionHandle; h != "" && strings.Contains(lower, h) && strings.Contains(text, "@") {
		out = append(out, fmt.Sprintf("Avoid tagging @%s", h))
	}
	if f.GenericPhraseCount >= rules.Thresholds.GenericOveruse {
		out = append(out, "Too many generic phrases")
	}
	if f.CharCount < rules.Length.Minimum {
		out = append(out, fmt.Sprintf("Too short (min %d chars)", rules.Length.Minimum))
	}
	if !f.HasCryptoFocus {
		out = append(out, "No crypto-specific topic")
	}
	return out
}

// Suggestions lists improvements in fixed order, without the placeholder.
// tags must be the raw output of ContentTypeTags.
func Suggestions(f Features, tags []string, rules domain.RuleTable) []string {
	var out []string
	if !f.HasQuestion {
		out = append(out, "Add a question to drive discussion")
	}
	if !f.HasDigit {
		out = append(out, "Include metrics/data for credibility")
	}
	if f.CharCount < rules.Length.OptimalMin {
		out = append(out, fmt.Sprintf("Expand to %d-%d chars (optimal)", rules.Length.OptimalMin, rules.Length.OptimalMax))
	}
	if len(tags) == 0 {
		out = append(out, "Try a protocol deep-dive or comparison format")
	}
	if !f.IsOriginal {
		out = append(out, "Add personal analysis or a unique insight")
	}
	return out
}

func orDefault(list []string, placeholder string) []string {
	if len(list) == 0 {
		return []string{placeholder}
	}
	return list
}
