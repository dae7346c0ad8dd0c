package scoring

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/antekerwin/jeki/internal/domain"
)

// metricPattern matches "120M", "250%", "5$", "$120" and "10x".
var metricPattern = regexp.MustCompile(`\d+[%$MBK]|\$\d+|\d+x`)

// spamRunLength is the run of identical characters treated as spam.
const spamRunLength = 4

// Features are the lexical facts a report is computed from. Every scoring
// condition reads one of the boolean fields, so flipping a field is enough to
// exercise a condition in isolation.
type Features struct {
	CharCount          int
	WordCount          int
	KeywordCount       int
	GenericPhraseCount int

	HasContent          bool
	HasQuestion         bool
	HasDigit            bool
	HasCallToAction     bool
	HasMetricPattern    bool
	HasRepeatedCharSpam bool
	IsOptimalLength     bool
	IsMinimumLength     bool

	HasCryptoFocus       bool
	IsOriginal           bool
	NoSpamPattern        bool
	HasAnalysisDepth     bool
	KeywordStuffing      bool
	HasEngagementFarming bool
}

// Extract computes the feature flags of text. Lists in rules must already be
// lowercase; NewScorer guarantees that.
//
// The empty string earns nothing: the "absence" conditions (originality, no
// spam) also require content.
func Extract(text string, rules domain.RuleTable) Features {
	lower := strings.ToLower(text)
	charCount := utf8.RuneCountInString(text)

	f := Features{
		CharCount:          charCount,
		WordCount:          len(strings.Fields(text)),
		KeywordCount:       countPresent(lower, rules.Keywords),
		GenericPhraseCount: countPresent(lower, rules.GenericPhrases),

		HasContent:          charCount > 0,
		HasQuestion:         strings.Contains(text, "?"),
		HasDigit:            strings.IndexFunc(text, unicode.IsDigit) >= 0,
		HasCallToAction:     containsAny(lower, rules.CallToActionWords),
		HasMetricPattern:    metricPattern.MatchString(text),
		HasRepeatedCharSpam: hasRepeatedRun(text, spamRunLength),
		IsOptimalLength:     charCount > 0 && charCount >= rules.Length.OptimalMin && charCount <= rules.Length.OptimalMax,
		IsMinimumLength:     charCount > 0 && charCount >= rules.Length.Minimum,
	}

	f.HasCryptoFocus = f.KeywordCount >= 1
	f.IsOriginal = f.HasContent && f.GenericPhraseCount < rules.Thresholds.GenericLimit
	f.NoSpamPattern = f.HasContent && !f.HasRepeatedCharSpam
	f.HasAnalysisDepth = f.WordCount > rules.Thresholds.AnalysisWords
	f.KeywordStuffing = f.KeywordCount > rules.Thresholds.KeywordStuffing
	f.HasEngagementFarming = containsAny(lower, rules.FarmingPhrases)
	return f
}

// Summary converts the flags into the report's JSON view.
func (f Features) Summary() domain.FeatureSummary {
	return domain.FeatureSummary{
		CharCount:           f.CharCount,
		WordCount:           f.WordCount,
		KeywordCount:        f.KeywordCount,
		GenericPhraseCount:  f.GenericPhraseCount,
		HasQuestion:         f.HasQuestion,
		HasDigit:            f.HasDigit,
		HasCallToAction:     f.HasCallToAction,
		HasMetricPattern:    f.HasMetricPattern,
		HasRepeatedCharSpam: f.HasRepeatedCharSpam,
		IsOptimalLength:     f.IsOptimalLength,
		IsMinimumLength:     f.IsMinimumLength,
	}
}

// hasRepeatedRun reports whether any character other than a newline repeats
// n or more times in a row. Invalid UTF-8 bytes decode as U+FFFD, so a run of
// them counts as a repeated character.
func hasRepeatedRun(text string, n int) bool {
	var prev rune
	run := 0
	for i, r := range text {
		if i > 0 && r == prev && r != '\n' {
			run++
		} else {
			run = 1
		}
		if run >= n && r != '\n' {
			return true
		}
		prev = r
	}
	return false
}
