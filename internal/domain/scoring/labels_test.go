package scoring_test

import (
	"strings"
	"testing"

	"github.com/antekerwin/jeki/internal/domain"
	"github.com/antekerwin/jeki/internal/domain/scoring"
	"github.com/stretchr/testify/assert"
)

func TestContentTypeTags(t *testing.T) {
	rules := domain.DefaultRules()
	tests := []struct {
		text string
		want []string
	}{
		{"Protocol revenue is up", []string{"Protocol analysis"}},
		{"ETH vs SOL: 12% apart", []string{"Comparison"}},
		{"ETH vs SOL, no numbers", nil},
		{"Airdrop farming carries risk", []string{"Airdrop strategy"}},
		{"A THREAD on restaking", []string{"Thread format"}},
		{"1/ why rollups win", []string{"Thread format"}},
		{"Three reasons 👇", []string{"Narrative format"}},
		{"• first point", []string{"Narrative format"}},
		{"plain words", nil},
	}
	for _, tt := range tests {
		f := scoring.Extract(tt.text, rules)
		assert.Equal(t, tt.want, scoring.ContentTypeTags(strings.ToLower(tt.text), f), tt.text)
	}
}

func TestPenalties_Order(t *testing.T) {
	rules := domain.DefaultRules()
	text := "gm ser lfg @kaito defi tvl nft dao zk evm"
	f := scoring.Extract(text, rules)

	assert.Equal(t, []string{
		"Keyword stuffing detected",
		"Avoid tagging @kaito",
		"Too many generic phrases",
		"Too short (min 50 chars)",
	}, scoring.Penalties(text, f, rules))
}

func TestPenalties_MentionNeedsAtSign(t *testing.T) {
	rules := domain.DefaultRules()

	text := "kaito rankings are @ the top"
	assert.Contains(t, scoring.Penalties(text, scoring.Extract(text, rules), rules), "Avoid tagging @kaito")

	text = "kaito rankings are at the top"
	assert.NotContains(t, scoring.Penalties(text, scoring.Extract(text, rules), rules), "Avoid tagging @kaito")
}

func TestPenalties_EmptyHandleDisablesMentionCheck(t *testing.T) {
	rules := domain.DefaultRules()
	rules.MentionHandle = ""
	text := "@kaito"

	assert.NotContains(t, scoring.Penalties(text, scoring.Extract(text, rules), rules), "Avoid tagging @kaito")
}

func TestSuggestions_FollowRules(t *testing.T) {
	rules := domain.DefaultRules()
	rules.Length.OptimalMin = 20
	rules.Length.Minimum = 10
	text := "a short one about tvl?"
	f := scoring.Extract(text, rules)

	got := scoring.Suggestions(f, scoring.ContentTypeTags(strings.ToLower(text), f), rules)
	assert.Equal(t, []string{"Include metrics/data for credibility"}, got)
}

func TestSuggestions_LengthHintUsesRuleBounds(t *testing.T) {
	rules := domain.DefaultRules()
	got := scoring.Suggestions(scoring.Features{HasContent: true, IsOriginal: true, HasQuestion: true, HasDigit: true}, []string{"x"}, rules)
	assert.Equal(t, []string{"Expand to 150-280 chars (optimal)"}, got)
}
