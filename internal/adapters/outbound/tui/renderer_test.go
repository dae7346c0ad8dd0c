package tui_test

import (
	"testing"

	"github.com/antekerwin/jeki/internal/adapters/outbound/tui"
	"github.com/antekerwin/jeki/internal/domain"
	"github.com/antekerwin/jeki/internal/domain/scoring"
	"github.com/stretchr/testify/assert"
)

func sampleReport() *domain.QualityReport {
	r := scoring.MustNewScorer(domain.DefaultRules()).
		Score("Follow me for more alpha on defi. What do you think?")
	return &r
}

func TestRenderReport_ContainsComposite(t *testing.T) {
	output := tui.RenderReport(sampleReport())
	assert.Contains(t, output, "6.2 / 10")
	assert.Contains(t, output, domain.RatingFair)
}

func TestRenderReport_ContainsCategoriesAndSubMetrics(t *testing.T) {
	output := tui.RenderReport(sampleReport())
	assert.Contains(t, output, "content_optimization")
	assert.Contains(t, output, "engagement_strategy")
	assert.Contains(t, output, "content_quality")
	assert.Contains(t, output, "minimum_length")
	assert.Contains(t, output, "spam_check")
	assert.Contains(t, output, "keywords")
}

func TestRenderReport_ContainsPlatform(t *testing.T) {
	output := tui.RenderReport(sampleReport())
	assert.Contains(t, output, "50 / 100")
	assert.Contains(t, output, "Engagement farming detected (-20 pts)")
	assert.Contains(t, output, "Average reach - standard")
}

func TestRenderReport_ContainsLabels(t *testing.T) {
	output := tui.RenderReport(sampleReport())
	assert.Contains(t, output, "Penalties")
	assert.Contains(t, output, "Suggestions")
	assert.Contains(t, output, scoring.DefaultPenalty)
	assert.Contains(t, output, "Include metrics/data for credibility")
	assert.Contains(t, output, scoring.DefaultContentType)
}

func TestRenderGeneration(t *testing.T) {
	gen := &domain.Generation{
		Content:  "Monad TVL hit $120M. What do you think?",
		Source:   domain.SourceTemplate,
		Style:    domain.StyleDataDriven,
		Analysis: *sampleReport(),
	}

	output := tui.RenderGeneration("Monad", gen)
	assert.Contains(t, output, "Draft")
	assert.Contains(t, output, "Monad TVL hit $120M.")
	assert.Contains(t, output, "data-driven")
	assert.Contains(t, output, "placeholders")
	assert.Contains(t, output, "6.2 / 10")
}

func TestRenderGeneration_InferenceHasNoPlaceholderHint(t *testing.T) {
	gen := &domain.Generation{Content: "gm", Source: domain.SourceInference, Analysis: *sampleReport()}
	assert.NotContains(t, tui.RenderGeneration("Base", gen), "placeholders")
}

func TestRenderLeaderboard(t *testing.T) {
	output := tui.RenderLeaderboard(domain.FallbackProjects())
	assert.Contains(t, output, "Limitless")
	assert.Contains(t, output, "Prediction Markets")
	assert.Contains(t, output, "3 projects")
}

func TestRenderLeaderboard_Empty(t *testing.T) {
	assert.Contains(t, tui.RenderLeaderboard(nil), "No projects available.")
}

func TestRenderRules(t *testing.T) {
	output := tui.RenderRules(domain.DefaultRules())
	assert.Contains(t, output, "Scoring rules")
	assert.Contains(t, output, "150-280")
	assert.Contains(t, output, "80 / 60 / 40")
	assert.Contains(t, output, "smart contract")
}
