package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/antekerwin/jeki/internal/domain"
)

var (
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(dim)
	highlightStyle   = lipgloss.NewStyle().Bold(true).Foreground(accent)
)

// RenderLeaderboard lists leaderboard projects as a table.
func RenderLeaderboard(projects []domain.Project) string {
	if len(projects) == 0 {
		return "\n  " + dimStyle.Render("No projects available.") + "\n\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s %s\n\n", titleStyle.Render("Leaderboard"), dimStyle.Render(fmt.Sprintf("(%d projects)", len(projects))))
	fmt.Fprintf(&b, "  %s\n", tableHeaderStyle.Render(fmt.Sprintf("%-4s %-20s %-12s %s", "#", "PROJECT", "MINDSHARE", "CATEGORY")))
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 56)) + "\n")

	for i, p := range projects {
		mind := dimStyle.Render(padRight(p.Mindshare, 12))
		if strings.Contains(strings.ToLower(p.Mindshare), "very") {
			mind = highlightStyle.Render(padRight(p.Mindshare, 12))
		}
		fmt.Fprintf(&b, "  %-4d %s %s %s\n", i+1, titleStyle.Render(padRight(p.Name, 20)), mind, p.Category)
	}
	b.WriteString("\n")
	return b.String()
}

// RenderRules summarises the rule table in effect.
func RenderRules(rules domain.RuleTable) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Scoring rules") + "\n")
	b.WriteString("  " + separatorLine + "\n\n")

	section := func(name string) {
		b.WriteString("  " + sectionHeaderStyle.Render(name) + "\n")
	}
	row := func(key string, value any) {
		fmt.Fprintf(&b, "    %s %v\n", dimStyle.Render(padRight(key, 24)), value)
	}

	section("Weights")
	row(domain.CategoryContentOptimization, rules.Weights.ContentOptimization)
	row(domain.CategoryEngagementStrategy, rules.Weights.EngagementStrategy)
	row(domain.CategoryContentQuality, rules.Weights.ContentQuality)
	b.WriteString("\n")

	section("Length")
	row("minimum", rules.Length.Minimum)
	row("optimal", fmt.Sprintf("%d-%d", rules.Length.OptimalMin, rules.Length.OptimalMax))
	b.WriteString("\n")

	section("Ratings")
	row(domain.RatingExcellent, fmt.Sprintf(">= %g", rules.Ratings.Excellent))
	row(domain.RatingGood, fmt.Sprintf(">= %g", rules.Ratings.Good))
	row(domain.RatingFair, fmt.Sprintf(">= %g", rules.Ratings.Fair))
	b.WriteString("\n")

	section("Platform")
	row("viral / good / average", fmt.Sprintf("%d / %d / %d", rules.Platform.Viral, rules.Platform.Good, rules.Platform.Average))
	row("farming penalty", -rules.Platform.FarmingPenalty)
	row("stuffing penalty", -rules.Platform.StuffingPenalty)
	b.WriteString("\n")

	section("Vocabulary")
	row("keywords", strings.Join(rules.Keywords, ", "))
	row("generic phrases", strings.Join(rules.GenericPhrases, ", "))
	row("call to action", strings.Join(rules.CallToActionWords, ", "))
	row("farming phrases", strings.Join(rules.FarmingPhrases, ", "))
	b.WriteString("\n")
	return b.String()
}
