package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/antekerwin/jeki/internal/domain"
)

var (
	sectionHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	hintStyle          = lipgloss.NewStyle().Foreground(dim).Italic(true)
	draftStyle         = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder(), false, false, false, true).
				BorderForeground(faint).
				PaddingLeft(2).
				Width(66)
)

// RenderGeneration shows a generated draft followed by its report.
func RenderGeneration(project string, gen *domain.Generation) string {
	var b strings.Builder

	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s %s\n",
		sectionHeaderStyle.Render("Draft"),
		dimStyle.Render(fmt.Sprintf("%s · %s · %s", project, gen.Style, gen.Source)),
	)
	b.WriteString("\n")
	for _, line := range strings.Split(draftStyle.Render(gen.Content), "\n") {
		b.WriteString("  " + line + "\n")
	}
	if gen.Source == domain.SourceTemplate {
		b.WriteString("\n  " + hintStyle.Render("Template draft: metrics are placeholders, replace them with real data.") + "\n")
	}
	b.WriteString("\n")

	b.WriteString(RenderReport(&gen.Analysis))
	return b.String()
}
