package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/antekerwin/jeki/internal/domain"
)

// ── warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	lime    = lipgloss.Color("#A3E635")
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	ratingColors = map[string]lipgloss.Color{
		domain.RatingExcellent: success,
		domain.RatingGood:      lime,
		domain.RatingFair:      warning,
		domain.RatingPoor:      danger,
		domain.PlatformViral:   success,
		domain.PlatformGood:    lime,
		domain.PlatformAverage: warning,
		domain.PlatformLow:     danger,
	}

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	infoStyle     = lipgloss.NewStyle().Foreground(info)
	warnTagStyle  = lipgloss.NewStyle().Foreground(warning).Bold(true)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	catNameStyle  = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderReport formats a quality report for the terminal.
func RenderReport(report *domain.QualityReport) string {
	var b strings.Builder

	// ── Header ──
	title := headerStyle.Render("jeki")
	subtitle := dimStyle.Render("Post Quality Score")
	color := ratingColor(report.Rating)
	scoreStyled := lipgloss.NewStyle().Bold(true).Foreground(color).
		Render(fmt.Sprintf("%.1f / 10", report.CompositeScore))
	ratingStyled := lipgloss.NewStyle().Bold(true).Foreground(color).Render(report.Rating)
	summary := dimStyle.Render(fmt.Sprintf("%s  ·  ~%d engagement units", report.RatingSummary, report.EstimatedEngagementUnits))

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + scoreStyled + "  " + ratingStyled + "\n" + summary))
	b.WriteString("\n\n")

	// ── Categories ──
	cats := report.Categories()
	for i, cat := range cats {
		renderCategory(&b, cat)
		if i < len(cats)-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n  " + separatorLine + "\n\n")

	// ── Platform ──
	renderPlatform(&b, report.Platform)

	b.WriteString("\n  " + separatorLine + "\n\n")

	// ── Labels ──
	renderList(&b, "Content type", report.ContentTypeTags, infoStyle.Render("◆"))
	renderList(&b, "Penalties", report.Penalties, warnStyle.Render("▲"))
	renderList(&b, "Suggestions", report.Suggestions, passStyle.Render("→"))

	return b.String()
}

func renderCategory(b *strings.Builder, cat domain.CategoryScore) {
	color := scoreColor(cat.Score * 10)
	scoreText := lipgloss.NewStyle().Bold(true).Foreground(color).Render(fmt.Sprintf("%d", cat.Score))
	bar := coloredBar(cat.Score*10, 20)
	weight := dimStyle.Render(fmt.Sprintf("%d%%", int(cat.Weight*100+0.5)))

	name := catNameStyle.Render(padRight(cat.Name, 22))
	fmt.Fprintf(b, "  %s %s  %s %s\n", name, bar, scoreText, weight)

	for _, sm := range cat.SubMetrics {
		renderSubMetric(b, sm)
	}
}

func renderSubMetric(b *strings.Builder, sm domain.SubMetric) {
	name := padRight(sm.Name, 34)

	// Detail-only entries carry no points.
	if sm.Points == 0 {
		fmt.Fprintf(b, "    %s %s %s\n", infoStyle.Render("○"), dimStyle.Render(name), faintStyle.Render(sm.Detail))
		return
	}

	var icon string
	switch {
	case sm.Score >= sm.Points:
		icon = passStyle.Render("●")
	case sm.Score > 0:
		icon = warnStyle.Render("●")
	default:
		icon = failStyle.Render("●")
	}

	score := dimStyle.Render(fmt.Sprintf("%d/%d", sm.Score, sm.Points))
	if sm.Detail != "" {
		fmt.Fprintf(b, "    %s %s %s  %s\n", icon, name, score, faintStyle.Render(sm.Detail))
	} else {
		fmt.Fprintf(b, "    %s %s %s\n", icon, name, score)
	}
}

func renderPlatform(b *strings.Builder, p domain.PlatformScore) {
	color := ratingColor(p.Rating)
	scoreText := lipgloss.NewStyle().Bold(true).Foreground(color).Render(fmt.Sprintf("%d / 100", p.Score))
	fmt.Fprintf(b, "  %s %s  %s\n",
		catNameStyle.Render(padRight("platform", 22)),
		coloredBar(p.Score, 20),
		scoreText,
	)
	fmt.Fprintf(b, "    %s\n", dimStyle.Render(p.RatingSummary))

	for _, f := range p.EngagementFactors {
		fmt.Fprintf(b, "    %s %s\n", passStyle.Render("+"), f)
	}
	for _, pen := range p.Penalties {
		fmt.Fprintf(b, "    %s %s\n", failStyle.Render("-"), pen)
	}
	for _, n := range p.Notes {
		fmt.Fprintf(b, "    %s\n", faintStyle.Render(n))
	}
}

func renderList(b *strings.Builder, title string, items []string, bullet string) {
	fmt.Fprintf(b, "  %s %s\n", titleStyle.Render(title), dimStyle.Render(fmt.Sprintf("(%d)", len(items))))
	for _, item := range items {
		fmt.Fprintf(b, "    %s %s\n", bullet, item)
	}
	b.WriteString("\n")
}

func coloredBar(score, width int) string {
	filled := max(0, min(score*width/100, width))
	empty := width - filled

	color := scoreColor(score)
	filledStr := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
	emptyStr := lipgloss.NewStyle().Foreground(faint).Render(strings.Repeat("░", empty))
	return filledStr + emptyStr
}

// scoreColor takes a percentage.
func scoreColor(score int) lipgloss.Color {
	switch {
	case score >= 80:
		return success
	case score >= 60:
		return lime
	case score >= 40:
		return warning
	default:
		return danger
	}
}

func ratingColor(rating string) lipgloss.Color {
	if c, ok := ratingColors[rating]; ok {
		return c
	}
	return fg
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
