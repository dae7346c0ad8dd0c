package domain

// Prompt styles accepted by the generator.
const (
	StyleDataDriven  = "data-driven"
	StyleCompetitive = "competitive"
	StyleThesis      = "thesis"
	StyleCustom      = "custom"
)

// Draft sources.
const (
	SourceTemplate  = "template"
	SourceInference = "inference"
)

// PromptStyle describes one generation style offered to callers.
type PromptStyle struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// PromptStyles returns the generation styles in display order.
func PromptStyles() []PromptStyle {
	return []PromptStyle{
		{Key: StyleDataDriven, Name: "Data & Metrics", Description: "Lead with concrete data"},
		{Key: StyleCompetitive, Name: "Competitive Edge", Description: "Compare against competitors"},
		{Key: StyleThesis, Name: "Bold Prediction", Description: "Trend analysis"},
		{Key: StyleCustom, Name: "Custom Request", Description: "Free-form request"},
	}
}

// NormalizeStyle maps unknown or empty styles to StyleCustom.
func NormalizeStyle(style string) string {
	switch style {
	case StyleDataDriven, StyleCompetitive, StyleThesis:
		return style
	default:
		return StyleCustom
	}
}

// Project is one leaderboard entry.
type Project struct {
	Name      string `json:"name"`
	Mindshare string `json:"mindshare"`
	Category  string `json:"category"`
}

// FallbackProjects is the static list shown when the leaderboard cannot be fetched.
func FallbackProjects() []Project {
	return []Project{
		{Name: "Limitless", Mindshare: "High", Category: "AI Tools"},
		{Name: "Polymarket", Mindshare: "Very High", Category: "Prediction Markets"},
		{Name: "Sentient", Mindshare: "High", Category: "AI Agents"},
	}
}

// GenerateRequest asks a producer for a post about a project.
type GenerateRequest struct {
	Project       string `json:"project"`
	PromptType    string `json:"prompt_type"`
	CustomRequest string `json:"custom_request,omitempty"`
}

// Draft is producer output before scoring.
type Draft struct {
	Content string `json:"content"`
	Source  string `json:"source"`
	Style   string `json:"style,omitempty"`
}

// Generation is a produced draft together with its quality report.
type Generation struct {
	Content  string        `json:"content"`
	Source   string        `json:"source"`
	Style    string        `json:"style,omitempty"`
	Analysis QualityReport `json:"analysis"`
}

// Home is the landing payload: leaderboard projects plus prompt styles.
type Home struct {
	Projects []Project     `json:"projects"`
	Prompts  []PromptStyle `json:"prompts"`
}
