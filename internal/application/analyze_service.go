package application

import (
	"context"
	"strings"

	"github.com/antekerwin/jeki/internal/domain"
	"github.com/antekerwin/jeki/internal/domain/scoring"
)

// Analysis origins passed to the recorder.
const (
	OriginAnalyze  = "analyze"
	OriginGenerate = "generate"
)

// AnalyzeService validates user drafts and scores them.
type AnalyzeService struct {
	scorer   *scoring.Scorer
	recorder domain.ReportRecorder
}

// NewAnalyzeService wires a scorer. A nil recorder records nothing.
func NewAnalyzeService(scorer *scoring.Scorer, recorder domain.ReportRecorder) *AnalyzeService {
	if recorder == nil {
		recorder = domain.NopRecorder{}
	}
	return &AnalyzeService{scorer: scorer, recorder: recorder}
}

// Analyze trims text and scores it. Blank input is rejected with
// domain.ErrEmptyContent; the engine itself accepts any string.
func (s *AnalyzeService) Analyze(ctx context.Context, text string) (*domain.QualityReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.ErrEmptyContent
	}
	report := s.scorer.Score(text)
	s.recorder.RecordAnalysis(OriginAnalyze, report)
	return &report, nil
}

// Rules returns the rule table reports are computed with.
func (s *AnalyzeService) Rules() domain.RuleTable {
	return s.scorer.Rules()
}
