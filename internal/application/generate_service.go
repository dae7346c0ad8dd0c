package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/antekerwin/jeki/internal/domain"
	"github.com/antekerwin/jeki/internal/domain/scoring"
)

// GenerateService produces a draft and scores it with the same scorer used
// for user input.
type GenerateService struct {
	producer domain.TextProducer
	scorer   *scoring.Scorer
	recorder domain.ReportRecorder
}

func NewGenerateService(producer domain.TextProducer, scorer *scoring.Scorer, recorder domain.ReportRecorder) *GenerateService {
	if recorder == nil {
		recorder = domain.NopRecorder{}
	}
	return &GenerateService{producer: producer, scorer: scorer, recorder: recorder}
}

func (s *GenerateService) Generate(ctx context.Context, req domain.GenerateRequest) (*domain.Generation, error) {
	req.Project = strings.TrimSpace(req.Project)
	if req.Project == "" {
		return nil, domain.ErrEmptyProject
	}
	req.PromptType = domain.NormalizeStyle(req.PromptType)
	req.CustomRequest = strings.TrimSpace(req.CustomRequest)

	draft, err := s.producer.Produce(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("producing draft: %w", err)
	}

	report := s.scorer.Score(draft.Content)
	s.recorder.RecordGeneration(draft.Source)
	s.recorder.RecordAnalysis(OriginGenerate, report)

	style := draft.Style
	if style == "" {
		style = req.PromptType
	}
	return &domain.Generation{
		Content:  draft.Content,
		Source:   draft.Source,
		Style:    style,
		Analysis: report,
	}, nil
}
