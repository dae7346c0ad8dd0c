package inference

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/antekerwin/jeki/internal/domain"
)

// Temperature range sampled per request, rounded to two decimals.
const (
	minTemperature = 0.70
	maxTemperature = 0.95
)

var tones = []string{"analytical", "contrarian", "bullish", "data-focused"}

// Completer is the model call the producer depends on.
type Completer interface {
	Complete(ctx context.Context, prompt string, temperature float64) (string, error)
}

// Randomness supplies sampling decisions. generator.Templates satisfies it.
type Randomness interface {
	Float64() float64
	IntN(n int) int
}

// Producer implements domain.TextProducer on top of a model, falling back to
// another producer (normally the template generator) on any model error.
type Producer struct {
	model    Completer
	fallback domain.TextProducer
	rnd      Randomness
	logger   *zap.Logger
}

func NewProducer(model Completer, fallback domain.TextProducer, rnd Randomness, logger *zap.Logger) *Producer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Producer{model: model, fallback: fallback, rnd: rnd, logger: logger}
}

func (p *Producer) Produce(ctx context.Context, req domain.GenerateRequest) (domain.Draft, error) {
	style := domain.NormalizeStyle(req.PromptType)
	tone := tones[p.rnd.IntN(len(tones))]
	temperature := Temperature(p.rnd.Float64())

	text, err := p.model.Complete(ctx, Prompt(req, tone), temperature)
	if err != nil {
		p.logger.Warn("inference failed, falling back to templates",
			zap.String("project", req.Project),
			zap.String("style", style),
			zap.Error(err))
		draft, ferr := p.fallback.Produce(ctx, req)
		if ferr != nil {
			return domain.Draft{}, fmt.Errorf("fallback after %v: %w", err, ferr)
		}
		return draft, nil
	}

	p.logger.Debug("inference draft produced",
		zap.String("project", req.Project),
		zap.String("tone", tone),
		zap.Float64("temperature", temperature))
	return domain.Draft{Content: text, Source: domain.SourceInference, Style: style}, nil
}

// Temperature maps u in [0, 1) onto the sampling range.
func Temperature(u float64) float64 {
	t := minTemperature + u*(maxTemperature-minTemperature)
	return math.Round(t*100) / 100
}

// Prompt builds the instruction sent to the model.
func Prompt(req domain.GenerateRequest, tone string) string {
	var base string
	switch domain.NormalizeStyle(req.PromptType) {
	case domain.StyleDataDriven:
		base = fmt.Sprintf("Generate a data-driven tweet about %s with concrete metrics", req.Project)
	case domain.StyleCompetitive:
		base = fmt.Sprintf("Generate a competitive analysis tweet comparing %s with its competitors", req.Project)
	case domain.StyleThesis:
		base = fmt.Sprintf("Generate a bold thesis or prediction tweet about %s", req.Project)
	default:
		if req.CustomRequest != "" {
			base = fmt.Sprintf("Generate a tweet about %s: %s", req.Project, req.CustomRequest)
		} else {
			base = fmt.Sprintf("Generate an insightful tweet about %s", req.Project)
		}
	}
	return fmt.Sprintf("%s. Tone: %s.", base, tone)
}
