package inference_test

import (
	"context"
	"errors"
	"testing"

	"github.com/antekerwin/jeki/internal/adapters/outbound/inference"
	"github.com/antekerwin/jeki/internal/domain"
	"github.com/antekerwin/jeki/internal/domain/generator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubModel struct {
	text        string
	err         error
	prompt      string
	temperature float64
}

func (m *stubModel) Complete(_ context.Context, prompt string, temperature float64) (string, error) {
	m.prompt = prompt
	m.temperature = temperature
	return m.text, m.err
}

type fixedRandomness struct {
	f float64
	n int
}

func (r fixedRandomness) Float64() float64 { return r.f }
func (r fixedRandomness) IntN(int) int     { return r.n }

func TestProducer_UsesModel(t *testing.T) {
	model := &stubModel{text: "Polymarket volume hit $1B. Who saw this coming?"}
	p := inference.NewProducer(model, generator.NewSeeded(1), fixedRandomness{f: 0.52, n: 1}, zap.NewNop())

	d, err := p.Produce(context.Background(), domain.GenerateRequest{Project: "Polymarket", PromptType: domain.StyleThesis})
	require.NoError(t, err)

	assert.Equal(t, model.text, d.Content)
	assert.Equal(t, domain.SourceInference, d.Source)
	assert.Equal(t, domain.StyleThesis, d.Style)
	assert.Equal(t, "Generate a bold thesis or prediction tweet about Polymarket. Tone: contrarian.", model.prompt)
	assert.Equal(t, 0.83, model.temperature)
}

func TestProducer_FallsBackToTemplates(t *testing.T) {
	model := &stubModel{err: inference.ErrRequestFailed}
	p := inference.NewProducer(model, generator.NewSeeded(1), fixedRandomness{}, zap.NewNop())

	d, err := p.Produce(context.Background(), domain.GenerateRequest{Project: "Sentient", PromptType: domain.StyleDataDriven})
	require.NoError(t, err)

	assert.Equal(t, domain.SourceTemplate, d.Source)
	assert.Contains(t, d.Content, "Sentient")
}

type failingProducer struct{}

func (failingProducer) Produce(context.Context, domain.GenerateRequest) (domain.Draft, error) {
	return domain.Draft{}, errors.New("no templates")
}

func TestProducer_FallbackErrorIsReturned(t *testing.T) {
	p := inference.NewProducer(&stubModel{err: inference.ErrRateLimit}, failingProducer{}, fixedRandomness{}, zap.NewNop())

	_, err := p.Produce(context.Background(), domain.GenerateRequest{Project: "Base"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no templates")
}

func TestTemperature_Range(t *testing.T) {
	assert.Equal(t, 0.7, inference.Temperature(0))
	assert.Equal(t, 0.83, inference.Temperature(0.52))
	assert.Equal(t, 0.95, inference.Temperature(0.99999))
	for u := 0.0; u < 1; u += 0.01 {
		got := inference.Temperature(u)
		assert.GreaterOrEqual(t, got, 0.7)
		assert.LessOrEqual(t, got, 0.95)
	}
}

func TestPrompt(t *testing.T) {
	tests := []struct {
		req  domain.GenerateRequest
		want string
	}{
		{domain.GenerateRequest{Project: "Monad", PromptType: domain.StyleDataDriven}, "Generate a data-driven tweet about Monad with concrete metrics. Tone: bullish."},
		{domain.GenerateRequest{Project: "Monad", PromptType: domain.StyleCompetitive}, "Generate a competitive analysis tweet comparing Monad with its competitors. Tone: bullish."},
		{domain.GenerateRequest{Project: "Monad", PromptType: domain.StyleCustom, CustomRequest: "why parallel EVM"}, "Generate a tweet about Monad: why parallel EVM. Tone: bullish."},
		{domain.GenerateRequest{Project: "Monad"}, "Generate an insightful tweet about Monad. Tone: bullish."},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, inference.Prompt(tt.req, "bullish"))
	}
}
