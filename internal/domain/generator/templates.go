// Package generator produces candidate posts from fixed templates filled with
// random but plausible metrics.
package generator

import (
	"context"
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"

	"github.com/antekerwin/jeki/internal/domain"
)

// Metric ranges, inclusive.
const (
	growthMin, growthMax   = 150, 500
	tvlMin, tvlMax         = 10, 500
	usersMin, usersMax     = 50, 300
	fundingMin, fundingMax = 20, 150
)

// Templates fills post templates with random metrics. It is safe for
// concurrent use; access to the random source is serialised.
type Templates struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a generator drawing from rng. Two generators built from
// identically seeded sources produce identical output for identical requests.
func New(rng *rand.Rand) *Templates {
	return &Templates{rng: rng}
}

// NewSeeded is New with a PCG source. Seed 0 is a valid seed.
func NewSeeded(seed uint64) *Templates {
	return New(rand.New(rand.NewPCG(seed, seed)))
}

// Generate picks a template for the request's style and fills it in.
func (t *Templates) Generate(req domain.GenerateRequest) string {
	t.mu.Lock()
	defer t.mu.Unlock()

	m := metrics{
		growth:  t.between(growthMin, growthMax),
		tvl:     t.between(tvlMin, tvlMax),
		users:   t.between(usersMin, usersMax),
		funding: t.between(fundingMin, fundingMax),
	}
	set := templatesFor(domain.NormalizeStyle(req.PromptType), req.CustomRequest != "")
	tmpl := set[t.rng.IntN(len(set))]
	return m.replacer(req).Replace(tmpl)
}

// Produce implements domain.TextProducer. It never fails.
func (t *Templates) Produce(_ context.Context, req domain.GenerateRequest) (domain.Draft, error) {
	return domain.Draft{
		Content: t.Generate(req),
		Source:  domain.SourceTemplate,
		Style:   domain.NormalizeStyle(req.PromptType),
	}, nil
}

// Float64 and IntN expose the shared source to callers that need randomness
// consistent with the templates, such as inference parameters.
func (t *Templates) Float64() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.rng.Float64()
}

func (t *Templates) IntN(n int) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.rng.IntN(n)
}

func (t *Templates) between(lo, hi int) int {
	return lo + t.rng.IntN(hi-lo+1)
}

type metrics struct {
	growth, tvl, users, funding int
}

func (m metrics) replacer(req domain.GenerateRequest) *strings.Replacer {
	return strings.NewReplacer(
		"{project}", req.Project,
		"{request}", req.CustomRequest,
		"{growth}", strconv.Itoa(m.growth),
		"{tvl}", strconv.Itoa(m.tvl),
		"{users}", strconv.Itoa(m.users),
		"{funding}", strconv.Itoa(m.funding),
	)
}

func templatesFor(style string, hasRequest bool) []string {
	switch style {
	case domain.StyleDataDriven:
		return dataDriven
	case domain.StyleCompetitive:
		return competitive
	case domain.StyleThesis:
		return thesis
	}
	if hasRequest {
		return customWithRequest
	}
	return customDefault
}
