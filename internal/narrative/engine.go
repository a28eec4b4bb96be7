package narrative

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/alexanderramin/vital/internal/analytics"
)

// Engine assembles weekly stories from the template catalog. The random
// source is injectable so tests can force deterministic selection without
// disabling the weighting algorithm; production wiring uses a time seed.
type Engine struct {
	catalog []Template
	rng     *rand.Rand
}

type Option func(*Engine)

// WithRand replaces the engine's random source.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		e.rng = rng
	}
}

// WithCatalog replaces the built-in catalog. Intended for tests.
func WithCatalog(catalog []Template) Option {
	return func(e *Engine) {
		e.catalog = catalog
	}
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		catalog: Catalog(),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// GenerateStory builds the weekly story: one section per story category in
// fixed order, empty sections omitted, plus a closing line. A category with
// no applicable template simply contributes nothing; that is never an error.
func (e *Engine) GenerateStory(a *analytics.WeeklyAnalytics, userName string) string {
	var sections []string
	for _, cat := range storyCategories {
		if s := e.Section(cat, a, userName); s != "" {
			sections = append(sections, s)
		}
	}
	sections = append(sections, fmt.Sprintf(
		"That's your week, %s. Keep logging; next week's story is yours to shape.", userName))
	return strings.Join(sections, "\n\n")
}

// Section renders one category: filter the catalog to templates whose
// condition holds, then make a weighted draw among them.
func (e *Engine) Section(cat Category, a *analytics.WeeklyAnalytics, userName string) string {
	var candidates []Template
	for _, t := range e.catalog {
		if t.Category == cat && t.Condition(a) {
			candidates = append(candidates, t)
		}
	}
	if len(candidates) == 0 {
		return ""
	}
	return e.selectWeighted(candidates).Render(a, userName)
}

// selectWeighted draws a template with probability proportional to weight,
// walking candidates in catalog order. The first-candidate fallback guards
// against float subtraction leaving a sliver of the draw unassigned.
func (e *Engine) selectWeighted(candidates []Template) Template {
	var total float64
	for _, t := range candidates {
		total += t.effectiveWeight()
	}

	remainder := e.rng.Float64() * total
	for _, t := range candidates {
		remainder -= t.effectiveWeight()
		if remainder <= 0 {
			return t
		}
	}
	return candidates[0]
}
