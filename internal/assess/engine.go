package assess

import (
	"fmt"

	"compass/internal/catalog"
)

// Engine scores assessment attempts against one validated catalogue. It is
// stateless and re-entrant: every Score call takes a complete response set
// and returns a fresh result. Callers serialize recomputation per attempt
// themselves, since recomputation replaces prior derived results.
type Engine struct {
	cat *catalog.Catalog
}

// New builds an engine around a catalogue, validating it first. Catalogue
// problems are configuration errors and surface here, at construction,
// never during a scoring call.
func New(cat *catalog.Catalog) (*Engine, error) {
	if cat == nil {
		return nil, fmt.Errorf("nil catalogue")
	}
	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("catalogue rejected: %w", err)
	}
	return &Engine{cat: cat}, nil
}

// Catalog returns the engine's catalogue (read-only by convention).
func (e *Engine) Catalog() *catalog.Catalog { return e.cat }

// Score runs the full pipeline for one attempt: item normalization,
// dimension/territory/index aggregation, quality detection, archetype
// classification, mirror-gap analysis and priority selection. Input errors
// (a response naming an unknown item, a raw value out of range) fail the
// attempt explicitly; incomplete data degrades to the documented
// lower-confidence states instead.
func (e *Engine) Score(input Input) (*Result, error) {
	if len(input.Responses) == 0 {
		return nil, fmt.Errorf("attempt has no responses")
	}

	dims, err := scoreDimensions(e.cat, input.Responses)
	if err != nil {
		return nil, err
	}
	quality := detectQuality(e.cat, input.Responses)
	terrs := scoreTerritories(e.cat, dims)

	result := &Result{
		CatalogVersion: e.cat.Version,
		Dimensions:     dims,
		Territories:    terrs,
		Index:          scoreIndex(e.cat, dims, terrs, stagesSeen(e.cat, input.Responses)),
		Archetypes:     classifyArchetypes(e.cat, dims, quality.IMFlag),
		Flags:          quality.Flags,
	}

	if len(input.RaterResponses) > 0 {
		gaps, err := classifyGaps(e.cat, dims, input.RaterResponses)
		if err != nil {
			return nil, err
		}
		result.Gaps = gaps
		result.BlindSpot = blindSpotIndex(e.cat, gaps)
	}

	result.Priorities = selectPriorities(e.cat, dims, result.Gaps)
	return result, nil
}
