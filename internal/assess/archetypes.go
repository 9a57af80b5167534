package assess

import (
	"sort"

	"compass/internal/catalog"
)

// classifyArchetypes walks the signature catalogue in order and evaluates
// the uniform threshold predicate against the scored profile. Adding a
// thirteenth archetype is a catalogue edit, not a code change.
//
// A full match clears every listed high and low condition; a partial match
// clears a majority. The one IM-flag signature bypasses threshold logic:
// when the flag is set it matches forced at full strength and sorts ahead
// of every threshold match. Zero matches is a valid outcome.
func classifyArchetypes(cat *catalog.Catalog, dims []DimensionScore, imFlag bool) []ArchetypeMatch {
	byDim := make(map[string]DimensionScore, len(dims))
	for _, d := range dims {
		byDim[d.DimensionID] = d
	}
	t := cat.Thresholds

	type candidate struct {
		match    ArchetypeMatch
		catOrder int
	}
	var candidates []candidate

	for i, sig := range cat.Signatures {
		if sig.IMFlag {
			if imFlag {
				candidates = append(candidates, candidate{
					match:    ArchetypeMatch{Name: sig.Name, Kind: MatchFull, Strength: 1, Forced: true},
					catOrder: i,
				})
			}
			continue
		}

		total := len(sig.High) + len(sig.Low)
		cleared := 0
		for _, id := range sig.High {
			if d, ok := byDim[id]; ok && d.Confidence != ConfidenceMissing && d.Percentage >= t.ArchetypeHighPct {
				cleared++
			}
		}
		for _, id := range sig.Low {
			if d, ok := byDim[id]; ok && d.Confidence != ConfidenceMissing && d.Percentage <= t.ArchetypeLowPct {
				cleared++
			}
		}

		var kind MatchKind
		switch {
		case cleared == total:
			kind = MatchFull
		case cleared*2 > total: // most, not all
			kind = MatchPartial
		default:
			continue
		}

		candidates = append(candidates, candidate{
			match: ArchetypeMatch{
				Name:         sig.Name,
				Kind:         kind,
				Strength:     float64(cleared) / float64(total),
				SJTConfirmed: tendencyConfirmed(cat, byDim, sig),
			},
			catOrder: i,
		})
	}

	// forced first, then strength descending; catalogue order breaks ties
	// so repeated runs over the same profile rank identically
	sort.SliceStable(candidates, func(a, b int) bool {
		ca, cb := candidates[a], candidates[b]
		if ca.match.Forced != cb.match.Forced {
			return ca.match.Forced
		}
		if ca.match.Strength != cb.match.Strength {
			return ca.match.Strength > cb.match.Strength
		}
		return ca.catOrder < cb.catOrder
	})

	matches := make([]ArchetypeMatch, 0, len(candidates))
	for i, c := range candidates {
		c.match.Rank = i + 1
		matches = append(matches, c.match)
	}
	return matches
}

// tendencyConfirmed checks whether situational-judgment data backs the
// signature's expected tendency: the named dimension's SJT component is
// present and at or above the high threshold. Descriptive only; it never
// changes the match decision.
func tendencyConfirmed(cat *catalog.Catalog, byDim map[string]DimensionScore, sig catalog.Signature) bool {
	if sig.Tendency == "" {
		return false
	}
	d, ok := byDim[sig.Tendency]
	if !ok || !d.SJT.Present {
		return false
	}
	return d.SJT.Value*100 >= float64(cat.Thresholds.ArchetypeHighPct)
}
