package assess

import (
	"math"

	"compass/internal/catalog"
)

// scoreTerritories rolls each territory's five dimension percentages into
// one unweighted mean. The headline numbers stay legible as "average
// capability", with no dimension dominating.
func scoreTerritories(cat *catalog.Catalog, dims []DimensionScore) []TerritoryScore {
	byDim := make(map[string]DimensionScore, len(dims))
	for _, d := range dims {
		byDim[d.DimensionID] = d
	}

	scores := make([]TerritoryScore, 0, len(cat.Territories))
	for _, t := range cat.Territories {
		var vals []float64
		for _, id := range cat.DimensionsOf(t.ID) {
			vals = append(vals, float64(byDim[id].Percentage))
		}
		pct := mean(vals)
		scores = append(scores, TerritoryScore{
			TerritoryID: t.ID,
			Percentage:  pct,
			// band lookup rounds the fractional mean the same way
			// dimension percentages round before labeling
			Label: cat.LabelFor(clampPct(math.Round(pct))),
		})
	}
	return scores
}

// scoreIndex computes the CLMI as the unweighted mean of the territory
// scores. It returns nil unless the attempt is complete: every dimension
// scored and all three stages present. An absent index is a state the
// caller renders as "in progress", not an error.
func scoreIndex(cat *catalog.Catalog, dims []DimensionScore, terrs []TerritoryScore, stages map[int]bool) *IndexScore {
	for _, d := range dims {
		if d.Confidence == ConfidenceMissing {
			return nil
		}
	}
	for s := 1; s <= 3; s++ {
		if !stages[s] {
			return nil
		}
	}
	var vals []float64
	for _, t := range terrs {
		vals = append(vals, t.Percentage)
	}
	v := mean(vals)
	return &IndexScore{Value: v, Label: cat.LabelFor(clampPct(math.Round(v)))}
}
