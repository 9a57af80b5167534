package assess

import (
	"fmt"
	"math"

	"compass/internal/catalog"
)

// classifyGaps compares the rater's perception against the subject's
// self-score, one gap per rated dimension, in catalogue order. Rater
// responses must reference mirror items; the raw 1-5 rating rescales onto
// the same percentage basis as behavioral items. Dimensions the subject has
// not scored are skipped; missing self-data is an incomplete-data state,
// not an error.
func classifyGaps(cat *catalog.Catalog, dims []DimensionScore, rater []Response) ([]MirrorGap, error) {
	byDim := make(map[string]DimensionScore, len(dims))
	for _, d := range dims {
		byDim[d.DimensionID] = d
	}

	raterPct := make(map[string]int)
	for _, r := range dedupe(rater) {
		item := cat.ItemByID(r.ItemID)
		if item == nil {
			return nil, fmt.Errorf("rater response references unknown item %q", r.ItemID)
		}
		if item.Kind != catalog.KindMirror {
			return nil, fmt.Errorf("rater response %q references a %s item, want mirror", r.ItemID, item.Kind)
		}
		if r.Raw < 1 || r.Raw > 5 {
			return nil, fmt.Errorf("item %s: raw value %d out of 1-5", item.ID, r.Raw)
		}
		raterPct[item.Dimension] = (r.Raw - 1) * 100 / 4
	}

	var gaps []MirrorGap
	for _, d := range cat.Dimensions {
		rp, rated := raterPct[d.ID]
		self, scored := byDim[d.ID]
		if !rated || !scored || self.Confidence == ConfidenceMissing {
			continue
		}
		gap := self.Percentage - rp
		severity := cat.SeverityFor(abs(gap))
		gaps = append(gaps, MirrorGap{
			DimensionID: d.ID,
			SelfPct:     self.Percentage,
			RaterPct:    rp,
			Gap:         gap,
			Severity:    severity,
			Label:       gapLabel(gap, severity),
		})
	}
	return gaps, nil
}

// gapLabel words the direction and magnitude of one gap.
func gapLabel(gap int, severity string) string {
	if gap == 0 {
		return "You and your rater see this the same way"
	}
	direction := "higher"
	if gap < 0 {
		direction = "lower"
	}
	switch severity {
	case "negligible":
		return fmt.Sprintf("You rate yourself slightly %s than your rater", direction)
	case "moderate":
		return fmt.Sprintf("You rate yourself somewhat %s than your rater", direction)
	case "significant":
		return fmt.Sprintf("You rate yourself notably %s than your rater", direction)
	default:
		return fmt.Sprintf("You rate yourself far %s than your rater", direction)
	}
}

// blindSpotIndex aggregates all gaps into the undirected magnitude and the
// directional variant. Recomputed whole whenever the gap set changes, never
// averaged with a prior index.
func blindSpotIndex(cat *catalog.Catalog, gaps []MirrorGap) *BlindSpotIndex {
	if len(gaps) == 0 {
		return nil
	}
	var absSum, signedSum float64
	for _, g := range gaps {
		absSum += math.Abs(float64(g.Gap))
		signedSum += float64(g.Gap)
	}
	magnitude := absSum / float64(len(gaps))
	return &BlindSpotIndex{
		Magnitude:   magnitude,
		Directional: signedSum / float64(len(gaps)),
		Label:       cat.BlindSpotLabelFor(magnitude),
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
