package assess

import (
	"fmt"
	"math"

	"compass/internal/catalog"
)

// dedupe applies last-write-wins per item id, preserving the order in which
// item ids first appear. Partial saves across the three stages resend
// earlier answers; only the latest one counts.
func dedupe(responses []Response) []Response {
	index := make(map[string]int, len(responses))
	out := make([]Response, 0, len(responses))
	for _, r := range responses {
		if i, ok := index[r.ItemID]; ok {
			out[i] = r
			continue
		}
		index[r.ItemID] = len(out)
		out = append(out, r)
	}
	return out
}

// scoreDimensions recomputes every dimension score from the full response
// set. Scores are never patched incrementally: recomputation from scratch is
// what keeps partial saves across stages from drifting.
//
// A response referencing an item the catalogue does not know is an input
// error and fails the attempt; silently dropping it would corrupt the
// owning dimension's mean without any visible signal.
func scoreDimensions(cat *catalog.Catalog, responses []Response) ([]DimensionScore, error) {
	behavioral := make(map[string][]float64)
	sjt := make(map[string]float64)
	sjtSeen := make(map[string]bool)

	for _, r := range dedupe(responses) {
		item := cat.ItemByID(r.ItemID)
		if item == nil {
			return nil, fmt.Errorf("response references unknown item %q", r.ItemID)
		}
		if r.Stage != 0 && r.Stage != item.Stage {
			return nil, fmt.Errorf("response for item %q declares stage %d, catalogue assigns stage %d", r.ItemID, r.Stage, item.Stage)
		}
		switch item.Kind {
		case catalog.KindImpression:
			// quality-detector input only, never blended into composites,
			// but the raw range is enforced here like any other item
			if _, err := scoreItem(cat.Thresholds, item, r.Raw); err != nil {
				return nil, err
			}
			continue
		case catalog.KindMirror:
			return nil, fmt.Errorf("mirror item %q in self responses; rater responses are a separate input", r.ItemID)
		}
		v, err := scoreItem(cat.Thresholds, item, r.Raw)
		if err != nil {
			return nil, err
		}
		switch item.Kind {
		case catalog.KindBehavioral:
			behavioral[item.Dimension] = append(behavioral[item.Dimension], v)
		case catalog.KindSituational:
			sjt[item.Dimension] = v
			sjtSeen[item.Dimension] = true
		}
	}

	w := cat.Thresholds.SJTWeight
	scores := make([]DimensionScore, 0, len(cat.Dimensions))
	for _, d := range cat.Dimensions {
		ds := DimensionScore{DimensionID: d.ID, Confidence: ConfidenceMissing}
		if vals := behavioral[d.ID]; len(vals) > 0 {
			ds.Behavioral = mean(vals)
			ds.Composite = ds.Behavioral
			ds.Confidence = ConfidencePartial
			if sjtSeen[d.ID] {
				ds.SJT = Component{Present: true, Value: sjt[d.ID]}
				ds.Composite = (1-w)*ds.Behavioral + w*ds.SJT.Value
				ds.Confidence = ConfidenceFull
			}
		}
		ds.Percentage = clampPct(math.Round(ds.Composite * 100))
		ds.Label = cat.LabelFor(ds.Percentage)
		scores = append(scores, ds)
	}
	return scores, nil
}

// stagesSeen reports which of the three collection stages appear in the
// response set, using the catalogue's per-item stage assignment.
func stagesSeen(cat *catalog.Catalog, responses []Response) map[int]bool {
	seen := make(map[int]bool, 3)
	for _, r := range responses {
		if item := cat.ItemByID(r.ItemID); item != nil {
			seen[item.Stage] = true
		}
	}
	return seen
}

func clampPct(v float64) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return int(v)
}

func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}
