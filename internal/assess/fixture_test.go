package assess

import (
	"math"
	"testing"

	"compass/internal/catalog"
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// testCatalog is a reduced fixture: one territory, three dimensions, three
// signatures. Per dimension: two behavioral items (one reverse), one
// situational-judgment item, one mirror item.
func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c := &catalog.Catalog{
		Version:     "test-1",
		Territories: []catalog.Territory{{ID: "t1", Name: "Core"}},
		Dimensions: []catalog.Dimension{
			{ID: "d1", Name: "Dim One", Territory: "t1"},
			{ID: "d2", Name: "Dim Two", Territory: "t1"},
			{ID: "d3", Name: "Dim Three", Territory: "t1"},
		},
		Items: []catalog.Item{
			{ID: "d1-b1", Kind: catalog.KindBehavioral, Dimension: "d1", Direction: catalog.Forward, Stage: 1},
			{ID: "d1-b2", Kind: catalog.KindBehavioral, Dimension: "d1", Direction: catalog.Reverse, Stage: 1},
			{ID: "d1-sj", Kind: catalog.KindSituational, Dimension: "d1", Stage: 1},
			{ID: "d1-m", Kind: catalog.KindMirror, Dimension: "d1", Stage: 1},
			{ID: "d2-b1", Kind: catalog.KindBehavioral, Dimension: "d2", Direction: catalog.Forward, Stage: 2},
			{ID: "d2-b2", Kind: catalog.KindBehavioral, Dimension: "d2", Direction: catalog.Reverse, Stage: 2},
			{ID: "d2-sj", Kind: catalog.KindSituational, Dimension: "d2", Stage: 2},
			{ID: "d2-m", Kind: catalog.KindMirror, Dimension: "d2", Stage: 2},
			{ID: "d3-b1", Kind: catalog.KindBehavioral, Dimension: "d3", Direction: catalog.Forward, Stage: 3},
			{ID: "d3-b2", Kind: catalog.KindBehavioral, Dimension: "d3", Direction: catalog.Reverse, Stage: 3},
			{ID: "d3-sj", Kind: catalog.KindSituational, Dimension: "d3", Stage: 3},
			{ID: "d3-m", Kind: catalog.KindMirror, Dimension: "d3", Stage: 3},
			{ID: "im-1", Kind: catalog.KindImpression, Direction: catalog.Forward, Stage: 1},
			{ID: "im-2", Kind: catalog.KindImpression, Direction: catalog.Reverse, Stage: 2},
		},
		Signatures: []catalog.Signature{
			{Name: "Spike", High: []string{"d1"}, Low: []string{"d2"}, Tendency: "d1"},
			{Name: "Breadth", High: []string{"d1", "d2", "d3"}},
			{Name: "Masked", IMFlag: true},
		},
		Thresholds: catalog.Thresholds{
			SJTWeight:         0.25,
			ArchetypeHighPct:  70,
			ArchetypeLowPct:   40,
			IMFlagMin:         2,
			IMEndorseHigh:     4,
			IMEndorseLow:      2,
			MinItemMS:         1000,
			SessionMinMS:      10_000,
			SessionMaxMS:      100_000,
			StageOutlierRatio: 3,
			PriorityGapBoost:  map[string]int{"negligible": 0, "moderate": 5, "significant": 15, "critical": 25},
		},
		Labels: catalog.LabelTables{
			Dimension: []catalog.LabelBand{
				{Max: 20, Label: "Critical gap"},
				{Max: 40, Label: "Early development"},
				{Max: 60, Label: "Building"},
				{Max: 80, Label: "Strong"},
				{Max: 100, Label: "Mastery"},
			},
			GapSeverity: []catalog.SeverityBand{
				{MaxAbs: 10, Severity: "negligible"},
				{MaxAbs: 20, Severity: "moderate"},
				{MaxAbs: 35, Severity: "significant"},
				{MaxAbs: 100, Severity: "critical"},
			},
			BlindSpot: []catalog.LabelBand{
				{Max: 8, Label: "Aligned self-view"},
				{Max: 18, Label: "Mild distortion"},
				{Max: 100, Label: "Severe perception gap"},
			},
		},
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("test catalogue invalid: %v", err)
	}
	return c
}

func testEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := New(testCatalog(t))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

// fullResponses answers every behavioral and situational item of the
// fixture with the given raw values.
func fullResponses(behavioral, sjt int) []Response {
	var rs []Response
	for _, dim := range []string{"d1", "d2", "d3"} {
		rs = append(rs,
			Response{ItemID: dim + "-b1", Raw: behavioral},
			Response{ItemID: dim + "-b2", Raw: behavioral},
			Response{ItemID: dim + "-sj", Raw: sjt},
		)
	}
	return rs
}

func dimByID(t *testing.T, dims []DimensionScore, id string) DimensionScore {
	t.Helper()
	for _, d := range dims {
		if d.DimensionID == id {
			return d
		}
	}
	t.Fatalf("dimension %q not in scores", id)
	return DimensionScore{}
}
