package catalog

import (
	"strings"
	"testing"
)

// minimalCatalog returns the smallest valid catalogue: one territory, two
// dimensions, one signature. Reduced fixtures like this are the point of
// constructor-injected configuration.
func minimalCatalog() *Catalog {
	c := &Catalog{
		Version:     "test",
		Territories: []Territory{{ID: "t1", Name: "Territory One"}},
		Dimensions: []Dimension{
			{ID: "d1", Name: "Dim One", Territory: "t1"},
			{ID: "d2", Name: "Dim Two", Territory: "t1"},
		},
		Items: []Item{
			{ID: "d1-b1", Kind: KindBehavioral, Dimension: "d1", Direction: Forward, Stage: 1},
			{ID: "d1-b2", Kind: KindBehavioral, Dimension: "d1", Direction: Reverse, Stage: 1},
			{ID: "d1-sj", Kind: KindSituational, Dimension: "d1", Stage: 1},
			{ID: "d1-m", Kind: KindMirror, Dimension: "d1", Stage: 1},
			{ID: "d2-b1", Kind: KindBehavioral, Dimension: "d2", Direction: Forward, Stage: 2},
			{ID: "im-1", Kind: KindImpression, Direction: Forward, Stage: 1},
		},
		Signatures: []Signature{
			{Name: "Sig", High: []string{"d1"}, Low: []string{"d2"}},
		},
		Thresholds: Thresholds{
			SJTWeight:         0.3,
			ArchetypeHighPct:  70,
			ArchetypeLowPct:   40,
			IMFlagMin:         1,
			IMEndorseHigh:     4,
			IMEndorseLow:      2,
			MinItemMS:         800,
			SessionMinMS:      1000,
			SessionMaxMS:      100000,
			StageOutlierRatio: 3,
			PriorityGapBoost:  map[string]int{"negligible": 0, "critical": 25},
		},
		Labels: LabelTables{
			Dimension:   []LabelBand{{Max: 50, Label: "Low"}, {Max: 100, Label: "High"}},
			GapSeverity: []SeverityBand{{MaxAbs: 20, Severity: "negligible"}, {MaxAbs: 100, Severity: "critical"}},
			BlindSpot:   []LabelBand{{Max: 100, Label: "Any"}},
		},
	}
	c.buildIndexes()
	return c
}

func TestValidateMinimalCatalog(t *testing.T) {
	if err := minimalCatalog().Validate(); err != nil {
		t.Fatalf("minimal catalogue should validate: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Catalog)
		wantErr string
	}{
		{
			name:    "unknown item dimension",
			mutate:  func(c *Catalog) { c.Items[0].Dimension = "ghost" },
			wantErr: "unknown dimension",
		},
		{
			name:    "unknown signature high dimension",
			mutate:  func(c *Catalog) { c.Signatures[0].High = []string{"ghost"} },
			wantErr: `signature "Sig" references unknown dimension`,
		},
		{
			name:    "unknown signature low dimension",
			mutate:  func(c *Catalog) { c.Signatures[0].Low = []string{"ghost"} },
			wantErr: "low set",
		},
		{
			name:    "unknown tendency dimension",
			mutate:  func(c *Catalog) { c.Signatures[0].Tendency = "ghost" },
			wantErr: "tendency",
		},
		{
			name:    "unknown territory",
			mutate:  func(c *Catalog) { c.Dimensions[0].Territory = "ghost" },
			wantErr: "unknown territory",
		},
		{
			name:    "duplicate item id",
			mutate:  func(c *Catalog) { c.Items[1].ID = c.Items[0].ID },
			wantErr: "duplicate item",
		},
		{
			name: "impression item with dimension",
			mutate: func(c *Catalog) {
				for i := range c.Items {
					if c.Items[i].Kind == KindImpression {
						c.Items[i].Dimension = "d1"
					}
				}
			},
			wantErr: "must not belong to a dimension",
		},
		{
			name:    "behavioral item without direction",
			mutate:  func(c *Catalog) { c.Items[0].Direction = "" },
			wantErr: "want forward or reverse",
		},
		{
			name: "dimension without behavioral items",
			mutate: func(c *Catalog) {
				c.Dimensions = append(c.Dimensions, Dimension{ID: "d3", Name: "Bare", Territory: "t1"})
			},
			wantErr: "no behavioral items",
		},
		{
			name: "two situational items in one dimension",
			mutate: func(c *Catalog) {
				c.Items = append(c.Items, Item{ID: "d1-sj2", Kind: KindSituational, Dimension: "d1", Stage: 1})
			},
			wantErr: "situational items",
		},
		{
			name: "IM signature with dimension conditions",
			mutate: func(c *Catalog) {
				c.Signatures = append(c.Signatures, Signature{Name: "Bad", IMFlag: true, High: []string{"d1"}})
			},
			wantErr: "must not carry dimension conditions",
		},
		{
			name: "signature with no conditions at all",
			mutate: func(c *Catalog) {
				c.Signatures = append(c.Signatures, Signature{Name: "Empty"})
			},
			wantErr: "no conditions",
		},
		{
			name:    "inverted archetype thresholds",
			mutate:  func(c *Catalog) { c.Thresholds.ArchetypeHighPct = 30 },
			wantErr: "must exceed",
		},
		{
			name:    "zero sjt weight is fine but negative is not",
			mutate:  func(c *Catalog) { c.Thresholds.SJTWeight = -0.1 },
			wantErr: "sjt_weight",
		},
		{
			name:    "label table not covering 100",
			mutate:  func(c *Catalog) { c.Labels.Dimension = []LabelBand{{Max: 60, Label: "Low"}} },
			wantErr: "must cover 100",
		},
		{
			name: "label bands out of order",
			mutate: func(c *Catalog) {
				c.Labels.Dimension = []LabelBand{{Max: 80, Label: "A"}, {Max: 40, Label: "B"}, {Max: 100, Label: "C"}}
			},
			wantErr: "not ascending",
		},
		{
			name:    "gap boost missing a severity tier",
			mutate:  func(c *Catalog) { delete(c.Thresholds.PriorityGapBoost, "critical") },
			wantErr: "priority_gap_boost missing",
		},
		{
			name:    "stage out of range",
			mutate:  func(c *Catalog) { c.Items[0].Stage = 4 },
			wantErr: "want 1-3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := minimalCatalog()
			tt.mutate(c)
			c.buildIndexes()
			err := c.Validate()
			if err == nil {
				t.Fatal("Validate should fail")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err, tt.wantErr)
			}
		})
	}
}
