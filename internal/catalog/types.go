// Package catalog holds the static assessment configuration: the item bank,
// the dimension/territory taxonomy, the archetype signature catalogue, the
// verbal-label tables and every numeric threshold the engine consumes.
// Catalogues are versioned inputs: they are loaded, validated once, and never
// mutated at runtime.
package catalog

// ItemKind distinguishes how a raw response to an item is scored.
type ItemKind string

const (
	KindBehavioral  ItemKind = "behavioral"  // Likert 1-5, forward or reverse
	KindSituational ItemKind = "situational" // scenario option mapped to a maturity tier 1-4
	KindImpression  ItemKind = "impression"  // social-desirability marker, binary scoring
	KindMirror      ItemKind = "mirror"      // rater-side Likert 1-5 for one dimension
)

// Direction is the scoring direction of a behavioral or impression item.
// The per-item flag is the single source of truth; there is no positional
// rule for which items in a dimension are reverse-scored.
type Direction string

const (
	Forward Direction = "forward"
	Reverse Direction = "reverse"
)

// Item is one atomic question in the bank.
type Item struct {
	ID        string    `json:"id" yaml:"id"`
	Kind      ItemKind  `json:"kind" yaml:"kind"`
	Dimension string    `json:"dimension,omitempty" yaml:"dimension,omitempty"` // empty for impression items
	Direction Direction `json:"direction,omitempty" yaml:"direction,omitempty"` // behavioral and impression items only
	Stage     int       `json:"stage" yaml:"stage"`                             // 1-3, collection stage
}

// Dimension is one of the scored leadership capabilities.
type Dimension struct {
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	Territory string `json:"territory" yaml:"territory"`
}

// Territory groups dimensions; the shipped catalogue has three territories
// of five dimensions each, partitioning the fifteen dimensions.
type Territory struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Signature is one archetype catalogue entry. High and Low list dimension
// ids expected to score above / below the archetype thresholds. A signature
// with IMFlag set has no dimension conditions and matches purely on the
// impression-management flag (a response style, not a behavioral pattern).
// Tendency names the dimension whose situational-judgment answer, when
// strong, confirms the archetype; it is descriptive metadata and never part
// of the match decision.
type Signature struct {
	Name     string   `json:"name" yaml:"name"`
	High     []string `json:"high,omitempty" yaml:"high,omitempty"`
	Low      []string `json:"low,omitempty" yaml:"low,omitempty"`
	IMFlag   bool     `json:"im_flag,omitempty" yaml:"im_flag,omitempty"`
	Tendency string   `json:"tendency,omitempty" yaml:"tendency,omitempty"`
}

// LabelBand maps a score percentage to a verbal label. Bands are ordered
// ascending by Max; the first band whose Max is >= the score wins.
type LabelBand struct {
	Max   int    `json:"max" yaml:"max"`
	Label string `json:"label" yaml:"label"`
}

// SeverityBand maps an absolute mirror-gap magnitude to a severity tier.
type SeverityBand struct {
	MaxAbs   int    `json:"max_abs" yaml:"max_abs"`
	Severity string `json:"severity" yaml:"severity"`
}

// Thresholds collects every tunable number the engine uses. Changing any of
// these changes results for all future scoring, so they live in the
// catalogue and are validated, never defaulted in code.
type Thresholds struct {
	SJTWeight float64 `json:"sjt_weight" yaml:"sjt_weight"` // situational-judgment share of the dimension composite

	ArchetypeHighPct int `json:"archetype_high_pct" yaml:"archetype_high_pct"` // "high" condition: percentage at or above
	ArchetypeLowPct  int `json:"archetype_low_pct" yaml:"archetype_low_pct"`   // "low" condition: percentage at or below

	IMFlagMin     int `json:"im_flag_min" yaml:"im_flag_min"`         // endorsed IM items at or above this count set the flag
	IMEndorseHigh int `json:"im_endorse_high" yaml:"im_endorse_high"` // forward IM item endorses at raw >= this
	IMEndorseLow  int `json:"im_endorse_low" yaml:"im_endorse_low"`   // reverse IM item endorses at raw <= this

	MinItemMS         int64   `json:"min_item_ms" yaml:"min_item_ms"`                 // per-item plausibility floor
	SessionMinMS      int64   `json:"session_min_ms" yaml:"session_min_ms"`           // total-session plausibility band
	SessionMaxMS      int64   `json:"session_max_ms" yaml:"session_max_ms"`
	StageOutlierRatio float64 `json:"stage_outlier_ratio" yaml:"stage_outlier_ratio"` // stage total vs mean of the other two

	PriorityGapBoost map[string]int `json:"priority_gap_boost" yaml:"priority_gap_boost"` // severity tier -> rank-key reduction
}

// LabelTables holds the three distinct verbal mapping tables. The dimension
// table also labels territories and the index; the blind-spot table is its
// own scale and must never be substituted for the dimension table.
type LabelTables struct {
	Dimension   []LabelBand    `json:"dimension" yaml:"dimension"`
	GapSeverity []SeverityBand `json:"gap_severity" yaml:"gap_severity"`
	BlindSpot   []LabelBand    `json:"blind_spot" yaml:"blind_spot"`
}

// Catalog is the complete static configuration for one assessment version.
type Catalog struct {
	Version     string      `json:"version" yaml:"version"`
	Territories []Territory `json:"territories" yaml:"territories"`
	Dimensions  []Dimension `json:"dimensions" yaml:"dimensions"`
	Items       []Item      `json:"items" yaml:"items"`
	Signatures  []Signature `json:"signatures" yaml:"signatures"`
	Thresholds  Thresholds  `json:"thresholds" yaml:"thresholds"`
	Labels      LabelTables `json:"labels" yaml:"labels"`

	itemIndex map[string]*Item
	dimIndex  map[string]*Dimension
}

// ItemByID returns the item with the given id, or nil.
func (c *Catalog) ItemByID(id string) *Item {
	return c.itemIndex[id]
}

// DimensionByID returns the dimension with the given id, or nil.
func (c *Catalog) DimensionByID(id string) *Dimension {
	return c.dimIndex[id]
}

// DimensionsOf returns the dimension ids belonging to a territory, in
// catalogue order.
func (c *Catalog) DimensionsOf(territory string) []string {
	var ids []string
	for _, d := range c.Dimensions {
		if d.Territory == territory {
			ids = append(ids, d.ID)
		}
	}
	return ids
}

// LabelFor maps a 0-100 percentage to its dimension-scale verbal label.
func (c *Catalog) LabelFor(pct int) string {
	return bandLabel(c.Labels.Dimension, pct)
}

// BlindSpotLabelFor maps a blind-spot magnitude to its own verbal label.
func (c *Catalog) BlindSpotLabelFor(magnitude float64) string {
	for _, b := range c.Labels.BlindSpot {
		if magnitude <= float64(b.Max) {
			return b.Label
		}
	}
	return c.Labels.BlindSpot[len(c.Labels.BlindSpot)-1].Label
}

// SeverityFor maps an absolute gap percentage to its severity tier.
func (c *Catalog) SeverityFor(absGap int) string {
	for _, b := range c.Labels.GapSeverity {
		if absGap <= b.MaxAbs {
			return b.Severity
		}
	}
	return c.Labels.GapSeverity[len(c.Labels.GapSeverity)-1].Severity
}

func bandLabel(bands []LabelBand, score int) string {
	for _, b := range bands {
		if score <= b.Max {
			return b.Label
		}
	}
	// unreachable for validated tables: scores are clamped to 0-100 upstream
	// and validation requires the last band to cover 100
	return bands[len(bands)-1].Label
}

func (c *Catalog) buildIndexes() {
	c.itemIndex = make(map[string]*Item, len(c.Items))
	for i := range c.Items {
		c.itemIndex[c.Items[i].ID] = &c.Items[i]
	}
	c.dimIndex = make(map[string]*Dimension, len(c.Dimensions))
	for i := range c.Dimensions {
		c.dimIndex[c.Dimensions[i].ID] = &c.Dimensions[i]
	}
}
