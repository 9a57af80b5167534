// Package assess implements the assessment scoring and classification
// engine: item normalization, dimension/territory/index aggregation,
// response-quality detection, archetype matching, priority selection and
// mirror-gap analysis. The engine is pure computation over immutable inputs
// and a validated catalogue; it performs no I/O and holds no state between
// calls, so it is safe to invoke concurrently for different attempts.
package assess

// Response is one answered item as received from the caller: a raw value
// (Likert 1-5 or situational maturity tier 1-4), the answer latency and the
// collection stage. Later responses for the same item replace earlier ones.
// Stage is optional; when set it must agree with the catalogue's stage
// assignment for the item, and a mismatch fails the attempt.
type Response struct {
	ItemID    string `json:"item" yaml:"item"`
	Raw       int    `json:"value" yaml:"value"`
	LatencyMS int64  `json:"latency_ms,omitempty" yaml:"latency_ms,omitempty"`
	Stage     int    `json:"stage,omitempty" yaml:"stage,omitempty"`
}

// Confidence reports how much of a dimension's evidence was present when it
// was scored. Every downstream consumer must handle all three states.
type Confidence string

const (
	// ConfidenceFull: behavioral items plus the situational-judgment item.
	ConfidenceFull Confidence = "full"
	// ConfidencePartial: behavioral mean only, situational-judgment missing.
	ConfidencePartial Confidence = "partial"
	// ConfidenceMissing: no behavioral responses at all; the composite is
	// zero and carries no signal.
	ConfidenceMissing Confidence = "missing"
)

// Component is the situational-judgment part of a dimension score as an
// explicit presence-tagged value rather than a nullable field.
type Component struct {
	Present bool    `json:"present"`
	Value   float64 `json:"value,omitempty"`
}

// DimensionScore is the composite for one capability dimension.
type DimensionScore struct {
	DimensionID string     `json:"dimension"`
	Behavioral  float64    `json:"behavioral"` // mean of normalized behavioral items, 0-1
	SJT         Component  `json:"sjt"`        // rescaled situational-judgment tier, 0-1
	Composite   float64    `json:"composite"`  // weighted blend, 0-1
	Percentage  int        `json:"percentage"` // round(composite*100), clamped to [0,100]
	Label       string     `json:"label"`
	Confidence  Confidence `json:"confidence"`
}

// TerritoryScore aggregates the five dimensions of one territory.
type TerritoryScore struct {
	TerritoryID string  `json:"territory"`
	Percentage  float64 `json:"percentage"`
	Label       string  `json:"label"`
}

// IndexScore is the global leadership maturity index (CLMI). It exists only
// once a full three-stage response set has been scored.
type IndexScore struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

// MatchKind distinguishes full and partial archetype matches.
type MatchKind string

const (
	MatchFull    MatchKind = "full"
	MatchPartial MatchKind = "partial"
)

// ArchetypeMatch is one signature that matched the scored profile. Forced
// marks the impression-management response-style match, which bypasses the
// threshold logic entirely and always outranks threshold matches.
type ArchetypeMatch struct {
	Name         string    `json:"name"`
	Kind         MatchKind `json:"kind"`
	Strength     float64   `json:"strength"` // cleared conditions / total conditions
	SJTConfirmed bool      `json:"sjt_confirmed,omitempty"`
	Forced       bool      `json:"forced,omitempty"`
	Rank         int       `json:"rank"`
}

// FlagKind enumerates the advisory quality flags.
type FlagKind string

const (
	FlagImpressionManagement FlagKind = "impression-management"
	FlagTooFast              FlagKind = "too-fast"
	FlagOutlierStage         FlagKind = "outlier-stage"
	FlagTooShortTotal        FlagKind = "too-short-total"
	FlagTooLongTotal         FlagKind = "too-long-total"
)

// QualityFlag annotates a data-quality concern. Flags never reject or alter
// a computed score; they ride alongside the results as caveats.
type QualityFlag struct {
	Kind     FlagKind `json:"kind"`
	ItemID   string   `json:"item,omitempty"`
	Stage    int      `json:"stage,omitempty"`
	Observed int64    `json:"observed"`
	Limit    int64    `json:"limit"`
}

// MirrorGap compares a rater's perception of one dimension against the
// subject's self-score. Gap is signed: self minus rater.
type MirrorGap struct {
	DimensionID string `json:"dimension"`
	SelfPct     int    `json:"self_pct"`
	RaterPct    int    `json:"rater_pct"`
	Gap         int    `json:"gap"`
	Label       string `json:"label"`
	Severity    string `json:"severity"`
}

// BlindSpotIndex summarizes all mirror gaps for one attempt. Magnitude is
// the undirected mean of absolute gaps; Directional is the mean signed gap
// (positive = the subject systematically rates itself higher than the
// rater does).
type BlindSpotIndex struct {
	Magnitude   float64 `json:"magnitude"`
	Directional float64 `json:"directional"`
	Label       string  `json:"label"`
}

// Input is one complete assessment attempt: the subject's responses and,
// optionally, a rater's mirror responses.
type Input struct {
	Responses      []Response `json:"responses" yaml:"responses"`
	RaterResponses []Response `json:"rater,omitempty" yaml:"rater,omitempty"`
}

// Result is the full engine output for one attempt. Index is nil until all
// dimensions score across all three stages; Gaps and BlindSpot are nil
// without rater data. Both absences are states, not errors.
type Result struct {
	CatalogVersion string           `json:"catalog_version"`
	Dimensions     []DimensionScore `json:"dimensions"`
	Territories    []TerritoryScore `json:"territories"`
	Index          *IndexScore      `json:"index,omitempty"`
	Archetypes     []ArchetypeMatch `json:"archetypes"`
	Priorities     []string         `json:"priorities"`
	Flags          []QualityFlag    `json:"flags,omitempty"`
	Gaps           []MirrorGap      `json:"gaps,omitempty"`
	BlindSpot      *BlindSpotIndex  `json:"blind_spot,omitempty"`
}
