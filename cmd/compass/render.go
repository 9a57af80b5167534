package main

import (
	"fmt"
	"strings"

	"compass/internal/assess"
)

// renderReport formats a scored attempt as a plain-text report.
func renderReport(r *assess.Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Assessment report (catalogue %s)\n", r.CatalogVersion)
	fmt.Fprintf(&b, "%s\n\n", strings.Repeat("=", 40))

	b.WriteString("Dimensions\n")
	for _, d := range r.Dimensions {
		switch d.Confidence {
		case assess.ConfidenceMissing:
			fmt.Fprintf(&b, "  %-22s      (no data)\n", d.DimensionID)
		case assess.ConfidencePartial:
			fmt.Fprintf(&b, "  %-22s %3d%%  %s (partial)\n", d.DimensionID, d.Percentage, d.Label)
		default:
			fmt.Fprintf(&b, "  %-22s %3d%%  %s\n", d.DimensionID, d.Percentage, d.Label)
		}
	}

	b.WriteString("\nTerritories\n")
	for _, t := range r.Territories {
		fmt.Fprintf(&b, "  %-22s %5.1f%%  %s\n", t.TerritoryID, t.Percentage, t.Label)
	}

	if r.Index != nil {
		fmt.Fprintf(&b, "\nLeadership maturity index: %.1f (%s)\n", r.Index.Value, r.Index.Label)
	} else {
		b.WriteString("\nLeadership maturity index: not available (incomplete attempt)\n")
	}

	if len(r.Archetypes) > 0 {
		b.WriteString("\nArchetype matches\n")
		for _, a := range r.Archetypes {
			detail := string(a.Kind)
			if a.Forced {
				detail = "response style"
			}
			fmt.Fprintf(&b, "  %d. %-24s %s (strength %.2f)", a.Rank, a.Name, detail, a.Strength)
			if a.SJTConfirmed {
				b.WriteString(" [tendency confirmed]")
			}
			b.WriteByte('\n')
		}
	}

	if len(r.Priorities) > 0 {
		b.WriteString("\nDevelopment priorities\n")
		for i, p := range r.Priorities {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, p)
		}
	}

	if len(r.Flags) > 0 {
		b.WriteString("\nQuality flags\n")
		for _, f := range r.Flags {
			fmt.Fprintf(&b, "  - %s", f.Kind)
			if f.ItemID != "" {
				fmt.Fprintf(&b, " item=%s", f.ItemID)
			}
			if f.Stage != 0 {
				fmt.Fprintf(&b, " stage=%d", f.Stage)
			}
			fmt.Fprintf(&b, " (observed %d, limit %d)\n", f.Observed, f.Limit)
		}
	}

	if len(r.Gaps) > 0 {
		b.WriteString("\nSelf/rater gaps\n")
		for _, g := range r.Gaps {
			fmt.Fprintf(&b, "  %-22s self %3d%% rater %3d%%  %+4d  %s (%s)\n",
				g.DimensionID, g.SelfPct, g.RaterPct, g.Gap, g.Label, g.Severity)
		}
	}
	if r.BlindSpot != nil {
		fmt.Fprintf(&b, "\nBlind-spot index: %.1f (%s), directional %+.1f\n",
			r.BlindSpot.Magnitude, r.BlindSpot.Label, r.BlindSpot.Directional)
	}

	return b.String()
}
