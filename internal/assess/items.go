package assess

import (
	"fmt"

	"compass/internal/catalog"
)

// scoreItem normalizes one raw response onto the common 0-1 scale.
//
// Behavioral items map the 1-5 Likert range linearly; reverse items are
// inverted here, before any aggregation, so uniformly low ratings cannot
// game a dimension. Situational-judgment raw values are maturity tiers 1-4
// rescaled onto the same range so the two blend. Impression items score
// binary: 1 when the response endorses the socially desirable extreme of
// the item's polarity, 0 otherwise.
func scoreItem(t catalog.Thresholds, item *catalog.Item, raw int) (float64, error) {
	switch item.Kind {
	case catalog.KindBehavioral, catalog.KindMirror:
		if raw < 1 || raw > 5 {
			return 0, fmt.Errorf("item %s: raw value %d out of 1-5", item.ID, raw)
		}
		if item.Direction == catalog.Reverse {
			return float64(5-raw) / 4, nil
		}
		return float64(raw-1) / 4, nil
	case catalog.KindSituational:
		if raw < 1 || raw > 4 {
			return 0, fmt.Errorf("item %s: maturity tier %d out of 1-4", item.ID, raw)
		}
		return float64(raw-1) / 3, nil
	case catalog.KindImpression:
		if raw < 1 || raw > 5 {
			return 0, fmt.Errorf("item %s: raw value %d out of 1-5", item.ID, raw)
		}
		endorsed := raw >= t.IMEndorseHigh
		if item.Direction == catalog.Reverse {
			endorsed = raw <= t.IMEndorseLow
		}
		if endorsed {
			return 1, nil
		}
		return 0, nil
	default:
		return 0, fmt.Errorf("item %s: unscorable kind %q", item.ID, item.Kind)
	}
}
