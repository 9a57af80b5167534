package catalog

import "fmt"

// Validate checks the catalogue's structural integrity. All violations are
// configuration errors: they must stop the engine at construction time, so
// that a bad catalogue can never silently skew a live scoring run.
func (c *Catalog) Validate() error {
	if c.Version == "" {
		return fmt.Errorf("catalogue version is empty")
	}
	if len(c.Territories) == 0 {
		return fmt.Errorf("catalogue has no territories")
	}
	if len(c.Dimensions) == 0 {
		return fmt.Errorf("catalogue has no dimensions")
	}
	if c.itemIndex == nil || c.dimIndex == nil {
		c.buildIndexes()
	}

	territories := make(map[string]bool, len(c.Territories))
	for _, t := range c.Territories {
		if territories[t.ID] {
			return fmt.Errorf("duplicate territory %q", t.ID)
		}
		territories[t.ID] = true
	}

	seenDim := make(map[string]bool, len(c.Dimensions))
	for _, d := range c.Dimensions {
		if seenDim[d.ID] {
			return fmt.Errorf("duplicate dimension %q", d.ID)
		}
		seenDim[d.ID] = true
		if !territories[d.Territory] {
			return fmt.Errorf("dimension %q references unknown territory %q", d.ID, d.Territory)
		}
	}

	behavioral := make(map[string]int)
	situational := make(map[string]int)
	mirror := make(map[string]int)
	seenItem := make(map[string]bool, len(c.Items))
	for _, it := range c.Items {
		if seenItem[it.ID] {
			return fmt.Errorf("duplicate item %q", it.ID)
		}
		seenItem[it.ID] = true
		if it.Stage < 1 || it.Stage > 3 {
			return fmt.Errorf("item %q has stage %d, want 1-3", it.ID, it.Stage)
		}
		switch it.Kind {
		case KindBehavioral:
			if err := c.requireDimension(it); err != nil {
				return err
			}
			if it.Direction != Forward && it.Direction != Reverse {
				return fmt.Errorf("behavioral item %q has direction %q, want forward or reverse", it.ID, it.Direction)
			}
			behavioral[it.Dimension]++
		case KindSituational:
			if err := c.requireDimension(it); err != nil {
				return err
			}
			situational[it.Dimension]++
		case KindMirror:
			if err := c.requireDimension(it); err != nil {
				return err
			}
			mirror[it.Dimension]++
		case KindImpression:
			if it.Dimension != "" {
				return fmt.Errorf("impression item %q must not belong to a dimension (has %q)", it.ID, it.Dimension)
			}
			if it.Direction != Forward && it.Direction != Reverse {
				return fmt.Errorf("impression item %q has direction %q, want forward or reverse", it.ID, it.Direction)
			}
		default:
			return fmt.Errorf("item %q has unknown kind %q", it.ID, it.Kind)
		}
	}

	for _, d := range c.Dimensions {
		if behavioral[d.ID] == 0 {
			return fmt.Errorf("dimension %q has no behavioral items", d.ID)
		}
		if situational[d.ID] > 1 {
			return fmt.Errorf("dimension %q has %d situational items, want at most 1", d.ID, situational[d.ID])
		}
		if mirror[d.ID] > 1 {
			return fmt.Errorf("dimension %q has %d mirror items, want at most 1", d.ID, mirror[d.ID])
		}
	}

	for _, sig := range c.Signatures {
		if sig.Name == "" {
			return fmt.Errorf("signature with empty name")
		}
		if sig.IMFlag {
			if len(sig.High) > 0 || len(sig.Low) > 0 {
				return fmt.Errorf("signature %q matches on the IM flag and must not carry dimension conditions", sig.Name)
			}
			continue
		}
		if len(sig.High)+len(sig.Low) == 0 {
			return fmt.Errorf("signature %q has no conditions and no IM flag", sig.Name)
		}
		for _, id := range sig.High {
			if !seenDim[id] {
				return fmt.Errorf("signature %q references unknown dimension %q in high set", sig.Name, id)
			}
		}
		for _, id := range sig.Low {
			if !seenDim[id] {
				return fmt.Errorf("signature %q references unknown dimension %q in low set", sig.Name, id)
			}
		}
		if sig.Tendency != "" && !seenDim[sig.Tendency] {
			return fmt.Errorf("signature %q references unknown tendency dimension %q", sig.Name, sig.Tendency)
		}
	}

	if err := c.validateThresholds(); err != nil {
		return err
	}
	return c.validateLabels()
}

func (c *Catalog) requireDimension(it Item) error {
	if it.Dimension == "" {
		return fmt.Errorf("%s item %q has no dimension", it.Kind, it.ID)
	}
	if c.dimIndex[it.Dimension] == nil {
		return fmt.Errorf("item %q references unknown dimension %q", it.ID, it.Dimension)
	}
	return nil
}

func (c *Catalog) validateThresholds() error {
	t := c.Thresholds
	if t.SJTWeight < 0 || t.SJTWeight > 1 {
		return fmt.Errorf("sjt_weight %.2f out of [0,1]", t.SJTWeight)
	}
	if t.ArchetypeHighPct <= t.ArchetypeLowPct {
		return fmt.Errorf("archetype_high_pct %d must exceed archetype_low_pct %d", t.ArchetypeHighPct, t.ArchetypeLowPct)
	}
	if t.IMFlagMin <= 0 {
		return fmt.Errorf("im_flag_min must be positive, got %d", t.IMFlagMin)
	}
	if t.IMEndorseHigh < 1 || t.IMEndorseHigh > 5 || t.IMEndorseLow < 1 || t.IMEndorseLow > 5 {
		return fmt.Errorf("IM endorse cutoffs out of 1-5 (high=%d low=%d)", t.IMEndorseHigh, t.IMEndorseLow)
	}
	if t.MinItemMS <= 0 {
		return fmt.Errorf("min_item_ms must be positive, got %d", t.MinItemMS)
	}
	if t.SessionMinMS <= 0 || t.SessionMaxMS <= t.SessionMinMS {
		return fmt.Errorf("session band [%d,%d] is not a valid range", t.SessionMinMS, t.SessionMaxMS)
	}
	if t.StageOutlierRatio <= 1 {
		return fmt.Errorf("stage_outlier_ratio must exceed 1, got %.2f", t.StageOutlierRatio)
	}
	if len(t.PriorityGapBoost) == 0 {
		return fmt.Errorf("priority_gap_boost table is empty")
	}
	for _, b := range c.Labels.GapSeverity {
		if _, ok := t.PriorityGapBoost[b.Severity]; !ok {
			return fmt.Errorf("priority_gap_boost missing severity %q", b.Severity)
		}
	}
	return nil
}

func (c *Catalog) validateLabels() error {
	if err := ascendingBands("labels.dimension", c.Labels.Dimension); err != nil {
		return err
	}
	if err := ascendingBands("labels.blind_spot", c.Labels.BlindSpot); err != nil {
		return err
	}
	if len(c.Labels.GapSeverity) == 0 {
		return fmt.Errorf("labels.gap_severity table is empty")
	}
	prev := -1
	for _, b := range c.Labels.GapSeverity {
		if b.MaxAbs <= prev {
			return fmt.Errorf("labels.gap_severity bands not ascending at max_abs=%d", b.MaxAbs)
		}
		if b.Severity == "" {
			return fmt.Errorf("labels.gap_severity band max_abs=%d has empty severity", b.MaxAbs)
		}
		prev = b.MaxAbs
	}
	if prev < 100 {
		return fmt.Errorf("labels.gap_severity bands end at %d, must cover 100", prev)
	}
	return nil
}

func ascendingBands(table string, bands []LabelBand) error {
	if len(bands) == 0 {
		return fmt.Errorf("%s table is empty", table)
	}
	prev := -1
	for _, b := range bands {
		if b.Max <= prev {
			return fmt.Errorf("%s bands not ascending at max=%d", table, b.Max)
		}
		if b.Label == "" {
			return fmt.Errorf("%s band max=%d has empty label", table, b.Max)
		}
		prev = b.Max
	}
	if prev < 100 {
		return fmt.Errorf("%s bands end at %d, must cover 100", table, prev)
	}
	return nil
}
