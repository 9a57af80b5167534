package assess

import "compass/internal/catalog"

// qualityReport carries the advisory flags plus the one signal that feeds
// back into classification: the impression-management flag.
type qualityReport struct {
	Flags  []QualityFlag
	IMFlag bool
}

// detectQuality computes the impression-management flag and the
// response-time anomaly flags. Everything here is advisory: flagged
// responses stay in scoring, flagged stages stay in the index. Only the IM
// flag has a downstream consumer (the archetype classifier's forced match).
func detectQuality(cat *catalog.Catalog, responses []Response) qualityReport {
	var report qualityReport
	t := cat.Thresholds

	imTotal := 0
	stageTotals := make(map[int]int64, 3)
	var sessionTotal int64

	for _, r := range dedupe(responses) {
		item := cat.ItemByID(r.ItemID)
		if item == nil {
			continue // scoring already rejects unknown ids; nothing to flag
		}
		if item.Kind == catalog.KindImpression {
			if v, err := scoreItem(t, item, r.Raw); err == nil && v == 1 {
				imTotal++
			}
		}
		if r.LatencyMS <= 0 {
			continue
		}
		sessionTotal += r.LatencyMS
		stageTotals[item.Stage] += r.LatencyMS
		if r.LatencyMS < t.MinItemMS {
			report.Flags = append(report.Flags, QualityFlag{
				Kind:     FlagTooFast,
				ItemID:   r.ItemID,
				Observed: r.LatencyMS,
				Limit:    t.MinItemMS,
			})
		}
	}

	if imTotal >= t.IMFlagMin {
		report.IMFlag = true
		report.Flags = append(report.Flags, QualityFlag{
			Kind:     FlagImpressionManagement,
			Observed: int64(imTotal),
			Limit:    int64(t.IMFlagMin),
		})
	}

	// a stage is an outlier when its total diverges from the mean of the
	// other two stages by the configured ratio, in either direction
	for stage := 1; stage <= 3; stage++ {
		total := stageTotals[stage]
		var others []float64
		for s := 1; s <= 3; s++ {
			if s != stage && stageTotals[s] > 0 {
				others = append(others, float64(stageTotals[s]))
			}
		}
		if total == 0 || len(others) < 2 {
			continue
		}
		ref := mean(others)
		if float64(total) > ref*t.StageOutlierRatio || float64(total)*t.StageOutlierRatio < ref {
			report.Flags = append(report.Flags, QualityFlag{
				Kind:     FlagOutlierStage,
				Stage:    stage,
				Observed: total,
				Limit:    int64(ref),
			})
		}
	}

	if sessionTotal > 0 {
		if sessionTotal < t.SessionMinMS {
			report.Flags = append(report.Flags, QualityFlag{
				Kind:     FlagTooShortTotal,
				Observed: sessionTotal,
				Limit:    t.SessionMinMS,
			})
		} else if sessionTotal > t.SessionMaxMS {
			report.Flags = append(report.Flags, QualityFlag{
				Kind:     FlagTooLongTotal,
				Observed: sessionTotal,
				Limit:    t.SessionMaxMS,
			})
		}
	}

	return report
}
