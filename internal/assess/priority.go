package assess

import (
	"sort"

	"compass/internal/catalog"
)

// priorityCount is how many development priorities the product surfaces.
const priorityCount = 3

// selectPriorities picks the dimensions most worth developing: the lowest
// percentages first. When mirror-gap data exists the ranking is amplified:
// a severe self/other gap buys a dimension a configured rank-key reduction,
// since a large blind spot is higher-leverage than a merely low score.
// Dimensions without any scored evidence are excluded; ties keep catalogue
// order.
func selectPriorities(cat *catalog.Catalog, dims []DimensionScore, gaps []MirrorGap) []string {
	boost := make(map[string]int, len(gaps))
	for _, g := range gaps {
		boost[g.DimensionID] = cat.Thresholds.PriorityGapBoost[g.Severity]
	}

	type ranked struct {
		id  string
		key int
	}
	var pool []ranked
	for _, d := range dims {
		if d.Confidence == ConfidenceMissing {
			continue
		}
		pool = append(pool, ranked{id: d.DimensionID, key: d.Percentage - boost[d.DimensionID]})
	}

	// dims arrive in catalogue order; stable sort preserves it on ties
	sort.SliceStable(pool, func(a, b int) bool {
		return pool[a].key < pool[b].key
	})

	n := priorityCount
	if n > len(pool) {
		n = len(pool)
	}
	out := make([]string, 0, n)
	for _, r := range pool[:n] {
		out = append(out, r.id)
	}
	return out
}
