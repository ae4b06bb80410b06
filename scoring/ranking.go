package scoring

import "sort"

type Ranked struct {
	Total
	Rank       int     `json:"rank"`
	Percentile float64 `json:"percentile"`
}

// Less orders by total, then tens, then nines.
func Less(a, b *Total) bool {
	if a.Total != b.Total {
		return a.Total < b.Total
	}
	if a.Tens != b.Tens {
		return a.Tens < b.Tens
	}
	return a.Nines < b.Nines
}

func sameKey(a, b *Total) bool {
	return a.Total == b.Total && a.Tens == b.Tens && a.Nines == b.Nines
}

// Rank sorts descending and assigns competition ranks, so full ties share a
// rank and the next distinct entry skips ahead (1, 1, 3).
func Rank(totals []*Total) []*Ranked {
	sorted := make([]*Total, len(totals))
	copy(sorted, totals)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sameKey(sorted[i], sorted[j]) {
			return sorted[i].ArcherId < sorted[j].ArcherId
		}
		return Less(sorted[j], sorted[i])
	})

	all := make([]int, len(sorted))
	for i, t := range sorted {
		all[i] = t.Total
	}

	ranked := make([]*Ranked, len(sorted))
	for i, t := range sorted {
		rank := i + 1
		if i > 0 && sameKey(sorted[i-1], t) {
			rank = ranked[i-1].Rank
		}
		ranked[i] = &Ranked{
			Total:      *t,
			Rank:       rank,
			Percentile: PercentileRank(t.Total, all),
		}
	}
	return ranked
}

// PercentileRank is (below + 0.5 * equal) / n * 100.
func PercentileRank(score int, all []int) float64 {
	if len(all) == 0 {
		return 0
	}
	below, equal := 0, 0
	for _, v := range all {
		switch {
		case v < score:
			below++
		case v == score:
			equal++
		}
	}
	return (float64(below) + 0.5*float64(equal)) / float64(len(all)) * 100
}
