package scoring

import (
	"archery/repository"
	"archery/utils"
	"sort"
	"time"
)

// Total accumulates eligible ends for one archer within some scope.
type Total struct {
	ArcherId  int       `json:"archer_id"`
	ClubId    *int      `json:"club_id"`
	Total     int       `json:"total"`
	Tens      int       `json:"tens"`
	Nines     int       `json:"nines"`
	Ends      int       `json:"ends"`
	Arrows    int       `json:"arrows"`
	UpdatedAt time.Time `json:"-"`
}

func (t *Total) add(row *repository.EndRow) {
	arrows := FromInt64(row.Arrows)
	t.Total += EndTotal(arrows)
	t.Tens += CountValue(arrows, 10)
	t.Nines += CountValue(arrows, 9)
	t.Ends++
	t.Arrows += len(arrows)
	if row.UpdatedAt.After(t.UpdatedAt) {
		t.UpdatedAt = row.UpdatedAt
	}
	if row.ClubId != nil {
		t.ClubId = row.ClubId
	}
}

// RoundKey identifies one shot of a round. CompetitionId is 0 for practice.
type RoundKey struct {
	CompetitionId int
	RoundId       int
	ArcherId      int
}

type RoundTotal struct {
	RoundKey
	Total
}

// endKey identifies one physical end shot by one archer.
type endKey struct {
	archerId      int
	contextId     int
	competitionId int
	roundId       int
	rangeId       int
	endOrder      int
}

// DistinctEnds keeps one row per archer and end. A championship row wins over a
// competition row for the same end, otherwise the latest update wins.
func DistinctEnds(rows []*repository.EndRow) []*repository.EndRow {
	kept := make(map[endKey]int, len(rows))
	out := make([]*repository.EndRow, 0, len(rows))
	for _, row := range rows {
		key := endKey{
			archerId:  row.ArcherId,
			contextId: row.EventContextId,
			roundId:   row.RoundId,
			rangeId:   row.RangeId,
			endOrder:  row.EndOrder,
		}
		if row.CompetitionId != nil {
			key.competitionId = *row.CompetitionId
		}
		i, ok := kept[key]
		if !ok {
			kept[key] = len(out)
			out = append(out, row)
			continue
		}
		if preferEnd(row, out[i]) {
			out[i] = row
		}
	}
	return out
}

func preferEnd(candidate, current *repository.EndRow) bool {
	if candidate.Type != current.Type {
		return candidate.Type == repository.ScoreChampionship
	}
	return candidate.UpdatedAt.After(current.UpdatedAt)
}

// ByArcher sums all rows per archer, ordered by archer id.
func ByArcher(rows []*repository.EndRow) []*Total {
	totals := make(map[int]*Total)
	for _, row := range DistinctEnds(rows) {
		t, ok := totals[row.ArcherId]
		if !ok {
			t = &Total{ArcherId: row.ArcherId}
			totals[row.ArcherId] = t
		}
		t.add(row)
	}
	out := make([]*Total, 0, len(totals))
	for _, t := range totals {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ArcherId < out[j].ArcherId })
	return out
}

// ByRound sums rows per (competition, round, archer).
func ByRound(rows []*repository.EndRow) []*RoundTotal {
	totals := make(map[RoundKey]*RoundTotal)
	for _, row := range DistinctEnds(rows) {
		key := RoundKey{RoundId: row.RoundId, ArcherId: row.ArcherId}
		if row.CompetitionId != nil {
			key.CompetitionId = *row.CompetitionId
		}
		t, ok := totals[key]
		if !ok {
			t = &RoundTotal{RoundKey: key, Total: Total{ArcherId: row.ArcherId}}
			totals[key] = t
		}
		t.add(row)
	}
	out := make([]*RoundTotal, 0, len(totals))
	for _, t := range totals {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].UpdatedAt.Before(out[j].UpdatedAt)
		}
		a, b := out[i].RoundKey, out[j].RoundKey
		if a.CompetitionId != b.CompetitionId {
			return a.CompetitionId < b.CompetitionId
		}
		if a.RoundId != b.RoundId {
			return a.RoundId < b.RoundId
		}
		return a.ArcherId < b.ArcherId
	})
	return out
}

// BestPerArcher keeps each archer's highest round total.
func BestPerArcher(rounds []*RoundTotal) []*Total {
	best := make(map[int]*Total)
	for _, r := range rounds {
		current, ok := best[r.Total.ArcherId]
		if !ok || Less(current, &r.Total) {
			t := r.Total
			best[r.Total.ArcherId] = &t
		}
	}
	out := make([]*Total, 0, len(best))
	for _, t := range best {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ArcherId < out[j].ArcherId })
	return out
}

func Average(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	return float64(utils.Sum(values)) / float64(len(values))
}
