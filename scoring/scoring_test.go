package scoring

import (
	"archery/app_error"
	"archery/repository"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestValidateArrows(t *testing.T) {
	assert.NoError(t, ValidateArrows([]int{10, 9, 0}, 3))
	assert.NoError(t, ValidateArrows([]int{10, 10, 10, 10, 10, 10}, 6))

	cases := [][]int{
		{},
		{10, 10, 10, 10, 10, 10, 10},
		{11},
		{-1, 5},
	}
	for _, arrows := range cases {
		err := ValidateArrows(arrows, 6)
		assert.True(t, errors.Is(err, app_error.ErrValidation), "%v", arrows)
	}

	err := ValidateArrows([]int{1, 2, 3, 4}, 3)
	assert.True(t, errors.Is(err, app_error.ErrValidation))
}

func TestEndTotal(t *testing.T) {
	assert.Equal(t, 27, EndTotal([]int{10, 9, 8}))
	assert.Equal(t, 0, EndTotal(nil))
	assert.Equal(t, 2, CountValue([]int{10, 9, 10}, 10))
}

func TestRankSharesPositionsOnFullTies(t *testing.T) {
	totals := []*Total{
		{ArcherId: 1, Total: 50, Tens: 2, Nines: 1},
		{ArcherId: 2, Total: 55, Tens: 3, Nines: 0},
		{ArcherId: 3, Total: 55, Tens: 3, Nines: 0},
		{ArcherId: 4, Total: 55, Tens: 2, Nines: 3},
		{ArcherId: 5, Total: 40},
	}

	ranked := Rank(totals)

	got := make([][2]int, len(ranked))
	for i, r := range ranked {
		got[i] = [2]int{r.ArcherId, r.Rank}
	}
	want := [][2]int{{2, 1}, {3, 1}, {4, 3}, {1, 4}, {5, 5}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ranking mismatch (-want +got):\n%s", diff)
	}
}

func TestRankUsesNinesAfterTens(t *testing.T) {
	ranked := Rank([]*Total{
		{ArcherId: 1, Total: 30, Tens: 1, Nines: 1},
		{ArcherId: 2, Total: 30, Tens: 1, Nines: 2},
	})
	assert.Equal(t, 2, ranked[0].ArcherId)
	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, 2, ranked[1].Rank)
}

func TestPercentileRankBounds(t *testing.T) {
	all := []int{10, 20, 20, 30}
	assert.InDelta(t, 12.5, PercentileRank(10, all), 0.0001)
	assert.InDelta(t, 50.0, PercentileRank(20, all), 0.0001)
	assert.InDelta(t, 87.5, PercentileRank(30, all), 0.0001)
	assert.Equal(t, 0.0, PercentileRank(5, nil))

	for _, r := range Rank([]*Total{{ArcherId: 1, Total: 3}, {ArcherId: 2, Total: 3}, {ArcherId: 3, Total: 100}}) {
		assert.GreaterOrEqual(t, r.Percentile, 0.0)
		assert.LessOrEqual(t, r.Percentile, 100.0)
	}
}

func TestByArcherAndByRound(t *testing.T) {
	comp := 7
	club := 3
	now := time.Now()
	rows := []*repository.EndRow{
		{ArcherId: 1, ClubId: &club, CompetitionId: &comp, RoundId: 1, EndOrder: 1, Arrows: []int64{10, 10, 9}, UpdatedAt: now},
		{ArcherId: 1, ClubId: &club, CompetitionId: &comp, RoundId: 1, EndOrder: 2, Arrows: []int64{8, 7, 6}, UpdatedAt: now},
		{ArcherId: 1, RoundId: 1, Arrows: []int64{10}, UpdatedAt: now.Add(time.Hour)},
		{ArcherId: 2, CompetitionId: &comp, RoundId: 1, Arrows: []int64{5, 5, 5}, UpdatedAt: now},
	}

	byArcher := ByArcher(rows)
	assert.Len(t, byArcher, 2)
	assert.Equal(t, 60, byArcher[0].Total)
	assert.Equal(t, 3, byArcher[0].Tens)
	assert.Equal(t, 1, byArcher[0].Nines)
	assert.Equal(t, 3, byArcher[0].Ends)
	assert.Equal(t, &club, byArcher[0].ClubId)

	byRound := ByRound(rows)
	assert.Len(t, byRound, 3)
	last := byRound[len(byRound)-1]
	assert.Equal(t, 0, last.CompetitionId)
	assert.Equal(t, 10, last.Total.Total)

	best := BestPerArcher(byRound)
	assert.Equal(t, 50, best[0].Total)
	assert.Equal(t, 15, best[1].Total)
}

func TestOneEndCountsOnceAcrossScoreTypes(t *testing.T) {
	comp := 7
	championship := 2
	now := time.Now()
	rows := []*repository.EndRow{
		{ArcherId: 1, EventContextId: 11, CompetitionId: &comp, ChampionshipId: &championship, RoundId: 1, RangeId: 1, EndOrder: 1,
			Type: repository.ScoreCompetition, Arrows: []int64{9, 9, 9}, UpdatedAt: now.Add(time.Minute)},
		{ArcherId: 1, EventContextId: 11, CompetitionId: &comp, ChampionshipId: &championship, RoundId: 1, RangeId: 1, EndOrder: 1,
			Type: repository.ScoreChampionship, Arrows: []int64{10, 10, 10}, UpdatedAt: now},
		{ArcherId: 1, EventContextId: 12, CompetitionId: &comp, ChampionshipId: &championship, RoundId: 1, RangeId: 1, EndOrder: 2,
			Type: repository.ScoreChampionship, Arrows: []int64{5, 5, 5}, UpdatedAt: now},
	}

	distinct := DistinctEnds(rows)
	assert.Len(t, distinct, 2)
	assert.Equal(t, repository.ScoreChampionship, distinct[0].Type)

	totals := ByArcher(rows)
	assert.Len(t, totals, 1)
	assert.Equal(t, 45, totals[0].Total)
	assert.Equal(t, 2, totals[0].Ends)

	rounds := ByRound(rows)
	assert.Len(t, rounds, 1)
	assert.Equal(t, 45, rounds[0].Total.Total)
}

func TestAverage(t *testing.T) {
	assert.Equal(t, 0.0, Average(nil))
	assert.InDelta(t, 2.5, Average([]int{1, 2, 3, 4}), 0.0001)
}
