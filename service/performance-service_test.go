package service

import (
	"bytes"
	"testing"
	"time"

	"archery/repository"
	"archery/scoring"
	"archery/utils"

	"github.com/google/go-cmp/cmp"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func roundTotal(competitionId, roundId, archerId int, clubId *int, total int) *scoring.RoundTotal {
	return &scoring.RoundTotal{
		RoundKey: scoring.RoundKey{CompetitionId: competitionId, RoundId: roundId, ArcherId: archerId},
		Total:    scoring.Total{ArcherId: archerId, ClubId: clubId, Total: total},
	}
}

func TestClubStandings(t *testing.T) {
	clubA, clubB, clubC := 1, 2, 3
	rounds := []*scoring.RoundTotal{
		roundTotal(1, 1, 10, &clubA, 300),
		roundTotal(1, 1, 11, &clubA, 200),
		roundTotal(2, 1, 10, &clubA, 250),
		roundTotal(1, 1, 20, &clubB, 250),
		roundTotal(1, 1, 30, &clubC, 100),
		roundTotal(1, 1, 40, nil, 360),
	}

	standings := ClubStandings(rounds)

	want := []*ClubStanding{
		{ClubId: clubA, Average: 250, Archers: 2, Rounds: 3, Rank: 1},
		{ClubId: clubB, Average: 250, Archers: 1, Rounds: 1, Rank: 1},
		{ClubId: clubC, Average: 100, Archers: 1, Rounds: 1, Rank: 3},
	}
	if diff := cmp.Diff(want, standings); diff != "" {
		t.Errorf("ClubStandings mismatch (-want +got):\n%s", diff)
	}
}

func TestSummarizeArcher(t *testing.T) {
	competition := 7
	day := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	rows := []*repository.EndRow{
		{ArcherId: 1, CompetitionId: &competition, RoundId: 1, EndOrder: 1, Arrows: pq.Int64Array{10, 10, 9}, UpdatedAt: day},
		{ArcherId: 1, CompetitionId: &competition, RoundId: 1, EndOrder: 2, Arrows: pq.Int64Array{8, 7, 6}, UpdatedAt: day},
		{ArcherId: 1, RoundId: 1, EndOrder: 1, Arrows: pq.Int64Array{10, 10, 10}, UpdatedAt: day.AddDate(0, 0, 3)},
		{ArcherId: 1, RoundId: 2, EndOrder: 1, Arrows: pq.Int64Array{5, 5, 5}, UpdatedAt: day.AddDate(0, 0, 5)},
	}

	performance := summarizeArcher(1, rows)

	assert.Equal(t, 4, performance.Ends)
	assert.Equal(t, 12, performance.Arrows)
	assert.InDelta(t, 105.0/4, performance.AverageEnd, 1e-9)
	assert.InDelta(t, 105.0/12, performance.AverageArrow, 1e-9)
	assert.Equal(t, map[int]int{1: 50, 2: 15}, performance.PersonalBests)
	assert.Equal(t, []int{50, 30, 15}, utils.Map(performance.History, func(r *scoring.RoundTotal) int { return r.Total.Total }))
}

func TestCompetitionLeaderboardCountsEligibleEndsOnly(t *testing.T) {
	defer tearDown()
	scores := NewScoreService(db)
	performance := NewPerformanceService(db, time.Minute)
	host := createAccount(t)
	club := createClub(t, host, true)
	recorder := createAccount(t, repository.RoleRecorder)
	competition, schedule := createCompetition(t, host, club, createRound(t, 2), nil)
	enter(t, recorder, competition.Id, repository.ParticipantRecorder)

	record := func(archer *repository.Account, end int, arrows []int, eligible bool) {
		score, err := scores.RecordEnd(recorder, RecordEndInput{ArcherId: archer.Id, EventContextId: schedule[end].Id, Type: repository.ScoreCompetition, Arrows: arrows})
		require.NoError(t, err)
		if eligible {
			_, err = scores.SetScoreStatus(recorder, score.Id, repository.StatusEligible)
			require.NoError(t, err)
		}
	}
	first, second, third := createAccount(t), createAccount(t), createAccount(t)
	for _, archer := range []*repository.Account{first, second, third} {
		enter(t, archer, competition.Id, repository.ParticipantArcher)
	}
	record(first, 0, []int{10, 10, 9}, true)
	record(first, 1, []int{9, 9, 9}, true)
	record(second, 0, []int{10, 9, 9}, true)
	record(second, 1, []int{10, 10, 8}, true)
	record(third, 0, []int{10, 10, 10}, true)
	record(third, 1, []int{10, 10, 10}, false)

	board, err := performance.CompetitionLeaderboard(competition.Id, nil)
	require.NoError(t, err)
	require.Len(t, board.Entries, 3)
	assert.Equal(t, []int{second.Id, first.Id, third.Id}, utils.Map(board.Entries, func(r *scoring.Ranked) int { return r.ArcherId }),
		"56 with three tens beats 56 with two tens")
	assert.Equal(t, []int{1, 2, 3}, utils.Map(board.Entries, func(r *scoring.Ranked) int { return r.Rank }))

	require.NoError(t, performance.RefreshSnapshots())
	cached, err := performance.CompetitionLeaderboard(competition.Id, nil)
	require.NoError(t, err)
	assert.Equal(t, board.Entries[0].Total.Total, cached.Entries[0].Total.Total)

	data, err := performance.ExportCompetitionLeaderboard(competition.Id, nil)
	require.NoError(t, err)
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()
	total, err := f.GetCellValue(leaderboardSheet, "C4")
	require.NoError(t, err)
	assert.Equal(t, "56", total)
	name, err := f.GetCellValue(leaderboardSheet, "B4")
	require.NoError(t, err)
	assert.Equal(t, second.FirstName+" "+second.LastName, name)
}

func TestHistoryChartRendersPNG(t *testing.T) {
	day := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	history := []*scoring.RoundTotal{
		roundTotal(1, 1, 1, nil, 280),
		roundTotal(2, 1, 1, nil, 300),
	}
	history[0].UpdatedAt = day
	history[1].UpdatedAt = day.AddDate(0, 1, 0)

	for _, input := range [][]*scoring.RoundTotal{history, history[:1]} {
		data, err := HistoryChart(input)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))
	}
}
