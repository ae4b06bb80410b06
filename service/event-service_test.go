package service

import (
	"strings"
	"testing"
	"time"

	"archery/app_error"
	"archery/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextsForRoundExpandsEveryEnd(t *testing.T) {
	championshipId := 3
	round := &repository.Round{Id: 9, Ranges: []*repository.Range{
		{Id: 1, RangeOrder: 1, NumberOfEnds: 2},
		{Id: 2, RangeOrder: 2, NumberOfEnds: 3},
	}}

	contexts := ContextsForRound(5, &championshipId, round)

	require.Len(t, contexts, 5)
	for _, ctx := range contexts {
		assert.Equal(t, 5, *ctx.CompetitionId)
		assert.Equal(t, championshipId, *ctx.ChampionshipId)
		assert.Equal(t, 9, ctx.RoundId)
	}
	assert.Equal(t, 2, contexts[1].EndOrder)
	assert.Equal(t, 2, contexts[4].RangeId)
	assert.Equal(t, 3, contexts[4].EndOrder)
}

func TestBuildTree(t *testing.T) {
	compA, compB := 1, 2
	championship := &repository.YearlyClubChampionship{Id: 1, Name: "2025"}
	competitions := []*repository.ClubCompetition{{Id: compA, Name: "Spring"}, {Id: compB, Name: "Autumn"}}
	rounds := []*repository.Round{{Id: 10, Name: "WA 720"}}
	ranges := []*repository.Range{{Id: 100, RoundId: 10, RangeOrder: 1, DistanceM: 70}}
	contexts := []*repository.EventContext{
		{Id: 3, CompetitionId: &compB, RoundId: 10, RangeId: 100, EndOrder: 1},
		{Id: 2, CompetitionId: &compA, RoundId: 10, RangeId: 100, EndOrder: 2},
		{Id: 1, CompetitionId: &compA, RoundId: 10, RangeId: 100, EndOrder: 1},
		{Id: 4, RoundId: 10, RangeId: 100, EndOrder: 1},
	}

	tree := BuildTree(championship, competitions, rounds, ranges, contexts)

	assert.Equal(t, "CH-1", tree.Root)
	assert.Equal(t, []string{"CO-1", "CO-2"}, tree.Children["CH-1"])
	assert.Equal(t, []string{"RO-1-10"}, tree.Children["CO-1"])
	assert.Equal(t, []string{"EN-1", "EN-2"}, tree.Children["RA-1-10-100"])
	assert.Equal(t, "70m", tree.Nodes["RA-1-10-100"].Label)
	assert.Equal(t, "Autumn", tree.Nodes["CO-2"].Label)
	assert.Equal(t, 3, tree.EndCount(), "practice contexts are not part of the tree")
}

func TestChampionshipAttachmentAndTree(t *testing.T) {
	defer tearDown()
	events := NewEventService(db, NewEligibilityService(db), nil)
	host := createAccount(t)
	club := createClub(t, host, true)
	organizer := createAccount(t, repository.RoleFederationMember)
	outsiderOwner := createAccount(t)
	outsiderClub := createClub(t, outsiderOwner, true)
	group, err := NewEligibilityService(db).CreateGroup(organizer, "League", []int{club.Id})
	require.NoError(t, err)

	championship, err := events.CreateChampionship(organizer, ChampionshipInput{
		Name:            "League 2025",
		Year:            2025,
		EligibleGroupId: &group.Id,
		StartDate:       time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:         time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	round := createRound(t, 2)
	competition, err := events.CreateCompetition(host, CompetitionInput{
		Name:       "Opener",
		HostClubId: club.Id,
		StartDate:  time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.ErrorIs(t, events.AttachToChampionship(host, competition.Id, championship.Id), app_error.ErrValidation,
		"a competition without a schedule cannot be attached")

	_, err = events.ScheduleRound(host, competition.Id, round.Id)
	require.NoError(t, err)
	_, err = events.ScheduleRound(host, competition.Id, round.Id)
	assert.ErrorIs(t, err, app_error.ErrConflict)
	require.NoError(t, events.AttachToChampionship(host, competition.Id, championship.Id))

	championshipId, err := events.ChampionshipOf(competition.Id)
	require.NoError(t, err)
	assert.Equal(t, championship.Id, *championshipId)

	tree, err := events.BuildEventTree(championship.Id)
	require.NoError(t, err)
	assert.Equal(t, 2, tree.EndCount())

	outsider, _ := createCompetition(t, outsiderOwner, outsiderClub, round, nil)
	assert.ErrorIs(t, events.AttachToChampionship(outsiderOwner, outsider.Id, championship.Id), app_error.ErrForbidden)
	assert.ErrorIs(t, events.AttachToChampionship(outsiderOwner, competition.Id, championship.Id), app_error.ErrForbidden)
}

func TestExportCalendar(t *testing.T) {
	url := "https://example.org/rules.pdf"
	data, err := ExportCalendar([]*repository.ClubCompetition{{
		Id:          4,
		Name:        "Indoor Open",
		Address:     "Sports hall",
		StartDate:   time.Date(2025, 2, 8, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2025, 2, 9, 0, 0, 0, 0, time.UTC),
		DocumentUrl: &url,
	}})
	require.NoError(t, err)
	calendar := string(data)
	assert.True(t, strings.HasPrefix(calendar, "BEGIN:VCALENDAR"))
	assert.Contains(t, calendar, "UID:competition-4@archery")
	assert.Contains(t, calendar, "SUMMARY:Indoor Open")
	assert.Contains(t, calendar, "LOCATION:Sports hall")
}
