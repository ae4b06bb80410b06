package service

import (
	"sync"
	"testing"

	"archery/app_error"
	"archery/repository"
	"archery/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scoreRecorder struct {
	mu      sync.Mutex
	changes map[int][]int
}

func (r *scoreRecorder) ScoreChanged(competitionId int, score *repository.ParticipantScore) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.changes == nil {
		r.changes = make(map[int][]int)
	}
	r.changes[competitionId] = append(r.changes[competitionId], score.Sum)
}

func TestCheckScoreType(t *testing.T) {
	championshipId := 4
	competitionId := 2
	practice := &repository.EventContext{}
	standalone := &repository.EventContext{CompetitionId: &competitionId}
	inChampionship := &repository.EventContext{CompetitionId: &competitionId, ChampionshipId: &championshipId}

	assert.NoError(t, checkScoreType(practice, repository.ScorePractice))
	assert.ErrorIs(t, checkScoreType(practice, repository.ScoreCompetition), app_error.ErrValidation)
	assert.NoError(t, checkScoreType(standalone, repository.ScoreCompetition))
	assert.ErrorIs(t, checkScoreType(standalone, repository.ScorePractice), app_error.ErrValidation)
	assert.ErrorIs(t, checkScoreType(standalone, repository.ScoreChampionship), app_error.ErrValidation)
	assert.NoError(t, checkScoreType(inChampionship, repository.ScoreChampionship))
	assert.ErrorIs(t, checkScoreType(inChampionship, repository.ScoreCompetition), app_error.ErrValidation,
		"a championship end takes a single event score")
	assert.ErrorIs(t, checkScoreType(inChampionship, repository.ScoreType("bogus")), app_error.ErrValidation)
}

func TestEligibleCompetitionScoreIsLocked(t *testing.T) {
	defer tearDown()
	scores := NewScoreService(db)
	listener := &scoreRecorder{}
	scores.Subscribe(listener)

	host := createAccount(t)
	club := createClub(t, host, true)
	competition, schedule := createCompetition(t, host, club, createRound(t, 2), nil)
	archer := createAccount(t)
	recorder := createAccount(t, repository.RoleRecorder)
	enter(t, archer, competition.Id, repository.ParticipantArcher)
	enter(t, recorder, competition.Id, repository.ParticipantRecorder)

	input := RecordEndInput{ArcherId: archer.Id, EventContextId: schedule[0].Id, Type: repository.ScoreCompetition, Arrows: []int{10, 9, 8}}
	score, err := scores.RecordEnd(archer, input)
	require.NoError(t, err)
	assert.Equal(t, 27, score.Sum)
	assert.Equal(t, repository.StatusPending, score.Status)

	input.Arrows = []int{10, 10, 8}
	score, err = scores.RecordEnd(recorder, input)
	require.NoError(t, err, "open scores can be corrected")
	assert.Equal(t, 28, score.Sum)
	assert.Equal(t, recorder.Id, *score.RecorderId)

	_, err = scores.SetScoreStatus(archer, score.Id, repository.StatusEligible)
	assert.ErrorIs(t, err, app_error.ErrForbidden)
	_, err = scores.SetScoreStatus(recorder, score.Id, repository.StatusEligible)
	require.NoError(t, err)

	input.Arrows = []int{10, 10, 10}
	_, err = scores.RecordEnd(archer, input)
	assert.ErrorIs(t, err, app_error.ErrScoreLocked)
	_, err = scores.SetScoreStatus(recorder, score.Id, repository.StatusPending)
	assert.ErrorIs(t, err, app_error.ErrInvalidTransition)

	assert.Equal(t, []int{27, 28, 28}, listener.changes[competition.Id])
}

func TestRecordEndValidation(t *testing.T) {
	defer tearDown()
	scores := NewScoreService(db)
	host := createAccount(t)
	club := createClub(t, host, true)
	competition, schedule := createCompetition(t, host, club, createRound(t, 1), nil)
	archer := createAccount(t)
	outsider := createAccount(t)
	enter(t, archer, competition.Id, repository.ParticipantArcher)

	base := RecordEndInput{ArcherId: archer.Id, EventContextId: schedule[0].Id, Type: repository.ScoreCompetition}

	input := base
	input.Arrows = []int{10, 11, 9}
	_, err := scores.RecordEnd(archer, input)
	assert.ErrorIs(t, err, app_error.ErrValidation)

	input.Arrows = []int{10, 9, 8, 7}
	_, err = scores.RecordEnd(archer, input)
	assert.ErrorIs(t, err, app_error.ErrValidation, "the range shoots three arrows per end")

	input.Arrows = []int{10, 9, 8}
	_, err = scores.RecordEnd(outsider, input)
	assert.ErrorIs(t, err, app_error.ErrForbidden)

	input.ArcherId = outsider.Id
	_, err = scores.RecordEnd(outsider, input)
	assert.ErrorIs(t, err, app_error.ErrValidation, "only entered archers can score")
}

func TestPracticeScoresStayEditable(t *testing.T) {
	defer tearDown()
	scores := NewScoreService(db)
	events := NewEventService(db, NewEligibilityService(db), nil)
	round := createRound(t, 3)
	archer := createAccount(t)
	other := createAccount(t)

	context, err := events.PracticeContext(round.Id, round.Ranges[0].Id, 2)
	require.NoError(t, err)
	again, err := events.PracticeContext(round.Id, round.Ranges[0].Id, 2)
	require.NoError(t, err)
	assert.Equal(t, context.Id, again.Id, "practice positions are shared")

	input := RecordEndInput{ArcherId: archer.Id, EventContextId: context.Id, Type: repository.ScorePractice, Arrows: []int{5, 5, 5}}
	score, err := scores.RecordEnd(archer, input)
	require.NoError(t, err)
	assert.Equal(t, repository.StatusEligible, score.Status)

	input.Arrows = []int{6, 6, 6}
	score, err = scores.RecordEnd(archer, input)
	require.NoError(t, err)
	assert.Equal(t, 18, score.Sum)

	_, err = scores.RecordEnd(other, input)
	assert.ErrorIs(t, err, app_error.ErrForbidden)
	_, err = scores.SetScoreStatus(createAccount(t, repository.RoleAdmin), score.Id, repository.StatusIneligible)
	assert.ErrorIs(t, err, app_error.ErrValidation)

	listed, err := scores.ListArcherScores(archer.Id)
	require.NoError(t, err)
	assert.Equal(t, []int{18}, utils.Map(listed, func(s *repository.ParticipantScore) int { return s.Sum }))
}

func TestWithdrawalDropsOpenScores(t *testing.T) {
	defer tearDown()
	reviews, _, _ := newTestReviewService()
	scores := NewScoreService(db)
	host := createAccount(t)
	club := createClub(t, host, true)
	competition, schedule := createCompetition(t, host, club, createRound(t, 2), nil)
	archer := createAccount(t)
	enter(t, archer, competition.Id, repository.ParticipantArcher)

	open, err := scores.RecordEnd(archer, RecordEndInput{ArcherId: archer.Id, EventContextId: schedule[0].Id, Type: repository.ScoreCompetition, Arrows: []int{1, 2, 3}})
	require.NoError(t, err)
	locked, err := scores.RecordEnd(archer, RecordEndInput{ArcherId: archer.Id, EventContextId: schedule[1].Id, Type: repository.ScoreCompetition, Arrows: []int{4, 5, 6}})
	require.NoError(t, err)
	_, err = scores.SetScoreStatus(host, locked.Id, repository.StatusEligible)
	require.ErrorIs(t, err, app_error.ErrForbidden, "hosts are not recorders")
	_, err = scores.SetScoreStatus(createAccount(t, repository.RoleAdmin), locked.Id, repository.StatusEligible)
	require.NoError(t, err)

	request, err := reviews.Submit(archer, repository.KindCompetitionWithdrawal, competition.Id, "")
	require.NoError(t, err)
	_, err = reviews.Approve(t.Context(), host, request.Id, "")
	require.NoError(t, err)

	_, err = scores.GetScore(open.Id)
	assert.Error(t, err)
	kept, err := scores.GetScore(locked.Id)
	require.NoError(t, err)
	assert.Equal(t, repository.StatusEligible, kept.Status)
}
