package service

import (
	"testing"

	"archery/app_error"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestRoundInputValidation(t *testing.T) {
	valid := RangeInput{DistanceM: 70, TargetFaceId: 1, NumberOfEnds: 6, ArrowsPerEnd: 6}
	cases := []struct {
		name  string
		input RoundInput
		ok    bool
	}{
		{"valid", RoundInput{Name: "WA 720", Ranges: []RangeInput{valid}}, true},
		{"no name", RoundInput{Name: " ", Ranges: []RangeInput{valid}}, false},
		{"no ranges", RoundInput{Name: "Empty"}, false},
		{"no ends", RoundInput{Name: "x", Ranges: []RangeInput{{DistanceM: 70, NumberOfEnds: 0, ArrowsPerEnd: 3}}}, false},
		{"zero arrows", RoundInput{Name: "x", Ranges: []RangeInput{{DistanceM: 70, NumberOfEnds: 1, ArrowsPerEnd: 0}}}, false},
		{"seven arrows", RoundInput{Name: "x", Ranges: []RangeInput{{DistanceM: 70, NumberOfEnds: 1, ArrowsPerEnd: 7}}}, false},
		{"no distance", RoundInput{Name: "x", Ranges: []RangeInput{{NumberOfEnds: 1, ArrowsPerEnd: 3}}}, false},
	}
	for _, tc := range cases {
		err := tc.input.validate()
		if tc.ok {
			assert.NoError(t, err, tc.name)
		} else {
			assert.ErrorIs(t, err, app_error.ErrValidation, tc.name)
		}
	}
}

func TestCreateAndDeleteRound(t *testing.T) {
	defer tearDown()
	rounds := NewRoundService(db)
	template := createRound(t, 1)
	face := template.Ranges[0].TargetFaceId

	round, err := rounds.CreateRound(RoundInput{
		Name:       "Portsmouth",
		CategoryId: template.CategoryId,
		Ranges: []RangeInput{
			{DistanceM: 50, TargetFaceId: face, NumberOfEnds: 6, ArrowsPerEnd: 6},
			{DistanceM: 30, TargetFaceId: face, NumberOfEnds: 6, ArrowsPerEnd: 3},
		},
	})
	require.NoError(t, err)

	stored, err := rounds.GetRound(round.Id)
	require.NoError(t, err)
	require.Len(t, stored.Ranges, 2)
	assert.Equal(t, 1, stored.Ranges[0].RangeOrder)
	assert.Equal(t, 30, stored.Ranges[1].DistanceM)

	_, err = rounds.CreateRound(RoundInput{Name: "Orphan", CategoryId: template.CategoryId + 1000, Ranges: []RangeInput{
		{DistanceM: 50, TargetFaceId: face, NumberOfEnds: 1, ArrowsPerEnd: 3},
	}})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, rounds.DeleteRound(round.Id))
	_, err = rounds.GetRound(round.Id)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.ErrorIs(t, rounds.DeleteRound(round.Id), gorm.ErrRecordNotFound)

	host := createAccount(t)
	createCompetition(t, host, createClub(t, host, true), template, nil)
	assert.Error(t, rounds.DeleteRound(template.Id), "scheduled rounds stay")
}
