package service

import (
	"testing"

	"archery/app_error"
	"archery/repository"
	"archery/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func group(id int, clubIds ...int) *repository.EligibleGroup {
	g := &repository.EligibleGroup{Id: id}
	for _, clubId := range clubIds {
		g.Members = append(g.Members, &repository.EligibleClubMember{GroupId: id, ClubId: clubId})
	}
	return g
}

func TestMatchGroupsKeepsSupersets(t *testing.T) {
	groups := []*repository.EligibleGroup{group(1, 1, 2, 3), group(2, 1, 2), group(3, 3), group(4)}
	ids := func(gs []*repository.EligibleGroup) []int {
		return utils.Map(gs, func(g *repository.EligibleGroup) int { return g.Id })
	}

	assert.Equal(t, []int{1, 2}, ids(MatchGroups(groups, []int{1, 2})))
	assert.Equal(t, []int{1, 3}, ids(MatchGroups(groups, []int{3})))
	assert.Equal(t, []int{1, 2, 3, 4}, ids(MatchGroups(groups, nil)))
	assert.Empty(t, MatchGroups(groups, []int{9}))
}

func TestIsClubEligible(t *testing.T) {
	clubId := 2
	other := 5
	assert.True(t, IsClubEligible(nil, nil))
	assert.True(t, IsClubEligible(group(1, 2), &clubId))
	assert.False(t, IsClubEligible(group(1, 2), &other))
	assert.False(t, IsClubEligible(group(1, 2), nil))
}

func TestEligibilityServiceGroups(t *testing.T) {
	defer tearDown()
	eligibility := NewEligibilityService(db)
	owner := createAccount(t, repository.RoleFederationMember)
	clubA := createClub(t, owner, true)
	clubB := createClub(t, createAccount(t), true)

	_, err := eligibility.CreateGroup(owner, "Broken", []int{clubA.Id, 999999})
	assert.ErrorIs(t, err, app_error.ErrValidation)

	both, err := eligibility.CreateGroup(owner, "North", []int{clubA.Id, clubB.Id})
	require.NoError(t, err)
	onlyA, err := eligibility.CreateGroup(owner, "North A", []int{clubA.Id})
	require.NoError(t, err)

	matches, err := eligibility.MatchGroups([]int{clubB.Id})
	require.NoError(t, err)
	assert.Equal(t, []int{both.Id}, utils.Map(matches, func(g *repository.EligibleGroup) int { return g.Id }))

	_, err = eligibility.AddClub(owner, onlyA.Id, clubB.Id)
	require.NoError(t, err)
	ok, err := eligibility.IsClubEligible(&onlyA.Id, &clubB.Id)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = eligibility.RemoveClub(owner, onlyA.Id, clubB.Id)
	require.NoError(t, err)
	ok, err = eligibility.IsClubEligible(&onlyA.Id, &clubB.Id)
	require.NoError(t, err)
	assert.False(t, ok)
}
