package service

import (
	"testing"

	"archery/app_error"
	"archery/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func join(t *testing.T, account *repository.Account, club *repository.Club) *repository.Account {
	t.Helper()
	require.NoError(t, repository.NewAccountRepository(db).SetClub(account.Id, &club.Id))
	return reload(t, account)
}

func TestCreateClosedClub(t *testing.T) {
	defer tearDown()
	clubs := NewClubService(db, nil)
	reviews, _, _ := newTestReviewService()
	creator := createAccount(t)

	club, err := clubs.CreateClub(creator, ClubInput{Name: "Closed Bowmen", MinAge: 0, MaxAge: 0, OpenToJoin: false})
	require.NoError(t, err)

	stored, err := clubs.GetClub(club.Id)
	require.NoError(t, err)
	assert.False(t, stored.OpenToJoin)
	assert.Equal(t, 0, stored.MaxAge)
	assert.Equal(t, club.Id, *reload(t, creator).ClubId, "the creator becomes a member")

	archer := createAccount(t)
	_, err = reviews.Submit(archer, repository.KindClubEnrollment, club.Id, "")
	assert.ErrorIs(t, err, app_error.ErrValidation)

	_, err = clubs.CreateClub(creator, ClubInput{Name: "Second Club", MaxAge: 99, OpenToJoin: true})
	assert.ErrorIs(t, err, app_error.ErrConflict, "a member cannot create another club")

	_, err = clubs.CreateClub(archer, ClubInput{Name: "Closed Bowmen", MaxAge: 99, OpenToJoin: true})
	assert.ErrorIs(t, err, app_error.ErrConflict)

	_, err = clubs.CreateClub(archer, ClubInput{Name: "ab", MaxAge: 99})
	assert.ErrorIs(t, err, app_error.ErrValidation)
}

func TestCreatorCannotLeaveWhileMembersRemain(t *testing.T) {
	defer tearDown()
	clubs := NewClubService(db, nil)
	creator := createAccount(t)
	club := createClub(t, creator, true)
	creator = reload(t, creator)
	member := join(t, createAccount(t), club)

	assert.ErrorIs(t, clubs.LeaveClub(creator), app_error.ErrConflict)

	require.NoError(t, clubs.LeaveClub(member))
	assert.Nil(t, reload(t, member).ClubId)
	assert.ErrorIs(t, clubs.LeaveClub(member), app_error.ErrValidation)

	require.NoError(t, clubs.LeaveClub(creator), "the last member may leave")
	assert.Nil(t, reload(t, creator).ClubId)
}

func TestRemoveMember(t *testing.T) {
	defer tearDown()
	clubs := NewClubService(db, nil)
	creator := createAccount(t)
	club := createClub(t, creator, true)
	member := join(t, createAccount(t), club)
	stranger := createAccount(t)
	admin := createAccount(t, repository.RoleAdmin)

	assert.ErrorIs(t, clubs.RemoveMember(stranger, club.Id, member.Id), app_error.ErrForbidden)
	assert.ErrorIs(t, clubs.RemoveMember(admin, club.Id, creator.Id), app_error.ErrConflict)
	assert.ErrorIs(t, clubs.RemoveMember(creator, club.Id, stranger.Id), app_error.ErrNotFound)

	require.NoError(t, clubs.RemoveMember(creator, club.Id, member.Id))
	assert.Nil(t, reload(t, member).ClubId)

	members, err := clubs.ListMembers(club.Id)
	require.NoError(t, err)
	assert.Len(t, members, 1)
}
