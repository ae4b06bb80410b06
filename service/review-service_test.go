package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"archery/app_error"
	"archery/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []DecisionEvent
}

func (p *recordingPublisher) Publish(_ context.Context, event DecisionEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

type failingNotifier struct {
	sent int
}

func (n *failingNotifier) Send(context.Context, string, string, string) error {
	n.sent++
	return errors.New("smtp down")
}

func newTestReviewService() (*ReviewService, *recordingPublisher, *failingNotifier) {
	publisher := &recordingPublisher{}
	notifier := &failingNotifier{}
	return NewReviewService(db, publisher, notifier), publisher, notifier
}

func TestClubEnrollmentApprovalJoinsClubAndDeletesRequest(t *testing.T) {
	defer tearDown()
	reviews, publisher, notifier := newTestReviewService()
	owner := createAccount(t)
	club := createClub(t, owner, true)
	archer := createAccount(t)

	request, err := reviews.Submit(archer, repository.KindClubEnrollment, club.Id, " please ")
	require.NoError(t, err)
	assert.Equal(t, repository.StatusPending, request.Status)
	assert.Equal(t, "please", request.Message)

	incoming, err := reviews.ListIncoming(owner, repository.RequestFilter{})
	require.NoError(t, err)
	require.Len(t, incoming, 1)
	assert.Equal(t, request.Id, incoming[0].Id)

	decided, err := reviews.Approve(context.Background(), owner, request.Id, "welcome")
	require.NoError(t, err)
	assert.Equal(t, repository.StatusEligible, decided.Status)

	assert.Equal(t, club.Id, *reload(t, archer).ClubId)
	_, err = repository.NewReviewRequestRepository(db).GetById(request.Id)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound, "approved requests are removed")

	require.Len(t, publisher.events, 1)
	assert.Equal(t, "welcome", publisher.events[0].Comment)
	assert.Equal(t, 1, notifier.sent, "a failing mail does not fail the approval")
}

func TestRejectedRequestIsReopenedOnResubmit(t *testing.T) {
	defer tearDown()
	reviews, _, _ := newTestReviewService()
	owner := createAccount(t)
	club := createClub(t, owner, true)
	archer := createAccount(t)

	request, err := reviews.Submit(archer, repository.KindClubEnrollment, club.Id, "")
	require.NoError(t, err)
	rejected, err := reviews.Reject(context.Background(), owner, request.Id, "full")
	require.NoError(t, err)
	assert.Equal(t, repository.StatusIneligible, rejected.Status)
	assert.Nil(t, reload(t, archer).ClubId)

	resubmitted, err := reviews.Submit(archer, repository.KindClubEnrollment, club.Id, "again")
	require.NoError(t, err)
	assert.Equal(t, request.Id, resubmitted.Id)
	assert.Equal(t, repository.StatusPending, resubmitted.Status)
	assert.Nil(t, resubmitted.ReviewComment)
}

func TestSubmitRejectsDuplicateOpenRequest(t *testing.T) {
	defer tearDown()
	reviews, _, _ := newTestReviewService()
	owner := createAccount(t)
	club := createClub(t, owner, true)
	archer := createAccount(t)

	_, err := reviews.Submit(archer, repository.KindClubEnrollment, club.Id, "")
	require.NoError(t, err)
	_, err = reviews.Submit(archer, repository.KindClubEnrollment, club.Id, "")
	assert.ErrorIs(t, err, app_error.ErrConflict)
}

func TestSubmitValidatesClubEnrollment(t *testing.T) {
	defer tearDown()
	reviews, _, _ := newTestReviewService()
	owner := createAccount(t)
	closed := createClub(t, owner, false)
	archer := createAccount(t)

	_, err := reviews.Submit(archer, repository.KindClubEnrollment, closed.Id, "")
	assert.ErrorIs(t, err, app_error.ErrValidation)

	_, err = reviews.Submit(owner, repository.KindClubEnrollment, closed.Id, "")
	assert.ErrorIs(t, err, app_error.ErrConflict, "members of a club cannot enroll elsewhere")

	_, err = reviews.Submit(archer, repository.RequestKind("UNKNOWN"), closed.Id, "")
	assert.ErrorIs(t, err, app_error.ErrValidation)
}

func TestOnlyAuthorizedReviewersDecide(t *testing.T) {
	defer tearDown()
	reviews, _, _ := newTestReviewService()
	owner := createAccount(t)
	club := createClub(t, owner, true)
	archer := createAccount(t)
	stranger := createAccount(t)
	admin := createAccount(t, repository.RoleAdmin)

	request, err := reviews.Submit(archer, repository.KindClubEnrollment, club.Id, "")
	require.NoError(t, err)

	_, err = reviews.Approve(context.Background(), stranger, request.Id, "")
	assert.ErrorIs(t, err, app_error.ErrForbidden)
	_, err = reviews.StartReview(archer, request.Id)
	assert.ErrorIs(t, err, app_error.ErrForbidden, "requesters never review their own request")

	started, err := reviews.StartReview(admin, request.Id)
	require.NoError(t, err)
	assert.Equal(t, repository.StatusInProgress, started.Status)
	_, err = reviews.StartReview(admin, request.Id)
	assert.ErrorIs(t, err, app_error.ErrInvalidTransition)

	_, err = reviews.GetRequest(stranger, request.Id)
	assert.ErrorIs(t, err, app_error.ErrNotFound)
}

func TestApproveRevalidatesAgainstCurrentState(t *testing.T) {
	defer tearDown()
	reviews, _, _ := newTestReviewService()
	ownerA := createAccount(t)
	clubA := createClub(t, ownerA, true)
	ownerB := createAccount(t)
	clubB := createClub(t, ownerB, true)
	archer := createAccount(t)

	first, err := reviews.Submit(archer, repository.KindClubEnrollment, clubA.Id, "")
	require.NoError(t, err)
	second, err := reviews.Submit(archer, repository.KindClubEnrollment, clubB.Id, "")
	require.NoError(t, err)

	_, err = reviews.Approve(context.Background(), ownerA, first.Id, "")
	require.NoError(t, err)
	_, err = reviews.Approve(context.Background(), ownerB, second.Id, "")
	assert.ErrorIs(t, err, app_error.ErrConflict)
	assert.Equal(t, clubA.Id, *reload(t, archer).ClubId)
}

func TestCancelOnlyOwnOpenRequests(t *testing.T) {
	defer tearDown()
	reviews, _, _ := newTestReviewService()
	owner := createAccount(t)
	club := createClub(t, owner, true)
	archer := createAccount(t)

	request, err := reviews.Submit(archer, repository.KindClubEnrollment, club.Id, "")
	require.NoError(t, err)
	assert.ErrorIs(t, reviews.Cancel(owner, request.Id), app_error.ErrForbidden)
	require.NoError(t, reviews.Cancel(archer, request.Id))

	outgoing, err := reviews.ListOutgoing(archer, repository.RequestFilter{})
	require.NoError(t, err)
	assert.Empty(t, outgoing)
}

func TestCompetitionEnrollmentRespectsEligibleGroup(t *testing.T) {
	defer tearDown()
	reviews, _, _ := newTestReviewService()
	host := createAccount(t)
	hostClub := createClub(t, host, true)
	otherOwner := createAccount(t)
	otherClub := createClub(t, otherOwner, true)

	group, err := NewEligibilityService(db).CreateGroup(host, "Region", []int{hostClub.Id})
	require.NoError(t, err)
	competition, _ := createCompetition(t, host, hostClub, createRound(t, 2), &group.Id)

	_, err = reviews.Submit(otherOwner, repository.KindCompetitionEnrollment, competition.Id, "")
	assert.ErrorIs(t, err, app_error.ErrForbidden)
	assert.NotEqual(t, hostClub.Id, otherClub.Id)

	member := createAccount(t)
	require.NoError(t, repository.NewAccountRepository(db).SetClub(member.Id, &hostClub.Id))
	member = reload(t, member)
	request, err := reviews.Submit(member, repository.KindCompetitionEnrollment, competition.Id, "")
	require.NoError(t, err)
	_, err = reviews.Approve(context.Background(), host, request.Id, "")
	require.NoError(t, err)

	entered, err := repository.NewParticipationRepository(db).IsParticipating(member.Id, competition.Id, repository.ParticipantArcher)
	require.NoError(t, err)
	assert.True(t, entered)
}

func TestFriendshipRequestsAreDirectional(t *testing.T) {
	defer tearDown()
	reviews, _, _ := newTestReviewService()
	friends := NewFriendService(db)
	alice := createAccount(t)
	bob := createAccount(t)

	request, err := reviews.Submit(alice, repository.KindFriendship, bob.Id, "")
	require.NoError(t, err)
	_, err = reviews.Submit(bob, repository.KindFriendship, alice.Id, "")
	assert.ErrorIs(t, err, app_error.ErrConflict, "a reverse open request blocks a new one")

	_, err = reviews.Approve(context.Background(), alice, request.Id, "")
	assert.ErrorIs(t, err, app_error.ErrForbidden)
	_, err = reviews.Approve(context.Background(), bob, request.Id, "")
	require.NoError(t, err)

	ok, err := friends.AreFriends(bob.Id, alice.Id)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, friends.RemoveFriend(bob, alice.Id))
	ok, err = friends.AreFriends(alice.Id, bob.Id)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAccountReportDeactivatesTarget(t *testing.T) {
	defer tearDown()
	reviews, _, _ := newTestReviewService()
	reporter := createAccount(t)
	target := createAccount(t)
	admin := createAccount(t, repository.RoleAdmin)

	request, err := reviews.Submit(reporter, repository.KindAccountReport, target.Id, "spam")
	require.NoError(t, err)

	incoming, err := reviews.ListIncoming(target, repository.RequestFilter{})
	require.NoError(t, err)
	assert.Empty(t, incoming)

	_, err = reviews.Approve(context.Background(), admin, request.Id, "")
	require.NoError(t, err)
	assert.True(t, reload(t, target).Deactivated)
}
