package service

import (
	"errors"
	"time"

	"archery/app_error"
	"archery/repository"
	"archery/utils"

	"gorm.io/gorm"
)

// reviewRepos binds every repository a handler may touch to one transaction.
type reviewRepos struct {
	accounts      *repository.AccountRepository
	clubs         *repository.ClubRepository
	events        *repository.EventRepository
	groups        *repository.EligibleGroupRepository
	participation *repository.ParticipationRepository
	friendships   *repository.FriendshipRepository
	requests      *repository.ReviewRequestRepository
}

func newReviewRepos(db *gorm.DB) *reviewRepos {
	return &reviewRepos{
		accounts:      repository.NewAccountRepository(db),
		clubs:         repository.NewClubRepository(db),
		events:        repository.NewEventRepository(db),
		groups:        repository.NewEligibleGroupRepository(db),
		participation: repository.NewParticipationRepository(db),
		friendships:   repository.NewFriendshipRepository(db),
		requests:      repository.NewReviewRequestRepository(db),
	}
}

// RequestHandler holds the kind specific parts of a reviewable request.
type RequestHandler interface {
	// Validate runs at submission and again right before approval.
	Validate(repos *reviewRepos, requester *repository.Account, targetId int) error
	CanReview(repos *reviewRepos, reviewer *repository.Account, request *repository.ReviewRequest) (bool, error)
	// ReviewableTargets lists target ids the reviewer may decide on. nil means all targets.
	ReviewableTargets(repos *reviewRepos, reviewer *repository.Account) ([]int, error)
	Apply(repos *reviewRepos, request *repository.ReviewRequest) error
}

func defaultHandlers(now func() time.Time) map[repository.RequestKind]RequestHandler {
	return map[repository.RequestKind]RequestHandler{
		repository.KindClubEnrollment:        &clubEnrollmentHandler{now: now},
		repository.KindCompetitionEnrollment: &competitionEnrollmentHandler{},
		repository.KindCompetitionWithdrawal: &competitionWithdrawalHandler{},
		repository.KindRecorderAssignment:    &recorderAssignmentHandler{},
		repository.KindAccountReport:         &accountReportHandler{},
		repository.KindFriendship:            &friendshipHandler{},
	}
}

type clubEnrollmentHandler struct {
	now func() time.Time
}

func (h *clubEnrollmentHandler) Validate(repos *reviewRepos, requester *repository.Account, clubId int) error {
	if requester.ClubId != nil {
		return app_error.Conflict("you already belong to a club")
	}
	club, err := repos.clubs.GetById(clubId)
	if err != nil {
		return err
	}
	if !club.OpenToJoin {
		return app_error.Validation("this club is not accepting members")
	}
	if !club.AdmitsAge(requester.Age(h.now())) {
		return app_error.Validation("your age is outside the club's age range")
	}
	return nil
}

func (h *clubEnrollmentHandler) CanReview(repos *reviewRepos, reviewer *repository.Account, request *repository.ReviewRequest) (bool, error) {
	if reviewer.IsAdmin() {
		return true, nil
	}
	club, err := repos.clubs.GetById(request.TargetId)
	if err != nil {
		return false, err
	}
	return club.CreatorId == reviewer.Id, nil
}

func (h *clubEnrollmentHandler) ReviewableTargets(repos *reviewRepos, reviewer *repository.Account) ([]int, error) {
	if reviewer.IsAdmin() {
		return nil, nil
	}
	clubs, err := repos.clubs.ListCreatedBy(reviewer.Id)
	if err != nil {
		return nil, err
	}
	return utils.Map(clubs, func(c *repository.Club) int { return c.Id }), nil
}

func (h *clubEnrollmentHandler) Apply(repos *reviewRepos, request *repository.ReviewRequest) error {
	return repos.accounts.SetClub(request.RequesterId, &request.TargetId)
}

// competitionReviewer is shared by the three competition scoped kinds.
type competitionReviewer struct{}

func (competitionReviewer) CanReview(repos *reviewRepos, reviewer *repository.Account, request *repository.ReviewRequest) (bool, error) {
	if reviewer.IsAdmin() {
		return true, nil
	}
	competition, err := repos.events.GetCompetition(request.TargetId)
	if err != nil {
		return false, err
	}
	if competition.CreatorId == reviewer.Id {
		return true, nil
	}
	club, err := repos.clubs.GetById(competition.HostClubId)
	if err != nil {
		return false, err
	}
	return club.CreatorId == reviewer.Id, nil
}

func (competitionReviewer) ReviewableTargets(repos *reviewRepos, reviewer *repository.Account) ([]int, error) {
	if reviewer.IsAdmin() {
		return nil, nil
	}
	clubs, err := repos.clubs.ListCreatedBy(reviewer.Id)
	if err != nil {
		return nil, err
	}
	competitions, err := repos.events.ListCompetitionsForCreator(reviewer.Id, utils.Map(clubs, func(c *repository.Club) int { return c.Id }))
	if err != nil {
		return nil, err
	}
	return utils.Map(competitions, func(c *repository.ClubCompetition) int { return c.Id }), nil
}

type competitionEnrollmentHandler struct {
	competitionReviewer
}

func groupAdmits(repos *reviewRepos, groupId *int, clubId *int) (bool, error) {
	if groupId == nil {
		return true, nil
	}
	group, err := repos.groups.GetById(*groupId)
	if err != nil {
		return false, err
	}
	return IsClubEligible(group, clubId), nil
}

func (h *competitionEnrollmentHandler) Validate(repos *reviewRepos, requester *repository.Account, competitionId int) error {
	if !requester.HasRole(repository.RoleArcher) {
		return app_error.Forbidden("only archers can enter competitions")
	}
	competition, err := repos.events.GetCompetition(competitionId)
	if err != nil {
		return err
	}
	if !competition.OpenForEnrollment {
		return app_error.Validation("this competition is not open for enrollment")
	}
	participating, err := repos.participation.IsParticipating(requester.Id, competitionId, repository.ParticipantArcher)
	if err != nil {
		return err
	}
	if participating {
		return app_error.Conflict("you are already entered in this competition")
	}
	ok, err := groupAdmits(repos, competition.EligibleGroupId, requester.ClubId)
	if err != nil {
		return err
	}
	if !ok {
		return app_error.Forbidden("your club is not eligible for this competition")
	}
	championshipId, err := repos.events.ChampionshipOf(competitionId)
	if err != nil {
		return err
	}
	if championshipId != nil {
		championship, err := repos.events.GetChampionship(*championshipId)
		if err != nil {
			return err
		}
		ok, err := groupAdmits(repos, championship.EligibleGroupId, requester.ClubId)
		if err != nil {
			return err
		}
		if !ok {
			return app_error.Forbidden("your club is not eligible for this championship")
		}
	}
	return nil
}

func (h *competitionEnrollmentHandler) Apply(repos *reviewRepos, request *repository.ReviewRequest) error {
	return repos.participation.Add(request.RequesterId, request.TargetId, repository.ParticipantArcher)
}

type competitionWithdrawalHandler struct {
	competitionReviewer
}

func (h *competitionWithdrawalHandler) Validate(repos *reviewRepos, requester *repository.Account, competitionId int) error {
	participating, err := repos.participation.IsParticipating(requester.Id, competitionId, repository.ParticipantArcher)
	if err != nil {
		return err
	}
	if !participating {
		return app_error.Validation("you are not entered in this competition")
	}
	return nil
}

func (h *competitionWithdrawalHandler) Apply(repos *reviewRepos, request *repository.ReviewRequest) error {
	if err := repos.participation.Remove(request.RequesterId, request.TargetId, repository.ParticipantArcher); err != nil {
		return err
	}
	return repos.participation.DeleteOpenScores(request.RequesterId, request.TargetId)
}

type recorderAssignmentHandler struct {
	competitionReviewer
}

func (h *recorderAssignmentHandler) Validate(repos *reviewRepos, requester *repository.Account, competitionId int) error {
	if !requester.HasRole(repository.RoleRecorder) {
		return app_error.Forbidden("only recorders can be assigned")
	}
	if _, err := repos.events.GetCompetition(competitionId); err != nil {
		return err
	}
	assigned, err := repos.participation.IsParticipating(requester.Id, competitionId, repository.ParticipantRecorder)
	if err != nil {
		return err
	}
	if assigned {
		return app_error.Conflict("you are already a recorder for this competition")
	}
	return nil
}

func (h *recorderAssignmentHandler) Apply(repos *reviewRepos, request *repository.ReviewRequest) error {
	return repos.participation.Add(request.RequesterId, request.TargetId, repository.ParticipantRecorder)
}

type accountReportHandler struct{}

func (h *accountReportHandler) Validate(repos *reviewRepos, requester *repository.Account, targetId int) error {
	if requester.Id == targetId {
		return app_error.Validation("you cannot report yourself")
	}
	_, err := repos.accounts.GetById(targetId)
	return err
}

func (h *accountReportHandler) CanReview(_ *reviewRepos, reviewer *repository.Account, _ *repository.ReviewRequest) (bool, error) {
	return reviewer.IsAdmin(), nil
}

func (h *accountReportHandler) ReviewableTargets(_ *reviewRepos, reviewer *repository.Account) ([]int, error) {
	if reviewer.IsAdmin() {
		return nil, nil
	}
	return []int{}, nil
}

func (h *accountReportHandler) Apply(repos *reviewRepos, request *repository.ReviewRequest) error {
	return repos.accounts.SetDeactivated(request.TargetId, true)
}

type friendshipHandler struct{}

func (h *friendshipHandler) Validate(repos *reviewRepos, requester *repository.Account, targetId int) error {
	if requester.Id == targetId {
		return app_error.Validation("you cannot befriend yourself")
	}
	if _, err := repos.accounts.GetById(targetId); err != nil {
		return err
	}
	friends, err := repos.friendships.Exists(requester.Id, targetId)
	if err != nil {
		return err
	}
	if friends {
		return app_error.Conflict("you are already friends")
	}
	reverse, err := repos.requests.HasOpen(repository.KindFriendship, targetId, requester.Id)
	if err != nil {
		return err
	}
	if reverse {
		return app_error.Conflict("this account already sent you a friend request")
	}
	return nil
}

func (h *friendshipHandler) CanReview(_ *reviewRepos, reviewer *repository.Account, request *repository.ReviewRequest) (bool, error) {
	return request.TargetId == reviewer.Id, nil
}

func (h *friendshipHandler) ReviewableTargets(_ *reviewRepos, reviewer *repository.Account) ([]int, error) {
	return []int{reviewer.Id}, nil
}

func (h *friendshipHandler) Apply(repos *reviewRepos, request *repository.ReviewRequest) error {
	return repos.friendships.Create(request.RequesterId, request.TargetId)
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
