package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"archery/app_error"
	"archery/repository"
	"archery/utils"

	ics "github.com/arran4/golang-ical"
	"gorm.io/gorm"
)

type ChampionshipInput struct {
	Name            string
	Year            int
	EligibleGroupId *int
	StartDate       time.Time
	EndDate         time.Time
	Description     string
}

func (in ChampionshipInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return app_error.Validation("name is required")
	}
	if in.Year < 1900 || in.Year > 2200 {
		return app_error.Validation("year must be between 1900 and 2200")
	}
	return validateDates(in.StartDate, in.EndDate)
}

type CompetitionInput struct {
	Name              string
	HostClubId        int
	EligibleGroupId   *int
	StartDate         time.Time
	EndDate           time.Time
	Address           string
	OpenForEnrollment bool
}

func (in CompetitionInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return app_error.Validation("name is required")
	}
	return validateDates(in.StartDate, in.EndDate)
}

func validateDates(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return app_error.Validation("start and end dates are required")
	}
	if end.Before(start) {
		return app_error.Validation("end date must not be before start date")
	}
	return nil
}

type EventService struct {
	db                 *gorm.DB
	eventRepository    *repository.EventRepository
	roundRepository    *repository.RoundRepository
	clubRepository     *repository.ClubRepository
	eligibilityService *EligibilityService
	assets             *AssetService
}

func NewEventService(db *gorm.DB, eligibilityService *EligibilityService, assets *AssetService) *EventService {
	return &EventService{
		db:                 db,
		eventRepository:    repository.NewEventRepository(db),
		roundRepository:    repository.NewRoundRepository(db),
		clubRepository:     repository.NewClubRepository(db),
		eligibilityService: eligibilityService,
		assets:             assets,
	}
}

func (s *EventService) checkGroup(groupId *int) error {
	if groupId == nil {
		return nil
	}
	_, err := s.eligibilityService.GetGroup(*groupId)
	return err
}

func (s *EventService) CreateChampionship(actor *repository.Account, input ChampionshipInput) (*repository.YearlyClubChampionship, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	if err := s.checkGroup(input.EligibleGroupId); err != nil {
		return nil, err
	}
	return s.eventRepository.SaveChampionship(&repository.YearlyClubChampionship{
		Name:            strings.TrimSpace(input.Name),
		Year:            input.Year,
		CreatorId:       actor.Id,
		EligibleGroupId: input.EligibleGroupId,
		StartDate:       input.StartDate,
		EndDate:         input.EndDate,
		Description:     input.Description,
	})
}

func (s *EventService) UpdateChampionship(actor *repository.Account, id int, input ChampionshipInput) (*repository.YearlyClubChampionship, error) {
	championship, err := s.eventRepository.GetChampionship(id)
	if err != nil {
		return nil, err
	}
	if championship.CreatorId != actor.Id && !actor.IsAdmin() {
		return nil, app_error.Forbidden("only the creator can edit this championship")
	}
	if err := input.validate(); err != nil {
		return nil, err
	}
	if err := s.checkGroup(input.EligibleGroupId); err != nil {
		return nil, err
	}
	championship.Name = strings.TrimSpace(input.Name)
	championship.Year = input.Year
	championship.EligibleGroupId = input.EligibleGroupId
	championship.StartDate = input.StartDate
	championship.EndDate = input.EndDate
	championship.Description = input.Description
	return s.eventRepository.SaveChampionship(championship)
}

func (s *EventService) GetChampionship(id int) (*repository.YearlyClubChampionship, error) {
	return s.eventRepository.GetChampionship(id)
}

func (s *EventService) ListChampionships(year *int) ([]*repository.YearlyClubChampionship, error) {
	return s.eventRepository.ListChampionships(year)
}

// CanManageCompetition is true for the competition creator, the host club creator and admins.
func (s *EventService) CanManageCompetition(actor *repository.Account, competition *repository.ClubCompetition) (bool, error) {
	if actor.IsAdmin() || competition.CreatorId == actor.Id {
		return true, nil
	}
	club, err := s.clubRepository.GetById(competition.HostClubId)
	if err != nil {
		return false, err
	}
	return club.CreatorId == actor.Id, nil
}

func (s *EventService) managedCompetition(actor *repository.Account, id int) (*repository.ClubCompetition, error) {
	competition, err := s.eventRepository.GetCompetition(id)
	if err != nil {
		return nil, err
	}
	ok, err := s.CanManageCompetition(actor, competition)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, app_error.Forbidden("you cannot manage this competition")
	}
	return competition, nil
}

func (s *EventService) CreateCompetition(actor *repository.Account, input CompetitionInput) (*repository.ClubCompetition, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	club, err := s.clubRepository.GetById(input.HostClubId)
	if err != nil {
		return nil, err
	}
	if club.CreatorId != actor.Id && !actor.IsAdmin() && !actor.HasRole(repository.RoleFederationMember) {
		return nil, app_error.Forbidden("only the host club creator can create its competitions")
	}
	if err := s.checkGroup(input.EligibleGroupId); err != nil {
		return nil, err
	}
	return s.eventRepository.SaveCompetition(&repository.ClubCompetition{
		Name:              strings.TrimSpace(input.Name),
		HostClubId:        input.HostClubId,
		CreatorId:         actor.Id,
		EligibleGroupId:   input.EligibleGroupId,
		StartDate:         input.StartDate,
		EndDate:           input.EndDate,
		Address:           input.Address,
		OpenForEnrollment: input.OpenForEnrollment,
	})
}

func (s *EventService) UpdateCompetition(actor *repository.Account, id int, input CompetitionInput) (*repository.ClubCompetition, error) {
	competition, err := s.managedCompetition(actor, id)
	if err != nil {
		return nil, err
	}
	if err := input.validate(); err != nil {
		return nil, err
	}
	if err := s.checkGroup(input.EligibleGroupId); err != nil {
		return nil, err
	}
	competition.Name = strings.TrimSpace(input.Name)
	competition.EligibleGroupId = input.EligibleGroupId
	competition.StartDate = input.StartDate
	competition.EndDate = input.EndDate
	competition.Address = input.Address
	competition.OpenForEnrollment = input.OpenForEnrollment
	return s.eventRepository.SaveCompetition(competition)
}

func (s *EventService) GetCompetition(id int) (*repository.ClubCompetition, error) {
	return s.eventRepository.GetCompetition(id)
}

func (s *EventService) ListCompetitions(filter repository.CompetitionFilter) ([]*repository.ClubCompetition, error) {
	return s.eventRepository.ListCompetitions(filter)
}

func (s *EventService) UploadCompetitionDocument(ctx context.Context, actor *repository.Account, id int, data []byte) (*repository.ClubCompetition, error) {
	competition, err := s.managedCompetition(actor, id)
	if err != nil {
		return nil, err
	}
	url, err := s.assets.Upload(ctx, "documents", data, DocumentTypes)
	if err != nil {
		return nil, err
	}
	competition.DocumentUrl = &url
	return s.eventRepository.SaveCompetition(competition)
}

// ScheduleRound creates one context per end of every range of the round.
func (s *EventService) ScheduleRound(actor *repository.Account, competitionId int, roundId int) ([]*repository.EventContext, error) {
	competition, err := s.managedCompetition(actor, competitionId)
	if err != nil {
		return nil, err
	}
	round, err := s.roundRepository.GetById(roundId)
	if err != nil {
		return nil, err
	}
	championshipId, err := s.eventRepository.ChampionshipOf(competition.Id)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		events := repository.NewEventRepository(tx)
		scheduled, err := events.CountScheduled(competition.Id, round.Id)
		if err != nil {
			return err
		}
		if scheduled > 0 {
			return app_error.Conflict("round is already scheduled for this competition")
		}
		return events.CreateContexts(ContextsForRound(competition.Id, championshipId, round))
	})
	if err != nil {
		return nil, err
	}
	return s.eventRepository.GetSchedule(competition.Id)
}

// ContextsForRound expands a round into end positions.
func ContextsForRound(competitionId int, championshipId *int, round *repository.Round) []*repository.EventContext {
	contexts := make([]*repository.EventContext, 0)
	for _, rng := range round.Ranges {
		for end := 1; end <= rng.NumberOfEnds; end++ {
			contexts = append(contexts, &repository.EventContext{
				ChampionshipId: championshipId,
				CompetitionId:  utils.Ptr(competitionId),
				RoundId:        round.Id,
				RangeId:        rng.Id,
				EndOrder:       end,
			})
		}
	}
	return contexts
}

func (s *EventService) AttachToChampionship(actor *repository.Account, competitionId int, championshipId int) error {
	competition, err := s.managedCompetition(actor, competitionId)
	if err != nil {
		return err
	}
	championship, err := s.eventRepository.GetChampionship(championshipId)
	if err != nil {
		return err
	}
	eligible, err := s.eligibilityService.IsClubEligible(championship.EligibleGroupId, &competition.HostClubId)
	if err != nil {
		return err
	}
	if !eligible {
		return app_error.Forbidden("the host club is not eligible for this championship")
	}
	updated, err := s.eventRepository.SetChampionship(competition.Id, &championship.Id)
	if err != nil {
		return err
	}
	if updated == 0 {
		return app_error.Validation("schedule a round before attaching the competition")
	}
	return nil
}

func (s *EventService) DetachFromChampionship(actor *repository.Account, competitionId int) error {
	competition, err := s.managedCompetition(actor, competitionId)
	if err != nil {
		return err
	}
	_, err = s.eventRepository.SetChampionship(competition.Id, nil)
	return err
}

func (s *EventService) ChampionshipOf(competitionId int) (*int, error) {
	return s.eventRepository.ChampionshipOf(competitionId)
}

func (s *EventService) GetSchedule(competitionId int) ([]*repository.EventContext, error) {
	if _, err := s.eventRepository.GetCompetition(competitionId); err != nil {
		return nil, err
	}
	return s.eventRepository.GetSchedule(competitionId)
}

func (s *EventService) ListParticipants(competitionId int) ([]*repository.Participating, error) {
	if _, err := s.eventRepository.GetCompetition(competitionId); err != nil {
		return nil, err
	}
	return repository.NewParticipationRepository(s.db).ListParticipants(competitionId)
}

func (s *EventService) GetContext(id int) (*repository.EventContext, error) {
	return s.eventRepository.GetContext(id)
}

// BuildEventTree loads one level per query and assembles the tree.
func (s *EventService) BuildEventTree(championshipId int) (*EventTree, error) {
	championship, err := s.eventRepository.GetChampionship(championshipId)
	if err != nil {
		return nil, err
	}
	contexts, err := s.eventRepository.GetContextsForChampionship(championshipId)
	if err != nil {
		return nil, err
	}
	competitionIds := utils.Uniques(utils.FlatMap(contexts, func(c *repository.EventContext) []int {
		if c.CompetitionId == nil {
			return nil
		}
		return []int{*c.CompetitionId}
	}))
	competitions, err := s.eventRepository.GetCompetitionsByIds(competitionIds)
	if err != nil {
		return nil, err
	}
	rounds, err := s.roundRepository.GetByIds(utils.Uniques(utils.Map(contexts, func(c *repository.EventContext) int { return c.RoundId })))
	if err != nil {
		return nil, err
	}
	ranges, err := s.roundRepository.GetRangesByIds(utils.Uniques(utils.Map(contexts, func(c *repository.EventContext) int { return c.RangeId })))
	if err != nil {
		return nil, err
	}
	return BuildTree(championship, competitions, rounds, ranges, contexts), nil
}

// PracticeContext returns the shared practice position, creating it on first use.
func (s *EventService) PracticeContext(roundId, rangeId, endOrder int) (*repository.EventContext, error) {
	rng, err := s.roundRepository.GetRange(rangeId)
	if err != nil {
		return nil, err
	}
	if rng.RoundId != roundId {
		return nil, app_error.Validation("range does not belong to round")
	}
	if endOrder < 1 || endOrder > rng.NumberOfEnds {
		return nil, app_error.Validation(fmt.Sprintf("end must be between 1 and %d", rng.NumberOfEnds))
	}
	return s.eventRepository.PracticeContext(roundId, rangeId, endOrder)
}

func (s *EventService) ExportCompetitionCalendar(competitionId int) ([]byte, error) {
	competition, err := s.eventRepository.GetCompetition(competitionId)
	if err != nil {
		return nil, err
	}
	return ExportCalendar([]*repository.ClubCompetition{competition})
}

func (s *EventService) ExportChampionshipCalendar(championshipId int) ([]byte, error) {
	if _, err := s.eventRepository.GetChampionship(championshipId); err != nil {
		return nil, err
	}
	competitions, err := s.eventRepository.ListCompetitions(repository.CompetitionFilter{ChampionshipId: &championshipId})
	if err != nil {
		return nil, err
	}
	return ExportCalendar(competitions)
}

// ExportCalendar writes one all-day VEVENT per competition.
func ExportCalendar(competitions []*repository.ClubCompetition) ([]byte, error) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//Archery Club Manager//EN")
	cal.SetVersion("2.0")
	cal.SetCalscale("GREGORIAN")

	now := time.Now()
	for _, competition := range competitions {
		e := cal.AddEvent(fmt.Sprintf("competition-%d@archery", competition.Id))
		e.SetDtStampTime(now)
		e.SetStartAt(competition.StartDate)
		e.SetEndAt(competition.EndDate.AddDate(0, 0, 1))
		e.SetSummary(competition.Name)
		e.SetLocation(competition.Address)
		if competition.DocumentUrl != nil {
			e.SetURL(*competition.DocumentUrl)
		}
		e.SetStatus(ics.ObjectStatusConfirmed)
		e.SetClass(ics.ClassificationPublic)
	}
	return []byte(cal.Serialize()), nil
}
