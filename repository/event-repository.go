package repository

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type YearlyClubChampionship struct {
	Id              int       `gorm:"primaryKey"`
	Name            string    `gorm:"not null"`
	Year            int       `gorm:"not null;index"`
	CreatorId       int       `gorm:"not null"`
	EligibleGroupId *int      `gorm:"null"`
	StartDate       time.Time `gorm:"type:date;not null"`
	EndDate         time.Time `gorm:"type:date;not null"`
	Description     string    `gorm:"type:text;not null;default:''"`

	EligibleGroup *EligibleGroup `gorm:"foreignKey:EligibleGroupId;constraint:OnDelete:SET NULL;"`
}

type ClubCompetition struct {
	Id                int       `gorm:"primaryKey"`
	Name              string    `gorm:"not null"`
	HostClubId        int       `gorm:"not null;index"`
	CreatorId         int       `gorm:"not null"`
	EligibleGroupId   *int      `gorm:"null"`
	StartDate         time.Time `gorm:"type:date;not null"`
	EndDate           time.Time `gorm:"type:date;not null"`
	Address           string    `gorm:"not null;default:''"`
	OpenForEnrollment bool      `gorm:"not null;default:false"`
	DocumentUrl       *string   `gorm:"null"`

	HostClub      *Club          `gorm:"foreignKey:HostClubId;constraint:OnDelete:RESTRICT;"`
	EligibleGroup *EligibleGroup `gorm:"foreignKey:EligibleGroupId;constraint:OnDelete:SET NULL;"`
}

// EventContext identifies one scheduled end. A nil CompetitionId marks a practice context.
type EventContext struct {
	Id             int  `gorm:"primaryKey"`
	ChampionshipId *int `gorm:"null;index"`
	CompetitionId  *int `gorm:"null;uniqueIndex:idx_context_position"`
	RoundId        int  `gorm:"not null;uniqueIndex:idx_context_position"`
	RangeId        int  `gorm:"not null;uniqueIndex:idx_context_position"`
	EndOrder       int  `gorm:"not null;uniqueIndex:idx_context_position"`

	Championship *YearlyClubChampionship `gorm:"foreignKey:ChampionshipId;constraint:OnDelete:SET NULL;"`
	Competition  *ClubCompetition        `gorm:"foreignKey:CompetitionId;constraint:OnDelete:CASCADE;"`
	Round        *Round                  `gorm:"foreignKey:RoundId;constraint:OnDelete:RESTRICT;"`
	Range        *Range                  `gorm:"foreignKey:RangeId;constraint:OnDelete:RESTRICT;"`
}

func (c *EventContext) IsPractice() bool {
	return c.CompetitionId == nil
}

type CompetitionFilter struct {
	HostClubId     *int
	ChampionshipId *int
	OpenOnly       bool
}

type EventRepository struct {
	DB *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{DB: db}
}

func (r *EventRepository) GetChampionship(id int) (*YearlyClubChampionship, error) {
	var championship YearlyClubChampionship
	result := r.DB.First(&championship, id)
	if result.Error != nil {
		return nil, result.Error
	}
	return &championship, nil
}

func (r *EventRepository) ListChampionships(year *int) ([]*YearlyClubChampionship, error) {
	championships := make([]*YearlyClubChampionship, 0)
	query := r.DB.Order("year DESC, start_date ASC")
	if year != nil {
		query = query.Where("year = ?", *year)
	}
	result := query.Find(&championships)
	if result.Error != nil {
		return nil, result.Error
	}
	return championships, nil
}

func (r *EventRepository) SaveChampionship(championship *YearlyClubChampionship) (*YearlyClubChampionship, error) {
	result := r.DB.Omit("EligibleGroup").Save(championship)
	if result.Error != nil {
		return nil, result.Error
	}
	return championship, nil
}

func (r *EventRepository) GetCompetition(id int) (*ClubCompetition, error) {
	var competition ClubCompetition
	result := r.DB.First(&competition, id)
	if result.Error != nil {
		return nil, result.Error
	}
	return &competition, nil
}

func (r *EventRepository) GetCompetitionsByIds(ids []int) ([]*ClubCompetition, error) {
	competitions := make([]*ClubCompetition, 0)
	if len(ids) == 0 {
		return competitions, nil
	}
	result := r.DB.Order("start_date ASC, id ASC").Find(&competitions, "id IN ?", ids)
	if result.Error != nil {
		return nil, result.Error
	}
	return competitions, nil
}

func (r *EventRepository) ListCompetitions(filter CompetitionFilter) ([]*ClubCompetition, error) {
	timer := prometheus.NewTimer(queryDuration.WithLabelValues("ListCompetitions"))
	defer timer.ObserveDuration()
	competitions := make([]*ClubCompetition, 0)
	query := r.DB.Order("start_date ASC, id ASC")
	if filter.HostClubId != nil {
		query = query.Where("host_club_id = ?", *filter.HostClubId)
	}
	if filter.ChampionshipId != nil {
		query = query.Where("id IN (?)", r.DB.Model(&EventContext{}).
			Distinct("competition_id").
			Where("championship_id = ?", *filter.ChampionshipId))
	}
	if filter.OpenOnly {
		query = query.Where("open_for_enrollment = ?", true)
	}
	result := query.Find(&competitions)
	if result.Error != nil {
		return nil, result.Error
	}
	return competitions, nil
}

func (r *EventRepository) ListCompetitionsForCreator(accountId int, hostClubIds []int) ([]*ClubCompetition, error) {
	competitions := make([]*ClubCompetition, 0)
	query := r.DB.Where("creator_id = ?", accountId)
	if len(hostClubIds) > 0 {
		query = query.Or("host_club_id IN ?", hostClubIds)
	}
	result := query.Find(&competitions)
	if result.Error != nil {
		return nil, result.Error
	}
	return competitions, nil
}

func (r *EventRepository) SaveCompetition(competition *ClubCompetition) (*ClubCompetition, error) {
	result := r.DB.Omit("HostClub", "EligibleGroup").Save(competition)
	if result.Error != nil {
		return nil, result.Error
	}
	return competition, nil
}

func (r *EventRepository) CountScheduled(competitionId int, roundId int) (int64, error) {
	var count int64
	result := r.DB.Model(&EventContext{}).
		Where("competition_id = ? AND round_id = ?", competitionId, roundId).
		Count(&count)
	return count, result.Error
}

func (r *EventRepository) CreateContexts(contexts []*EventContext) error {
	if len(contexts) == 0 {
		return nil
	}
	return r.DB.Omit(clause.Associations).CreateInBatches(contexts, 500).Error
}

// GetSchedule orders contexts by round, range order and end order.
func (r *EventRepository) GetSchedule(competitionId int) ([]*EventContext, error) {
	timer := prometheus.NewTimer(queryDuration.WithLabelValues("GetSchedule"))
	defer timer.ObserveDuration()
	contexts := make([]*EventContext, 0)
	result := r.DB.
		Joins("JOIN archery.ranges ON ranges.id = event_contexts.range_id").
		Where("event_contexts.competition_id = ?", competitionId).
		Order("event_contexts.round_id ASC, ranges.range_order ASC, event_contexts.end_order ASC").
		Find(&contexts)
	if result.Error != nil {
		return nil, result.Error
	}
	return contexts, nil
}

func (r *EventRepository) GetContextsForChampionship(championshipId int) ([]*EventContext, error) {
	contexts := make([]*EventContext, 0)
	result := r.DB.Where("championship_id = ?", championshipId).Order("id ASC").Find(&contexts)
	if result.Error != nil {
		return nil, result.Error
	}
	return contexts, nil
}

func (r *EventRepository) GetContext(id int) (*EventContext, error) {
	var context EventContext
	result := r.DB.Preload("Range").First(&context, id)
	if result.Error != nil {
		return nil, result.Error
	}
	return &context, nil
}

// ChampionshipOf returns the championship a competition is attached to, if any.
func (r *EventRepository) ChampionshipOf(competitionId int) (*int, error) {
	var ids []int
	result := r.DB.Model(&EventContext{}).
		Distinct("championship_id").
		Where("competition_id = ? AND championship_id IS NOT NULL", competitionId).
		Pluck("championship_id", &ids)
	if result.Error != nil || len(ids) == 0 {
		return nil, result.Error
	}
	return &ids[0], nil
}

func (r *EventRepository) SetChampionship(competitionId int, championshipId *int) (int64, error) {
	result := r.DB.Model(&EventContext{}).
		Where("competition_id = ?", competitionId).
		Update("championship_id", championshipId)
	return result.RowsAffected, result.Error
}

func (r *EventRepository) PracticeContext(roundId, rangeId, endOrder int) (*EventContext, error) {
	var context EventContext
	result := r.DB.
		Where("competition_id IS NULL AND round_id = ? AND range_id = ? AND end_order = ?", roundId, rangeId, endOrder).
		Attrs(EventContext{RoundId: roundId, RangeId: rangeId, EndOrder: endOrder}).
		FirstOrCreate(&context)
	if result.Error != nil {
		return nil, result.Error
	}
	return &context, nil
}
