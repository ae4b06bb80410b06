package repository

import (
	"time"

	"github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

type ParticipationRole string

const (
	ParticipantArcher   ParticipationRole = "archer"
	ParticipantRecorder ParticipationRole = "recorder"
)

type ScoreType string

const (
	ScoreCompetition  ScoreType = "competition"
	ScorePractice     ScoreType = "practice"
	ScoreChampionship ScoreType = "championship"
)

func (t ScoreType) Valid() bool {
	return t == ScoreCompetition || t == ScorePractice || t == ScoreChampionship
}

type Participating struct {
	AccountId     int               `gorm:"primaryKey"`
	CompetitionId int               `gorm:"primaryKey;index"`
	Role          ParticipationRole `gorm:"primaryKey;type:archery.participation_role"`
	CreatedAt     time.Time

	Account     *Account         `gorm:"foreignKey:AccountId;constraint:OnDelete:CASCADE;"`
	Competition *ClubCompetition `gorm:"foreignKey:CompetitionId;constraint:OnDelete:CASCADE;"`
}

type ParticipantScore struct {
	Id             int           `gorm:"primaryKey"`
	ArcherId       int           `gorm:"not null;uniqueIndex:idx_score_key"`
	EventContextId int           `gorm:"not null;uniqueIndex:idx_score_key"`
	Type           ScoreType     `gorm:"not null;uniqueIndex:idx_score_key;type:archery.score_type"`
	Arrows         pq.Int64Array `gorm:"type:integer[];not null"`
	Sum            int           `gorm:"not null"`
	Status         ReviewStatus  `gorm:"not null;type:archery.review_status;default:'pending'"`
	RecorderId     *int          `gorm:"null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Archer       *Account      `gorm:"foreignKey:ArcherId;constraint:OnDelete:CASCADE;"`
	EventContext *EventContext `gorm:"foreignKey:EventContextId;constraint:OnDelete:CASCADE;"`
}

type ScoreFilter struct {
	ArcherId *int
	RoundId  *int
	Status   *ReviewStatus
}

type ParticipationRepository struct {
	DB *gorm.DB
}

func NewParticipationRepository(db *gorm.DB) *ParticipationRepository {
	return &ParticipationRepository{DB: db}
}

func (r *ParticipationRepository) Add(accountId, competitionId int, role ParticipationRole) error {
	return r.DB.Omit("Account", "Competition").Create(&Participating{
		AccountId:     accountId,
		CompetitionId: competitionId,
		Role:          role,
	}).Error
}

func (r *ParticipationRepository) Remove(accountId, competitionId int, role ParticipationRole) error {
	return r.DB.Delete(&Participating{}, "account_id = ? AND competition_id = ? AND role = ?", accountId, competitionId, role).Error
}

func (r *ParticipationRepository) IsParticipating(accountId, competitionId int, role ParticipationRole) (bool, error) {
	var count int64
	result := r.DB.Model(&Participating{}).
		Where("account_id = ? AND competition_id = ? AND role = ?", accountId, competitionId, role).
		Count(&count)
	return count > 0, result.Error
}

func (r *ParticipationRepository) ListParticipants(competitionId int) ([]*Participating, error) {
	participants := make([]*Participating, 0)
	result := r.DB.Preload("Account").Order("role ASC, account_id ASC").Find(&participants, "competition_id = ?", competitionId)
	if result.Error != nil {
		return nil, result.Error
	}
	return participants, nil
}

// DeleteOpenScores removes an archer's non-eligible scores in a competition.
func (r *ParticipationRepository) DeleteOpenScores(archerId, competitionId int) error {
	return r.DB.
		Where("archer_id = ? AND status <> ? AND event_context_id IN (?)", archerId, StatusEligible,
			r.DB.Model(&EventContext{}).Select("id").Where("competition_id = ?", competitionId)).
		Delete(&ParticipantScore{}).Error
}

func (r *ParticipationRepository) GetScore(id int) (*ParticipantScore, error) {
	var score ParticipantScore
	result := r.DB.Preload("EventContext").First(&score, id)
	if result.Error != nil {
		return nil, result.Error
	}
	return &score, nil
}

func (r *ParticipationRepository) FindScore(archerId, contextId int, scoreType ScoreType) (*ParticipantScore, error) {
	var score ParticipantScore
	result := r.DB.First(&score, "archer_id = ? AND event_context_id = ? AND type = ?", archerId, contextId, scoreType)
	if result.Error != nil {
		return nil, result.Error
	}
	return &score, nil
}

func (r *ParticipationRepository) SaveScore(score *ParticipantScore) (*ParticipantScore, error) {
	result := r.DB.Omit("Archer", "EventContext").Save(score)
	if result.Error != nil {
		return nil, result.Error
	}
	return score, nil
}

func (r *ParticipationRepository) ListCompetitionScores(competitionId int, filter ScoreFilter) ([]*ParticipantScore, error) {
	timer := prometheus.NewTimer(queryDuration.WithLabelValues("ListCompetitionScores"))
	defer timer.ObserveDuration()
	scores := make([]*ParticipantScore, 0)
	query := r.DB.Preload("EventContext").
		Joins("JOIN archery.event_contexts ec ON ec.id = participant_scores.event_context_id").
		Where("ec.competition_id = ?", competitionId)
	if filter.ArcherId != nil {
		query = query.Where("participant_scores.archer_id = ?", *filter.ArcherId)
	}
	if filter.RoundId != nil {
		query = query.Where("ec.round_id = ?", *filter.RoundId)
	}
	if filter.Status != nil {
		query = query.Where("participant_scores.status = ?", *filter.Status)
	}
	result := query.Order("participant_scores.archer_id ASC, ec.id ASC").Find(&scores)
	if result.Error != nil {
		return nil, result.Error
	}
	return scores, nil
}

func (r *ParticipationRepository) ListArcherScores(archerId int) ([]*ParticipantScore, error) {
	scores := make([]*ParticipantScore, 0)
	result := r.DB.Preload("EventContext").
		Order("updated_at DESC").
		Find(&scores, "archer_id = ?", archerId)
	if result.Error != nil {
		return nil, result.Error
	}
	return scores, nil
}
