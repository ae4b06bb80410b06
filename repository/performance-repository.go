package repository

import (
	"time"

	"github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

// EndRow is one eligible end joined with its event position.
type EndRow struct {
	ArcherId       int
	EventContextId int
	ClubId         *int
	CompetitionId  *int
	ChampionshipId *int
	RoundId        int
	RangeId        int
	EndOrder       int
	CategoryId     int
	Type           ScoreType
	Arrows         pq.Int64Array `gorm:"type:integer[]"`
	Sum            int
	UpdatedAt      time.Time
}

type EndFilter struct {
	CompetitionId  *int
	ChampionshipId *int
	RoundId        *int
	CategoryId     *int
	ArcherIds      []int
	Types          []ScoreType
}

type PerformanceRepository struct {
	DB *gorm.DB
}

func NewPerformanceRepository(db *gorm.DB) *PerformanceRepository {
	return &PerformanceRepository{DB: db}
}

func (r *PerformanceRepository) EligibleEnds(filter EndFilter) ([]*EndRow, error) {
	timer := prometheus.NewTimer(queryDuration.WithLabelValues("EligibleEnds"))
	defer timer.ObserveDuration()

	query := r.DB.Table("archery.participant_scores ps").
		Select(`ps.archer_id, ps.event_context_id, a.club_id, ec.competition_id, ec.championship_id, ec.round_id, ec.range_id,
			ec.end_order, ro.category_id, ps.type, ps.arrows, ps.sum, ps.updated_at`).
		Joins("JOIN archery.event_contexts ec ON ec.id = ps.event_context_id").
		Joins("JOIN archery.rounds ro ON ro.id = ec.round_id").
		Joins("JOIN archery.accounts a ON a.id = ps.archer_id").
		Where("ps.status = ?", StatusEligible)

	if filter.CompetitionId != nil {
		query = query.Where("ec.competition_id = ?", *filter.CompetitionId)
	}
	if filter.ChampionshipId != nil {
		query = query.Where("ec.championship_id = ?", *filter.ChampionshipId)
	}
	if filter.RoundId != nil {
		query = query.Where("ec.round_id = ?", *filter.RoundId)
	}
	if filter.CategoryId != nil {
		query = query.Where("ro.category_id = ?", *filter.CategoryId)
	}
	if len(filter.ArcherIds) > 0 {
		query = query.Where("ps.archer_id IN ?", filter.ArcherIds)
	}
	if len(filter.Types) > 0 {
		query = query.Where("ps.type IN ?", filter.Types)
	}

	rows := make([]*EndRow, 0)
	result := query.Order("ps.archer_id ASC, ec.id ASC").Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}
	return rows, nil
}
