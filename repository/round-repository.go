package repository

import (
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

type Round struct {
	Id          int      `gorm:"primaryKey"`
	Name        string   `gorm:"not null;uniqueIndex"`
	CategoryId  int      `gorm:"not null;index"`
	Description string   `gorm:"not null;default:''"`
	Ranges      []*Range `gorm:"foreignKey:RoundId;constraint:OnDelete:CASCADE"`

	Category *Category `gorm:"foreignKey:CategoryId;constraint:OnDelete:RESTRICT;"`
}

type Range struct {
	Id           int `gorm:"primaryKey"`
	RoundId      int `gorm:"not null;uniqueIndex:idx_range_order"`
	RangeOrder   int `gorm:"not null;uniqueIndex:idx_range_order"`
	DistanceM    int `gorm:"not null"`
	TargetFaceId int `gorm:"not null"`
	NumberOfEnds int `gorm:"not null"`
	ArrowsPerEnd int `gorm:"not null"`

	TargetFace *TargetFace `gorm:"foreignKey:TargetFaceId;constraint:OnDelete:RESTRICT;"`
}

// MaxScore is the best possible total of the range.
func (r *Range) MaxScore() int {
	return r.NumberOfEnds * r.ArrowsPerEnd * 10
}

func (r *Round) MaxScore() int {
	total := 0
	for _, rng := range r.Ranges {
		total += rng.MaxScore()
	}
	return total
}

type RoundRepository struct {
	DB *gorm.DB
}

func NewRoundRepository(db *gorm.DB) *RoundRepository {
	return &RoundRepository{DB: db}
}

func (r *RoundRepository) preloaded() *gorm.DB {
	return r.DB.
		Preload("Ranges", func(db *gorm.DB) *gorm.DB { return db.Order("range_order ASC") }).
		Preload("Ranges.TargetFace").
		Preload("Category.Equipment").
		Preload("Category.Discipline").
		Preload("Category.AgeDivision")
}

func (r *RoundRepository) GetById(id int) (*Round, error) {
	var round Round
	result := r.preloaded().First(&round, id)
	if result.Error != nil {
		return nil, result.Error
	}
	return &round, nil
}

func (r *RoundRepository) GetByIds(ids []int) ([]*Round, error) {
	rounds := make([]*Round, 0)
	if len(ids) == 0 {
		return rounds, nil
	}
	result := r.preloaded().Order("id ASC").Find(&rounds, "id IN ?", ids)
	if result.Error != nil {
		return nil, result.Error
	}
	return rounds, nil
}

func (r *RoundRepository) List(categoryId *int) ([]*Round, error) {
	timer := prometheus.NewTimer(queryDuration.WithLabelValues("ListRounds"))
	defer timer.ObserveDuration()
	rounds := make([]*Round, 0)
	query := r.preloaded().Order("name ASC")
	if categoryId != nil {
		query = query.Where("category_id = ?", *categoryId)
	}
	result := query.Find(&rounds)
	if result.Error != nil {
		return nil, result.Error
	}
	return rounds, nil
}

// Create inserts the round together with its ranges.
func (r *RoundRepository) Create(round *Round) (*Round, error) {
	result := r.DB.Omit("Category", "Ranges.TargetFace").Create(round)
	if result.Error != nil {
		return nil, result.Error
	}
	return r.GetById(round.Id)
}

func (r *RoundRepository) Delete(id int) error {
	return deleteById[Round](r.DB, id)
}

func (r *RoundRepository) GetRange(id int) (*Range, error) {
	var rng Range
	result := r.DB.First(&rng, id)
	if result.Error != nil {
		return nil, result.Error
	}
	return &rng, nil
}

func (r *RoundRepository) GetRangesByIds(ids []int) ([]*Range, error) {
	ranges := make([]*Range, 0)
	if len(ids) == 0 {
		return ranges, nil
	}
	result := r.DB.Order("round_id ASC, range_order ASC").Find(&ranges, "id IN ?", ids)
	if result.Error != nil {
		return nil, result.Error
	}
	return ranges, nil
}
