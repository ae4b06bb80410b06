package repository

import (
	"time"

	"gorm.io/gorm"
)

type CacheKey int

const (
	CompetitionLeaderboard CacheKey = 1
	ChampionshipStandings  CacheKey = 2
)

type CachedData struct {
	Key       CacheKey  `gorm:"primaryKey"`
	ScopeId   int       `gorm:"primaryKey"`
	Data      []byte    `gorm:"not null"`
	Timestamp time.Time `gorm:"not null"`
}

type CachedDataRepository struct {
	DB *gorm.DB
}

func NewCachedDataRepository(db *gorm.DB) *CachedDataRepository {
	return &CachedDataRepository{DB: db}
}

func (r *CachedDataRepository) Get(key CacheKey, scopeId int) (*CachedData, error) {
	var data CachedData
	result := r.DB.First(&data, "key = ? AND scope_id = ?", key, scopeId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &data, nil
}

func (r *CachedDataRepository) Save(key CacheKey, scopeId int, data []byte) error {
	return r.DB.Save(&CachedData{
		Key:       key,
		ScopeId:   scopeId,
		Data:      data,
		Timestamp: time.Now(),
	}).Error
}
