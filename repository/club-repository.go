package repository

import (
	"time"

	"gorm.io/gorm"
)

type Club struct {
	Id          int     `gorm:"primaryKey"`
	Name        string  `gorm:"not null;uniqueIndex"`
	Description string  `gorm:"type:text;not null;default:''"`
	CreatorId   int     `gorm:"not null;index"`
	MinAge      int     `gorm:"not null;default:0"`
	MaxAge      int     `gorm:"not null"`
	OpenToJoin  bool    `gorm:"not null"`
	LogoUrl     *string `gorm:"null"`
	CreatedAt   time.Time

	Creator *Account `gorm:"foreignKey:CreatorId;constraint:OnDelete:RESTRICT;"`
}

// AdmitsAge reports whether an archer of the given age may join.
func (c *Club) AdmitsAge(age int) bool {
	return c.MinAge <= age && age <= c.MaxAge
}

type ClubRepository struct {
	DB *gorm.DB
}

func NewClubRepository(db *gorm.DB) *ClubRepository {
	return &ClubRepository{DB: db}
}

func (r *ClubRepository) GetById(id int) (*Club, error) {
	var club Club
	result := r.DB.First(&club, id)
	if result.Error != nil {
		return nil, result.Error
	}
	return &club, nil
}

func (r *ClubRepository) GetByIds(ids []int) ([]*Club, error) {
	clubs := make([]*Club, 0)
	if len(ids) == 0 {
		return clubs, nil
	}
	result := r.DB.Find(&clubs, "id IN ?", ids)
	if result.Error != nil {
		return nil, result.Error
	}
	return clubs, nil
}

func (r *ClubRepository) NameTaken(name string, excludeId int) (bool, error) {
	var count int64
	result := r.DB.Model(&Club{}).Where("lower(name) = lower(?) AND id <> ?", name, excludeId).Count(&count)
	return count > 0, result.Error
}

func (r *ClubRepository) List(openOnly bool) ([]*Club, error) {
	clubs := make([]*Club, 0)
	query := r.DB.Order("name ASC")
	if openOnly {
		query = query.Where("open_to_join = ?", true)
	}
	result := query.Find(&clubs)
	if result.Error != nil {
		return nil, result.Error
	}
	return clubs, nil
}

func (r *ClubRepository) ListCreatedBy(accountId int) ([]*Club, error) {
	clubs := make([]*Club, 0)
	result := r.DB.Find(&clubs, "creator_id = ?", accountId)
	if result.Error != nil {
		return nil, result.Error
	}
	return clubs, nil
}

func (r *ClubRepository) Save(club *Club) (*Club, error) {
	result := r.DB.Omit("Creator").Save(club)
	if result.Error != nil {
		return nil, result.Error
	}
	return club, nil
}
