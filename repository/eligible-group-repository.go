package repository

import (
	"archery/utils"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EligibleGroup struct {
	Id        int                   `gorm:"primaryKey"`
	Name      string                `gorm:"not null"`
	CreatorId int                   `gorm:"not null"`
	CreatedAt time.Time             `gorm:"not null"`
	Members   []*EligibleClubMember `gorm:"foreignKey:GroupId;constraint:OnDelete:CASCADE"`
}

type EligibleClubMember struct {
	GroupId int `gorm:"primaryKey"`
	ClubId  int `gorm:"primaryKey"`

	Club *Club `gorm:"foreignKey:ClubId;constraint:OnDelete:CASCADE;"`
}

func (g *EligibleGroup) ClubIds() []int {
	return utils.Map(g.Members, func(m *EligibleClubMember) int { return m.ClubId })
}

type EligibleGroupRepository struct {
	DB *gorm.DB
}

func NewEligibleGroupRepository(db *gorm.DB) *EligibleGroupRepository {
	return &EligibleGroupRepository{DB: db}
}

func (r *EligibleGroupRepository) GetById(id int) (*EligibleGroup, error) {
	var group EligibleGroup
	result := r.DB.Preload("Members").First(&group, id)
	if result.Error != nil {
		return nil, result.Error
	}
	return &group, nil
}

func (r *EligibleGroupRepository) List() ([]*EligibleGroup, error) {
	groups := make([]*EligibleGroup, 0)
	result := r.DB.Preload("Members").Order("id ASC").Find(&groups)
	if result.Error != nil {
		return nil, result.Error
	}
	return groups, nil
}

// Create stores the group and its members.
func (r *EligibleGroupRepository) Create(group *EligibleGroup) (*EligibleGroup, error) {
	result := r.DB.Omit("Members.Club").Create(group)
	if result.Error != nil {
		return nil, result.Error
	}
	return group, nil
}

func (r *EligibleGroupRepository) AddClub(groupId, clubId int) error {
	return r.DB.Clauses(clause.OnConflict{DoNothing: true}).
		Omit("Club").
		Create(&EligibleClubMember{GroupId: groupId, ClubId: clubId}).Error
}

func (r *EligibleGroupRepository) RemoveClub(groupId, clubId int) error {
	result := r.DB.Delete(&EligibleClubMember{}, "group_id = ? AND club_id = ?", groupId, clubId)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

