package repository

import (
	"archery/utils"
	"time"

	"github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

type Role string

const (
	RoleArcher           Role = "archer"
	RoleRecorder         Role = "recorder"
	RoleAdmin            Role = "admin"
	RoleFederationMember Role = "federation_member"
)

var AllRoles = []Role{RoleArcher, RoleRecorder, RoleAdmin, RoleFederationMember}

func (r Role) Valid() bool {
	return utils.Contains(AllRoles, r)
}

type Account struct {
	Id           int            `gorm:"primaryKey"`
	Username     string         `gorm:"not null;uniqueIndex"`
	Email        string         `gorm:"not null;uniqueIndex"`
	FirstName    string         `gorm:"not null"`
	LastName     string         `gorm:"not null"`
	DateOfBirth  time.Time      `gorm:"type:date;not null"`
	Gender       string         `gorm:"not null;default:''"`
	PasswordHash string         `gorm:"not null"`
	Roles        pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	Deactivated  bool           `gorm:"not null;default:false"`
	AvatarUrl    *string        `gorm:"null"`
	ClubId       *int           `gorm:"null;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (a *Account) HasRole(role Role) bool {
	return utils.Contains(a.Roles, string(role))
}

func (a *Account) IsAdmin() bool {
	return a.HasRole(RoleAdmin)
}

// Age in whole years on the given day.
func (a *Account) Age(on time.Time) int {
	years := on.Year() - a.DateOfBirth.Year()
	if on.Month() < a.DateOfBirth.Month() || (on.Month() == a.DateOfBirth.Month() && on.Day() < a.DateOfBirth.Day()) {
		years--
	}
	return years
}

type AccountFilter struct {
	Role        *Role
	Deactivated *bool
	ClubId      *int
}

type AccountRepository struct {
	DB *gorm.DB
}

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{DB: db}
}

func (r *AccountRepository) GetById(id int) (*Account, error) {
	var account Account
	result := r.DB.First(&account, id)
	if result.Error != nil {
		return nil, result.Error
	}
	return &account, nil
}

func (r *AccountRepository) GetByUsername(username string) (*Account, error) {
	var account Account
	result := r.DB.First(&account, "username = ?", username)
	if result.Error != nil {
		return nil, result.Error
	}
	return &account, nil
}

func (r *AccountRepository) ExistsWithUsernameOrEmail(username string, email string, excludeId int) (bool, error) {
	var count int64
	result := r.DB.Model(&Account{}).
		Where("(username = ? OR email = ?) AND id <> ?", username, email, excludeId).
		Count(&count)
	return count > 0, result.Error
}

func (r *AccountRepository) GetByIds(ids []int) ([]*Account, error) {
	accounts := make([]*Account, 0)
	if len(ids) == 0 {
		return accounts, nil
	}
	result := r.DB.Find(&accounts, "id IN ?", ids)
	if result.Error != nil {
		return nil, result.Error
	}
	return accounts, nil
}

func (r *AccountRepository) List(filter AccountFilter) ([]*Account, error) {
	timer := prometheus.NewTimer(queryDuration.WithLabelValues("ListAccounts"))
	defer timer.ObserveDuration()
	accounts := make([]*Account, 0)
	query := r.DB.Order("id ASC")
	if filter.Role != nil {
		query = query.Where("? = ANY(roles)", string(*filter.Role))
	}
	if filter.Deactivated != nil {
		query = query.Where("deactivated = ?", *filter.Deactivated)
	}
	if filter.ClubId != nil {
		query = query.Where("club_id = ?", *filter.ClubId)
	}
	result := query.Find(&accounts)
	if result.Error != nil {
		return nil, result.Error
	}
	return accounts, nil
}

func (r *AccountRepository) Save(account *Account) (*Account, error) {
	result := r.DB.Save(account)
	if result.Error != nil {
		return nil, result.Error
	}
	return account, nil
}

func (r *AccountRepository) SetClub(accountId int, clubId *int) error {
	return r.DB.Model(&Account{}).Where("id = ?", accountId).Update("club_id", clubId).Error
}

func (r *AccountRepository) SetDeactivated(accountId int, deactivated bool) error {
	return r.DB.Model(&Account{}).Where("id = ?", accountId).Update("deactivated", deactivated).Error
}

func (r *AccountRepository) CountClubMembers(clubId int) (int64, error) {
	var count int64
	result := r.DB.Model(&Account{}).Where("club_id = ?", clubId).Count(&count)
	return count, result.Error
}
