package repository

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Friendship is stored once per pair with the smaller id first.
type Friendship struct {
	AccountLowId  int `gorm:"primaryKey"`
	AccountHighId int `gorm:"primaryKey;index"`
	CreatedAt     time.Time
}

func orderedPair(a, b int) (int, int) {
	if a < b {
		return a, b
	}
	return b, a
}

type FriendshipRepository struct {
	DB *gorm.DB
}

func NewFriendshipRepository(db *gorm.DB) *FriendshipRepository {
	return &FriendshipRepository{DB: db}
}

func (r *FriendshipRepository) Create(a, b int) error {
	low, high := orderedPair(a, b)
	return r.DB.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&Friendship{AccountLowId: low, AccountHighId: high}).Error
}

func (r *FriendshipRepository) Delete(a, b int) error {
	low, high := orderedPair(a, b)
	result := r.DB.Delete(&Friendship{}, "account_low_id = ? AND account_high_id = ?", low, high)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *FriendshipRepository) Exists(a, b int) (bool, error) {
	low, high := orderedPair(a, b)
	var count int64
	result := r.DB.Model(&Friendship{}).
		Where("account_low_id = ? AND account_high_id = ?", low, high).
		Count(&count)
	return count > 0, result.Error
}

func (r *FriendshipRepository) ListFriendIds(accountId int) ([]int, error) {
	friendships := make([]*Friendship, 0)
	result := r.DB.Find(&friendships, "account_low_id = ? OR account_high_id = ?", accountId, accountId)
	if result.Error != nil {
		return nil, result.Error
	}
	ids := make([]int, 0, len(friendships))
	for _, f := range friendships {
		if f.AccountLowId == accountId {
			ids = append(ids, f.AccountHighId)
		} else {
			ids = append(ids, f.AccountLowId)
		}
	}
	return ids, nil
}
