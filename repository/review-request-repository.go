package repository

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RequestKind string

const (
	KindClubEnrollment        RequestKind = "CLUB_ENROLLMENT"
	KindCompetitionEnrollment RequestKind = "COMPETITION_ENROLLMENT"
	KindCompetitionWithdrawal RequestKind = "COMPETITION_WITHDRAWAL"
	KindRecorderAssignment    RequestKind = "RECORDER_ASSIGNMENT"
	KindAccountReport         RequestKind = "ACCOUNT_REPORT"
	KindFriendship            RequestKind = "FRIENDSHIP"
)

var AllKinds = []RequestKind{
	KindClubEnrollment,
	KindCompetitionEnrollment,
	KindCompetitionWithdrawal,
	KindRecorderAssignment,
	KindAccountReport,
	KindFriendship,
}

type ReviewRequest struct {
	Id            int          `gorm:"primaryKey"`
	Kind          RequestKind  `gorm:"not null;type:archery.request_kind;index:idx_request_key"`
	RequesterId   int          `gorm:"not null;index:idx_request_key"`
	TargetId      int          `gorm:"not null;index:idx_request_key"`
	Status        ReviewStatus `gorm:"not null;type:archery.review_status;default:'pending'"`
	Message       string       `gorm:"type:text;not null;default:''"`
	ReviewerId    *int         `gorm:"null"`
	ReviewComment *string      `gorm:"null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Requester *Account `gorm:"foreignKey:RequesterId;constraint:OnDelete:CASCADE;"`
}

type RequestFilter struct {
	Kind   *RequestKind
	Status *ReviewStatus
}

type ReviewRequestRepository struct {
	DB *gorm.DB
}

func NewReviewRequestRepository(db *gorm.DB) *ReviewRequestRepository {
	return &ReviewRequestRepository{DB: db}
}

func (r *ReviewRequestRepository) GetById(id int) (*ReviewRequest, error) {
	var request ReviewRequest
	result := r.DB.First(&request, id)
	if result.Error != nil {
		return nil, result.Error
	}
	return &request, nil
}

// GetForUpdate locks the row for the rest of the transaction.
func (r *ReviewRequestRepository) GetForUpdate(id int) (*ReviewRequest, error) {
	var request ReviewRequest
	result := r.DB.Clauses(clause.Locking{Strength: "UPDATE"}).First(&request, id)
	if result.Error != nil {
		return nil, result.Error
	}
	return &request, nil
}

// FindLatest returns the newest request for the triple regardless of status.
func (r *ReviewRequestRepository) FindLatest(kind RequestKind, requesterId, targetId int) (*ReviewRequest, error) {
	var request ReviewRequest
	result := r.DB.Order("id DESC").
		First(&request, "kind = ? AND requester_id = ? AND target_id = ?", kind, requesterId, targetId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &request, nil
}

// HasOpen reports whether a pending or in-progress request exists for the triple.
func (r *ReviewRequestRepository) HasOpen(kind RequestKind, requesterId, targetId int) (bool, error) {
	var count int64
	result := r.DB.Model(&ReviewRequest{}).
		Where("kind = ? AND requester_id = ? AND target_id = ? AND status IN ?", kind, requesterId, targetId, OpenStatuses()).
		Count(&count)
	return count > 0, result.Error
}

func (r *ReviewRequestRepository) Save(request *ReviewRequest) (*ReviewRequest, error) {
	result := r.DB.Omit("Requester").Save(request)
	if result.Error != nil {
		return nil, result.Error
	}
	return request, nil
}

func (r *ReviewRequestRepository) Delete(id int) error {
	return deleteById[ReviewRequest](r.DB, id)
}

func (r *ReviewRequestRepository) ListOutgoing(requesterId int, filter RequestFilter) ([]*ReviewRequest, error) {
	requests := make([]*ReviewRequest, 0)
	query := r.filtered(filter).Where("requester_id = ?", requesterId)
	result := query.Order("created_at DESC").Find(&requests)
	if result.Error != nil {
		return nil, result.Error
	}
	return requests, nil
}

// ListForTargets returns requests of a kind aimed at any of the targets. A nil slice means every target.
func (r *ReviewRequestRepository) ListForTargets(kind RequestKind, targetIds []int, filter RequestFilter) ([]*ReviewRequest, error) {
	timer := prometheus.NewTimer(queryDuration.WithLabelValues("ListRequestsForTargets"))
	defer timer.ObserveDuration()
	requests := make([]*ReviewRequest, 0)
	if targetIds != nil && len(targetIds) == 0 {
		return requests, nil
	}
	query := r.filtered(filter).Preload("Requester").Where("kind = ?", kind)
	if targetIds != nil {
		query = query.Where("target_id IN ?", targetIds)
	}
	result := query.Order("created_at ASC").Find(&requests)
	if result.Error != nil {
		return nil, result.Error
	}
	return requests, nil
}

func (r *ReviewRequestRepository) filtered(filter RequestFilter) *gorm.DB {
	query := r.DB
	if filter.Kind != nil {
		query = query.Where("kind = ?", *filter.Kind)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	return query
}
