package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"archery/app_error"
	"archery/logger"
	"archery/metrics"
	"archery/repository"
	"archery/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ReviewService struct {
	db        *gorm.DB
	handlers  map[repository.RequestKind]RequestHandler
	publisher DecisionPublisher
	notifier  Notifier
	now       func() time.Time
	log       *zap.SugaredLogger
}

func NewReviewService(db *gorm.DB, publisher DecisionPublisher, notifier Notifier) *ReviewService {
	return &ReviewService{
		db:        db,
		handlers:  defaultHandlers(time.Now),
		publisher: publisher,
		notifier:  notifier,
		now:       time.Now,
		log:       logger.Named("review"),
	}
}

func (s *ReviewService) handler(kind repository.RequestKind) (RequestHandler, error) {
	h, ok := s.handlers[kind]
	if !ok {
		return nil, app_error.Validation(fmt.Sprintf("unknown request kind %q", kind))
	}
	return h, nil
}

// Submit opens a request, or moves the latest rejected one for the same triple back to pending.
func (s *ReviewService) Submit(actor *repository.Account, kind repository.RequestKind, targetId int, message string) (*repository.ReviewRequest, error) {
	h, err := s.handler(kind)
	if err != nil {
		return nil, err
	}
	var request *repository.ReviewRequest
	err = s.db.Transaction(func(tx *gorm.DB) error {
		repos := newReviewRepos(tx)
		open, err := repos.requests.HasOpen(kind, actor.Id, targetId)
		if err != nil {
			return err
		}
		if open {
			return app_error.Conflict("an open request already exists")
		}
		if err := h.Validate(repos, actor, targetId); err != nil {
			return err
		}
		latest, err := repos.requests.FindLatest(kind, actor.Id, targetId)
		if err != nil && !isNotFound(err) {
			return err
		}
		if latest != nil && latest.Status == repository.StatusIneligible {
			request = latest
			request.Status = repository.StatusPending
			request.ReviewerId = nil
			request.ReviewComment = nil
		} else {
			request = &repository.ReviewRequest{
				Kind:        kind,
				RequesterId: actor.Id,
				TargetId:    targetId,
				Status:      repository.StatusPending,
			}
		}
		request.Message = strings.TrimSpace(message)
		request, err = repos.requests.Save(request)
		return err
	})
	if err != nil {
		return nil, err
	}
	metrics.ReviewSubmissionCounter.WithLabelValues(string(kind)).Inc()
	s.log.Infow("request submitted", "id", request.Id, "kind", kind, "requester", actor.Id, "target", targetId)
	return request, nil
}

func (s *ReviewService) reviewable(repos *reviewRepos, actor *repository.Account, id int) (*repository.ReviewRequest, RequestHandler, error) {
	request, err := repos.requests.GetForUpdate(id)
	if err != nil {
		return nil, nil, err
	}
	if request.RequesterId == actor.Id {
		return nil, nil, app_error.Forbidden("you cannot review your own request")
	}
	h, err := s.handler(request.Kind)
	if err != nil {
		return nil, nil, err
	}
	ok, err := h.CanReview(repos, actor, request)
	if err != nil {
		return nil, nil, err
	}
	if !ok {
		return nil, nil, app_error.Forbidden("you cannot review this request")
	}
	return request, h, nil
}

func (s *ReviewService) StartReview(actor *repository.Account, id int) (*repository.ReviewRequest, error) {
	var request *repository.ReviewRequest
	err := s.db.Transaction(func(tx *gorm.DB) error {
		repos := newReviewRepos(tx)
		var err error
		request, _, err = s.reviewable(repos, actor, id)
		if err != nil {
			return err
		}
		if !request.Status.CanTransition(repository.StatusInProgress) {
			return app_error.ErrInvalidTransition
		}
		request.Status = repository.StatusInProgress
		request.ReviewerId = &actor.Id
		request, err = repos.requests.Save(request)
		return err
	})
	return request, err
}

// Approve re-validates, applies the side effect and removes the request row in one transaction.
func (s *ReviewService) Approve(ctx context.Context, actor *repository.Account, id int, comment string) (*repository.ReviewRequest, error) {
	var request *repository.ReviewRequest
	err := s.db.Transaction(func(tx *gorm.DB) error {
		repos := newReviewRepos(tx)
		var h RequestHandler
		var err error
		request, h, err = s.reviewable(repos, actor, id)
		if err != nil {
			return err
		}
		if !request.Status.CanTransition(repository.StatusEligible) {
			return app_error.ErrInvalidTransition
		}
		requester, err := repos.accounts.GetById(request.RequesterId)
		if err != nil {
			return err
		}
		if err := h.Validate(repos, requester, request.TargetId); err != nil {
			return fmt.Errorf("request no longer valid: %w", err)
		}
		if err := h.Apply(repos, request); err != nil {
			return err
		}
		return repos.requests.Delete(request.Id)
	})
	if err != nil {
		return nil, err
	}
	request.Status = repository.StatusEligible
	request.ReviewerId = &actor.Id
	request.ReviewComment = optionalComment(comment)
	s.announce(ctx, request)
	return request, nil
}

// Reject keeps the row so the requester can see the decision and resubmit.
func (s *ReviewService) Reject(ctx context.Context, actor *repository.Account, id int, comment string) (*repository.ReviewRequest, error) {
	var request *repository.ReviewRequest
	err := s.db.Transaction(func(tx *gorm.DB) error {
		repos := newReviewRepos(tx)
		var err error
		request, _, err = s.reviewable(repos, actor, id)
		if err != nil {
			return err
		}
		if !request.Status.CanTransition(repository.StatusIneligible) {
			return app_error.ErrInvalidTransition
		}
		request.Status = repository.StatusIneligible
		request.ReviewerId = &actor.Id
		request.ReviewComment = optionalComment(comment)
		request, err = repos.requests.Save(request)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.announce(ctx, request)
	return request, nil
}

func (s *ReviewService) Cancel(actor *repository.Account, id int) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		requests := repository.NewReviewRequestRepository(tx)
		request, err := requests.GetForUpdate(id)
		if err != nil {
			return err
		}
		if request.RequesterId != actor.Id {
			return app_error.Forbidden("only the requester can cancel a request")
		}
		if !request.Status.IsOpen() {
			return app_error.Conflict("only open requests can be cancelled")
		}
		return requests.Delete(id)
	})
}

func (s *ReviewService) GetRequest(actor *repository.Account, id int) (*repository.ReviewRequest, error) {
	repos := newReviewRepos(s.db)
	request, err := repos.requests.GetById(id)
	if err != nil {
		return nil, err
	}
	if request.RequesterId == actor.Id {
		return request, nil
	}
	h, err := s.handler(request.Kind)
	if err != nil {
		return nil, err
	}
	ok, err := h.CanReview(repos, actor, request)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, app_error.ErrNotFound
	}
	return request, nil
}

// ListIncoming collects every request the actor may decide on, kind by kind.
func (s *ReviewService) ListIncoming(actor *repository.Account, filter repository.RequestFilter) ([]*repository.ReviewRequest, error) {
	repos := newReviewRepos(s.db)
	kinds := repository.AllKinds
	if filter.Kind != nil {
		if _, err := s.handler(*filter.Kind); err != nil {
			return nil, err
		}
		kinds = []repository.RequestKind{*filter.Kind}
	}
	result := make([]*repository.ReviewRequest, 0)
	for _, kind := range kinds {
		targets, err := s.handlers[kind].ReviewableTargets(repos, actor)
		if err != nil {
			return nil, err
		}
		if targets != nil && len(targets) == 0 {
			continue
		}
		requests, err := repos.requests.ListForTargets(kind, targets, repository.RequestFilter{Status: filter.Status})
		if err != nil {
			return nil, err
		}
		// requesters never review their own requests
		result = append(result, utils.Filter(requests, func(r *repository.ReviewRequest) bool {
			return r.RequesterId != actor.Id
		})...)
	}
	return result, nil
}

func (s *ReviewService) ListOutgoing(actor *repository.Account, filter repository.RequestFilter) ([]*repository.ReviewRequest, error) {
	return repository.NewReviewRequestRepository(s.db).ListOutgoing(actor.Id, filter)
}

func optionalComment(comment string) *string {
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return nil
	}
	return &comment
}

func decisionOutcome(status repository.ReviewStatus) string {
	if status == repository.StatusEligible {
		return "approved"
	}
	return "rejected"
}

// announce publishes and mails a decision. Failures are logged and never returned.
func (s *ReviewService) announce(ctx context.Context, request *repository.ReviewRequest) {
	outcome := decisionOutcome(request.Status)
	metrics.ReviewDecisionCounter.WithLabelValues(string(request.Kind), outcome).Inc()
	event := DecisionEvent{
		RequestId:   request.Id,
		Kind:        request.Kind,
		RequesterId: request.RequesterId,
		TargetId:    request.TargetId,
		Status:      request.Status,
		DecidedAt:   s.now(),
	}
	if request.ReviewerId != nil {
		event.ReviewerId = *request.ReviewerId
	}
	if request.ReviewComment != nil {
		event.Comment = *request.ReviewComment
	}
	s.log.Infow("request decided", "id", request.Id, "kind", request.Kind, "outcome", outcome, "reviewer", event.ReviewerId)

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, event); err != nil {
			s.log.Warnw("failed to publish decision", "id", request.Id, "error", err)
		}
	}
	if s.notifier == nil {
		return
	}
	requester, err := repository.NewAccountRepository(s.db).GetById(request.RequesterId)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.Warnw("failed to load requester", "id", request.RequesterId, "error", err)
		}
		return
	}
	subject := fmt.Sprintf("Your %s request was %s", humanKind(request.Kind), outcome)
	body := subject + "."
	if event.Comment != "" {
		body += "\n\nReviewer comment: " + event.Comment
	}
	if err := s.notifier.Send(ctx, requester.Email, subject, body); err != nil {
		s.log.Warnw("failed to send decision mail", "id", request.Id, "error", err)
	}
}

func humanKind(kind repository.RequestKind) string {
	return strings.ToLower(strings.ReplaceAll(string(kind), "_", " "))
}
