package service

import (
	"errors"

	"archery/app_error"
	"archery/logger"
	"archery/metrics"
	"archery/repository"
	"archery/scoring"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ScoreListener receives every stored score change. Practice changes carry a zero competition id.
type ScoreListener interface {
	ScoreChanged(competitionId int, score *repository.ParticipantScore)
}

type RecordEndInput struct {
	ArcherId       int
	EventContextId int
	Type           repository.ScoreType
	Arrows         []int
}

type ScoreService struct {
	db        *gorm.DB
	listeners []ScoreListener
	log       *zap.SugaredLogger
}

func NewScoreService(db *gorm.DB) *ScoreService {
	return &ScoreService{db: db, log: logger.Named("score")}
}

func (s *ScoreService) Subscribe(listener ScoreListener) {
	s.listeners = append(s.listeners, listener)
}

func (s *ScoreService) notify(context *repository.EventContext, score *repository.ParticipantScore) {
	competitionId := 0
	if context.CompetitionId != nil {
		competitionId = *context.CompetitionId
	}
	for _, l := range s.listeners {
		l.ScoreChanged(competitionId, score)
	}
}

func checkScoreType(context *repository.EventContext, scoreType repository.ScoreType) error {
	if !scoreType.Valid() {
		return app_error.Validation("unknown score type")
	}
	switch {
	case context.IsPractice() && scoreType != repository.ScorePractice:
		return app_error.Validation("practice ends only take practice scores")
	case !context.IsPractice() && scoreType == repository.ScorePractice:
		return app_error.Validation("competition ends do not take practice scores")
	case scoreType == repository.ScoreChampionship && context.ChampionshipId == nil:
		return app_error.Validation("this competition is not part of a championship")
	case scoreType == repository.ScoreCompetition && context.ChampionshipId != nil:
		return app_error.Validation("championship ends only take championship scores")
	}
	return nil
}

// canRecordFor tells whether actor may write the archer's arrows at a competition.
func canRecordFor(participation *repository.ParticipationRepository, actor *repository.Account, archerId int, competitionId int) (bool, error) {
	if actor.Id == archerId || actor.IsAdmin() {
		return true, nil
	}
	return participation.IsParticipating(actor.Id, competitionId, repository.ParticipantRecorder)
}

// RecordEnd stores or replaces the arrows of one end.
func (s *ScoreService) RecordEnd(actor *repository.Account, input RecordEndInput) (*repository.ParticipantScore, error) {
	var score *repository.ParticipantScore
	var context *repository.EventContext
	err := s.db.Transaction(func(tx *gorm.DB) error {
		events := repository.NewEventRepository(tx)
		participation := repository.NewParticipationRepository(tx)

		var err error
		context, err = events.GetContext(input.EventContextId)
		if err != nil {
			return err
		}
		if err := checkScoreType(context, input.Type); err != nil {
			return err
		}
		if err := scoring.ValidateArrows(input.Arrows, context.Range.ArrowsPerEnd); err != nil {
			return err
		}

		status := repository.StatusEligible
		if context.IsPractice() {
			if actor.Id != input.ArcherId {
				return app_error.Forbidden("practice scores can only be recorded by their archer")
			}
		} else {
			status = repository.StatusPending
			ok, err := canRecordFor(participation, actor, input.ArcherId, *context.CompetitionId)
			if err != nil {
				return err
			}
			if !ok {
				return app_error.Forbidden("you cannot record scores for this archer")
			}
			participating, err := participation.IsParticipating(input.ArcherId, *context.CompetitionId, repository.ParticipantArcher)
			if err != nil {
				return err
			}
			if !participating {
				return app_error.Validation("the archer is not entered in this competition")
			}
		}

		score, err = participation.FindScore(input.ArcherId, context.Id, input.Type)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if score == nil {
			score = &repository.ParticipantScore{
				ArcherId:       input.ArcherId,
				EventContextId: context.Id,
				Type:           input.Type,
			}
		} else if score.Status == repository.StatusEligible && !context.IsPractice() {
			return app_error.ErrScoreLocked
		}
		score.Arrows = scoring.ToInt64(input.Arrows)
		score.Sum = scoring.EndTotal(input.Arrows)
		score.Status = status
		if actor.Id != input.ArcherId {
			score.RecorderId = &actor.Id
		}
		score, err = participation.SaveScore(score)
		return err
	})
	if err != nil {
		return nil, err
	}
	metrics.ScoresRecordedCounter.WithLabelValues(string(input.Type)).Inc()
	s.log.Debugw("end recorded", "score", score.Id, "archer", score.ArcherId, "context", score.EventContextId, "sum", score.Sum)
	s.notify(context, score)
	return score, nil
}

// SetScoreStatus lets a recorder of the competition or an admin move a score along the review states.
func (s *ScoreService) SetScoreStatus(actor *repository.Account, scoreId int, status repository.ReviewStatus) (*repository.ParticipantScore, error) {
	if !status.Valid() {
		return nil, app_error.Validation("unknown status")
	}
	var score *repository.ParticipantScore
	var context *repository.EventContext
	err := s.db.Transaction(func(tx *gorm.DB) error {
		participation := repository.NewParticipationRepository(tx)
		var err error
		score, err = participation.GetScore(scoreId)
		if err != nil {
			return err
		}
		context, err = repository.NewEventRepository(tx).GetContext(score.EventContextId)
		if err != nil {
			return err
		}
		if context.IsPractice() {
			return app_error.Validation("practice scores are not reviewed")
		}
		if !actor.IsAdmin() {
			recorder, err := participation.IsParticipating(actor.Id, *context.CompetitionId, repository.ParticipantRecorder)
			if err != nil {
				return err
			}
			if !recorder {
				return app_error.Forbidden("only recorders of this competition can review scores")
			}
		}
		if !score.Status.CanTransition(status) {
			return app_error.ErrInvalidTransition
		}
		score.Status = status
		score.RecorderId = &actor.Id
		score, err = participation.SaveScore(score)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.log.Infow("score status changed", "score", score.Id, "status", status, "recorder", actor.Id)
	s.notify(context, score)
	return score, nil
}

func (s *ScoreService) GetScore(id int) (*repository.ParticipantScore, error) {
	return repository.NewParticipationRepository(s.db).GetScore(id)
}

func (s *ScoreService) ListScores(competitionId int, filter repository.ScoreFilter) ([]*repository.ParticipantScore, error) {
	if _, err := repository.NewEventRepository(s.db).GetCompetition(competitionId); err != nil {
		return nil, err
	}
	return repository.NewParticipationRepository(s.db).ListCompetitionScores(competitionId, filter)
}

func (s *ScoreService) ListArcherScores(archerId int) ([]*repository.ParticipantScore, error) {
	return repository.NewParticipationRepository(s.db).ListArcherScores(archerId)
}
