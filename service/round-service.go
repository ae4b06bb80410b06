package service

import (
	"fmt"
	"strings"

	"archery/app_error"
	"archery/repository"
	"archery/scoring"

	"gorm.io/gorm"
)

type RangeInput struct {
	DistanceM    int
	TargetFaceId int
	NumberOfEnds int
	ArrowsPerEnd int
}

type RoundInput struct {
	Name        string
	CategoryId  int
	Description string
	Ranges      []RangeInput
}

func (in RoundInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return app_error.Validation("round name is required")
	}
	if len(in.Ranges) == 0 {
		return app_error.Validation("a round needs at least one range")
	}
	for i, r := range in.Ranges {
		if r.DistanceM <= 0 {
			return app_error.Validation(fmt.Sprintf("range %d: distance must be positive", i+1))
		}
		if r.NumberOfEnds < 1 {
			return app_error.Validation(fmt.Sprintf("range %d: at least one end is required", i+1))
		}
		if r.ArrowsPerEnd < 1 || r.ArrowsPerEnd > scoring.MaxArrowsPerEnd {
			return app_error.Validation(fmt.Sprintf("range %d: arrows per end must be between 1 and %d", i+1, scoring.MaxArrowsPerEnd))
		}
	}
	return nil
}

type RoundService struct {
	roundRepository    *repository.RoundRepository
	categoryRepository *repository.CategoryRepository
}

func NewRoundService(db *gorm.DB) *RoundService {
	return &RoundService{
		roundRepository:    repository.NewRoundRepository(db),
		categoryRepository: repository.NewCategoryRepository(db),
	}
}

// CreateRound stores the round with its ranges ordered as given.
func (s *RoundService) CreateRound(input RoundInput) (*repository.Round, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	if _, err := s.categoryRepository.GetCategory(input.CategoryId); err != nil {
		return nil, err
	}
	round := &repository.Round{
		Name:        strings.TrimSpace(input.Name),
		CategoryId:  input.CategoryId,
		Description: input.Description,
		Ranges:      make([]*repository.Range, 0, len(input.Ranges)),
	}
	for i, r := range input.Ranges {
		round.Ranges = append(round.Ranges, &repository.Range{
			RangeOrder:   i + 1,
			DistanceM:    r.DistanceM,
			TargetFaceId: r.TargetFaceId,
			NumberOfEnds: r.NumberOfEnds,
			ArrowsPerEnd: r.ArrowsPerEnd,
		})
	}
	return s.roundRepository.Create(round)
}

func (s *RoundService) GetRound(id int) (*repository.Round, error) {
	return s.roundRepository.GetById(id)
}

func (s *RoundService) ListRounds(categoryId *int) ([]*repository.Round, error) {
	return s.roundRepository.List(categoryId)
}

func (s *RoundService) DeleteRound(id int) error {
	return s.roundRepository.Delete(id)
}
