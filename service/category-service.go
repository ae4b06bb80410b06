package service

import (
	"errors"
	"strings"

	"archery/app_error"
	"archery/repository"

	"gorm.io/gorm"
)

type CategoryService struct {
	categoryRepository *repository.CategoryRepository
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{
		categoryRepository: repository.NewCategoryRepository(db),
	}
}

func (s *CategoryService) ListEquipment() ([]*repository.Equipment, error) {
	return s.categoryRepository.ListEquipment()
}

func (s *CategoryService) ListDisciplines() ([]*repository.Discipline, error) {
	return s.categoryRepository.ListDisciplines()
}

func (s *CategoryService) ListAgeDivisions() ([]*repository.AgeDivision, error) {
	return s.categoryRepository.ListAgeDivisions()
}

func (s *CategoryService) ListTargetFaces() ([]*repository.TargetFace, error) {
	return s.categoryRepository.ListTargetFaces()
}

func requireName(name string) error {
	if strings.TrimSpace(name) == "" {
		return app_error.Validation("name is required")
	}
	return nil
}

func (s *CategoryService) CreateEquipment(equipment *repository.Equipment) (*repository.Equipment, error) {
	if err := requireName(equipment.Name); err != nil {
		return nil, err
	}
	return equipment, s.categoryRepository.Create(equipment)
}

func (s *CategoryService) CreateDiscipline(discipline *repository.Discipline) (*repository.Discipline, error) {
	if err := requireName(discipline.Name); err != nil {
		return nil, err
	}
	return discipline, s.categoryRepository.Create(discipline)
}

func (s *CategoryService) CreateAgeDivision(division *repository.AgeDivision) (*repository.AgeDivision, error) {
	if err := requireName(division.Name); err != nil {
		return nil, err
	}
	if division.MinAge < 0 || (division.MaxAge != nil && *division.MaxAge < division.MinAge) {
		return nil, app_error.Validation("age bounds are invalid")
	}
	return division, s.categoryRepository.Create(division)
}

func (s *CategoryService) CreateTargetFace(face *repository.TargetFace) (*repository.TargetFace, error) {
	if err := requireName(face.Name); err != nil {
		return nil, err
	}
	if face.DiameterCm <= 0 || face.ScoringZones <= 0 {
		return nil, app_error.Validation("diameter and scoring zones must be positive")
	}
	return face, s.categoryRepository.Create(face)
}

func (s *CategoryService) DeleteEquipment(id int) error {
	return s.categoryRepository.DeleteEquipment(id)
}

func (s *CategoryService) DeleteDiscipline(id int) error {
	return s.categoryRepository.DeleteDiscipline(id)
}

func (s *CategoryService) DeleteAgeDivision(id int) error {
	return s.categoryRepository.DeleteAgeDivision(id)
}

func (s *CategoryService) DeleteTargetFace(id int) error {
	return s.categoryRepository.DeleteTargetFace(id)
}

func (s *CategoryService) ListCategories() ([]*repository.Category, error) {
	return s.categoryRepository.ListCategories()
}

func (s *CategoryService) GetCategory(id int) (*repository.Category, error) {
	return s.categoryRepository.GetCategory(id)
}

// CreateCategory rejects a second category for the same triple.
func (s *CategoryService) CreateCategory(equipmentId, disciplineId, ageDivisionId int) (*repository.Category, error) {
	existing, err := s.categoryRepository.FindCategory(equipmentId, disciplineId, ageDivisionId)
	if err == nil && existing != nil {
		return nil, app_error.Conflict("this category already exists")
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return s.categoryRepository.SaveCategory(&repository.Category{
		EquipmentId:   equipmentId,
		DisciplineId:  disciplineId,
		AgeDivisionId: ageDivisionId,
	})
}
