package repository

import (
	"fmt"

	"gorm.io/gorm"
)

type Equipment struct {
	Id          int    `gorm:"primaryKey"`
	Name        string `gorm:"not null;uniqueIndex"`
	Description string `gorm:"not null;default:''"`
}

type Discipline struct {
	Id          int    `gorm:"primaryKey"`
	Name        string `gorm:"not null;uniqueIndex"`
	Description string `gorm:"not null;default:''"`
}

type AgeDivision struct {
	Id     int    `gorm:"primaryKey"`
	Name   string `gorm:"not null;uniqueIndex"`
	MinAge int    `gorm:"not null;default:0"`
	MaxAge *int   `gorm:"null"`
}

type TargetFace struct {
	Id           int    `gorm:"primaryKey"`
	Name         string `gorm:"not null;uniqueIndex"`
	DiameterCm   int    `gorm:"not null"`
	ScoringZones int    `gorm:"not null;default:10"`
}

type Category struct {
	Id            int `gorm:"primaryKey"`
	EquipmentId   int `gorm:"not null;uniqueIndex:idx_category_triple"`
	DisciplineId  int `gorm:"not null;uniqueIndex:idx_category_triple"`
	AgeDivisionId int `gorm:"not null;uniqueIndex:idx_category_triple"`

	Equipment   *Equipment   `gorm:"foreignKey:EquipmentId;constraint:OnDelete:RESTRICT;"`
	Discipline  *Discipline  `gorm:"foreignKey:DisciplineId;constraint:OnDelete:RESTRICT;"`
	AgeDivision *AgeDivision `gorm:"foreignKey:AgeDivisionId;constraint:OnDelete:RESTRICT;"`
}

// DisplayName is "AgeDivision Discipline Equipment", e.g. "Open Outdoor Recurve".
func (c *Category) DisplayName() string {
	if c.Equipment == nil || c.Discipline == nil || c.AgeDivision == nil {
		return fmt.Sprintf("Category %d", c.Id)
	}
	return fmt.Sprintf("%s %s %s", c.AgeDivision.Name, c.Discipline.Name, c.Equipment.Name)
}

type CategoryRepository struct {
	DB *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

func findAll[T any](db *gorm.DB) ([]*T, error) {
	rows := make([]*T, 0)
	result := db.Order("id ASC").Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}
	return rows, nil
}

func deleteById[T any](db *gorm.DB, id int) error {
	var row T
	result := db.Delete(&row, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *CategoryRepository) ListEquipment() ([]*Equipment, error) {
	return findAll[Equipment](r.DB)
}

func (r *CategoryRepository) ListDisciplines() ([]*Discipline, error) {
	return findAll[Discipline](r.DB)
}

func (r *CategoryRepository) ListAgeDivisions() ([]*AgeDivision, error) {
	return findAll[AgeDivision](r.DB)
}

func (r *CategoryRepository) ListTargetFaces() ([]*TargetFace, error) {
	return findAll[TargetFace](r.DB)
}

// Create inserts any of the taxonomy rows.
func (r *CategoryRepository) Create(row any) error {
	return r.DB.Create(row).Error
}

func (r *CategoryRepository) DeleteEquipment(id int) error {
	return deleteById[Equipment](r.DB, id)
}

func (r *CategoryRepository) DeleteDiscipline(id int) error {
	return deleteById[Discipline](r.DB, id)
}

func (r *CategoryRepository) DeleteAgeDivision(id int) error {
	return deleteById[AgeDivision](r.DB, id)
}

func (r *CategoryRepository) DeleteTargetFace(id int) error {
	return deleteById[TargetFace](r.DB, id)
}

func (r *CategoryRepository) ListCategories() ([]*Category, error) {
	categories := make([]*Category, 0)
	result := r.DB.Preload("Equipment").Preload("Discipline").Preload("AgeDivision").Order("id ASC").Find(&categories)
	if result.Error != nil {
		return nil, result.Error
	}
	return categories, nil
}

func (r *CategoryRepository) GetCategory(id int) (*Category, error) {
	var category Category
	result := r.DB.Preload("Equipment").Preload("Discipline").Preload("AgeDivision").First(&category, id)
	if result.Error != nil {
		return nil, result.Error
	}
	return &category, nil
}

func (r *CategoryRepository) FindCategory(equipmentId, disciplineId, ageDivisionId int) (*Category, error) {
	var category Category
	result := r.DB.First(&category, "equipment_id = ? AND discipline_id = ? AND age_division_id = ?", equipmentId, disciplineId, ageDivisionId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &category, nil
}

func (r *CategoryRepository) SaveCategory(category *Category) (*Category, error) {
	result := r.DB.Omit("Equipment", "Discipline", "AgeDivision").Save(category)
	if result.Error != nil {
		return nil, result.Error
	}
	return r.GetCategory(category.Id)
}
