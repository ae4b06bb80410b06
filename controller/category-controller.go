package controller

import (
	"net/http"
	"time"

	"archery/app_error"
	"archery/repository"
	"archery/service"
	"archery/utils"

	"github.com/gin-contrib/cache"
	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-gonic/gin"
)

const referenceCacheDuration = time.Minute

type CategoryController struct {
	categoryService *service.CategoryService
	cacheStore      persistence.CacheStore
}

func NewCategoryController(services *Services, cacheStore persistence.CacheStore) *CategoryController {
	return &CategoryController{
		categoryService: services.Categories,
		cacheStore:      cacheStore,
	}
}

func setupCategoryController(services *Services, cacheStore persistence.CacheStore) []RouteInfo {
	e := NewCategoryController(services, cacheStore)
	managers := []repository.Role{repository.RoleAdmin, repository.RoleFederationMember}
	cached := func(handler gin.HandlerFunc) gin.HandlerFunc {
		return cache.CachePage(cacheStore, referenceCacheDuration, handler)
	}
	routes := []RouteInfo{
		{Method: "GET", Path: "/equipment", HandlerFunc: cached(e.listEquipmentHandler())},
		{Method: "POST", Path: "/equipment", HandlerFunc: e.createEquipmentHandler(), Authenticated: true, RequiredRoles: managers},
		{Method: "DELETE", Path: "/equipment/:id", HandlerFunc: e.deleteHandler(e.categoryService.DeleteEquipment), Authenticated: true, RequiredRoles: managers},
		{Method: "GET", Path: "/disciplines", HandlerFunc: cached(e.listDisciplinesHandler())},
		{Method: "POST", Path: "/disciplines", HandlerFunc: e.createDisciplineHandler(), Authenticated: true, RequiredRoles: managers},
		{Method: "DELETE", Path: "/disciplines/:id", HandlerFunc: e.deleteHandler(e.categoryService.DeleteDiscipline), Authenticated: true, RequiredRoles: managers},
		{Method: "GET", Path: "/age-divisions", HandlerFunc: cached(e.listAgeDivisionsHandler())},
		{Method: "POST", Path: "/age-divisions", HandlerFunc: e.createAgeDivisionHandler(), Authenticated: true, RequiredRoles: managers},
		{Method: "DELETE", Path: "/age-divisions/:id", HandlerFunc: e.deleteHandler(e.categoryService.DeleteAgeDivision), Authenticated: true, RequiredRoles: managers},
		{Method: "GET", Path: "/target-faces", HandlerFunc: cached(e.listTargetFacesHandler())},
		{Method: "POST", Path: "/target-faces", HandlerFunc: e.createTargetFaceHandler(), Authenticated: true, RequiredRoles: managers},
		{Method: "DELETE", Path: "/target-faces/:id", HandlerFunc: e.deleteHandler(e.categoryService.DeleteTargetFace), Authenticated: true, RequiredRoles: managers},
		{Method: "GET", Path: "/categories", HandlerFunc: cached(e.listCategoriesHandler())},
		{Method: "GET", Path: "/categories/:category_id", HandlerFunc: e.getCategoryHandler()},
		{Method: "POST", Path: "/categories", HandlerFunc: e.createCategoryHandler(), Authenticated: true, RequiredRoles: managers},
	}
	return routes
}

// invalidate drops cached listings after a write.
func (e *CategoryController) invalidate() {
	_ = e.cacheStore.Flush()
}

type NamedEntry struct {
	Id          int    `json:"id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type NamedEntryCreate struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type AgeDivision struct {
	Id     int    `json:"id" binding:"required"`
	Name   string `json:"name" binding:"required"`
	MinAge int    `json:"min_age"`
	MaxAge *int   `json:"max_age"`
}

type AgeDivisionCreate struct {
	Name   string `json:"name" binding:"required"`
	MinAge int    `json:"min_age"`
	MaxAge *int   `json:"max_age"`
}

type TargetFace struct {
	Id           int    `json:"id" binding:"required"`
	Name         string `json:"name" binding:"required"`
	DiameterCm   int    `json:"diameter_cm" binding:"required"`
	ScoringZones int    `json:"scoring_zones" binding:"required"`
}

type TargetFaceCreate struct {
	Name         string `json:"name" binding:"required"`
	DiameterCm   int    `json:"diameter_cm" binding:"required"`
	ScoringZones int    `json:"scoring_zones"`
}

type CategoryCreate struct {
	EquipmentId   int `json:"equipment_id" binding:"required"`
	DisciplineId  int `json:"discipline_id" binding:"required"`
	AgeDivisionId int `json:"age_division_id" binding:"required"`
}

// @id ListEquipment
// @Description Lists bow equipment classes
// @Tags category
// @Produce json
// @Success 200 {array} NamedEntry
// @Router /equipment [get]
func (e *CategoryController) listEquipmentHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		equipment, err := e.categoryService.ListEquipment()
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(equipment, func(eq *repository.Equipment) *NamedEntry {
			return &NamedEntry{Id: eq.Id, Name: eq.Name, Description: eq.Description}
		}))
	}
}

// @id CreateEquipment
// @Description Creates an equipment class
// @Tags category
// @Accept json
// @Produce json
// @Param body body NamedEntryCreate true "Equipment"
// @Success 201 {object} NamedEntry
// @Security BearerAuth
// @Router /equipment [post]
func (e *CategoryController) createEquipmentHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body NamedEntryCreate
		if err := c.BindJSON(&body); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		equipment, err := e.categoryService.CreateEquipment(&repository.Equipment{Name: body.Name, Description: body.Description})
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		e.invalidate()
		c.JSON(201, NamedEntry{Id: equipment.Id, Name: equipment.Name, Description: equipment.Description})
	}
}

// @id ListDisciplines
// @Description Lists disciplines
// @Tags category
// @Produce json
// @Success 200 {array} NamedEntry
// @Router /disciplines [get]
func (e *CategoryController) listDisciplinesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		disciplines, err := e.categoryService.ListDisciplines()
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(disciplines, func(d *repository.Discipline) *NamedEntry {
			return &NamedEntry{Id: d.Id, Name: d.Name, Description: d.Description}
		}))
	}
}

// @id CreateDiscipline
// @Description Creates a discipline
// @Tags category
// @Accept json
// @Produce json
// @Param body body NamedEntryCreate true "Discipline"
// @Success 201 {object} NamedEntry
// @Security BearerAuth
// @Router /disciplines [post]
func (e *CategoryController) createDisciplineHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body NamedEntryCreate
		if err := c.BindJSON(&body); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		discipline, err := e.categoryService.CreateDiscipline(&repository.Discipline{Name: body.Name, Description: body.Description})
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		e.invalidate()
		c.JSON(201, NamedEntry{Id: discipline.Id, Name: discipline.Name, Description: discipline.Description})
	}
}

func toAgeDivisionResponse(division *repository.AgeDivision) *AgeDivision {
	return &AgeDivision{Id: division.Id, Name: division.Name, MinAge: division.MinAge, MaxAge: division.MaxAge}
}

// @id ListAgeDivisions
// @Description Lists age divisions
// @Tags category
// @Produce json
// @Success 200 {array} AgeDivision
// @Router /age-divisions [get]
func (e *CategoryController) listAgeDivisionsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		divisions, err := e.categoryService.ListAgeDivisions()
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(divisions, toAgeDivisionResponse))
	}
}

// @id CreateAgeDivision
// @Description Creates an age division
// @Tags category
// @Accept json
// @Produce json
// @Param body body AgeDivisionCreate true "Age division"
// @Success 201 {object} AgeDivision
// @Security BearerAuth
// @Router /age-divisions [post]
func (e *CategoryController) createAgeDivisionHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body AgeDivisionCreate
		if err := c.BindJSON(&body); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		division, err := e.categoryService.CreateAgeDivision(&repository.AgeDivision{Name: body.Name, MinAge: body.MinAge, MaxAge: body.MaxAge})
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		e.invalidate()
		c.JSON(201, toAgeDivisionResponse(division))
	}
}

func toTargetFaceResponse(face *repository.TargetFace) *TargetFace {
	return &TargetFace{Id: face.Id, Name: face.Name, DiameterCm: face.DiameterCm, ScoringZones: face.ScoringZones}
}

// @id ListTargetFaces
// @Description Lists target faces
// @Tags category
// @Produce json
// @Success 200 {array} TargetFace
// @Router /target-faces [get]
func (e *CategoryController) listTargetFacesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		faces, err := e.categoryService.ListTargetFaces()
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(faces, toTargetFaceResponse))
	}
}

// @id CreateTargetFace
// @Description Creates a target face
// @Tags category
// @Accept json
// @Produce json
// @Param body body TargetFaceCreate true "Target face"
// @Success 201 {object} TargetFace
// @Security BearerAuth
// @Router /target-faces [post]
func (e *CategoryController) createTargetFaceHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body TargetFaceCreate
		if err := c.BindJSON(&body); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		zones := body.ScoringZones
		if zones == 0 {
			zones = 10
		}
		face, err := e.categoryService.CreateTargetFace(&repository.TargetFace{Name: body.Name, DiameterCm: body.DiameterCm, ScoringZones: zones})
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		e.invalidate()
		c.JSON(201, toTargetFaceResponse(face))
	}
}

// deleteHandler serves the DELETE routes of the four lookup tables.
func (e *CategoryController) deleteHandler(remove func(id int) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := intParam(c, "id")
		if !ok {
			return
		}
		if err := remove(id); err != nil {
			app_error.Respond(c, err)
			return
		}
		e.invalidate()
		c.Status(http.StatusNoContent)
	}
}

// @id ListCategories
// @Description Lists categories, each an equipment, discipline and age division triple
// @Tags category
// @Produce json
// @Success 200 {array} Category
// @Router /categories [get]
func (e *CategoryController) listCategoriesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := e.categoryService.ListCategories()
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(categories, toCategoryResponse))
	}
}

// @id GetCategory
// @Description Fetches a category
// @Tags category
// @Produce json
// @Param category_id path int true "Category Id"
// @Success 200 {object} Category
// @Router /categories/{category_id} [get]
func (e *CategoryController) getCategoryHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		categoryId, ok := intParam(c, "category_id")
		if !ok {
			return
		}
		category, err := e.categoryService.GetCategory(categoryId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toCategoryResponse(category))
	}
}

// @id CreateCategory
// @Description Creates a category from existing equipment, discipline and age division
// @Tags category
// @Accept json
// @Produce json
// @Param body body CategoryCreate true "Category"
// @Success 201 {object} Category
// @Security BearerAuth
// @Router /categories [post]
func (e *CategoryController) createCategoryHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body CategoryCreate
		if err := c.BindJSON(&body); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		category, err := e.categoryService.CreateCategory(body.EquipmentId, body.DisciplineId, body.AgeDivisionId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		category, err = e.categoryService.GetCategory(category.Id)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		e.invalidate()
		c.JSON(201, toCategoryResponse(category))
	}
}
