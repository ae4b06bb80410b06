package controller

import (
	"net/http"

	"archery/app_error"
	"archery/repository"
	"archery/service"
	"archery/utils"

	"github.com/gin-contrib/cache"
	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-gonic/gin"
)

type RoundController struct {
	roundService *service.RoundService
	cacheStore   persistence.CacheStore
}

func NewRoundController(services *Services, cacheStore persistence.CacheStore) *RoundController {
	return &RoundController{roundService: services.Rounds, cacheStore: cacheStore}
}

func setupRoundController(services *Services, cacheStore persistence.CacheStore) []RouteInfo {
	e := NewRoundController(services, cacheStore)
	managers := []repository.Role{repository.RoleAdmin, repository.RoleFederationMember}
	basePath := "/rounds"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: cache.CachePage(cacheStore, referenceCacheDuration, e.listRoundsHandler())},
		{Method: "POST", Path: "", HandlerFunc: e.createRoundHandler(), Authenticated: true, RequiredRoles: managers},
		{Method: "GET", Path: "/:round_id", HandlerFunc: e.getRoundHandler()},
		{Method: "DELETE", Path: "/:round_id", HandlerFunc: e.deleteRoundHandler(), Authenticated: true, RequiredRoles: managers},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

type RangeCreate struct {
	DistanceM    int `json:"distance_m" binding:"required"`
	TargetFaceId int `json:"target_face_id" binding:"required"`
	NumberOfEnds int `json:"number_of_ends" binding:"required"`
	ArrowsPerEnd int `json:"arrows_per_end" binding:"required"`
}

type RoundCreate struct {
	Name        string        `json:"name" binding:"required"`
	CategoryId  int           `json:"category_id" binding:"required"`
	Description string        `json:"description"`
	Ranges      []RangeCreate `json:"ranges" binding:"required"`
}

// @id ListRounds
// @Description Lists round definitions with their ranges
// @Tags round
// @Produce json
// @Param category_id query int false "Category Id"
// @Success 200 {array} Round
// @Router /rounds [get]
func (e *RoundController) listRoundsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		categoryId, ok := optionalIntQuery(c, "category_id")
		if !ok {
			return
		}
		rounds, err := e.roundService.ListRounds(categoryId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(rounds, toRoundResponse))
	}
}

// @id CreateRound
// @Description Creates a round. Ranges are shot in the given order.
// @Tags round
// @Accept json
// @Produce json
// @Param body body RoundCreate true "Round"
// @Success 201 {object} Round
// @Security BearerAuth
// @Router /rounds [post]
func (e *RoundController) createRoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body RoundCreate
		if err := c.BindJSON(&body); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		round, err := e.roundService.CreateRound(service.RoundInput{
			Name:        body.Name,
			CategoryId:  body.CategoryId,
			Description: body.Description,
			Ranges: utils.Map(body.Ranges, func(r RangeCreate) service.RangeInput {
				return service.RangeInput{
					DistanceM:    r.DistanceM,
					TargetFaceId: r.TargetFaceId,
					NumberOfEnds: r.NumberOfEnds,
					ArrowsPerEnd: r.ArrowsPerEnd,
				}
			}),
		})
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		_ = e.cacheStore.Flush()
		c.JSON(201, toRoundResponse(round))
	}
}

// @id GetRound
// @Description Fetches a round with its ranges
// @Tags round
// @Produce json
// @Param round_id path int true "Round Id"
// @Success 200 {object} Round
// @Router /rounds/{round_id} [get]
func (e *RoundController) getRoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		roundId, ok := intParam(c, "round_id")
		if !ok {
			return
		}
		round, err := e.roundService.GetRound(roundId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toRoundResponse(round))
	}
}

// @id DeleteRound
// @Description Deletes a round that was never scheduled
// @Tags round
// @Param round_id path int true "Round Id"
// @Success 204
// @Security BearerAuth
// @Router /rounds/{round_id} [delete]
func (e *RoundController) deleteRoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		roundId, ok := intParam(c, "round_id")
		if !ok {
			return
		}
		if err := e.roundService.DeleteRound(roundId); err != nil {
			app_error.Respond(c, err)
			return
		}
		_ = e.cacheStore.Flush()
		c.Status(http.StatusNoContent)
	}
}
