package controller

import (
	"strconv"
	"strings"

	"archery/app_error"
	"archery/service"
	"archery/utils"

	"github.com/gin-gonic/gin"
)

type GroupController struct {
	eligibilityService *service.EligibilityService
	accountService     *service.AccountService
}

func NewGroupController(services *Services) *GroupController {
	return &GroupController{
		eligibilityService: services.Eligibility,
		accountService:     services.Accounts,
	}
}

func setupGroupController(services *Services) []RouteInfo {
	e := NewGroupController(services)
	basePath := "/groups"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.listGroupsHandler()},
		{Method: "POST", Path: "", HandlerFunc: e.createGroupHandler(), Authenticated: true},
		{Method: "GET", Path: "/match", HandlerFunc: e.matchGroupsHandler()},
		{Method: "GET", Path: "/:group_id", HandlerFunc: e.getGroupHandler()},
		{Method: "POST", Path: "/:group_id/clubs", HandlerFunc: e.addClubHandler(), Authenticated: true},
		{Method: "DELETE", Path: "/:group_id/clubs/:club_id", HandlerFunc: e.removeClubHandler(), Authenticated: true},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

type GroupCreate struct {
	Name    string `json:"name" binding:"required"`
	ClubIds []int  `json:"club_ids"`
}

type GroupClubAdd struct {
	ClubId int `json:"club_id" binding:"required"`
}

// @id ListGroups
// @Description Lists eligible groups
// @Tags group
// @Produce json
// @Success 200 {array} EligibleGroup
// @Router /groups [get]
func (e *GroupController) listGroupsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		groups, err := e.eligibilityService.ListGroups()
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(groups, toEligibleGroupResponse))
	}
}

// @id CreateGroup
// @Description Creates an eligible group from a set of clubs
// @Tags group
// @Accept json
// @Produce json
// @Param body body GroupCreate true "Group"
// @Success 201 {object} EligibleGroup
// @Security BearerAuth
// @Router /groups [post]
func (e *GroupController) createGroupHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := getActor(c, e.accountService)
		if actor == nil {
			return
		}
		var body GroupCreate
		if err := c.BindJSON(&body); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		group, err := e.eligibilityService.CreateGroup(actor, body.Name, body.ClubIds)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(201, toEligibleGroupResponse(group))
	}
}

// @id MatchGroups
// @Description Lists the groups containing every given club
// @Tags group
// @Produce json
// @Param club_ids query string false "Comma separated club ids"
// @Success 200 {array} EligibleGroup
// @Router /groups/match [get]
func (e *GroupController) matchGroupsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		clubIds := make([]int, 0)
		for _, raw := range strings.Split(c.Query("club_ids"), ",") {
			raw = strings.TrimSpace(raw)
			if raw == "" {
				continue
			}
			id, err := strconv.Atoi(raw)
			if err != nil {
				c.JSON(400, gin.H{"error": "invalid club_ids"})
				return
			}
			clubIds = append(clubIds, id)
		}
		groups, err := e.eligibilityService.MatchGroups(clubIds)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(groups, toEligibleGroupResponse))
	}
}

// @id GetGroup
// @Description Fetches an eligible group
// @Tags group
// @Produce json
// @Param group_id path int true "Group Id"
// @Success 200 {object} EligibleGroup
// @Router /groups/{group_id} [get]
func (e *GroupController) getGroupHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		groupId, ok := intParam(c, "group_id")
		if !ok {
			return
		}
		group, err := e.eligibilityService.GetGroup(groupId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toEligibleGroupResponse(group))
	}
}

// @id AddGroupClub
// @Description Adds a club to an eligible group
// @Tags group
// @Accept json
// @Produce json
// @Param group_id path int true "Group Id"
// @Param body body GroupClubAdd true "Club"
// @Success 200 {object} EligibleGroup
// @Security BearerAuth
// @Router /groups/{group_id}/clubs [post]
func (e *GroupController) addClubHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := getActor(c, e.accountService)
		if actor == nil {
			return
		}
		groupId, ok := intParam(c, "group_id")
		if !ok {
			return
		}
		var body GroupClubAdd
		if err := c.BindJSON(&body); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		group, err := e.eligibilityService.AddClub(actor, groupId, body.ClubId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toEligibleGroupResponse(group))
	}
}

// @id RemoveGroupClub
// @Description Removes a club from an eligible group
// @Tags group
// @Produce json
// @Param group_id path int true "Group Id"
// @Param club_id path int true "Club Id"
// @Success 200 {object} EligibleGroup
// @Security BearerAuth
// @Router /groups/{group_id}/clubs/{club_id} [delete]
func (e *GroupController) removeClubHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := getActor(c, e.accountService)
		if actor == nil {
			return
		}
		groupId, ok := intParam(c, "group_id")
		if !ok {
			return
		}
		clubId, ok := intParam(c, "club_id")
		if !ok {
			return
		}
		group, err := e.eligibilityService.RemoveClub(actor, groupId, clubId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toEligibleGroupResponse(group))
	}
}
