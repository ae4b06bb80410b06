package controller

import (
	"net/http"

	"archery/app_error"
	"archery/service"
	"archery/utils"

	"github.com/gin-gonic/gin"
)

type ClubController struct {
	clubService    *service.ClubService
	accountService *service.AccountService
}

func NewClubController(services *Services) *ClubController {
	return &ClubController{
		clubService:    services.Clubs,
		accountService: services.Accounts,
	}
}

func setupClubController(services *Services) []RouteInfo {
	e := NewClubController(services)
	basePath := "/clubs"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.listClubsHandler()},
		{Method: "POST", Path: "", HandlerFunc: e.createClubHandler(), Authenticated: true},
		{Method: "POST", Path: "/leave", HandlerFunc: e.leaveClubHandler(), Authenticated: true},
		{Method: "GET", Path: "/:club_id", HandlerFunc: e.getClubHandler()},
		{Method: "PUT", Path: "/:club_id", HandlerFunc: e.updateClubHandler(), Authenticated: true},
		{Method: "POST", Path: "/:club_id/logo", HandlerFunc: e.uploadLogoHandler(), Authenticated: true},
		{Method: "GET", Path: "/:club_id/members", HandlerFunc: e.listMembersHandler(), Authenticated: true},
		{Method: "DELETE", Path: "/:club_id/members/:account_id", HandlerFunc: e.removeMemberHandler(), Authenticated: true},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

type ClubCreate struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	MinAge      int    `json:"min_age"`
	MaxAge      int    `json:"max_age" binding:"required"`
	OpenToJoin  bool   `json:"open_to_join"`
}

func (body ClubCreate) toInput() service.ClubInput {
	return service.ClubInput{
		Name:        body.Name,
		Description: body.Description,
		MinAge:      body.MinAge,
		MaxAge:      body.MaxAge,
		OpenToJoin:  body.OpenToJoin,
	}
}

// @id ListClubs
// @Description Lists clubs, optionally only those accepting members
// @Tags club
// @Produce json
// @Param open query bool false "Only clubs open to join"
// @Success 200 {array} Club
// @Router /clubs [get]
func (e *ClubController) listClubsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		clubs, err := e.clubService.ListClubs(c.Query("open") == "true")
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(clubs, toClubResponse))
	}
}

// @id CreateClub
// @Description Creates a club. The creator becomes its first member.
// @Tags club
// @Accept json
// @Produce json
// @Param body body ClubCreate true "Club"
// @Success 201 {object} Club
// @Security BearerAuth
// @Router /clubs [post]
func (e *ClubController) createClubHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := getActor(c, e.accountService)
		if actor == nil {
			return
		}
		var body ClubCreate
		if err := c.BindJSON(&body); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		club, err := e.clubService.CreateClub(actor, body.toInput())
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(201, toClubResponse(club))
	}
}

// @id GetClub
// @Description Fetches a club
// @Tags club
// @Produce json
// @Param club_id path int true "Club Id"
// @Success 200 {object} Club
// @Router /clubs/{club_id} [get]
func (e *ClubController) getClubHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		clubId, ok := intParam(c, "club_id")
		if !ok {
			return
		}
		club, err := e.clubService.GetClub(clubId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toClubResponse(club))
	}
}

// @id UpdateClub
// @Description Updates a club. Only its creator or an admin may do this.
// @Tags club
// @Accept json
// @Produce json
// @Param club_id path int true "Club Id"
// @Param body body ClubCreate true "Club"
// @Success 200 {object} Club
// @Security BearerAuth
// @Router /clubs/{club_id} [put]
func (e *ClubController) updateClubHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := getActor(c, e.accountService)
		if actor == nil {
			return
		}
		clubId, ok := intParam(c, "club_id")
		if !ok {
			return
		}
		var body ClubCreate
		if err := c.BindJSON(&body); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		club, err := e.clubService.UpdateClub(actor, clubId, body.toInput())
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toClubResponse(club))
	}
}

// @id UploadClubLogo
// @Description Uploads the club logo
// @Tags club
// @Accept multipart/form-data
// @Produce json
// @Param club_id path int true "Club Id"
// @Param file formData file true "Image"
// @Success 200 {object} Club
// @Security BearerAuth
// @Router /clubs/{club_id}/logo [post]
func (e *ClubController) uploadLogoHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := getActor(c, e.accountService)
		if actor == nil {
			return
		}
		clubId, ok := intParam(c, "club_id")
		if !ok {
			return
		}
		data, ok := readUpload(c)
		if !ok {
			return
		}
		club, err := e.clubService.UploadLogo(c.Request.Context(), actor, clubId, data)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toClubResponse(club))
	}
}

// @id ListClubMembers
// @Description Lists the members of a club
// @Tags club
// @Produce json
// @Param club_id path int true "Club Id"
// @Success 200 {array} Account
// @Security BearerAuth
// @Router /clubs/{club_id}/members [get]
func (e *ClubController) listMembersHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		clubId, ok := intParam(c, "club_id")
		if !ok {
			return
		}
		members, err := e.clubService.ListMembers(clubId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(members, toAccountResponse))
	}
}

// @id RemoveClubMember
// @Description Removes a member from a club
// @Tags club
// @Param club_id path int true "Club Id"
// @Param account_id path int true "Account Id"
// @Success 204
// @Security BearerAuth
// @Router /clubs/{club_id}/members/{account_id} [delete]
func (e *ClubController) removeMemberHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := getActor(c, e.accountService)
		if actor == nil {
			return
		}
		clubId, ok := intParam(c, "club_id")
		if !ok {
			return
		}
		accountId, ok := intParam(c, "account_id")
		if !ok {
			return
		}
		if err := e.clubService.RemoveMember(actor, clubId, accountId); err != nil {
			app_error.Respond(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// @id LeaveClub
// @Description Leaves the current club
// @Tags club
// @Success 204
// @Security BearerAuth
// @Router /clubs/leave [post]
func (e *ClubController) leaveClubHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := getActor(c, e.accountService)
		if actor == nil {
			return
		}
		if err := e.clubService.LeaveClub(actor); err != nil {
			app_error.Respond(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
