package controller

import (
	"fmt"
	"net/http"
	"time"

	"archery/app_error"
	"archery/repository"
	"archery/service"
	"archery/utils"

	"github.com/gin-gonic/gin"
)

type EventController struct {
	eventService   *service.EventService
	accountService *service.AccountService
}

func NewEventController(services *Services) *EventController {
	return &EventController{
		eventService:   services.Events,
		accountService: services.Accounts,
	}
}

func setupEventController(services *Services) []RouteInfo {
	e := NewEventController(services)
	organizers := []repository.Role{repository.RoleAdmin, repository.RoleFederationMember}
	routes := []RouteInfo{
		{Method: "GET", Path: "/championships", HandlerFunc: e.listChampionshipsHandler()},
		{Method: "POST", Path: "/championships", HandlerFunc: e.createChampionshipHandler(), Authenticated: true, RequiredRoles: organizers},
		{Method: "GET", Path: "/championships/:championship_id", HandlerFunc: e.getChampionshipHandler()},
		{Method: "PUT", Path: "/championships/:championship_id", HandlerFunc: e.updateChampionshipHandler(), Authenticated: true, RequiredRoles: organizers},
		{Method: "GET", Path: "/championships/:championship_id/tree", HandlerFunc: e.getEventTreeHandler()},
		{Method: "GET", Path: "/championships/:championship_id/calendar", HandlerFunc: e.championshipCalendarHandler()},

		{Method: "GET", Path: "/competitions", HandlerFunc: e.listCompetitionsHandler()},
		{Method: "POST", Path: "/competitions", HandlerFunc: e.createCompetitionHandler(), Authenticated: true},
		{Method: "GET", Path: "/competitions/:competition_id", HandlerFunc: e.getCompetitionHandler()},
		{Method: "PUT", Path: "/competitions/:competition_id", HandlerFunc: e.updateCompetitionHandler(), Authenticated: true},
		{Method: "POST", Path: "/competitions/:competition_id/document", HandlerFunc: e.uploadDocumentHandler(), Authenticated: true},
		{Method: "GET", Path: "/competitions/:competition_id/calendar", HandlerFunc: e.competitionCalendarHandler()},
		{Method: "GET", Path: "/competitions/:competition_id/schedule", HandlerFunc: e.getScheduleHandler()},
		{Method: "POST", Path: "/competitions/:competition_id/schedule", HandlerFunc: e.scheduleRoundHandler(), Authenticated: true},
		{Method: "GET", Path: "/competitions/:competition_id/participants", HandlerFunc: e.listParticipantsHandler()},
		{Method: "PUT", Path: "/competitions/:competition_id/championship", HandlerFunc: e.attachChampionshipHandler(), Authenticated: true},
		{Method: "DELETE", Path: "/competitions/:competition_id/championship", HandlerFunc: e.detachChampionshipHandler(), Authenticated: true},

		{Method: "GET", Path: "/contexts/:context_id", HandlerFunc: e.getContextHandler()},
		{Method: "POST", Path: "/practice/contexts", HandlerFunc: e.practiceContextHandler(), Authenticated: true},
	}
	return routes
}

type ChampionshipCreate struct {
	Name            string    `json:"name" binding:"required"`
	Year            int       `json:"year" binding:"required"`
	EligibleGroupId *int      `json:"eligible_group_id"`
	StartDate       time.Time `json:"start_date" binding:"required"`
	EndDate         time.Time `json:"end_date" binding:"required"`
	Description     string    `json:"description"`
}

func (body ChampionshipCreate) toInput() service.ChampionshipInput {
	return service.ChampionshipInput{
		Name:            body.Name,
		Year:            body.Year,
		EligibleGroupId: body.EligibleGroupId,
		StartDate:       body.StartDate,
		EndDate:         body.EndDate,
		Description:     body.Description,
	}
}

type CompetitionCreate struct {
	Name              string    `json:"name" binding:"required"`
	HostClubId        int       `json:"host_club_id" binding:"required"`
	EligibleGroupId   *int      `json:"eligible_group_id"`
	StartDate         time.Time `json:"start_date" binding:"required"`
	EndDate           time.Time `json:"end_date" binding:"required"`
	Address           string    `json:"address"`
	OpenForEnrollment bool      `json:"open_for_enrollment"`
}

func (body CompetitionCreate) toInput() service.CompetitionInput {
	return service.CompetitionInput{
		Name:              body.Name,
		HostClubId:        body.HostClubId,
		EligibleGroupId:   body.EligibleGroupId,
		StartDate:         body.StartDate,
		EndDate:           body.EndDate,
		Address:           body.Address,
		OpenForEnrollment: body.OpenForEnrollment,
	}
}

type ScheduleRoundRequest struct {
	RoundId int `json:"round_id" binding:"required"`
}

type AttachChampionshipRequest struct {
	ChampionshipId int `json:"championship_id" binding:"required"`
}

type PracticeContextRequest struct {
	RoundId  int `json:"round_id" binding:"required"`
	RangeId  int `json:"range_id" binding:"required"`
	EndOrder int `json:"end_order" binding:"required"`
}

// @id ListChampionships
// @Description Lists yearly club championships
// @Tags championship
// @Produce json
// @Param year query int false "Year"
// @Success 200 {array} Championship
// @Router /championships [get]
func (e *EventController) listChampionshipsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		year, ok := optionalIntQuery(c, "year")
		if !ok {
			return
		}
		championships, err := e.eventService.ListChampionships(year)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(championships, toChampionshipResponse))
	}
}

// @id CreateChampionship
// @Description Creates a yearly club championship
// @Tags championship
// @Accept json
// @Produce json
// @Param body body ChampionshipCreate true "Championship"
// @Success 201 {object} Championship
// @Security BearerAuth
// @Router /championships [post]
func (e *EventController) createChampionshipHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := getActor(c, e.accountService)
		if actor == nil {
			return
		}
		var body ChampionshipCreate
		if err := c.BindJSON(&body); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		championship, err := e.eventService.CreateChampionship(actor, body.toInput())
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(201, toChampionshipResponse(championship))
	}
}

// @id GetChampionship
// @Description Fetches a championship
// @Tags championship
// @Produce json
// @Param championship_id path int true "Championship Id"
// @Success 200 {object} Championship
// @Router /championships/{championship_id} [get]
func (e *EventController) getChampionshipHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		championshipId, ok := intParam(c, "championship_id")
		if !ok {
			return
		}
		championship, err := e.eventService.GetChampionship(championshipId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toChampionshipResponse(championship))
	}
}

// @id UpdateChampionship
// @Description Updates a championship
// @Tags championship
// @Accept json
// @Produce json
// @Param championship_id path int true "Championship Id"
// @Param body body ChampionshipCreate true "Championship"
// @Success 200 {object} Championship
// @Security BearerAuth
// @Router /championships/{championship_id} [put]
func (e *EventController) updateChampionshipHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := getActor(c, e.accountService)
		if actor == nil {
			return
		}
		championshipId, ok := intParam(c, "championship_id")
		if !ok {
			return
		}
		var body ChampionshipCreate
		if err := c.BindJSON(&body); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		championship, err := e.eventService.UpdateChampionship(actor, championshipId, body.toInput())
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toChampionshipResponse(championship))
	}
}

// @id GetEventTree
// @Description Fetches the championship, competition, round, range and end hierarchy as an adjacency list
// @Tags championship
// @Produce json
// @Param championship_id path int true "Championship Id"
// @Success 200 {object} service.EventTree
// @Router /championships/{championship_id}/tree [get]
func (e *EventController) getEventTreeHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		championshipId, ok := intParam(c, "championship_id")
		if !ok {
			return
		}
		tree, err := e.eventService.BuildEventTree(championshipId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, tree)
	}
}

func writeCalendar(c *gin.Context, name string, data []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", data)
}

// @id ChampionshipCalendar
// @Description Exports the competitions of a championship as iCalendar
// @Tags championship
// @Produce text/calendar
// @Param championship_id path int true "Championship Id"
// @Success 200 {string} string
// @Router /championships/{championship_id}/calendar [get]
func (e *EventController) championshipCalendarHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		championshipId, ok := intParam(c, "championship_id")
		if !ok {
			return
		}
		data, err := e.eventService.ExportChampionshipCalendar(championshipId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		writeCalendar(c, fmt.Sprintf("championship-%d.ics", championshipId), data)
	}
}

// @id ListCompetitions
// @Description Lists competitions
// @Tags competition
// @Produce json
// @Param host_club_id query int false "Host club Id"
// @Param championship_id query int false "Championship Id"
// @Param open query bool false "Only competitions open for enrollment"
// @Success 200 {array} Competition
// @Router /competitions [get]
func (e *EventController) listCompetitionsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		hostClubId, ok := optionalIntQuery(c, "host_club_id")
		if !ok {
			return
		}
		championshipId, ok := optionalIntQuery(c, "championship_id")
		if !ok {
			return
		}
		competitions, err := e.eventService.ListCompetitions(repository.CompetitionFilter{
			HostClubId:     hostClubId,
			ChampionshipId: championshipId,
			OpenOnly:       c.Query("open") == "true",
		})
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(competitions, toCompetitionResponse))
	}
}

// @id CreateCompetition
// @Description Creates a competition hosted by a club
// @Tags competition
// @Accept json
// @Produce json
// @Param body body CompetitionCreate true "Competition"
// @Success 201 {object} Competition
// @Security BearerAuth
// @Router /competitions [post]
func (e *EventController) createCompetitionHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := getActor(c, e.accountService)
		if actor == nil {
			return
		}
		var body CompetitionCreate
		if err := c.BindJSON(&body); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		competition, err := e.eventService.CreateCompetition(actor, body.toInput())
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(201, toCompetitionResponse(competition))
	}
}

// @id GetCompetition
// @Description Fetches a competition
// @Tags competition
// @Produce json
// @Param competition_id path int true "Competition Id"
// @Success 200 {object} Competition
// @Router /competitions/{competition_id} [get]
func (e *EventController) getCompetitionHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		competitionId, ok := intParam(c, "competition_id")
		if !ok {
			return
		}
		competition, err := e.eventService.GetCompetition(competitionId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toCompetitionResponse(competition))
	}
}

// @id UpdateCompetition
// @Description Updates a competition. The host club cannot change.
// @Tags competition
// @Accept json
// @Produce json
// @Param competition_id path int true "Competition Id"
// @Param body body CompetitionCreate true "Competition"
// @Success 200 {object} Competition
// @Security BearerAuth
// @Router /competitions/{competition_id} [put]
func (e *EventController) updateCompetitionHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := getActor(c, e.accountService)
		if actor == nil {
			return
		}
		competitionId, ok := intParam(c, "competition_id")
		if !ok {
			return
		}
		var body CompetitionCreate
		if err := c.BindJSON(&body); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		competition, err := e.eventService.UpdateCompetition(actor, competitionId, body.toInput())
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toCompetitionResponse(competition))
	}
}

// @id UploadCompetitionDocument
// @Description Uploads the PDF invitation of a competition
// @Tags competition
// @Accept multipart/form-data
// @Produce json
// @Param competition_id path int true "Competition Id"
// @Param file formData file true "PDF"
// @Success 200 {object} Competition
// @Security BearerAuth
// @Router /competitions/{competition_id}/document [post]
func (e *EventController) uploadDocumentHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := getActor(c, e.accountService)
		if actor == nil {
			return
		}
		competitionId, ok := intParam(c, "competition_id")
		if !ok {
			return
		}
		data, ok := readUpload(c)
		if !ok {
			return
		}
		competition, err := e.eventService.UploadCompetitionDocument(c.Request.Context(), actor, competitionId, data)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toCompetitionResponse(competition))
	}
}

// @id CompetitionCalendar
// @Description Exports a competition as iCalendar
// @Tags competition
// @Produce text/calendar
// @Param competition_id path int true "Competition Id"
// @Success 200 {string} string
// @Router /competitions/{competition_id}/calendar [get]
func (e *EventController) competitionCalendarHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		competitionId, ok := intParam(c, "competition_id")
		if !ok {
			return
		}
		data, err := e.eventService.ExportCompetitionCalendar(competitionId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		writeCalendar(c, fmt.Sprintf("competition-%d.ics", competitionId), data)
	}
}

// @id GetSchedule
// @Description Lists the scheduled ends of a competition in shooting order
// @Tags competition
// @Produce json
// @Param competition_id path int true "Competition Id"
// @Success 200 {array} EventContext
// @Router /competitions/{competition_id}/schedule [get]
func (e *EventController) getScheduleHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		competitionId, ok := intParam(c, "competition_id")
		if !ok {
			return
		}
		contexts, err := e.eventService.GetSchedule(competitionId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(contexts, toEventContextResponse))
	}
}

// @id ScheduleRound
// @Description Schedules every end of a round for a competition
// @Tags competition
// @Accept json
// @Produce json
// @Param competition_id path int true "Competition Id"
// @Param body body ScheduleRoundRequest true "Round"
// @Success 201 {array} EventContext
// @Security BearerAuth
// @Router /competitions/{competition_id}/schedule [post]
func (e *EventController) scheduleRoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := getActor(c, e.accountService)
		if actor == nil {
			return
		}
		competitionId, ok := intParam(c, "competition_id")
		if !ok {
			return
		}
		var body ScheduleRoundRequest
		if err := c.BindJSON(&body); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		contexts, err := e.eventService.ScheduleRound(actor, competitionId, body.RoundId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(201, utils.Map(contexts, toEventContextResponse))
	}
}

// @id ListParticipants
// @Description Lists archers and recorders of a competition
// @Tags competition
// @Produce json
// @Param competition_id path int true "Competition Id"
// @Success 200 {array} Participant
// @Router /competitions/{competition_id}/participants [get]
func (e *EventController) listParticipantsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		competitionId, ok := intParam(c, "competition_id")
		if !ok {
			return
		}
		participants, err := e.eventService.ListParticipants(competitionId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(participants, toParticipantResponse))
	}
}

// @id AttachChampionship
// @Description Counts a scheduled competition towards a championship
// @Tags competition
// @Accept json
// @Param competition_id path int true "Competition Id"
// @Param body body AttachChampionshipRequest true "Championship"
// @Success 204
// @Security BearerAuth
// @Router /competitions/{competition_id}/championship [put]
func (e *EventController) attachChampionshipHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := getActor(c, e.accountService)
		if actor == nil {
			return
		}
		competitionId, ok := intParam(c, "competition_id")
		if !ok {
			return
		}
		var body AttachChampionshipRequest
		if err := c.BindJSON(&body); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		if err := e.eventService.AttachToChampionship(actor, competitionId, body.ChampionshipId); err != nil {
			app_error.Respond(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// @id DetachChampionship
// @Description Removes a competition from its championship
// @Tags competition
// @Param competition_id path int true "Competition Id"
// @Success 204
// @Security BearerAuth
// @Router /competitions/{competition_id}/championship [delete]
func (e *EventController) detachChampionshipHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := getActor(c, e.accountService)
		if actor == nil {
			return
		}
		competitionId, ok := intParam(c, "competition_id")
		if !ok {
			return
		}
		if err := e.eventService.DetachFromChampionship(actor, competitionId); err != nil {
			app_error.Respond(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// @id GetContext
// @Description Fetches one scheduled end
// @Tags competition
// @Produce json
// @Param context_id path int true "Context Id"
// @Success 200 {object} EventContext
// @Router /contexts/{context_id} [get]
func (e *EventController) getContextHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		contextId, ok := intParam(c, "context_id")
		if !ok {
			return
		}
		context, err := e.eventService.GetContext(contextId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toEventContextResponse(context))
	}
}

// @id PracticeContext
// @Description Resolves the practice position for an end of a round, creating it on first use
// @Tags practice
// @Accept json
// @Produce json
// @Param body body PracticeContextRequest true "Position"
// @Success 200 {object} EventContext
// @Security BearerAuth
// @Router /practice/contexts [post]
func (e *EventController) practiceContextHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body PracticeContextRequest
		if err := c.BindJSON(&body); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		context, err := e.eventService.PracticeContext(body.RoundId, body.RangeId, body.EndOrder)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toEventContextResponse(context))
	}
}
