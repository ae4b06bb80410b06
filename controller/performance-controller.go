package controller

import (
	"fmt"

	"archery/app_error"
	"archery/service"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type PerformanceController struct {
	performanceService *service.PerformanceService
	accountService     *service.AccountService
}

func NewPerformanceController(services *Services) *PerformanceController {
	return &PerformanceController{
		performanceService: services.Performance,
		accountService:     services.Accounts,
	}
}

func setupPerformanceController(services *Services) []RouteInfo {
	e := NewPerformanceController(services)
	basePath := "/leaderboards"
	routes := []RouteInfo{
		{Method: "GET", Path: "/competitions/:competition_id", HandlerFunc: e.competitionLeaderboardHandler()},
		{Method: "GET", Path: "/competitions/:competition_id/export", HandlerFunc: e.exportCompetitionHandler()},
		{Method: "GET", Path: "/competitions/:competition_id/rounds/:round_id", HandlerFunc: e.roundLeaderboardHandler()},
		{Method: "GET", Path: "/championships/:championship_id", HandlerFunc: e.championshipStandingsHandler()},
		{Method: "GET", Path: "/clubs", HandlerFunc: e.clubLeaderboardHandler()},
		{Method: "GET", Path: "/friends", HandlerFunc: e.friendsLeaderboardHandler(), Authenticated: true},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return append(routes,
		RouteInfo{Method: "GET", Path: "/accounts/:account_id/performance", HandlerFunc: e.archerPerformanceHandler()},
		RouteInfo{Method: "GET", Path: "/accounts/:account_id/performance/chart", HandlerFunc: e.archerChartHandler()},
	)
}

// @id GetCompetitionLeaderboard
// @Description Ranks the archers of a competition by their eligible totals
// @Tags performance
// @Produce json
// @Param competition_id path int true "Competition Id"
// @Param category_id query int false "Restrict to one category"
// @Success 200 {object} service.Leaderboard
// @Router /leaderboards/competitions/{competition_id} [get]
func (e *PerformanceController) competitionLeaderboardHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		competitionId, ok := intParam(c, "competition_id")
		if !ok {
			return
		}
		categoryId, ok := optionalIntQuery(c, "category_id")
		if !ok {
			return
		}
		board, err := e.performanceService.CompetitionLeaderboard(competitionId, categoryId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, board)
	}
}

// @id ExportCompetitionLeaderboard
// @Description Downloads a competition leaderboard as a spreadsheet
// @Tags performance
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param competition_id path int true "Competition Id"
// @Param category_id query int false "Restrict to one category"
// @Success 200 {file} binary
// @Router /leaderboards/competitions/{competition_id}/export [get]
func (e *PerformanceController) exportCompetitionHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		competitionId, ok := intParam(c, "competition_id")
		if !ok {
			return
		}
		categoryId, ok := optionalIntQuery(c, "category_id")
		if !ok {
			return
		}
		data, err := e.performanceService.ExportCompetitionLeaderboard(competitionId, categoryId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="competition-%d.xlsx"`, competitionId))
		c.Data(200, xlsxContentType, data)
	}
}

// @id GetRoundLeaderboard
// @Description Ranks the archers of a single round within a competition
// @Tags performance
// @Produce json
// @Param competition_id path int true "Competition Id"
// @Param round_id path int true "Round Id"
// @Success 200 {object} service.Leaderboard
// @Router /leaderboards/competitions/{competition_id}/rounds/{round_id} [get]
func (e *PerformanceController) roundLeaderboardHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		competitionId, ok := intParam(c, "competition_id")
		if !ok {
			return
		}
		roundId, ok := intParam(c, "round_id")
		if !ok {
			return
		}
		board, err := e.performanceService.RoundLeaderboard(competitionId, roundId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, board)
	}
}

// @id GetChampionshipStandings
// @Description Ranks archers across every competition attached to a championship
// @Tags performance
// @Produce json
// @Param championship_id path int true "Championship Id"
// @Success 200 {object} service.Leaderboard
// @Router /leaderboards/championships/{championship_id} [get]
func (e *PerformanceController) championshipStandingsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		championshipId, ok := intParam(c, "championship_id")
		if !ok {
			return
		}
		board, err := e.performanceService.ChampionshipStandings(championshipId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, board)
	}
}

// @id GetClubLeaderboard
// @Description Ranks clubs by the average round total of their members
// @Tags performance
// @Produce json
// @Success 200 {array} service.ClubStanding
// @Router /leaderboards/clubs [get]
func (e *PerformanceController) clubLeaderboardHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		standings, err := e.performanceService.ClubLeaderboard()
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, standings)
	}
}

// @id GetFriendsLeaderboard
// @Description Ranks the caller against their friends
// @Tags performance
// @Produce json
// @Success 200 {object} service.Leaderboard
// @Security BearerAuth
// @Router /leaderboards/friends [get]
func (e *PerformanceController) friendsLeaderboardHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := getActor(c, e.accountService)
		if actor == nil {
			return
		}
		board, err := e.performanceService.FriendsLeaderboard(actor.Id)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, board)
	}
}

// @id GetArcherPerformance
// @Description Summarizes an archer's eligible ends, personal bests and percentiles
// @Tags performance
// @Produce json
// @Param account_id path int true "Account Id"
// @Success 200 {object} service.ArcherPerformance
// @Router /accounts/{account_id}/performance [get]
func (e *PerformanceController) archerPerformanceHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		accountId, ok := intParam(c, "account_id")
		if !ok {
			return
		}
		if _, err := e.accountService.GetAccount(accountId); err != nil {
			app_error.Respond(c, err)
			return
		}
		performance, err := e.performanceService.ArcherPerformance(accountId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, performance)
	}
}

// @id GetArcherChart
// @Description Renders an archer's round totals over time as a PNG
// @Tags performance
// @Produce png
// @Param account_id path int true "Account Id"
// @Success 200 {file} binary
// @Router /accounts/{account_id}/performance/chart [get]
func (e *PerformanceController) archerChartHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		accountId, ok := intParam(c, "account_id")
		if !ok {
			return
		}
		if _, err := e.accountService.GetAccount(accountId); err != nil {
			app_error.Respond(c, err)
			return
		}
		data, err := e.performanceService.ExportArcherChart(accountId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.Data(200, "image/png", data)
	}
}
