package controller

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"archery/app_error"
	"archery/logger"
	"archery/metrics"
	"archery/repository"
	"archery/service"
	"archery/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const scoreWriteTimeout = 5 * time.Second

// ScoreHub fans score changes out to the websocket subscribers of each competition.
type ScoreHub struct {
	mu          sync.Mutex
	connections map[int]map[*websocket.Conn]struct{}
	log         *zap.SugaredLogger
}

func NewScoreHub() *ScoreHub {
	return &ScoreHub{
		connections: make(map[int]map[*websocket.Conn]struct{}),
		log:         logger.Named("ws"),
	}
}

func (h *ScoreHub) subscribe(competitionId int, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.connections[competitionId]; !ok {
		h.connections[competitionId] = make(map[*websocket.Conn]struct{})
	}
	h.connections[competitionId][conn] = struct{}{}
	metrics.ScoreSubscribersGauge.Inc()
}

func (h *ScoreHub) unsubscribe(competitionId int, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.connections[competitionId][conn]; !ok {
		return
	}
	delete(h.connections[competitionId], conn)
	if len(h.connections[competitionId]) == 0 {
		delete(h.connections, competitionId)
	}
	metrics.ScoreSubscribersGauge.Dec()
}

func (h *ScoreHub) Subscribers(competitionId int) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.connections[competitionId])
}

// ScoreChanged implements service.ScoreListener.
func (h *ScoreHub) ScoreChanged(competitionId int, score *repository.ParticipantScore) {
	if competitionId == 0 {
		return
	}
	serialized, err := json.Marshal(toScoreResponse(score))
	if err != nil {
		h.log.Errorw("failed to serialize score", "score", score.Id, "error", err)
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.connections[competitionId] {
		_ = conn.SetWriteDeadline(time.Now().Add(scoreWriteTimeout))
		if err := conn.WriteMessage(websocket.TextMessage, serialized); err != nil {
			conn.Close()
			delete(h.connections[competitionId], conn)
			metrics.ScoreSubscribersGauge.Dec()
		}
	}
	if len(h.connections[competitionId]) == 0 {
		delete(h.connections, competitionId)
	}
}

type ScoreController struct {
	scoreService   *service.ScoreService
	accountService *service.AccountService
	hub            *ScoreHub
}

func NewScoreController(services *Services) *ScoreController {
	hub := NewScoreHub()
	services.Scores.Subscribe(hub)
	return &ScoreController{
		scoreService:   services.Scores,
		accountService: services.Accounts,
		hub:            hub,
	}
}

func setupScoreController(services *Services) []RouteInfo {
	e := NewScoreController(services)
	routes := []RouteInfo{
		{Method: "POST", Path: "/scores", HandlerFunc: e.recordEndHandler(), Authenticated: true},
		{Method: "GET", Path: "/scores/:score_id", HandlerFunc: e.getScoreHandler()},
		{Method: "PATCH", Path: "/scores/:score_id/status", HandlerFunc: e.setStatusHandler(), Authenticated: true},
		{Method: "GET", Path: "/competitions/:competition_id/scores", HandlerFunc: e.listScoresHandler()},
		{Method: "GET", Path: "/competitions/:competition_id/scores/ws", HandlerFunc: e.webSocketHandler},
		{Method: "GET", Path: "/accounts/:account_id/scores", HandlerFunc: e.listArcherScoresHandler(), Authenticated: true},
	}
	return routes
}

type RecordEndRequest struct {
	ArcherId       *int                 `json:"archer_id"`
	EventContextId int                  `json:"event_context_id" binding:"required"`
	Type           repository.ScoreType `json:"type" binding:"required"`
	Arrows         []int                `json:"arrows" binding:"required"`
}

type ScoreStatusUpdate struct {
	Status repository.ReviewStatus `json:"status" binding:"required"`
}

// @id RecordEnd
// @Description Records or replaces the arrows of one end. archer_id defaults to the caller.
// @Tags score
// @Accept json
// @Produce json
// @Param body body RecordEndRequest true "End"
// @Success 200 {object} Score
// @Security BearerAuth
// @Router /scores [post]
func (e *ScoreController) recordEndHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := getActor(c, e.accountService)
		if actor == nil {
			return
		}
		var body RecordEndRequest
		if err := c.BindJSON(&body); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		archerId := actor.Id
		if body.ArcherId != nil {
			archerId = *body.ArcherId
		}
		score, err := e.scoreService.RecordEnd(actor, service.RecordEndInput{
			ArcherId:       archerId,
			EventContextId: body.EventContextId,
			Type:           body.Type,
			Arrows:         body.Arrows,
		})
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toScoreResponse(score))
	}
}

// @id GetScore
// @Description Fetches one end score
// @Tags score
// @Produce json
// @Param score_id path int true "Score Id"
// @Success 200 {object} Score
// @Router /scores/{score_id} [get]
func (e *ScoreController) getScoreHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		scoreId, ok := intParam(c, "score_id")
		if !ok {
			return
		}
		score, err := e.scoreService.GetScore(scoreId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toScoreResponse(score))
	}
}

// @id SetScoreStatus
// @Description Moves a competition score through review. Eligible scores are locked.
// @Tags score
// @Accept json
// @Produce json
// @Param score_id path int true "Score Id"
// @Param body body ScoreStatusUpdate true "Status"
// @Success 200 {object} Score
// @Security BearerAuth
// @Router /scores/{score_id}/status [patch]
func (e *ScoreController) setStatusHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := getActor(c, e.accountService)
		if actor == nil {
			return
		}
		scoreId, ok := intParam(c, "score_id")
		if !ok {
			return
		}
		var body ScoreStatusUpdate
		if err := c.BindJSON(&body); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		score, err := e.scoreService.SetScoreStatus(actor, scoreId, body.Status)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toScoreResponse(score))
	}
}

// @id ListCompetitionScores
// @Description Lists the end scores of a competition
// @Tags score
// @Produce json
// @Param competition_id path int true "Competition Id"
// @Param archer_id query int false "Archer Id"
// @Param round_id query int false "Round Id"
// @Param status query string false "Status"
// @Success 200 {array} Score
// @Router /competitions/{competition_id}/scores [get]
func (e *ScoreController) listScoresHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		competitionId, ok := intParam(c, "competition_id")
		if !ok {
			return
		}
		filter := repository.ScoreFilter{}
		if filter.ArcherId, ok = optionalIntQuery(c, "archer_id"); !ok {
			return
		}
		if filter.RoundId, ok = optionalIntQuery(c, "round_id"); !ok {
			return
		}
		if status := c.Query("status"); status != "" {
			s := repository.ReviewStatus(status)
			if !s.Valid() {
				c.JSON(400, gin.H{"error": "unknown status"})
				return
			}
			filter.Status = &s
		}
		scores, err := e.scoreService.ListScores(competitionId, filter)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(scores, toScoreResponse))
	}
}

// @id ListArcherScores
// @Description Lists every end score of an archer, newest first
// @Tags score
// @Produce json
// @Param account_id path int true "Account Id"
// @Success 200 {array} Score
// @Security BearerAuth
// @Router /accounts/{account_id}/scores [get]
func (e *ScoreController) listArcherScoresHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		accountId, ok := intParam(c, "account_id")
		if !ok {
			return
		}
		scores, err := e.scoreService.ListArcherScores(accountId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(scores, toScoreResponse))
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// @id ScoreWebSocket
// @Description Websocket that pushes every score change of a competition as it is stored
// @Tags score
// @Param competition_id path int true "Competition Id"
// @Success 200 {object} Score
// @Router /competitions/{competition_id}/scores/ws [get]
func (e *ScoreController) webSocketHandler(c *gin.Context) {
	competitionId, ok := intParam(c, "competition_id")
	if !ok {
		return
	}
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	e.hub.subscribe(competitionId, conn)
	defer e.hub.unsubscribe(competitionId, conn)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
