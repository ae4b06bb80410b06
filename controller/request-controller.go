package controller

import (
	"net/http"

	"archery/app_error"
	"archery/repository"
	"archery/service"
	"archery/utils"

	"github.com/gin-gonic/gin"
)

type RequestController struct {
	reviewService  *service.ReviewService
	accountService *service.AccountService
}

func NewRequestController(services *Services) *RequestController {
	return &RequestController{
		reviewService:  services.Reviews,
		accountService: services.Accounts,
	}
}

func setupRequestController(services *Services) []RouteInfo {
	e := NewRequestController(services)
	basePath := "/requests"
	routes := []RouteInfo{
		{Method: "POST", Path: "", HandlerFunc: e.submitHandler(), Authenticated: true},
		{Method: "GET", Path: "/incoming", HandlerFunc: e.listIncomingHandler(), Authenticated: true},
		{Method: "GET", Path: "/outgoing", HandlerFunc: e.listOutgoingHandler(), Authenticated: true},
		{Method: "GET", Path: "/:request_id", HandlerFunc: e.getRequestHandler(), Authenticated: true},
		{Method: "DELETE", Path: "/:request_id", HandlerFunc: e.cancelHandler(), Authenticated: true},
		{Method: "POST", Path: "/:request_id/start", HandlerFunc: e.startReviewHandler(), Authenticated: true},
		{Method: "POST", Path: "/:request_id/approve", HandlerFunc: e.approveHandler(), Authenticated: true},
		{Method: "POST", Path: "/:request_id/reject", HandlerFunc: e.rejectHandler(), Authenticated: true},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

type RequestSubmit struct {
	Kind     repository.RequestKind `json:"kind" binding:"required"`
	TargetId int                    `json:"target_id" binding:"required"`
	Message  string                 `json:"message"`
}

type ReviewDecision struct {
	Comment string `json:"comment"`
}

// requestFilter reads the optional kind and status query parameters.
func requestFilter(c *gin.Context) (repository.RequestFilter, bool) {
	filter := repository.RequestFilter{}
	if kind := c.Query("kind"); kind != "" {
		k := repository.RequestKind(kind)
		filter.Kind = &k
	}
	if status := c.Query("status"); status != "" {
		s := repository.ReviewStatus(status)
		if !s.Valid() {
			c.JSON(400, gin.H{"error": "unknown status"})
			return filter, false
		}
		filter.Status = &s
	}
	return filter, true
}

// @id SubmitRequest
// @Description Submits a reviewable request. A rejected request for the same target is reopened.
// @Tags request
// @Accept json
// @Produce json
// @Param body body RequestSubmit true "Request"
// @Success 201 {object} ReviewRequest
// @Security BearerAuth
// @Router /requests [post]
func (e *RequestController) submitHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := getActor(c, e.accountService)
		if actor == nil {
			return
		}
		var body RequestSubmit
		if err := c.BindJSON(&body); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		request, err := e.reviewService.Submit(actor, body.Kind, body.TargetId, body.Message)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(201, toReviewRequestResponse(request))
	}
}

// @id ListIncomingRequests
// @Description Lists the requests the authenticated account may decide on
// @Tags request
// @Produce json
// @Param kind query string false "Request kind"
// @Param status query string false "Status"
// @Success 200 {array} ReviewRequest
// @Security BearerAuth
// @Router /requests/incoming [get]
func (e *RequestController) listIncomingHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := getActor(c, e.accountService)
		if actor == nil {
			return
		}
		filter, ok := requestFilter(c)
		if !ok {
			return
		}
		requests, err := e.reviewService.ListIncoming(actor, filter)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(requests, toReviewRequestResponse))
	}
}

// @id ListOutgoingRequests
// @Description Lists the requests submitted by the authenticated account
// @Tags request
// @Produce json
// @Param kind query string false "Request kind"
// @Param status query string false "Status"
// @Success 200 {array} ReviewRequest
// @Security BearerAuth
// @Router /requests/outgoing [get]
func (e *RequestController) listOutgoingHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := getActor(c, e.accountService)
		if actor == nil {
			return
		}
		filter, ok := requestFilter(c)
		if !ok {
			return
		}
		requests, err := e.reviewService.ListOutgoing(actor, filter)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(requests, toReviewRequestResponse))
	}
}

// @id GetRequest
// @Description Fetches a request visible to its requester or a reviewer
// @Tags request
// @Produce json
// @Param request_id path int true "Request Id"
// @Success 200 {object} ReviewRequest
// @Security BearerAuth
// @Router /requests/{request_id} [get]
func (e *RequestController) getRequestHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := getActor(c, e.accountService)
		if actor == nil {
			return
		}
		requestId, ok := intParam(c, "request_id")
		if !ok {
			return
		}
		request, err := e.reviewService.GetRequest(actor, requestId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toReviewRequestResponse(request))
	}
}

// @id CancelRequest
// @Description Withdraws an open request
// @Tags request
// @Param request_id path int true "Request Id"
// @Success 204
// @Security BearerAuth
// @Router /requests/{request_id} [delete]
func (e *RequestController) cancelHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := getActor(c, e.accountService)
		if actor == nil {
			return
		}
		requestId, ok := intParam(c, "request_id")
		if !ok {
			return
		}
		if err := e.reviewService.Cancel(actor, requestId); err != nil {
			app_error.Respond(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// @id StartReview
// @Description Marks a pending request as in progress
// @Tags request
// @Produce json
// @Param request_id path int true "Request Id"
// @Success 200 {object} ReviewRequest
// @Security BearerAuth
// @Router /requests/{request_id}/start [post]
func (e *RequestController) startReviewHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := getActor(c, e.accountService)
		if actor == nil {
			return
		}
		requestId, ok := intParam(c, "request_id")
		if !ok {
			return
		}
		request, err := e.reviewService.StartReview(actor, requestId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toReviewRequestResponse(request))
	}
}

func (e *RequestController) decide(approve bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := getActor(c, e.accountService)
		if actor == nil {
			return
		}
		requestId, ok := intParam(c, "request_id")
		if !ok {
			return
		}
		var body ReviewDecision
		if c.Request.ContentLength > 0 {
			if err := c.BindJSON(&body); err != nil {
				c.JSON(400, gin.H{"error": err.Error()})
				return
			}
		}
		decide := e.reviewService.Reject
		if approve {
			decide = e.reviewService.Approve
		}
		request, err := decide(c.Request.Context(), actor, requestId, body.Comment)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toReviewRequestResponse(request))
	}
}

// @id ApproveRequest
// @Description Approves a request, applies its effect and removes it
// @Tags request
// @Accept json
// @Produce json
// @Param request_id path int true "Request Id"
// @Param body body ReviewDecision false "Comment"
// @Success 200 {object} ReviewRequest
// @Security BearerAuth
// @Router /requests/{request_id}/approve [post]
func (e *RequestController) approveHandler() gin.HandlerFunc {
	return e.decide(true)
}

// @id RejectRequest
// @Description Rejects a request. The requester may resubmit it later.
// @Tags request
// @Accept json
// @Produce json
// @Param request_id path int true "Request Id"
// @Param body body ReviewDecision false "Comment"
// @Success 200 {object} ReviewRequest
// @Security BearerAuth
// @Router /requests/{request_id}/reject [post]
func (e *RequestController) rejectHandler() gin.HandlerFunc {
	return e.decide(false)
}
