package controller

import (
	"archery/app_error"
	"archery/service"
	"archery/utils"

	"github.com/gin-gonic/gin"
)

type FriendController struct {
	friendService  *service.FriendService
	accountService *service.AccountService
}

func NewFriendController(services *Services) *FriendController {
	return &FriendController{
		friendService:  services.Friends,
		accountService: services.Accounts,
	}
}

func setupFriendController(services *Services) []RouteInfo {
	e := NewFriendController(services)
	return []RouteInfo{
		{Method: "GET", Path: "/friends", HandlerFunc: e.listOwnFriendsHandler(), Authenticated: true},
		{Method: "DELETE", Path: "/friends/:account_id", HandlerFunc: e.removeFriendHandler(), Authenticated: true},
		{Method: "GET", Path: "/accounts/:account_id/friends", HandlerFunc: e.listFriendsHandler(), Authenticated: true},
	}
}

// @id ListOwnFriends
// @Description Lists the caller's friends. Friend requests are sent through /requests.
// @Tags friend
// @Produce json
// @Success 200 {array} Account
// @Security BearerAuth
// @Router /friends [get]
func (e *FriendController) listOwnFriendsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := getActor(c, e.accountService)
		if actor == nil {
			return
		}
		friends, err := e.friendService.ListFriends(actor.Id)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(friends, toAccountResponse))
	}
}

// @id ListFriends
// @Description Lists the friends of an account
// @Tags friend
// @Produce json
// @Param account_id path int true "Account Id"
// @Success 200 {array} Account
// @Security BearerAuth
// @Router /accounts/{account_id}/friends [get]
func (e *FriendController) listFriendsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		accountId, ok := intParam(c, "account_id")
		if !ok {
			return
		}
		friends, err := e.friendService.ListFriends(accountId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(friends, toAccountResponse))
	}
}

// @id RemoveFriend
// @Description Ends a friendship in both directions
// @Tags friend
// @Param account_id path int true "Friend's account Id"
// @Success 204
// @Security BearerAuth
// @Router /friends/{account_id} [delete]
func (e *FriendController) removeFriendHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := getActor(c, e.accountService)
		if actor == nil {
			return
		}
		friendId, ok := intParam(c, "account_id")
		if !ok {
			return
		}
		if err := e.friendService.RemoveFriend(actor, friendId); err != nil {
			app_error.Respond(c, err)
			return
		}
		c.Status(204)
	}
}
