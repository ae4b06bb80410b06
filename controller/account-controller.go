package controller

import (
	"net/http"
	"time"

	"archery/app_error"
	"archery/auth"
	"archery/repository"
	"archery/service"
	"archery/utils"

	"github.com/gin-gonic/gin"
)

type AccountController struct {
	accountService *service.AccountService
}

func NewAccountController(services *Services) *AccountController {
	return &AccountController{accountService: services.Accounts}
}

func setupAccountController(services *Services) []RouteInfo {
	e := NewAccountController(services)
	admin := []repository.Role{repository.RoleAdmin}
	routes := []RouteInfo{
		{Method: "POST", Path: "/auth/signup", HandlerFunc: e.signUpHandler(), RateLimited: true},
		{Method: "POST", Path: "/auth/login", HandlerFunc: e.loginHandler(), RateLimited: true},
		{Method: "POST", Path: "/auth/logout", HandlerFunc: e.logoutHandler()},
		{Method: "GET", Path: "/accounts/self", HandlerFunc: e.getSelfHandler(), Authenticated: true},
		{Method: "PATCH", Path: "/accounts/self", HandlerFunc: e.updateSelfHandler(), Authenticated: true},
		{Method: "DELETE", Path: "/accounts/self", HandlerFunc: e.deactivateSelfHandler(), Authenticated: true},
		{Method: "POST", Path: "/accounts/self/password", HandlerFunc: e.changePasswordHandler(), Authenticated: true},
		{Method: "POST", Path: "/accounts/self/avatar", HandlerFunc: e.uploadAvatarHandler(), Authenticated: true},
		{Method: "GET", Path: "/accounts", HandlerFunc: e.listAccountsHandler(), Authenticated: true, RequiredRoles: admin},
		{Method: "GET", Path: "/accounts/:account_id", HandlerFunc: e.getAccountHandler(), Authenticated: true},
		{Method: "PATCH", Path: "/accounts/:account_id", HandlerFunc: e.adminUpdateHandler(), Authenticated: true, RequiredRoles: admin},
		{Method: "DELETE", Path: "/accounts/:account_id", HandlerFunc: e.deactivateHandler(), Authenticated: true, RequiredRoles: admin},
	}
	return routes
}

type SignUpRequest struct {
	Username    string    `json:"username" binding:"required"`
	Email       string    `json:"email" binding:"required"`
	Password    string    `json:"password" binding:"required"`
	FirstName   string    `json:"first_name" binding:"required"`
	LastName    string    `json:"last_name" binding:"required"`
	DateOfBirth time.Time `json:"date_of_birth" binding:"required"`
	Gender      string    `json:"gender"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token   string          `json:"token" binding:"required"`
	Account *PrivateAccount `json:"account" binding:"required"`
}

type ProfileUpdateRequest struct {
	FirstName   *string    `json:"first_name"`
	LastName    *string    `json:"last_name"`
	Email       *string    `json:"email"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	Gender      *string    `json:"gender"`
}

type PasswordChangeRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

type AdminUpdateRequest struct {
	Roles       []repository.Role `json:"roles"`
	Deactivated *bool             `json:"deactivated"`
}

// @id SignUp
// @Description Creates an archer account
// @Tags auth
// @Accept json
// @Produce json
// @Param body body SignUpRequest true "Account data"
// @Success 201 {object} PrivateAccount
// @Router /auth/signup [post]
func (e *AccountController) signUpHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body SignUpRequest
		if err := c.BindJSON(&body); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		account, err := e.accountService.SignUp(service.SignUpInput{
			Username:    body.Username,
			Email:       body.Email,
			Password:    body.Password,
			FirstName:   body.FirstName,
			LastName:    body.LastName,
			DateOfBirth: body.DateOfBirth,
			Gender:      body.Gender,
		})
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(201, toPrivateAccountResponse(account))
	}
}

// @id Login
// @Description Verifies credentials, sets the auth cookie and returns the token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Router /auth/login [post]
func (e *AccountController) loginHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body LoginRequest
		if err := c.BindJSON(&body); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		account, token, err := e.accountService.Login(c.Request.Context(), body.Username, body.Password)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		auth.SetAuthCookie(c, token)
		c.JSON(200, LoginResponse{Token: token, Account: toPrivateAccountResponse(account)})
	}
}

// @id Logout
// @Description Clears the auth cookie
// @Tags auth
// @Success 204
// @Router /auth/logout [post]
func (e *AccountController) logoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth.ClearAuthCookie(c)
		c.Status(http.StatusNoContent)
	}
}

// @id GetSelf
// @Description Fetches the authenticated account
// @Tags account
// @Produce json
// @Success 200 {object} PrivateAccount
// @Security BearerAuth
// @Router /accounts/self [get]
func (e *AccountController) getSelfHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := getActor(c, e.accountService)
		if actor == nil {
			return
		}
		c.JSON(200, toPrivateAccountResponse(actor))
	}
}

// @id UpdateSelf
// @Description Updates the profile of the authenticated account
// @Tags account
// @Accept json
// @Produce json
// @Param body body ProfileUpdateRequest true "Profile fields to change"
// @Success 200 {object} PrivateAccount
// @Security BearerAuth
// @Router /accounts/self [patch]
func (e *AccountController) updateSelfHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := getActor(c, e.accountService)
		if actor == nil {
			return
		}
		var body ProfileUpdateRequest
		if err := c.BindJSON(&body); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		account, err := e.accountService.UpdateSelf(actor, service.ProfileUpdate{
			FirstName:   body.FirstName,
			LastName:    body.LastName,
			Email:       body.Email,
			DateOfBirth: body.DateOfBirth,
			Gender:      body.Gender,
		})
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toPrivateAccountResponse(account))
	}
}

// @id DeactivateSelf
// @Description Deactivates the authenticated account and logs out
// @Tags account
// @Success 204
// @Security BearerAuth
// @Router /accounts/self [delete]
func (e *AccountController) deactivateSelfHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := getActor(c, e.accountService)
		if actor == nil {
			return
		}
		if err := e.accountService.Deactivate(actor, actor.Id); err != nil {
			app_error.Respond(c, err)
			return
		}
		auth.ClearAuthCookie(c)
		c.Status(http.StatusNoContent)
	}
}

// @id ChangePassword
// @Description Changes the password of the authenticated account
// @Tags account
// @Accept json
// @Param body body PasswordChangeRequest true "Old and new password"
// @Success 204
// @Security BearerAuth
// @Router /accounts/self/password [post]
func (e *AccountController) changePasswordHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := getActor(c, e.accountService)
		if actor == nil {
			return
		}
		var body PasswordChangeRequest
		if err := c.BindJSON(&body); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		if err := e.accountService.ChangePassword(actor, body.OldPassword, body.NewPassword); err != nil {
			app_error.Respond(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// @id UploadAvatar
// @Description Uploads a png, jpeg, gif or webp avatar of at most 5 MiB
// @Tags account
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image"
// @Success 200 {object} PrivateAccount
// @Security BearerAuth
// @Router /accounts/self/avatar [post]
func (e *AccountController) uploadAvatarHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := getActor(c, e.accountService)
		if actor == nil {
			return
		}
		data, ok := readUpload(c)
		if !ok {
			return
		}
		account, err := e.accountService.UploadAvatar(c.Request.Context(), actor, data)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toPrivateAccountResponse(account))
	}
}

// @id ListAccounts
// @Description Lists accounts, optionally filtered by role, club and deactivation
// @Tags account
// @Produce json
// @Param role query string false "Role"
// @Param club_id query int false "Club Id"
// @Param deactivated query bool false "Deactivated"
// @Success 200 {array} PrivateAccount
// @Security BearerAuth
// @Router /accounts [get]
func (e *AccountController) listAccountsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := repository.AccountFilter{}
		if role := c.Query("role"); role != "" {
			r := repository.Role(role)
			if !r.Valid() {
				c.JSON(400, gin.H{"error": "unknown role"})
				return
			}
			filter.Role = &r
		}
		clubId, ok := optionalIntQuery(c, "club_id")
		if !ok {
			return
		}
		filter.ClubId = clubId
		switch c.Query("deactivated") {
		case "true":
			filter.Deactivated = utils.Ptr(true)
		case "false":
			filter.Deactivated = utils.Ptr(false)
		}
		accounts, err := e.accountService.ListAccounts(filter)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(accounts, toPrivateAccountResponse))
	}
}

// @id GetAccount
// @Description Fetches the public profile of an account
// @Tags account
// @Produce json
// @Param account_id path int true "Account Id"
// @Success 200 {object} Account
// @Security BearerAuth
// @Router /accounts/{account_id} [get]
func (e *AccountController) getAccountHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		accountId, ok := intParam(c, "account_id")
		if !ok {
			return
		}
		account, err := e.accountService.GetAccount(accountId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toAccountResponse(account))
	}
}

// @id AdminUpdateAccount
// @Description Replaces the roles or the deactivation flag of an account
// @Tags account
// @Accept json
// @Produce json
// @Param account_id path int true "Account Id"
// @Param body body AdminUpdateRequest true "Roles and flag"
// @Success 200 {object} PrivateAccount
// @Security BearerAuth
// @Router /accounts/{account_id} [patch]
func (e *AccountController) adminUpdateHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		accountId, ok := intParam(c, "account_id")
		if !ok {
			return
		}
		var body AdminUpdateRequest
		if err := c.BindJSON(&body); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		account, err := e.accountService.AdminUpdate(accountId, body.Roles, body.Deactivated)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toPrivateAccountResponse(account))
	}
}

// @id DeactivateAccount
// @Description Deactivates an account
// @Tags account
// @Param account_id path int true "Account Id"
// @Success 204
// @Security BearerAuth
// @Router /accounts/{account_id} [delete]
func (e *AccountController) deactivateHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := getActor(c, e.accountService)
		if actor == nil {
			return
		}
		accountId, ok := intParam(c, "account_id")
		if !ok {
			return
		}
		if err := e.accountService.Deactivate(actor, accountId); err != nil {
			app_error.Respond(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
