package controller

import (
	"net/http"
	"time"

	"archery/auth"
	"archery/repository"
	"archery/service"

	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type RouteInfo struct {
	Method        string
	Path          string
	HandlerFunc   gin.HandlerFunc
	Authenticated bool
	RequiredRoles []repository.Role
	RateLimited   bool
}

// Services holds everything the controllers call into.
type Services struct {
	Accounts    *service.AccountService
	Clubs       *service.ClubService
	Categories  *service.CategoryService
	Rounds      *service.RoundService
	Events      *service.EventService
	Eligibility *service.EligibilityService
	Reviews     *service.ReviewService
	Scores      *service.ScoreService
	Performance *service.PerformanceService
	Friends     *service.FriendService
}

func SetRoutes(r *gin.Engine, services *Services, cacheStore persistence.CacheStore) {
	routes := make([]RouteInfo, 0)
	routes = append(routes, setupAccountController(services)...)
	routes = append(routes, setupClubController(services)...)
	routes = append(routes, setupCategoryController(services, cacheStore)...)
	routes = append(routes, setupRoundController(services, cacheStore)...)
	routes = append(routes, setupEventController(services)...)
	routes = append(routes, setupGroupController(services)...)
	routes = append(routes, setupRequestController(services)...)
	routes = append(routes, setupScoreController(services)...)
	routes = append(routes, setupPerformanceController(services)...)
	routes = append(routes, setupFriendController(services)...)

	// 10 attempts per minute per client on login and sign-up
	limiter := NewIPRateLimiter(rate.Every(6*time.Second), 10)
	api := r.Group("/api")
	for _, route := range routes {
		handlerfuncs := make([]gin.HandlerFunc, 0)
		if route.RateLimited {
			handlerfuncs = append(handlerfuncs, RateLimitMiddleware(limiter))
		}
		if route.Authenticated {
			handlerfuncs = append(handlerfuncs, AuthMiddleware(route.RequiredRoles))
		}
		handlerfuncs = append(handlerfuncs, route.HandlerFunc)
		api.Handle(route.Method, route.Path, handlerfuncs...)
	}
}

// AuthMiddleware accepts the auth cookie or a Bearer token. With roles set, any one of them suffices.
func AuthMiddleware(roles []repository.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := auth.TokenFromRequest(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthenticated"})
			return
		}
		claims, err := auth.ClaimsFromToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthenticated"})
			return
		}
		auth.SetClaims(c, claims)
		if len(roles) == 0 {
			c.Next()
			return
		}
		for _, role := range roles {
			if claims.HasRole(role) {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
	}
}
