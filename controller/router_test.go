package controller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"archery/auth"
	"archery/repository"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func protectedEngine(roles []repository.Role) *gin.Engine {
	r := gin.New()
	r.GET("/protected", AuthMiddleware(roles), func(c *gin.Context) {
		c.JSON(200, gin.H{"user_id": auth.GetClaims(c).UserId})
	})
	return r
}

func bearer(t *testing.T, id int, roles ...string) string {
	t.Helper()
	token, err := auth.CreateToken(&repository.Account{Id: id, Roles: pq.StringArray(roles)})
	require.NoError(t, err)
	return "Bearer " + token
}

func TestAuthMiddleware(t *testing.T) {
	cases := []struct {
		name   string
		roles  []repository.Role
		header string
		want   int
	}{
		{"missing token", nil, "", http.StatusUnauthorized},
		{"garbage token", nil, "Bearer nonsense", http.StatusUnauthorized},
		{"any account", nil, bearer(t, 7, "archer"), http.StatusOK},
		{"missing role", []repository.Role{repository.RoleAdmin}, bearer(t, 7, "archer"), http.StatusForbidden},
		{"one of several roles", []repository.Role{repository.RoleAdmin, repository.RoleFederationMember}, bearer(t, 7, "federation_member"), http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			protectedEngine(tc.roles).ServeHTTP(w, req)
			assert.Equal(t, tc.want, w.Code)
		})
	}
}

func TestAuthMiddlewareReadsCookie(t *testing.T) {
	token, err := auth.CreateToken(&repository.Account{Id: 12})
	require.NoError(t, err)
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: token})

	protectedEngine(nil).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":12}`, w.Body.String())
}

func TestRateLimitMiddleware(t *testing.T) {
	limiter := NewIPRateLimiter(rate.Every(time.Hour), 2)
	r := gin.New()
	r.POST("/login", RateLimitMiddleware(limiter), func(c *gin.Context) { c.Status(204) })

	codes := make([]int, 0)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/login", nil)
		req.RemoteAddr = "10.0.0.1:5000"
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{204, 204, http.StatusTooManyRequests}, codes)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/login", nil)
	req.RemoteAddr = "10.0.0.2:5000"
	r.ServeHTTP(w, req)
	assert.Equal(t, 204, w.Code, "buckets are per client")
}

func TestCSRFSkipsBearerRequests(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(204) })
	handler := CSRF([]byte(strings.Repeat("k", 32)), false, []string{"localhost:3000"})(next)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/clubs", nil)
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code, "cookie requests need a token")

	w = httptest.NewRecorder()
	req = httptest.NewRequest("POST", "/api/clubs", nil)
	req.Header.Set("Authorization", "Bearer abc")
	handler.ServeHTTP(w, req)
	assert.Equal(t, 204, w.Code)

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/api/clubs", nil))
	assert.Equal(t, 204, w.Code)
	assert.NotEmpty(t, w.Header().Get(CSRFHeader))
}

func TestScoreHubBroadcastsToCompetitionSubscribers(t *testing.T) {
	hub := NewScoreHub()
	e := &ScoreController{hub: hub}
	r := gin.New()
	r.GET("/competitions/:competition_id/scores/ws", e.webSocketHandler)
	server := httptest.NewServer(r)
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/competitions/3/scores/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()
	require.Eventually(t, func() bool { return hub.Subscribers(3) == 1 }, time.Second, 5*time.Millisecond)

	hub.ScoreChanged(4, &repository.ParticipantScore{Id: 1, Sum: 10})
	hub.ScoreChanged(3, &repository.ParticipantScore{Id: 2, Sum: 27, Arrows: pq.Int64Array{10, 9, 8}})

	var got Score
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, 2, got.Id)
	assert.Equal(t, []int{10, 9, 8}, got.Arrows)

	conn.Close()
	assert.Eventually(t, func() bool { return hub.Subscribers(3) == 0 }, time.Second, 5*time.Millisecond)
}
