package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"archery/config"
	"archery/repository"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	account := &repository.Account{Id: 42, Roles: []string{"archer", "recorder"}}

	token, err := CreateToken(account)
	require.NoError(t, err)

	claims, err := ClaimsFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.UserId)
	assert.True(t, claims.HasRole(repository.RoleRecorder))
	assert.False(t, claims.HasRole(repository.RoleAdmin))
}

func TestExpiredTokenIsRejected(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": 1,
		"roles":   []string{"archer"},
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(config.Env().JWTSecret))
	require.NoError(t, err)

	_, err = ClaimsFromToken(signed)
	assert.Error(t, err)
}

func TestForeignSignatureIsRejected(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": 1,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("someone-else"))
	require.NoError(t, err)

	_, err = ClaimsFromToken(signed)
	assert.Error(t, err)
}

func TestTokenFromRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.Header.Set("Authorization", "Bearer abc")
	assert.Equal(t, "abc", TokenFromRequest(c))

	c, _ = gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.AddCookie(&http.Cookie{Name: CookieName, Value: "from-cookie"})
	c.Request.Header.Set("Authorization", "Bearer abc")
	assert.Equal(t, "from-cookie", TokenFromRequest(c))

	c, _ = gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, "", TokenFromRequest(c))
}

func TestPasswordHashing(t *testing.T) {
	_, err := HashPassword("short")
	assert.ErrorIs(t, err, ErrPasswordTooShort)

	hash, err := HashPassword("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", hash)
	assert.True(t, CheckPassword(hash, "correct horse"))
	assert.False(t, CheckPassword(hash, "battery staple"))
}
