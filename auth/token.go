package auth

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"archery/config"
	"archery/repository"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	CookieName    = "auth"
	TokenLifetime = time.Hour * 24 * 14
	claimsKey     = "claims"
)

type Claims struct {
	UserId int      `json:"user_id"`
	Roles  []string `json:"roles"`
	Exp    int64    `json:"exp"`
}

func (claims *Claims) FromJWTClaims(jwtClaims jwt.Claims) error {
	mapClaims, ok := jwtClaims.(jwt.MapClaims)
	if !ok {
		return jwt.ErrTokenInvalidClaims
	}
	roles := []string{}
	if raw, ok := mapClaims["roles"].([]interface{}); ok {
		for _, role := range raw {
			if r, ok := role.(string); ok {
				roles = append(roles, r)
			}
		}
	}
	userId, ok := mapClaims["user_id"].(float64)
	if !ok {
		return jwt.ErrTokenInvalidClaims
	}
	exp, ok := mapClaims["exp"].(float64)
	if !ok {
		return jwt.ErrTokenInvalidClaims
	}
	claims.Roles = roles
	claims.UserId = int(userId)
	claims.Exp = int64(exp)
	return nil
}

func (claims *Claims) Valid() error {
	if time.Now().Unix() > claims.Exp {
		return jwt.ErrTokenExpired
	}
	return nil
}

func (claims *Claims) HasRole(role repository.Role) bool {
	for _, r := range claims.Roles {
		if r == string(role) {
			return true
		}
	}
	return false
}

func CreateToken(account *repository.Account) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256,
		jwt.MapClaims{
			"user_id": account.Id,
			"roles":   []string(account.Roles),
			"exp":     time.Now().Add(TokenLifetime).Unix(),
		})

	tokenString, err := token.SignedString([]byte(config.Env().JWTSecret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(config.Env().JWTSecret), nil
	})

	if err != nil {
		return nil, err
	}
	return token, nil
}

// ClaimsFromToken parses and validates a token string.
func ClaimsFromToken(tokenString string) (*Claims, error) {
	token, err := ParseToken(tokenString)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}
	claims := &Claims{}
	if err := claims.FromJWTClaims(token.Claims); err != nil {
		return nil, err
	}
	if err := claims.Valid(); err != nil {
		return nil, err
	}
	return claims, nil
}

// TokenFromRequest reads the auth cookie, falling back to a Bearer header.
func TokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie(CookieName); err == nil && cookie != "" {
		return cookie
	}
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return header[7:]
	}
	return ""
}

func SetClaims(c *gin.Context, claims *Claims) {
	c.Set(claimsKey, claims)
}

// GetClaims returns the claims stored by the auth middleware, or nil.
func GetClaims(c *gin.Context) *Claims {
	value, ok := c.Get(claimsKey)
	if !ok {
		return nil
	}
	claims, _ := value.(*Claims)
	return claims
}

func SetAuthCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, token, int(TokenLifetime.Seconds()), "/", "", config.IsProduction(), true)
}

func ClearAuthCookie(c *gin.Context) {
	c.SetCookie(CookieName, "", -1, "/", "", config.IsProduction(), true)
}
