package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"push-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrExpiredToken    = errors.New("token has expired")
	ErrInvalidJWTToken = errors.New("token is invalid")
	ErrParseJWTToken   = errors.New("failed to parse token")
)

// Middleware validates bearer tokens and puts the authenticated user id on
// the gin context under "User-ID".
type Middleware struct {
	jwtSecret string
	logger    *observability.Logger
}

func NewMiddleware(jwtSecret string, logger *observability.Logger) Middleware {
	return Middleware{
		jwtSecret: jwtSecret,
		logger:    logger,
	}
}

// HandleJWTMiddleware is the gin middleware guarding protected routes
func (m *Middleware) HandleJWTMiddleware(c *gin.Context) {
	ctx := c.Request.Context()
	tokenHeader := c.GetHeader("Authorization")

	if tokenHeader == "" || !strings.HasPrefix(tokenHeader, "Bearer ") {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization token is missing or invalid"})
		c.Abort()
		return
	}

	tokenString := strings.TrimPrefix(tokenHeader, "Bearer ")

	claims, err := m.validateToken(ctx, tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		c.Abort()
		return
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "token subject is missing"})
		c.Abort()
		return
	}

	c.Set("User-ID", sub)
	c.Next()
}

func (m *Middleware) validateToken(ctx context.Context, tokenString string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	t, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.jwtSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			m.logger.Error(ctx, "token expired", err)
			return nil, ErrExpiredToken
		}
		m.logger.Error(ctx, "failed to parse token", err)
		return nil, ErrParseJWTToken
	}
	if !t.Valid {
		return nil, ErrInvalidJWTToken
	}
	return claims, nil
}
