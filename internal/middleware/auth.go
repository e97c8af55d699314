package middleware

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"atelie-backend/internal/config"
	"atelie-backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const UserIDKey = "user_id"

// AuthMiddleware checks Supabase access tokens. Without a JWT secret
// configured every request passes through unauthenticated.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	if !cfg.AuthEnabled() {
		return func(c *gin.Context) { c.Next() }
	}
	secret := []byte(cfg.SupabaseJWTSecret)

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c, "missing authorization header", "")
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			unauthorized(c, "invalid authorization header format", "")
			return
		}

		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			unauthorized(c, "empty token", "")
			return
		}

		// Some clients URL-encode the token
		if decoded, err := url.QueryUnescape(tokenString); err == nil {
			tokenString = decoded
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return secret, nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		if err != nil {
			var message string
			switch {
			case errors.Is(err, jwt.ErrTokenSignatureInvalid):
				message = "token signature is invalid - check JWT secret"
			case errors.Is(err, jwt.ErrTokenExpired):
				message = "token has expired"
			case errors.Is(err, jwt.ErrTokenMalformed):
				message = "token is malformed - ensure you're using a valid Supabase JWT token"
			default:
				message = err.Error()
			}
			unauthorized(c, "invalid token", message)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || !token.Valid {
			unauthorized(c, "invalid token claims", "")
			return
		}

		sub, err := claims.GetSubject()
		if err != nil || sub == "" {
			unauthorized(c, "missing user id in token", "")
			return
		}

		c.Set(UserIDKey, sub)
		c.Next()
	}
}

func unauthorized(c *gin.Context, reason, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{Error: reason, Message: message})
}
