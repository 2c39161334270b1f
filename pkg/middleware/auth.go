package middleware

import (
	"net/http"
	"strings"

	"reel-bites/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middlewares. Handlers read actor
// identity from these values only, never from ambient state.
const (
	ContextActorID   = "actor_id"
	ContextActorType = "actor_type"
)

const sessionCookieName = "token"

// extractToken prefers the session cookie and falls back to a Bearer
// header so API clients without a cookie jar can still authenticate.
func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(sessionCookieName); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

// AuthMiddleware requires a valid session of the given actor kind
// (jwt.ActorUser or jwt.ActorFoodPartner).
func AuthMiddleware(jwtService *jwt.Service, actor string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired session"})
			c.Abort()
			return
		}

		if claims.Actor != actor {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Wrong account type for this action"})
			c.Abort()
			return
		}

		c.Set(ContextActorID, claims.ActorID)
		c.Set(ContextActorType, claims.Actor)
		c.Next()
	}
}

// OptionalAuthMiddleware annotates the request with actor identity when
// a valid session is present but never rejects the request.
func OptionalAuthMiddleware(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			c.Next()
			return
		}

		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			c.Next()
			return
		}

		c.Set(ContextActorID, claims.ActorID)
		c.Set(ContextActorType, claims.Actor)
		c.Next()
	}
}
