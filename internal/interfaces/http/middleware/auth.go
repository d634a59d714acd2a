package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"intern-hub.backend/internal/interfaces/http/response"
	"intern-hub.backend/pkg/jwt"
)

const (
	// AuthorizationHeader is the header key for authorization
	AuthorizationHeader = "Authorization"
	// BearerPrefix is the prefix for bearer tokens
	BearerPrefix = "Bearer "
	// AccessTokenCookie is the httpOnly cookie set on login
	AccessTokenCookie = "access_token"
	// AccountIDKey is the context key for the account ID
	AccountIDKey = "accountId"
	// AccountEmailKey is the context key for the account email
	AccountEmailKey = "accountEmail"
	// AccountRoleKey is the context key for the account role
	AccountRoleKey = "accountRole"
)

// AuthMiddleware authenticates via the access token cookie, with a
// Bearer header fallback for non-browser clients
func AuthMiddleware(jwtService *jwt.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			response.Fail(c, http.StatusUnauthorized, "Not authenticated", nil)
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			message := "Invalid token"
			if err == jwt.ErrExpiredToken {
				message = "Token has expired"
			}
			response.Fail(c, http.StatusUnauthorized, message, nil)
			c.Abort()
			return
		}

		c.Set(AccountIDKey, claims.AccountID)
		c.Set(AccountEmailKey, claims.Email)
		c.Set(AccountRoleKey, claims.Role)

		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(AccessTokenCookie); err == nil && cookie != "" {
		return cookie
	}
	authHeader := c.GetHeader(AuthorizationHeader)
	if strings.HasPrefix(authHeader, BearerPrefix) {
		return strings.TrimPrefix(authHeader, BearerPrefix)
	}
	return ""
}

// GetAccountID gets the account ID from context
func GetAccountID(c *gin.Context) (uuid.UUID, bool) {
	accountID, exists := c.Get(AccountIDKey)
	if !exists {
		return uuid.Nil, false
	}
	return accountID.(uuid.UUID), true
}

// GetAccountEmail gets the account email from context
func GetAccountEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get(AccountEmailKey)
	if !exists {
		return "", false
	}
	return email.(string), true
}

// GetAccountRole gets the account role from context
func GetAccountRole(c *gin.Context) (string, bool) {
	role, exists := c.Get(AccountRoleKey)
	if !exists {
		return "", false
	}
	return role.(string), true
}

// RequireRole aborts unless the authenticated account has one of the roles
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		accountRole, exists := GetAccountRole(c)
		if !exists {
			response.Fail(c, http.StatusUnauthorized, "Not authenticated", nil)
			c.Abort()
			return
		}

		for _, role := range roles {
			if accountRole == role {
				c.Next()
				return
			}
		}

		response.Fail(c, http.StatusForbidden, "Admin access required", nil)
		c.Abort()
	}
}

// RequireAdmin requires the ADMIN role
func RequireAdmin() gin.HandlerFunc {
	return RequireRole("ADMIN")
}
