package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tasfirul8269/frooxi-backend/internal/domain"
	"github.com/tasfirul8269/frooxi-backend/internal/repository"
	"github.com/tasfirul8269/frooxi-backend/internal/response"
	"github.com/tasfirul8269/frooxi-backend/internal/service"
)

const (
	principalKey = "auth.principal"

	// TokenCookie is the fallback cookie for browser clients that
	// cannot set an Authorization header
	TokenCookie = "token"
)

// Principal returns the authenticated user attached to the request,
// or false if the request never passed RequireAuth.
func Principal(c *gin.Context) (*domain.User, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*domain.User)
	return user, ok
}

// SetPrincipal attaches user as the request's authenticated principal
func SetPrincipal(c *gin.Context, user *domain.User) {
	c.Set(principalKey, user)
}

// RequireAuth resolves the session token to a user and attaches it to the
// request context. The chain is terminated with 401 on any failure.
func RequireAuth(tokens *service.TokenService, users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			response.AbortError(c, http.StatusUnauthorized, "NO_TOKEN", "You are not logged in")
			return
		}

		claims, err := tokens.Verify(tokenString)
		if err != nil {
			if errors.Is(err, service.ErrTokenExpired) {
				response.AbortError(c, http.StatusUnauthorized, "TOKEN_EXPIRED", "Your session has expired, please log in again")
				return
			}
			response.AbortError(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid authentication token")
			return
		}

		user, err := users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			response.AbortError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to authenticate request")
			return
		}
		if user == nil {
			response.AbortError(c, http.StatusUnauthorized, "USER_NOT_FOUND", "The user belonging to this token no longer exists")
			return
		}

		if user.ChangedPasswordAfter(claims.IssuedAt) {
			response.AbortError(c, http.StatusUnauthorized, "PASSWORD_CHANGED", "Password was changed recently, please log in again")
			return
		}

		if !user.IsActive {
			response.AbortError(c, http.StatusUnauthorized, "ACCOUNT_DISABLED", "This account has been deactivated")
			return
		}

		SetPrincipal(c, user)
		c.Next()
	}
}

// OptionalAuth attaches the principal when a valid token is present but
// never terminates the chain. Used on public routes whose responses
// widen for admins.
func OptionalAuth(tokens *service.TokenService, users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			c.Next()
			return
		}

		claims, err := tokens.Verify(tokenString)
		if err != nil {
			c.Next()
			return
		}

		user, err := users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil || user == nil || !user.IsActive || user.ChangedPasswordAfter(claims.IssuedAt) {
			c.Next()
			return
		}

		SetPrincipal(c, user)
		c.Next()
	}
}

// RequireAdmin allows only admin users through. It fails closed: a request
// that never passed RequireAuth is rejected with 401.
func RequireAdmin() gin.HandlerFunc {
	return RequireRoles(domain.RoleAdmin)
}

// RequireRoles allows only users whose role is in the given set
func RequireRoles(roles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := Principal(c)
		if !ok {
			response.AbortError(c, http.StatusUnauthorized, "AUTH_REQUIRED", "Authentication required")
			return
		}

		for _, role := range roles {
			if user.Role == role || (role == domain.RoleAdmin && user.IsAdmin) {
				c.Next()
				return
			}
		}

		response.AbortError(c, http.StatusForbidden, "UNAUTHORIZED_ROLE", "You do not have permission to perform this action")
	}
}

func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	if cookie, err := c.Cookie(TokenCookie); err == nil && cookie != "" {
		return cookie
	}
	return ""
}
