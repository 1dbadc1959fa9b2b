package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tasfirul8269/frooxi-backend/internal/dto"
	"github.com/tasfirul8269/frooxi-backend/internal/middleware"
	"github.com/tasfirul8269/frooxi-backend/internal/response"
	"github.com/tasfirul8269/frooxi-backend/internal/service"
)

// AuthHandler handles registration, login and the current user's account
type AuthHandler struct {
	auth          *service.AuthService
	tokenTTL      time.Duration
	secureCookies bool
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(auth *service.AuthService, tokenTTL time.Duration, secureCookies bool) *AuthHandler {
	return &AuthHandler{auth: auth, tokenTTL: tokenTTL, secureCookies: secureCookies}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if ok, msg := req.ValidateEmail(); !ok {
		response.BadRequest(c, msg)
		return
	}
	if ok, msg := req.ValidatePassword(); !ok {
		response.BadRequest(c, msg)
		return
	}

	result, err := h.auth.Register(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	h.setTokenCookie(c, result.Token)
	response.Created(c, result)
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	result, err := h.auth.Login(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	h.setTokenCookie(c, result.Token)
	response.Success(c, result)
}

// Logout handles POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.clearTokenCookie(c)
	response.Success(c, gin.H{"message": "Logged out"})
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := middleware.Principal(c)
	if !ok {
		response.Unauthorized(c, "AUTH_REQUIRED", "Authentication required")
		return
	}
	response.Success(c, service.ToUserResponse(user))
}

// UpdateProfile handles PATCH /api/auth/me
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	user, ok := middleware.Principal(c)
	if !ok {
		response.Unauthorized(c, "AUTH_REQUIRED", "Authentication required")
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	updated, err := h.auth.UpdateProfile(c.Request.Context(), user.ID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, service.ToUserResponse(updated))
}

// ChangePassword handles POST /api/auth/change-password.
// Existing sessions are invalidated; a fresh token is returned.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	user, ok := middleware.Principal(c)
	if !ok {
		response.Unauthorized(c, "AUTH_REQUIRED", "Authentication required")
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.auth.ChangePassword(c.Request.Context(), user.ID, &req); err != nil {
		handleServiceError(c, err)
		return
	}

	h.clearTokenCookie(c)
	response.Success(c, gin.H{"message": "Password changed, please log in again"})
}

func (h *AuthHandler) setTokenCookie(c *gin.Context, token string) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     middleware.TokenCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.tokenTTL.Seconds()),
		Secure:   h.secureCookies,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}

func (h *AuthHandler) clearTokenCookie(c *gin.Context) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     middleware.TokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Secure:   h.secureCookies,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}
