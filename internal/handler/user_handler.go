package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tasfirul8269/frooxi-backend/internal/dto"
	"github.com/tasfirul8269/frooxi-backend/internal/response"
	"github.com/tasfirul8269/frooxi-backend/internal/service"
)

// UserHandler exposes admin user management
type UserHandler struct {
	auth *service.AuthService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(auth *service.AuthService) *UserHandler {
	return &UserHandler{auth: auth}
}

// List handles GET /api/users
func (h *UserHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	page, limit = dto.NormalizePage(page, limit)

	users, total, err := h.auth.ListUsers(c.Request.Context(), page, limit)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, service.ToUserResponse(u))
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	response.SuccessWithMeta(c, out, response.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	})
}

// Get handles GET /api/users/:id
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.auth.GetProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, service.ToUserResponse(user))
}

// SetActive handles PATCH /api/users/:id/active
func (h *UserHandler) SetActive(c *gin.Context) {
	var req struct {
		IsActive *bool `json:"is_active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	user, err := h.auth.SetUserActive(c.Request.Context(), c.Param("id"), *req.IsActive)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, service.ToUserResponse(user))
}

// Delete handles DELETE /api/users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.auth.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "User deleted"})
}
