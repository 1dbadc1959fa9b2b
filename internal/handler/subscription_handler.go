package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/tasfirul8269/frooxi-backend/internal/domain"
	"github.com/tasfirul8269/frooxi-backend/internal/dto"
	"github.com/tasfirul8269/frooxi-backend/internal/response"
	"github.com/tasfirul8269/frooxi-backend/internal/service"
)

// SubscriptionHandler exposes plan subscriptions: public signup, admin management
type SubscriptionHandler struct {
	subscriptions *service.SubscriptionService
}

// NewSubscriptionHandler creates a new SubscriptionHandler
func NewSubscriptionHandler(subscriptions *service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptions: subscriptions}
}

// Create handles POST /api/subscriptions
func (h *SubscriptionHandler) Create(c *gin.Context) {
	var req dto.CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	sub, err := h.subscriptions.Create(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Created(c, sub)
}

// List handles GET /api/subscriptions
func (h *SubscriptionHandler) List(c *gin.Context) {
	subs, err := h.subscriptions.List(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, subs)
}

// Get handles GET /api/subscriptions/:id
func (h *SubscriptionHandler) Get(c *gin.Context) {
	sub, err := h.subscriptions.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, sub)
}

// UpdateStatus handles PATCH /api/subscriptions/:id/status
func (h *SubscriptionHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateSubscriptionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	sub, err := h.subscriptions.UpdateStatus(c.Request.Context(), c.Param("id"), domain.SubscriptionStatus(req.Status))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, sub)
}

// Delete handles DELETE /api/subscriptions/:id
func (h *SubscriptionHandler) Delete(c *gin.Context) {
	if err := h.subscriptions.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "Subscription deleted"})
}
