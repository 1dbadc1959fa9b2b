package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/tasfirul8269/frooxi-backend/internal/domain"
	"github.com/tasfirul8269/frooxi-backend/internal/dto"
	"github.com/tasfirul8269/frooxi-backend/internal/response"
	"github.com/tasfirul8269/frooxi-backend/internal/service"
)

// ContactHandler exposes contact messages: public submit, admin triage
type ContactHandler struct {
	contacts *service.ContactService
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(contacts *service.ContactService) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

// Create handles POST /api/contacts
func (h *ContactHandler) Create(c *gin.Context) {
	var req dto.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	msg, err := h.contacts.Create(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Created(c, msg)
}

// List handles GET /api/contacts
func (h *ContactHandler) List(c *gin.Context) {
	msgs, err := h.contacts.List(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, msgs)
}

// Get handles GET /api/contacts/:id
func (h *ContactHandler) Get(c *gin.Context) {
	msg, err := h.contacts.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, msg)
}

// UpdateStatus handles PATCH /api/contacts/:id/status
func (h *ContactHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateContactStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	msg, err := h.contacts.UpdateStatus(c.Request.Context(), c.Param("id"), domain.ContactStatus(req.Status))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, msg)
}

// Delete handles DELETE /api/contacts/:id
func (h *ContactHandler) Delete(c *gin.Context) {
	if err := h.contacts.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "Contact message deleted"})
}
