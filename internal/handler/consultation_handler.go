package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/tasfirul8269/frooxi-backend/internal/domain"
	"github.com/tasfirul8269/frooxi-backend/internal/dto"
	"github.com/tasfirul8269/frooxi-backend/internal/response"
	"github.com/tasfirul8269/frooxi-backend/internal/service"
)

// ConsultationHandler exposes consultation requests: public submit, admin triage
type ConsultationHandler struct {
	consultations *service.ConsultationService
}

// NewConsultationHandler creates a new ConsultationHandler
func NewConsultationHandler(consultations *service.ConsultationService) *ConsultationHandler {
	return &ConsultationHandler{consultations: consultations}
}

// Create handles POST /api/consultations
func (h *ConsultationHandler) Create(c *gin.Context) {
	var req dto.CreateConsultationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	consultation, err := h.consultations.Create(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Created(c, consultation)
}

// List handles GET /api/consultations
func (h *ConsultationHandler) List(c *gin.Context) {
	consultations, err := h.consultations.List(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, consultations)
}

// Get handles GET /api/consultations/:id
func (h *ConsultationHandler) Get(c *gin.Context) {
	consultation, err := h.consultations.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, consultation)
}

// UpdateStatus handles PATCH /api/consultations/:id/status
func (h *ConsultationHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateConsultationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	consultation, err := h.consultations.UpdateStatus(c.Request.Context(), c.Param("id"), domain.ConsultationStatus(req.Status))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, consultation)
}

// Delete handles DELETE /api/consultations/:id
func (h *ConsultationHandler) Delete(c *gin.Context) {
	if err := h.consultations.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "Consultation deleted"})
}
