package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/tasfirul8269/frooxi-backend/internal/dto"
	"github.com/tasfirul8269/frooxi-backend/internal/middleware"
	"github.com/tasfirul8269/frooxi-backend/internal/response"
	"github.com/tasfirul8269/frooxi-backend/internal/service"
)

// PortfolioHandler exposes portfolio items: public reads, admin writes
type PortfolioHandler struct {
	portfolio *service.PortfolioService
}

// NewPortfolioHandler creates a new PortfolioHandler
func NewPortfolioHandler(portfolio *service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{portfolio: portfolio}
}

// List handles GET /api/portfolio. Admins see inactive items too.
func (h *PortfolioHandler) List(c *gin.Context) {
	user, _ := middleware.Principal(c)
	includeInactive := user != nil && user.IsAdmin

	items, err := h.portfolio.List(c.Request.Context(), includeInactive)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, items)
}

// Get handles GET /api/portfolio/:id
func (h *PortfolioHandler) Get(c *gin.Context) {
	item, err := h.portfolio.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, item)
}

// Create handles POST /api/portfolio (multipart)
func (h *PortfolioHandler) Create(c *gin.Context) {
	var req dto.CreatePortfolioRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "Invalid form data: "+err.Error())
		return
	}

	image, file, err := imageFromForm(c, "image")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if file != nil {
		defer file.Close()
	}
	if image == nil {
		response.BadRequest(c, "An image is required")
		return
	}

	item, err := h.portfolio.Create(c.Request.Context(), &req, image)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Created(c, item)
}

// Update handles PATCH /api/portfolio/:id (multipart)
func (h *PortfolioHandler) Update(c *gin.Context) {
	var req dto.UpdatePortfolioRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "Invalid form data: "+err.Error())
		return
	}

	image, file, err := imageFromForm(c, "image")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if file != nil {
		defer file.Close()
	}

	item, err := h.portfolio.Update(c.Request.Context(), c.Param("id"), &req, image)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, item)
}

// Delete handles DELETE /api/portfolio/:id
func (h *PortfolioHandler) Delete(c *gin.Context) {
	if err := h.portfolio.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "Portfolio item deleted"})
}
