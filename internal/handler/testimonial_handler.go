package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/tasfirul8269/frooxi-backend/internal/dto"
	"github.com/tasfirul8269/frooxi-backend/internal/middleware"
	"github.com/tasfirul8269/frooxi-backend/internal/response"
	"github.com/tasfirul8269/frooxi-backend/internal/service"
)

// TestimonialHandler exposes testimonials: public reads, admin writes
type TestimonialHandler struct {
	testimonials *service.TestimonialService
}

// NewTestimonialHandler creates a new TestimonialHandler
func NewTestimonialHandler(testimonials *service.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{testimonials: testimonials}
}

// List handles GET /api/testimonials. Admins see inactive entries too.
func (h *TestimonialHandler) List(c *gin.Context) {
	user, _ := middleware.Principal(c)
	includeInactive := user != nil && user.IsAdmin

	items, err := h.testimonials.List(c.Request.Context(), includeInactive)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, items)
}

// Get handles GET /api/testimonials/:id
func (h *TestimonialHandler) Get(c *gin.Context) {
	t, err := h.testimonials.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, t)
}

// Create handles POST /api/testimonials (multipart)
func (h *TestimonialHandler) Create(c *gin.Context) {
	var req dto.CreateTestimonialRequest
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

	t, err := h.testimonials.Create(c.Request.Context(), &req, image)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Created(c, t)
}

// Update handles PATCH /api/testimonials/:id (multipart)
func (h *TestimonialHandler) Update(c *gin.Context) {
	var req dto.UpdateTestimonialRequest
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

	t, err := h.testimonials.Update(c.Request.Context(), c.Param("id"), &req, image)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, t)
}

// Delete handles DELETE /api/testimonials/:id
func (h *TestimonialHandler) Delete(c *gin.Context) {
	if err := h.testimonials.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "Testimonial deleted"})
}
