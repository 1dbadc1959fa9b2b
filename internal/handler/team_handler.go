package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/tasfirul8269/frooxi-backend/internal/dto"
	"github.com/tasfirul8269/frooxi-backend/internal/middleware"
	"github.com/tasfirul8269/frooxi-backend/internal/response"
	"github.com/tasfirul8269/frooxi-backend/internal/service"
)

// TeamHandler exposes team member profiles: public reads, admin writes
type TeamHandler struct {
	team *service.TeamService
}

// NewTeamHandler creates a new TeamHandler
func NewTeamHandler(team *service.TeamService) *TeamHandler {
	return &TeamHandler{team: team}
}

// List handles GET /api/team. Admins see inactive members too.
func (h *TeamHandler) List(c *gin.Context) {
	user, _ := middleware.Principal(c)
	includeInactive := user != nil && user.IsAdmin

	members, err := h.team.List(c.Request.Context(), includeInactive)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, members)
}

// Get handles GET /api/team/:id
func (h *TeamHandler) Get(c *gin.Context) {
	m, err := h.team.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, m)
}

// Create handles POST /api/team (multipart)
func (h *TeamHandler) Create(c *gin.Context) {
	var req dto.CreateTeamMemberRequest
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

	m, err := h.team.Create(c.Request.Context(), &req, image)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Created(c, m)
}

// Update handles PATCH /api/team/:id (multipart)
func (h *TeamHandler) Update(c *gin.Context) {
	var req dto.UpdateTeamMemberRequest
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

	m, err := h.team.Update(c.Request.Context(), c.Param("id"), &req, image)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, m)
}

// Delete handles DELETE /api/team/:id
func (h *TeamHandler) Delete(c *gin.Context) {
	if err := h.team.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "Team member deleted"})
}
