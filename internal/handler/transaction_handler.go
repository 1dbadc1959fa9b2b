package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tasfirul8269/frooxi-backend/internal/dto"
	"github.com/tasfirul8269/frooxi-backend/internal/middleware"
	"github.com/tasfirul8269/frooxi-backend/internal/response"
	"github.com/tasfirul8269/frooxi-backend/internal/service"
)

// TransactionHandler exposes the current user's financial records
type TransactionHandler struct {
	transactions *service.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(transactions *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactions: transactions}
}

// Create handles POST /api/transactions
func (h *TransactionHandler) Create(c *gin.Context) {
	user, ok := middleware.Principal(c)
	if !ok {
		response.Unauthorized(c, "AUTH_REQUIRED", "Authentication required")
		return
	}

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	tx, err := h.transactions.Create(c.Request.Context(), user.ID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Created(c, tx)
}

// List handles GET /api/transactions
func (h *TransactionHandler) List(c *gin.Context) {
	user, ok := middleware.Principal(c)
	if !ok {
		response.Unauthorized(c, "AUTH_REQUIRED", "Authentication required")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	page, limit = dto.NormalizePage(page, limit)
	filter := &dto.TransactionFilter{
		Type:      c.Query("type"),
		Category:  c.Query("category"),
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
		Page:      page,
		Limit:     limit,
	}

	txs, total, err := h.transactions.List(c.Request.Context(), user.ID, filter)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	response.SuccessWithMeta(c, txs, response.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	})
}

// Summary handles GET /api/transactions/summary
func (h *TransactionHandler) Summary(c *gin.Context) {
	user, ok := middleware.Principal(c)
	if !ok {
		response.Unauthorized(c, "AUTH_REQUIRED", "Authentication required")
		return
	}

	summary, err := h.transactions.Summary(c.Request.Context(), user.ID, c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, summary)
}

// Get handles GET /api/transactions/:id
func (h *TransactionHandler) Get(c *gin.Context) {
	user, ok := middleware.Principal(c)
	if !ok {
		response.Unauthorized(c, "AUTH_REQUIRED", "Authentication required")
		return
	}

	tx, err := h.transactions.Get(c.Request.Context(), c.Param("id"), user.ID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, tx)
}

// Update handles PATCH /api/transactions/:id
func (h *TransactionHandler) Update(c *gin.Context) {
	user, ok := middleware.Principal(c)
	if !ok {
		response.Unauthorized(c, "AUTH_REQUIRED", "Authentication required")
		return
	}

	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	tx, err := h.transactions.Update(c.Request.Context(), c.Param("id"), user.ID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, tx)
}

// Delete handles DELETE /api/transactions/:id
func (h *TransactionHandler) Delete(c *gin.Context) {
	user, ok := middleware.Principal(c)
	if !ok {
		response.Unauthorized(c, "AUTH_REQUIRED", "Authentication required")
		return
	}

	if err := h.transactions.Delete(c.Request.Context(), c.Param("id"), user.ID); err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "Transaction deleted"})
}
