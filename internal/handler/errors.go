package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tasfirul8269/frooxi-backend/internal/response"
	"github.com/tasfirul8269/frooxi-backend/internal/service"
)

// handleServiceError maps service sentinel errors to HTTP responses.
// Unknown errors become a 500 with details redacted in production.
func handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		response.NotFound(c, "Resource not found")
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, "User not found")
	case errors.Is(err, service.ErrEmailTaken):
		response.Error(c, http.StatusConflict, "EMAIL_TAKEN", "This email is already registered", "")
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Unauthorized(c, "INVALID_CREDENTIALS", "Invalid email or password")
	case errors.Is(err, service.ErrAccountDisabled):
		response.Unauthorized(c, "ACCOUNT_DISABLED", "This account has been deactivated")
	case errors.Is(err, service.ErrWrongPassword):
		response.Error(c, http.StatusBadRequest, "WRONG_PASSWORD", "Current password is incorrect", "")
	case errors.Is(err, service.ErrInvalidDateFormat):
		response.Error(c, http.StatusBadRequest, "INVALID_DATE_FORMAT", "Invalid date format, expected YYYY-MM-DD", "")
	case errors.Is(err, service.ErrInvalidTransactionType):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Transaction type must be income or expense", "")
	case errors.Is(err, service.ErrInvalidCategory):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown category for transaction type", "")
	case errors.Is(err, service.ErrInvalidAmount):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Amount must be greater than zero", "")
	default:
		response.InternalError(c, err)
	}
}
