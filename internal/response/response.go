package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the shared JSON envelope for all endpoints
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorData  `json:"error,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// ErrorData carries a stable machine-readable code plus a human message
type ErrorData struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// Pagination is the meta block for paginated listings
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// exposeDetails controls whether internal error details are serialized.
// Set once at startup; production keeps details redacted.
var exposeDetails = true

// SetExposeDetails configures whether error details are included in responses
func SetExposeDetails(expose bool) {
	exposeDetails = expose
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    data,
	})
}

func SuccessWithMeta(c *gin.Context, data, meta interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    data,
		Meta:    meta,
	})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Success: true,
		Data:    data,
	})
}

func Error(c *gin.Context, status int, code, message string, details string) {
	if !exposeDetails {
		details = ""
	}
	c.JSON(status, Response{
		Success: false,
		Error: &ErrorData{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// AbortError terminates the middleware chain with an error response
func AbortError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, Response{
		Success: false,
		Error: &ErrorData{
			Code:    code,
			Message: message,
		},
	})
}

func InternalError(c *gin.Context, err error) {
	Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal Server Error", err.Error())
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, "BAD_REQUEST", message, "")
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, "NOT_FOUND", message, "")
}

func Unauthorized(c *gin.Context, code, message string) {
	Error(c, http.StatusUnauthorized, code, message, "")
}

func Forbidden(c *gin.Context, code, message string) {
	Error(c, http.StatusForbidden, code, message, "")
}
