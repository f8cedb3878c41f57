package response

import (
	"errors"
	"net/http"
	"time"

	"github.com/Krittamet-rrt/walletapi/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ErrorResponse is the standard error body. Detail carries the user-facing
// message ("Item not found", "Insufficient balance", ...).
type ErrorResponse struct {
	ErrorCode string `json:"error_code"`
	Detail    string `json:"detail"`
	RequestID string `json:"request_id"`
	Timestamp string `json:"timestamp"`
}

// OK sends a 200 response with the payload as the body.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created sends a 201 response with the payload as the body.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Error resolves err to an error body. Typed ledger errors carry their own
// status and code; anything else is reported as an opaque 500.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		fail(c, appErr.HTTPStatus, appErr.Code, appErr.Message)
		return
	}
	fail(c, http.StatusInternalServerError, "SYS_002", "Internal server error")
}

func fail(c *gin.Context, status int, code, detail string) {
	c.JSON(status, ErrorResponse{
		ErrorCode: code,
		Detail:    detail,
		RequestID: requestID(c),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// requestID reads the correlation ID set by the middleware, generating one
// for responses produced before that middleware runs.
func requestID(c *gin.Context) string {
	if id, exists := c.Get("request_id"); exists {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return uuid.New().String()
}
