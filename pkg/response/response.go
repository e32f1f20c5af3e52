// Package response renders the API's JSON envelopes. Every handler
// reply, success or error, goes through here so clients always see the
// same shape and a request id they can quote back.
package response

import (
	"errors"
	"net/http"
	"time"

	"exchange-ledger/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SuccessResponse wraps handler payloads.
type SuccessResponse struct {
	Data      interface{} `json:"data"`
	RequestID string      `json:"request_id"`
	Timestamp string      `json:"timestamp"`
}

// ErrorResponse carries a machine-readable code plus a human message.
type ErrorResponse struct {
	ErrorCode string `json:"error_code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
	Timestamp string `json:"timestamp"`
}

// OK renders data with status 200.
func OK(c *gin.Context, data interface{}) {
	success(c, http.StatusOK, data)
}

// Created renders data with status 201.
func Created(c *gin.Context, data interface{}) {
	success(c, http.StatusCreated, data)
}

func success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, SuccessResponse{
		Data:      data,
		RequestID: requestID(c),
		Timestamp: stamp(),
	})
}

// Error renders err as an ErrorResponse. An *apperror.AppError anywhere
// in the chain picks the status and code; anything else is reported as
// an opaque 500 so internals never leak to clients.
func Error(c *gin.Context, err error) {
	code, status, msg := "SYS_000", http.StatusInternalServerError, "Internal server error"

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		code, status, msg = appErr.Code, appErr.HTTPStatus, appErr.Message
	}

	c.JSON(status, ErrorResponse{
		ErrorCode: code,
		Message:   msg,
		RequestID: requestID(c),
		Timestamp: stamp(),
	})
}

func stamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// requestID reads the id from the gin context, minting one when the
// request carries none.
func requestID(c *gin.Context) string {
	if id := c.GetString("request_id"); id != "" {
		return id
	}
	return uuid.New().String()
}
