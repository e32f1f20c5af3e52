package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Resource lookup (LDG) ----

func ErrNotFound(entity string) *AppError {
	return New("LDG_001", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrUnauthorized(message string) *AppError {
	return New("LDG_002", message, http.StatusForbidden)
}

func ErrConflict(message string) *AppError {
	return New("LDG_003", message, http.StatusConflict)
}

// ---- Settlement business rules (SET) ----

func ErrInvalidArgument(message string) *AppError {
	return New("SET_001", message, http.StatusBadRequest)
}

func ErrInsufficientBalance() *AppError {
	return New("SET_002", "Insufficient wallet balance", http.StatusPaymentRequired)
}

func ErrInsufficientHolding() *AppError {
	return New("SET_003", "Insufficient asset holding", http.StatusBadRequest)
}

func ErrWrongWalletType(expected string) *AppError {
	return New("SET_004", fmt.Sprintf("%s wallet required", expected), http.StatusBadRequest)
}

func ErrHoldingNotFound() *AppError {
	return New("SET_005", "Holding not found", http.StatusBadRequest)
}

func ErrAlreadyClosed() *AppError {
	return New("SET_006", "Order already closed", http.StatusBadRequest)
}

func ErrInvalidState(message string) *AppError {
	return New("SET_007", message, http.StatusBadRequest)
}

// ---- Authentication (AUTH) ----

func ErrInvalidCredentials() *AppError {
	return New("AUTH_001", "Invalid credentials", http.StatusUnauthorized)
}

func ErrUsernameExists() *AppError {
	return New("AUTH_002", "Username already exists", http.StatusConflict)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_003", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Rate limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps a storage/transaction failure as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a SET_001-style validation error.
func Validation(message string) *AppError {
	return New("SET_001", message, http.StatusBadRequest)
}
