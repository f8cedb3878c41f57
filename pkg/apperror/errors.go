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

// ---- Purchase / Ledger (LEDGER) ----

func ErrItemNotFound() *AppError {
	return New("LEDGER_001", "Item not found", http.StatusNotFound)
}

func ErrWalletNotFound() *AppError {
	return New("LEDGER_002", "Wallet not found", http.StatusNotFound)
}

func ErrInsufficientBalance() *AppError {
	return New("LEDGER_003", "Insufficient balance", http.StatusBadRequest)
}

// ErrMerchantIntegrity reports an item whose owning merchant row is missing.
// This is a referential-integrity fault in the store, not a user error.
func ErrMerchantIntegrity(err error) *AppError {
	return Wrap("LEDGER_004", "Merchant not found", http.StatusInternalServerError, err)
}

// ErrPurchaseConflict reports a commit rejected because of a concurrent
// conflicting purchase. The whole operation may be retried with fresh reads.
func ErrPurchaseConflict(err error) *AppError {
	return Wrap("LEDGER_005", "Concurrent purchase conflict, retry the operation", http.StatusConflict, err)
}

func ErrMerchantNotFound() *AppError {
	return New("LEDGER_006", "Merchant not found", http.StatusNotFound)
}

func ErrTransactionNotFound() *AppError {
	return New("LEDGER_007", "Transaction not found", http.StatusNotFound)
}

func ErrUserNotFound() *AppError {
	return New("LEDGER_008", "Not found this user", http.StatusNotFound)
}

// ---- Authentication (AUTH) ----

func ErrInvalidCredentials() *AppError {
	return New("AUTH_001", "Invalid credentials", http.StatusUnauthorized)
}

func ErrUsernameExists() *AppError {
	return New("AUTH_002", "This username is exists.", http.StatusConflict)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_003", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrIncorrectPassword() *AppError {
	return New("AUTH_004", "Incorrect password", http.StatusUnauthorized)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// ErrStoreUnavailable wraps a store-level failure that is fatal to the request.
func ErrStoreUnavailable(err error) *AppError {
	return Wrap("SYS_001", "Ledger store unavailable", http.StatusServiceUnavailable, err)
}

// InternalError wraps an internal error as a SYS_002 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_002", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a request-validation error.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}
