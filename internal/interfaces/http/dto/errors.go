package dto

import "net/http"

// Error code constants organized by category

// General error codes
const (
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "ERR_INTERNAL"
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "ERR_NOT_FOUND"
	// ErrCodeInvalidInput is used for invalid input data
	ErrCodeInvalidInput = "ERR_INVALID_INPUT"
	// ErrCodeBusinessRule is used for business rule violations
	ErrCodeBusinessRule = "ERR_BUSINESS_RULE"
)

// errorCodeHTTPStatus maps domain error codes to HTTP status codes.
// Codes not listed fall through to 500 so unknown failures never leak
// as client errors.
var errorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:     http.StatusInternalServerError,
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeNotFound:     http.StatusNotFound,
	ErrCodeInvalidInput: http.StatusBadRequest,
	ErrCodeBusinessRule: http.StatusUnprocessableEntity,

	// Domain codes raised by constructors and services
	"NOT_FOUND":       http.StatusNotFound,
	"INVALID_INPUT":   http.StatusBadRequest,
	"INVALID_STATE":   http.StatusUnprocessableEntity,
	"INVALID_NAME":    http.StatusBadRequest,
	"INVALID_PRICE":   http.StatusBadRequest,
	"EMPTY_ORDER":     http.StatusBadRequest,
	"INVALID_TOTAL":   http.StatusBadRequest,
	"EMPTY_MESSAGE":   http.StatusBadRequest,
	"EMPTY_EMAIL":     http.StatusBadRequest,
	"UNKNOWN_PRODUCT": http.StatusUnprocessableEntity,
	"PRICE_MISMATCH":  http.StatusUnprocessableEntity,
	"TOTAL_MISMATCH":  http.StatusUnprocessableEntity,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Returns 500 Internal Server Error if the error code is not found.
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
