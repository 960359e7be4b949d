package model

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes
const (
	CodePublisherNotFound = "PUBLISHER_NOT_FOUND"
	CodeInvalidName       = "INVALID_PUBLISHER_NAME"
	CodeListPublisher     = "LIST_PUBLISHER_ERROR"
	CodeGetPublisher      = "GET_PUBLISHER_ERROR"
	CodeCreatePublisher   = "CREATE_PUBLISHER_ERROR"
	CodeUpdatePublisher   = "UPDATE_PUBLISHER_ERROR"
	CodeDeletePublisher   = "DELETE_PUBLISHER_ERROR"
)

// PublisherError định nghĩa base error cho publisher domain
type PublisherError struct {
	Code    string // Error code duy nhất (VD: "PUBLISHER_NOT_FOUND")
	Message string // Human-readable message
	Err     error  // Underlying error
}

// Error implements error interface
func (e *PublisherError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap allows error wrapping compatibility
func (e *PublisherError) Unwrap() error {
	return e.Err
}

// ============================================
// ERROR FACTORY FUNCTIONS
// ============================================

// NewPublisherNotFound tạo error "publisher not found"
func NewPublisherNotFound() *PublisherError {
	return &PublisherError{
		Code:    CodePublisherNotFound,
		Message: "Publisher not found",
	}
}

// NewInvalidPublisherName wraps a failed record validation
func NewInvalidPublisherName(err error) *PublisherError {
	return &PublisherError{
		Code:    CodeInvalidName,
		Message: "Publisher name is invalid",
		Err:     err,
	}
}

func NewListPublisherError(err error) *PublisherError {
	return &PublisherError{
		Code:    CodeListPublisher,
		Message: "Failed to list publishers",
		Err:     err,
	}
}

func NewGetPublisherError(err error) *PublisherError {
	return &PublisherError{
		Code:    CodeGetPublisher,
		Message: "Failed to load publisher",
		Err:     err,
	}
}

func NewCreatePublisherError(err error) *PublisherError {
	return &PublisherError{
		Code:    CodeCreatePublisher,
		Message: "Failed to create publisher",
		Err:     err,
	}
}

func NewUpdatePublisherError(err error) *PublisherError {
	return &PublisherError{
		Code:    CodeUpdatePublisher,
		Message: "Failed to update publisher",
		Err:     err,
	}
}

func NewDeletePublisherError(err error) *PublisherError {
	return &PublisherError{
		Code:    CodeDeletePublisher,
		Message: "Failed to delete publisher",
		Err:     err,
	}
}

// ============================================
// ERROR CHECKING FUNCTIONS
// ============================================

// IsPublisherNotFound kiểm tra có phải "not found" error
func IsPublisherNotFound(err error) bool {
	return GetErrorCode(err) == CodePublisherNotFound
}

// IsInvalidPublisherName kiểm tra record validation error
func IsInvalidPublisherName(err error) bool {
	return GetErrorCode(err) == CodeInvalidName
}

// IsDomainError kiểm tra có phải PublisherError
func IsDomainError(err error) bool {
	var pubErr *PublisherError
	return errors.As(err, &pubErr)
}

// GetErrorCode lấy error code từ error
func GetErrorCode(err error) string {
	var pubErr *PublisherError
	if errors.As(err, &pubErr) {
		return pubErr.Code
	}
	return "UNKNOWN_ERROR"
}

// GetErrorMessage lấy error message từ error
func GetErrorMessage(err error) string {
	var pubErr *PublisherError
	if errors.As(err, &pubErr) {
		return pubErr.Message
	}
	return err.Error()
}

// MapErrorToHTTP chuyển error sang (status, message, code)
func MapErrorToHTTP(err error) (int, string, string) {
	if err == nil {
		return http.StatusOK, "Success", ""
	}

	switch GetErrorCode(err) {
	case CodePublisherNotFound:
		return http.StatusNotFound, GetErrorMessage(err), CodePublisherNotFound
	case CodeInvalidName:
		return http.StatusBadRequest, GetErrorMessage(err), GetErrorCode(err)
	case "UNKNOWN_ERROR":
		return http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR"
	default:
		// persistence failures
		return http.StatusInternalServerError, GetErrorMessage(err), GetErrorCode(err)
	}
}
