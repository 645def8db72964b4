// Package response defines consistent HTTP response structures.
// All API responses use the { ok, data } / { ok, error } envelope.
package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"worldofml/src/core/domain"
)

// Success represents a successful response with data.
type Success struct {
	OK   bool `json:"ok"`
	Data any  `json:"data"`
}

// Error represents an error response.
type Error struct {
	OK    bool        `json:"ok"`
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	// Message is a human-readable error description
	Message string `json:"message"`

	// Hint suggests how to fix the request
	Hint string `json:"hint,omitempty"`

	// RequestID is the request ID for debugging
	RequestID string `json:"request_id,omitempty"`
}

// OK sends a 200 response with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Success{OK: true, Data: data})
}

// Created sends a 201 response with the created resource.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Success{OK: true, Data: data})
}

// Fail sends an error response with the given status.
func Fail(c *gin.Context, status int, message, hint, requestID string) {
	c.JSON(status, Error{
		Error: ErrorDetail{
			Message:   message,
			Hint:      hint,
			RequestID: requestID,
		},
	})
}

// BadRequest sends a 400 response.
func BadRequest(c *gin.Context, message, hint, requestID string) {
	Fail(c, http.StatusBadRequest, message, hint, requestID)
}

// NotFound sends a 404 response.
func NotFound(c *gin.Context, message, hint, requestID string) {
	Fail(c, http.StatusNotFound, message, hint, requestID)
}

// Forbidden sends a 403 response.
func Forbidden(c *gin.Context, message, hint, requestID string) {
	Fail(c, http.StatusForbidden, message, hint, requestID)
}

// InternalError sends a 500 response.
func InternalError(c *gin.Context, message, hint, requestID string) {
	if message == "" {
		message = "An unexpected error occurred"
	}
	Fail(c, http.StatusInternalServerError, message, hint, requestID)
}

// FromDomainError converts a domain error to an appropriate HTTP response,
// attaching the route's hint. This centralizes the status mapping.
func FromDomainError(c *gin.Context, err error, hint, requestID string) {
	message := err.Error()
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) && domainErr.Message != "" {
		message = domainErr.Message
	}

	switch {
	case domain.IsUnknownLesson(err):
		BadRequest(c, message, hint, requestID)
	case domain.IsValidationError(err):
		BadRequest(c, message, hint, requestID)
	case domain.IsNotFound(err):
		NotFound(c, message, hint, requestID)
	case domain.IsNotEligible(err):
		Forbidden(c, message, hint, requestID)
	case domain.IsStorageError(err):
		InternalError(c, message, hint, requestID)
	default:
		InternalError(c, "", hint, requestID)
	}
}
