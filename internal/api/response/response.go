package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/yeonsu-dev/mentor-match/internal/domain"
)

// Response represents a standard API response
type Response struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
	Error   any  `json:"error,omitempty"`
}

// JSON sends a JSON response
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := Response{
		Success: status >= 200 && status < 300,
		Data:    data,
	}

	json.NewEncoder(w).Encode(resp)
}

// Error sends an error response
func Error(w http.ResponseWriter, status int, message any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := Response{
		Success: false,
		Error:   message,
	}

	json.NewEncoder(w).Encode(resp)
}

// Created sends a 201 Created response with data
func Created(w http.ResponseWriter, data any) {
	JSON(w, http.StatusCreated, data)
}

// OK sends a 200 OK response with data
func OK(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, data)
}

// BadRequest sends a 400 Bad Request response
func BadRequest(w http.ResponseWriter, message any) {
	Error(w, http.StatusBadRequest, message)
}

// Unauthorized sends a 401 Unauthorized response
func Unauthorized(w http.ResponseWriter, message any) {
	Error(w, http.StatusUnauthorized, message)
}

// Forbidden sends a 403 Forbidden response
func Forbidden(w http.ResponseWriter, message any) {
	Error(w, http.StatusForbidden, message)
}

// NotFound sends a 404 Not Found response
func NotFound(w http.ResponseWriter, message any) {
	Error(w, http.StatusNotFound, message)
}

// InternalError sends a 500 Internal Server Error response
func InternalError(w http.ResponseWriter, message any) {
	Error(w, http.StatusInternalServerError, message)
}

// DomainError maps a service error to its status code. Unknown errors are
// logged and surfaced as an opaque 500.
func DomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrInvalidRole),
		errors.Is(err, domain.ErrMentorNotFound),
		errors.Is(err, domain.ErrSkillsRequired),
		errors.Is(err, domain.ErrDuplicateRequest),
		errors.Is(err, domain.ErrRequestResolved):
		BadRequest(w, err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, domain.ErrRequestNotFound),
		errors.Is(err, domain.ErrImageNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		NotFound(w, err.Error())
	default:
		log.Error().Err(err).Msg("Unexpected error")
		InternalError(w, "internal server error")
	}
}
