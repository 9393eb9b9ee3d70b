// Package jsonutil provides JSON response helpers shared by all API features.
package jsonutil

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the JSON error envelope returned by every failing endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// MessageResponse is the envelope for endpoints that report a confirmation only.
type MessageResponse struct {
	Message string `json:"message"`
}

// Error codes used across the API.
const (
	CodeValidation   = "VALIDATION"
	CodeNotFound     = "NOT_FOUND"
	CodeDuplicate    = "DUPLICATE"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeServerError  = "SERVER_ERROR"
)

// Respond writes v as JSON with the given status code.
func Respond(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Message writes a {message} confirmation with the given status code.
func Message(w http.ResponseWriter, status int, msg string) {
	Respond(w, status, MessageResponse{Message: msg})
}

// Error writes a JSON error envelope with the given status code.
func Error(w http.ResponseWriter, msg, code string, status int) {
	Respond(w, status, ErrorResponse{Error: msg, Code: code})
}

// ServerError writes a generic 500 response. The underlying cause is expected
// to be logged by the caller, never echoed to the client.
func ServerError(w http.ResponseWriter) {
	Error(w, "Server error", CodeServerError, http.StatusInternalServerError)
}
