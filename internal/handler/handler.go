package handler

import (
	"encoding/json"
	"net/http"
	"strings"
)

// Error is the message and http status code to return
type Error struct {
	Message string
	Code    int
}

// InternalServerError is a convenience function for returning an internal server error
func InternalServerError() *Error {
	return &Error{
		Message: "Something went wrong",
		Code:    http.StatusInternalServerError,
	}
}

// BadRequest is a convenience function for returning a bad request error
func BadRequest(message string) *Error {
	return &Error{
		Message: message,
		Code:    http.StatusBadRequest,
	}
}

// NotFound is a convenience function for returning a not found error
func NotFound(message string) *Error {
	return &Error{
		Message: message,
		Code:    http.StatusNotFound,
	}
}

// Unauthorized is a convenience function for returning an unauthorized error
func Unauthorized(message string) *Error {
	return &Error{
		Message: message,
		Code:    http.StatusUnauthorized,
	}
}

// BadGateway is a convenience function for returning an error caused by the upstream API
func BadGateway(message string) *Error {
	return &Error{
		Message: message,
		Code:    http.StatusBadGateway,
	}
}

const jsonMediaType = "application/json"

// Handler wraps a http handler and deals with responding to errors
type Handler func(w http.ResponseWriter, r *http.Request) *Error

func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	err := h(w, r)
	if err == nil {
		return
	}

	w.Header().Set("Cache-Control", "private, no-cache, no-store, must-revalidate")

	if !strings.Contains(r.Header.Get("Accept"), jsonMediaType) {
		http.Error(w, err.Message, err.Code)
		return
	}

	var data = struct {
		Error string `json:"error"`
	}{err.Message}

	w.Header().Set("Content-Type", jsonMediaType)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(err.Code)
	json.NewEncoder(w).Encode(data)
}

// WriteJSON writes v as a JSON response with the given status code
func WriteJSON(w http.ResponseWriter, code int, v interface{}) error {
	w.Header().Set("Content-Type", jsonMediaType)
	w.Header().Set("Cache-Control", "private, no-cache, no-store, must-revalidate")
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(v)
}
