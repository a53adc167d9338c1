// Package web contains HTTP helpers shared by the REST transport: JSON responders, body decoding and middleware.
package web

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

const contentTypeJSON = "application/json; charset=utf-8"

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse acknowledges a mutation that has no payload to return.
type MessageResponse struct {
	Message string `json:"message"`
}

// ValidationResponse maps a json field name to the rule it failed.
type ValidationResponse struct {
	ValidationErrors map[string]string `json:"validation_errors"`
}

// RespondJSON writes payload as JSON with the given status. A nil payload writes the status only.
func RespondJSON(w http.ResponseWriter, logger *slog.Logger, status int, payload any) {
	if payload == nil {
		w.WriteHeader(status)
		return
	}

	body, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Error encoding response to JSON", "error", err, "status", status)
		status = http.StatusInternalServerError
		body, _ = json.Marshal(ErrorResponse{Error: http.StatusText(status)})
	}
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		logger.Debug("Error writing response body", "error", err)
	}
}

func RespondError(w http.ResponseWriter, logger *slog.Logger, status int, message string) {
	RespondJSON(w, logger, status, ErrorResponse{Error: message})
}

func RespondMessage(w http.ResponseWriter, logger *slog.Logger, status int, message string) {
	RespondJSON(w, logger, status, MessageResponse{Message: message})
}

func RespondValidationErrors(w http.ResponseWriter, logger *slog.Logger, status int, fieldErrors map[string]string) {
	RespondJSON(w, logger, status, ValidationResponse{ValidationErrors: fieldErrors})
}
