package server

import (
	"chat-room/errors"
	"encoding/json"
	"log/slog"
	"net/http"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// errorWriter keeps infrastructure details in the logs, callers only see a generic failure.
func errorWriter(log *slog.Logger) func(w http.ResponseWriter, err error) {
	return func(w http.ResponseWriter, err error) {
		status, code := errors.MapToHTTPStatus(err)
		message := err.Error()
		if status == http.StatusInternalServerError {
			log.Error("Request failed", "error", err)
			message = messageFailure
		}
		writeJSON(w, status, ErrorResponse{Code: string(code), Message: message})
	}
}

func badRequest(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{Code: string(errors.CodeBadRequest), Message: err.Error()})
}
