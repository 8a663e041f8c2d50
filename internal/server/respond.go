package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/tehkencana/pos/internal/printer"
)

// errorResponse is the JSON shape of every error reply.
type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// writeError maps the printer error taxonomy onto HTTP statuses; anything
// unrecognized is an internal error.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, printer.ErrNoDeviceSelected):
		status = http.StatusConflict
	case errors.Is(err, printer.ErrPermissionDenied):
		status = http.StatusForbidden
	case errors.Is(err, printer.ErrAdapterUnavailable):
		status = http.StatusServiceUnavailable
	case errors.Is(err, printer.ErrConnectionFailed):
		status = http.StatusBadGateway
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeBadRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
}
