package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"calmcompass/internal/screening"
	"calmcompass/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeServiceError maps service errors onto HTTP statuses. Contract
// violations are the caller's bug (400), not ours (500).
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, "check-in not found")
	case errors.Is(err, screening.ErrAnswerCount), errors.Is(err, service.ErrBadAnswer):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrCrisisActive):
		writeError(w, http.StatusForbidden, "not available right now")
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
