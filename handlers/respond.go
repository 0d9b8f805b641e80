package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"gorm.io/gorm"
)

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError sends the JSON error body every failing endpoint uses.
// Storage errors get logged by the caller; the body stays generic.
func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// isNotFound distinguishes a missing record from a storage failure so
// lookups can answer 404 instead of folding everything into one status.
func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
