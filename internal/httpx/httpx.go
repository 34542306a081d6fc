package httpx

import (
	"encoding/json"
	"log"
	"net/http"

	"catalog-service/internal/domain"
)

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, map[string]string{"error": msg})
}

// WriteDomainError maps a domain error kind onto its HTTP status. Internal
// errors are logged with op for context and never leak their cause.
func WriteDomainError(w http.ResponseWriter, op string, err error) {
	switch domain.KindOf(err) {
	case domain.KindNotFound:
		WriteError(w, http.StatusNotFound, err.Error())
	case domain.KindForbidden:
		WriteError(w, http.StatusForbidden, err.Error())
	case domain.KindConflict:
		WriteError(w, http.StatusConflict, err.Error())
	case domain.KindInvalid:
		WriteError(w, http.StatusBadRequest, err.Error())
	case domain.KindUnauthorized:
		WriteError(w, http.StatusUnauthorized, err.Error())
	default:
		log.Printf("%s: %v", op, err)
		WriteError(w, http.StatusInternalServerError, "internal error")
	}
}
