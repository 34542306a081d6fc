package playlist

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"catalog-service/internal/auth"
	"catalog-service/internal/export"
	"catalog-service/internal/httpx"
)

// handleExportPlaylist is the gate in front of the queue: owner-only
// authorization, then a fire-and-forget job submission. Delivery
// guarantees belong to the queue, not to this handler.
func (s *Server) handleExportPlaylist(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.PrincipalID(r)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "missing principal")
		return
	}
	playlistID := chi.URLParam(r, "id")

	var body struct {
		TargetEmail string `json:"targetEmail"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	body.TargetEmail = strings.TrimSpace(body.TargetEmail)
	if body.TargetEmail == "" || !strings.Contains(body.TargetEmail, "@") {
		httpx.WriteError(w, http.StatusBadRequest, "targetEmail must be a valid email address")
		return
	}

	if err := authorize(r.Context(), s.store, playlistID, userID, accessOwner); err != nil {
		httpx.WriteDomainError(w, "playlist: export", err)
		return
	}

	payload, err := json.Marshal(export.Job{
		PlaylistID:  playlistID,
		UserID:      userID,
		TargetEmail: body.TargetEmail,
	})
	if err != nil {
		httpx.WriteDomainError(w, "playlist: export", err)
		return
	}

	if err := s.publisher.Publish(r.Context(), export.QueueName, payload); err != nil {
		httpx.WriteDomainError(w, "playlist: export publish", err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, map[string]string{"message": "export request queued"})
}
