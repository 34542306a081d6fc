package playlist

import (
	"context"
	"log"
	"time"

	"catalog-service/internal/domain"
)

// recordActivity appends one audit entry for a committed playlist-song
// mutation. It must only be called after the mutation is durable.
func recordActivity(ctx context.Context, store Store, playlistID, songID, userID, action string) (string, error) {
	return store.InsertActivity(ctx, domain.NewID("playlist_activity"), playlistID, songID, userID, action, time.Now())
}

// auditBestEffort records the activity and logs a failure instead of
// propagating it. The mutation already committed; the audit log is
// advisory and a missing entry must not fail or roll back the operation.
func auditBestEffort(ctx context.Context, store Store, playlistID, songID, userID, action string) {
	if _, err := recordActivity(ctx, store, playlistID, songID, userID, action); err != nil {
		log.Printf("playlist: record %s activity for %s: %v", action, playlistID, err)
	}
}
