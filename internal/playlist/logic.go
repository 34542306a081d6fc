package playlist

import (
	"context"

	"catalog-service/internal/domain"
)

// addSong authorizes the principal, verifies the song exists, inserts the
// playlist entry and then audits it. The sequence is strict: nothing is
// written if authorization or the song check fails, and no audit entry
// exists without a committed entry.
func addSong(ctx context.Context, store Store, playlistID, userID, songID string) (string, error) {
	if err := authorize(ctx, store, playlistID, userID, accessOwnerOrCollaborator); err != nil {
		return "", err
	}

	exists, err := store.SongExists(ctx, songID)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", domain.NotFound("song not found")
	}

	id, err := store.InsertPlaylistSong(ctx, domain.NewID("playlist_song"), playlistID, songID)
	if err != nil {
		return "", err
	}

	auditBestEffort(ctx, store, playlistID, songID, userID, actionAdd)
	return id, nil
}

// removeSong mirrors addSong for deletion. A delete that matches no row is
// NotFound and produces no audit entry.
func removeSong(ctx context.Context, store Store, playlistID, userID, songID string) error {
	if err := authorize(ctx, store, playlistID, userID, accessOwnerOrCollaborator); err != nil {
		return err
	}

	deleted, err := store.DeletePlaylistSong(ctx, playlistID, songID)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.NotFound("song not found in playlist")
	}

	auditBestEffort(ctx, store, playlistID, songID, userID, actionDelete)
	return nil
}

// listSongs returns the playlist with its songs for any principal with
// read access.
func listSongs(ctx context.Context, store Store, playlistID, userID string) (*PlaylistWithSongs, error) {
	if err := authorize(ctx, store, playlistID, userID, accessOwnerOrCollaborator); err != nil {
		return nil, err
	}
	return store.GetPlaylistSongs(ctx, playlistID)
}

// listActivities returns the full audit history for the playlist, oldest
// first.
func listActivities(ctx context.Context, store Store, playlistID, userID string) ([]Activity, error) {
	if err := authorize(ctx, store, playlistID, userID, accessOwnerOrCollaborator); err != nil {
		return nil, err
	}
	return store.ListActivities(ctx, playlistID)
}

// addCollaboration grants a user access to the playlist. Owner only; the
// grantee must exist.
func addCollaboration(ctx context.Context, store Store, playlistID, ownerID, userID string) (string, error) {
	if err := authorize(ctx, store, playlistID, ownerID, accessOwner); err != nil {
		return "", err
	}

	exists, err := store.UserExists(ctx, userID)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", domain.NotFound("user not found")
	}

	return store.InsertCollaboration(ctx, domain.NewID("playlist_collaboration"), playlistID, userID)
}

// removeCollaboration revokes a grant. Owner only.
func removeCollaboration(ctx context.Context, store Store, playlistID, ownerID, userID string) error {
	if err := authorize(ctx, store, playlistID, ownerID, accessOwner); err != nil {
		return err
	}

	deleted, err := store.DeleteCollaboration(ctx, playlistID, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.NotFound("collaboration not found")
	}
	return nil
}
