package playlist

import (
	"context"
	"log"

	"catalog-service/internal/domain"
)

type accessMode int

const (
	// accessOwner restricts the operation to the playlist owner.
	accessOwner accessMode = iota
	// accessOwnerOrCollaborator also admits principals holding a
	// collaboration grant.
	accessOwnerOrCollaborator
)

// authorize decides whether userID may act on the playlist under the given
// mode. A missing playlist is always NotFound, regardless of collaboration
// state. The ownership check runs first and short-circuits; only in the
// permissive mode does a non-owner get a second chance via the
// collaborator lookup. If that lookup itself fails the error is logged and
// the principal is still refused, so an outage shows up in logs without
// turning into a spurious server error for what is a permission question.
func authorize(ctx context.Context, store Store, playlistID, userID string, mode accessMode) error {
	p, err := store.GetPlaylistByID(ctx, playlistID)
	if err != nil {
		return err
	}

	if p.OwnerID == userID {
		return nil
	}

	if mode == accessOwner {
		return domain.Forbidden("only the playlist owner may do this")
	}

	collaborator, err := store.IsCollaborator(ctx, playlistID, userID)
	if err != nil {
		log.Printf("playlist: collaborator lookup for %s/%s: %v", playlistID, userID, err)
		return domain.Forbidden("you do not have access to this playlist")
	}
	if !collaborator {
		return domain.Forbidden("you do not have access to this playlist")
	}

	return nil
}
