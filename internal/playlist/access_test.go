package playlist

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"catalog-service/internal/domain"
)

func TestAuthorizeOwnerMode(t *testing.T) {
	ctx := context.Background()
	p := &Playlist{ID: "p1", Name: "mix", OwnerID: "u1"}

	t.Run("owner succeeds", func(t *testing.T) {
		store := new(MockStore)
		store.On("GetPlaylistByID", ctx, "p1").Return(p, nil)

		err := authorize(ctx, store, "p1", "u1", accessOwner)
		assert.NoError(t, err)
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		store := new(MockStore)
		store.On("GetPlaylistByID", ctx, "p1").Return(p, nil)

		err := authorize(ctx, store, "p1", "u2", accessOwner)
		assert.Equal(t, domain.KindForbidden, domain.KindOf(err))
		store.AssertNotCalled(t, "IsCollaborator")
	})

	t.Run("collaborator is still forbidden in owner mode", func(t *testing.T) {
		store := new(MockStore)
		store.On("GetPlaylistByID", ctx, "p1").Return(p, nil)

		err := authorize(ctx, store, "p1", "u2", accessOwner)
		assert.Equal(t, domain.KindForbidden, domain.KindOf(err))
	})
}

func TestAuthorizeOwnerOrCollaborator(t *testing.T) {
	ctx := context.Background()
	p := &Playlist{ID: "p1", Name: "mix", OwnerID: "u1"}

	t.Run("owner short-circuits the collaborator lookup", func(t *testing.T) {
		store := new(MockStore)
		store.On("GetPlaylistByID", ctx, "p1").Return(p, nil)

		err := authorize(ctx, store, "p1", "u1", accessOwnerOrCollaborator)
		assert.NoError(t, err)
		store.AssertNotCalled(t, "IsCollaborator")
	})

	t.Run("collaborator succeeds", func(t *testing.T) {
		store := new(MockStore)
		store.On("GetPlaylistByID", ctx, "p1").Return(p, nil)
		store.On("IsCollaborator", ctx, "p1", "u2").Return(true, nil)

		err := authorize(ctx, store, "p1", "u2", accessOwnerOrCollaborator)
		assert.NoError(t, err)
	})

	t.Run("revoked collaborator is forbidden", func(t *testing.T) {
		store := new(MockStore)
		store.On("GetPlaylistByID", ctx, "p1").Return(p, nil)
		store.On("IsCollaborator", ctx, "p1", "u2").Return(false, nil)

		err := authorize(ctx, store, "p1", "u2", accessOwnerOrCollaborator)
		assert.Equal(t, domain.KindForbidden, domain.KindOf(err))
	})

	t.Run("collaborator lookup failure is refused, not a server error", func(t *testing.T) {
		store := new(MockStore)
		store.On("GetPlaylistByID", ctx, "p1").Return(p, nil)
		store.On("IsCollaborator", ctx, "p1", "u2").Return(false, errors.New("connection reset"))

		err := authorize(ctx, store, "p1", "u2", accessOwnerOrCollaborator)
		assert.Equal(t, domain.KindForbidden, domain.KindOf(err))
	})
}

func TestAuthorizeMissingPlaylist(t *testing.T) {
	ctx := context.Background()

	// NotFound always wins, whatever the mode or collaboration state.
	for _, mode := range []accessMode{accessOwner, accessOwnerOrCollaborator} {
		store := new(MockStore)
		store.On("GetPlaylistByID", ctx, "nope").Return(nil, domain.NotFound("playlist not found"))

		err := authorize(ctx, store, "nope", "anyone", mode)
		assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
		store.AssertNotCalled(t, "IsCollaborator")
	}
}

func TestAuthorizeStoreFailure(t *testing.T) {
	ctx := context.Background()
	store := new(MockStore)
	store.On("GetPlaylistByID", ctx, "p1").Return(nil, errors.New("db down"))

	err := authorize(ctx, store, "p1", "u1", accessOwner)
	assert.Error(t, err)
	assert.Equal(t, domain.KindInternal, domain.KindOf(err))
}
