package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"catalog-service/internal/domain"
)

const likesKeyPrefix = "album_likes:"

type likesPayload struct {
	Likes int `json:"likes"`
}

func likesKey(albumID string) string {
	return likesKeyPrefix + albumID
}

// getAlbumLikes serves the like counter cache-aside: cache hit wins, a miss
// recomputes from the store and repopulates the cache. A cache failure is
// logged and handled like a miss so a broken cache never fails the read.
// Zero likes is a valid count, not an error.
func getAlbumLikes(ctx context.Context, store Store, cache Cache, albumID string) (LikeCount, error) {
	raw, err := cache.Get(ctx, likesKey(albumID))
	if err == nil {
		var payload likesPayload
		if jsonErr := json.Unmarshal([]byte(raw), &payload); jsonErr == nil {
			return LikeCount{Count: payload.Likes, FromCache: true}, nil
		}
		log.Printf("catalog: corrupt likes cache entry for %s, recomputing", albumID)
	} else if !errors.Is(err, ErrCacheMiss) {
		log.Printf("catalog: likes cache read: %v", err)
	}

	count, err := store.CountAlbumLikes(ctx, albumID)
	if err != nil {
		return LikeCount{}, err
	}

	data, _ := json.Marshal(likesPayload{Likes: count})
	if err := cache.Set(ctx, likesKey(albumID), string(data)); err != nil {
		log.Printf("catalog: likes cache write: %v", err)
	}

	return LikeCount{Count: count, FromCache: false}, nil
}

// addAlbumLike inserts the (album, user) like and invalidates the cached
// counter. A duplicate like is a Conflict, checked up front and backed by
// the unique constraint for racing inserts.
func addAlbumLike(ctx context.Context, store Store, cache Cache, albumID, userID string) (string, error) {
	liked, err := store.HasAlbumLike(ctx, albumID, userID)
	if err != nil {
		return "", err
	}
	if liked {
		return "", domain.Conflict("album already liked")
	}

	id, err := store.InsertAlbumLike(ctx, domain.NewID("album_likes"), albumID, userID)
	if err != nil {
		return "", err
	}

	invalidateLikes(ctx, cache, albumID)
	return id, nil
}

// removeAlbumLike deletes the like row. The cache entry is invalidated even
// when nothing was deleted, so a concurrent add/remove interleaving cannot
// leave a stale counter behind.
func removeAlbumLike(ctx context.Context, store Store, cache Cache, albumID, userID string) error {
	deleted, err := store.DeleteAlbumLike(ctx, albumID, userID)

	invalidateLikes(ctx, cache, albumID)

	if err != nil {
		return err
	}
	if !deleted {
		return domain.NotFound("like not found")
	}
	return nil
}

func invalidateLikes(ctx context.Context, cache Cache, albumID string) {
	if err := cache.Del(ctx, likesKey(albumID)); err != nil {
		log.Printf("catalog: likes cache invalidate: %v", err)
	}
}
