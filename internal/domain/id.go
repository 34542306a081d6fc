package domain

import "github.com/google/uuid"

// NewID returns a fresh entity id with a type prefix, e.g. "playlist-<uuid>".
func NewID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}
