package playlist

import "time"

const (
	actionAdd    = "add"
	actionDelete = "delete"
)

type Playlist struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	OwnerID string `json:"ownerId"`
}

// PlaylistSummary is a playlist as seen in a principal's listing, with the
// owner's username resolved.
type PlaylistSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

type PlaylistWithSongs struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Username string    `json:"username"`
	Songs    []SongRef `json:"songs"`
}

type SongRef struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Performer string `json:"performer"`
}

// Activity is one immutable audit entry for a playlist-song mutation.
type Activity struct {
	Username string    `json:"username"`
	Title    string    `json:"title"`
	Action   string    `json:"action"`
	Time     time.Time `json:"time"`
}
