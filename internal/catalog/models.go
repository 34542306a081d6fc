package catalog

type Album struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Year     int           `json:"year"`
	CoverURL *string       `json:"coverUrl"`
	Songs    []SongSummary `json:"songs,omitempty"`
}

type Song struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Genre     string  `json:"genre"`
	Performer string  `json:"performer"`
	Duration  int     `json:"duration"`
	Year      int     `json:"year"`
	AlbumID   *string `json:"albumId"`
}

type SongSummary struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Performer string `json:"performer"`
}

// LikeCount is the result of a like-count read; FromCache tells the handler
// which source served it.
type LikeCount struct {
	Count     int
	FromCache bool
}
