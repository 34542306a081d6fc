package export

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"catalog-service/internal/domain"
)

// ExportedPlaylist is the document shape mailed to the requester.
type ExportedPlaylist struct {
	Playlist PlaylistDoc `json:"playlist"`
}

type PlaylistDoc struct {
	ID    string    `json:"id"`
	Name  string    `json:"name"`
	Songs []SongDoc `json:"songs"`
}

type SongDoc struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Performer string `json:"performer"`
}

// DB is the subset of pgxpool.Pool the worker uses.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Store interface {
	GetPlaylistExport(ctx context.Context, playlistID string) (*ExportedPlaylist, error)
}

type PostgresStore struct {
	db DB
}

func NewPostgresStore(db DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) GetPlaylistExport(ctx context.Context, playlistID string) (*ExportedPlaylist, error) {
	var doc PlaylistDoc
	err := s.db.QueryRow(ctx, `
        SELECT id, name FROM playlists WHERE id = $1
    `, playlistID).Scan(&doc.ID, &doc.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.NotFound("playlist not found")
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(ctx, `
        SELECT s.id, s.title, s.performer
        FROM playlist_songs ps
        JOIN songs s ON ps.song_id = s.id
        WHERE ps.playlist_id = $1
    `, playlistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	doc.Songs = []SongDoc{}
	for rows.Next() {
		var song SongDoc
		if err := rows.Scan(&song.ID, &song.Title, &song.Performer); err != nil {
			return nil, err
		}
		doc.Songs = append(doc.Songs, song)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &ExportedPlaylist{Playlist: doc}, nil
}
