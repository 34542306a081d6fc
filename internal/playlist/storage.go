package playlist

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"catalog-service/internal/domain"
)

// DB is the subset of pgxpool.Pool we use. It can be replaced by a mock in
// tests.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Store interface {
	InsertPlaylist(ctx context.Context, id, name, ownerID string) (string, error)
	GetPlaylistByID(ctx context.Context, id string) (*Playlist, error)
	ListPlaylists(ctx context.Context, userID string) ([]PlaylistSummary, error)
	RenamePlaylist(ctx context.Context, id, name string) error
	DeletePlaylist(ctx context.Context, id string) error

	IsCollaborator(ctx context.Context, playlistID, userID string) (bool, error)
	UserExists(ctx context.Context, userID string) (bool, error)
	InsertCollaboration(ctx context.Context, id, playlistID, userID string) (string, error)
	DeleteCollaboration(ctx context.Context, playlistID, userID string) (bool, error)

	SongExists(ctx context.Context, songID string) (bool, error)
	InsertPlaylistSong(ctx context.Context, id, playlistID, songID string) (string, error)
	DeletePlaylistSong(ctx context.Context, playlistID, songID string) (bool, error)
	GetPlaylistSongs(ctx context.Context, playlistID string) (*PlaylistWithSongs, error)

	InsertActivity(ctx context.Context, id, playlistID, songID, userID, action string, at time.Time) (string, error)
	ListActivities(ctx context.Context, playlistID string) ([]Activity, error)
}

type PostgresStore struct {
	db DB
}

func NewPostgresStore(db DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func Migrate(ctx context.Context, db DB) error {
	if _, err := db.Exec(ctx, `
        CREATE TABLE IF NOT EXISTS playlists(
            id TEXT PRIMARY KEY,
            name TEXT NOT NULL,
            owner_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE
        )
    `); err != nil {
		return err
	}

	if _, err := db.Exec(ctx, `
        CREATE TABLE IF NOT EXISTS playlist_collaborations(
            id TEXT PRIMARY KEY,
            playlist_id TEXT NOT NULL REFERENCES playlists(id) ON DELETE CASCADE,
            user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
            UNIQUE(playlist_id, user_id)
        )
    `); err != nil {
		return err
	}

	if _, err := db.Exec(ctx, `
        CREATE TABLE IF NOT EXISTS playlist_songs(
            id TEXT PRIMARY KEY,
            playlist_id TEXT NOT NULL REFERENCES playlists(id) ON DELETE CASCADE,
            song_id TEXT NOT NULL REFERENCES songs(id) ON DELETE CASCADE
        )
    `); err != nil {
		return err
	}

	// seq gives activities a total order when timestamps collide.
	_, err := db.Exec(ctx, `
        CREATE TABLE IF NOT EXISTS playlist_activities(
            id TEXT PRIMARY KEY,
            seq BIGSERIAL,
            playlist_id TEXT NOT NULL REFERENCES playlists(id) ON DELETE CASCADE,
            song_id TEXT NOT NULL REFERENCES songs(id) ON DELETE CASCADE,
            user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
            action TEXT NOT NULL,
            time TIMESTAMPTZ NOT NULL
        )
    `)
	return err
}

func (s *PostgresStore) InsertPlaylist(ctx context.Context, id, name, ownerID string) (string, error) {
	var out string
	err := s.db.QueryRow(ctx, `
        INSERT INTO playlists(id, name, owner_id)
        VALUES($1, $2, $3)
        RETURNING id
    `, id, name, ownerID).Scan(&out)
	if err != nil {
		return "", err
	}
	return out, nil
}

func (s *PostgresStore) GetPlaylistByID(ctx context.Context, id string) (*Playlist, error) {
	var p Playlist
	err := s.db.QueryRow(ctx, `
        SELECT id, name, owner_id FROM playlists WHERE id = $1
    `, id).Scan(&p.ID, &p.Name, &p.OwnerID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.NotFound("playlist not found")
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *PostgresStore) ListPlaylists(ctx context.Context, userID string) ([]PlaylistSummary, error) {
	rows, err := s.db.Query(ctx, `
        SELECT DISTINCT p.id, p.name, u.username
        FROM playlists p
        JOIN users u ON p.owner_id = u.id
        LEFT JOIN playlist_collaborations pc ON p.id = pc.playlist_id
        WHERE p.owner_id = $1 OR pc.user_id = $1
    `, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	playlists := []PlaylistSummary{}
	for rows.Next() {
		var p PlaylistSummary
		if err := rows.Scan(&p.ID, &p.Name, &p.Username); err != nil {
			return nil, err
		}
		playlists = append(playlists, p)
	}
	return playlists, rows.Err()
}

func (s *PostgresStore) RenamePlaylist(ctx context.Context, id, name string) error {
	tag, err := s.db.Exec(ctx, `UPDATE playlists SET name = $1 WHERE id = $2`, name, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound("playlist not found")
	}
	return nil
}

func (s *PostgresStore) DeletePlaylist(ctx context.Context, id string) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM playlists WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound("playlist not found")
	}
	return nil
}

func (s *PostgresStore) IsCollaborator(ctx context.Context, playlistID, userID string) (bool, error) {
	var one int
	err := s.db.QueryRow(ctx, `
        SELECT 1 FROM playlist_collaborations WHERE playlist_id = $1 AND user_id = $2
    `, playlistID, userID).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *PostgresStore) UserExists(ctx context.Context, userID string) (bool, error) {
	var one int
	err := s.db.QueryRow(ctx, `SELECT 1 FROM users WHERE id = $1`, userID).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *PostgresStore) InsertCollaboration(ctx context.Context, id, playlistID, userID string) (string, error) {
	var out string
	err := s.db.QueryRow(ctx, `
        INSERT INTO playlist_collaborations(id, playlist_id, user_id)
        VALUES($1, $2, $3)
        RETURNING id
    `, id, playlistID, userID).Scan(&out)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return "", domain.Conflict("user is already a collaborator")
		}
		return "", err
	}
	return out, nil
}

func (s *PostgresStore) DeleteCollaboration(ctx context.Context, playlistID, userID string) (bool, error) {
	tag, err := s.db.Exec(ctx, `
        DELETE FROM playlist_collaborations WHERE playlist_id = $1 AND user_id = $2
    `, playlistID, userID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (s *PostgresStore) SongExists(ctx context.Context, songID string) (bool, error) {
	var one int
	err := s.db.QueryRow(ctx, `SELECT 1 FROM songs WHERE id = $1`, songID).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *PostgresStore) InsertPlaylistSong(ctx context.Context, id, playlistID, songID string) (string, error) {
	var out string
	err := s.db.QueryRow(ctx, `
        INSERT INTO playlist_songs(id, playlist_id, song_id)
        VALUES($1, $2, $3)
        RETURNING id
    `, id, playlistID, songID).Scan(&out)
	if err != nil {
		return "", err
	}
	return out, nil
}

func (s *PostgresStore) DeletePlaylistSong(ctx context.Context, playlistID, songID string) (bool, error) {
	tag, err := s.db.Exec(ctx, `
        DELETE FROM playlist_songs WHERE playlist_id = $1 AND song_id = $2
    `, playlistID, songID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (s *PostgresStore) GetPlaylistSongs(ctx context.Context, playlistID string) (*PlaylistWithSongs, error) {
	var p PlaylistWithSongs
	err := s.db.QueryRow(ctx, `
        SELECT p.id, p.name, u.username
        FROM playlists p
        JOIN users u ON p.owner_id = u.id
        WHERE p.id = $1
    `, playlistID).Scan(&p.ID, &p.Name, &p.Username)
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

	p.Songs = []SongRef{}
	for rows.Next() {
		var song SongRef
		if err := rows.Scan(&song.ID, &song.Title, &song.Performer); err != nil {
			return nil, err
		}
		p.Songs = append(p.Songs, song)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &p, nil
}

func (s *PostgresStore) InsertActivity(ctx context.Context, id, playlistID, songID, userID, action string, at time.Time) (string, error) {
	var out string
	err := s.db.QueryRow(ctx, `
        INSERT INTO playlist_activities(id, playlist_id, song_id, user_id, action, time)
        VALUES($1, $2, $3, $4, $5, $6)
        RETURNING id
    `, id, playlistID, songID, userID, action, at).Scan(&out)
	if err != nil {
		return "", err
	}
	return out, nil
}

func (s *PostgresStore) ListActivities(ctx context.Context, playlistID string) ([]Activity, error) {
	rows, err := s.db.Query(ctx, `
        SELECT u.username, s.title, pa.action, pa.time
        FROM playlist_activities pa
        JOIN users u ON pa.user_id = u.id
        JOIN songs s ON pa.song_id = s.id
        WHERE pa.playlist_id = $1
        ORDER BY pa.time ASC, pa.seq ASC
    `, playlistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	activities := []Activity{}
	for rows.Next() {
		var a Activity
		if err := rows.Scan(&a.Username, &a.Title, &a.Action, &a.Time); err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}
