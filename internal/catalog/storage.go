package catalog

import (
	"context"
	"errors"
	"strconv"

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
	InsertAlbum(ctx context.Context, a Album) (string, error)
	GetAlbumByID(ctx context.Context, id string) (*Album, error)
	ListAlbums(ctx context.Context) ([]Album, error)
	UpdateAlbum(ctx context.Context, id, name string, year int) error
	DeleteAlbum(ctx context.Context, id string) error
	SetAlbumCover(ctx context.Context, id, coverURL string) error

	InsertSong(ctx context.Context, s Song) (string, error)
	GetSongByID(ctx context.Context, id string) (*Song, error)
	ListSongs(ctx context.Context, title, performer string) ([]SongSummary, error)
	UpdateSong(ctx context.Context, s Song) error
	DeleteSong(ctx context.Context, id string) error

	HasAlbumLike(ctx context.Context, albumID, userID string) (bool, error)
	InsertAlbumLike(ctx context.Context, id, albumID, userID string) (string, error)
	DeleteAlbumLike(ctx context.Context, albumID, userID string) (bool, error)
	CountAlbumLikes(ctx context.Context, albumID string) (int, error)
}

type PostgresStore struct {
	db DB
}

func NewPostgresStore(db DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func Migrate(ctx context.Context, db DB) error {
	if _, err := db.Exec(ctx, `
        CREATE TABLE IF NOT EXISTS albums(
            id TEXT PRIMARY KEY,
            name TEXT NOT NULL,
            year INT NOT NULL,
            cover_url TEXT
        )
    `); err != nil {
		return err
	}

	if _, err := db.Exec(ctx, `
        CREATE TABLE IF NOT EXISTS songs(
            id TEXT PRIMARY KEY,
            title TEXT NOT NULL,
            genre TEXT NOT NULL,
            performer TEXT NOT NULL,
            duration INT NOT NULL,
            year INT NOT NULL,
            album_id TEXT REFERENCES albums(id) ON DELETE SET NULL
        )
    `); err != nil {
		return err
	}

	_, err := db.Exec(ctx, `
        CREATE TABLE IF NOT EXISTS album_likes(
            id TEXT PRIMARY KEY,
            album_id TEXT NOT NULL REFERENCES albums(id) ON DELETE CASCADE,
            user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
            UNIQUE(album_id, user_id)
        )
    `)
	return err
}

func (s *PostgresStore) InsertAlbum(ctx context.Context, a Album) (string, error) {
	var id string
	err := s.db.QueryRow(ctx, `
        INSERT INTO albums(id, name, year)
        VALUES($1, $2, $3)
        RETURNING id
    `, a.ID, a.Name, a.Year).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *PostgresStore) GetAlbumByID(ctx context.Context, id string) (*Album, error) {
	var a Album
	err := s.db.QueryRow(ctx, `
        SELECT id, name, year, cover_url
        FROM albums
        WHERE id = $1
    `, id).Scan(&a.ID, &a.Name, &a.Year, &a.CoverURL)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.NotFound("album not found")
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(ctx, `
        SELECT id, title, performer
        FROM songs
        WHERE album_id = $1
    `, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	a.Songs = []SongSummary{}
	for rows.Next() {
		var song SongSummary
		if err := rows.Scan(&song.ID, &song.Title, &song.Performer); err != nil {
			return nil, err
		}
		a.Songs = append(a.Songs, song)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &a, nil
}

func (s *PostgresStore) ListAlbums(ctx context.Context) ([]Album, error) {
	rows, err := s.db.Query(ctx, `SELECT id, name, year, cover_url FROM albums`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	albums := []Album{}
	for rows.Next() {
		var a Album
		if err := rows.Scan(&a.ID, &a.Name, &a.Year, &a.CoverURL); err != nil {
			return nil, err
		}
		albums = append(albums, a)
	}
	return albums, rows.Err()
}

func (s *PostgresStore) UpdateAlbum(ctx context.Context, id, name string, year int) error {
	tag, err := s.db.Exec(ctx, `
        UPDATE albums SET name = $1, year = $2 WHERE id = $3
    `, name, year, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound("album not found")
	}
	return nil
}

func (s *PostgresStore) DeleteAlbum(ctx context.Context, id string) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM albums WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound("album not found")
	}
	return nil
}

func (s *PostgresStore) SetAlbumCover(ctx context.Context, id, coverURL string) error {
	tag, err := s.db.Exec(ctx, `
        UPDATE albums SET cover_url = $1 WHERE id = $2
    `, coverURL, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound("album not found")
	}
	return nil
}

func (s *PostgresStore) InsertSong(ctx context.Context, song Song) (string, error) {
	var id string
	err := s.db.QueryRow(ctx, `
        INSERT INTO songs(id, title, genre, performer, duration, year, album_id)
        VALUES($1, $2, $3, $4, $5, $6, $7)
        RETURNING id
    `, song.ID, song.Title, song.Genre, song.Performer, song.Duration, song.Year, song.AlbumID).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *PostgresStore) GetSongByID(ctx context.Context, id string) (*Song, error) {
	var song Song
	err := s.db.QueryRow(ctx, `
        SELECT id, title, genre, performer, duration, year, album_id
        FROM songs
        WHERE id = $1
    `, id).Scan(&song.ID, &song.Title, &song.Genre, &song.Performer, &song.Duration, &song.Year, &song.AlbumID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.NotFound("song not found")
	}
	if err != nil {
		return nil, err
	}
	return &song, nil
}

func (s *PostgresStore) ListSongs(ctx context.Context, title, performer string) ([]SongSummary, error) {
	query := `SELECT id, title, performer FROM songs WHERE 1=1`
	args := []any{}
	if title != "" {
		args = append(args, title)
		query += ` AND title ILIKE '%' || $` + strconv.Itoa(len(args)) + ` || '%'`
	}
	if performer != "" {
		args = append(args, performer)
		query += ` AND performer ILIKE '%' || $` + strconv.Itoa(len(args)) + ` || '%'`
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	songs := []SongSummary{}
	for rows.Next() {
		var song SongSummary
		if err := rows.Scan(&song.ID, &song.Title, &song.Performer); err != nil {
			return nil, err
		}
		songs = append(songs, song)
	}
	return songs, rows.Err()
}

func (s *PostgresStore) UpdateSong(ctx context.Context, song Song) error {
	tag, err := s.db.Exec(ctx, `
        UPDATE songs
        SET title = $1, genre = $2, performer = $3, duration = $4, year = $5, album_id = $6
        WHERE id = $7
    `, song.Title, song.Genre, song.Performer, song.Duration, song.Year, song.AlbumID, song.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound("song not found")
	}
	return nil
}

func (s *PostgresStore) DeleteSong(ctx context.Context, id string) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM songs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound("song not found")
	}
	return nil
}

func (s *PostgresStore) HasAlbumLike(ctx context.Context, albumID, userID string) (bool, error) {
	var one int
	err := s.db.QueryRow(ctx, `
        SELECT 1 FROM album_likes WHERE album_id = $1 AND user_id = $2
    `, albumID, userID).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *PostgresStore) InsertAlbumLike(ctx context.Context, id, albumID, userID string) (string, error) {
	var out string
	err := s.db.QueryRow(ctx, `
        INSERT INTO album_likes(id, album_id, user_id)
        VALUES($1, $2, $3)
        RETURNING id
    `, id, albumID, userID).Scan(&out)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return "", domain.Conflict("album already liked")
		}
		return "", err
	}
	return out, nil
}

func (s *PostgresStore) DeleteAlbumLike(ctx context.Context, albumID, userID string) (bool, error) {
	tag, err := s.db.Exec(ctx, `
        DELETE FROM album_likes WHERE album_id = $1 AND user_id = $2
    `, albumID, userID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (s *PostgresStore) CountAlbumLikes(ctx context.Context, albumID string) (int, error) {
	var count int
	err := s.db.QueryRow(ctx, `
        SELECT COUNT(id) FROM album_likes WHERE album_id = $1
    `, albumID).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
