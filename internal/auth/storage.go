package auth

import (
	"context"
	"errors"

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
	CreateUser(ctx context.Context, u User) (string, error)
	FindUserByUsername(ctx context.Context, username string) (*User, error)
	UsernameTaken(ctx context.Context, username string) (bool, error)
}

type PostgresStore struct {
	db DB
}

func NewPostgresStore(db DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func Migrate(ctx context.Context, db DB) error {
	_, err := db.Exec(ctx, `
        CREATE TABLE IF NOT EXISTS users(
            id TEXT PRIMARY KEY,
            username TEXT NOT NULL UNIQUE,
            password TEXT NOT NULL,
            fullname TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT now()
        )
    `)
	return err
}

func (s *PostgresStore) CreateUser(ctx context.Context, u User) (string, error) {
	var id string
	err := s.db.QueryRow(ctx, `
        INSERT INTO users(id, username, password, fullname)
        VALUES($1, $2, $3, $4)
        RETURNING id
    `, u.ID, u.Username, u.PasswordHash, u.Fullname).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return "", domain.Conflict("username already taken")
		}
		return "", err
	}
	return id, nil
}

func (s *PostgresStore) FindUserByUsername(ctx context.Context, username string) (*User, error) {
	var u User
	err := s.db.QueryRow(ctx, `
        SELECT id, username, password, fullname, created_at
        FROM users
        WHERE username = $1
    `, username).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Fullname, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.NotFound("user not found")
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *PostgresStore) UsernameTaken(ctx context.Context, username string) (bool, error) {
	var one int
	err := s.db.QueryRow(ctx, `SELECT 1 FROM users WHERE username = $1`, username).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
