package files

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"careerportal/internal/models"
)

const usersSchema = `
CREATE TABLE IF NOT EXISTS ` + UsersKey + ` (
	email         TEXT PRIMARY KEY,
	password_hash TEXT NOT NULL,
	first_name    TEXT NOT NULL,
	last_name     TEXT NOT NULL,
	registered_at INTEGER NOT NULL
)`

// SQLUserStore relies on the primary key for uniqueness, so concurrent
// writers (even across processes) cannot produce duplicates.
type SQLUserStore struct {
	db *sql.DB
}

// NewSQLUserStore opens path with the pure-Go sqlite driver. ":memory:" is
// accepted for tests.
func NewSQLUserStore(path string) (*SQLUserStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.Exec(usersSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &SQLUserStore{db: db}, nil
}

func (s *SQLUserStore) List(ctx context.Context) ([]models.RegisteredUser, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT email, password_hash, first_name, last_name, registered_at FROM `+UsersKey+` ORDER BY registered_at, email`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.RegisteredUser
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

func (s *SQLUserStore) Insert(ctx context.Context, u models.RegisteredUser) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO `+UsersKey+` (email, password_hash, first_name, last_name, registered_at)
		 VALUES (?, ?, ?, ?, ?) ON CONFLICT(email) DO NOTHING`,
		u.Email, u.PasswordHash, u.FirstName, u.LastName, u.RegisteredAt.UnixNano())
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (s *SQLUserStore) Find(ctx context.Context, email string) (*models.RegisteredUser, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT email, password_hash, first_name, last_name, registered_at FROM `+UsersKey+` WHERE email = ?`, email)
	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return u, err
}

func (s *SQLUserStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM `+UsersKey)
	return err
}

func (s *SQLUserStore) Close() error { return s.db.Close() }

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(sc scanner) (*models.RegisteredUser, error) {
	var (
		u  models.RegisteredUser
		at int64
	)
	if err := sc.Scan(&u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &at); err != nil {
		return nil, err
	}
	// registered_at holds unix nanoseconds so it sorts numerically.
	u.RegisteredAt = time.Unix(0, at).UTC()
	return &u, nil
}
