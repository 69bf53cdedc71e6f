package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/adrianliechti/joborder/pkg/session"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ session.Store = &Store{}

// Store keeps sessions in PostgreSQL so several instances can share them.
type Store struct {
	pool  *pgxpool.Pool
	table string
}

type Option func(*Store)

func WithTable(table string) Option {
	return func(s *Store) {
		s.table = table
	}
}

func New(ctx context.Context, url string, options ...Option) (*Store, error) {
	pool, err := pgxpool.New(ctx, url)

	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	s := &Store{
		pool:  pool,
		table: "sessions",
	}

	for _, option := range options {
		option(s)
	}

	if err := s.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return s, nil
}

func (s *Store) ensureSchema(ctx context.Context) error {
	table := pgx.Identifier{s.table}.Sanitize()

	stmts := []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			key TEXT PRIMARY KEY,
			value BYTEA NOT NULL,
			expires_at TIMESTAMPTZ NOT NULL
		)`, table),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s ON %s (expires_at)`, pgx.Identifier{s.table + "_expires_idx"}.Sanitize(), table),
	}

	for _, stmt := range stmts {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	return nil
}

func (s *Store) Put(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = session.DefaultTTL
	}

	query := fmt.Sprintf(`INSERT INTO %s (key, value, expires_at) VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, expires_at = EXCLUDED.expires_at`, pgx.Identifier{s.table}.Sanitize())

	_, err := s.pool.Exec(ctx, query, key, value, time.Now().Add(ttl))

	return err
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	query := fmt.Sprintf(`SELECT value FROM %s WHERE key = $1 AND expires_at > now()`, pgx.Identifier{s.table}.Sanitize())

	var value []byte

	err := s.pool.QueryRow(ctx, query, key).Scan(&value)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, session.ErrNotFound
	}

	if err != nil {
		return nil, err
	}

	return value, nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE key = $1`, pgx.Identifier{s.table}.Sanitize())

	_, err := s.pool.Exec(ctx, query, key)

	return err
}

// Prune removes expired sessions.
func (s *Store) Prune(ctx context.Context) (int, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE expires_at <= now()`, pgx.Identifier{s.table}.Sanitize())

	tag, err := s.pool.Exec(ctx, query)

	if err != nil {
		return 0, err
	}

	return int(tag.RowsAffected()), nil
}

func (s *Store) Close() {
	s.pool.Close()
}
