// Package store is the sole boundary between HTTP state and persisted
// state. Reads degrade to hardcoded sample data when the database is
// missing or unreachable; writes and login always propagate failure.
package store

import (
	"context"
	"errors"
	"fmt"

	"team-awesome/internal/logger"

	"gorm.io/gorm"
)

var (
	// ErrNoDatabase is returned by write paths and login when the store
	// was constructed without a database handle.
	ErrNoDatabase = errors.New("no database connection")
	// ErrInvalidLogin means the credentials matched no row. It is
	// deliberately distinct from connection errors so that an unreachable
	// database can never let a login through.
	ErrInvalidLogin = errors.New("invalid employee id or password")
)

// Store wraps an injected database handle. A nil handle is valid and puts
// the store in demo mode.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store { return &Store{db: db} }

// Connected reports whether a database handle is present.
func (s *Store) Connected() bool { return s.db != nil }

// fetch runs a read query. On a missing handle or query failure it logs a
// warning and returns the fallback dataset; read paths never return errors.
func fetch[T any](s *Store, ctx context.Context, op string, fallback func() T, q func(db *gorm.DB) (T, error)) T {
	if s.db == nil {
		logger.Warn(op+": no database, serving fallback data", "op", op)
		return fallback()
	}
	v, err := q(s.db.WithContext(ctx))
	if err != nil {
		logger.Warn(op+": query failed, serving fallback data", "err", err)
		return fallback()
	}
	return v
}

// exec runs a write. Failures are wrapped and propagated, never absorbed:
// pretending a write succeeded would corrupt the UI's view of saved state.
func (s *Store) exec(ctx context.Context, op string, fn func(db *gorm.DB) error) error {
	if s.db == nil {
		return fmt.Errorf("%s: %w", op, ErrNoDatabase)
	}
	if err := fn(s.db.WithContext(ctx)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
