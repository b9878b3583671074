package database

import (
	"context"
	"database/sql"

	"github.com/jask/jaskcalc/internal/database/repository"
)

// DefaultSession is the session used when none is named.
const DefaultSession = "default"

// SeedDefaults ensures the default session row exists.
// It is idempotent and safe to run on every startup.
func SeedDefaults(ctx context.Context, db *sql.DB) error {
	sessions := repository.NewSessionRepo(db)
	existing, err := sessions.Get(ctx, DefaultSession)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	return sessions.Upsert(ctx, repository.Session{
		ID:     repository.SessionID(DefaultSession),
		Name:   DefaultSession,
		Screen: "0",
	})
}
