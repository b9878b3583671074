package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

// SessionRepo handles sessions.
type SessionRepo struct {
	db Querier
}

func NewSessionRepo(db Querier) *SessionRepo { return &SessionRepo{db: db} }

// SessionID derives the stable id of a named session.
func SessionID(name string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("session:"+name)).String()
}

func (r *SessionRepo) Upsert(ctx context.Context, s Session) error {
	if s.ID == "" {
		s.ID = SessionID(s.Name)
	}
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO sessions(id, name, screen, memory, created_at, updated_at)
	VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
	ON CONFLICT(name) DO UPDATE SET
	 screen=excluded.screen,
	 memory=excluded.memory,
	 updated_at=CURRENT_TIMESTAMP;
	`, s.ID, s.Name, s.Screen, s.Memory)
	return err
}

func (r *SessionRepo) Get(ctx context.Context, name string) (*Session, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name, screen, memory, created_at, updated_at FROM sessions WHERE name = ?`, name)
	var s Session
	if err := row.Scan(&s.ID, &s.Name, &s.Screen, &s.Memory, &s.CreatedAt, &s.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *SessionRepo) List(ctx context.Context) ([]Session, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, screen, memory, created_at, updated_at FROM sessions ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Session
	for rows.Next() {
		var s Session
		if err := rows.Scan(&s.ID, &s.Name, &s.Screen, &s.Memory, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Delete removes a session and, through the foreign key, its history.
func (r *SessionRepo) Delete(ctx context.Context, name string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE name = ?`, name)
	return err
}
