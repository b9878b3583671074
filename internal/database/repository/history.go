package repository

import (
	"context"

	"github.com/google/uuid"
)

// HistoryRepo handles the tape of evaluated expressions.
type HistoryRepo struct {
	db Querier
}

func NewHistoryRepo(db Querier) *HistoryRepo { return &HistoryRepo{db: db} }

func (r *HistoryRepo) Add(ctx context.Context, h HistoryEntry) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO history(id, session_id, expression, result, error_kind, created_at)
	VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP);
	`, h.ID, h.SessionID, h.Expression, h.Result, h.ErrorKind)
	return err
}

// List returns up to limit entries of a session, newest first. A limit of
// zero or less returns everything.
func (r *HistoryRepo) List(ctx context.Context, sessionID string, limit int) ([]HistoryEntry, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, session_id, expression, result, error_kind, created_at
	FROM history WHERE session_id = ?
	ORDER BY created_at DESC, rowid DESC
	LIMIT ?`, sessionID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []HistoryEntry
	for rows.Next() {
		var h HistoryEntry
		if err := rows.Scan(&h.ID, &h.SessionID, &h.Expression, &h.Result, &h.ErrorKind, &h.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func (r *HistoryRepo) Clear(ctx context.Context, sessionID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM history WHERE session_id = ?`, sessionID)
	return err
}
