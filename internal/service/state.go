package service

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/jask/jaskcalc/internal/calc"
	"github.com/jask/jaskcalc/internal/database"
	"github.com/jask/jaskcalc/internal/database/repository"
)

// StateService persists calculator sessions and their history.
type StateService struct {
	DB       *sql.DB
	Sessions *repository.SessionRepo
	Entries  *repository.HistoryRepo
	Log      *zap.Logger
}

// NewStateService wires the repos over db.
func NewStateService(db *sql.DB, log *zap.Logger) *StateService {
	if log == nil {
		log = zap.NewNop()
	}
	return &StateService{
		DB:       db,
		Sessions: repository.NewSessionRepo(db),
		Entries:  repository.NewHistoryRepo(db),
		Log:      log,
	}
}

// Load returns the saved state of session name. A session that was never
// saved yields the zero State.
func (s *StateService) Load(ctx context.Context, name string) (calc.State, error) {
	sess, err := s.Sessions.Get(ctx, name)
	if err != nil {
		return calc.State{}, fmt.Errorf("load session %s: %w", name, err)
	}
	if sess == nil {
		return calc.State{}, nil
	}
	return calc.State{Screen: sess.Screen, Memory: sess.Memory}, nil
}

// Save stores st under session name.
func (s *StateService) Save(ctx context.Context, name string, st calc.State) error {
	if err := s.Sessions.Upsert(ctx, repository.Session{Name: name, Screen: st.Screen, Memory: st.Memory}); err != nil {
		return fmt.Errorf("save session %s: %w", name, err)
	}
	s.Log.Debug("session saved", zap.String("session", name), zap.String("screen", st.Screen))
	return nil
}

// Record appends an evaluated expression to the history of session name,
// creating the session row if needed.
func (s *StateService) Record(ctx context.Context, name string, r calc.Record) error {
	sess, err := s.ensure(ctx, name)
	if err != nil {
		return err
	}
	entry := repository.HistoryEntry{
		SessionID:  sess.ID,
		Expression: r.Expression,
		Result:     r.Result,
	}
	if r.Kind != calc.ErrorNone {
		entry.ErrorKind = r.Kind.String()
	}
	if err := s.Entries.Add(ctx, entry); err != nil {
		return fmt.Errorf("record history: %w", err)
	}
	return nil
}

// History lists up to limit entries of session name, newest first.
func (s *StateService) History(ctx context.Context, name string, limit int) ([]repository.HistoryEntry, error) {
	return s.Entries.List(ctx, repository.SessionID(name), limit)
}

// Reset clears the history of session name and puts its screen back to "0".
func (s *StateService) Reset(ctx context.Context, name string) error {
	if s.DB == nil {
		return fmt.Errorf("state: db not configured")
	}
	err := database.WithTx(ctx, s.DB, func(tx *sql.Tx) error {
		if err := repository.NewHistoryRepo(tx).Clear(ctx, repository.SessionID(name)); err != nil {
			return fmt.Errorf("clear history: %w", err)
		}
		return repository.NewSessionRepo(tx).Upsert(ctx, repository.Session{Name: name, Screen: "0"})
	})
	if err != nil {
		return err
	}
	s.Log.Info("session reset", zap.String("session", name))
	return nil
}

func (s *StateService) ensure(ctx context.Context, name string) (*repository.Session, error) {
	sess, err := s.Sessions.Get(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("load session %s: %w", name, err)
	}
	if sess != nil {
		return sess, nil
	}
	if err := s.Sessions.Upsert(ctx, repository.Session{Name: name, Screen: "0"}); err != nil {
		return nil, fmt.Errorf("create session %s: %w", name, err)
	}
	return &repository.Session{ID: repository.SessionID(name), Name: name, Screen: "0"}, nil
}

// Hook returns a solve hook that records into session name. Failures are
// logged; the engine has no way to surface them.
func (s *StateService) Hook(ctx context.Context, name string) func(calc.Record) {
	return func(r calc.Record) {
		if err := s.Record(ctx, name, r); err != nil {
			s.Log.Warn("history not recorded", zap.String("expression", r.Expression), zap.Error(err))
		}
	}
}
