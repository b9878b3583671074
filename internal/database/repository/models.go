package repository

import "time"

// Session represents a persisted calculator: its screen text and memory.
type Session struct {
	ID        string
	Name      string
	Screen    string
	Memory    float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HistoryEntry represents one evaluated expression.
type HistoryEntry struct {
	ID         string
	SessionID  string
	Expression string
	Result     string
	ErrorKind  string
	CreatedAt  time.Time
}
