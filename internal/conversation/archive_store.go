package conversation

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ArchiveStore persists finished turns to PostgreSQL for the results
// dashboard. All methods are nil-safe: with no database configured
// every call is a no-op, and failures never fail the turn.
type ArchiveStore struct {
	db *sql.DB
}

// NewArchiveStore creates an archive store. Returns nil when db is
// nil, which callers treat as archiving disabled.
func NewArchiveStore(db *sql.DB) *ArchiveStore {
	if db == nil {
		return nil
	}
	return &ArchiveStore{db: db}
}

// SaveTurn upserts the session row and appends one turn record.
func (s *ArchiveStore) SaveTurn(ctx context.Context, sess *Session, scammerText, reply string) error {
	if s == nil || s.db == nil {
		return nil
	}

	intelJSON, err := json.Marshal(sess.Intel)
	if err != nil {
		return fmt.Errorf("conversation: marshal intel: %w", err)
	}
	now := time.Now().UTC()

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO honeypot_sessions (
			session_id, persona_name, scam_type, turn_count, intel, agent_notes, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (session_id) DO UPDATE SET
			scam_type = EXCLUDED.scam_type,
			turn_count = EXCLUDED.turn_count,
			intel = EXCLUDED.intel,
			agent_notes = EXCLUDED.agent_notes,
			updated_at = EXCLUDED.updated_at
	`, sess.ID, sess.Persona.Name, sess.ScamType, sess.TurnCount, intelJSON, sess.AgentNotes, now, now)
	if err != nil {
		return fmt.Errorf("conversation: upsert session: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO honeypot_turns (
			id, session_id, turn_number, scammer_text, reply_text, phase, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, uuid.New(), sess.ID, sess.TurnCount, scammerText, reply, string(sess.Phase), now)
	if err != nil {
		return fmt.Errorf("conversation: insert turn: %w", err)
	}
	return nil
}

// SessionResult is one row of the results dashboard.
type SessionResult struct {
	SessionID   string          `json:"sessionId"`
	PersonaName string          `json:"personaName"`
	ScamType    string          `json:"scamType"`
	TurnCount   int             `json:"turnCount"`
	Intel       json.RawMessage `json:"extractedIntelligence"`
	AgentNotes  string          `json:"agentNotes"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ListResults returns the most recently active sessions.
func (s *ArchiveStore) ListResults(ctx context.Context, limit int) ([]SessionResult, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT session_id, persona_name, scam_type, turn_count, intel, agent_notes, updated_at
		FROM honeypot_sessions
		ORDER BY updated_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("conversation: list results: %w", err)
	}
	defer rows.Close()

	var results []SessionResult
	for rows.Next() {
		var r SessionResult
		if err := rows.Scan(&r.SessionID, &r.PersonaName, &r.ScamType, &r.TurnCount, &r.Intel, &r.AgentNotes, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("conversation: scan result: %w", err)
		}
		results = append(results, r)
	}
	return results, rows.Err()
}
