package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ackhava/homepage/internal/db"
)

// ErrSessionNotFound is returned for unknown session IDs.
var ErrSessionNotFound = errors.New("session not found")

// Store reads and writes terminal history.
type Store struct {
	db *db.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// StartSession inserts a session. If sess.ID is empty a UUID is generated.
// The stored ID is returned.
func (s *Store) StartSession(ctx context.Context, sess Session) (string, error) {
	if sess.ID == "" {
		sess.ID = uuid.New().String()
	}
	if sess.Transport == "" {
		sess.Transport = TransportWebsocket
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO terminal_sessions (id, remote_addr, user_agent, transport)
		VALUES (?, ?, ?, ?)`,
		sess.ID, sess.RemoteAddr, sess.UserAgent, string(sess.Transport),
	)
	if err != nil {
		return "", fmt.Errorf("inserting terminal session: %w", err)
	}
	return sess.ID, nil
}

// EndSession stamps the session's end time.
func (s *Store) EndSession(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE terminal_sessions SET ended_at = datetime('now') WHERE id = ? AND ended_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("ending terminal session: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// LogCommand appends cmd to its session. Seq is assigned when zero.
func (s *Store) LogCommand(ctx context.Context, cmd Command) (int, error) {
	if cmd.Seq == 0 {
		row := s.db.QueryRowContext(ctx,
			`SELECT COALESCE(MAX(seq), 0) + 1 FROM terminal_commands WHERE session_id = ?`, cmd.SessionID)
		if err := row.Scan(&cmd.Seq); err != nil {
			return 0, fmt.Errorf("allocating command seq: %w", err)
		}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO terminal_commands (session_id, seq, cwd, line, kind, outcome)
		VALUES (?, ?, ?, ?, ?, ?)`,
		cmd.SessionID, cmd.Seq, cmd.Cwd, cmd.Line, cmd.Kind, cmd.Outcome,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting terminal command: %w", err)
	}
	return cmd.Seq, nil
}

const sessionColumns = `s.id, s.started_at, s.ended_at, s.remote_addr, s.user_agent, s.transport,
	(SELECT COUNT(*) FROM terminal_commands c WHERE c.session_id = s.id)`

// GetSession retrieves a single session.
func (s *Store) GetSession(ctx context.Context, id string) (*Session, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+sessionColumns+" FROM terminal_sessions s WHERE s.id = ?", id)
	sess, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	return sess, err
}

// SessionFilter controls which sessions ListSessions returns.
type SessionFilter struct {
	Transport Transport
	Since     *time.Time
	Limit     int
	Offset    int
}

// ListSessions returns sessions matching the filter, newest first.
func (s *Store) ListSessions(ctx context.Context, filter SessionFilter) ([]Session, error) {
	var (
		clauses []string
		args    []any
	)

	if filter.Transport != "" {
		clauses = append(clauses, "s.transport = ?")
		args = append(args, string(filter.Transport))
	}
	if filter.Since != nil {
		clauses = append(clauses, "s.started_at >= ?")
		args = append(args, filter.Since.UTC().Format(time.DateTime))
	}

	query := "SELECT " + sessionColumns + " FROM terminal_sessions s"
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY s.started_at DESC, s.rowid DESC"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	} else if filter.Offset > 0 {
		query += " LIMIT -1"
	}
	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET %d", filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying terminal sessions: %w", err)
	}
	defer rows.Close()

	sessions := []Session{}
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, *sess)
	}
	return sessions, rows.Err()
}

// Commands returns the commands of a session in the order they were typed.
func (s *Store) Commands(ctx context.Context, sessionID string) ([]Command, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT session_id, seq, executed_at, cwd, line, kind, outcome
		FROM terminal_commands WHERE session_id = ? ORDER BY seq`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("querying terminal commands: %w", err)
	}
	defer rows.Close()

	cmds := []Command{}
	for rows.Next() {
		var (
			c  Command
			ts string
		)
		if err := rows.Scan(&c.SessionID, &c.Seq, &ts, &c.Cwd, &c.Line, &c.Kind, &c.Outcome); err != nil {
			return nil, err
		}
		c.ExecutedAt = parseTime(ts)
		cmds = append(cmds, c)
	}
	return cmds, rows.Err()
}

// DeleteBefore removes sessions started before the given time, along with
// their commands. Returns the number of deleted sessions.
func (s *Store) DeleteBefore(ctx context.Context, before time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM terminal_sessions WHERE started_at < ?",
		before.UTC().Format(time.DateTime),
	)
	if err != nil {
		return 0, fmt.Errorf("deleting old terminal sessions: %w", err)
	}
	return res.RowsAffected()
}

// scanner is implemented by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanSession(sc scanner) (*Session, error) {
	var (
		sess      Session
		started   string
		ended     sql.NullString
		transport string
	)
	err := sc.Scan(&sess.ID, &started, &ended, &sess.RemoteAddr, &sess.UserAgent, &transport, &sess.Commands)
	if err != nil {
		return nil, err
	}
	sess.Transport = Transport(transport)
	sess.StartedAt = parseTime(started)
	if ended.Valid {
		t := parseTime(ended.String)
		sess.EndedAt = &t
	}
	return &sess, nil
}

func parseTime(ts string) time.Time {
	if t, err := time.Parse(time.DateTime, ts); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, ts); err == nil {
		return t
	}
	return time.Time{}
}
