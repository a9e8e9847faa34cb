package history

import (
	"context"
	"log/slog"
	"sync"

	"github.com/ackhava/homepage/internal/shell"
)

// Recorder logs the commands of one session. Its Record method fits
// terminal.Config.OnSubmit. Failures are logged and otherwise ignored so a
// broken history database never affects the terminal.
type Recorder struct {
	store     *Store
	ctx       context.Context
	sessionID string
	logger    *slog.Logger

	mu  sync.Mutex // serializes Record so seq matches insert order
	seq int
}

// Begin starts a recorded session. ctx bounds every write the recorder makes.
func (s *Store) Begin(ctx context.Context, sess Session, logger *slog.Logger) (*Recorder, error) {
	id, err := s.StartSession(ctx, sess)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Recorder{store: s, ctx: ctx, sessionID: id, logger: logger}, nil
}

// SessionID returns the recorded session's ID.
func (r *Recorder) SessionID() string { return r.sessionID }

// Record stores one executed line. It is safe for concurrent use.
func (r *Recorder) Record(line string, out shell.Output, cwd string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	cmd := Command{
		SessionID: r.sessionID,
		Seq:       r.seq,
		Cwd:       cwd,
		Line:      line,
		Kind:      shell.Parse(line).Kind.String(),
		Outcome:   out.Kind.String(),
	}
	if _, err := r.store.LogCommand(r.ctx, cmd); err != nil {
		r.logger.WarnContext(r.ctx, "recording command", "error", err)
	}
}

// Close marks the session ended. It uses a fresh context since the session's
// own context is usually already cancelled by then.
func (r *Recorder) Close() error {
	return r.store.EndSession(context.WithoutCancel(r.ctx), r.sessionID)
}
