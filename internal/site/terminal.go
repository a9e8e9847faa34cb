package site

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"

	"github.com/ackhava/homepage/internal/history"
	"github.com/ackhava/homepage/internal/logging"
	"github.com/ackhava/homepage/internal/terminal"
	"github.com/ackhava/homepage/internal/vfs"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// serverMessage is the outgoing WebSocket message format.
type serverMessage struct {
	Type string `json:"type"` // "update" or "error"
	*terminal.Update
	Error string `json:"error,omitempty"`
}

func validEvent(t terminal.EventType) bool {
	switch t {
	case terminal.EventFocus, terminal.EventBlur, terminal.EventClick,
		terminal.EventKeyDown, terminal.EventKeyUp:
		return true
	}
	return false
}

// handleTerminal runs one fresh terminal session for the lifetime of the
// connection. Nothing carries over between connections.
func (s *Site) handleTerminal(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade", "error", err)
		return
	}
	defer conn.Close()

	ctx := r.Context()
	cfg := terminal.Config{
		User:     s.opts.User,
		Host:     s.opts.Host,
		Markdown: s.markdownHTML,
	}

	if s.history != nil {
		rec, err := s.history.Begin(ctx, history.Session{
			RemoteAddr: r.RemoteAddr,
			UserAgent:  r.UserAgent(),
			Transport:  history.TransportWebsocket,
		}, s.logger)
		if err != nil {
			s.logger.WarnContext(ctx, "starting session history", "error", err)
		} else {
			ctx = logging.WithSession(ctx, rec.SessionID())
			cfg.OnSubmit = rec.Record
			defer rec.Close()
		}
	}

	sess := terminal.NewSession(vfs.Default(s.loadResume(ctx)), cfg)
	s.logger.DebugContext(ctx, "terminal session started", "remote", r.RemoteAddr)

	first := sess.Snapshot()
	if err := conn.WriteJSON(serverMessage{Type: "update", Update: &first}); err != nil {
		return
	}

	if err := serveSession(ctx, conn, sess); err != nil && ctx.Err() == nil {
		s.logger.WarnContext(ctx, "terminal session ended", "error", err)
	}
	s.logger.DebugContext(ctx, "terminal session closed")
}

// serveSession pumps events from conn into sess and updates back out. The
// reader goroutine only decodes; the session is owned by its Run loop and
// every write happens on the writer goroutine.
func serveSession(ctx context.Context, conn *websocket.Conn, sess *terminal.Session) error {
	events := make(chan terminal.Event)
	updates := make(chan terminal.Update)
	rejects := make(chan string)

	g, gctx := errgroup.WithContext(ctx)

	// Unblock the reader when anything else stops.
	go func() {
		<-gctx.Done()
		conn.Close()
	}()

	g.Go(func() error {
		defer close(events)
		defer close(rejects)
		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) && gctx.Err() == nil {
					return err
				}
				return nil
			}

			var ev terminal.Event
			var reject string
			if err := json.Unmarshal(msg, &ev); err != nil {
				reject = "invalid message format"
			} else if !validEvent(ev.Type) {
				reject = "unknown event type: " + string(ev.Type)
			}

			if reject != "" {
				select {
				case rejects <- reject:
				case <-gctx.Done():
					return nil
				}
				continue
			}

			select {
			case events <- ev:
			case <-gctx.Done():
				return nil
			}
		}
	})

	g.Go(func() error {
		defer close(updates)
		return sess.Run(gctx, events, updates)
	})

	g.Go(func() error {
		for updates != nil || rejects != nil {
			var msg serverMessage
			select {
			case u, ok := <-updates:
				if !ok {
					updates = nil
					continue
				}
				msg = serverMessage{Type: "update", Update: &u}
			case reason, ok := <-rejects:
				if !ok {
					rejects = nil
					continue
				}
				msg = serverMessage{Type: "error", Error: reason}
			}
			if err := conn.WriteJSON(msg); err != nil {
				return err
			}
		}
		return nil
	})

	err := g.Wait()
	if err == context.Canceled {
		return nil
	}
	return err
}
