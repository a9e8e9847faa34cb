// Package history records terminal sessions and the commands typed in them.
// It only observes: nothing recorded here is ever fed back into a session.
package history

import "time"

// Transport identifies how a session was driven.
type Transport string

const (
	TransportWebsocket Transport = "websocket"
	TransportTUI       Transport = "tui"
	TransportMCP       Transport = "mcp"
)

// Session is one terminal session.
type Session struct {
	ID         string     `json:"id"`
	StartedAt  time.Time  `json:"started_at"`
	EndedAt    *time.Time `json:"ended_at,omitempty"`
	RemoteAddr string     `json:"remote_addr,omitempty"`
	UserAgent  string     `json:"user_agent,omitempty"`
	Transport  Transport  `json:"transport"`
	Commands   int        `json:"commands"`
}

// Command is one submitted line and how it turned out.
type Command struct {
	SessionID  string    `json:"session_id"`
	Seq        int       `json:"seq"`
	ExecutedAt time.Time `json:"executed_at"`
	Cwd        string    `json:"cwd"`
	Line       string    `json:"line"`
	Kind       string    `json:"kind"`
	Outcome    string    `json:"outcome"`
}
