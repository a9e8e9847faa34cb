// Package terminal implements the key-driven terminal session that sits on
// top of the shell interpreter.
package terminal

import (
	"context"
	"unicode/utf8"

	"github.com/ackhava/homepage/internal/shell"
	"github.com/ackhava/homepage/internal/vfs"
)

// LineHeight is how far ArrowUp/ArrowDown scroll, in pixels.
const LineHeight = 20

// Prompt identity used when Config leaves it empty.
const (
	DefaultUser = "reader"
	DefaultHost = "ackhava.dev"
)

// CommandHook observes every submitted line after it ran.
type CommandHook func(line string, out shell.Output, cwd string)

// Config controls prompt rendering and output formatting.
type Config struct {
	User     string
	Host     string
	Markdown shell.MarkdownFunc
	OnSubmit CommandHook
}

// State is everything a session knows. The transcript only ever grows.
type State struct {
	Cwd        string
	Input      string
	Transcript string
	Focused    bool
	ScrollTop  int
}

// Session owns one terminal's state. All mutation goes through Dispatch or
// Submit, which must be called from a single goroutine; Run provides that
// loop for transports.
type Session struct {
	cfg    Config
	interp *shell.Interpreter
	format shell.HTMLFormatter
	state  State
}

// NewSession starts a session at the root of fsys with a fresh prompt.
func NewSession(fsys *vfs.FileSystem, cfg Config) *Session {
	if cfg.User == "" {
		cfg.User = DefaultUser
	}
	if cfg.Host == "" {
		cfg.Host = DefaultHost
	}
	s := &Session{
		cfg:    cfg,
		interp: shell.NewInterpreter(fsys),
		format: shell.HTMLFormatter{Markdown: cfg.Markdown},
	}
	s.state.Cwd = s.interp.Cwd()
	s.state.Transcript = s.prompt()
	return s
}

// State returns a copy of the current state.
func (s *Session) State() State { return s.state }

func (s *Session) prompt() string {
	return `<span class="prompt">` + shell.EscapeHTML(s.cfg.User+"@"+s.cfg.Host+":"+s.interp.Cwd()) + ` $</span> `
}

// Display is the visible text: transcript followed by the pending input.
func (s *Session) Display() string {
	return s.state.Transcript + " " + shell.EscapeHTML(s.state.Input)
}

// Snapshot describes the current view without changing anything.
func (s *Session) Snapshot() Update {
	return Update{
		Display:      s.Display(),
		FollowGrowth: true,
		Focused:      s.state.Focused,
		Cwd:          s.state.Cwd,
	}
}

// Dispatch applies one event and reports how the view should change.
func (s *Session) Dispatch(ev Event) Update {
	switch ev.Type {
	case EventFocus:
		s.state.Focused = true
	case EventBlur:
		s.state.Focused = false
	case EventClick:
		s.state.Focused = ev.Inside
	case EventKeyDown:
		return s.keyDown(ev)
	case EventKeyUp:
		return s.keyUp(ev)
	}
	return Update{Focused: s.state.Focused, Cwd: s.state.Cwd}
}

func (s *Session) keyDown(ev Event) Update {
	u := Update{Focused: s.state.Focused, Cwd: s.state.Cwd}
	if !s.state.Focused {
		return u
	}
	u.PreventDefault = true

	top, ok := scrollFor(ev.Key, ev.Viewport)
	if ok {
		s.state.ScrollTop = top
		u.ScrollTop = &top
	}
	return u
}

// scrollFor computes the scroll position a navigation key moves to.
func scrollFor(key string, vp Viewport) (int, bool) {
	maxTop := max(vp.ScrollHeight-vp.ClientHeight, 0)
	switch key {
	case KeyArrowDown:
		return min(vp.ScrollTop+LineHeight, maxTop), true
	case KeyArrowUp:
		return max(vp.ScrollTop-LineHeight, 0), true
	case KeyPageDown:
		return min(vp.ScrollTop+vp.ClientHeight, maxTop), true
	case KeyPageUp:
		return max(vp.ScrollTop-vp.ClientHeight, 0), true
	case KeyHome:
		return 0, true
	case KeyEnd:
		return vp.ScrollHeight, true
	default:
		return 0, false
	}
}

func (s *Session) keyUp(ev Event) Update {
	if !s.state.Focused {
		return Update{Focused: false, Cwd: s.state.Cwd}
	}

	switch {
	case ev.Key == KeyEnter:
		line := s.state.Input
		s.state.Input = ""
		s.Submit(line)
	case ev.Key == KeyBackspace:
		if s.state.Input != "" {
			_, size := utf8.DecodeLastRuneInString(s.state.Input)
			s.state.Input = s.state.Input[:len(s.state.Input)-size]
		}
	case utf8.RuneCountInString(ev.Key) == 1:
		s.state.Input += ev.Key
	}

	u := s.Snapshot()
	u.PreventDefault = true
	return u
}

// Submit runs line through the interpreter and appends the echo, the output
// and a fresh prompt to the transcript.
func (s *Session) Submit(line string) shell.Output {
	s.state.Transcript += " " + shell.EscapeHTML(line) + "<br>"
	out := s.interp.Execute(line)
	s.state.Transcript += s.format.Format(out)
	s.state.Cwd = s.interp.Cwd()
	s.state.Transcript += s.prompt()

	if s.cfg.OnSubmit != nil {
		s.cfg.OnSubmit(line, out, s.state.Cwd)
	}
	return out
}

// Run dispatches events until the channel closes or ctx is done. It is the
// only goroutine touching the session while it runs.
func (s *Session) Run(ctx context.Context, events <-chan Event, updates chan<- Update) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			u := s.Dispatch(ev)
			select {
			case updates <- u:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}
