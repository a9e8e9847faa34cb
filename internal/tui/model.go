// Package tui is the local, full-screen rendition of the site terminal.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ackhava/homepage/internal/shell"
	"github.com/ackhava/homepage/internal/terminal"
	"github.com/ackhava/homepage/internal/vfs"
)

// footerHeight is the number of rows below the viewport.
const footerHeight = 1

// Options configures a Model.
type Options struct {
	User     string
	Host     string
	Theme    Theme
	Markdown shell.MarkdownFunc
	OnSubmit terminal.CommandHook
}

// Model is the bubbletea model of the local terminal.
type Model struct {
	opts       Options
	interp     *shell.Interpreter
	transcript string
	input      string
	viewport   viewport.Model
	ready      bool
	quitting   bool
}

// NewModel creates a terminal at the root of fsys.
func NewModel(fsys *vfs.FileSystem, opts Options) Model {
	if opts.User == "" {
		opts.User = terminal.DefaultUser
	}
	if opts.Host == "" {
		opts.Host = terminal.DefaultHost
	}
	if opts.Theme.Renderer == nil {
		opts.Theme = DefaultTheme(nil)
	}
	m := Model{
		opts:     opts,
		interp:   shell.NewInterpreter(fsys),
		viewport: viewport.New(80, 24-footerHeight),
	}
	m.transcript = m.prompt()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Cwd returns the interpreter's working directory.
func (m Model) Cwd() string { return m.interp.Cwd() }

// Input returns the pending input line.
func (m Model) Input() string { return m.input }

// Transcript returns everything printed so far.
func (m Model) Transcript() string { return m.transcript }

// Quitting reports whether the model asked the program to exit.
func (m Model) Quitting() bool { return m.quitting }

// Update handles key presses and resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-footerHeight, 1)
		m.ready = true
		m.refresh(true)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyCtrlD, tea.KeyEsc:
		m.quitting = true
		return m, tea.Quit

	// Navigation keys scroll like the browser terminal does, one row per
	// arrow press instead of LineHeight pixels.
	case tea.KeyUp:
		m.viewport.SetYOffset(m.viewport.YOffset - 1)
	case tea.KeyDown:
		m.viewport.SetYOffset(m.viewport.YOffset + 1)
	case tea.KeyPgUp:
		m.viewport.SetYOffset(m.viewport.YOffset - m.viewport.Height)
	case tea.KeyPgDown:
		m.viewport.SetYOffset(m.viewport.YOffset + m.viewport.Height)
	case tea.KeyHome:
		m.viewport.GotoTop()
	case tea.KeyEnd:
		m.viewport.GotoBottom()

	case tea.KeyEnter:
		line := m.input
		m.input = ""
		m.submit(line)
		m.refresh(true)
	case tea.KeyBackspace:
		if r := []rune(m.input); len(r) > 0 {
			m.input = string(r[:len(r)-1])
		}
		m.refresh(true)
	case tea.KeySpace:
		m.input += " "
		m.refresh(true)
	case tea.KeyRunes:
		m.input += string(msg.Runes)
		m.refresh(true)
	}
	return m, nil
}

func (m *Model) prompt() string {
	return m.opts.Theme.Prompt.Render(fmt.Sprintf("%s@%s:%s $", m.opts.User, m.opts.Host, m.interp.Cwd())) + " "
}

// submit runs line and appends its echo, output and the next prompt.
func (m *Model) submit(line string) {
	m.transcript += line + "\n"
	out := m.interp.Execute(line)
	m.transcript += m.format(out)
	m.transcript += m.prompt()

	if m.opts.OnSubmit != nil {
		m.opts.OnSubmit(line, out, m.interp.Cwd())
	}
}

// format renders out for the terminal, ending with a newline when it
// printed anything.
func (m *Model) format(out shell.Output) string {
	switch out.Kind {
	case shell.OutputListing:
		var b strings.Builder
		for _, e := range out.Entries {
			b.WriteString(m.opts.Theme.Listing.Render(e))
			b.WriteString("\n")
		}
		return b.String()
	case shell.OutputMarkdown:
		if m.opts.Markdown != nil {
			if rendered, err := m.opts.Markdown(out.Text); err == nil {
				return strings.TrimRight(rendered, "\n") + "\n"
			}
		}
		return out.Text + "\n"
	case shell.OutputText:
		return out.Text + "\n"
	case shell.OutputError:
		return m.opts.Theme.Error.Render(out.Text) + "\n"
	default:
		return ""
	}
}

// refresh reloads the viewport content, optionally pinning it to the bottom.
func (m *Model) refresh(follow bool) {
	m.viewport.SetContent(m.transcript + m.input + m.opts.Theme.Cursor.Render(" "))
	if follow {
		m.viewport.GotoBottom()
	}
}

// View renders the viewport and a key hint footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "starting terminal..."
	}
	footer := m.opts.Theme.Footer.Render("cd, ls, cat | arrows/pgup/pgdn/home/end scroll | esc quits")
	return m.opts.Theme.Viewport.Render(m.viewport.View()) + "\n" + footer
}

// Run starts a full-screen program around m.
func Run(m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
