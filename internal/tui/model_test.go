package tui

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ackhava/homepage/internal/shell"
	"github.com/ackhava/homepage/internal/vfs"
)

func newTestModel(t *testing.T, opts Options) Model {
	t.Helper()
	opts.Theme = DefaultTheme(lipgloss.NewRenderer(io.Discard))
	if opts.Markdown == nil {
		md, err := NewMarkdown(80, "notty")
		if err != nil {
			t.Fatalf("NewMarkdown: %v", err)
		}
		opts.Markdown = md
	}
	m := NewModel(vfs.Default("# Resume\n\nGo developer."), opts)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 10})
	return updated.(Model)
}

func press(m Model, msgs ...tea.KeyMsg) Model {
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}
	return m
}

func typeLine(m Model, line string) Model {
	for _, r := range line {
		if r == ' ' {
			m = press(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			continue
		}
		m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return press(m, tea.KeyMsg{Type: tea.KeyEnter})
}

func TestInitialPrompt(t *testing.T) {
	m := newTestModel(t, Options{User: "guest", Host: "box"})
	if !strings.Contains(m.View(), "guest@box:~ $") {
		t.Errorf("missing prompt in view %q", m.View())
	}
}

func TestTypingAndBackspace(t *testing.T) {
	m := newTestModel(t, Options{})
	m = press(m,
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}},
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}},
		tea.KeyMsg{Type: tea.KeyBackspace},
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}},
	)
	if m.Input() != "ls" {
		t.Errorf("input = %q, want ls", m.Input())
	}
}

func TestListAndChangeDirectory(t *testing.T) {
	m := newTestModel(t, Options{})

	m = typeLine(m, "ls")
	if !strings.Contains(m.Transcript(), "about\nprojects\ncontact\nindex.html\nresume.md\n") {
		t.Errorf("unexpected listing %q", m.Transcript())
	}
	if m.Input() != "" {
		t.Errorf("input not cleared: %q", m.Input())
	}

	m = typeLine(m, "cd about")
	if m.Cwd() != "~/about" {
		t.Errorf("cwd = %q, want ~/about", m.Cwd())
	}
	if !strings.HasSuffix(m.Transcript(), "reader@ackhava.dev:~/about $ ") {
		t.Errorf("prompt not updated: %q", m.Transcript())
	}
}

func TestCatMarkdownUsesGlamour(t *testing.T) {
	m := newTestModel(t, Options{})
	m = typeLine(m, "cat resume.md")
	if !strings.Contains(m.Transcript(), "Go developer.") {
		t.Errorf("resume not printed: %q", m.Transcript())
	}
}

func TestCatUsesMarkdownRenderer(t *testing.T) {
	m := newTestModel(t, Options{Markdown: func(src string) (string, error) {
		return "rendered:" + strings.TrimSpace(src) + "\n\n", nil
	}})
	m = typeLine(m, "cat resume.md")
	if !strings.Contains(m.Transcript(), "rendered:# Resume\n\nGo developer.\n") {
		t.Errorf("markdown renderer not used: %q", m.Transcript())
	}
}

func TestErrorsAreShown(t *testing.T) {
	m := newTestModel(t, Options{})
	m = typeLine(m, "cd nowhere")
	if !strings.Contains(m.Transcript(), "No such directory: nowhere") {
		t.Errorf("missing error: %q", m.Transcript())
	}
	if m.Cwd() != "~" {
		t.Errorf("failed cd moved to %q", m.Cwd())
	}
}

func TestOnSubmitHook(t *testing.T) {
	var lines []string
	m := newTestModel(t, Options{OnSubmit: func(line string, out shell.Output, cwd string) {
		lines = append(lines, line+"|"+out.Kind.String()+"|"+cwd)
	}})
	m = typeLine(m, "cd projects")
	typeLine(m, "")

	want := []string{"cd projects|none|~/projects", "|blank|~/projects"}
	if strings.Join(lines, ",") != strings.Join(want, ",") {
		t.Errorf("hook saw %v, want %v", lines, want)
	}
}

func TestScrollKeys(t *testing.T) {
	m := newTestModel(t, Options{})
	for i := 0; i < 10; i++ {
		m = typeLine(m, "ls")
	}
	bottom := m.viewport.YOffset
	if bottom == 0 {
		t.Fatal("expected content taller than the viewport")
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyUp})
	if m.viewport.YOffset != bottom-1 {
		t.Errorf("up: offset %d, want %d", m.viewport.YOffset, bottom-1)
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyHome})
	if m.viewport.YOffset != 0 {
		t.Errorf("home: offset %d, want 0", m.viewport.YOffset)
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyUp})
	if m.viewport.YOffset != 0 {
		t.Errorf("up at top should clamp, got %d", m.viewport.YOffset)
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyEnd})
	if m.viewport.YOffset != bottom {
		t.Errorf("end: offset %d, want %d", m.viewport.YOffset, bottom)
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, Options{})
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if !updated.(Model).Quitting() {
		t.Error("model not marked quitting")
	}
	if updated.(Model).View() != "" {
		t.Error("view should be empty after quitting")
	}
}
