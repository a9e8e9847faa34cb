package shell

import (
	"reflect"
	"strings"
	"testing"

	"github.com/ackhava/homepage/internal/vfs"
)

func newTestInterpreter() *Interpreter {
	return NewInterpreter(vfs.Default("# Resume\n\nHello"))
}

func TestParse(t *testing.T) {
	tests := []struct {
		line string
		kind Kind
		name string
		args []string
	}{
		{"", KindEmpty, "", nil},
		{"   ", KindEmpty, "", nil},
		{"ls", KindLs, "ls", []string{}},
		{"  cd about  ", KindCd, "cd", []string{"about"}},
		{"cat  resume.md", KindCat, "cat", []string{"", "resume.md"}},
		{"rm -rf", KindUnknown, "rm", []string{"-rf"}},
	}
	for _, tt := range tests {
		cmd := Parse(tt.line)
		if cmd.Kind != tt.kind {
			t.Errorf("Parse(%q).Kind = %v, want %v", tt.line, cmd.Kind, tt.kind)
		}
		if cmd.Name != tt.name {
			t.Errorf("Parse(%q).Name = %q, want %q", tt.line, cmd.Name, tt.name)
		}
		if tt.args != nil && !reflect.DeepEqual(cmd.Args, tt.args) {
			t.Errorf("Parse(%q).Args = %q, want %q", tt.line, cmd.Args, tt.args)
		}
	}
}

func TestCdIntoEveryFolder(t *testing.T) {
	for _, folder := range []string{"~", "~/about", "~/projects", "~/contact"} {
		in := newTestInterpreter()
		out := in.Execute("cd " + folder)
		if out.Kind != OutputNone {
			t.Errorf("cd %s: unexpected output %+v", folder, out)
		}
		if in.Cwd() != folder {
			t.Errorf("cd %s: cwd = %q", folder, in.Cwd())
		}
	}

	in := newTestInterpreter()
	in.Execute("cd projects")
	if in.Cwd() != "~/projects" {
		t.Fatalf("relative cd: cwd = %q", in.Cwd())
	}
	in.Execute("cd ..")
	if in.Cwd() != "~" {
		t.Errorf("cd ..: cwd = %q, want ~", in.Cwd())
	}
	in.Execute("cd .")
	if in.Cwd() != "~" {
		t.Errorf("cd .: cwd = %q, want ~", in.Cwd())
	}
}

func TestCdFailuresKeepCwd(t *testing.T) {
	tests := []struct {
		line, want string
	}{
		{"cd nowhere", "No such directory: nowhere"},
		{"cd ./about", "No such directory: ./about"},
		{"cd ..", "No such directory: .."},
		{"cd", "cd takes exactly one argument"},
		{"cd a b", "cd takes exactly one argument"},
	}
	for _, tt := range tests {
		in := newTestInterpreter()
		out := in.Execute(tt.line)
		if out.Kind != OutputError || out.Text != tt.want {
			t.Errorf("%q: got %+v, want error %q", tt.line, out, tt.want)
		}
		if in.Cwd() != "~" {
			t.Errorf("%q: cwd changed to %q", tt.line, in.Cwd())
		}
	}
}

func TestLs(t *testing.T) {
	in := newTestInterpreter()
	out := in.Execute("ls")
	want := []string{"about", "projects", "contact", "index.html", "resume.md"}
	if out.Kind != OutputListing || !reflect.DeepEqual(out.Entries, want) {
		t.Errorf("ls = %+v, want %v", out, want)
	}

	out = in.Execute("ls -la")
	if out.Kind != OutputError || out.Text != "ls takes no arguments" {
		t.Errorf("ls -la = %+v", out)
	}

	in.Execute("cd contact")
	out = in.Execute("ls")
	if !reflect.DeepEqual(out.Entries, []string{"index.html"}) {
		t.Errorf("ls in contact = %v", out.Entries)
	}
}

func TestCat(t *testing.T) {
	in := newTestInterpreter()

	out := in.Execute("cat resume.md")
	if out.Kind != OutputMarkdown || out.Path != "~/resume.md" {
		t.Fatalf("cat resume.md = %+v", out)
	}
	if !strings.HasPrefix(out.Text, "# Resume") {
		t.Errorf("unexpected content %q", out.Text)
	}

	out = in.Execute("cat about/index.html")
	if out.Kind != OutputText || !strings.Contains(out.Text, "About Me") {
		t.Errorf("cat about/index.html = %+v", out)
	}

	out = in.Execute("cat nonexistent.txt")
	if out.Kind != OutputError || out.Text != "No such file: nonexistent.txt" {
		t.Errorf("cat nonexistent.txt = %+v", out)
	}

	out = in.Execute("cat")
	if out.Kind != OutputError || out.Text != "cat takes exactly one argument" {
		t.Errorf("cat = %+v", out)
	}

	out = in.Execute("cat a b")
	if out.Kind != OutputError || out.Text != "cat takes exactly one argument" {
		t.Errorf("cat a b = %+v", out)
	}
}

func TestUnknownCommand(t *testing.T) {
	in := newTestInterpreter()
	out := in.Execute("sudo make me a sandwich")
	if out.Kind != OutputError || out.Text != "Unrecognized command: sudo" {
		t.Errorf("got %+v", out)
	}
}

func TestBlankLine(t *testing.T) {
	in := newTestInterpreter()
	if out := in.Execute("  "); out.Kind != OutputBlank {
		t.Errorf("blank line = %+v", out)
	}
}

func TestHTMLFormatter(t *testing.T) {
	f := HTMLFormatter{Markdown: func(src string) (string, error) {
		return "<h1>rendered</h1>", nil
	}}

	tests := []struct {
		out  Output
		want string
	}{
		{Output{Kind: OutputBlank}, "\n"},
		{Output{Kind: OutputNone}, ""},
		{Output{Kind: OutputListing, Entries: []string{"a", "b"}}, "a<br>b<br>"},
		{Output{Kind: OutputListing}, "<br>"},
		{Output{Kind: OutputMarkdown, Text: "# x"}, "<h1>rendered</h1><br>"},
		{Output{Kind: OutputText, Text: `<b>"hi" & 'bye'</b>`}, "&lt;b&gt;&quot;hi&quot; &amp; &#39;bye&#39;&lt;/b&gt;<br>"},
		{Output{Kind: OutputError, Text: "No such file: <x>"}, `<span class="error">No such file: &lt;x&gt;</span><br>`},
	}
	for _, tt := range tests {
		if got := f.Format(tt.out); got != tt.want {
			t.Errorf("Format(%v) = %q, want %q", tt.out.Kind, got, tt.want)
		}
	}
}

func TestPlainText(t *testing.T) {
	if got := PlainText(Output{Kind: OutputListing, Entries: []string{"a", "b"}}); got != "a\nb" {
		t.Errorf("got %q", got)
	}
	if got := PlainText(Output{Kind: OutputNone}); got != "" {
		t.Errorf("got %q", got)
	}
}
