package shell

import (
	"strings"

	"github.com/ackhava/homepage/internal/vfs"
)

// Interpreter executes commands against a filesystem and tracks the current
// directory. It is not safe for concurrent use; a session owns one.
type Interpreter struct {
	fs  *vfs.FileSystem
	cwd string
}

// NewInterpreter starts at the filesystem root.
func NewInterpreter(fsys *vfs.FileSystem) *Interpreter {
	return &Interpreter{fs: fsys, cwd: vfs.Root}
}

// Cwd returns the current directory.
func (in *Interpreter) Cwd() string { return in.cwd }

// FS returns the filesystem the interpreter runs against.
func (in *Interpreter) FS() *vfs.FileSystem { return in.fs }

// Execute runs one input line. Failures are reported as OutputError values;
// Execute itself never fails.
func (in *Interpreter) Execute(line string) Output {
	return in.Run(Parse(line))
}

// Run executes an already parsed command.
func (in *Interpreter) Run(cmd Command) Output {
	switch cmd.Kind {
	case KindEmpty:
		return Output{Kind: OutputBlank}
	case KindCd:
		return in.cd(cmd)
	case KindLs:
		return in.ls(cmd)
	case KindCat:
		return in.cat(cmd)
	default:
		return errorOutput("Unrecognized command: " + cmd.Name)
	}
}

func (in *Interpreter) cd(cmd Command) Output {
	if len(cmd.Args) != 1 {
		return errorOutput("cd takes exactly one argument")
	}
	target := cmd.Args[0]
	next := vfs.Resolve(in.cwd, target)
	if !in.fs.IsDir(next) {
		return errorOutput("No such directory: " + target)
	}
	in.cwd = next
	return Output{Kind: OutputNone}
}

func (in *Interpreter) ls(cmd Command) Output {
	if len(cmd.Args) != 0 {
		return errorOutput("ls takes no arguments")
	}
	return Output{Kind: OutputListing, Entries: in.fs.ListChildren(in.cwd)}
}

func (in *Interpreter) cat(cmd Command) Output {
	if len(cmd.Args) != 1 {
		return errorOutput("cat takes exactly one argument")
	}
	target := cmd.CatArgument()
	path := vfs.Resolve(in.cwd, target)
	content, ok := in.fs.ReadFile(path)
	if !ok {
		return errorOutput("No such file: " + target)
	}
	if strings.HasSuffix(path, ".md") {
		return Output{Kind: OutputMarkdown, Text: content, Path: path}
	}
	return Output{Kind: OutputText, Text: content, Path: path}
}
