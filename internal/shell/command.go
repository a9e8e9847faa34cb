// Package shell interprets the terminal's command language over a virtual
// filesystem.
package shell

import "strings"

// Kind identifies a parsed command.
type Kind int

const (
	KindEmpty Kind = iota
	KindCd
	KindLs
	KindCat
	KindUnknown
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindCd:
		return "cd"
	case KindLs:
		return "ls"
	case KindCat:
		return "cat"
	default:
		return "unknown"
	}
}

// Command is one parsed input line.
type Command struct {
	Kind Kind
	Name string   // first token
	Args []string // remaining tokens, split on single spaces
	Raw  string   // trimmed line
}

// Parse trims line and splits it on single spaces. Consecutive spaces yield
// empty arguments, which the argument-count checks then reject.
func Parse(line string) Command {
	raw := strings.TrimSpace(line)
	if raw == "" {
		return Command{Kind: KindEmpty}
	}

	tokens := strings.Split(raw, " ")
	cmd := Command{Name: tokens[0], Args: tokens[1:], Raw: raw}
	switch cmd.Name {
	case "cd":
		cmd.Kind = KindCd
	case "ls":
		cmd.Kind = KindLs
	case "cat":
		cmd.Kind = KindCat
	default:
		cmd.Kind = KindUnknown
	}
	return cmd
}

// CatArgument is the file argument of a cat command: everything after the
// "cat " prefix of the trimmed line.
func (c Command) CatArgument() string {
	const prefix = "cat "
	if len(c.Raw) <= len(prefix) {
		return ""
	}
	return c.Raw[len(prefix):]
}
