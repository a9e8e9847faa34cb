package shell

// OutputKind classifies what a command produced.
type OutputKind int

const (
	// OutputBlank is the result of an empty line.
	OutputBlank OutputKind = iota
	// OutputNone is a successful command with nothing to print (cd).
	OutputNone
	// OutputListing is a directory listing in Entries.
	OutputListing
	// OutputMarkdown is markdown file content in Text.
	OutputMarkdown
	// OutputText is non-markdown file content in Text, unescaped.
	OutputText
	// OutputError is a user-facing error message in Text.
	OutputError
)

func (k OutputKind) String() string {
	switch k {
	case OutputBlank:
		return "blank"
	case OutputNone:
		return "none"
	case OutputListing:
		return "listing"
	case OutputMarkdown:
		return "markdown"
	case OutputText:
		return "text"
	case OutputError:
		return "error"
	default:
		return "unknown"
	}
}

// Output is the result of executing one line. Consumers format it for their
// medium: HTML transcript, ANSI terminal or plain text.
type Output struct {
	Kind    OutputKind
	Text    string
	Entries []string
	Path    string // resolved path for cat
}

func errorOutput(msg string) Output {
	return Output{Kind: OutputError, Text: msg}
}
