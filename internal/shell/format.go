package shell

import "strings"

// MarkdownFunc converts markdown source to HTML.
type MarkdownFunc func(src string) (string, error)

// HTMLFormatter renders outputs as fragments of the HTML transcript.
type HTMLFormatter struct {
	Markdown MarkdownFunc
}

// Format returns the transcript fragment for out, including its trailing
// line break. User-supplied text is escaped before it reaches the transcript.
func (f HTMLFormatter) Format(out Output) string {
	switch out.Kind {
	case OutputBlank:
		return "\n"
	case OutputNone:
		return ""
	case OutputListing:
		escaped := make([]string, len(out.Entries))
		for i, e := range out.Entries {
			escaped[i] = EscapeHTML(e)
		}
		return strings.Join(escaped, "<br>") + "<br>"
	case OutputMarkdown:
		if f.Markdown == nil {
			return EscapeHTML(out.Text) + "<br>"
		}
		rendered, err := f.Markdown(out.Text)
		if err != nil {
			return ErrorHTML("Could not render " + out.Path)
		}
		return rendered + "<br>"
	case OutputText:
		return EscapeHTML(out.Text) + "<br>"
	case OutputError:
		return ErrorHTML(out.Text)
	default:
		return ""
	}
}

// ErrorHTML wraps msg in the transcript's error styling.
func ErrorHTML(msg string) string {
	return `<span class="error">` + EscapeHTML(msg) + `</span><br>`
}

// PlainText renders out without markup, for text-only consumers.
func PlainText(out Output) string {
	switch out.Kind {
	case OutputListing:
		return strings.Join(out.Entries, "\n")
	case OutputMarkdown, OutputText, OutputError:
		return out.Text
	default:
		return ""
	}
}
