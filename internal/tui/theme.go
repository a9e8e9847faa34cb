package tui

import "github.com/charmbracelet/lipgloss"

// Theme holds the styles of the local terminal.
type Theme struct {
	Renderer *lipgloss.Renderer

	Prompt   lipgloss.Style
	Error    lipgloss.Style
	Listing  lipgloss.Style
	Cursor   lipgloss.Style
	Footer   lipgloss.Style
	Viewport lipgloss.Style
}

// DefaultTheme returns adaptive styles close to the browser terminal's colors.
func DefaultTheme(r *lipgloss.Renderer) Theme {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	green := lipgloss.AdaptiveColor{Light: "#1A7F37", Dark: "#7EE787"}
	red := lipgloss.AdaptiveColor{Light: "#CF222E", Dark: "#F85149"}
	blue := lipgloss.AdaptiveColor{Light: "#0969DA", Dark: "#79C0FF"}
	dim := lipgloss.AdaptiveColor{Light: "#6E7781", Dark: "#8B949E"}

	return Theme{
		Renderer: r,
		Prompt:   r.NewStyle().Foreground(green).Bold(true),
		Error:    r.NewStyle().Foreground(red),
		Listing:  r.NewStyle().Foreground(blue),
		Cursor:   r.NewStyle().Reverse(true),
		Footer:   r.NewStyle().Foreground(dim),
		Viewport: r.NewStyle(),
	}
}
