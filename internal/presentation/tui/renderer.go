package tui

import (
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour.
// Styling auto-detects the terminal background; if the renderer
// cannot be constructed (e.g. no terminal), the raw markdown is
// returned unchanged.
func NewRenderer() func(string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
	)

	return func(markdown string) string {
		if err != nil || r == nil {
			return markdown
		}
		out, renderErr := r.Render(markdown)
		if renderErr != nil {
			return markdown
		}
		return out
	}
}
