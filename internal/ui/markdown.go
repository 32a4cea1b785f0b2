package ui

import (
	"github.com/charmbracelet/glamour"
)

// RenderMarkdown renders markdown for the terminal. Without color, or when
// glamour fails, the source is returned unchanged.
func RenderMarkdown(markdown string) string {
	if noColor {
		return markdown
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(Width(80, 100)),
	)
	if err != nil {
		return markdown
	}
	out, err := r.Render(markdown)
	if err != nil {
		return markdown
	}
	return out
}
