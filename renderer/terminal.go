package renderer

import (
	"log"

	"github.com/charmbracelet/glamour"
)

// Terminal renders markdown for a terminal. It falls back to the markdown
// itself when the terminal renderer fails.
func Terminal(markdown string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		log.Printf("terminal renderer unavailable: %v", err)
		return markdown
	}
	out, err := r.Render(markdown)
	if err != nil {
		log.Printf("terminal rendering failed: %v", err)
		return markdown
	}
	return out
}
