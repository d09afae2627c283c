package player

import (
	"fmt"
	"io"
	"strings"

	"github.com/pixil98/go-adventure/internal/display"
	"github.com/pixil98/go-adventure/internal/style"
)

// Renderer turns session output events into styled, wrapped text on a
// connection.
type Renderer struct {
	w     io.Writer
	theme *style.Theme
}

func NewRenderer(w io.Writer, theme *style.Theme) *Renderer {
	return &Renderer{w: w, theme: theme}
}

// Events writes each event on its own line, styled per the theme and
// wrapped to the display width.
func (r *Renderer) Events(events []style.Event) error {
	for _, e := range events {
		line := display.Wrap(r.theme.Render(e))
		if _, err := fmt.Fprintln(r.w, line); err != nil {
			return err
		}
	}
	return nil
}

// Line writes a single styled line.
func (r *Renderer) Line(text string, tag style.Tag) error {
	return r.Events([]style.Event{{Text: text, Tag: tag}})
}

// Title writes a bordered title block.
func (r *Renderer) Title(text string) error {
	border := strings.Repeat("=", len(text)+6)
	for _, line := range []string{border, "===" + text + "===", border} {
		if err := r.Line(line, style.Header); err != nil {
			return err
		}
	}
	return nil
}

// Prompt writes the input prompt without a trailing newline.
func (r *Renderer) Prompt() error {
	_, err := r.w.Write([]byte("> "))
	return err
}
