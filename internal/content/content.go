package content

import (
	"fmt"

	"github.com/pixil98/go-adventure/internal/commands"
	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-adventure/internal/style"
)

// BuildFunc constructs a fresh copy of an area for one session, registers
// any area verbs on the session's dispatcher, and returns the starting
// room. Sessions never share rooms or items.
type BuildFunc func(s *game.Session, d *commands.Dispatcher) (*game.Room, error)

// Builders returns the playable areas by name.
func Builders() map[string]BuildFunc {
	return map[string]BuildFunc{
		"boardwalk": BuildBoardwalk,
		"museum":    BuildMuseum,
	}
}

// Build constructs the named area for a session.
func Build(area string, s *game.Session, d *commands.Dispatcher) (*game.Room, error) {
	fn, ok := Builders()[area]
	if !ok {
		return nil, fmt.Errorf("unknown area %q", area)
	}
	return fn(s, d)
}

// sayExpanded renders a message template against the session before
// emitting it, so content can reference things like {{ .PlayerName }}.
func sayExpanded(s *game.Session, text string, tag style.Tag) {
	data := struct {
		PlayerName string
		TurnCount  int
	}{
		PlayerName: s.State.PlayerName,
		TurnCount:  s.State.TurnCount,
	}

	out, err := commands.ExpandTemplate(text, data)
	if err != nil {
		// Broken templates are an authoring bug; show the raw text
		out = text
	}
	s.Say(out, tag)
}
