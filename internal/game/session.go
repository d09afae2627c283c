package game

import (
	"fmt"

	"github.com/pixil98/go-adventure/internal/style"
)

// Session is one player's isolated run of the game: its own world graph
// (built per session by a content builder), inventory, state, and the
// per-turn output buffer. Nothing in a session is shared between
// connections, so turns need no locking; execution within a session is
// strictly sequential.
type Session struct {
	State     *State
	Inventory *Bag

	events []style.Event
}

// NewSession creates a session with empty state and inventory. The caller
// builds a world and enters its starting room before dispatching commands.
func NewSession() *Session {
	return &Session{
		State:     NewState(),
		Inventory: NewBag(),
	}
}

// Say appends a styled output event to the current turn.
func (s *Session) Say(text string, tag style.Tag) {
	s.events = append(s.events, style.Event{Text: text, Tag: tag})
}

// Sayf appends a formatted styled output event to the current turn.
func (s *Session) Sayf(tag style.Tag, format string, args ...any) {
	s.Say(fmt.Sprintf(format, args...), tag)
}

// Flush returns the events buffered since the last flush and clears the
// buffer. Renderers call this once per turn.
func (s *Session) Flush() []style.Event {
	out := s.events
	s.events = nil
	return out
}

// EnterRoom makes the room current and describes it. Used when a session
// starts and by the movement handler.
func (s *Session) EnterRoom(r *Room) {
	s.State.CurrentRoom = r
	r.Describe(s)
}
