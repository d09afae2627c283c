package game

import (
	"github.com/google/uuid"

	"github.com/pixil98/go-adventure/internal/style"
)

// UseFunc is a content-supplied callback fired when an item is used. It
// receives the session whose world the item lives in and the target item
// (nil for untargeted use), and reports whether the interaction succeeded.
// Callbacks may freely mutate the world and game state; the engine does not
// deduplicate side effects on repeated use, so one-shot behavior is guarded
// with flags by the content itself.
type UseFunc func(s *Session, target *Item) bool

// Item is an interactable object. Identity is fixed for the session
// lifetime; the description may change as the world reacts, e.g. an
// unlocked case describing itself differently.
type Item struct {
	id          uuid.UUID
	Name        string
	Description string
	Takeable    bool
	Hidden      bool

	useTargeted map[uuid.UUID]UseFunc
	useDefault  UseFunc
}

// NewItem creates a visible, takeable item. Content clears Takeable for
// fixtures like signs and display cases.
func NewItem(name, description string) *Item {
	return &Item{
		id:          uuid.New(),
		Name:        name,
		Description: description,
		Takeable:    true,
	}
}

// Id returns the item's identity.
func (i *Item) Id() uuid.UUID {
	return i.id
}

// OnUse registers the untargeted use callback, replacing any previous one.
func (i *Item) OnUse(fn UseFunc) {
	i.useDefault = fn
}

// OnUseWith registers a callback keyed by the target's identity. Two items
// sharing a display name never collide here; resolution is by identity,
// not name.
func (i *Item) OnUseWith(target *Item, fn UseFunc) {
	if i.useTargeted == nil {
		i.useTargeted = map[uuid.UUID]UseFunc{}
	}
	i.useTargeted[target.id] = fn
}

// Use resolves and fires the item's use callback: an exact identity match
// for the target first, then the untargeted callback regardless of target,
// then ErrNotUsable. The bool is the callback's own success result.
func (i *Item) Use(s *Session, target *Item) (bool, error) {
	if target != nil {
		if fn, ok := i.useTargeted[target.id]; ok {
			return fn(s, target), nil
		}
	}
	if i.useDefault != nil {
		return i.useDefault(s, target), nil
	}
	return false, ErrNotUsable
}

// Describe emits the item's description.
func (i *Item) Describe(s *Session) {
	s.Say(i.Description, style.ItemDesc)
}
