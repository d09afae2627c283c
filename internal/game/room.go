package game

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/pixil98/go-adventure/internal/style"
)

// Room is a node in the location graph. Exits are directed, labeled edges
// with an open direction set; reciprocal pairs are an authoring convention,
// not something the engine enforces. Graph topology is fixed after world
// build, but bag membership and descriptions mutate through play.
type Room struct {
	id        uuid.UUID
	Name      string
	shortDesc string
	longDesc  string

	firstVisit bool
	visitCount int

	exits map[string]*Room

	// Items holds whatever is lying in the room.
	Items *Bag
}

// NewRoom creates a room with the given name and short description. The
// long description, shown on the first visit only, is set separately.
func NewRoom(name, description string) *Room {
	return &Room{
		id:         uuid.New(),
		Name:       name,
		shortDesc:  description,
		firstVisit: true,
		exits:      map[string]*Room{},
		Items:      NewBag(),
	}
}

// Id returns the room's identity.
func (r *Room) Id() uuid.UUID {
	return r.id
}

// SetLongDescription sets the text rendered on the room's first visit.
func (r *Room) SetLongDescription(text string) {
	r.longDesc = text
}

// ShortDescription returns the description used after the first visit.
func (r *Room) ShortDescription() string {
	return r.shortDesc
}

// LongDescription returns the first-visit description.
func (r *Room) LongDescription() string {
	return r.longDesc
}

// FirstVisit reports whether the room has yet to be described.
func (r *Room) FirstVisit() bool {
	return r.firstVisit
}

// VisitCount returns how many times the room has been described.
func (r *Room) VisitCount() int {
	return r.visitCount
}

// Connect adds a directed exit. Declaring the reciprocal edge is up to the
// world builder.
func (r *Room) Connect(direction string, to *Room) {
	r.exits[strings.ToLower(direction)] = to
}

// Exit returns the room in the given direction.
func (r *Room) Exit(direction string) (*Room, bool) {
	to, ok := r.exits[strings.ToLower(direction)]
	return to, ok
}

// Exits returns the room's exit directions in sorted order.
func (r *Room) Exits() []string {
	dirs := make([]string, 0, len(r.exits))
	for d := range r.exits {
		dirs = append(dirs, d)
	}
	sort.Strings(dirs)
	return dirs
}

// AddItem places an item in the room.
func (r *Room) AddItem(it *Item) {
	r.Items.Add(it)
}

// RemoveItem removes an item from the room by identity. Removing an item
// that isn't there is a no-op.
func (r *Room) RemoveItem(it *Item) {
	r.Items.Remove(it)
}

// AddContent appends narrative text to both description variants. Content
// uses this to splice in newly revealed passages after an event.
func (r *Room) AddContent(text string) {
	if r.longDesc != "" {
		r.longDesc += "\n" + text
	}
	r.shortDesc += "\n" + text
}

// Describe emits the room rendering: name header, the long description on
// the first render only, visible items, and exits. The first-visit flag
// flips exactly once, on the first render.
func (r *Room) Describe(s *Session) {
	r.visitCount++

	if r.Name != "" {
		s.Say(r.Name, style.RoomName)
		s.Say(strings.Repeat("=", len(r.Name)), style.RoomName)
	}

	if r.firstVisit && r.longDesc != "" {
		s.Say(r.longDesc, style.RoomDesc)
	} else {
		s.Say(r.shortDesc, style.RoomDesc)
	}
	r.firstVisit = false

	var visible []*Item
	for _, it := range r.Items.Items() {
		if !it.Hidden {
			visible = append(visible, it)
		}
	}
	if len(visible) > 0 {
		s.Say("", style.RoomDesc)
		s.Say("You see:", style.RoomDesc)
		for _, it := range visible {
			s.Say("  "+it.Name, style.ItemName)
		}
	}

	if dirs := r.Exits(); len(dirs) > 0 {
		s.Say("", style.RoomDesc)
		s.Say("Exits: "+strings.Join(dirs, ", "), style.RoomDesc)
	}
}

// Move resolves one step through the exit graph. It is a pure lookup:
// repeated calls with an unchanged graph give the same answer, and it is
// the caller's job to update the session's current room, visit bookkeeping,
// and the turn counter on success.
func Move(from *Room, direction string) (*Room, error) {
	if to, ok := from.Exit(direction); ok {
		return to, nil
	}
	return nil, ErrNoExit
}
