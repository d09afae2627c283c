package style

// Tag labels the presentation style of a line of game output. The engine
// only tags text; renderers (terminal colorizer, web transcript) decide what
// each tag looks like.
type Tag string

const (
	RoomName Tag = "room_name"
	RoomDesc Tag = "room_desc"
	ItemName Tag = "item_name"
	ItemDesc Tag = "item_desc"
	Command  Tag = "command"
	Error    Tag = "error"
	Success  Tag = "success"
	Hint     Tag = "hint"
	Speech   Tag = "speech"
	System   Tag = "system"
	Header   Tag = "header"
)

// Tags returns every tag the engine emits.
func Tags() []Tag {
	return []Tag{
		RoomName, RoomDesc, ItemName, ItemDesc, Command,
		Error, Success, Hint, Speech, System, Header,
	}
}

// Event is one styled line of game output. Each dispatched command produces
// an ordered sequence of events, consumed by a renderer after the turn.
type Event struct {
	Text string
	Tag  Tag
}
