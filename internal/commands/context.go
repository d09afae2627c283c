package commands

import (
	"github.com/pixil98/go-adventure/internal/game"
)

// Context carries everything a handler needs for one dispatched command:
// the session it runs in and the bound arguments (placeholder captures
// merged over fixed registration params).
type Context struct {
	Session *game.Session
	Args    map[string]string
}

// Arg returns a bound argument by placeholder name (lowercased), or "".
func (c *Context) Arg(name string) string {
	return c.Args[name]
}

// Room returns the session's current room.
func (c *Context) Room() *game.Room {
	return c.Session.State.CurrentRoom
}

// FindInRoom looks an item up by name in the current room.
func (c *Context) FindInRoom(name string) *game.Item {
	room := c.Room()
	if room == nil {
		return nil
	}
	return room.Items.FindByName(name)
}

// FindInInventory looks an item up by name in the player's inventory.
func (c *Context) FindInInventory(name string) *game.Item {
	return c.Session.Inventory.FindByName(name)
}

// FindInScope looks an item up in the standard referent scope: the current
// room first, then the inventory.
func (c *Context) FindInScope(name string) *game.Item {
	if it := c.FindInRoom(name); it != nil {
		return it
	}
	return c.FindInInventory(name)
}
