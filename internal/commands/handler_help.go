package commands

import (
	"fmt"

	"github.com/pixil98/go-adventure/internal/style"
)

// helpEntries is the player-facing command summary. Content-registered
// verbs are discoverable in the world itself, not listed here.
var helpEntries = []struct {
	cmd  string
	desc string
}{
	{"look", "Look around the current location"},
	{"go [direction]", "Move in a direction (north, south, east, west, etc.)"},
	{"take [item]", "Pick up an item"},
	{"drop [item]", "Drop an item from your inventory"},
	{"inventory", "View your inventory (shortcut: 'i')"},
	{"examine [item]", "Look at an item in detail"},
	{"use [item]", "Use an item"},
	{"use [item] on/with [target]", "Use an item on a target"},
	{"help", "Show this help message"},
	{"quit", "Exit the game"},
}

// handleHelp prints the command summary.
func handleHelp(ctx *Context) error {
	ctx.Session.Say("AVAILABLE COMMANDS", style.Header)
	for _, e := range helpEntries {
		ctx.Session.Say(fmt.Sprintf("%s: %s", e.cmd, e.desc), style.Command)
	}
	return nil
}
