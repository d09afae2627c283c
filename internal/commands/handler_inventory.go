package commands

import (
	"github.com/pixil98/go-adventure/internal/style"
)

// handleInventory lists what the player is carrying.
func handleInventory(ctx *Context) error {
	items := ctx.Session.Inventory.Items()
	if len(items) == 0 {
		ctx.Session.Say("You're not carrying anything.", style.Hint)
		return nil
	}

	ctx.Session.Say("You're carrying:", style.Command)
	for _, it := range items {
		ctx.Session.Say("  "+it.Name, style.ItemName)
	}
	return nil
}
