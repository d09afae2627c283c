package commands

import (
	"fmt"

	"github.com/pixil98/go-adventure/internal/style"
)

// handleTake transfers an item from the current room's bag into the
// inventory. Ownership moves; nothing is copied.
func handleTake(ctx *Context) error {
	name := ctx.Arg("item")

	obj := ctx.FindInRoom(name)
	if obj == nil {
		return NewUserError(fmt.Sprintf("There's no %s here.", name))
	}

	if !obj.Takeable {
		return NewUserError(fmt.Sprintf("You can't take the %s.", name))
	}

	ctx.Room().RemoveItem(obj)
	ctx.Session.Inventory.Add(obj)
	ctx.Session.Sayf(style.Success, "You take the %s.", obj.Name)
	return nil
}
