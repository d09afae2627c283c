package commands

import (
	"fmt"

	"github.com/pixil98/go-adventure/internal/style"
)

// handleDrop transfers an item from the inventory into the current room.
func handleDrop(ctx *Context) error {
	name := ctx.Arg("item")

	obj := ctx.FindInInventory(name)
	if obj == nil {
		return NewUserError(fmt.Sprintf("You don't have a %s.", name))
	}

	ctx.Session.Inventory.Remove(obj)
	ctx.Room().AddItem(obj)
	ctx.Session.Sayf(style.Success, "You drop the %s.", obj.Name)
	return nil
}
