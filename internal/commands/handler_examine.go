package commands

import "fmt"

// handleExamine describes an item in the standard referent scope, the
// current room first and then the inventory.
func handleExamine(ctx *Context) error {
	name := ctx.Arg("item")

	obj := ctx.FindInScope(name)
	if obj == nil {
		return NewUserError(fmt.Sprintf("You don't see a %s here.", name))
	}

	obj.Describe(ctx.Session)
	return nil
}
