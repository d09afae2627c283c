package commands

import (
	"errors"
	"fmt"

	"github.com/pixil98/go-adventure/internal/game"
)

// handleUse fires an inventory item's untargeted callback.
func handleUse(ctx *Context) error {
	name := ctx.Arg("item")

	obj := ctx.FindInInventory(name)
	if obj == nil {
		return NewUserError(fmt.Sprintf("You don't have a %s.", name))
	}

	_, err := obj.Use(ctx.Session, nil)
	if errors.Is(err, game.ErrNotUsable) {
		return NewUserError(fmt.Sprintf("You're not sure how to use the %s.", obj.Name))
	}
	return err
}

// handleUseOn fires an inventory item's callback against a target resolved
// from the current room or the inventory. Resolution is by identity inside
// the item's callback table; here we only resolve the names.
func handleUseOn(ctx *Context) error {
	itemName := ctx.Arg("item")
	targetName := ctx.Arg("target")

	obj := ctx.FindInInventory(itemName)
	if obj == nil {
		return NewUserError(fmt.Sprintf("You don't have a %s.", itemName))
	}

	target := ctx.FindInScope(targetName)
	if target == nil {
		return NewUserError(fmt.Sprintf("You don't see a %s here.", targetName))
	}

	_, err := obj.Use(ctx.Session, target)
	if errors.Is(err, game.ErrNotUsable) {
		return NewUserError(fmt.Sprintf("You're not sure how to use the %s.", obj.Name))
	}
	return err
}
