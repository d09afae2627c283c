package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pixil98/go-adventure/internal/game"
)

// directionAliases normalizes the spellings accepted by "go DIRECTION"
// style commands. Bare compass literals are registered as their own
// templates with a fixed direction param instead.
var directionAliases = map[string]string{
	"north": "north", "south": "south", "east": "east", "west": "west",
	"up": "up", "down": "down",
	"n": "north", "s": "south", "e": "east", "w": "west",
	"u": "up", "d": "down",
}

// handleGo moves the player through an exit. Movement is the only built-in
// that advances the turn counter; a missing exit leaves the current room
// and the counter untouched.
func handleGo(ctx *Context) error {
	direction := ctx.Arg("direction")

	to, err := game.Move(ctx.Room(), direction)
	if errors.Is(err, game.ErrNoExit) {
		return NewUserError(fmt.Sprintf("You can't go %s.", direction))
	}
	if err != nil {
		return err
	}

	ctx.Session.EnterRoom(to)
	ctx.Session.State.IncrementTurn()
	return nil
}

// handleGoDirection normalizes a captured direction ("go n", "walk west")
// before delegating to handleGo.
func handleGoDirection(ctx *Context) error {
	raw := strings.ToLower(ctx.Arg("direction"))

	direction, ok := directionAliases[raw]
	if !ok {
		return NewUserError(fmt.Sprintf("I don't understand which direction '%s' is.", raw))
	}

	ctx.Args["direction"] = direction
	return handleGo(ctx)
}
