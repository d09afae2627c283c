package commands

import "fmt"

// RegisterBuiltins wires the fixed verb set into a dispatcher. Templates
// are registered most-specific first where one form is a prefix of
// another, since the dispatcher takes the first full match. Content
// registers additional verbs through the same Register primitive.
func RegisterBuiltins(d *Dispatcher) error {
	regs := []struct {
		pattern string
		fn      HandlerFunc
		opts    []RegisterOption
	}{
		{pattern: "look", fn: handleLook},
		{pattern: "inventory", fn: handleInventory},
		{pattern: "i", fn: handleInventory},

		{pattern: "take ITEM", fn: handleTake},
		{pattern: "get ITEM", fn: handleTake},
		{pattern: "pick up ITEM", fn: handleTake},
		{pattern: "drop ITEM", fn: handleDrop},

		{pattern: "examine ITEM", fn: handleExamine},
		{pattern: "look at ITEM", fn: handleExamine},
		{pattern: "inspect ITEM", fn: handleExamine},

		{pattern: "use ITEM on TARGET", fn: handleUseOn},
		{pattern: "use ITEM with TARGET", fn: handleUseOn},
		{pattern: "use ITEM", fn: handleUse},

		{pattern: "north", fn: handleGo, opts: []RegisterOption{WithParam("direction", "north")}},
		{pattern: "south", fn: handleGo, opts: []RegisterOption{WithParam("direction", "south")}},
		{pattern: "east", fn: handleGo, opts: []RegisterOption{WithParam("direction", "east")}},
		{pattern: "west", fn: handleGo, opts: []RegisterOption{WithParam("direction", "west")}},
		{pattern: "up", fn: handleGo, opts: []RegisterOption{WithParam("direction", "up")}},
		{pattern: "down", fn: handleGo, opts: []RegisterOption{WithParam("direction", "down")}},
		{pattern: "n", fn: handleGo, opts: []RegisterOption{WithParam("direction", "north")}},
		{pattern: "s", fn: handleGo, opts: []RegisterOption{WithParam("direction", "south")}},
		{pattern: "e", fn: handleGo, opts: []RegisterOption{WithParam("direction", "east")}},
		{pattern: "w", fn: handleGo, opts: []RegisterOption{WithParam("direction", "west")}},
		{pattern: "u", fn: handleGo, opts: []RegisterOption{WithParam("direction", "up")}},
		{pattern: "d", fn: handleGo, opts: []RegisterOption{WithParam("direction", "down")}},

		{pattern: "go DIRECTION", fn: handleGoDirection},
		{pattern: "move DIRECTION", fn: handleGoDirection},
		{pattern: "walk DIRECTION", fn: handleGoDirection},

		{pattern: "help", fn: handleHelp},
	}

	for _, r := range regs {
		if err := d.Register(r.pattern, r.fn, r.opts...); err != nil {
			return fmt.Errorf("registering builtin %q: %w", r.pattern, err)
		}
	}
	return nil
}
