package commands

// handleLook describes the current room again. Looking is a free action;
// it does not advance the turn counter.
func handleLook(ctx *Context) error {
	ctx.Room().Describe(ctx.Session)
	return nil
}
