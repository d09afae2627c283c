package game

const defaultPlayerName = "Adventurer"

// State is the mutable per-session game state threaded through every
// command handler: turn counter, flags, variables, current room, and the
// player's name. Handlers never read or write state outside the world
// model and this struct.
type State struct {
	TurnCount   int
	CurrentRoom *Room
	PlayerName  string

	flags map[string]bool
	vars  map[string]any
}

// NewState creates a state with construction defaults.
func NewState() *State {
	return &State{
		PlayerName: defaultPlayerName,
		flags:      map[string]bool{},
		vars:       map[string]any{},
	}
}

// SetFlag sets a named boolean flag.
func (st *State) SetFlag(name string, v bool) {
	st.flags[name] = v
}

// Flag returns a named flag, false when unset.
func (st *State) Flag(name string) bool {
	return st.flags[name]
}

// SetVar sets a named variable.
func (st *State) SetVar(name string, v any) {
	st.vars[name] = v
}

// Var returns a named variable and whether it is set.
func (st *State) Var(name string) (any, bool) {
	v, ok := st.vars[name]
	return v, ok
}

// IncrementTurn advances the turn counter. Movement is the only built-in
// action that calls this; other verbs are free actions.
func (st *State) IncrementTurn() {
	st.TurnCount++
}

// Reset restores every field to its construction default. Sessions are
// reset between runs rather than shared.
func (st *State) Reset() {
	st.TurnCount = 0
	st.CurrentRoom = nil
	st.PlayerName = defaultPlayerName
	st.flags = map[string]bool{}
	st.vars = map[string]any{}
}
