package game

import "errors"

var (
	// ErrNoExit is returned by Move when a room has no exit in the
	// requested direction.
	ErrNoExit = errors.New("no exit in that direction")

	// ErrNotUsable is returned by Item.Use when neither a targeted nor an
	// untargeted callback is registered.
	ErrNotUsable = errors.New("item is not usable")
)
