package command

import (
	"fmt"

	"github.com/pixil98/go-errors"

	"github.com/pixil98/go-adventure/internal/content"
)

const (
	defaultArea  = "boardwalk"
	defaultTheme = "default"
)

type GameConfig struct {
	Area  string `json:"area"`
	Theme string `json:"theme"`
}

func (c *GameConfig) Validate() error {
	el := errors.NewErrorList()

	if _, ok := content.Builders()[c.area()]; !ok {
		el.Add(fmt.Errorf("unknown area %q", c.area()))
	}

	return el.Err()
}

func (c *GameConfig) area() string {
	if c.Area == "" {
		return defaultArea
	}
	return c.Area
}

func (c *GameConfig) theme() string {
	if c.Theme == "" {
		return defaultTheme
	}
	return c.Theme
}
