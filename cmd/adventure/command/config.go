package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-errors"
)

type Config struct {
	TickInterval string           `json:"tick_interval"`
	Game         GameConfig       `json:"game"`
	Listeners    []ListenerConfig `json:"listeners"`
	Web          WebConfig        `json:"web"`
	Themes       ThemeConfig      `json:"themes"`
}

func (c *Config) Validate() error {
	el := errors.NewErrorList()

	if c.TickInterval != "" {
		d, err := time.ParseDuration(c.TickInterval)
		if err != nil {
			el.Add(fmt.Errorf("parsing tick_interval: %w", err))
		} else if d < time.Second {
			el.Add(fmt.Errorf("tick_interval must be at least 1 second"))
		}
	}

	el.Add(c.Game.Validate())

	for i, l := range c.Listeners {
		err := l.Validate()
		if err != nil {
			el.Add(fmt.Errorf("listener %d: %w", i, err))
		}
	}

	el.Add(c.Web.Validate())
	el.Add(c.Themes.Validate())

	return el.Err()
}

func (c *Config) tickLength() time.Duration {
	if c.TickInterval == "" {
		return 0
	}
	d, err := time.ParseDuration(c.TickInterval)
	if err != nil {
		return 0
	}
	return d
}
