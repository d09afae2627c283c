package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-errors"

	"github.com/pixil98/go-adventure/internal/web"
)

type WebConfig struct {
	Enabled    bool   `json:"enabled"`
	Port       uint16 `json:"port"`
	SessionTTL string `json:"session_ttl,omitempty"`
}

func (c *WebConfig) Validate() error {
	el := errors.NewErrorList()

	if !c.Enabled {
		return el.Err()
	}

	if c.Port == 0 {
		el.Add(fmt.Errorf("port must be set to a positive integer"))
	}

	if c.SessionTTL != "" {
		if _, err := time.ParseDuration(c.SessionTTL); err != nil {
			el.Add(fmt.Errorf("parsing session_ttl: %w", err))
		}
	}

	return el.Err()
}

func (c *WebConfig) sessionTTL() time.Duration {
	if c.SessionTTL == "" {
		return web.DefaultSessionTTL
	}
	d, err := time.ParseDuration(c.SessionTTL)
	if err != nil {
		return web.DefaultSessionTTL
	}
	return d
}

func (c *WebConfig) BuildServer(area string) (*web.Server, *web.SessionStore) {
	store := web.NewSessionStore(area, c.sessionTTL())
	return web.NewServer(c.Port, store), store
}
