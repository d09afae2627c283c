package command

import (
	"fmt"

	"github.com/pixil98/go-service"

	"github.com/pixil98/go-adventure/internal/driver"
	"github.com/pixil98/go-adventure/internal/listener"
	"github.com/pixil98/go-adventure/internal/player"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	// Resolve the presentation theme
	theme, err := cfg.Themes.BuildTheme(cfg.Game.theme())
	if err != nil {
		return nil, fmt.Errorf("resolving theme: %w", err)
	}

	// Player manager owns interactive sessions
	pm := player.NewManager(cfg.Game.area(), theme)
	cm := listener.NewConnectionManager(pm)

	// Create listeners
	listeners := make(service.WorkerList, len(cfg.Listeners))
	for i, l := range cfg.Listeners {
		lst, err := l.BuildListener(cm)
		if err != nil {
			return nil, fmt.Errorf("creating listener %d: %w", i, err)
		}
		listeners[fmt.Sprintf("listener-%d", i)] = lst
	}

	workers := service.WorkerList{
		"player-manager": pm,
		"listeners":      &listeners,
	}

	// Web front-end and the session janitor that expires its idle worlds
	var managers []driver.Manager
	if cfg.Web.Enabled {
		server, store := cfg.Web.BuildServer(cfg.Game.area())
		workers["web"] = server
		managers = append(managers, store)
	}

	if len(managers) > 0 {
		var opts []driver.GameDriverOpt
		if d := cfg.tickLength(); d > 0 {
			opts = append(opts, driver.WithTickLength(d))
		}
		workers["driver"] = driver.NewGameDriver(managers, opts...)
	}

	return workers, nil
}
