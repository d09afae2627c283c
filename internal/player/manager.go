package player

import (
	"context"
	"io"
	"strings"

	"github.com/pixil98/go-log"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pixil98/go-adventure/internal/style"
)

// Manager owns interactive connections. Each accepted connection gets its
// own world, dispatcher, and session; nothing is shared between players.
type Manager struct {
	area  string
	theme *style.Theme
}

func NewManager(area string, theme *style.Theme) *Manager {
	return &Manager{
		area:  area,
		theme: theme,
	}
}

// Start keeps the manager alive as a service worker until shutdown.
func (m *Manager) Start(ctx context.Context) error {
	<-ctx.Done()
	return nil
}

// RunSession drives one full session on a connection, from intro to quit.
func (m *Manager) RunSession(ctx context.Context, conn io.ReadWriter) error {
	run, err := newRunner(conn, m.area, m.theme)
	if err != nil {
		return err
	}

	log.GetLogger(ctx).Infof("starting session in area %q", m.area)
	return run.Play(ctx)
}

var nameCaser = cases.Title(language.English)

// NormalizeName turns raw name input into a presentable player name.
// Blank input returns "", letting the session keep its default name.
func NormalizeName(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return ""
	}
	return nameCaser.String(trimmed)
}
