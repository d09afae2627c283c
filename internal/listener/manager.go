package listener

import (
	"context"
	"io"

	"github.com/pixil98/go-log"

	"github.com/pixil98/go-adventure/internal/player"
)

// ConnectionManager hands accepted connections to the player manager.
type ConnectionManager struct {
	pm *player.Manager
}

func NewConnectionManager(pm *player.Manager) *ConnectionManager {
	return &ConnectionManager{
		pm: pm,
	}
}

func (m *ConnectionManager) AcceptConnection(ctx context.Context, conn io.ReadWriter) {
	if err := m.pm.RunSession(ctx, conn); err != nil {
		log.GetLogger(ctx).Warnf("player session: %s", err)
	}
}
