package web

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pixil98/go-log"

	"github.com/pixil98/go-adventure/internal/commands"
	"github.com/pixil98/go-adventure/internal/content"
	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-adventure/internal/style"
)

const DefaultSessionTTL = 30 * time.Minute

// webSession pairs one browser with its own world and transcript.
type webSession struct {
	mu sync.Mutex

	session    *game.Session
	disp       *commands.Dispatcher
	transcript []style.Event
	lastActive time.Time
	now        func() time.Time
}

// Submit runs one command and appends its output to the transcript. The
// echoed input line goes in first so the transcript reads like a console.
func (ws *webSession) Submit(line string) error {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	ws.lastActive = ws.now()
	ws.transcript = append(ws.transcript, style.Event{Text: "> " + line, Tag: style.Command})

	if err := ws.disp.Dispatch(ws.session, line); err != nil {
		return err
	}
	ws.transcript = append(ws.transcript, ws.session.Flush()...)
	return nil
}

// Transcript returns a snapshot of the output history.
func (ws *webSession) Transcript() []style.Event {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	out := make([]style.Event, len(ws.transcript))
	copy(out, ws.transcript)
	return out
}

// SessionStore tracks live web sessions by cookie id and expires the idle
// ones from the driver tick.
type SessionStore struct {
	mu sync.Mutex

	area     string
	ttl      time.Duration
	sessions map[uuid.UUID]*webSession

	now func() time.Time
}

func NewSessionStore(area string, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionStore{
		area:     area,
		ttl:      ttl,
		sessions: map[uuid.UUID]*webSession{},
		now:      time.Now,
	}
}

// Area returns the area this store builds worlds from.
func (st *SessionStore) Area() string {
	return st.area
}

// Get returns the session for an id, or nil.
func (st *SessionStore) Get(id uuid.UUID) *webSession {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.sessions[id]
}

// Create builds a fresh world and registers it under a new id.
func (st *SessionStore) Create() (uuid.UUID, *webSession, error) {
	s := game.NewSession()
	d := commands.NewDispatcher()

	if err := commands.RegisterBuiltins(d); err != nil {
		return uuid.Nil, nil, fmt.Errorf("registering commands: %w", err)
	}

	start, err := content.Build(st.area, s, d)
	if err != nil {
		return uuid.Nil, nil, fmt.Errorf("building area: %w", err)
	}

	ws := &webSession{
		session:    s,
		disp:       d,
		lastActive: st.now(),
		now:        st.now,
	}

	// Greeting plus the opening room description
	s.Say("Welcome to Alpha Cloudplex!", style.Header)
	s.Say("A text-based adventure where humans and AI interact on equal ground.", style.System)
	s.Say("Type 'help' at any time to see available commands.", style.Hint)
	s.EnterRoom(start)
	ws.transcript = s.Flush()

	id := uuid.New()
	st.mu.Lock()
	st.sessions[id] = ws
	st.mu.Unlock()

	return id, ws, nil
}

// Drop removes a session.
func (st *SessionStore) Drop(id uuid.UUID) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}

// Len returns the live session count.
func (st *SessionStore) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

// Tick expires sessions idle past the TTL.
func (st *SessionStore) Tick(ctx context.Context) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	cutoff := st.now().Add(-st.ttl)
	for id, ws := range st.sessions {
		ws.mu.Lock()
		idle := ws.lastActive.Before(cutoff)
		ws.mu.Unlock()

		if idle {
			delete(st.sessions, id)
			log.GetLogger(ctx).Infof("expired idle web session %s", id)
		}
	}
	return nil
}
