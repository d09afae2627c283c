package web

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/pixil98/go-log"

	"github.com/pixil98/go-adventure/internal/display"
)

const sessionCookie = "adventure_session"

// Server is the browser front-end: a transcript page and a command form,
// with one isolated game world per session cookie.
type Server struct {
	port  uint16
	store *SessionStore
}

func NewServer(port uint16, store *SessionStore) *Server {
	return &Server{
		port:  port,
		store: store,
	}
}

func (s *Server) Start(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/command", s.handleCommand)
	mux.HandleFunc("/new", s.handleNew)

	svr := &http.Server{
		Addr:    fmt.Sprintf(":%d", s.port),
		Handler: mux,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	log.GetLogger(ctx).Infof("listening for http on port %d", s.port)

	errChan := make(chan error, 1)
	go func() {
		errChan <- svr.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := svr.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down http server: %w", err)
		}
		return nil
	case err := <-errChan:
		if err == http.ErrServerClosed {
			return nil
		}
		return fmt.Errorf("serving http on port %d: %w", s.port, err)
	}
}

// session finds the browser's session from its cookie, creating one (and
// setting the cookie) when absent or expired.
func (s *Server) session(w http.ResponseWriter, r *http.Request) (*webSession, error) {
	if c, err := r.Cookie(sessionCookie); err == nil {
		if id, err := uuid.Parse(c.Value); err == nil {
			if ws := s.store.Get(id); ws != nil {
				return ws, nil
			}
		}
	}

	id, ws, err := s.store.Create()
	if err != nil {
		return nil, err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id.String(),
		Path:     "/",
		HttpOnly: true,
	})
	return ws, nil
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	ws, err := s.session(w, r)
	if err != nil {
		log.GetLogger(r.Context()).Errorf("creating web session: %s", err)
		http.Error(w, "failed to start session", http.StatusInternalServerError)
		return
	}

	if err := renderPage(w, display.Capitalize(s.store.Area()), ws.Transcript()); err != nil {
		log.GetLogger(r.Context()).Errorf("rendering page: %s", err)
	}
}

func (s *Server) handleCommand(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ws, err := s.session(w, r)
	if err != nil {
		log.GetLogger(r.Context()).Errorf("creating web session: %s", err)
		http.Error(w, "failed to start session", http.StatusInternalServerError)
		return
	}

	line := r.FormValue("command")
	if err := ws.Submit(line); err != nil {
		log.GetLogger(r.Context()).Errorf("dispatching command: %s", err)
		http.Error(w, "command failed", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleNew(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(sessionCookie); err == nil {
		if id, err := uuid.Parse(c.Value); err == nil {
			s.store.Drop(id)
		}
	}
	http.SetCookie(w, &http.Cookie{
		Name:   sessionCookie,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
