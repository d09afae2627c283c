package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-adventure/internal/style"
)

// HandlerFunc is the signature for command handlers. Handlers emit styled
// events through the context's session and return *UserError for anything
// the player should be told; other errors are system failures.
type HandlerFunc func(ctx *Context) error

type registration struct {
	tmpl   *Template
	fn     HandlerFunc
	params map[string]string
}

// Dispatcher matches input lines against registered templates. Templates
// are scanned in registration order and the first full match wins, so
// more specific forms ("use ITEM on TARGET") are registered before their
// prefixes ("use ITEM").
type Dispatcher struct {
	registrations []*registration
}

// NewDispatcher creates an empty dispatcher. Built-ins and content verbs
// are registered through the same Register primitive.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// RegisterOption customizes a single registration.
type RegisterOption func(*registration)

// WithParam binds a fixed argument passed to the handler on every match.
// Alias templates use this to share one handler, e.g. each compass literal
// carrying its own direction.
func WithParam(name, value string) RegisterOption {
	return func(r *registration) {
		r.params[name] = value
	}
}

// Register compiles a pattern and appends it to the scan order.
func (d *Dispatcher) Register(pattern string, fn HandlerFunc, opts ...RegisterOption) error {
	if fn == nil {
		return fmt.Errorf("pattern %q: handler cannot be nil", pattern)
	}

	tmpl, err := CompileTemplate(pattern)
	if err != nil {
		return fmt.Errorf("compiling pattern: %w", err)
	}

	reg := &registration{
		tmpl:   tmpl,
		fn:     fn,
		params: map[string]string{},
	}
	for _, opt := range opts {
		opt(reg)
	}

	d.registrations = append(d.registrations, reg)
	return nil
}

// Dispatch runs one input line against the session. Blank input is a
// no-op. When no template matches, an unrecognized-command event is
// emitted and nothing mutates. A *UserError from the handler renders as an
// error-styled event; any other error propagates as a system failure.
func (d *Dispatcher) Dispatch(s *game.Session, line string) error {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return nil
	}

	for _, reg := range d.registrations {
		captures, ok := reg.tmpl.Match(trimmed)
		if !ok {
			continue
		}

		args := make(map[string]string, len(reg.params)+len(captures))
		for k, v := range reg.params {
			args[k] = v
		}
		for k, v := range captures {
			args[k] = v
		}

		err := reg.fn(&Context{Session: s, Args: args})
		var uerr *UserError
		if errors.As(err, &uerr) {
			s.Say(uerr.Message, style.Error)
			return nil
		}
		return err
	}

	s.Sayf(style.Error, "I don't understand %q.", trimmed)
	return nil
}
