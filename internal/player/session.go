package player

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pixil98/go-adventure/internal"
	"github.com/pixil98/go-adventure/internal/commands"
	"github.com/pixil98/go-adventure/internal/content"
	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-adventure/internal/style"
)

// runner binds one connection to one freshly built world.
type runner struct {
	conn     io.ReadWriter
	renderer *Renderer
	session  *game.Session
	disp     *commands.Dispatcher
}

func newRunner(conn io.ReadWriter, area string, theme *style.Theme) (*runner, error) {
	s := game.NewSession()
	d := commands.NewDispatcher()

	if err := commands.RegisterBuiltins(d); err != nil {
		return nil, fmt.Errorf("registering commands: %w", err)
	}

	start, err := content.Build(area, s, d)
	if err != nil {
		return nil, fmt.Errorf("building area: %w", err)
	}
	s.State.CurrentRoom = start

	return &runner{
		conn:     conn,
		renderer: NewRenderer(conn, theme),
		session:  s,
		disp:     d,
	}, nil
}

// Play runs the intro and then the synchronous command loop until the
// player quits, the connection drops, or the context is canceled.
func (r *runner) Play(ctx context.Context) error {
	if err := r.intro(); err != nil {
		return err
	}

	// Opening room description
	r.session.State.CurrentRoom.Describe(r.session)
	if err := r.renderer.Events(r.session.Flush()); err != nil {
		return err
	}

	inputChan := make(chan string)
	inputErrChan := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(r.conn)
		for scanner.Scan() {
			inputChan <- scanner.Text()
		}
		inputErrChan <- scanner.Err()
		close(inputChan)
	}()

	for {
		if err := r.renderer.Prompt(); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()

		case line, ok := <-inputChan:
			if !ok {
				select {
				case err := <-inputErrChan:
					return err
				default:
					return nil
				}
			}

			line = strings.TrimSpace(line)
			if isQuit(line) {
				return r.renderer.Line("Goodbye!", style.Success)
			}

			if err := r.disp.Dispatch(r.session, line); err != nil {
				return fmt.Errorf("command execution failed: %w", err)
			}
			if err := r.renderer.Events(r.session.Flush()); err != nil {
				return err
			}
		}
	}
}

func isQuit(line string) bool {
	switch strings.ToLower(line) {
	case "quit", "exit":
		return true
	}
	return false
}

func (r *runner) intro() error {
	if err := r.renderer.Title("ALPHA CLOUDPLEX"); err != nil {
		return err
	}

	lines := []struct {
		text string
		tag  style.Tag
	}{
		{"Welcome to the Alpha Cloudplex Text Adventure!", style.System},
		{"A text-based adventure where humans and AI interact on equal ground.", style.RoomDesc},
		{"Type 'help' at any time to see available commands.", style.Hint},
	}
	for _, l := range lines {
		if err := r.renderer.Line(l.text, l.tag); err != nil {
			return err
		}
	}

	if err := r.renderer.Line("What is your name, adventurer?", style.Command); err != nil {
		return err
	}
	name, err := internal.Prompt(r.conn, "> ")
	if err != nil {
		return err
	}
	if normalized := NormalizeName(name); normalized != "" {
		r.session.State.PlayerName = normalized
	}

	return r.renderer.Line(
		fmt.Sprintf("Welcome, %s! Your adventure is about to begin...", r.session.State.PlayerName),
		style.Success)
}
