package driver

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/pixil98/go-testutil"
)

type countingManager struct {
	ticks int
	err   error
}

func (m *countingManager) Tick(ctx context.Context) error {
	m.ticks++
	return m.err
}

func TestGameDriver_TickFansOut(t *testing.T) {
	m1 := &countingManager{}
	m2 := &countingManager{}
	d := NewGameDriver([]Manager{m1, m2})

	if err := d.Tick(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "m1 ticks", m1.ticks, 1)
	testutil.AssertEqual(t, "m2 ticks", m2.ticks, 1)
}

func TestGameDriver_TickError(t *testing.T) {
	m1 := &countingManager{err: fmt.Errorf("boom")}
	m2 := &countingManager{}
	d := NewGameDriver([]Manager{m1, m2})

	if err := d.Tick(context.Background()); err == nil {
		t.Error("expected error")
	}
	testutil.AssertEqual(t, "m2 not reached", m2.ticks, 0)
}

func TestGameDriver_StartStopsOnCancel(t *testing.T) {
	m := &countingManager{}
	d := NewGameDriver([]Manager{m}, WithTickLength(time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- d.Start(ctx) }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("driver did not stop")
	}

	if m.ticks == 0 {
		t.Error("expected at least one tick")
	}
}
