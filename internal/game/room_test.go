package game

import (
	"strings"
	"testing"

	"github.com/pixil98/go-testutil"

	"github.com/pixil98/go-adventure/internal/style"
)

func TestRoom_Exits(t *testing.T) {
	hall := NewRoom("Hall", "A hall.")
	gallery := NewRoom("Gallery", "A gallery.")

	hall.Connect("north", gallery)
	gallery.Connect("south", hall)

	to, ok := hall.Exit("north")
	testutil.AssertEqual(t, "exit exists", ok, true)
	testutil.AssertEqual(t, "exit target", to, gallery)

	_, ok = hall.Exit("west")
	testutil.AssertEqual(t, "missing exit", ok, false)

	// Direction labels are an open set.
	attic := NewRoom("Attic", "An attic.")
	hall.Connect("Ladder", attic)
	to, ok = hall.Exit("ladder")
	testutil.AssertEqual(t, "custom direction", ok, true)
	testutil.AssertEqual(t, "custom direction target", to, attic)
}

func TestMove(t *testing.T) {
	hall := NewRoom("Hall", "A hall.")
	gallery := NewRoom("Gallery", "A gallery.")
	hall.Connect("north", gallery)

	to, err := Move(hall, "north")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "destination", to, gallery)

	// Movement is pure: same inputs, same answer.
	again, err := Move(hall, "north")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "repeat destination", again, gallery)

	_, err = Move(hall, "south")
	testutil.AssertEqual(t, "no exit", err, ErrNoExit)
}

func TestRoom_DescribeFirstVisit(t *testing.T) {
	room := NewRoom("Pier End", "The end of a long pier.")
	room.SetLongDescription("You stand at the end of a long wooden pier over the ocean.")

	s := NewSession()

	room.Describe(s)
	first := s.Flush()
	testutil.AssertEqual(t, "first visit flag", room.FirstVisit(), false)
	testutil.AssertEqual(t, "visit count", room.VisitCount(), 1)
	if !containsEvent(first, room.LongDescription(), style.RoomDesc) {
		t.Errorf("first describe should use the long description, got %v", first)
	}

	room.Describe(s)
	second := s.Flush()
	testutil.AssertEqual(t, "visit count after second", room.VisitCount(), 2)
	if !containsEvent(second, room.ShortDescription(), style.RoomDesc) {
		t.Errorf("second describe should use the short description, got %v", second)
	}
	if containsEvent(second, room.LongDescription(), style.RoomDesc) {
		t.Errorf("long description should render only once, got %v", second)
	}
}

func TestRoom_DescribeListsItemsAndExits(t *testing.T) {
	room := NewRoom("Gallery", "A gallery.")
	room.Connect("south", NewRoom("Hall", "A hall."))
	room.AddItem(NewItem("compass", "A golden compass."))
	secret := NewItem("badge", "A golden badge.")
	secret.Hidden = true
	room.AddItem(secret)

	s := NewSession()
	room.Describe(s)
	events := s.Flush()

	if !containsEvent(events, "  compass", style.ItemName) {
		t.Errorf("expected compass listing, got %v", events)
	}
	if containsEvent(events, "  badge", style.ItemName) {
		t.Errorf("hidden items must not be listed, got %v", events)
	}
	if !containsEvent(events, "Exits: south", style.RoomDesc) {
		t.Errorf("expected exit listing, got %v", events)
	}
}

func TestRoom_AddContent(t *testing.T) {
	room := NewRoom("Hall", "A hall.")
	room.SetLongDescription("A long hall description.")

	room.AddContent("A hidden staircase has been revealed.")

	if !strings.Contains(room.LongDescription(), "hidden staircase") {
		t.Errorf("long description missing new content: %q", room.LongDescription())
	}
	if !strings.Contains(room.ShortDescription(), "hidden staircase") {
		t.Errorf("short description missing new content: %q", room.ShortDescription())
	}
}

func TestRoom_RemoveItemAbsentIsNoop(t *testing.T) {
	room := NewRoom("Hall", "A hall.")
	key := NewItem("key", "A key.")
	room.AddItem(key)

	other := NewItem("coin", "A coin.")
	room.RemoveItem(other)

	testutil.AssertEqual(t, "item count unchanged", room.Items.Len(), 1)
	testutil.AssertEqual(t, "key still present", room.Items.Contains(key), true)
}

// containsEvent reports whether events holds an exact (text, tag) pair.
func containsEvent(events []style.Event, text string, tag style.Tag) bool {
	for _, e := range events {
		if e.Text == text && e.Tag == tag {
			return true
		}
	}
	return false
}
