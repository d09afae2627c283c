package game

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestState_Flags(t *testing.T) {
	st := NewState()

	testutil.AssertEqual(t, "unset flag", st.Flag("case_unlocked"), false)

	st.SetFlag("case_unlocked", true)
	testutil.AssertEqual(t, "set flag", st.Flag("case_unlocked"), true)

	st.SetFlag("case_unlocked", false)
	testutil.AssertEqual(t, "cleared flag", st.Flag("case_unlocked"), false)
}

func TestState_Vars(t *testing.T) {
	st := NewState()

	_, ok := st.Var("score")
	testutil.AssertEqual(t, "unset var", ok, false)

	st.SetVar("score", 42)
	v, ok := st.Var("score")
	testutil.AssertEqual(t, "var set", ok, true)
	testutil.AssertEqual(t, "var value", v, any(42))
}

func TestState_TurnCounter(t *testing.T) {
	st := NewState()
	st.IncrementTurn()
	st.IncrementTurn()
	testutil.AssertEqual(t, "turn count", st.TurnCount, 2)
}

func TestState_Reset(t *testing.T) {
	st := NewState()
	st.TurnCount = 10
	st.PlayerName = "Morgan"
	st.CurrentRoom = NewRoom("Hall", "A hall.")
	st.SetFlag("case_unlocked", true)
	st.SetVar("score", 42)

	st.Reset()

	testutil.AssertEqual(t, "turn count", st.TurnCount, 0)
	testutil.AssertEqual(t, "player name", st.PlayerName, "Adventurer")
	testutil.AssertEqual(t, "current room", st.CurrentRoom == nil, true)
	testutil.AssertEqual(t, "flag", st.Flag("case_unlocked"), false)
	_, ok := st.Var("score")
	testutil.AssertEqual(t, "var", ok, false)
}

func TestSession_OutputBuffer(t *testing.T) {
	s := NewSession()
	s.Say("Hello.", "system")
	s.Sayf("hint", "Try %q.", "look")

	events := s.Flush()
	testutil.AssertEqual(t, "event count", len(events), 2)
	testutil.AssertEqual(t, "first text", events[0].Text, "Hello.")
	testutil.AssertEqual(t, "second text", events[1].Text, `Try "look".`)

	testutil.AssertEqual(t, "buffer cleared", len(s.Flush()), 0)
}

func TestSession_EnterRoom(t *testing.T) {
	s := NewSession()
	pier := NewRoom("Pier End", "The end of a pier.")

	s.EnterRoom(pier)

	testutil.AssertEqual(t, "current room", s.State.CurrentRoom, pier)
	testutil.AssertEqual(t, "room described", len(s.Flush()) > 0, true)
}
