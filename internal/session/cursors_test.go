package session

import (
	"testing"

	"git.lost.host/meutraa/dotw/internal/game"
)

func lanesFixture() [][]*game.Note {
	return [][]*game.Note{
		{
			{Lane: 0, TimeMs: 100},
			{Lane: 0, TimeMs: 200},
		},
		{},
		{
			{Lane: 2, TimeMs: 150},
		},
	}
}

func TestCursors(t *testing.T) {
	c := NewCursors(lanesFixture())

	if c.Exhausted() {
		t.Log("cursors exhausted before any advance")
		t.Fail()
	}

	n := c.Peek(0)
	if n == nil || n.TimeMs != 100 {
		t.Log("peek lane 0", n)
		t.Fail()
	}
	// Peek must not consume
	if m := c.Peek(0); m != n {
		t.Log("peek mutated state")
		t.Fail()
	}

	c.Advance(0)
	if m := c.Peek(0); m == nil || m.TimeMs != 200 {
		t.Log("peek after advance", m)
		t.Fail()
	}

	if c.Peek(1) != nil {
		t.Log("empty lane peeked a note")
		t.Fail()
	}
	// Advancing an exhausted lane is a no-op, never an error
	c.Advance(1)
	c.Advance(1)

	if c.Peek(-1) != nil || c.Peek(99) != nil {
		t.Log("out of range lane peeked a note")
		t.Fail()
	}
	c.Advance(-1)
	c.Advance(99)

	c.Advance(0)
	c.Advance(2)
	if !c.Exhausted() {
		t.Log("cursors not exhausted after consuming every note")
		t.Fail()
	}

	// Advance past the end stays a no-op
	c.Advance(0)
	if c.Peek(0) != nil {
		t.Log("peek returned a note on an exhausted lane")
		t.Fail()
	}
}

func TestCursorsRemaining(t *testing.T) {
	c := NewCursors(lanesFixture())
	if len(c.Remaining(0)) != 2 {
		t.Log("remaining", c.Remaining(0))
		t.Fail()
	}
	c.Advance(0)
	rem := c.Remaining(0)
	if len(rem) != 1 || rem[0].TimeMs != 200 {
		t.Log("remaining after advance", rem)
		t.Fail()
	}
	if c.Remaining(99) != nil {
		t.Log("remaining on unknown lane")
		t.Fail()
	}
}
