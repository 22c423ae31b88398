package session

import "git.lost.host/meutraa/dotw/internal/game"

// Cursors tracks, per lane, the next note that has not yet been consumed.
// Lanes are independent; there is no cross-lane ordering.
type Cursors struct {
	lanes [][]*game.Note
	next  []int
}

func NewCursors(lanes [][]*game.Note) *Cursors {
	return &Cursors{
		lanes: lanes,
		next:  make([]int, len(lanes)),
	}
}

func (c *Cursors) NLanes() int {
	return len(c.lanes)
}

// Peek returns the next unconsumed note on a lane without consuming it,
// or nil when the lane is exhausted or unknown.
func (c *Cursors) Peek(lane int) *game.Note {
	if lane < 0 || lane >= len(c.lanes) {
		return nil
	}
	if c.next[lane] >= len(c.lanes[lane]) {
		return nil
	}
	return c.lanes[lane][c.next[lane]]
}

// Advance consumes the lane's current note. Advancing an exhausted lane is
// a no-op, never an error.
func (c *Cursors) Advance(lane int) {
	if lane < 0 || lane >= len(c.lanes) {
		return
	}
	if c.next[lane] < len(c.lanes[lane]) {
		c.next[lane]++
	}
}

// Remaining returns the lane's unconsumed tail. The slice aliases the chart
// timeline and must be treated as read-only.
func (c *Cursors) Remaining(lane int) []*game.Note {
	if lane < 0 || lane >= len(c.lanes) {
		return nil
	}
	return c.lanes[lane][c.next[lane]:]
}

// Exhausted reports whether every lane has been fully consumed.
func (c *Cursors) Exhausted() bool {
	for lane, notes := range c.lanes {
		if c.next[lane] < len(notes) {
			return false
		}
	}
	return true
}
