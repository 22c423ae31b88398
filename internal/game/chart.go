package game

import "math"

type Chart struct {
	Lanes      [][]*Note // one time-sorted timeline per lane
	NoteCount  int
	DurationMs int64
	Difficulty Difficulty
}

type Difficulty struct {
	Name    string
	Level   string
	Section string // raw note section, used to fingerprint the chart
	NLanes  int
}

// ScaleRate rescales note times and the duration for a playback rate.
// Called once at load, before the chart is handed to a session.
func (c *Chart) ScaleRate(rate float64) {
	if rate <= 0 || rate == 1.0 {
		return
	}
	for _, lane := range c.Lanes {
		for _, n := range lane {
			n.TimeMs = int64(math.Round(float64(n.TimeMs) / rate))
		}
	}
	c.DurationMs = int64(math.Round(float64(c.DurationMs) / rate))
}

// Shift moves every note by the global offset. Called once at load.
func (c *Chart) Shift(ms int64) {
	if ms == 0 {
		return
	}
	for _, lane := range c.Lanes {
		for _, n := range lane {
			n.TimeMs += ms
		}
	}
}

// LastNoteMs returns the target time of the latest note on any lane,
// or 0 for an empty chart.
func (c *Chart) LastNoteMs() int64 {
	var last int64
	for _, lane := range c.Lanes {
		if len(lane) == 0 {
			continue
		}
		if t := lane[len(lane)-1].TimeMs; t > last {
			last = t
		}
	}
	return last
}
