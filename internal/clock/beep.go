package clock

import (
	"sync/atomic"
	"time"

	"github.com/faiface/beep"
)

// BeepClock derives song time from the number of samples the speaker has
// pulled through it. Playing the clock is what advances time, so the audio
// output position and NowMs can never drift apart.
//
// The clock streams silence during the lead-in and after the song ends, and
// keeps running until Stop, so the session can sweep notes past the final
// window. While stopped it streams silence without advancing.
type BeepClock struct {
	format   beep.Format
	song     beep.Streamer
	leadIn   int64 // samples of silence before song time zero
	leadInMs int64

	samples int64 // atomic, samples streamed while running
	running int32 // atomic
	songErr error
	done    bool

	triggerSet
}

// NewBeepClock wraps the song streamer. The caller hands the returned clock
// to speaker.Play exactly once.
func NewBeepClock(format beep.Format, leadIn time.Duration, song beep.Streamer) *BeepClock {
	return &BeepClock{
		format:   format,
		song:     song,
		leadIn:   int64(format.SampleRate.N(leadIn)),
		leadInMs: leadIn.Milliseconds(),
	}
}

func (c *BeepClock) Start() { atomic.StoreInt32(&c.running, 1) }
func (c *BeepClock) Stop()  { atomic.StoreInt32(&c.running, 0) }

// NowMs returns elapsed song time, negative during the lead-in.
func (c *BeepClock) NowMs() int64 {
	n := atomic.LoadInt64(&c.samples)
	return c.format.SampleRate.D(int(n)).Milliseconds() - c.leadInMs
}

func (c *BeepClock) Schedule(atMs int64, fn func()) {
	c.add(atMs, fn)
}

func (c *BeepClock) Stream(out [][2]float64) (int, bool) {
	if atomic.LoadInt32(&c.running) == 0 {
		silence(out)
		return len(out), true
	}

	pos := atomic.LoadInt64(&c.samples)
	n := 0
	if pos < c.leadIn {
		gap := c.leadIn - pos
		if gap > int64(len(out)) {
			gap = int64(len(out))
		}
		silence(out[:gap])
		n = int(gap)
	}
	if n < len(out) {
		if c.done {
			silence(out[n:])
		} else {
			sn, ok := c.song.Stream(out[n:])
			if !ok || sn < len(out[n:]) {
				c.done = true
				silence(out[n+sn:])
			}
		}
	}

	atomic.AddInt64(&c.samples, int64(len(out)))
	c.fire(c.NowMs())
	return len(out), true
}

func (c *BeepClock) Err() error {
	return c.songErr
}

// SongDone reports whether the wrapped streamer has been exhausted.
func (c *BeepClock) SongDone() bool {
	return c.done
}

func silence(out [][2]float64) {
	for i := range out {
		out[i][0] = 0
		out[i][1] = 0
	}
}
