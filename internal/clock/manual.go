package clock

import "sync/atomic"

// ManualClock is a hand-driven Clock for tests and headless use.
type ManualClock struct {
	ms      int64
	running int32
	triggerSet
}

func NewManualClock() *ManualClock {
	return &ManualClock{}
}

func (c *ManualClock) Start() { atomic.StoreInt32(&c.running, 1) }
func (c *ManualClock) Stop()  { atomic.StoreInt32(&c.running, 0) }

func (c *ManualClock) Running() bool {
	return atomic.LoadInt32(&c.running) == 1
}

func (c *ManualClock) NowMs() int64 {
	return atomic.LoadInt64(&c.ms)
}

func (c *ManualClock) Schedule(atMs int64, fn func()) {
	c.add(atMs, fn)
}

// SetMs moves the clock to an absolute time. Backward moves are allowed so
// desync handling can be exercised; triggers only fire on forward motion.
func (c *ManualClock) SetMs(ms int64) {
	atomic.StoreInt64(&c.ms, ms)
	c.fire(ms)
}

func (c *ManualClock) AdvanceMs(ms int64) {
	c.SetMs(c.NowMs() + ms)
}
