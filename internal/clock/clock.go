package clock

import (
	"sort"
	"sync"
)

// Clock is the session's single time authority. NowMs is a snapshot read
// safe to call from the game loop while another goroutine advances time.
// Scheduled triggers fire on whichever goroutine advances the clock.
type Clock interface {
	Start()
	Stop()
	NowMs() int64
	Schedule(atMs int64, fn func())
}

type trigger struct {
	atMs  int64
	fn    func()
	fired bool
}

// triggerSet is the shared scheduled-callback list for clock
// implementations.
type triggerSet struct {
	mu       sync.Mutex
	triggers []*trigger
}

func (t *triggerSet) add(atMs int64, fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.triggers = append(t.triggers, &trigger{atMs: atMs, fn: fn})
	sort.SliceStable(t.triggers, func(i, j int) bool {
		return t.triggers[i].atMs < t.triggers[j].atMs
	})
}

// fire runs every unfired trigger due at nowMs, in schedule order.
func (t *triggerSet) fire(nowMs int64) {
	t.mu.Lock()
	due := make([]*trigger, 0, 2)
	for _, tr := range t.triggers {
		if tr.fired {
			continue
		}
		if tr.atMs > nowMs {
			break
		}
		tr.fired = true
		due = append(due, tr)
	}
	t.mu.Unlock()

	for _, tr := range due {
		tr.fn()
	}
}
