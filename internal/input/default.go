package input

import (
	"fmt"

	"github.com/eiannone/keyboard"

	"git.lost.host/meutraa/dotw/internal/clock"
	"git.lost.host/meutraa/dotw/internal/game"
)

// Control is a non-pad action from the keyboard.
type Control int

const (
	Quit Control = iota
	Pause
)

// Router reads raw key events, stamps pad hits with the song time they
// arrived, and forwards them in arrival order.
type Router struct {
	keys []rune
	clk  clock.Clock
}

func NewRouter(keys []rune, clk clock.Clock) *Router {
	return &Router{keys: keys, clk: clk}
}

// Open opens the keyboard once. The caller owns the channel and hands it
// to Route when play begins.
func Open() (<-chan keyboard.KeyEvent, error) {
	events, err := keyboard.GetKeys(128)
	if nil != err {
		return nil, fmt.Errorf("unable to open keyboard: %w", err)
	}
	return events, nil
}

// Route forwards events until the keyboard closes. hit and ctl run on the
// router goroutine; both sinks must be safe to call from there.
func (r *Router) Route(events <-chan keyboard.KeyEvent, hit func(game.Input), ctl func(Control)) {
	go func() {
		for ev := range events {
			if nil != ev.Err {
				return
			}
			switch {
			case ev.Key == keyboard.KeyEsc:
				ctl(Quit)
			case ev.Key == keyboard.KeySpace:
				ctl(Pause)
			default:
				if lane := r.lane(ev.Rune); lane >= 0 {
					hit(game.Input{Lane: lane, TimeMs: r.clk.NowMs()})
				}
			}
		}
	}()
}

func (r *Router) Close() {
	_ = keyboard.Close()
}

func (r *Router) lane(c rune) int {
	for i, k := range r.keys {
		if c == k {
			return i
		}
	}
	return -1
}
