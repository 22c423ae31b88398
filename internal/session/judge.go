package session

import "git.lost.host/meutraa/dotw/internal/game"

// Engine matches inputs against each lane's nearest pending note and
// assigns a tier from the window table. Only that single note is ever
// eligible per input; the per-lane cursor makes skipping impossible.
type Engine struct {
	cursors *Cursors
	windows game.Windows
}

func NewEngine(cursors *Cursors, windows game.Windows) *Engine {
	return &Engine{cursors: cursors, windows: windows}
}

func (e *Engine) Cursors() *Cursors {
	return e.cursors
}

// ProcessInput judges one input event. Inputs that land outside every
// window, or on an exhausted lane, or on a note the session plays itself,
// are discarded without consuming anything.
func (e *Engine) ProcessInput(in game.Input) *game.Judgement {
	note := e.cursors.Peek(in.Lane)
	if note == nil || note.Auto {
		return nil
	}
	delta := in.TimeMs - note.TimeMs
	tier, ok := e.windows.Tier(abs64(delta))
	if !ok {
		return nil
	}
	e.cursors.Advance(in.Lane)
	return &game.Judgement{Note: note, Tier: tier, DeltaMs: delta, TimeMs: in.TimeMs}
}

// PlayAuto consumes every due self-played note up to nowMs. forced marks
// whole lanes as auto regardless of per-note flags; it may be nil. Each
// consumed note yields a perfect judgement at exactly its target time.
func (e *Engine) PlayAuto(nowMs int64, forced []bool) []*game.Judgement {
	var out []*game.Judgement
	for lane := 0; lane < e.cursors.NLanes(); lane++ {
		for {
			note := e.cursors.Peek(lane)
			if note == nil || note.TimeMs > nowMs {
				break
			}
			if !note.Auto && (forced == nil || lane >= len(forced) || !forced[lane]) {
				break
			}
			e.cursors.Advance(lane)
			out = append(out, &game.Judgement{
				Note:   note,
				Tier:   game.Just,
				TimeMs: note.TimeMs,
			})
		}
	}
	return out
}

// Sweep consumes every note whose poor window has fully elapsed, producing
// one Miss each. A stalled or resumed tick can owe several per lane.
func (e *Engine) Sweep(nowMs int64) []*game.Judgement {
	var out []*game.Judgement
	for lane := 0; lane < e.cursors.NLanes(); lane++ {
		for {
			note := e.cursors.Peek(lane)
			if note == nil || note.TimeMs+e.windows.Poor >= nowMs {
				break
			}
			e.cursors.Advance(lane)
			out = append(out, &game.Judgement{
				Note:    note,
				Tier:    game.Miss,
				DeltaMs: nowMs - note.TimeMs,
				TimeMs:  nowMs,
			})
		}
	}
	return out
}

func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}
