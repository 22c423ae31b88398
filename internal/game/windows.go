package game

import "errors"

// Windows maps each hit tier to its half-width tolerance in milliseconds.
// Miss has no window; misses are produced only by the sweep.
type Windows struct {
	Just  int64
	Great int64
	Good  int64
	Poor  int64
}

// Tier returns the strictest tier whose tolerance admits the given absolute
// delta. Bounds are inclusive, so a delta exactly on a boundary resolves to
// the stricter tier. ok is false when the delta is outside every window.
func (w Windows) Tier(absDeltaMs int64) (Tier, bool) {
	switch {
	case absDeltaMs <= w.Just:
		return Just, true
	case absDeltaMs <= w.Great:
		return Great, true
	case absDeltaMs <= w.Good:
		return Good, true
	case absDeltaMs <= w.Poor:
		return Poor, true
	}
	return Miss, false
}

// Validate checks that every window is positive and that tolerances widen
// from Just to Poor.
func (w Windows) Validate() error {
	if w.Just <= 0 {
		return errors.New("just window must be positive")
	}
	if w.Great < w.Just || w.Good < w.Great || w.Poor < w.Good {
		return errors.New("windows must widen from just to poor")
	}
	return nil
}
