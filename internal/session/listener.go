package session

import "git.lost.host/meutraa/dotw/internal/game"

// Listener receives display notifications from a running session. The event
// set is closed and handlers run synchronously inside Tick, so they must
// not call back into the session.
type Listener interface {
	ScoreChanged(total int64)
	ComboChanged(current, max int)
	GaugeChanged(value float64, zone GaugeZone)
	JudgementShown(tier game.Tier, lane int)
}
