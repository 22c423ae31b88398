package theme

import "git.lost.host/meutraa/dotw/internal/game"

type Theme interface {
	RenderNote(lane int, denom int) string
	RenderHitField(lane int) string
	TierLabel(t game.Tier) string
}
