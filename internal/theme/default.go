package theme

import (
	"fmt"

	"git.lost.host/meutraa/dotw/internal/game"
)

type DefaultTheme struct{}

type color struct {
	R, G, B uint8
}

const noteSym = "⬤"

var (
	// Don/ka style lane colors, repeating past the fourth lane.
	laneColors = [...]color{
		{236, 30, 0},   // red
		{0, 118, 236},  // blue
		{236, 30, 0},   // red
		{0, 118, 236},  // blue
	}
	subdivisionColors = map[int]color{
		1: {255, 255, 255}, // on the beat, white
		2: {236, 195, 0},   // 1/8 yellow
		4: {0, 236, 128},   // 1/16 green
	}
	tierLabels = map[game.Tier]string{
		game.Just:  "\033[1;33mJust\033[0m",
		game.Great: "\033[1;36mGreat\033[0m",
		game.Good:  "\033[1;32mGood\033[0m",
		game.Poor:  "\033[1;35mPoor\033[0m",
		game.Miss:  "\033[1;31mMiss\033[0m",
	}
)

func (t *DefaultTheme) RenderNote(lane int, denom int) string {
	c := laneColors[lane%len(laneColors)]
	if denom > 1 {
		if sc, ok := subdivisionColors[denom]; ok {
			c = sc
		}
	}
	return fmt.Sprintf("\033[38;2;%v;%v;%vm%v\033[0m", c.R, c.G, c.B, noteSym)
}

func (t *DefaultTheme) RenderHitField(lane int) string {
	return "│"
}

func (t *DefaultTheme) TierLabel(tier game.Tier) string {
	l, ok := tierLabels[tier]
	if !ok {
		return tier.String()
	}
	return l
}
