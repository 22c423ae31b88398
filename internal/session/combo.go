package session

import (
	"git.lost.host/meutraa/dotw/internal/config"
	"git.lost.host/meutraa/dotw/internal/game"
)

// ComboTracker counts consecutive non-breaking judgements and remembers
// the best run.
type ComboTracker struct {
	rules   config.ComboRules
	current int
	max     int
}

func NewComboTracker(rules config.ComboRules) *ComboTracker {
	return &ComboTracker{rules: rules}
}

func (c *ComboTracker) OnJudgement(j *game.Judgement) {
	if c.rules.Breaks(j.Tier) {
		c.current = 0
		return
	}
	c.current++
	if c.current > c.max {
		c.max = c.current
	}
}

func (c *ComboTracker) Current() int { return c.current }
func (c *ComboTracker) Max() int     { return c.max }
