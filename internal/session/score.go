package session

import (
	"git.lost.host/meutraa/dotw/internal/config"
	"git.lost.host/meutraa/dotw/internal/game"
)

// ScoreKeeper accumulates the running total and per-tier counts. Every
// addition is >= 0, so the total never decreases.
type ScoreKeeper struct {
	rules  config.ScoreRules
	total  int64
	counts [game.TierCount]int
}

func NewScoreKeeper(rules config.ScoreRules) *ScoreKeeper {
	return &ScoreKeeper{rules: rules}
}

// OnJudgement adds the tier's base value, scaled by the current combo.
// A Miss counts but adds exactly zero.
func (s *ScoreKeeper) OnJudgement(j *game.Judgement, combo int) {
	s.counts[j.Tier]++
	base := s.rules.Base(j.Tier)
	if base == 0 {
		return
	}
	bonus := 0
	if s.rules.BonusStep > 0 {
		bonus = (combo / s.rules.BonusStep) * s.rules.BonusPercent
		if bonus > s.rules.BonusCapPercent {
			bonus = s.rules.BonusCapPercent
		}
	}
	s.total += base + base*int64(bonus)/100
}

func (s *ScoreKeeper) Total() int64 {
	return s.total
}

func (s *ScoreKeeper) Counts() [game.TierCount]int {
	return s.counts
}
