package session

import (
	"git.lost.host/meutraa/dotw/internal/config"
	"git.lost.host/meutraa/dotw/internal/game"
)

// GaugeZone is the display classification of the gauge value.
type GaugeZone int

const (
	GaugeNormal GaugeZone = iota
	GaugeDanger
	GaugeFailed
)

func (z GaugeZone) String() string {
	switch z {
	case GaugeNormal:
		return "Normal"
	case GaugeDanger:
		return "Danger"
	case GaugeFailed:
		return "Failed"
	}
	return "Unknown"
}

// Gauge is the bounded life value. Once it has touched the fail threshold
// the failed flag is permanent, even under no-fail where play continues.
type Gauge struct {
	rules  config.GaugeRules
	noFail bool
	value  float64
	failed bool
}

func NewGauge(rules config.GaugeRules, noFail bool) *Gauge {
	return &Gauge{rules: rules, noFail: noFail, value: rules.Start}
}

// OnJudgement applies the tier's delta and clamps to [0, Max]. It reports
// whether this judgement should terminate the session.
func (g *Gauge) OnJudgement(j *game.Judgement) (failNow bool) {
	g.value += g.rules.Delta(j.Tier)
	if g.value < 0 {
		g.value = 0
	}
	if g.value > g.rules.Max {
		g.value = g.rules.Max
	}
	if !g.failed && g.value <= g.rules.FailThreshold {
		g.failed = true
		return !g.noFail
	}
	return false
}

func (g *Gauge) Value() float64 {
	return g.value
}

func (g *Gauge) Zone() GaugeZone {
	switch {
	case g.failed:
		return GaugeFailed
	case g.value < g.rules.DangerBelow:
		return GaugeDanger
	}
	return GaugeNormal
}

// Cleared reports whether the gauge value meets the clear threshold.
// Meaningful at natural song end.
func (g *Gauge) Cleared() bool {
	return g.value >= g.rules.ClearThreshold
}
