package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"git.lost.host/meutraa/dotw/internal/game"
)

// Rules is everything the session reads once at activation: judgement
// windows, gauge behaviour, scoring values and combo settings.
type Rules struct {
	Windows WindowRules `yaml:"windows"`
	Score   ScoreRules  `yaml:"score"`
	Gauge   GaugeRules  `yaml:"gauge"`
	Combo   ComboRules  `yaml:"combo"`
}

// WindowRules is the per-tier half-width tolerance table in milliseconds.
type WindowRules struct {
	Just  int64 `yaml:"just"`
	Great int64 `yaml:"great"`
	Good  int64 `yaml:"good"`
	Poor  int64 `yaml:"poor"`
}

func (w WindowRules) Windows() game.Windows {
	return game.Windows{Just: w.Just, Great: w.Great, Good: w.Good, Poor: w.Poor}
}

// ScoreRules holds the per-tier base values and the combo bonus shape.
// Miss is always worth exactly zero.
type ScoreRules struct {
	Just  int64 `yaml:"just"`
	Great int64 `yaml:"great"`
	Good  int64 `yaml:"good"`
	Poor  int64 `yaml:"poor"`

	// Every BonusStep of current combo adds BonusPercent of the base value,
	// up to BonusCapPercent.
	BonusStep       int `yaml:"bonus_step"`
	BonusPercent    int `yaml:"bonus_percent"`
	BonusCapPercent int `yaml:"bonus_cap_percent"`
}

func (s ScoreRules) Base(t game.Tier) int64 {
	switch t {
	case game.Just:
		return s.Just
	case game.Great:
		return s.Great
	case game.Good:
		return s.Good
	case game.Poor:
		return s.Poor
	}
	return 0
}

// GaugeRules bounds the life gauge and maps each tier to a signed delta.
// The candidate deltas here have not been validated against real play data
// and are expected to be tuned through the rules file.
type GaugeRules struct {
	Max            float64     `yaml:"max"`
	Start          float64     `yaml:"start"`
	FailThreshold  float64     `yaml:"fail_threshold"`
	ClearThreshold float64     `yaml:"clear_threshold"`
	DangerBelow    float64     `yaml:"danger_below"`
	Deltas         GaugeDeltas `yaml:"deltas"`
}

type GaugeDeltas struct {
	Just  float64 `yaml:"just"`
	Great float64 `yaml:"great"`
	Good  float64 `yaml:"good"`
	Poor  float64 `yaml:"poor"`
	Miss  float64 `yaml:"miss"`
}

func (g GaugeRules) Delta(t game.Tier) float64 {
	switch t {
	case game.Just:
		return g.Deltas.Just
	case game.Great:
		return g.Deltas.Great
	case game.Good:
		return g.Deltas.Good
	case game.Poor:
		return g.Deltas.Poor
	}
	return g.Deltas.Miss
}

// ComboRules names the tiers that break a combo.
type ComboRules struct {
	BreakOnPoor bool `yaml:"break_on_poor"`
	BreakOnMiss bool `yaml:"break_on_miss"`
}

func (c ComboRules) Breaks(t game.Tier) bool {
	switch t {
	case game.Poor:
		return c.BreakOnPoor
	case game.Miss:
		return c.BreakOnMiss
	}
	return false
}

const defaultRulesYAML = `windows:
  just: 25
  great: 50
  good: 100
  poor: 150
score:
  just: 300
  great: 200
  good: 100
  poor: 50
  bonus_step: 10
  bonus_percent: 1
  bonus_cap_percent: 20
gauge:
  max: 100
  start: 50
  fail_threshold: 0
  clear_threshold: 70
  danger_below: 20
  deltas:
    just: 2.0
    great: 1.5
    good: 1.0
    poor: -1.5
    miss: -3.0
combo:
  break_on_poor: true
  break_on_miss: true
`

func DefaultRules() Rules {
	var r Rules
	// The embedded document always parses
	_ = yaml.Unmarshal([]byte(defaultRulesYAML), &r)
	return r
}

// LoadRules loads the rules table.
// Search order: customPath -> ~/.dotw/rules.yaml -> ./rules.yaml -> embedded default
func LoadRules(customPath string) (Rules, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Rules{}, fmt.Errorf("unable to read rules file %s: %w", customPath, err)
		}
		return parseRules(data, customPath)
	}

	if home, err := os.UserHomeDir(); err == nil {
		p := filepath.Join(home, ".dotw", "rules.yaml")
		if data, err := os.ReadFile(p); err == nil {
			return parseRules(data, p)
		}
	}

	if data, err := os.ReadFile("rules.yaml"); err == nil {
		return parseRules(data, "rules.yaml")
	}

	return DefaultRules(), nil
}

func parseRules(data []byte, path string) (Rules, error) {
	r := DefaultRules()
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Rules{}, fmt.Errorf("unable to parse rules file %s: %w", path, err)
	}
	if err := r.Validate(); err != nil {
		return Rules{}, fmt.Errorf("invalid rules file %s: %w", path, err)
	}
	return r, nil
}

// Validate rejects tables the session cannot activate with.
func (r Rules) Validate() error {
	if err := r.Windows.Windows().Validate(); err != nil {
		return err
	}
	if r.Gauge.Max <= 0 {
		return fmt.Errorf("gauge max must be positive, got %v", r.Gauge.Max)
	}
	if r.Gauge.Start < 0 || r.Gauge.Start > r.Gauge.Max {
		return fmt.Errorf("gauge start %v outside [0, %v]", r.Gauge.Start, r.Gauge.Max)
	}
	if r.Gauge.ClearThreshold < 0 || r.Gauge.ClearThreshold > r.Gauge.Max {
		return fmt.Errorf("clear threshold %v outside [0, %v]", r.Gauge.ClearThreshold, r.Gauge.Max)
	}
	if r.Score.Just < 0 || r.Score.Great < 0 || r.Score.Good < 0 || r.Score.Poor < 0 {
		return fmt.Errorf("tier base scores must not be negative")
	}
	if r.Score.BonusStep < 0 || r.Score.BonusPercent < 0 || r.Score.BonusCapPercent < 0 {
		return fmt.Errorf("combo bonus settings must not be negative")
	}
	return nil
}
