package config

import (
	"os"
	"path/filepath"
	"testing"

	"git.lost.host/meutraa/dotw/internal/game"
)

func TestDefaultRules(t *testing.T) {
	r := DefaultRules()

	if err := r.Validate(); nil != err {
		t.Log("default rules do not validate:", err)
		t.FailNow()
	}
	if w := r.Windows.Windows(); w.Just != 25 || w.Great != 50 || w.Good != 100 || w.Poor != 150 {
		t.Log("windows", w)
		t.Fail()
	}
	if r.Score.Base(game.Just) != 300 || r.Score.Base(game.Miss) != 0 {
		t.Log("score bases", r.Score)
		t.Fail()
	}
	if r.Gauge.Start != 50 || r.Gauge.ClearThreshold != 70 {
		t.Log("gauge", r.Gauge)
		t.Fail()
	}
	if r.Gauge.Delta(game.Miss) != -3.0 || r.Gauge.Delta(game.Just) != 2.0 {
		t.Log("gauge deltas", r.Gauge.Deltas)
		t.Fail()
	}
	if !r.Combo.Breaks(game.Miss) || r.Combo.Breaks(game.Good) {
		t.Log("combo breaks", r.Combo)
		t.Fail()
	}
}

// A rules file only needs to name the values it changes; everything else
// keeps its default.
func TestLoadRulesPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	err := os.WriteFile(path, []byte(`windows:
  just: 18
  great: 40
  good: 80
  poor: 120
gauge:
  start: 30
`), 0o644)
	if nil != err {
		t.Fatal("unable to write rules file:", err)
	}

	r, err := LoadRules(path)
	if nil != err {
		t.Fatal("unable to load rules:", err)
	}
	if r.Windows.Just != 18 || r.Windows.Poor != 120 {
		t.Log("windows", r.Windows)
		t.Fail()
	}
	if r.Gauge.Start != 30 {
		t.Log("gauge start", r.Gauge.Start)
		t.Fail()
	}
	// Untouched sections keep their defaults
	if r.Score.Just != 300 || r.Gauge.Max != 100 {
		t.Log("defaults lost", r.Score.Just, r.Gauge.Max)
		t.Fail()
	}
}

func TestLoadRulesMissingFile(t *testing.T) {
	if _, err := LoadRules(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Log("missing explicit rules file accepted")
		t.Fail()
	}
}

func TestLoadRulesRejectsInvalid(t *testing.T) {
	files := map[string]string{
		"not yaml": `windows: [`,
		"shrinking windows": `windows:
  just: 100
  great: 50
  good: 120
  poor: 150
`,
		"zero just": `windows:
  just: 0
`,
		"bad gauge start": `gauge:
  start: 500
`,
	}
	for name, content := range files {
		path := filepath.Join(t.TempDir(), "rules.yaml")
		if err := os.WriteFile(path, []byte(content), 0o644); nil != err {
			t.Fatal("unable to write rules file:", err)
		}
		if _, err := LoadRules(path); err == nil {
			t.Log("accepted rules file with", name)
			t.Fail()
		}
	}
}

func TestValidate(t *testing.T) {
	broken := map[string]func(*Rules){
		"negative score":  func(r *Rules) { r.Score.Good = -1 },
		"negative bonus":  func(r *Rules) { r.Score.BonusStep = -1 },
		"zero gauge max":  func(r *Rules) { r.Gauge.Max = 0 },
		"clear too high":  func(r *Rules) { r.Gauge.ClearThreshold = 101 },
		"negative window": func(r *Rules) { r.Windows.Just = -5 },
	}
	for name, mutate := range broken {
		r := DefaultRules()
		mutate(&r)
		if err := r.Validate(); err == nil {
			t.Log("validated rules with", name)
			t.Fail()
		}
	}
}
