package render

import (
	"fmt"
	"strings"

	"git.lost.host/meutraa/dotw/internal/game"
	"git.lost.host/meutraa/dotw/internal/session"
	"git.lost.host/meutraa/dotw/internal/theme"
)

// Display is the terminal display collaborator. It subscribes to the
// session's notifications for the numbers, and draws the lane field from
// the session's remaining notes each frame.
type Display struct {
	R  Renderer
	Th theme.Theme

	Rows, Cols int
	HitCol     int     // column of the hit bar
	MsPerCol   float64 // scroll scale, song milliseconds per column
	GaugeMax   float64

	score  int64
	combo  int
	max    int
	gauge  float64
	zone   session.GaugeZone
	counts [game.TierCount]int
}

const (
	topRow        = 3
	laneSpacing   = 2
	gaugeBarWidth = 24
)

func (d *Display) ScoreChanged(total int64) {
	d.score = total
}

func (d *Display) ComboChanged(current, max int) {
	d.combo, d.max = current, max
}

func (d *Display) GaugeChanged(value float64, zone session.GaugeZone) {
	d.gauge, d.zone = value, zone
}

func (d *Display) JudgementShown(tier game.Tier, lane int) {
	d.counts[tier]++
	d.R.AddDecoration(d.laneRow(lane), 2, d.Th.TierLabel(tier), 90)
}

func (d *Display) laneRow(lane int) int {
	return topRow + lane*laneSpacing
}

// Draw renders one frame of the lane field and the stat block.
func (d *Display) Draw(sess *session.Session, nowMs int64) {
	nLanes := sess.Chart().Difficulty.NLanes

	for lane := 0; lane < nLanes; lane++ {
		row := d.laneRow(lane)
		d.R.Fill(row, d.HitCol-1, strings.Repeat(" ", d.Cols-d.HitCol+1))
		d.R.Fill(row, d.HitCol, d.Th.RenderHitField(lane))

		for _, note := range sess.Upcoming(lane) {
			col := d.HitCol + int(float64(note.TimeMs-nowMs)/d.MsPerCol)
			if col >= d.Cols {
				break
			}
			if note.Hidden || col < d.HitCol {
				continue
			}
			d.R.Fill(row, col, d.Th.RenderNote(lane, note.Denom))
		}
	}

	statRow := d.laneRow(nLanes) + 2
	d.R.Fill(statRow, 2, fmt.Sprintf("  Score: %8d", d.score))
	d.R.Fill(statRow+1, 2, fmt.Sprintf("  Combo: %4d (max %4d)", d.combo, d.max))
	d.R.Fill(statRow+2, 2, fmt.Sprintf("  Gauge: %s %-6s", d.gaugeBar(), d.zone))
	for tier := 0; tier < game.TierCount; tier++ {
		t := game.Tier(tier)
		d.R.Fill(statRow+4+tier, 2, fmt.Sprintf("%7s: %5d", t, d.counts[t]))
	}

	if sess.State() == session.Paused {
		d.R.Fill(1, d.HitCol, "== paused, space to resume ==")
	} else {
		d.R.Fill(1, d.HitCol, strings.Repeat(" ", 30))
	}
}

func (d *Display) gaugeBar() string {
	filled := 0
	if d.GaugeMax > 0 {
		filled = int(d.gauge / d.GaugeMax * gaugeBarWidth)
	}
	if filled > gaugeBarWidth {
		filled = gaugeBarWidth
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", gaugeBarWidth-filled) + "]"
}
