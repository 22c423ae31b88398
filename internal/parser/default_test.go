package parser

import (
	"testing"

	"git.lost.host/meutraa/dotw/internal/game"
)

const chartData = `#OFFSET:0;
#BPMS:0=120;
#COURSE:Oni:7;
10
01
10
00
10
00
10
01
;
`

func parseOne(t *testing.T, data string) *game.Chart {
	t.Helper()
	p := DefaultParser{}
	charts, err := p.ParseBytes([]byte(data))
	if nil != err {
		t.Fatal("unable to parse chart:", err)
	}
	return charts[0]
}

func TestParseCourse(t *testing.T) {
	chart := parseOne(t, chartData)

	if chart.Difficulty.Name != "Oni" || chart.Difficulty.Level != "7" {
		t.Log("difficulty", chart.Difficulty)
		t.Fail()
	}
	if chart.Difficulty.NLanes != 2 || chart.NoteCount != 6 {
		t.Log("lanes", chart.Difficulty.NLanes, "notes", chart.NoteCount)
		t.Fail()
	}
	if chart.DurationMs != 2000 {
		t.Log("duration", chart.DurationMs)
		t.Fail()
	}

	// 120 BPM, eight rows to the measure: 250ms per row
	expected := map[int][]int64{
		0: {0, 500, 1000, 1500},
		1: {250, 1750},
	}
	for lane, times := range expected {
		notes := chart.Lanes[lane]
		if len(notes) != len(times) {
			t.Log("lane", lane, "has", len(notes), "notes")
			t.FailNow()
		}
		for i, ms := range times {
			if notes[i].TimeMs != ms {
				t.Log("lane", lane, "note", i)
				t.Log("got     ", notes[i].TimeMs)
				t.Log("expected", ms)
				t.Fail()
			}
			if notes[i].Lane != lane {
				t.Log("note carries wrong lane", notes[i])
				t.Fail()
			}
		}
	}

	// On-beat rows land on denominator 1, off-beat rows on 2
	for _, n := range chart.Lanes[0] {
		if n.Denom != 1 {
			t.Log("lane 0 denom", n.TimeMs, n.Denom)
			t.Fail()
		}
	}
	for _, n := range chart.Lanes[1] {
		if n.Denom != 2 {
			t.Log("lane 1 denom", n.TimeMs, n.Denom)
			t.Fail()
		}
	}
}

func TestParseNoteFlags(t *testing.T) {
	chart := parseOne(t, `#BPMS:0=120;
#COURSE:Flags:1;
1A
H0
;
`)
	if chart.NoteCount != 3 {
		t.Log("notes", chart.NoteCount)
		t.FailNow()
	}
	if n := chart.Lanes[0][0]; n.Auto || n.Hidden {
		t.Log("plain note flagged", n)
		t.Fail()
	}
	if n := chart.Lanes[1][0]; !n.Auto || n.Hidden {
		t.Log("auto note", n)
		t.Fail()
	}
	if n := chart.Lanes[0][1]; n.Auto || !n.Hidden {
		t.Log("hidden note", n)
		t.Fail()
	}
}

func TestParseOffset(t *testing.T) {
	chart := parseOne(t, `#OFFSET:-0.5;
#BPMS:0=120;
#COURSE:Shifted:1;
1
;
`)
	if chart.Lanes[0][0].TimeMs != 500 {
		t.Log("offset note time", chart.Lanes[0][0].TimeMs)
		t.Fail()
	}
}

func TestParseBPMChange(t *testing.T) {
	// 60 BPM for two beats, then 120: rows at 0, 1000, 2000, 2500
	chart := parseOne(t, `#BPMS:0=60,2=120;
#COURSE:Speedup:1;
1
1
1
1
;
`)
	times := []int64{0, 1000, 2000, 2500}
	for i, ms := range times {
		if chart.Lanes[0][i].TimeMs != ms {
			t.Log("note", i)
			t.Log("got     ", chart.Lanes[0][i].TimeMs)
			t.Log("expected", ms)
			t.Fail()
		}
	}
	if chart.DurationMs != 3000 {
		t.Log("duration", chart.DurationMs)
		t.Fail()
	}
}

func TestParseMultipleCourses(t *testing.T) {
	p := DefaultParser{}
	charts, err := p.ParseBytes([]byte(`#BPMS:0=120;
#COURSE:Normal:3;
1
;
#COURSE:Hard:8;
1
1
;
`))
	if nil != err {
		t.Fatal("unable to parse chart:", err)
	}
	if len(charts) != 2 {
		t.Log("courses", len(charts))
		t.FailNow()
	}
	if charts[0].Difficulty.Name != "Normal" || charts[1].Difficulty.Name != "Hard" {
		t.Log("names", charts[0].Difficulty.Name, charts[1].Difficulty.Name)
		t.Fail()
	}
	if charts[0].NoteCount != 1 || charts[1].NoteCount != 2 {
		t.Log("counts", charts[0].NoteCount, charts[1].NoteCount)
		t.Fail()
	}
}

func TestParseComments(t *testing.T) {
	chart := parseOne(t, `#BPMS:0=120;
#COURSE:Commented:1;
// intro
1

,
// second measure
1
;
`)
	if chart.NoteCount != 2 {
		t.Log("notes", chart.NoteCount)
		t.Fail()
	}
}

func TestParseErrors(t *testing.T) {
	bad := map[string]string{
		"no bpms": `#OFFSET:0;
#COURSE:X:1;
1
;
`,
		"no course": `#BPMS:0=120;
`,
		"bad note char": `#BPMS:0=120;
#COURSE:X:1;
1X
;
`,
		"bad offset": `#OFFSET:fast;
#BPMS:0=120;
#COURSE:X:1;
1
;
`,
		"bad bpm entry": `#BPMS:0;
#COURSE:X:1;
1
;
`,
	}
	p := DefaultParser{}
	for name, data := range bad {
		if _, err := p.ParseBytes([]byte(data)); err == nil {
			t.Log("accepted chart with", name)
			t.Fail()
		}
	}
}
