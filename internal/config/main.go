package config

import (
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	Directory   = kingpin.Arg("directory", "Song/chart directory").Required().ExistingDir()
	Rate        = kingpin.Flag("rate", "Playback speed").Default("1.0").Short('r').Float64()
	Offset      = kingpin.Flag("offset", "Global offset").Default("0ms").Short('o').Duration()
	Delay       = kingpin.Flag("delay", "Start delay").Default("1.5s").Short('d').Duration()
	FramePeriod = kingpin.Flag("frame-period", "Render frame period").Default("4ms").Short('p').Duration()
	RulesFile   = kingpin.Flag("rules", "Judgement rules file").Default("").String()
	Database    = kingpin.Flag("database", "Result database path").Default("./results.db").String()
	NoFail      = kingpin.Flag("no-fail", "Keep playing with an empty gauge").Bool()
	Auto        = kingpin.Flag("auto", "Lanes to auto-play, e.g. 0,2, or 'all'").Default("").String()
	keys        = kingpin.Flag("keys", "Pad keys, one per lane").Default("fjdk").Short('k').String()
)

// Parse reads the command line. Called once by main, never from init, so
// package tests can import config without touching os.Args.
func Parse() {
	kingpin.Version("0.1.0")
	kingpin.Parse()
}

func Keys(nLanes int) []rune {
	ks := []rune(*keys)
	if len(ks) > nLanes {
		ks = ks[:nLanes]
	}
	return ks
}

// AutoLanes expands the --auto flag into a per-lane flag slice.
func AutoLanes(nLanes int) []bool {
	lanes := make([]bool, nLanes)
	if *Auto == "all" {
		for i := range lanes {
			lanes[i] = true
		}
		return lanes
	}
	for _, part := range splitList(*Auto) {
		if part >= 0 && part < nLanes {
			lanes[part] = true
		}
	}
	return lanes
}

func splitList(s string) []int {
	out := []int{}
	n, ok := 0, false
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n, ok = n*10+int(r-'0'), true
			continue
		}
		if ok {
			out = append(out, n)
		}
		n, ok = 0, false
	}
	if ok {
		out = append(out, n)
	}
	return out
}
