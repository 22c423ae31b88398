package parser

import (
	"fmt"
	"math"
	"math/big"
	"os"
	"strconv"
	"strings"

	"git.lost.host/meutraa/dotw/internal/game"
)

// DefaultParser reads .drm drum charts. The format is a header followed by
// one or more courses:
//
//	#OFFSET:-0.32;
//	#BPMS:0=140,32=180;
//	#COURSE:Normal:4;
//	1000
//	0010
//	,
//	...
//
// Each course body is a list of measures separated by "," lines, four beats
// per measure. Every row is one character per lane:
//
// 0 – no note
// 1 – normal note
// A – auto note, played by the session itself
// H – hidden note, judged but never drawn
type DefaultParser struct{}

type bpm struct {
	startingBeat float64
	value        float64
}

func (p *DefaultParser) secondsPerRow(rates []bpm, currentBeat, beatsPerRow float64) float64 {
	sel := rates[0].value
	for _, b := range rates {
		if currentBeat >= b.startingBeat {
			sel = b.value
		} else {
			break
		}
	}
	return beatsPerRow * (60.0 / sel)
}

func mapToNote(c byte) bool {
	return c == '1' || c == 'A' || c == 'H'
}

func (p *DefaultParser) Parse(file string) ([]*game.Chart, error) {
	data, err := os.ReadFile(file)
	if nil != err {
		return nil, err
	}
	return p.ParseBytes(data)
}

func (p *DefaultParser) ParseBytes(data []byte) ([]*game.Chart, error) {
	str := strings.ReplaceAll(string(data), "\r", "")
	sections := strings.Split(str, "#COURSE:")
	meta := sections[0]

	offset := 0.0
	bpms := []bpm{}

	for _, mdl := range strings.Split(meta, "\n#") {
		mdl = strings.TrimPrefix(strings.TrimSpace(mdl), "#")
		if strings.HasPrefix(mdl, "OFFSET:") {
			mdl = strings.TrimSuffix(strings.TrimPrefix(mdl, "OFFSET:"), ";")
			offs, err := strconv.ParseFloat(mdl, 64)
			if nil != err {
				return nil, fmt.Errorf("bad #OFFSET value %q: %w", mdl, err)
			}
			offset = -offs
		} else if strings.HasPrefix(mdl, "BPMS:") {
			mdl = strings.TrimPrefix(mdl, "BPMS:")
			mdl = strings.ReplaceAll(mdl, "\n", "")
			for _, pair := range strings.Split(strings.TrimSuffix(mdl, ";"), ",") {
				as := strings.Split(pair, "=")
				if len(as) != 2 {
					return nil, fmt.Errorf("bad #BPMS entry %q", pair)
				}
				sb, err := strconv.ParseFloat(as[0], 64)
				if nil != err {
					return nil, err
				}
				value, err := strconv.ParseFloat(as[1], 64)
				if nil != err {
					return nil, err
				}
				bpms = append(bpms, bpm{startingBeat: sb, value: value})
			}
		}
	}

	if len(bpms) == 0 {
		return nil, fmt.Errorf("chart has no #BPMS header")
	}

	charts := []*game.Chart{}
	for _, section := range sections[1:] {
		chart, err := p.parseCourse(section, offset, bpms)
		if nil != err {
			return nil, err
		}
		charts = append(charts, chart)
	}
	if len(charts) == 0 {
		return nil, fmt.Errorf("chart has no #COURSE sections")
	}
	return charts, nil
}

func (p *DefaultParser) parseCourse(section string, offset float64, bpms []bpm) (*game.Chart, error) {
	headerAndBody := strings.SplitN(section, "\n", 2)
	header := strings.TrimSuffix(strings.TrimSpace(headerAndBody[0]), ";")
	name, level := header, ""
	if i := strings.IndexByte(header, ':'); i >= 0 {
		name, level = header[:i], header[i+1:]
	}
	body := ""
	if len(headerAndBody) == 2 {
		body = headerAndBody[1]
	}
	if i := strings.IndexByte(body, ';'); i >= 0 {
		body = body[:i]
	}

	seconds := offset
	currentBeat := 0.0
	nLanes := 0
	noteCount := 0
	notes := []*game.Note{}

	for _, block := range strings.Split(body, "\n,") {
		rows := []string{}
		for _, l := range strings.Split(block, "\n") {
			l = strings.TrimSpace(l)
			if l == "" || l == "," || strings.HasPrefix(l, "//") {
				continue
			}
			rows = append(rows, l)
		}
		if len(rows) == 0 {
			continue
		}

		rowCount := int64(len(rows))
		beatsPerRow := 4.0 / float64(rowCount)

		for i, row := range rows {
			if len(row) > nLanes {
				nLanes = len(row)
			}
			r := big.NewRat(int64(i*4), rowCount)
			denom := int(r.Denom().Int64())

			for lane := 0; lane < len(row); lane++ {
				c := row[lane]
				if !mapToNote(c) {
					if c != '0' {
						return nil, fmt.Errorf("bad note char %q", string(c))
					}
					continue
				}
				noteCount++
				notes = append(notes, &game.Note{
					Lane:   lane,
					TimeMs: int64(math.Round(seconds * 1000)),
					Denom:  denom,
					Auto:   c == 'A',
					Hidden: c == 'H',
				})
			}

			seconds += p.secondsPerRow(bpms, currentBeat, beatsPerRow)
			currentBeat += beatsPerRow
		}
	}

	lanes := make([][]*game.Note, nLanes)
	for _, n := range notes {
		lanes[n.Lane] = append(lanes[n.Lane], n)
	}

	return &game.Chart{
		Lanes:      lanes,
		NoteCount:  noteCount,
		DurationMs: int64(math.Round(seconds * 1000)),
		Difficulty: game.Difficulty{
			Name:    name,
			Level:   level,
			Section: body,
			NLanes:  nLanes,
		},
	}, nil
}
