package testdata

import (
	"git.lost.host/meutraa/dotw/internal/game"
	"git.lost.host/meutraa/dotw/internal/parser"
)

// A two lane course at 120 BPM, eight rows to the measure, so rows are
// 250ms apart: lane 0 carries notes at 0/500/1000/1500ms and lane 1 at
// 250/1750ms.
const data = `#OFFSET:0;
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

func GetChart() (*game.Chart, error) {
	p := parser.DefaultParser{}
	charts, err := p.ParseBytes([]byte(data))
	if nil != err {
		return nil, err
	}
	return charts[0], nil
}
