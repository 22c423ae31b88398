package main

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/eiannone/keyboard"
	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/vorbis"
	"golang.org/x/term"

	"git.lost.host/meutraa/dotw/internal/clock"
	"git.lost.host/meutraa/dotw/internal/config"
	"git.lost.host/meutraa/dotw/internal/game"
	"git.lost.host/meutraa/dotw/internal/input"
	"git.lost.host/meutraa/dotw/internal/parser"
	"git.lost.host/meutraa/dotw/internal/render"
	"git.lost.host/meutraa/dotw/internal/score"
	"git.lost.host/meutraa/dotw/internal/session"
	"git.lost.host/meutraa/dotw/internal/theme"
)

func main() {
	log.SetReportTimestamp(false)
	if err := run(); nil != err {
		log.Fatal(err)
	}
}

func run() error {
	config.Parse()

	rules, err := config.LoadRules(*config.RulesFile)
	if nil != err {
		return err
	}

	// Ensure our Default implementations are used as interfaces
	var r render.Renderer = &render.DefaultRenderer{}
	var th theme.Theme = &theme.DefaultTheme{}
	var psr parser.Parser = &parser.DefaultParser{}

	columns, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if nil != err {
		return fmt.Errorf("unable to get terminal size: %w", err)
	}

	var mp3File, oggFile, chartFile string
	if err := filepath.Walk(*config.Directory, func(p string, info os.FileInfo, err error) error {
		if nil != err {
			return err
		}
		switch path.Ext(info.Name()) {
		case ".mp3":
			mp3File = p
		case ".ogg":
			oggFile = p
		case ".drm":
			chartFile = p
		}
		return nil
	}); nil != err {
		return fmt.Errorf("unable to walk song directory: %w", err)
	}
	if (mp3File == "" && oggFile == "") || chartFile == "" {
		return errors.New("unable to find .drm and .mp3/.ogg file in given directory")
	}

	charts, err := psr.Parse(chartFile)
	if nil != err {
		return err
	}

	keyChannel, err := input.Open()
	if nil != err {
		return err
	}
	defer func() {
		if err := keyboard.Close(); nil != err {
			log.Error("unable to close keyboard", "err", err)
		}
	}()

	// Course selection
	for i, c := range charts {
		fmt.Printf("%2v) %3v  %5v  %v\n", i, c.Difficulty.Level, c.NoteCount, c.Difficulty.Name)
	}
	key := <-keyChannel
	index, err := strconv.ParseInt(string(key.Rune), 10, 64)
	if nil != err || index > int64(len(charts)-1) {
		return errors.New("no course selected")
	}
	chart := charts[index]
	nLanes := chart.Difficulty.NLanes

	chart.ScaleRate(*config.Rate)
	chart.Shift(config.Offset.Milliseconds())

	audioFile := mp3File
	if oggFile != "" {
		audioFile = oggFile
	}
	log.Info("opening", "audio", audioFile, "chart", chartFile)
	f, err := os.Open(audioFile)
	if nil != err {
		return err
	}
	var streamer beep.StreamSeekCloser
	var format beep.Format
	if oggFile != "" {
		streamer, format, err = vorbis.Decode(f)
	} else {
		streamer, format, err = mp3.Decode(f)
	}
	if nil != err {
		return err
	}
	defer streamer.Close()

	sr := beep.SampleRate(math.Round(float64(format.SampleRate) * (*config.Rate)))
	if err := speaker.Init(sr, sr.N(time.Second/30)); nil != err {
		return fmt.Errorf("unable to init speaker: %w", err)
	}
	format.SampleRate = sr
	clk := clock.NewBeepClock(format, *config.Delay, streamer)
	clk.Schedule(0, func() {
		log.Debug("bgm start")
	})

	store := &score.Store{}
	if err := store.Init(*config.Database); nil != err {
		return err
	}
	defer store.Deinit()
	if best, ok := store.Best(chart, *config.Rate); ok {
		log.Info("previous best", "score", best.Score, "combo", best.MaxCombo, "cleared", best.Cleared)
	}

	sess, err := session.New(chart, clk, rules, session.Options{
		NoFail:    *config.NoFail,
		AutoLanes: config.AutoLanes(nLanes),
	})
	if nil != err {
		return err
	}

	display := &render.Display{
		R:        r,
		Th:       th,
		Rows:     rows,
		Cols:     columns,
		HitCol:   16,
		MsPerCol: 2000.0 / float64(columns-16),
		GaugeMax: rules.Gauge.Max,
	}
	sess.Subscribe(display)

	// Controls are handed to the game loop through a channel so session
	// methods stay on one goroutine.
	controls := make(chan input.Control, 8)
	router := input.NewRouter(config.Keys(nLanes), clk)
	router.Route(keyChannel, sess.Enqueue, func(c input.Control) {
		select {
		case controls <- c:
		default:
		}
	})

	if err := r.Init(); nil != err {
		return err
	}
	defer func() {
		if err := r.Deinit(); nil != err {
			log.Error("unable to restore terminal", "err", err)
		}
	}()

	speaker.Play(clk)
	if err := sess.Start(); nil != err {
		return err
	}

	r.RenderLoop(*config.FramePeriod, func() bool {
		for len(controls) > 0 {
			switch <-controls {
			case input.Quit:
				sess.Abort()
			case input.Pause:
				if sess.State() == session.Active {
					sess.Pause()
				} else {
					sess.Resume()
				}
			}
		}

		st := sess.Tick()
		display.Draw(sess, clk.NowMs())
		return !st.Terminal()
	})
	speaker.Clear()

	summary := sess.Summary()
	if err := store.Save(chart, *config.Rate, summary); nil != err {
		log.Error("unable to save result", "err", err)
	}

	showSummary(r, sess.State(), summary)
	_ = <-keyChannel
	return nil
}

func showSummary(r render.Renderer, st session.State, s game.Summary) {
	row := 2
	fill := func(message string) {
		r.Fill(row, 4, message)
		row++
	}
	fill(fmt.Sprintf("%v", st))
	row++
	fill(fmt.Sprintf("    Score: %8d", s.Score))
	fill(fmt.Sprintf("Max combo: %8d", s.MaxCombo))
	fill(fmt.Sprintf(" Accuracy: %7.2f%%", s.Accuracy))
	fill(fmt.Sprintf("  Cleared: %8v", s.Cleared))
	row++
	for tier := 0; tier < game.TierCount; tier++ {
		t := game.Tier(tier)
		fill(fmt.Sprintf("%9s: %5d", t, s.TierCounts[t]))
	}
	// One last frame to flush the summary
	r.RenderLoop(time.Millisecond, func() bool { return false })
}
