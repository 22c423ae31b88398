package session

import (
	"errors"
	"math"

	"github.com/charmbracelet/log"

	"git.lost.host/meutraa/dotw/internal/clock"
	"git.lost.host/meutraa/dotw/internal/config"
	"git.lost.host/meutraa/dotw/internal/game"
)

// State is the session lifecycle. Cleared, Failed and Aborted are terminal;
// once reached, all aggregator state is frozen.
type State int

const (
	Inactive State = iota
	Active
	Paused
	Cleared
	Failed
	Aborted
)

func (s State) String() string {
	switch s {
	case Inactive:
		return "Inactive"
	case Active:
		return "Active"
	case Paused:
		return "Paused"
	case Cleared:
		return "Cleared"
	case Failed:
		return "Failed"
	case Aborted:
		return "Aborted"
	}
	return "Unknown"
}

func (s State) Terminal() bool {
	return s == Cleared || s == Failed || s == Aborted
}

// A clock read more than this far ahead of the previous two reads is
// treated as a glitch and clamped.
const maxClockJumpMs = 5000

const defaultInputBuffer = 128

type Options struct {
	NoFail bool
	// AutoLanes forces whole lanes into self-play, on top of per-note flags.
	AutoLanes []bool
	// OnFinish receives the summary when a terminal state is reached.
	OnFinish func(game.Summary)
	Logger   *log.Logger
}

// Session owns one song attempt from activation to summary. All methods
// are called from the single game-loop goroutine; the only cross-thread
// boundary is the clock's atomic read and the input queue.
type Session struct {
	chart  *game.Chart
	clk    clock.Clock
	engine *Engine
	score  *ScoreKeeper
	combo  *ComboTracker
	gauge  *Gauge
	log    *log.Logger

	state     State
	listeners []Listener
	onFinish  func(game.Summary)
	auto      []bool
	inputs    chan game.Input
	endMs     int64

	lastMs      int64
	lastRawMs   int64
	clockSeen   bool
	lastInputMs int64
	summary     game.Summary
}

// New validates the collaborators and builds an inactive session. A nil
// chart or clock, or an unusable rules table, is the one fatal error class;
// everything later is normal control flow.
func New(chart *game.Chart, clk clock.Clock, rules config.Rules, opts Options) (*Session, error) {
	if chart == nil {
		return nil, errors.New("session requires a chart")
	}
	if clk == nil {
		return nil, errors.New("session requires a playback clock")
	}
	if err := rules.Validate(); err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	windows := rules.Windows.Windows()
	cursors := NewCursors(chart.Lanes)
	endMs := chart.LastNoteMs() + windows.Poor
	if chart.NoteCount == 0 {
		endMs = math.MinInt64
	}

	return &Session{
		chart:    chart,
		clk:      clk,
		engine:   NewEngine(cursors, windows),
		score:    NewScoreKeeper(rules.Score),
		combo:    NewComboTracker(rules.Combo),
		gauge:    NewGauge(rules.Gauge, opts.NoFail),
		log:      logger,
		auto:     opts.AutoLanes,
		onFinish: opts.OnFinish,
		inputs:   make(chan game.Input, defaultInputBuffer),
		endMs:    endMs,
	}, nil
}

// Subscribe registers a display collaborator. Call before Start; the
// listener set is fixed while the session runs.
func (s *Session) Subscribe(l Listener) {
	s.listeners = append(s.listeners, l)
}

// Enqueue buffers one input event from the routing collaborator. Never
// blocks; events beyond the buffer are dropped.
func (s *Session) Enqueue(in game.Input) {
	select {
	case s.inputs <- in:
	default:
		s.log.Warn("input buffer full, dropping event", "lane", in.Lane)
	}
}

func (s *Session) Start() error {
	if s.state != Inactive {
		return errors.New("session already started")
	}
	s.state = Active
	s.clk.Start()
	return nil
}

func (s *Session) Pause() {
	if s.state != Active {
		return
	}
	s.state = Paused
	s.clk.Stop()
}

func (s *Session) Resume() {
	if s.state != Paused {
		return
	}
	s.state = Active
	s.clk.Start()
}

// Abort ends the attempt early. Buffered input is discarded and the
// summary reflects the state at this instant.
func (s *Session) Abort() {
	if s.state.Terminal() {
		return
	}
	for len(s.inputs) > 0 {
		<-s.inputs
	}
	s.finish(Aborted)
}

// Tick runs one pass of the pipeline: snapshot the clock, play self-played
// notes, drain real input in arrival order, sweep overdue notes, then check
// for the natural end of the chart. The clock is read exactly once.
func (s *Session) Tick() State {
	if s.state != Active {
		return s.state
	}

	now := s.snapshotNow()

	for _, j := range s.engine.PlayAuto(now, s.auto) {
		if s.apply(j) {
			return s.state
		}
	}

	buffered := len(s.inputs)
	for i := 0; i < buffered; i++ {
		in := <-s.inputs
		if in.TimeMs < s.lastInputMs {
			continue // stale, the queue is assumed monotonic
		}
		s.lastInputMs = in.TimeMs
		if in.Lane >= 0 && in.Lane < len(s.auto) && s.auto[in.Lane] {
			continue // self-played lanes never consult the input stream
		}
		if j := s.engine.ProcessInput(in); j != nil {
			if s.apply(j) {
				return s.state
			}
		}
	}

	for _, j := range s.engine.Sweep(now) {
		if s.apply(j) {
			return s.state
		}
	}

	if s.engine.Cursors().Exhausted() && now > s.endMs {
		s.finish(Cleared)
	}
	return s.state
}

// apply fans one judgement out to the aggregators and listeners. Reports
// whether it terminated the session.
func (s *Session) apply(j *game.Judgement) bool {
	s.combo.OnJudgement(j)
	s.score.OnJudgement(j, s.combo.Current())
	failNow := s.gauge.OnJudgement(j)

	for _, l := range s.listeners {
		l.JudgementShown(j.Tier, j.Note.Lane)
		l.ScoreChanged(s.score.Total())
		l.ComboChanged(s.combo.Current(), s.combo.Max())
		l.GaugeChanged(s.gauge.Value(), s.gauge.Zone())
	}

	if failNow {
		s.finish(Failed)
		return true
	}
	return false
}

// snapshotNow reads the clock once and guards against desync: backward
// movement and one-off forward spikes are clamped to the last accepted
// value. A sustained jump (a real stall) is accepted on the next tick.
func (s *Session) snapshotNow() int64 {
	raw := s.clk.NowMs()
	if !s.clockSeen {
		s.clockSeen = true
		s.lastMs = raw
		s.lastRawMs = raw
		return raw
	}

	now := raw
	if raw < s.lastMs {
		s.log.Warn("clock moved backwards, clamping", "raw", raw, "last", s.lastMs)
		now = s.lastMs
	} else if raw-s.lastMs > maxClockJumpMs && raw-s.lastRawMs > maxClockJumpMs {
		s.log.Warn("implausible clock jump, clamping", "raw", raw, "last", s.lastMs)
		now = s.lastMs
	}
	s.lastRawMs = raw
	s.lastMs = now
	return now
}

func (s *Session) finish(st State) {
	s.state = st
	s.clk.Stop()
	cleared := st == Cleared && s.gauge.Cleared()
	s.summary = game.NewSummary(
		s.score.Total(),
		s.combo.Max(),
		s.score.Counts(),
		s.chart.NoteCount,
		cleared,
	)
	if s.onFinish != nil {
		s.onFinish(s.summary)
	}
}

func (s *Session) State() State {
	return s.state
}

// Summary is valid once the session is in a terminal state.
func (s *Session) Summary() game.Summary {
	return s.summary
}

// Upcoming returns the lane's unconsumed notes, for display only.
func (s *Session) Upcoming(lane int) []*game.Note {
	return s.engine.Cursors().Remaining(lane)
}

func (s *Session) Score() int64         { return s.score.Total() }
func (s *Session) Combo() (int, int)    { return s.combo.Current(), s.combo.Max() }
func (s *Session) GaugeValue() float64  { return s.gauge.Value() }
func (s *Session) GaugeZone() GaugeZone { return s.gauge.Zone() }
func (s *Session) Chart() *game.Chart   { return s.chart }
