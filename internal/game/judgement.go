package game

// Judgement records the terminal state of one note. Each note produces
// exactly one of these for the whole session.
type Judgement struct {
	Note    *Note
	Tier    Tier
	DeltaMs int64 // input time - target time; for sweeps, the overrun
	TimeMs  int64 // song clock time at which the judgement was made
}
