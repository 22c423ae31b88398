package game

// Note is a single chart event on one lane. Chart data is immutable once
// parsed; all judgement state lives in the session, never on the note.
type Note struct {
	Lane   int
	TimeMs int64 // target hit time in song milliseconds
	Denom  int   // beat subdivision, 4 = 1/4 beat, used for display color
	Auto   bool  // the session plays this note itself
	Hidden bool  // judged normally but never drawn
}

// Input is one pad strike: the lane hit and the song time it arrived.
type Input struct {
	Lane   int
	TimeMs int64
}
