package game

// Summary is the immutable result of one performance session, built once
// when the session reaches a terminal state.
type Summary struct {
	Score      int64
	MaxCombo   int
	TierCounts [TierCount]int
	Accuracy   float64 // percent, weighted by tier
	Cleared    bool
}

// Accuracy weights per tier, in percent of a perfect hit.
var accuracyWeights = [TierCount]float64{100, 66, 33, 0, 0}

// NewSummary freezes the aggregator results. total is the chart note count;
// an empty chart yields zero accuracy.
func NewSummary(score int64, maxCombo int, counts [TierCount]int, total int, cleared bool) Summary {
	s := Summary{
		Score:      score,
		MaxCombo:   maxCombo,
		TierCounts: counts,
		Cleared:    cleared,
	}
	if total > 0 {
		weighted := 0.0
		for tier, n := range counts {
			weighted += accuracyWeights[tier] * float64(n)
		}
		s.Accuracy = weighted / float64(total)
	}
	return s
}

// Judged reports how many notes reached a terminal state.
func (s Summary) Judged() int {
	total := 0
	for _, n := range s.TierCounts {
		total += n
	}
	return total
}
