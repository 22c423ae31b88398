package game

// Tier is a judgement accuracy class, ordered strictest first.
type Tier int

const (
	Just Tier = iota
	Great
	Good
	Poor
	Miss

	TierCount = int(Miss) + 1
)

func (t Tier) String() string {
	switch t {
	case Just:
		return "Just"
	case Great:
		return "Great"
	case Good:
		return "Good"
	case Poor:
		return "Poor"
	case Miss:
		return "Miss"
	}
	return "Unknown"
}
