package entities

// Score is an interview score in [0,100], or ScoreUnavailable
type Score int

// ScoreUnavailable marks a score that could not be computed
const ScoreUnavailable Score = -1

// NewScore returns n as a Score, or ScoreUnavailable when n is outside [0,100]
func NewScore(n int) Score {
	if n < 0 || n > 100 {
		return ScoreUnavailable
	}
	return Score(n)
}

// Valid reports whether s may be stored
func (s Score) Valid() bool {
	return s == ScoreUnavailable || (s >= 0 && s <= 100)
}

// Available reports whether s is a real score
func (s Score) Available() bool {
	return s >= 0 && s <= 100
}
