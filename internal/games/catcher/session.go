package catcher

// Phase is the round state.
type Phase string

const (
	PhasePlaying Phase = "playing"
	PhaseWon     Phase = "won"
)

// Session is the score of the current round.
type Session struct {
	Score    int
	GameOver bool
}

// Phase returns the round phase. GameOver is only ever set by winning.
func (s Session) Phase() Phase {
	if s.GameOver {
		return PhaseWon
	}
	return PhasePlaying
}

// Reset returns the session to a fresh round.
func (s *Session) Reset() {
	s.Score = 0
	s.GameOver = false
}
