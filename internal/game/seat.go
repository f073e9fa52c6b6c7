package game

import (
	"github.com/seth1299/poker-game/internal/cpu"
	"github.com/seth1299/poker-game/internal/deck"
)

// Seat is one position at the table. A seat with a nil policy is controlled
// by the human player; everything else is CPU-controlled.
type Seat struct {
	Name       string
	Chips      int
	Hole       []deck.Card
	Folded     bool
	LastAction string

	policy *cpu.Policy
}

// IsCPU returns true for computer-controlled seats.
func (s *Seat) IsCPU() bool {
	return s.policy != nil
}

// Personality returns the CPU personality, or Neutral for the human seat.
func (s *Seat) Personality() cpu.Personality {
	if s.policy == nil {
		return cpu.Neutral
	}
	return s.policy.Personality
}

func (s *Seat) resetForHand() {
	s.Hole = s.Hole[:0]
	s.Folded = false
	s.LastAction = ""
}

// SeatSpec describes a seat when constructing a table.
type SeatSpec struct {
	Name        string
	Human       bool
	Personality cpu.Personality
}
