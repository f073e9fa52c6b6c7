package rules

import (
	"errors"
	"fmt"
	"math"
)

// BlindLevel is one rung of the escalation ladder.
type BlindLevel struct {
	SmallBlind    int
	BigBlind      int
	HandsPerLevel int
}

func (l BlindLevel) validate() error {
	if l.SmallBlind <= 0 {
		return fmt.Errorf("small blind must be positive, got %d", l.SmallBlind)
	}
	if l.BigBlind <= l.SmallBlind {
		return fmt.Errorf("big blind %d must exceed small blind %d", l.BigBlind, l.SmallBlind)
	}
	if l.HandsPerLevel <= 0 {
		return fmt.Errorf("hands per level must be positive, got %d", l.HandsPerLevel)
	}
	return nil
}

// BlindSchedule tracks blind escalation over the hands of a game.
// Call StartNewGame when a fresh game begins, AdvanceHand exactly once per
// hand before posting blinds, and CurrentBlinds to get the amounts to post.
type BlindSchedule struct {
	levels    []BlindLevel
	handIndex int // hands played in this game
}

// NewBlindSchedule validates the levels at construction; an empty or
// malformed ladder is rejected here, never at use time.
func NewBlindSchedule(levels []BlindLevel) (*BlindSchedule, error) {
	if len(levels) == 0 {
		return nil, errors.New("blind schedule requires at least one level")
	}
	for i, l := range levels {
		if err := l.validate(); err != nil {
			return nil, fmt.Errorf("blind level %d: %w", i, err)
		}
	}
	return &BlindSchedule{levels: levels}, nil
}

// StartNewGame resets the hand counter.
func (s *BlindSchedule) StartNewGame() {
	s.handIndex = 0
}

// AdvanceHand counts a new hand. Call once per hand, before posting blinds.
func (s *BlindSchedule) AdvanceHand() {
	s.handIndex++
}

// CurrentLevelIndex returns the 0-based active level. Hands 1..HandsPerLevel
// play level 0, and the last level is a permanent floor once exhausted.
func (s *BlindSchedule) CurrentLevelIndex() int {
	total := 0
	for i, l := range s.levels {
		total += l.HandsPerLevel
		if s.handIndex <= total {
			return i
		}
	}
	return len(s.levels) - 1
}

// CurrentBlinds returns (small blind, big blind) for the active level.
func (s *BlindSchedule) CurrentBlinds() (int, int) {
	l := s.levels[s.CurrentLevelIndex()]
	return l.SmallBlind, l.BigBlind
}

// Levels returns a copy of the ladder.
func (s *BlindSchedule) Levels() []BlindLevel {
	out := make([]BlindLevel, len(s.levels))
	copy(out, s.levels)
	return out
}

// DefaultBlindSchedule builds a geometrically escalating ladder, e.g.
// 10/20, 15/30, 25/50, 40/80, rounded to the nearest multiple of 5. Rounding
// can collapse a level's blinds together, so the big blind is bumped after
// the fact to stay above the small.
func DefaultBlindSchedule(smallBlind, bigBlind, handsPerLevel, levels int, growth float64) (*BlindSchedule, error) {
	if smallBlind <= 0 || bigBlind <= 0 {
		return nil, errors.New("blinds must be positive")
	}
	if bigBlind <= smallBlind {
		return nil, fmt.Errorf("big blind %d must exceed small blind %d", bigBlind, smallBlind)
	}
	if handsPerLevel <= 0 {
		return nil, errors.New("hands per level must be positive")
	}
	if levels <= 0 {
		return nil, errors.New("level count must be positive")
	}
	if growth <= 1.0 {
		return nil, errors.New("growth must be > 1.0 for escalation")
	}

	built := make([]BlindLevel, 0, levels)
	sb, bb := float64(smallBlind), float64(bigBlind)
	for i := 0; i < levels; i++ {
		sbR, bbR := roundToFive(sb), roundToFive(bb)
		if bbR <= sbR {
			bbR = sbR + 5
		}
		built = append(built, BlindLevel{
			SmallBlind:    sbR,
			BigBlind:      bbR,
			HandsPerLevel: handsPerLevel,
		})
		sb *= growth
		bb *= growth
	}

	return NewBlindSchedule(built)
}

func roundToFive(x float64) int {
	r := int(math.Round(x/5.0) * 5)
	if r < 5 {
		r = 5
	}
	return r
}
