// Package rules holds the pure configuration side of Texas Hold'em: street
// order, legal actions and the blind escalation schedule. Nothing here
// stores per-hand state.
package rules

// Street represents the betting round. Streets advance linearly and never
// loop; Showdown is terminal.
type Street int

const (
	PreFlop Street = iota
	Flop
	Turn
	River
	Showdown
)

// String returns the string representation of a street
func (s Street) String() string {
	switch s {
	case PreFlop:
		return "Pre-flop"
	case Flop:
		return "Flop"
	case Turn:
		return "Turn"
	case River:
		return "River"
	case Showdown:
		return "Showdown"
	default:
		return "Unknown"
	}
}

// Next returns the following street, capped at Showdown.
func (s Street) Next() Street {
	if s >= Showdown {
		return Showdown
	}
	return s + 1
}

// Action represents a player action
type Action int

const (
	Fold Action = iota
	Check
	Call
	Bet
	Raise
)

// String returns the string representation of an action
func (a Action) String() string {
	switch a {
	case Fold:
		return "fold"
	case Check:
		return "check"
	case Call:
		return "call"
	case Bet:
		return "bet"
	case Raise:
		return "raise"
	default:
		return "unknown"
	}
}

// Rules is the fixed table configuration for a game of hold'em.
type Rules struct {
	StartingChips int
	MaxPlayers    int

	// Hold'em always deals 2 hole cards; community counts by street.
	HoleCards  int
	FlopCards  int
	TurnCards  int
	RiverCards int
}

// Default returns standard hold'em rules with 1000 starting chips.
func Default() Rules {
	return Rules{
		StartingChips: 1000,
		MaxPlayers:    9,
		HoleCards:     2,
		FlopCards:     3,
		TurnCards:     1,
		RiverCards:    1,
	}
}
