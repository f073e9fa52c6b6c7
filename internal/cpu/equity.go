package cpu

import (
	"github.com/seth1299/poker-game/internal/deck"
	"github.com/seth1299/poker-game/internal/evaluator"
)

// EstimateStrength estimates win probability against a single random
// opponent hand by Monte Carlo sampling. Each iteration completes the board
// to five cards and deals the opponent two cards from the unseen remainder
// of the deck, then runs both 7-card hands through the evaluator; a tie
// counts as a win. The candidate pool is rebuilt on every call because the
// community changes between streets.
func (p *Policy) EstimateStrength(hole, community []deck.Card) float64 {
	if len(hole) != 2 || p.Iterations <= 0 {
		return 0
	}

	pool := unseenCards(hole, community)
	need := 5 - len(community) // community cards still to come
	draw := need + 2           // plus the opponent's two

	board := make([]deck.Card, 0, 5)
	mine := make([]deck.Card, 0, 7)
	theirs := make([]deck.Card, 0, 7)

	wins := 0
	for i := 0; i < p.Iterations; i++ {
		// Partial Fisher-Yates: the first `draw` entries become this
		// iteration's sample, with no card reused between the board
		// completion and the opponent hand.
		for j := 0; j < draw; j++ {
			k := j + p.rng.IntN(len(pool)-j)
			pool[j], pool[k] = pool[k], pool[j]
		}

		board = append(board[:0], community...)
		board = append(board, pool[:need]...)
		opp := pool[need : need+2]

		mine = append(append(mine[:0], hole...), board...)
		theirs = append(append(theirs[:0], opp...), board...)

		myScore, err := evaluator.Evaluate7(mine)
		if err != nil {
			continue
		}
		oppScore, err := evaluator.Evaluate7(theirs)
		if err != nil {
			continue
		}
		if evaluator.Compare(myScore, oppScore) >= 0 {
			wins++
		}
	}

	return float64(wins) / float64(p.Iterations)
}

// unseenCards returns the 52-card deck minus the seat's own hole cards and
// the revealed community cards.
func unseenCards(hole, community []deck.Card) []deck.Card {
	seen := make(map[deck.Card]bool, len(hole)+len(community))
	for _, c := range hole {
		seen[c] = true
	}
	for _, c := range community {
		seen[c] = true
	}

	pool := make([]deck.Card, 0, 52)
	for suit := deck.Clubs; suit <= deck.Spades; suit++ {
		for rank := deck.Two; rank <= deck.Ace; rank++ {
			c := deck.Card{Rank: rank, Suit: suit}
			if !seen[c] {
				pool = append(pool, c)
			}
		}
	}
	return pool
}
