package game

import (
	"github.com/seth1299/poker-game/internal/deck"
	"github.com/seth1299/poker-game/internal/evaluator"
)

// ShowdownSeat is one revealed hand in the showdown summary.
type ShowdownSeat struct {
	Seat  int
	Name  string
	Hole  []deck.Card
	Desc  string
	Score evaluator.Score
}

// ShowdownSummary is published when a hand reaches showdown, for the
// presentation layer to render before the next hand starts. It is valid
// only between hand-end and the next StartNewHand call.
type ShowdownSummary struct {
	Pot        int
	Winner     int
	WinnerName string
	Seats      []ShowdownSeat
}

// resolveShowdown evaluates every unfolded seat's best 5-card hand from its
// hole cards plus the board and awards the entire pot to the strongest. On
// an exact tie the first seat in seat order wins; there is no pot split.
func (t *Table) resolveShowdown() {
	alive := t.unfoldedSeats()
	if len(alive) == 0 {
		return
	}

	summary := &ShowdownSummary{Pot: t.pot, Winner: -1}

	for _, idx := range alive {
		s := t.seats[idx]
		cards := make([]deck.Card, 0, 7)
		cards = append(cards, s.Hole...)
		cards = append(cards, t.community...)

		score, err := evaluator.Evaluate7(cards)
		if err != nil {
			// Can only happen if dealing was short, which is an
			// engine bug already surfaced by the deck.
			t.logger.Error("showdown evaluation failed", "seat", idx, "err", err)
			continue
		}

		hole := make([]deck.Card, len(s.Hole))
		copy(hole, s.Hole)
		summary.Seats = append(summary.Seats, ShowdownSeat{
			Seat:  idx,
			Name:  s.Name,
			Hole:  hole,
			Desc:  score.Desc,
			Score: score,
		})

		if summary.Winner == -1 {
			summary.Winner = idx
			continue
		}
		best := summary.bestScore()
		if evaluator.Compare(score, best) > 0 {
			summary.Winner = idx
		}
	}

	if summary.Winner == -1 {
		summary.Winner = alive[0]
	}
	summary.WinnerName = t.seats[summary.Winner].Name

	t.logger.Info("showdown",
		"winner", summary.WinnerName,
		"pot", summary.Pot,
		"hands", len(summary.Seats))

	t.showdown = summary
	t.awardPot(summary.Winner)
}

func (s *ShowdownSummary) bestScore() evaluator.Score {
	for _, seat := range s.Seats {
		if seat.Seat == s.Winner {
			return seat.Score
		}
	}
	return evaluator.Score{}
}
