package game

import (
	"github.com/seth1299/poker-game/internal/deck"
	"github.com/seth1299/poker-game/internal/rules"
)

// SeatView is a read-only snapshot of one seat for rendering. Hole cards
// are included for every seat; pre-showdown only the human's own are
// meaningful to display, which is the presentation layer's call.
type SeatView struct {
	Name       string
	Chips      int
	Folded     bool
	CPU        bool
	Hole       []deck.Card
	Bet        int
	LastAction string
}

// Seats returns a snapshot of every seat in seat order.
func (t *Table) Seats() []SeatView {
	out := make([]SeatView, len(t.seats))
	for i, s := range t.seats {
		hole := make([]deck.Card, len(s.Hole))
		copy(hole, s.Hole)
		out[i] = SeatView{
			Name:       s.Name,
			Chips:      s.Chips,
			Folded:     s.Folded,
			CPU:        s.IsCPU(),
			Hole:       hole,
			Bet:        t.bets[i],
			LastAction: s.LastAction,
		}
	}
	return out
}

// SeatCount returns the fixed number of seats.
func (t *Table) SeatCount() int {
	return len(t.seats)
}

// Community returns a copy of the revealed community cards.
func (t *Table) Community() []deck.Card {
	out := make([]deck.Card, len(t.community))
	copy(out, t.community)
	return out
}

// Pot returns the current pot total.
func (t *Table) Pot() int {
	return t.pot
}

// CurrentBet returns the table bet level for the current street.
func (t *Table) CurrentBet() int {
	return t.currentBet
}

// Street returns the current street.
func (t *Table) Street() rules.Street {
	return t.street
}

// HandNumber returns the 1-based hand counter, 0 before the first hand.
func (t *Table) HandNumber() int {
	return t.handNumber
}

// HandActive reports whether a hand is in progress.
func (t *Table) HandActive() bool {
	return t.handActive
}

// ToAct returns the seat whose turn it is, or -1.
func (t *Table) ToAct() int {
	return t.toAct
}

// HumanSeat returns the human-controlled seat index, or -1 when the whole
// table is CPU-driven.
func (t *Table) HumanSeat() int {
	return t.humanSeat
}

// Blinds returns the (small, big) blind amounts posted this hand.
func (t *Table) Blinds() (int, int) {
	return t.smallBlind, t.bigBlind
}

// LastAction returns the latest table-level action text.
func (t *Table) LastAction() string {
	return t.lastAction
}

// Showdown returns the summary of the last showdown, or nil. It is cleared
// by the next StartNewHand.
func (t *Table) Showdown() *ShowdownSummary {
	return t.showdown
}
