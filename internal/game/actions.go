package game

import (
	"fmt"

	"github.com/seth1299/poker-game/internal/cpu"
	"github.com/seth1299/poker-game/internal/rules"
)

// ApplyHumanAction applies an action for the human-controlled seat. It is
// accepted only while it is that seat's turn; anything else (double-clicks,
// stale UI state) is silently ignored without mutating anything.
func (t *Table) ApplyHumanAction(action rules.Action, raiseTo int) {
	if t.humanSeat < 0 {
		return
	}
	t.applyAction(t.humanSeat, action, raiseTo)
}

// HumanCanAct reports whether the human seat is currently owed an action.
func (t *Table) HumanCanAct() bool {
	return t.handActive && t.humanSeat >= 0 && t.toAct == t.humanSeat &&
		!t.seats[t.humanSeat].Folded
}

// Update advances CPU play by dt seconds of simulated time. It is a no-op
// unless a hand is active and a CPU seat is to act; the seat's think timer
// accumulates elapsed frames and the decision fires once it expires. The
// human seat never auto-acts.
func (t *Table) Update(dt float64) {
	if !t.handActive || t.toAct < 0 {
		return
	}
	seat := t.seats[t.toAct]
	if seat.policy == nil {
		return
	}

	if t.thinkTimer <= 0 {
		t.thinkTimer = seat.policy.SampleThinkTime()
	}
	t.thinkTimer -= dt
	if t.thinkTimer > 0 {
		return
	}

	idx := t.toAct
	decision := seat.policy.Decide(cpu.Situation{
		Hole:       seat.Hole,
		Community:  t.community,
		Chips:      seat.Chips,
		Pot:        t.pot,
		ToCall:     t.ToCall(idx),
		CurrentBet: t.currentBet,
		BigBlind:   t.bigBlind,
		Folded:     seat.Folded,
	})
	t.logger.Debug("cpu decision",
		"seat", idx, "name", seat.Name,
		"action", decision.Action, "raiseTo", decision.RaiseTo)
	t.applyAction(idx, decision.Action, decision.RaiseTo)
}

// applyAction resolves one action for a seat. Requests from a seat that is
// not the current actor, or from a folded seat, are ignored without any
// state change.
func (t *Table) applyAction(seat int, action rules.Action, raiseTo int) {
	if !t.handActive || t.toAct != seat || t.seats[seat].Folded {
		t.logger.Debug("ignoring illegal action",
			"seat", seat, "action", action, "toAct", t.toAct, "active", t.handActive)
		return
	}

	s := t.seats[seat]
	callAmt := t.ToCall(seat)

	switch action {
	case rules.Fold:
		s.Folded = true
		t.lastAction = fmt.Sprintf("%s folds", s.Name)
		s.LastAction = "Folded"
		delete(t.pending, seat)

		// Last seat standing takes the pot without further streets.
		if alive := t.unfoldedSeats(); len(alive) == 1 {
			t.awardPot(alive[0])
			return
		}
		t.advanceTurn(seat)

	case rules.Check, rules.Call:
		if callAmt > 0 {
			// A check facing a bet is treated as a call. A short
			// all-in call is legal and simply contributes less.
			paid := t.commitTo(seat, t.bets[seat]+callAmt)
			t.lastAction = fmt.Sprintf("%s calls %d", s.Name, paid)
			s.LastAction = fmt.Sprintf("Called %d", paid)
		} else {
			t.lastAction = fmt.Sprintf("%s checks", s.Name)
			s.LastAction = "Checked"
		}
		delete(t.pending, seat)
		t.advanceTurn(seat)

	case rules.Bet, rules.Raise:
		// Minimum legal raise-to is the current bet plus a big blind;
		// cap at the seat's all-in total.
		minRaiseTo := t.currentBet + max(1, t.bigBlind)
		target := max(raiseTo, minRaiseTo)
		target = min(target, t.bets[seat]+s.Chips)

		prevTableBet := t.currentBet
		paid := t.commitTo(seat, target)
		newTotal := t.bets[seat]

		if action == rules.Bet {
			t.lastAction = fmt.Sprintf("%s bets %d", s.Name, paid)
			s.LastAction = fmt.Sprintf("Bet %d", paid)
		} else {
			t.lastAction = fmt.Sprintf("%s raises to %d (+%d)", s.Name, newTotal, paid)
			s.LastAction = fmt.Sprintf("Raised to %d", newTotal)
		}

		// A clamped raise that neither exceeds the old bet level nor
		// costs more than a call is just a call; it does not reopen
		// the round.
		if newTotal <= prevTableBet && paid <= callAmt {
			delete(t.pending, seat)
			t.advanceTurn(seat)
			return
		}

		// Genuine aggression: everyone else still able to act owes a
		// fresh decision.
		t.pending = make(map[int]struct{})
		for _, i := range t.seatsAbleToAct() {
			if i != seat {
				t.pending[i] = struct{}{}
			}
		}
		t.advanceTurn(seat)
	}
}

// commitTo puts chips in so the seat's street total becomes target (capped
// by its stack), and keeps the pot and table bet level in sync.
func (t *Table) commitTo(seat, target int) int {
	prev := t.bets[seat]
	if target <= prev {
		return 0
	}
	paid := t.takeChips(seat, target-prev)
	t.pot += paid
	t.bets[seat] = prev + paid
	if t.bets[seat] > t.currentBet {
		t.currentBet = t.bets[seat]
	}
	return paid
}

// beginBettingRound opens a fresh round for the current street. Pre-flop
// the first to act is left of the big blind; on later streets it is left of
// the dealer.
func (t *Table) beginBettingRound() {
	n := len(t.seats)
	first := (t.bigBlindIndex + 1) % n
	if t.street != rules.PreFlop {
		first = (t.DealerIndex() + 1) % n
	}

	t.pending = make(map[int]struct{})
	for _, i := range t.seatsAbleToAct() {
		t.pending[i] = struct{}{}
	}
	t.toAct = first
	t.thinkTimer = 0

	if _, ok := t.pending[first]; !ok {
		t.advanceTurn((first - 1 + n) % n)
	}
}

// advanceTurn moves the turn pointer clockwise to the next pending seat
// that can act, or closes the round when none remains.
func (t *Table) advanceTurn(from int) {
	t.thinkTimer = 0

	if len(t.pending) == 0 {
		t.onBettingRoundComplete()
		return
	}

	n := len(t.seats)
	idx := from
	for i := 0; i < n; i++ {
		idx = (idx + 1) % n
		if _, ok := t.pending[idx]; ok && !t.seats[idx].Folded && t.seats[idx].Chips > 0 {
			t.toAct = idx
			return
		}
	}

	t.pending = make(map[int]struct{})
	t.onBettingRoundComplete()
}

// onBettingRoundComplete advances the street, dealing community cards with
// burn-then-deal semantics, or resolves the hand at the river.
func (t *Table) onBettingRoundComplete() {
	if alive := t.unfoldedSeats(); len(alive) <= 1 {
		if len(alive) == 1 {
			t.awardPot(alive[0])
		}
		return
	}

	switch t.street {
	case rules.PreFlop:
		t.street = rules.Flop
		t.burn()
		t.dealCommunity(t.rules.FlopCards)
	case rules.Flop:
		t.street = rules.Turn
		t.burn()
		t.dealCommunity(t.rules.TurnCards)
	case rules.Turn:
		t.street = rules.River
		t.burn()
		t.dealCommunity(t.rules.RiverCards)
	case rules.River:
		t.street = rules.Showdown
		t.resolveShowdown()
		return
	default:
		return
	}

	t.logger.Debug("street advanced", "street", t.street, "community", t.community)

	// Fresh street: per-street bet bookkeeping starts over.
	for i := range t.bets {
		t.bets[i] = 0
	}
	t.currentBet = 0

	t.beginBettingRound()
}

func (t *Table) burn() {
	if t.deck.Remaining() > 0 {
		_ = t.mustDraw()
	}
}

func (t *Table) dealCommunity(count int) {
	for i := 0; i < count; i++ {
		t.community = append(t.community, t.mustDraw())
	}
}

// awardPot pushes the whole pot to one seat and ends the hand.
func (t *Table) awardPot(seat int) {
	winner := t.seats[seat]
	winner.Chips += t.pot
	t.lastAction = fmt.Sprintf("%s wins pot %d", winner.Name, t.pot)
	t.logger.Info("pot awarded", "seat", seat, "name", winner.Name, "pot", t.pot)

	t.pot = 0
	t.handActive = false
	t.toAct = -1
	t.pending = make(map[int]struct{})
}
