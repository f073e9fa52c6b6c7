package game

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/seth1299/poker-game/internal/evaluator"
	"github.com/seth1299/poker-game/internal/rules"
)

func TestRaiseBelowMinimumIsBumped(t *testing.T) {
	t.Parallel()

	tab := newTestTable(t, 5)
	tab.StartNewGame()
	tab.StartNewHand()

	// Current bet 20, big blind 20: a raise to 25 becomes a raise to 40.
	tab.applyAction(1, rules.Raise, 25)

	require.Equal(t, 40, tab.CurrentBet())
	require.Equal(t, 40, tab.Seats()[1].Bet)
	require.Equal(t, 960, tab.Seats()[1].Chips)

	// Genuine aggression reopens the round for everyone else.
	for _, i := range []int{0, 2, 3, 4} {
		require.Contains(t, tab.pending, i, "seat %d owes a fresh decision", i)
	}
	require.NotContains(t, tab.pending, 1)
	require.Equal(t, 2, tab.ToAct())
	require.Equal(t, 5000, totalChips(tab))
}

func TestRaiseIsCappedAtAllIn(t *testing.T) {
	t.Parallel()

	tab := newTestTable(t, 5)
	tab.StartNewGame()
	tab.StartNewHand()
	tab.seats[1].Chips = 30

	tab.applyAction(1, rules.Raise, 1000)

	require.Equal(t, 30, tab.Seats()[1].Bet)
	require.Equal(t, 0, tab.Seats()[1].Chips)
	require.Equal(t, 30, tab.CurrentBet(), "a short all-in above the bet level still sets it")
}

func TestShortAllInBelowCallDegradesToCall(t *testing.T) {
	t.Parallel()

	tab := newTestTable(t, 5)
	tab.StartNewGame()
	tab.StartNewHand()
	tab.seats[1].Chips = 15

	// Seat 1 has already acted out of the pending set once it moves; a
	// 15-chip all-in cannot even match the 20-chip call, so it must not
	// reopen betting for seats that would otherwise have acted already.
	tab.applyAction(1, rules.Raise, 1000)

	require.Equal(t, 15, tab.Seats()[1].Bet)
	require.Equal(t, 0, tab.Seats()[1].Chips)
	require.Equal(t, 20, tab.CurrentBet(), "bet level unchanged by the short call")
	require.Equal(t, 2, tab.ToAct())
	require.NotContains(t, tab.pending, 1)
	require.Contains(t, tab.pending, 2)
}

func TestCheckFacingBetBecomesCall(t *testing.T) {
	t.Parallel()

	tab := newTestTable(t, 5)
	tab.StartNewGame()
	tab.StartNewHand()

	tab.applyAction(1, rules.Check, 0)

	require.Equal(t, 20, tab.Seats()[1].Bet)
	require.Equal(t, 980, tab.Seats()[1].Chips)
	require.Equal(t, "Called 20", tab.Seats()[1].LastAction)
}

func TestFoldToOneEndsHandWithoutShowdown(t *testing.T) {
	t.Parallel()

	tab := newTestTable(t, 5)
	tab.StartNewGame()
	tab.StartNewHand()

	for _, seat := range []int{1, 2, 3, 4} {
		tab.applyAction(seat, rules.Fold, 0)
	}

	require.False(t, tab.HandActive())
	require.Equal(t, 0, tab.Pot())
	require.Nil(t, tab.Showdown())
	require.Empty(t, tab.Community(), "no community cards once everyone folds")
	require.Equal(t, -1, tab.ToAct())

	// Big blind wins the blinds: 1000 - 20 + 30.
	require.Equal(t, 1010, tab.Seats()[0].Chips)
	require.Equal(t, 5000, totalChips(tab))
}

func TestIllegalActionsAreIgnored(t *testing.T) {
	t.Parallel()

	tab := newTestTable(t, 5)
	tab.StartNewGame()
	tab.StartNewHand()

	snapshot := tab.DebugString()

	// Out of turn.
	tab.applyAction(2, rules.Call, 0)
	require.Equal(t, snapshot, tab.DebugString())

	// Human acting while a CPU seat is up.
	tab.ApplyHumanAction(rules.Fold, 0)
	require.Equal(t, snapshot, tab.DebugString())
	require.False(t, tab.Seats()[0].Folded)

	// A folded seat trying to act again.
	tab.applyAction(1, rules.Fold, 0)
	after := tab.DebugString()
	tab.applyAction(1, rules.Raise, 100)
	require.Equal(t, after, tab.DebugString())

	// Any action while no hand is running.
	for _, seat := range []int{2, 3, 4} {
		tab.applyAction(seat, rules.Fold, 0)
	}
	require.False(t, tab.HandActive())
	ended := tab.DebugString()
	tab.applyAction(0, rules.Bet, 50)
	require.Equal(t, ended, tab.DebugString())
}

func TestCheckedDownHandReachesShowdown(t *testing.T) {
	t.Parallel()

	tab := newTestTable(t, 3)
	tab.StartNewGame()
	tab.StartNewHand()

	// 3 seats, hand 1: bb=0, sb=2, dealer=1. Pre-flop action runs 1, 2, 0.
	tab.applyAction(1, rules.Call, 0)
	tab.applyAction(2, rules.Call, 0)
	tab.applyAction(0, rules.Check, 0)

	require.Equal(t, rules.Flop, tab.Street())
	require.Len(t, tab.Community(), 3)
	require.Equal(t, 60, tab.Pot())
	require.Equal(t, 0, tab.CurrentBet(), "bet level resets each street")
	for i, v := range tab.Seats() {
		require.Zero(t, v.Bet, "seat %d street bet should reset", i)
	}

	// Post-flop action starts left of the dealer: 2, 0, 1.
	require.Equal(t, 2, tab.ToAct())
	checkAround := func() {
		for _, seat := range []int{2, 0, 1} {
			tab.applyAction(seat, rules.Check, 0)
		}
	}

	checkAround()
	require.Equal(t, rules.Turn, tab.Street())
	require.Len(t, tab.Community(), 4)

	checkAround()
	require.Equal(t, rules.River, tab.Street())
	require.Len(t, tab.Community(), 5)

	checkAround()
	require.Equal(t, rules.Showdown, tab.Street())
	require.False(t, tab.HandActive())
	require.Equal(t, 0, tab.Pot())
	// 52 minus 6 hole cards, 3 burns and 5 board cards.
	require.Equal(t, 38, tab.deck.Remaining())

	sd := tab.Showdown()
	require.NotNil(t, sd)
	require.Equal(t, 60, sd.Pot)
	require.Len(t, sd.Seats, 3)
	require.Equal(t, tab.seats[sd.Winner].Name, sd.WinnerName)

	// The winner must be the first seat holding the strongest hand.
	community := tab.Community()
	want := -1
	var best evaluator.Score
	for i, v := range tab.Seats() {
		score, err := evaluator.Evaluate7(append(v.Hole, community...))
		require.NoError(t, err)
		if want == -1 || evaluator.Compare(score, best) > 0 {
			want, best = i, score
		}
	}
	require.Equal(t, want, sd.Winner)

	// Winner received the whole pot; chips are conserved.
	require.Equal(t, 1040, tab.Seats()[sd.Winner].Chips)
	require.Equal(t, 3000, totalChips(tab))
}

func TestUpdateWaitsOutThinkTimer(t *testing.T) {
	t.Parallel()

	tab := newTestTable(t, 5, WithCPUTuning(5, 0.5, 0.5))
	tab.StartNewGame()
	tab.StartNewHand()
	require.Equal(t, 1, tab.ToAct())

	tab.Update(0.2)
	require.Equal(t, 1, tab.ToAct())
	require.Empty(t, tab.Seats()[1].LastAction)

	tab.Update(0.2)
	require.Equal(t, 1, tab.ToAct())

	// Accumulated 0.6s >= the fixed 0.5s think time: the seat acts.
	tab.Update(0.2)
	require.NotEmpty(t, tab.Seats()[1].LastAction)
	require.NotEqual(t, 1, tab.ToAct())
}

func TestUpdateNeverActsForHuman(t *testing.T) {
	t.Parallel()

	tab := newTestTable(t, 5, WithCPUTuning(5, 0.01, 0.01))
	tab.StartNewGame()
	tab.StartNewHand()

	// Fold the field down to the small blind, who calls; the big blind
	// (the human, seat 0) is left holding the option.
	for _, seat := range []int{1, 2, 3} {
		tab.applyAction(seat, rules.Fold, 0)
	}
	tab.applyAction(4, rules.Call, 0)
	require.Equal(t, 0, tab.ToAct())
	require.True(t, tab.HumanCanAct())

	for i := 0; i < 100; i++ {
		tab.Update(1.0)
	}
	require.Equal(t, 0, tab.ToAct(), "human seat must never auto-act")
	require.Equal(t, rules.PreFlop, tab.Street())

	tab.ApplyHumanAction(rules.Check, 0)
	require.Equal(t, rules.Flop, tab.Street())
}

func TestUpdateIsNoopWithoutActiveHand(t *testing.T) {
	t.Parallel()

	tab := newTestTable(t, 3, WithCPUTuning(5, 0.01, 0.01))
	tab.StartNewGame()

	tab.Update(1.0)
	require.False(t, tab.HandActive())
	require.Equal(t, -1, tab.ToAct())
}

// Driving Update in a frame loop with only CPU seats must finish hands on
// its own and conserve chips.
func TestUpdateDrivesFullCPUHand(t *testing.T) {
	t.Parallel()

	specs := []SeatSpec{{Name: "a"}, {Name: "b"}, {Name: "c"}}
	tab, err := NewTable(specs, testSchedule(t), rules.Default(), log.New(io.Discard),
		WithSeed(7), WithCPUTuning(10, 0.001, 0.002))
	require.NoError(t, err)

	tab.StartNewGame()
	tab.StartNewHand()

	for frame := 0; frame < 100_000 && tab.HandActive(); frame++ {
		tab.Update(1.0 / 60.0)
	}

	require.False(t, tab.HandActive(), "CPU-only hand failed to finish")
	require.Equal(t, 3000, totalChips(tab))
}
