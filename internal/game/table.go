// Package game owns all mutable table state for a hand of Texas Hold'em:
// seat rotation, the pot, street progression, turn order and showdown
// resolution. The presentation layer drives it through StartNewGame,
// StartNewHand, ApplyHumanAction and Update, and polls the read-only
// observables each frame to render.
//
// Known, deliberate simplification: there are no side pots. A multi-way
// all-in with unequal stacks awards the entire pot to the single best hand
// among the unfolded seats, and an exact tie at showdown goes to the first
// seat in seat order rather than splitting.
package game

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/seth1299/poker-game/internal/cpu"
	"github.com/seth1299/poker-game/internal/deck"
	"github.com/seth1299/poker-game/internal/randutil"
	"github.com/seth1299/poker-game/internal/rules"
)

// Table is the aggregate root for a game session. It is constructed once
// per session and exclusively owns every piece of per-hand state; all
// mutation happens synchronously inside action application and Update.
type Table struct {
	rules  rules.Rules
	blinds *rules.BlindSchedule
	logger *log.Logger

	seats     []*Seat
	humanSeat int // -1 when every seat is CPU-driven

	deck       *deck.Deck
	community  []deck.Card
	street     rules.Street
	handNumber int

	// Betting bookkeeping, reset per street.
	pot        int
	bets       []int
	currentBet int

	// Blinds cached for the current hand.
	bigBlindIndex int
	smallBlind    int
	bigBlind      int

	// Turn engine.
	handActive bool
	toAct      int // seat index, -1 when nobody is to act
	pending    map[int]struct{}
	thinkTimer float64

	lastAction string
	showdown   *ShowdownSummary
}

// NewTable creates a table with a fixed seat count for its lifetime.
// Configuration errors (too few seats, nil schedule) are rejected here.
func NewTable(specs []SeatSpec, blinds *rules.BlindSchedule, r rules.Rules, logger *log.Logger, opts ...Option) (*Table, error) {
	if len(specs) < 2 {
		return nil, fmt.Errorf("table needs at least 2 seats, got %d", len(specs))
	}
	if r.MaxPlayers > 0 && len(specs) > r.MaxPlayers {
		return nil, fmt.Errorf("table allows at most %d seats, got %d", r.MaxPlayers, len(specs))
	}
	if blinds == nil {
		return nil, fmt.Errorf("table requires a blind schedule")
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	cfg := tableConfig{seed: randutil.TimeSeed()}
	for _, opt := range opts {
		opt(&cfg)
	}

	t := &Table{
		rules:     r,
		blinds:    blinds,
		logger:    logger.WithPrefix("table"),
		seats:     make([]*Seat, 0, len(specs)),
		humanSeat: -1,
		bets:      make([]int, len(specs)),
		community: make([]deck.Card, 0, 5),
		toAct:     -1,
		pending:   make(map[int]struct{}),
	}

	for i, spec := range specs {
		seat := &Seat{Name: spec.Name, Chips: r.StartingChips}
		if spec.Human {
			if t.humanSeat == -1 {
				t.humanSeat = i
			}
		} else {
			policy := cpu.NewPolicy(spec.Personality, randutil.NewSeat(cfg.seed, i))
			if cfg.iterations > 0 {
				policy.Iterations = cfg.iterations
			}
			if cfg.thinkMax > 0 {
				policy.ThinkMin = cfg.thinkMin
				policy.ThinkMax = cfg.thinkMax
			}
			seat.policy = policy
		}
		t.seats = append(t.seats, seat)
	}

	if cfg.deck != nil {
		t.deck = cfg.deck
	} else {
		t.deck = deck.New(cfg.seed)
	}

	return t, nil
}

// StartNewGame resets chip stacks and the blind schedule, and puts the big
// blind on seat 0 for the first hand.
func (t *Table) StartNewGame() {
	t.handNumber = 0
	t.bigBlindIndex = 0
	t.blinds.StartNewGame()
	t.resetHandState()

	for _, s := range t.seats {
		s.Chips = t.rules.StartingChips
		s.resetForHand()
	}

	t.logger.Info("new game", "seats", len(t.seats), "chips", t.rules.StartingChips)
}

// StartNewHand rotates the big blind, posts blinds, deals hole cards and
// opens the pre-flop betting round. Only valid once the previous hand has
// finished.
func (t *Table) StartNewHand() {
	t.handNumber++
	t.blinds.AdvanceHand()
	t.resetHandState()

	for _, s := range t.seats {
		s.resetForHand()
	}

	if t.handNumber > 1 {
		t.bigBlindIndex = (t.bigBlindIndex + 1) % len(t.seats)
	}

	t.postBlinds()

	// Deal two cards around the table, starting left of the dealer.
	first := (t.DealerIndex() + 1) % len(t.seats)
	for i := 0; i < t.rules.HoleCards; i++ {
		idx := first
		for range t.seats {
			s := t.seats[idx]
			s.Hole = append(s.Hole, t.mustDraw())
			idx = (idx + 1) % len(t.seats)
		}
	}

	t.handActive = true
	t.beginBettingRound()

	t.logger.Debug("hand started",
		"hand", t.handNumber,
		"blinds", fmt.Sprintf("%d/%d", t.smallBlind, t.bigBlind),
		"dealer", t.DealerIndex(),
		"toAct", t.toAct)
}

func (t *Table) resetHandState() {
	t.deck.Reset()
	t.community = t.community[:0]
	t.street = rules.PreFlop

	t.pot = 0
	for i := range t.bets {
		t.bets[i] = 0
	}
	t.currentBet = 0

	t.handActive = false
	t.toAct = -1
	t.pending = make(map[int]struct{})
	t.thinkTimer = 0
	t.lastAction = ""
	t.showdown = nil
}

// SmallBlindIndex returns the seat posting the small blind this hand.
func (t *Table) SmallBlindIndex() int {
	n := len(t.seats)
	return (t.bigBlindIndex - 1 + n) % n
}

// DealerIndex returns the dealer button seat for this hand.
func (t *Table) DealerIndex() int {
	n := len(t.seats)
	return (t.SmallBlindIndex() - 1 + n) % n
}

// BigBlindIndex returns the seat posting the big blind this hand.
func (t *Table) BigBlindIndex() int {
	return t.bigBlindIndex
}

// ToCall returns how much the seat must add to match the current bet level.
func (t *Table) ToCall(seat int) int {
	return max(0, t.currentBet-t.bets[seat])
}

func (t *Table) postBlinds() {
	t.smallBlind, t.bigBlind = t.blinds.CurrentBlinds()
	sbSeat := t.SmallBlindIndex()
	bbSeat := t.bigBlindIndex

	sbPaid := t.takeChips(sbSeat, t.smallBlind)
	bbPaid := t.takeChips(bbSeat, t.bigBlind)

	t.bets[sbSeat] = sbPaid
	t.bets[bbSeat] = bbPaid
	t.pot += sbPaid + bbPaid
	t.currentBet = max(sbPaid, bbPaid)

	t.lastAction = fmt.Sprintf("Blinds posted: SB %d (%s), BB %d (%s)",
		sbPaid, t.seats[sbSeat].Name, bbPaid, t.seats[bbSeat].Name)
}

// takeChips removes up to amount chips from the seat and returns what was
// actually taken. A short stack simply contributes less.
func (t *Table) takeChips(seat, amount int) int {
	s := t.seats[seat]
	taken := min(amount, s.Chips)
	s.Chips -= taken
	return taken
}

// mustDraw pulls a card from the deck. With at most 5 community plus two
// hole cards per seat a 52-card deck cannot run dry, so an empty deck here
// is an engine bug and not a recoverable condition.
func (t *Table) mustDraw() deck.Card {
	c, err := t.deck.Draw()
	if err != nil {
		panic(fmt.Sprintf("deck exhausted mid-hand: %v", err))
	}
	return c
}

func (t *Table) unfoldedSeats() []int {
	out := make([]int, 0, len(t.seats))
	for i, s := range t.seats {
		if !s.Folded {
			out = append(out, i)
		}
	}
	return out
}

// seatsAbleToAct returns unfolded seats that still have chips. A seat with
// zero chips is frozen for the hand, treated as already all-in.
func (t *Table) seatsAbleToAct() []int {
	out := make([]int, 0, len(t.seats))
	for i, s := range t.seats {
		if !s.Folded && s.Chips > 0 {
			out = append(out, i)
		}
	}
	return out
}

// DebugString renders a single-line diagnostic summary of the table.
func (t *Table) DebugString() string {
	sb, bb := t.blinds.CurrentBlinds()
	var b strings.Builder
	fmt.Fprintf(&b, "Hand #%d | %s | Blinds %d/%d | Pot %d | Deck %d | D:%d SB:%d BB:%d | ToAct:%d",
		t.handNumber, t.street, sb, bb, t.pot, t.deck.Remaining(),
		t.DealerIndex(), t.SmallBlindIndex(), t.bigBlindIndex, t.toAct)
	for i, s := range t.seats {
		cards := make([]string, len(s.Hole))
		for j, c := range s.Hole {
			cards[j] = c.String()
		}
		fmt.Fprintf(&b, " | [%d] %s chips:%d bet:%d folded:%v hand:%s",
			i, s.Name, s.Chips, t.bets[i], s.Folded, strings.Join(cards, " "))
	}
	return b.String()
}
