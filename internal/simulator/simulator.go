// Package simulator runs headless multi-hand games on an all-CPU table,
// driving the engine frame by frame exactly like a presentation layer
// would. Useful for soak-testing the betting machine and for comparing
// personalities over many hands.
package simulator

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/seth1299/poker-game/internal/game"
	"github.com/seth1299/poker-game/internal/rules"
)

// Config holds configuration for a simulation run.
type Config struct {
	Hands  int
	Seed   int64
	Seats  []game.SeatSpec
	Rules  rules.Rules
	Blinds *rules.BlindSchedule
	Logger *log.Logger

	// FrameDT is the simulated seconds fed to Update per frame.
	FrameDT float64

	// Realtime paces frames on the clock instead of running flat out.
	// The clock is injectable so tests can use quartz.NewMock.
	Realtime bool
	Clock    quartz.Clock
}

// HandOutcome records who took the pot in one hand.
type HandOutcome struct {
	Hand     int
	Winner   int
	Pot      int
	Showdown bool
}

// Results aggregates a finished run.
type Results struct {
	HandsPlayed int
	Wins        []int
	FinalChips  []int
	Outcomes    []HandOutcome
}

// Simulator drives a table through a configured number of hands.
type Simulator struct {
	cfg Config
}

// New creates a simulator. Think time is zeroed out so CPU seats act on the
// first frame of their turn; pacing belongs to Realtime mode, not to the
// decision path.
func New(cfg Config) (*Simulator, error) {
	if cfg.Hands <= 0 {
		return nil, fmt.Errorf("simulation needs at least 1 hand, got %d", cfg.Hands)
	}
	for _, s := range cfg.Seats {
		if s.Human {
			return nil, fmt.Errorf("seat %q is human; the simulator drives CPU-only tables", s.Name)
		}
	}
	if cfg.FrameDT <= 0 {
		cfg.FrameDT = 1.0 / 60
	}
	if cfg.Clock == nil {
		cfg.Clock = quartz.NewReal()
	}
	return &Simulator{cfg: cfg}, nil
}

// maxFramesPerHand guards against a stalled betting round looping forever.
// At 60 simulated fps this is over an hour of table time per hand.
const maxFramesPerHand = 250_000

// Run plays the configured hands to completion and returns statistics. The
// run stops early when one seat holds every chip.
func (s *Simulator) Run() (*Results, error) {
	logger := s.cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	table, err := game.NewTable(s.cfg.Seats, s.cfg.Blinds, s.cfg.Rules, logger,
		game.WithSeed(s.cfg.Seed),
		game.WithCPUTuning(0, 0, 0.001))
	if err != nil {
		return nil, err
	}
	table.StartNewGame()

	results := &Results{
		Wins:       make([]int, len(s.cfg.Seats)),
		FinalChips: make([]int, len(s.cfg.Seats)),
	}

	var ticker *quartz.Ticker
	if s.cfg.Realtime {
		ticker = s.cfg.Clock.NewTicker(time.Duration(s.cfg.FrameDT * float64(time.Second)))
		defer ticker.Stop()
	}

	for hand := 0; hand < s.cfg.Hands; hand++ {
		before := chipCounts(table)

		table.StartNewHand()
		potTotal := table.Pot()

		frames := 0
		for table.HandActive() {
			table.Update(s.cfg.FrameDT)
			if table.Pot() > potTotal {
				potTotal = table.Pot()
			}
			if ticker != nil {
				<-ticker.C
			}
			frames++
			if frames > maxFramesPerHand {
				return nil, fmt.Errorf("hand %d stalled after %d frames: %s",
					hand+1, frames, table.DebugString())
			}
		}

		outcome := HandOutcome{Hand: hand + 1, Winner: -1, Pot: potTotal}
		if sd := table.Showdown(); sd != nil {
			outcome.Winner = sd.Winner
			outcome.Pot = sd.Pot
			outcome.Showdown = true
		} else {
			// Fold-out: the winner is the seat whose stack grew.
			for i, v := range chipCounts(table) {
				if v > before[i] {
					outcome.Winner = i
					break
				}
			}
		}
		if outcome.Winner >= 0 {
			results.Wins[outcome.Winner]++
		}
		results.Outcomes = append(results.Outcomes, outcome)
		results.HandsPlayed++

		logger.Debug("hand finished",
			"hand", outcome.Hand, "winner", outcome.Winner,
			"pot", outcome.Pot, "showdown", outcome.Showdown)

		if winner, done := soleSurvivor(table); done {
			logger.Info("game over, one stack remains", "seat", winner, "hands", results.HandsPlayed)
			break
		}
	}

	for i, v := range chipCounts(table) {
		results.FinalChips[i] = v
	}
	return results, nil
}

func chipCounts(t *game.Table) []int {
	seats := t.Seats()
	out := make([]int, len(seats))
	for i, s := range seats {
		out[i] = s.Chips
	}
	return out
}

func soleSurvivor(t *game.Table) (int, bool) {
	winner, holders := -1, 0
	for i, v := range chipCounts(t) {
		if v > 0 {
			winner = i
			holders++
		}
	}
	return winner, holders == 1
}
