// holdem-odds estimates hero equity against random opponent hands by Monte
// Carlo simulation, splitting trials across worker goroutines.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"golang.org/x/sync/errgroup"

	"github.com/seth1299/poker-game/internal/deck"
	"github.com/seth1299/poker-game/internal/evaluator"
	"github.com/seth1299/poker-game/internal/randutil"
)

type CLI struct {
	Hero    string `arg:"" help:"Hero hole cards, e.g. \"As Kd\""`
	Board   string `short:"b" help:"Community cards (0, 3, 4 or 5), e.g. \"7h 8h 9c\"" default:""`
	Trials  int    `short:"t" help:"Number of Monte Carlo trials" default:"100000"`
	Workers int    `short:"w" help:"Worker goroutines" default:"4"`
	Seed    int64  `help:"Deterministic seed (0 uses the clock)" default:"0"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("holdem-odds"),
		kong.Description("Monte Carlo equity calculator for Texas Hold'em."))

	if err := run(cli); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		ctx.Exit(1)
	}
	ctx.Exit(0)
}

func run(cli CLI) error {
	hero, err := parseCards(cli.Hero)
	if err != nil {
		return fmt.Errorf("hero: %w", err)
	}
	if len(hero) != 2 {
		return fmt.Errorf("hero needs exactly 2 cards, got %d", len(hero))
	}

	board, err := parseCards(cli.Board)
	if err != nil {
		return fmt.Errorf("board: %w", err)
	}
	switch len(board) {
	case 0, 3, 4, 5:
	default:
		return fmt.Errorf("board must have 0, 3, 4 or 5 cards, got %d", len(board))
	}
	if err := checkDistinct(hero, board); err != nil {
		return err
	}

	if cli.Trials <= 0 {
		return fmt.Errorf("trials must be positive")
	}
	workers := cli.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > cli.Trials {
		workers = cli.Trials
	}
	seed := cli.Seed
	if seed == 0 {
		seed = randutil.TimeSeed()
	}

	wins, ties := simulate(hero, board, cli.Trials, workers, seed)

	equity := (float64(wins) + float64(ties)/2) / float64(cli.Trials)
	fmt.Printf("Hero:   %s\n", cardList(hero))
	if len(board) > 0 {
		fmt.Printf("Board:  %s\n", cardList(board))
	}
	fmt.Printf("Trials: %d (%d workers)\n", cli.Trials, workers)
	fmt.Printf("Win %.2f%%  Tie %.2f%%  Lose %.2f%%  Equity %.2f%%\n",
		pct(wins, cli.Trials), pct(ties, cli.Trials),
		pct(cli.Trials-wins-ties, cli.Trials), equity*100)
	return nil
}

// simulate runs trials split across workers, each with an independent
// random stream, and aggregates win/tie counts.
func simulate(hero, board []deck.Card, trials, workers int, seed int64) (wins, ties int) {
	results := make([]struct{ wins, ties int }, workers)
	per := trials / workers

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		share := per
		if w == 0 {
			share += trials % workers
		}
		g.Go(func() error {
			rng := randutil.NewSeat(seed, w)
			pool := unseen(hero, board)
			need := 5 - len(board)

			full := make([]deck.Card, 0, 5)
			mine := make([]deck.Card, 0, 7)
			theirs := make([]deck.Card, 0, 7)

			for i := 0; i < share; i++ {
				for j := 0; j < need+2; j++ {
					k := j + rng.IntN(len(pool)-j)
					pool[j], pool[k] = pool[k], pool[j]
				}
				full = append(append(full[:0], board...), pool[:need]...)
				mine = append(append(mine[:0], hero...), full...)
				theirs = append(append(theirs[:0], pool[need:need+2]...), full...)

				my, err := evaluator.Evaluate7(mine)
				if err != nil {
					return err
				}
				opp, err := evaluator.Evaluate7(theirs)
				if err != nil {
					return err
				}
				switch cmp := evaluator.Compare(my, opp); {
				case cmp > 0:
					results[w].wins++
				case cmp == 0:
					results[w].ties++
				}
			}
			return nil
		})
	}
	// Workers only fail on malformed inputs, which were validated above.
	_ = g.Wait()

	for _, r := range results {
		wins += r.wins
		ties += r.ties
	}
	return wins, ties
}

func unseen(hero, board []deck.Card) []deck.Card {
	seen := make(map[deck.Card]bool)
	for _, c := range hero {
		seen[c] = true
	}
	for _, c := range board {
		seen[c] = true
	}
	out := make([]deck.Card, 0, 52)
	for suit := deck.Clubs; suit <= deck.Spades; suit++ {
		for rank := deck.Two; rank <= deck.Ace; rank++ {
			c := deck.Card{Rank: rank, Suit: suit}
			if !seen[c] {
				out = append(out, c)
			}
		}
	}
	return out
}

func parseCards(s string) ([]deck.Card, error) {
	fields := strings.Fields(strings.ReplaceAll(s, ",", " "))
	cards := make([]deck.Card, 0, len(fields))
	for _, f := range fields {
		c, err := deck.ParseCard(f)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

func checkDistinct(groups ...[]deck.Card) error {
	seen := make(map[deck.Card]bool)
	for _, g := range groups {
		for _, c := range g {
			if seen[c] {
				return fmt.Errorf("duplicate card %s", c)
			}
			seen[c] = true
		}
	}
	return nil
}

func cardList(cards []deck.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.Display()
	}
	return strings.Join(parts, " ")
}

func pct(n, total int) float64 {
	return float64(n) / float64(total) * 100
}
