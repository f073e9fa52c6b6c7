// holdem-sim plays CPU-only hands headlessly and reports per-seat results.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/seth1299/poker-game/internal/config"
	"github.com/seth1299/poker-game/internal/cpu"
	"github.com/seth1299/poker-game/internal/randutil"
	"github.com/seth1299/poker-game/internal/simulator"
)

type CLI struct {
	Hands    int    `short:"n" help:"Number of hands to simulate" default:"100"`
	Seed     int64  `help:"Deterministic seed (0 uses the clock)" default:"0"`
	Config   string `short:"c" help:"Path to HCL table config" default:"holdem.hcl"`
	Realtime bool   `help:"Pace frames on the wall clock instead of running flat out"`
	Debug    bool   `short:"d" help:"Enable debug logging"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("holdem-sim"),
		kong.Description("Headless CPU-vs-CPU hold'em simulator."))

	if err := run(cli); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		ctx.Exit(1)
	}
	ctx.Exit(0)
}

func run(cli CLI) error {
	logger := log.New(os.Stderr)
	if cli.Debug {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := config.Load(cli.Config)
	if err != nil {
		return err
	}
	schedule, err := cfg.Schedule()
	if err != nil {
		return err
	}

	// Every seat plays as a CPU here; configured human seats get a
	// neutral personality instead.
	specs, err := cfg.SeatSpecs()
	if err != nil {
		return err
	}
	for i := range specs {
		if specs[i].Human {
			specs[i].Human = false
			specs[i].Personality = cpu.Neutral
		}
	}

	seed := cli.Seed
	if seed == 0 {
		seed = randutil.TimeSeed()
	}

	sim, err := simulator.New(simulator.Config{
		Hands:    cli.Hands,
		Seed:     seed,
		Seats:    specs,
		Rules:    cfg.Rules(),
		Blinds:   schedule,
		Logger:   logger,
		Realtime: cli.Realtime,
	})
	if err != nil {
		return err
	}

	results, err := sim.Run()
	if err != nil {
		return err
	}

	showdowns := 0
	for _, o := range results.Outcomes {
		if o.Showdown {
			showdowns++
		}
	}

	fmt.Printf("Simulated %d hands (seed %d), %d showdowns\n\n",
		results.HandsPlayed, seed, showdowns)
	fmt.Printf("%-10s %-12s %6s %8s\n", "SEAT", "PERSONALITY", "WINS", "CHIPS")
	for i, spec := range specs {
		fmt.Printf("%-10s %-12s %6d %8d\n",
			spec.Name, spec.Personality, results.Wins[i], results.FinalChips[i])
	}

	return nil
}
