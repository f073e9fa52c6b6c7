package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/seth1299/poker-game/internal/config"
	"github.com/seth1299/poker-game/internal/game"
	"github.com/seth1299/poker-game/internal/randutil"
)

// CLI is the interactive table client. It is a thin presentation layer:
// all rules live in internal/game and this program only polls observables,
// ticks the engine and forwards the human seat's actions.
type CLI struct {
	Config  string `short:"c" help:"Path to HCL table config" default:"holdem.hcl"`
	Seed    int64  `help:"Deterministic seed (0 uses the clock)" default:"0"`
	Debug   bool   `short:"d" help:"Enable debug logging"`
	LogFile string `help:"Debug log file" default:"holdem.log"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("holdem"),
		kong.Description("Play Texas Hold'em against CPU opponents."))

	if err := run(cli); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		ctx.Exit(1)
	}
	ctx.Exit(0)
}

func run(cli CLI) error {
	// The TUI owns the terminal, so logs go to a file.
	logFile, err := os.OpenFile(cli.LogFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o666)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logFile.Close()

	logger := log.NewWithOptions(logFile, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
	if cli.Debug {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := config.Load(cli.Config)
	if err != nil {
		return err
	}
	specs, err := cfg.SeatSpecs()
	if err != nil {
		return err
	}
	schedule, err := cfg.Schedule()
	if err != nil {
		return err
	}

	seed := cli.Seed
	if seed == 0 {
		seed = randutil.TimeSeed()
	}

	table, err := game.NewTable(specs, schedule, cfg.Rules(), logger,
		game.WithSeed(seed),
		game.WithCPUTuning(cfg.Game.MCIterations, cfg.Game.ThinkMin, cfg.Game.ThinkMax))
	if err != nil {
		return err
	}

	table.StartNewGame()
	table.StartNewHand()

	logger.Info("starting table", "seats", len(specs), "seed", seed)

	program := tea.NewProgram(newModel(table, logger), tea.WithAltScreen())
	_, err = program.Run()
	return err
}
