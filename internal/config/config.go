// Package config loads table configuration from HCL. When no file is
// present the defaults reproduce the reference table: a human seat plus
// four CPUs, 1000 starting chips and 10/20 blinds escalating every 5 hands.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/seth1299/poker-game/internal/cpu"
	"github.com/seth1299/poker-game/internal/game"
	"github.com/seth1299/poker-game/internal/rules"
)

// Config is the full table configuration.
type Config struct {
	Game  GameSettings `hcl:"game,block"`
	Seats []SeatConfig `hcl:"seat,block"`
}

// GameSettings tunes rules, blinds and CPU behaviour.
type GameSettings struct {
	StartingChips int     `hcl:"starting_chips,optional"`
	SmallBlind    int     `hcl:"small_blind,optional"`
	BigBlind      int     `hcl:"big_blind,optional"`
	HandsPerLevel int     `hcl:"hands_per_level,optional"`
	BlindLevels   int     `hcl:"blind_levels,optional"`
	BlindGrowth   float64 `hcl:"blind_growth,optional"`
	ThinkMin      float64 `hcl:"think_min,optional"`
	ThinkMax      float64 `hcl:"think_max,optional"`
	MCIterations  int     `hcl:"mc_iterations,optional"`
}

// SeatConfig defines one seat. A seat is either human or carries a CPU
// personality.
type SeatConfig struct {
	Name        string `hcl:"name,label"`
	Human       bool   `hcl:"human,optional"`
	Personality string `hcl:"personality,optional"`
}

// Default returns the reference five-seat table.
func Default() *Config {
	return &Config{
		Game: GameSettings{
			StartingChips: 1000,
			SmallBlind:    10,
			BigBlind:      20,
			HandsPerLevel: 5,
			BlindLevels:   10,
			BlindGrowth:   1.5,
			ThinkMin:      0.8,
			ThinkMax:      1.8,
			MCIterations:  70,
		},
		Seats: []SeatConfig{
			{Name: "You", Human: true},
			{Name: "AI-1", Personality: "neutral"},
			{Name: "AI-2", Personality: "defensive"},
			{Name: "AI-3", Personality: "aggressive"},
			{Name: "AI-4", Personality: "neutral"},
		},
	}
}

// Load reads an HCL config file, falling back to Default when the file does
// not exist. Missing fields take their default values.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config: %s", diags.Error())
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	def := Default()
	if cfg.Game.StartingChips == 0 {
		cfg.Game.StartingChips = def.Game.StartingChips
	}
	if cfg.Game.SmallBlind == 0 {
		cfg.Game.SmallBlind = def.Game.SmallBlind
	}
	if cfg.Game.BigBlind == 0 {
		cfg.Game.BigBlind = def.Game.BigBlind
	}
	if cfg.Game.HandsPerLevel == 0 {
		cfg.Game.HandsPerLevel = def.Game.HandsPerLevel
	}
	if cfg.Game.BlindLevels == 0 {
		cfg.Game.BlindLevels = def.Game.BlindLevels
	}
	if cfg.Game.BlindGrowth == 0 {
		cfg.Game.BlindGrowth = def.Game.BlindGrowth
	}
	if cfg.Game.ThinkMax == 0 {
		cfg.Game.ThinkMin = def.Game.ThinkMin
		cfg.Game.ThinkMax = def.Game.ThinkMax
	}
	if cfg.Game.MCIterations == 0 {
		cfg.Game.MCIterations = def.Game.MCIterations
	}
	if len(cfg.Seats) == 0 {
		cfg.Seats = def.Seats
	}
}

// Rules converts the settings into table rules.
func (c *Config) Rules() rules.Rules {
	r := rules.Default()
	r.StartingChips = c.Game.StartingChips
	return r
}

// Schedule builds the blind escalation ladder from the settings.
func (c *Config) Schedule() (*rules.BlindSchedule, error) {
	return rules.DefaultBlindSchedule(
		c.Game.SmallBlind,
		c.Game.BigBlind,
		c.Game.HandsPerLevel,
		c.Game.BlindLevels,
		c.Game.BlindGrowth,
	)
}

// SeatSpecs converts the configured seats, validating personalities.
func (c *Config) SeatSpecs() ([]game.SeatSpec, error) {
	specs := make([]game.SeatSpec, 0, len(c.Seats))
	for _, s := range c.Seats {
		spec := game.SeatSpec{Name: s.Name, Human: s.Human}
		if !s.Human {
			p, err := cpu.ParsePersonality(s.Personality)
			if err != nil {
				return nil, fmt.Errorf("seat %q: %w", s.Name, err)
			}
			spec.Personality = p
		}
		specs = append(specs, spec)
	}
	return specs, nil
}
