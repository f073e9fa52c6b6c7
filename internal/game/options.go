package game

import "github.com/seth1299/poker-game/internal/deck"

// Option configures a Table during creation.
type Option func(*tableConfig)

type tableConfig struct {
	seed       int64
	deck       *deck.Deck
	iterations int
	thinkMin   float64
	thinkMax   float64
}

// WithSeed makes the table fully deterministic: the deck shuffle and every
// seat's decision sampling derive from this one seed.
func WithSeed(seed int64) Option {
	return func(c *tableConfig) {
		c.seed = seed
	}
}

// WithDeck supplies a pre-built deck, typically a rigged one in tests.
func WithDeck(d *deck.Deck) Option {
	return func(c *tableConfig) {
		c.deck = d
	}
}

// WithCPUTuning overrides the Monte Carlo iteration count and think-time
// range for every CPU seat.
func WithCPUTuning(iterations int, thinkMin, thinkMax float64) Option {
	return func(c *tableConfig) {
		c.iterations = iterations
		c.thinkMin = thinkMin
		c.thinkMax = thinkMax
	}
}
