package deck

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewDeckHolds52DistinctCards(t *testing.T) {
	t.Parallel()

	d := New(1)
	require.Equal(t, 52, d.Remaining())

	seen := make(map[Card]bool, 52)
	for i := 0; i < 52; i++ {
		c, err := d.Draw()
		require.NoError(t, err)
		require.False(t, seen[c], "card %s dealt twice", c)
		seen[c] = true
	}
	require.Equal(t, 0, d.Remaining())
}

func TestDrawFromEmptyDeck(t *testing.T) {
	t.Parallel()

	d := New(1)
	for i := 0; i < 52; i++ {
		_, err := d.Draw()
		require.NoError(t, err)
	}

	_, err := d.Draw()
	require.True(t, errors.Is(err, ErrEmptyDeck))

	// The error is sticky until the deck is reset.
	_, err = d.Draw()
	require.True(t, errors.Is(err, ErrEmptyDeck))
}

func TestResetRestoresFullDeck(t *testing.T) {
	t.Parallel()

	d := New(7)
	for i := 0; i < 10; i++ {
		_, err := d.Draw()
		require.NoError(t, err)
	}
	require.Equal(t, 42, d.Remaining())

	d.Reset()
	require.Equal(t, 52, d.Remaining())
}

func TestShuffleIsSeedDeterministic(t *testing.T) {
	t.Parallel()

	drawAll := func(d *Deck) []Card {
		out := make([]Card, 0, 52)
		for d.Remaining() > 0 {
			c, err := d.Draw()
			require.NoError(t, err)
			out = append(out, c)
		}
		return out
	}

	a := drawAll(New(42))
	b := drawAll(New(42))
	require.Equal(t, a, b, "same seed must deal the same order")

	c := drawAll(New(43))
	require.NotEqual(t, a, c, "different seeds should deal different orders")
}
