package deck

import (
	"errors"
	rand "math/rand/v2"

	"github.com/seth1299/poker-game/internal/randutil"
)

// ErrEmptyDeck is returned by Draw when no cards remain. A full hand deals
// at most 5 community cards plus two per seat, so hitting this in play
// indicates an engine bug rather than a recoverable condition.
var ErrEmptyDeck = errors.New("deck is empty")

// Deck represents a shuffled draw pile of the 52 standard cards. A dealt
// card never returns to the pile until Reset.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// New creates a full 52-card deck shuffled with the given seed.
func New(seed int64) *Deck {
	d := &Deck{
		cards: make([]Card, 0, 52),
		rng:   randutil.New(seed),
	}
	d.Reset()
	return d
}

// NewWithRand creates a shuffled deck drawing randomness from r.
func NewWithRand(r *rand.Rand) *Deck {
	d := &Deck{
		cards: make([]Card, 0, 52),
		rng:   r,
	}
	d.Reset()
	return d
}

// Reset restores the full 52-card deck and shuffles it.
func (d *Deck) Reset() {
	d.cards = d.cards[:0]
	for suit := Clubs; suit <= Spades; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards = append(d.cards, Card{Rank: rank, Suit: suit})
		}
	}
	d.Shuffle()
}

// Shuffle permutes the remaining cards in place.
func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw removes and returns the top card.
func (d *Deck) Draw() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrEmptyDeck
	}
	card := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return card, nil
}

// Remaining returns the number of cards left in the pile.
func (d *Deck) Remaining() int {
	return len(d.cards)
}
