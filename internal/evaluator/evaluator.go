// Package evaluator ranks Texas Hold'em hands. Evaluate7 scans every 5-card
// subset of a 7-card hand and keeps the strongest, so a caller never needs
// to pick which five cards to play.
package evaluator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/seth1299/poker-game/internal/deck"
)

// Category enumerates hand categories from weakest to strongest. A royal
// flush is not a separate category; it is the ace-high straight flush.
type Category int

const (
	HighCard Category = iota + 1
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// String returns the display name of a category
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// Score is the ranking of a 5-card hand: a category plus a tie-break vector
// compared lexicographically within the category, and a human description.
type Score struct {
	Category Category
	TieBreak []int
	Desc     string
}

// Compare returns 1 if a beats b, -1 if b beats a, and 0 on an exact tie.
func Compare(a, b Score) int {
	if a.Category != b.Category {
		if a.Category > b.Category {
			return 1
		}
		return -1
	}
	for i := 0; i < len(a.TieBreak) && i < len(b.TieBreak); i++ {
		if a.TieBreak[i] != b.TieBreak[i] {
			if a.TieBreak[i] > b.TieBreak[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

// Evaluate7 returns the best 5-card score among all 21 subsets of exactly
// seven cards. It is pure: identical input always yields identical output.
func Evaluate7(cards []deck.Card) (Score, error) {
	if len(cards) != 7 {
		return Score{}, fmt.Errorf("evaluate requires exactly 7 cards, got %d", len(cards))
	}

	var best Score
	var subset [5]deck.Card
	for i := 0; i < 7; i++ {
		for j := i + 1; j < 7; j++ {
			// The 5-card subset is the 7 cards minus the pair (i, j).
			n := 0
			for k := 0; k < 7; k++ {
				if k == i || k == j {
					continue
				}
				subset[n] = cards[k]
				n++
			}
			s := score5(subset[:])
			if best.Category == 0 || Compare(s, best) > 0 {
				best = s
			}
		}
	}
	return best, nil
}

// score5 ranks exactly five cards.
func score5(cards []deck.Card) Score {
	vals := make([]int, 5)
	flush := true
	for i, c := range cards {
		vals[i] = c.Value()
		if c.Suit != cards[0].Suit {
			flush = false
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(vals)))

	uniq := vals[:0:0]
	for i, v := range vals {
		if i == 0 || v != vals[i-1] {
			uniq = append(uniq, v)
		}
	}
	straight, straightHigh := straightHigh(uniq)

	// Rank groups ordered by count, then value, descending.
	counts := map[int]int{}
	for _, v := range vals {
		counts[v]++
	}
	type group struct{ count, val int }
	groups := make([]group, 0, len(counts))
	for v, n := range counts {
		groups = append(groups, group{n, v})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].count != groups[j].count {
			return groups[i].count > groups[j].count
		}
		return groups[i].val > groups[j].val
	})

	switch {
	case flush && straight:
		desc := fmt.Sprintf("Straight Flush (%s-high)", rankName(straightHigh))
		if straightHigh == int(deck.Ace) {
			desc = "Royal Flush"
		}
		return Score{StraightFlush, []int{straightHigh}, desc}

	case groups[0].count == 4:
		quad := groups[0].val
		kicker := groups[1].val
		return Score{FourOfAKind, []int{quad, kicker},
			fmt.Sprintf("Four of a Kind (%ss, %s kicker)", rankName(quad), rankName(kicker))}

	case groups[0].count == 3 && groups[1].count >= 2:
		trips, pair := groups[0].val, groups[1].val
		return Score{FullHouse, []int{trips, pair},
			fmt.Sprintf("Full House (%ss full of %ss)", rankName(trips), rankName(pair))}

	case flush:
		return Score{Flush, vals, fmt.Sprintf("Flush (%s)", rankNames(vals))}

	case straight:
		return Score{Straight, []int{straightHigh},
			fmt.Sprintf("Straight (%s-high)", rankName(straightHigh))}

	case groups[0].count == 3:
		trips := groups[0].val
		kickers := []int{groups[1].val, groups[2].val}
		return Score{ThreeOfAKind, append([]int{trips}, kickers...),
			fmt.Sprintf("Three of a Kind (%ss, %s kickers)", rankName(trips), rankNames(kickers))}

	case groups[0].count == 2 && groups[1].count == 2:
		hi, lo := groups[0].val, groups[1].val
		kicker := groups[2].val
		return Score{TwoPair, []int{hi, lo, kicker},
			fmt.Sprintf("Two Pair (%ss and %ss, %s kicker)", rankName(hi), rankName(lo), rankName(kicker))}

	case groups[0].count == 2:
		pair := groups[0].val
		kickers := []int{groups[1].val, groups[2].val, groups[3].val}
		return Score{Pair, append([]int{pair}, kickers...),
			fmt.Sprintf("Pair (%ss, %s kickers)", rankName(pair), rankNames(kickers))}

	default:
		return Score{HighCard, vals, fmt.Sprintf("High Card (%s)", rankNames(vals))}
	}
}

// straightHigh reports whether the unique descending values contain a run of
// five, and the high card of the best such run. The wheel (A-5-4-3-2) counts
// as a straight with high card 5, not ace.
func straightHigh(uniq []int) (bool, int) {
	if len(uniq) < 5 {
		return false, 0
	}
	for i := 0; i+5 <= len(uniq); i++ {
		if uniq[i]-uniq[i+4] == 4 {
			return true, uniq[i]
		}
	}
	if containsAll(uniq, int(deck.Ace), 5, 4, 3, 2) {
		return true, 5
	}
	return false, 0
}

func containsAll(vals []int, want ...int) bool {
	for _, w := range want {
		found := false
		for _, v := range vals {
			if v == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func rankName(v int) string {
	return deck.Rank(v).String()
}

func rankNames(vals []int) string {
	names := make([]string, len(vals))
	for i, v := range vals {
		names[i] = rankName(v)
	}
	return strings.Join(names, " ")
}
