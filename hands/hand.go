package hands

import (
	"sort"

	"github.com/lazharichir/pokerhands/cards"
)

// Hand is a sequence of five cards, usually ordered by OrderHand
type Hand []cards.Card

// OrderHand parses the tokens and sorts the cards by descending rank.
// Cards of equal rank keep their relative order.
func OrderHand(tokens []string) (Hand, error) {
	stack, err := cards.ParseStack(tokens)
	if err != nil {
		return nil, err
	}
	return SortHand(Hand(stack)), nil
}

// SortHand returns a stably sorted copy of the hand, highest rank first
func SortHand(hand Hand) Hand {
	result := make(Hand, len(hand))
	copy(result, hand)

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Rank > result[j].Rank
	})

	return result
}

// Ranks returns the rank of every card in order
func (h Hand) Ranks() []cards.Rank {
	ranks := make([]cards.Rank, len(h))
	for i, c := range h {
		ranks[i] = c.Rank
	}
	return ranks
}

func (h Hand) String() string {
	return cards.Stack(h).String()
}
