// Package reference describes hands the way standard poker rules name them.
// The verdict engine only knows five categories; this is for display.
package reference

import (
	"fmt"

	"github.com/lazharichir/pokerhands/cards"
	"github.com/lazharichir/pokerhands/hands"
	"github.com/paulhankin/poker"
)

var suits = map[cards.Suit]poker.Suit{
	cards.Clubs:    poker.Club,
	cards.Diamonds: poker.Diamond,
	cards.Hearts:   poker.Heart,
	cards.Spades:   poker.Spade,
}

// convertCard maps a card onto the evaluator's representation, where aces are rank 1
func convertCard(c cards.Card) (poker.Card, error) {
	var zero poker.Card
	if !c.Rank.Valid() {
		return zero, fmt.Errorf("rank %d out of range", c.Rank)
	}
	suit, ok := suits[c.Suit]
	if !ok {
		return zero, fmt.Errorf("unknown suit %q", c.Suit)
	}

	rank := poker.Rank(c.Rank)
	if c.Rank == cards.Ace {
		rank = poker.Rank(1)
	}

	card, err := poker.MakeCard(suit, rank)
	if err != nil {
		return zero, fmt.Errorf("convert %s: %w", c, err)
	}
	return card, nil
}

// Describe returns the standard poker name of a five card hand, e.g. a straight
func Describe(hand hands.Hand) (string, error) {
	if len(hand) != cards.HandSize {
		return "", fmt.Errorf("describe: need %d cards, got %d", cards.HandSize, len(hand))
	}

	converted := make([]poker.Card, 0, len(hand))
	for _, c := range hand {
		card, err := convertCard(c)
		if err != nil {
			return "", err
		}
		converted = append(converted, card)
	}

	return poker.Describe(converted)
}
