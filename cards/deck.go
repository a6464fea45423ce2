package cards

import (
	"fmt"
	"math/rand"
	"slices"
)

// HandSize is the number of cards dealt to each player
const HandSize = 5

// BuildDeck returns the 52 card tokens, suit-major (C, D, H, S) and rank-minor (2 to A)
func BuildDeck() []string {
	tokens := make([]string, 0, len(Suits)*len(Ranks))
	for _, suit := range Suits {
		for _, rank := range Ranks {
			tokens = append(tokens, Card{Rank: rank, Suit: suit}.String())
		}
	}
	return tokens
}

// Deck is an ordered set of card tokens. Only a Dealer removes cards from it.
type Deck struct {
	tokens []string
}

// NewDeck creates a full 52 card deck
func NewDeck() *Deck {
	return &Deck{tokens: BuildDeck()}
}

// NewDeckFrom creates a deck holding the given tokens
func NewDeckFrom(tokens ...string) *Deck {
	return &Deck{tokens: slices.Clone(tokens)}
}

// Len returns the number of cards left
func (d *Deck) Len() int {
	return len(d.tokens)
}

// Tokens returns a copy of the remaining tokens in order
func (d *Deck) Tokens() []string {
	return slices.Clone(d.tokens)
}

// Contains checks if the token is still in the deck
func (d *Deck) Contains(token string) bool {
	return slices.Contains(d.tokens, token)
}

func (d *Deck) removeAt(i int) string {
	token := d.tokens[i]
	d.tokens = slices.Delete(d.tokens, i, i+1)
	return token
}

// Dealer picks cards out of a deck using a random source it is handed once
type Dealer struct {
	rng *rand.Rand
}

// NewDealer creates a dealer drawing from rng
func NewDealer(rng *rand.Rand) *Dealer {
	return &Dealer{rng: rng}
}

// Deal removes a hand of HandSize cards from the deck
func (dl *Dealer) Deal(deck *Deck) ([]string, error) {
	return dl.DealN(deck, HandSize)
}

// DealN removes count randomly chosen cards from the deck. The deck is left
// untouched when it holds fewer than count cards.
func (dl *Dealer) DealN(deck *Deck, count int) ([]string, error) {
	if count < 0 || deck.Len() < count {
		return nil, fmt.Errorf("deal %d from %d: %w", count, deck.Len(), ErrOutOfRange)
	}

	hand := make([]string, 0, count)
	for i := 0; i < count; i++ {
		hand = append(hand, deck.removeAt(dl.rng.Intn(deck.Len())))
	}
	return hand, nil
}
