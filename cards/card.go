package cards

import (
	"strconv"
)

// Suit represents a card suit
type Suit string

const (
	Clubs    Suit = "C"
	Diamonds Suit = "D"
	Hearts   Suit = "H"
	Spades   Suit = "S"
)

// Suits lists the suits in deck order
var Suits = []Suit{Clubs, Diamonds, Hearts, Spades}

// Rank is the numeric value of a card, 2 through 14
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Ranks lists the ranks in deck order
var Ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

// Token returns the rank as it appears in a card token ("10", "J", ...)
func (r Rank) Token() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}
	return strconv.Itoa(int(r))
}

// Name returns the display name used in verdicts ("10", "Jack", ...)
func (r Rank) Name() string {
	return RankName(r)
}

// Valid reports whether r is within [Two, Ace]
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

// Card represents a playing card
type Card struct {
	Rank Rank
	Suit Suit
}

// String returns the token form of a card, e.g. "10D"
func (c Card) String() string {
	return c.Rank.Token() + string(c.Suit)
}

// ParseCard creates a card from its token, e.g. "10D" or "AS"
func ParseCard(token string) (Card, error) {
	rankToken, err := RankToken(token)
	if err != nil {
		return Card{}, err
	}

	rank, err := RankValue(rankToken)
	if err != nil {
		return Card{}, &ParseError{Token: token, Reason: "invalid rank " + strconv.Quote(rankToken)}
	}

	suit, err := ParseSuit(token[len(token)-1:])
	if err != nil {
		return Card{}, &ParseError{Token: token, Reason: "invalid suit " + strconv.Quote(token[len(token)-1:])}
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// MustParseCard is like ParseCard but panics on malformed tokens.
// Meant for fixtures.
func MustParseCard(token string) Card {
	c, err := ParseCard(token)
	if err != nil {
		panic(err)
	}
	return c
}

// RankToken returns every character of the token but the last one
func RankToken(token string) (string, error) {
	if len(token) < 2 {
		return "", &ParseError{Token: token, Reason: "token too short"}
	}
	return token[:len(token)-1], nil
}

// SuitToken returns the last character of the token
func SuitToken(token string) (string, error) {
	if len(token) < 2 {
		return "", &ParseError{Token: token, Reason: "token too short"}
	}
	return token[len(token)-1:], nil
}

// RankValue maps a rank token to its value: J=11, Q=12, K=13, A=14, "2".."10" as numbers
func RankValue(rankToken string) (Rank, error) {
	switch rankToken {
	case "J":
		return Jack, nil
	case "Q":
		return Queen, nil
	case "K":
		return King, nil
	case "A":
		return Ace, nil
	case "2", "3", "4", "5", "6", "7", "8", "9", "10":
		n, _ := strconv.Atoi(rankToken)
		return Rank(n), nil
	}
	return 0, &ParseError{Token: rankToken, Reason: "invalid rank"}
}

// RankName is the inverse of RankValue for display purposes
func RankName(r Rank) string {
	switch r {
	case Jack:
		return "Jack"
	case Queen:
		return "Queen"
	case King:
		return "King"
	case Ace:
		return "Ace"
	}
	return strconv.Itoa(int(r))
}

// ParseSuit validates a one-letter suit token
func ParseSuit(s string) (Suit, error) {
	switch Suit(s) {
	case Clubs, Diamonds, Hearts, Spades:
		return Suit(s), nil
	}
	return "", &ParseError{Token: s, Reason: "invalid suit"}
}
