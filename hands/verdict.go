package hands

import (
	"fmt"

	"github.com/lazharichir/pokerhands/cards"
)

// Side identifies a player, or a tie when used as a winner
type Side string

const (
	Black Side = "BLACK"
	White Side = "WHITE"
	Tie   Side = "TIE"
)

// Category is the hand category that decided a comparison
type Category int

const (
	HighCard Category = iota
	Pair
	TwoPairs
	ThreeOfAKind
	Flush
)

var categoryNames = map[Category]string{
	HighCard:     "high card",
	Pair:         "pair",
	TwoPairs:     "two pairs",
	ThreeOfAKind: "three of a kind",
	Flush:        "flush",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("category(%d)", int(c))
}

func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(text []byte) error {
	for category, name := range categoryNames {
		if name == string(text) {
			*c = category
			return nil
		}
	}
	return fmt.Errorf("unknown hand category %q", text)
}

// Outcome is the structured result of comparing two hands
type Outcome struct {
	Winner   Side       `json:"winner"`
	Category Category   `json:"category"`
	TieBreak bool       `json:"tieBreak"` // both sides had the category
	High     cards.Rank `json:"high,omitempty"`
	Low      cards.Rank `json:"low,omitempty"`
}

// String renders the verdict, e.g. "BLACK WINS... higher flush (Queen > Jack)"
func (o Outcome) String() string {
	switch {
	case o.Winner == Tie:
		return "TIE"
	case o.Category == HighCard:
		return fmt.Sprintf("%s WINS... high card: %s", o.Winner, o.High.Name())
	case !o.TieBreak:
		return fmt.Sprintf("%s WINS... %s", o.Winner, o.Category)
	default:
		return fmt.Sprintf("%s WINS... higher %s (%s > %s)", o.Winner, o.Category, o.High.Name(), o.Low.Name())
	}
}

// compareByPosition walks both hands in step; the first rank difference decides
func compareByPosition(category Category, black, white Hand) Outcome {
	for i := 0; i < len(black) && i < len(white); i++ {
		b, w := black[i].Rank, white[i].Rank
		if b > w {
			return Outcome{Winner: Black, Category: category, TieBreak: true, High: b, Low: w}
		}
		if b < w {
			return Outcome{Winner: White, Category: category, TieBreak: true, High: w, Low: b}
		}
	}
	return Outcome{Winner: Tie, Category: category, TieBreak: true}
}

// categoryWinner returns the side that alone holds the category, if any
func categoryWinner(blackHas, whiteHas bool) (Side, bool) {
	switch {
	case blackHas && !whiteHas:
		return Black, true
	case !blackHas && whiteHas:
		return White, true
	}
	return "", false
}

// FlushResult compares two hands of which at least one is a flush
func FlushResult(black, white Hand) Outcome {
	if side, ok := categoryWinner(IsFlush(black), IsFlush(white)); ok {
		return Outcome{Winner: side, Category: Flush}
	}
	return compareByPosition(Flush, black, white)
}

// ThreeOfAKindResult compares two hands of which at least one holds three of a kind.
// When both do, only the triple ranks are compared and WHITE takes equal triples.
func ThreeOfAKindResult(black, white Hand) Outcome {
	if side, ok := categoryWinner(IsThreeOfAKind(black), IsThreeOfAKind(white)); ok {
		return Outcome{Winner: side, Category: ThreeOfAKind}
	}

	b := cards.Rank(ThreeOfAKindValue(black))
	w := cards.Rank(ThreeOfAKindValue(white))
	if b > w {
		return Outcome{Winner: Black, Category: ThreeOfAKind, TieBreak: true, High: b, Low: w}
	}
	return Outcome{Winner: White, Category: ThreeOfAKind, TieBreak: true, High: w, Low: b}
}

// TwoPairsResult compares two hands of which at least one holds two pairs
func TwoPairsResult(black, white Hand) Outcome {
	if side, ok := categoryWinner(IsTwoPairs(black), IsTwoPairs(white)); ok {
		return Outcome{Winner: side, Category: TwoPairs}
	}
	return compareByPosition(TwoPairs, OrderTwoPairsHand(black), OrderTwoPairsHand(white))
}

// PairResult compares two hands of which at least one holds a pair
func PairResult(black, white Hand) Outcome {
	if side, ok := categoryWinner(IsPair(black), IsPair(white)); ok {
		return Outcome{Winner: side, Category: Pair}
	}
	return compareByPosition(Pair, OrderPairHand(black), OrderPairHand(white))
}

// HighCardResult compares the ordered hands card by card
func HighCardResult(black, white Hand) Outcome {
	o := compareByPosition(HighCard, black, white)
	o.TieBreak = false
	return o
}

// Compare runs the category cascade on two ordered hands, strongest category first
func Compare(black, white Hand) Outcome {
	switch {
	case IsAnyFlush(black, white):
		return FlushResult(black, white)
	case IsAnyThreeOfAKind(black, white):
		return ThreeOfAKindResult(black, white)
	case IsAnyTwoPairs(black, white):
		return TwoPairsResult(black, white)
	case IsAnyPair(black, white):
		return PairResult(black, white)
	default:
		return HighCardResult(black, white)
	}
}

// Verdict returns the verdict string for two ordered hands
func Verdict(black, white Hand) string {
	return Compare(black, white).String()
}
