package hands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsFlush(t *testing.T) {
	tests := []struct {
		name  string
		hand  []string
		flush bool
	}{
		{"Mixed suits", []string{"5H", "2D", "AC", "QS", "10S"}, false},
		{"All hearts", []string{"5H", "2H", "AH", "QH", "10H"}, true},
		{"Lowest card off suit", []string{"5C", "2H", "AH", "QH", "10H"}, false},
		{"Middle card off suit", []string{"5H", "2H", "AH", "QH", "10S"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.flush, IsFlush(ordered(t, tt.hand...)))
		})
	}
}

func TestIsAnyFlush(t *testing.T) {
	hand1 := ordered(t, "5H", "2D", "AC", "QS", "10S")
	hand2 := ordered(t, "5H", "2H", "AH", "QH", "10H")
	hand3 := ordered(t, "5C", "2H", "AH", "QH", "10H")
	hand4 := ordered(t, "5H", "2H", "AH", "QH", "10S")
	hand5 := ordered(t, "10C", "AC", "3C", "4C", "JC")

	assert.True(t, IsAnyFlush(hand1, hand2))
	assert.False(t, IsAnyFlush(hand1, hand4))
	assert.True(t, IsAnyFlush(hand2, hand5))
	assert.False(t, IsAnyFlush(hand3, hand4))
}

func TestIsThreeOfAKind(t *testing.T) {
	tests := []struct {
		name  string
		hand  []string
		three bool
		value int
	}{
		{"Low triple", []string{"5H", "5D", "5C", "QS", "10S"}, true, 5},
		{"Aces", []string{"5H", "2H", "AH", "AC", "AS"}, true, 14},
		{"No triple", []string{"5C", "2H", "AH", "QH", "10H"}, false, -1},
		{"Scattered tens", []string{"10H", "10C", "5H", "QH", "10S"}, true, 10},
		{"Pair only", []string{"10H", "10C", "5H", "QH", "9S"}, false, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hand := ordered(t, tt.hand...)
			assert.Equal(t, tt.three, IsThreeOfAKind(hand))
			assert.Equal(t, tt.value, ThreeOfAKindValue(hand))
		})
	}
}

func TestIsAnyThreeOfAKind(t *testing.T) {
	hand1 := ordered(t, "AH", "AD", "AC", "2S", "10S")
	hand2 := ordered(t, "AH", "2H", "2C", "QH", "2D")
	hand3 := ordered(t, "5C", "2H", "AH", "QH", "10H")
	hand4 := ordered(t, "5H", "2H", "AH", "QH", "10S")
	hand5 := ordered(t, "10C", "10H", "10S", "10D", "JC")

	assert.True(t, IsAnyThreeOfAKind(hand1, hand2))
	assert.True(t, IsAnyThreeOfAKind(hand1, hand4))
	assert.True(t, IsAnyThreeOfAKind(hand2, hand5))
	assert.False(t, IsAnyThreeOfAKind(hand3, hand4))
}

func TestIsTwoPairs(t *testing.T) {
	assert.True(t, IsTwoPairs(ordered(t, "AH", "AD", "10C", "10S", "5S")))
	assert.True(t, IsTwoPairs(ordered(t, "AH", "AD", "10H", "5H", "5D")))
	assert.False(t, IsTwoPairs(ordered(t, "5C", "2H", "AH", "QH", "10H")))
	assert.True(t, IsTwoPairs(ordered(t, "AH", "5H", "5C", "2H", "2S")))
}

func TestIsAnyTwoPairs(t *testing.T) {
	hand1 := ordered(t, "AH", "AD", "10C", "10S", "5S")
	hand2 := ordered(t, "AH", "AD", "10H", "5H", "5D")
	hand3 := ordered(t, "5C", "2H", "AH", "QH", "10H")
	hand4 := ordered(t, "AH", "5H", "5C", "2H", "2S")
	hand5 := ordered(t, "9C", "7H", "10H", "JH", "8S")

	assert.True(t, IsAnyTwoPairs(hand1, hand3))
	assert.True(t, IsAnyTwoPairs(hand3, hand4))
	assert.True(t, IsAnyTwoPairs(hand2, hand5))
	assert.False(t, IsAnyTwoPairs(hand3, hand5))
}

func TestIsAnyPair(t *testing.T) {
	hand1 := ordered(t, "AH", "AD", "6C", "10S", "5S")
	hand2 := ordered(t, "7H", "AD", "10H", "5H", "5D")
	hand3 := ordered(t, "5C", "2H", "AH", "QH", "10H")
	hand4 := ordered(t, "AH", "JH", "5C", "2H", "2S")
	hand5 := ordered(t, "9C", "7H", "10H", "JH", "8S")

	assert.True(t, IsAnyPair(hand1, hand3))
	assert.True(t, IsAnyPair(hand3, hand4))
	assert.True(t, IsAnyPair(hand2, hand5))
	assert.False(t, IsAnyPair(hand3, hand5))
}

// The adjacent-match detectors cannot tell a triple from two pairs or a
// quad from a triple plus pair. Compare only consults them after
// IsThreeOfAKind has failed on both hands.
func TestDetectorsDependOnCascadeOrder(t *testing.T) {
	triple := ordered(t, "5H", "5D", "5C", "QS", "10S")
	assert.True(t, IsThreeOfAKind(triple))
	assert.True(t, IsTwoPairs(triple), "a lone triple yields two adjacent matches")
	assert.False(t, IsPair(triple))

	twoPairs := ordered(t, "KH", "KD", "4C", "4S", "9S")
	assert.Equal(t, ThreeOfAKind, Compare(triple, twoPairs).Category)
	assert.Equal(t, "BLACK WINS... three of a kind", Verdict(triple, twoPairs))

	fullHouse := ordered(t, "9H", "9D", "9C", "4S", "4H")
	assert.False(t, IsTwoPairs(fullHouse), "three adjacent matches")
	assert.True(t, IsThreeOfAKind(fullHouse))
}
