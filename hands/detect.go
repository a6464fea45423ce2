package hands

// IsFlush checks if all cards are of the same suit
func IsFlush(hand Hand) bool {
	for i := 0; i < len(hand)-1; i++ {
		if hand[i].Suit != hand[i+1].Suit {
			return false
		}
	}
	return true
}

// IsThreeOfAKind checks for three consecutive cards of equal rank in an ordered hand
func IsThreeOfAKind(hand Hand) bool {
	return ThreeOfAKindValue(hand) != -1
}

// ThreeOfAKindValue returns the rank of the first triple, or -1 when there is none
func ThreeOfAKindValue(hand Hand) int {
	for i := 0; i < len(hand)-2; i++ {
		if hand[i].Rank == hand[i+1].Rank && hand[i].Rank == hand[i+2].Rank {
			return int(hand[i].Rank)
		}
	}
	return -1
}

// adjacentMatches counts neighbouring cards of equal rank
func adjacentMatches(hand Hand) int {
	count := 0
	for i := 0; i < len(hand)-1; i++ {
		if hand[i].Rank == hand[i+1].Rank {
			count++
		}
	}
	return count
}

// IsTwoPairs checks for exactly two adjacent rank matches.
// A lone three of a kind matches too: only call it once IsThreeOfAKind is false.
func IsTwoPairs(hand Hand) bool {
	return adjacentMatches(hand) == 2
}

// IsPair checks for exactly one adjacent rank match.
// Same ordering requirement as IsTwoPairs.
func IsPair(hand Hand) bool {
	return adjacentMatches(hand) == 1
}

// IsAnyFlush reports whether either hand is a flush
func IsAnyFlush(black, white Hand) bool {
	return IsFlush(black) || IsFlush(white)
}

// IsAnyThreeOfAKind reports whether either hand holds three of a kind
func IsAnyThreeOfAKind(black, white Hand) bool {
	return IsThreeOfAKind(black) || IsThreeOfAKind(white)
}

// IsAnyTwoPairs reports whether either hand holds two pairs
func IsAnyTwoPairs(black, white Hand) bool {
	return IsTwoPairs(black) || IsTwoPairs(white)
}

// IsAnyPair reports whether either hand holds a single pair
func IsAnyPair(black, white Hand) bool {
	return IsPair(black) || IsPair(white)
}
