package hands

import "github.com/lazharichir/pokerhands/cards"

// groupCards collects both cards of every adjacent rank match, in scan order
func groupCards(hand Hand) Hand {
	group := make(Hand, 0, len(hand))
	for i := 0; i < len(hand)-1; i++ {
		if hand[i].Rank == hand[i+1].Rank {
			group = append(group, hand[i], hand[i+1])
		}
	}
	return group
}

func hasRank(hand Hand, rank cards.Rank) bool {
	for _, c := range hand {
		if c.Rank == rank {
			return true
		}
	}
	return false
}

// OrderTwoPairsHand puts the highest pair first, then the second pair, then the kicker
func OrderTwoPairsHand(hand Hand) Hand {
	result := groupCards(hand)
	for _, c := range hand {
		if !hasRank(result, c.Rank) {
			return append(result, c)
		}
	}
	return result
}

// OrderPairHand puts the pair first, followed by the kickers highest to lowest
func OrderPairHand(hand Hand) Hand {
	result := groupCards(hand)
	for _, c := range hand {
		if !hasRank(result, c.Rank) {
			result = append(result, c)
		}
	}
	return result
}
