package cards

import (
	"fmt"
	"strings"
)

// Stack represents multiple cards
type Stack []Card

// ParseStack parses every token, keeping the input order
func ParseStack(tokens []string) (Stack, error) {
	stack := make(Stack, 0, len(tokens))
	for i, token := range tokens {
		card, err := ParseCard(token)
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", i, err)
		}
		stack = append(stack, card)
	}
	return stack, nil
}

// Tokens returns the token form of every card
func (s Stack) Tokens() []string {
	tokens := make([]string, len(s))
	for i, c := range s {
		tokens[i] = c.String()
	}
	return tokens
}

func (s Stack) String() string {
	return strings.Join(s.Tokens(), " ")
}
