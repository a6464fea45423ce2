package cards

import (
	"errors"
	"fmt"
)

var (
	// ErrParse is matched by every *ParseError
	ErrParse = errors.New("malformed card token")

	// ErrOutOfRange is returned when a deck holds fewer cards than requested
	ErrOutOfRange = errors.New("not enough cards left in deck")
)

// ParseError describes a token that is not a valid card
type ParseError struct {
	Token  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s %q: %s", ErrParse, e.Token, e.Reason)
}

func (e *ParseError) Unwrap() error { return ErrParse }
