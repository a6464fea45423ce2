package game

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/sanity-io/litter"

	"github.com/lazharichir/pokerhands/cards"
	"github.com/lazharichir/pokerhands/events"
	"github.com/lazharichir/pokerhands/hands"
	"github.com/lazharichir/pokerhands/reference"
)

// Round is the record of one BLACK versus WHITE comparison
type Round struct {
	ID               string        `json:"id"`
	SessionID        string        `json:"sessionId"`
	Black            []string      `json:"black"`
	White            []string      `json:"white"`
	BlackCards       hands.Hand    `json:"-"`
	WhiteCards       hands.Hand    `json:"-"`
	Outcome          hands.Outcome `json:"outcome"`
	Verdict          string        `json:"verdict"`
	BlackDescription string        `json:"blackDescription,omitempty"`
	WhiteDescription string        `json:"whiteDescription,omitempty"`
}

// Session owns the random source for a sequence of rounds and records
// every round in its event store. It is not safe for concurrent use.
type Session struct {
	ID string

	seed          int64
	dealer        *cards.Dealer
	store         events.EventStore
	logger        *slog.Logger
	eventHandlers []events.EventHandler
}

// NewSession creates a session dealing from a source seeded with seed.
// A zero seed is replaced by the current time.
func NewSession(seed int64, store events.EventStore, logger *slog.Logger) *Session {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	id := uuid.NewString()
	return &Session{
		ID:     id,
		seed:   seed,
		dealer: cards.NewDealer(rand.New(rand.NewSource(seed))),
		store:  store,
		logger: logger.With("session", id),
	}
}

// Seed returns the seed the dealer was created with
func (s *Session) Seed() int64 {
	return s.seed
}

// RegisterEventHandler registers a callback function that will be called when events occur
func (s *Session) RegisterEventHandler(handler events.EventHandler) {
	s.eventHandlers = append(s.eventHandlers, handler)
}

// Handle runs a command against the session
func (s *Session) Handle(cmd Command) (Round, error) {
	switch c := cmd.(type) {
	case PlayRoundCommand:
		return s.PlayRound()
	case CompareHandsCommand:
		return s.CompareTokens(c.Black, c.White)
	default:
		return Round{}, fmt.Errorf("unknown command %q", cmd.CommandName())
	}
}

// PlayRound builds a deck, deals BLACK then WHITE and evaluates both hands
func (s *Session) PlayRound() (Round, error) {
	deck := cards.NewDeck()

	black, err := s.dealer.Deal(deck)
	if err != nil {
		return Round{}, fmt.Errorf("deal black: %w", err)
	}
	white, err := s.dealer.Deal(deck)
	if err != nil {
		return Round{}, fmt.Errorf("deal white: %w", err)
	}

	return s.CompareTokens(black, white)
}

// CompareTokens evaluates two hands given as card tokens
func (s *Session) CompareTokens(black, white []string) (Round, error) {
	if len(black) != cards.HandSize || len(white) != cards.HandSize {
		return Round{}, fmt.Errorf("hands need %d cards, got %d and %d", cards.HandSize, len(black), len(white))
	}

	blackHand, err := hands.OrderHand(black)
	if err != nil {
		return Round{}, fmt.Errorf("black hand: %w", err)
	}
	whiteHand, err := hands.OrderHand(white)
	if err != nil {
		return Round{}, fmt.Errorf("white hand: %w", err)
	}

	outcome := hands.Compare(blackHand, whiteHand)
	round := Round{
		ID:         uuid.NewString(),
		SessionID:  s.ID,
		Black:      append([]string(nil), black...),
		White:      append([]string(nil), white...),
		BlackCards: blackHand,
		WhiteCards: whiteHand,
		Outcome:    outcome,
		Verdict:    outcome.String(),
	}
	round.BlackDescription = s.describe(blackHand)
	round.WhiteDescription = s.describe(whiteHand)

	if err := s.record(round); err != nil {
		return Round{}, err
	}

	if s.logger.Enabled(context.Background(), slog.LevelDebug) {
		s.logger.Debug("round evaluated", "round", litter.Sdump(round))
	}
	return round, nil
}

func (s *Session) describe(hand hands.Hand) string {
	desc, err := reference.Describe(hand)
	if err != nil {
		s.logger.Debug("no reference description", "hand", hand.String(), "error", err)
		return ""
	}
	return desc
}

func (s *Session) record(round Round) error {
	evts := []events.Event{
		events.RoundStarted{SessionID: s.ID, RoundID: round.ID, StartedAt: time.Now()},
		events.HandDealt{SessionID: s.ID, RoundID: round.ID, Side: hands.Black, Cards: round.Black},
		events.HandDealt{SessionID: s.ID, RoundID: round.ID, Side: hands.White, Cards: round.White},
		events.VerdictReached{SessionID: s.ID, RoundID: round.ID, Outcome: round.Outcome, Verdict: round.Verdict},
	}
	for _, event := range evts {
		if err := s.emitEvent(event); err != nil {
			return err
		}
	}
	return nil
}

// emitEvent stores the event and notifies all registered handlers
func (s *Session) emitEvent(event events.Event) error {
	if err := s.store.Append(event); err != nil {
		return fmt.Errorf("append %s: %w", event.Name(), err)
	}
	for _, handler := range s.eventHandlers {
		handler(event)
	}
	return nil
}
