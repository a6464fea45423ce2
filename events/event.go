package events

import (
	"reflect"
	"time"

	"github.com/lazharichir/pokerhands/hands"
)

// Event is the interface that all domain events must implement.
type Event interface {
	Name() string // Returns a unique name for the event type
}

type EventHandler func(event Event)

// GetSessionID reads the SessionID field of an event, or "" when it has none
func GetSessionID(event Event) string {
	val := reflect.ValueOf(event)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return ""
	}
	field := val.FieldByName("SessionID")
	if field.IsValid() && field.Kind() == reflect.String {
		return field.String()
	}
	return ""
}

type RoundStarted struct {
	SessionID string    `json:"sessionId"`
	RoundID   string    `json:"roundId"`
	StartedAt time.Time `json:"startedAt"`
}

func (e RoundStarted) Name() string { return "round-started" }

type HandDealt struct {
	SessionID string     `json:"sessionId"`
	RoundID   string     `json:"roundId"`
	Side      hands.Side `json:"side"`
	Cards     []string   `json:"cards"`
}

func (e HandDealt) Name() string { return "hand-dealt" }

type VerdictReached struct {
	SessionID string        `json:"sessionId"`
	RoundID   string        `json:"roundId"`
	Outcome   hands.Outcome `json:"outcome"`
	Verdict   string        `json:"verdict"`
}

func (e VerdictReached) Name() string { return "verdict-reached" }
