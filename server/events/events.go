package events

import (
	"encoding/json"
	"log/slog"

	"github.com/lazharichir/pokerhands/events"
	"github.com/lazharichir/pokerhands/server/connection"
)

// EventEnvelope wraps an event with its name for client consumption
type EventEnvelope struct {
	Name    string          `json:"name"`
	Payload json.RawMessage `json:"payload"`
}

// NewEnvelope marshals a payload into an envelope ready to be written out
func NewEnvelope(name string, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(EventEnvelope{Name: name, Payload: data})
}

// Dispatcher handles routing events to clients
type Dispatcher struct {
	connMgr *connection.Manager
	logger  *slog.Logger
}

// NewDispatcher creates a new event dispatcher
func NewDispatcher(connMgr *connection.Manager, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		connMgr: connMgr,
		logger:  logger,
	}
}

// HandleEvent sends a domain event to the client owning its session
func (d *Dispatcher) HandleEvent(event events.Event) {
	envelope, err := NewEnvelope(event.Name(), event)
	if err != nil {
		d.logger.Error("failed to marshal event", "event", event.Name(), "error", err)
		return
	}

	sessionID := events.GetSessionID(event)
	if !d.connMgr.SendToSession(sessionID, envelope) {
		d.logger.Warn("event not delivered", "event", event.Name(), "session", sessionID)
		return
	}
	d.logger.Debug("dispatched event", "event", event.Name(), "session", sessionID)
}
