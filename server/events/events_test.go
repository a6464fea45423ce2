package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lazharichir/pokerhands/events"
	"github.com/lazharichir/pokerhands/game"
	"github.com/lazharichir/pokerhands/logging"
	"github.com/lazharichir/pokerhands/server/connection"
)

func TestNewEnvelope(t *testing.T) {
	data, err := NewEnvelope("welcome", map[string]string{"sessionId": "s-1"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"welcome","payload":{"sessionId":"s-1"}}`, string(data))
}

func TestDispatcher_HandleEvent(t *testing.T) {
	connMgr := connection.NewManager()
	session := game.NewSession(1, events.NewInMemoryEventStore(), logging.Discard())
	client := &connection.Client{ID: "c1", Send: make(chan []byte, 8), Session: session}
	connMgr.Register(client)

	d := NewDispatcher(connMgr, logging.Discard())
	d.HandleEvent(events.HandDealt{SessionID: session.ID, RoundID: "r1", Cards: []string{"AS"}})

	var envelope EventEnvelope
	require.NoError(t, json.Unmarshal(<-client.Send, &envelope))
	assert.Equal(t, "hand-dealt", envelope.Name)

	var dealt events.HandDealt
	require.NoError(t, json.Unmarshal(envelope.Payload, &dealt))
	assert.Equal(t, "r1", dealt.RoundID)
	assert.Equal(t, []string{"AS"}, dealt.Cards)
}

func TestDispatcher_UnknownSessionIsDropped(t *testing.T) {
	connMgr := connection.NewManager()
	d := NewDispatcher(connMgr, logging.Discard())

	assert.NotPanics(t, func() {
		d.HandleEvent(events.RoundStarted{SessionID: "nobody"})
	})
}
