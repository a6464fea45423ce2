package connection

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lazharichir/pokerhands/events"
	"github.com/lazharichir/pokerhands/game"
	"github.com/lazharichir/pokerhands/logging"
)

func newClient(id string, buffer int) *Client {
	session := game.NewSession(1, events.NewInMemoryEventStore(), logging.Discard())
	return &Client{ID: id, Send: make(chan []byte, buffer), Session: session}
}

func TestManager_RegisterAndSend(t *testing.T) {
	m := NewManager()
	client := newClient("c1", 1)
	m.Register(client)

	assert.Equal(t, 1, m.Count())
	assert.True(t, m.SendToSession(client.Session.ID, []byte("hi")))
	assert.Equal(t, []byte("hi"), <-client.Send)

	assert.False(t, m.SendToClient("unknown", []byte("hi")))
	assert.False(t, m.SendToSession("unknown", []byte("hi")))
}

func TestManager_FullQueueDropsMessage(t *testing.T) {
	m := NewManager()
	client := newClient("c1", 1)
	m.Register(client)

	assert.True(t, m.SendToClient("c1", []byte("one")))
	assert.False(t, m.SendToClient("c1", []byte("two")))
}

func TestManager_Unregister(t *testing.T) {
	m := NewManager()
	client := newClient("c1", 1)
	m.Register(client)

	m.Unregister(client)
	m.Unregister(client) // second call is a no-op

	assert.Equal(t, 0, m.Count())
	assert.False(t, m.SendToSession(client.Session.ID, []byte("hi")))
	_, open := <-client.Send
	assert.False(t, open)
}
