package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/lazharichir/pokerhands/game"
	"github.com/lazharichir/pokerhands/server/connection"
	"github.com/lazharichir/pokerhands/server/events"
)

// CommandRouter routes incoming commands to the client's session
type CommandRouter struct {
	connMgr *connection.Manager
	logger  *slog.Logger
}

// NewCommandRouter creates a new command router
func NewCommandRouter(connMgr *connection.Manager, logger *slog.Logger) *CommandRouter {
	return &CommandRouter{
		connMgr: connMgr,
		logger:  logger,
	}
}

// HandleCommand processes an incoming command message
func (r *CommandRouter) HandleCommand(client *connection.Client, message []byte) error {
	// First determine command type
	var baseCmd struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(message, &baseCmd); err != nil {
		return fmt.Errorf("invalid command: %w", err)
	}

	var cmd game.Command
	switch baseCmd.Name {
	case game.PlayRoundCommand{}.CommandName():
		cmd = game.PlayRoundCommand{}

	case game.CompareHandsCommand{}.CommandName():
		var c game.CompareHandsCommand
		if err := json.Unmarshal(message, &c); err != nil {
			return fmt.Errorf("invalid %s command: %w", baseCmd.Name, err)
		}
		cmd = c

	default:
		return fmt.Errorf("unknown command type %q", baseCmd.Name)
	}

	round, err := client.Session.Handle(cmd)
	if err != nil {
		return err
	}

	r.logger.Info("round played", "client", client.ID, "round", round.ID, "verdict", round.Verdict)
	return r.reply(client, "round-played", round)
}

// ReplyError sends an error envelope to the client
func (r *CommandRouter) ReplyError(client *connection.Client, err error) error {
	return r.reply(client, "error", map[string]string{"message": err.Error()})
}

func (r *CommandRouter) reply(client *connection.Client, name string, payload any) error {
	envelope, err := events.NewEnvelope(name, payload)
	if err != nil {
		return err
	}
	if !r.connMgr.SendToClient(client.ID, envelope) {
		return fmt.Errorf("client %s is not reachable", client.ID)
	}
	return nil
}
