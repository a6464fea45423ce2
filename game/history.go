package game

import (
	"fmt"

	"github.com/lazharichir/pokerhands/events"
	"github.com/lazharichir/pokerhands/hands"
)

// RoundSummary is a round rebuilt from its events
type RoundSummary struct {
	RoundID string        `json:"roundId"`
	Black   []string      `json:"black"`
	White   []string      `json:"white"`
	Outcome hands.Outcome `json:"outcome"`
	Verdict string        `json:"verdict"`
}

// History replays the events of a session into round summaries, oldest first
func History(store events.EventStore, sessionID string) ([]RoundSummary, error) {
	evts, err := store.LoadEvents(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load events: %w", err)
	}

	var rounds []RoundSummary
	index := make(map[string]int)
	for _, event := range evts {
		switch e := event.(type) {
		case events.RoundStarted:
			index[e.RoundID] = len(rounds)
			rounds = append(rounds, RoundSummary{RoundID: e.RoundID})
		case events.HandDealt:
			i, ok := index[e.RoundID]
			if !ok {
				return nil, fmt.Errorf("hand dealt for unknown round %s", e.RoundID)
			}
			applyHandDealt(&rounds[i], e)
		case events.VerdictReached:
			i, ok := index[e.RoundID]
			if !ok {
				return nil, fmt.Errorf("verdict for unknown round %s", e.RoundID)
			}
			rounds[i].Outcome = e.Outcome
			rounds[i].Verdict = e.Verdict
		}
	}
	return rounds, nil
}

func applyHandDealt(round *RoundSummary, event events.HandDealt) {
	switch event.Side {
	case hands.Black:
		round.Black = event.Cards
	case hands.White:
		round.White = event.Cards
	}
}
