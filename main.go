package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lazharichir/pokerhands/config"
	"github.com/lazharichir/pokerhands/events"
	"github.com/lazharichir/pokerhands/game"
	"github.com/lazharichir/pokerhands/logging"
	"github.com/lazharichir/pokerhands/server"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) > 0 && args[0] == "serve" {
		return serve(args[1:], stderr)
	}
	return playRound(args, stdout, stderr)
}

// playRound deals a single round and prints the verdict
func playRound(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("pokerhands", flag.ContinueOnError)
	fs.SetOutput(stderr)
	seed := fs.Int64("seed", 0, "seed for the dealer (0 seeds from the clock)")
	describe := fs.Bool("describe", false, "print both hands with their reference description")
	level := fs.String("log-level", "warn", "log level (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger, err := logging.New(stderr, *level)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	session := game.NewSession(*seed, events.NewInMemoryEventStore(), logger)
	round, err := session.PlayRound()
	if err != nil {
		logger.Error("round failed", "error", err)
		return 1
	}

	fmt.Fprintln(stdout, round.Verdict)
	if *describe {
		fmt.Fprintf(stdout, "BLACK: %s (%s)\n", round.BlackCards, round.BlackDescription)
		fmt.Fprintf(stdout, "WHITE: %s (%s)\n", round.WhiteCards, round.WhiteDescription)
	}
	logger.Debug("round played", "seed", session.Seed(), "round", round.ID)
	return 0
}

// serve starts the HTTP and WebSocket server
func serve(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	path := fs.String("config", "", "path to a JSON config file")
	addr := fs.String("addr", "", "listen address, overrides the config file")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(*path)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if *addr != "" {
		cfg.Addr = *addr
	}

	logger, err := logging.New(stderr, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	slog.SetDefault(logger)

	if err := server.NewServer(cfg, logger).Start(); err != nil {
		logger.Error("server failed", "error", err)
		return 1
	}
	return 0
}
