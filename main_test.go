package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun_PlaysOneRound(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"-seed", "7"}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	assert.Len(t, lines, 1)
	assert.True(t, lines[0] == "TIE" || strings.Contains(lines[0], " WINS... "), lines[0])
}

func TestRun_SameSeedSameVerdict(t *testing.T) {
	var first, second, stderr bytes.Buffer

	run([]string{"-seed", "31", "-describe"}, &first, &stderr)
	run([]string{"-seed", "31", "-describe"}, &second, &stderr)

	assert.Equal(t, first.String(), second.String())
	assert.Contains(t, first.String(), "BLACK: ")
	assert.Contains(t, first.String(), "WHITE: ")
}

func TestRun_BadFlags(t *testing.T) {
	var stdout, stderr bytes.Buffer

	assert.Equal(t, 2, run([]string{"-log-level", "loud"}, &stdout, &stderr))
	assert.Equal(t, 2, run([]string{"-nope"}, &stdout, &stderr))
	assert.Empty(t, stdout.String())
}

func TestRun_ServeRejectsMissingConfig(t *testing.T) {
	var stdout, stderr bytes.Buffer

	assert.Equal(t, 1, run([]string{"serve", "-config", t.TempDir() + "/missing.json"}, &stdout, &stderr))
}
