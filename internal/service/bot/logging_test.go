package bot

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/GPar6/gomoku/internal/domain"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// captureDecisions records engine debug events for the duration of the test.
func captureDecisions(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevLogger, prevLevel := log.Logger, zerolog.GlobalLevel()
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})
	return &buf
}

func decisionEvents(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var events []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var ev map[string]interface{}
		if err := json.Unmarshal([]byte(line), &ev); err != nil {
			t.Fatalf("bad log line %q: %v", line, err)
		}
		events = append(events, ev)
	}
	return events
}

func TestDecisionPathsLogSameFields(t *testing.T) {
	buf := captureDecisions(t)
	cfg := DefaultConfig()
	cfg.Depth = 1

	newTestEngine(cfg, 1).ChooseMove(domain.NewBoard(domain.BoardSize), domain.Black)

	quiet := domain.NewBoard(domain.BoardSize)
	place(quiet, domain.Black, at(7, 7))
	place(quiet, domain.White, at(7, 8))
	newTestEngine(cfg, 1).ChooseMove(quiet, domain.Black)

	events := decisionEvents(t, buf)
	if len(events) != 2 {
		t.Fatalf("expected 2 decision events, got %d", len(events))
	}
	wantPaths := []string{"opening", "search"}
	for i, ev := range events {
		if ev["path"] != wantPaths[i] {
			t.Fatalf("event %d: expected path %s, got %v", i, wantPaths[i], ev["path"])
		}
		for _, field := range []string{"row", "col", "role", "score", "ties", "nodes"} {
			if _, ok := ev[field]; !ok {
				t.Fatalf("%s event missing %q: %v", ev["path"], field, ev)
			}
		}
	}
	if ties := events[1]["ties"].(float64); ties < 1 {
		t.Fatalf("search event should report at least one tie, got %v", ties)
	}
	if nodes := events[1]["nodes"].(float64); nodes < 1 {
		t.Fatalf("search event should report visited nodes, got %v", nodes)
	}
}
