package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/CodewithAN/paper-fortune-teller/engine"
	"github.com/CodewithAN/paper-fortune-teller/event"
	"github.com/CodewithAN/paper-fortune-teller/fortune"
	"github.com/CodewithAN/paper-fortune-teller/notify"
)

const revealScript = "tap green #06D6A0\nwait 2s\ntap 3-click\nwait 1200ms\ntap 7-click\nwait 3s\n"

type brokenSink struct{}

func (brokenSink) Name() string { return "broken" }

func (brokenSink) Deliver(event.FortuneRevealedPayload) error {
	return errors.New("host went away")
}

// playScript runs revealScript against a fresh sequencer on a mock clock
// Returns the play id of the reveal, empty when none happened
func playScript(t *testing.T, host io.Writer) string {
	t.Helper()
	clock := engine.NewMockClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	seq := engine.New(
		engine.WithClock(clock),
		engine.WithBus(event.NewBus()),
		engine.WithFortunes([]string{"X"}),
		engine.WithMessageChannel(notify.NewWriterChannel(host)),
		engine.WithSinks(brokenSink{}),
	)
	defer seq.Close()

	var playID string
	seq.OnReveal(func(r fortune.Result) { playID = r.PlayID })

	if err := runScript(strings.NewReader(revealScript), seq, clock.Advance); err != nil {
		t.Fatalf("Unexpected script error: %v", err)
	}
	return playID
}

func readLog(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(logDir, logFileName))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	return string(data)
}

func TestDebugLogRecordsReveal(t *testing.T) {
	t.Chdir(t.TempDir())
	defer log.SetOutput(io.Discard)

	logFile := setupLogging(true)
	if logFile == nil {
		t.Fatal("Expected log file when debug=true")
	}
	defer logFile.Close()

	var host bytes.Buffer
	playID := playScript(t, &host)
	if playID == "" {
		t.Fatal("Expected a reveal with a play id")
	}

	content := readLog(t)
	want := "teller: play " + playID + " revealed flap 7"
	if !strings.Contains(content, want) {
		t.Errorf("Expected log line %q, got:\n%s", want, content)
	}
	if !strings.Contains(content, "notify: sink broken: host went away") {
		t.Errorf("Expected sink failure in log, got:\n%s", content)
	}
	if !strings.Contains(content, "=== fortune-teller started") {
		t.Errorf("Expected startup banner, got:\n%s", content)
	}

	// A failing sink does not stop the host channel
	if !strings.Contains(host.String(), `"flapNumber":7`) {
		t.Errorf("Expected host message despite broken sink, got %q", host.String())
	}
}

func TestQuietHostOutputIsJSON(t *testing.T) {
	t.Chdir(t.TempDir())

	if logFile := setupLogging(false); logFile != nil {
		logFile.Close()
		t.Fatal("Expected no log file when debug=false")
	}
	if log.Writer() != io.Discard {
		t.Errorf("Expected log output discarded, got %v", log.Writer())
	}

	var host bytes.Buffer
	playScript(t, &host)

	lines := strings.Split(strings.TrimSuffix(host.String(), "\n"), "\n")
	if len(lines) != 1 {
		t.Fatalf("Expected one host message, got %q", host.String())
	}
	var msg event.FortuneRevealedPayload
	if err := json.Unmarshal([]byte(lines[0]), &msg); err != nil {
		t.Fatalf("Expected JSON host message, got %q: %v", lines[0], err)
	}
	if msg.Type != "fortuneRevealed" || msg.Fortune != "X" || msg.FlapNumber != 7 {
		t.Errorf("Unexpected host message %+v", msg)
	}

	if _, err := os.Stat(logDir); !os.IsNotExist(err) {
		t.Error("Expected no logs directory without debug")
	}
}

func TestDebugLogRotatesOversizedFile(t *testing.T) {
	t.Chdir(t.TempDir())
	defer log.SetOutput(io.Discard)

	if err := os.MkdirAll(logDir, 0755); err != nil {
		t.Fatalf("Failed to create logs directory: %v", err)
	}
	logPath := filepath.Join(logDir, logFileName)
	if err := os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644); err != nil {
		t.Fatalf("Failed to seed log file: %v", err)
	}

	logFile := setupLogging(true)
	if logFile == nil {
		t.Fatal("Expected log file after rotation")
	}
	defer logFile.Close()

	rotated, err := filepath.Glob(filepath.Join(logDir, "fortune-teller-*.log"))
	if err != nil || len(rotated) != 1 {
		t.Fatalf("Expected one rotated log, got %v (%v)", rotated, err)
	}

	content := readLog(t)
	if !strings.Contains(content, "=== fortune-teller started") {
		t.Errorf("Expected fresh log with startup banner, got %d bytes", len(content))
	}
	if int64(len(content)) > maxLogSize {
		t.Errorf("Expected fresh log smaller than %d bytes, got %d", maxLogSize, len(content))
	}
}
