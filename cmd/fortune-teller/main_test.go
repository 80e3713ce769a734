package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/CodewithAN/paper-fortune-teller/core"
	"github.com/CodewithAN/paper-fortune-teller/engine"
	"github.com/CodewithAN/paper-fortune-teller/event"
	"github.com/CodewithAN/paper-fortune-teller/service"
)

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "teller.yaml")
	if err := os.WriteFile(path, []byte("fortunes: [\"A\", \"B\"]\naudio:\n  mute: true\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	prev := *configFlag
	*configFlag = path
	defer func() { *configFlag = prev }()

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(cfg.Fortunes) != 2 || !cfg.Audio.Mute {
		t.Errorf("Expected fortunes and mute from file, got %+v", cfg)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	prev := *configFlag
	*configFlag = filepath.Join(t.TempDir(), "absent.yaml")
	defer func() { *configFlag = prev }()

	if _, err := loadConfig(); err == nil {
		t.Error("Expected error for missing config file")
	}
}

func TestServiceLifecycle(t *testing.T) {
	teller := newTellerService(engine.WithBus(event.NewBus()))
	screen := tcell.NewSimulationScreen("UTF-8")

	hub := service.NewHub()
	if err := registerAll(hub, &stubAudio{}, teller, newScreenService(screen)); err != nil {
		t.Fatalf("Unexpected register error: %v", err)
	}

	if err := hub.InitAll(nil); err != nil {
		t.Fatalf("Unexpected init error: %v", err)
	}
	if err := hub.StartAll(); err != nil {
		t.Fatalf("Unexpected start error: %v", err)
	}

	if teller.seq == nil || teller.seq.Snapshot().State != core.StateClosed {
		t.Fatal("Expected a closed sequencer after start")
	}

	hub.StopAll()
	if !teller.seq.Snapshot().Closed {
		t.Error("Expected sequencer disposed on stop")
	}
}

func TestRegisterAllStopsOnDuplicate(t *testing.T) {
	hub := service.NewHub()
	err := registerAll(hub, newTellerService(), newTellerService(), &stubAudio{})
	if !errors.Is(err, service.ErrDuplicateService) {
		t.Fatalf("Expected ErrDuplicateService, got %v", err)
	}
	if _, ok := hub.Get("audio"); ok {
		t.Error("Expected services after the duplicate to stay unregistered")
	}
	if _, ok := hub.Get("teller"); !ok {
		t.Error("Expected the first teller to stay registered")
	}
}

func TestTellerServiceRejectsBadArgs(t *testing.T) {
	if err := newTellerService().Init("not an option"); err == nil {
		t.Error("Expected error for non-option init arg")
	}
}

// stubAudio satisfies the teller dependency without touching a device
type stubAudio struct{}

func (stubAudio) Name() string           { return "audio" }
func (stubAudio) Dependencies() []string { return nil }
func (stubAudio) Init(...any) error      { return nil }
func (stubAudio) Start() error           { return nil }
func (stubAudio) Stop() error            { return nil }
