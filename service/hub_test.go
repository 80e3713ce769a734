package service

import (
	"errors"
	"testing"
)

// mockService records lifecycle calls into a shared log
type mockService struct {
	name     string
	deps     []string
	log      *[]string
	initErr  error
	startErr error
	args     []any
}

func (m *mockService) Name() string           { return m.name }
func (m *mockService) Dependencies() []string { return m.deps }

func (m *mockService) Init(args ...any) error {
	m.args = args
	*m.log = append(*m.log, "init:"+m.name)
	return m.initErr
}

func (m *mockService) Start() error {
	*m.log = append(*m.log, "start:"+m.name)
	return m.startErr
}

func (m *mockService) Stop() error {
	*m.log = append(*m.log, "stop:"+m.name)
	return nil
}

func TestHubDependencyOrder(t *testing.T) {
	var calls []string
	h := NewHub()
	h.Register(&mockService{name: "teller", deps: []string{"audio"}, log: &calls})
	h.Register(&mockService{name: "screen", deps: []string{"teller"}, log: &calls})
	h.Register(&mockService{name: "audio", log: &calls})

	if err := h.InitAll(nil); err != nil {
		t.Fatalf("Unexpected init error: %v", err)
	}
	if err := h.StartAll(); err != nil {
		t.Fatalf("Unexpected start error: %v", err)
	}
	h.StopAll()

	want := []string{
		"init:audio", "init:teller", "init:screen",
		"start:audio", "start:teller", "start:screen",
		"stop:screen", "stop:teller", "stop:audio",
	}
	if len(calls) != len(want) {
		t.Fatalf("Expected %v, got %v", want, calls)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("Call %d: expected %s, got %s", i, want[i], calls[i])
		}
	}
}

func TestHubInitArgs(t *testing.T) {
	var calls []string
	svc := &mockService{name: "audio", log: &calls}
	h := NewHub()
	h.Register(svc)

	if err := h.InitAll(map[string][]any{"audio": {true, 0.5}}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(svc.args) != 2 || svc.args[0] != true {
		t.Errorf("Expected args [true 0.5], got %v", svc.args)
	}
}

func TestHubDuplicateRegistration(t *testing.T) {
	var calls []string
	h := NewHub()
	h.Register(&mockService{name: "audio", log: &calls})

	err := h.Register(&mockService{name: "audio", log: &calls})
	if !errors.Is(err, ErrDuplicateService) {
		t.Errorf("Expected ErrDuplicateService, got %v", err)
	}
}

func TestHubMissingDependency(t *testing.T) {
	var calls []string
	h := NewHub()
	h.Register(&mockService{name: "teller", deps: []string{"audio"}, log: &calls})

	if err := h.InitAll(nil); !errors.Is(err, ErrMissingDependency) {
		t.Errorf("Expected ErrMissingDependency, got %v", err)
	}
}

func TestHubCycle(t *testing.T) {
	var calls []string
	h := NewHub()
	h.Register(&mockService{name: "a", deps: []string{"b"}, log: &calls})
	h.Register(&mockService{name: "b", deps: []string{"a"}, log: &calls})

	if err := h.InitAll(nil); !errors.Is(err, ErrDependencyCycle) {
		t.Errorf("Expected ErrDependencyCycle, got %v", err)
	}
}

func TestHubStartRollback(t *testing.T) {
	var calls []string
	h := NewHub()
	h.Register(&mockService{name: "audio", log: &calls})
	h.Register(&mockService{name: "screen", deps: []string{"audio"}, log: &calls, startErr: errors.New("no tty")})

	if err := h.InitAll(nil); err != nil {
		t.Fatalf("Unexpected init error: %v", err)
	}
	if err := h.StartAll(); err == nil {
		t.Fatal("Expected start error")
	}

	last := calls[len(calls)-1]
	if last != "stop:audio" {
		t.Errorf("Expected rollback to stop audio, got %v", calls)
	}

	calls = nil
	h.StopAll()
	if len(calls) != 0 {
		t.Errorf("Expected StopAll after rollback to be a no-op, got %v", calls)
	}
}
