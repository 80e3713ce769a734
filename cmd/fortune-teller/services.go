package main

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/CodewithAN/paper-fortune-teller/core"
	"github.com/CodewithAN/paper-fortune-teller/engine"
	"github.com/CodewithAN/paper-fortune-teller/service"
)

// registerAll adds svcs to hub in order, stopping at the first rejected service
func registerAll(hub *service.Hub, svcs ...service.Service) error {
	for _, svc := range svcs {
		if err := hub.Register(svc); err != nil {
			return err
		}
	}
	return nil
}

// tellerService owns the sequencer lifetime
type tellerService struct {
	opts []engine.Option
	seq  *engine.Sequencer
}

func newTellerService(opts ...engine.Option) *tellerService {
	return &tellerService{opts: opts}
}

func (s *tellerService) Name() string           { return "teller" }
func (s *tellerService) Dependencies() []string { return []string{"audio"} }

// Init appends extra engine options passed as args
func (s *tellerService) Init(args ...any) error {
	for _, arg := range args {
		opt, ok := arg.(engine.Option)
		if !ok {
			return fmt.Errorf("teller: unexpected init arg %T", arg)
		}
		s.opts = append(s.opts, opt)
	}
	s.seq = engine.New(s.opts...)
	return nil
}

func (s *tellerService) Start() error { return nil }

func (s *tellerService) Stop() error {
	if s.seq != nil {
		s.seq.Close()
	}
	return nil
}

// screenService owns the tcell screen and the crash-time terminal restore
type screenService struct {
	screen   tcell.Screen
	stopOnce sync.Once
}

func newScreenService(screen tcell.Screen) *screenService {
	return &screenService{screen: screen}
}

func (s *screenService) Name() string           { return "screen" }
func (s *screenService) Dependencies() []string { return []string{"teller"} }
func (s *screenService) Init(args ...any) error { return nil }

func (s *screenService) Start() error {
	if err := s.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	s.screen.EnableMouse()
	s.screen.HideCursor()
	core.SetCrashReset(s.screen.Fini)
	return nil
}

func (s *screenService) Stop() error {
	s.stopOnce.Do(func() {
		core.SetCrashReset(nil)
		s.screen.Fini()
	})
	return nil
}
