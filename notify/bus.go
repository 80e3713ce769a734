package notify

import "github.com/CodewithAN/paper-fortune-teller/event"

// BusSink publishes fortuneRevealed on an event bus
type BusSink struct {
	bus *event.Bus
}

// NewBusSink creates a sink over bus, nil selects the process-wide bus
func NewBusSink(bus *event.Bus) *BusSink {
	if bus == nil {
		bus = event.Default()
	}
	return &BusSink{bus: bus}
}

func (s *BusSink) Name() string { return "bus" }

func (s *BusSink) Deliver(p event.FortuneRevealedPayload) error {
	payload := p
	s.bus.Publish(event.GameEvent{Type: event.EventFortuneRevealed, Payload: &payload})
	return nil
}
