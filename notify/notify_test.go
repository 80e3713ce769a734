package notify

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/CodewithAN/paper-fortune-teller/event"
)

var samplePayload = event.FortuneRevealedPayload{
	Type:       "fortuneRevealed",
	Fortune:    "Good luck will follow you everywhere.",
	FlapNumber: 7,
	Success:    true,
}

type failingSink struct {
	panics bool
}

func (s failingSink) Name() string { return "failing" }

func (s failingSink) Deliver(event.FortuneRevealedPayload) error {
	if s.panics {
		panic("boom")
	}
	return errors.New("host gone")
}

func TestNotifierIndependentSinks(t *testing.T) {
	var order []string
	first := NewCallbackSink(func(event.FortuneRevealedPayload) { order = append(order, "first") })
	last := NewCallbackSink(func(event.FortuneRevealedPayload) { order = append(order, "last") })

	n := NewNotifier(first, failingSink{}, failingSink{panics: true}, last)
	delivered := n.Notify(samplePayload)

	if delivered != 2 {
		t.Errorf("Expected 2 successful deliveries, got %d", delivered)
	}
	if len(order) != 2 || order[0] != "first" || order[1] != "last" {
		t.Errorf("Expected [first last], got %v", order)
	}
}

func TestNilCallbackSkipped(t *testing.T) {
	n := NewNotifier(NewCallbackSink(nil), NewChannelSink(nil))
	if got := n.Sinks(); len(got) != 1 || got[0] != "channel" {
		t.Errorf("Expected only the channel sink, got %v", got)
	}
}

func TestChannelSinkWireFormat(t *testing.T) {
	var buf bytes.Buffer
	sink := NewChannelSink(NewWriterChannel(&buf))

	if err := sink.Deliver(samplePayload); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	want := `{"type":"fortuneRevealed","fortune":"Good luck will follow you everywhere.","flapNumber":7,"success":true}` + "\n"
	if buf.String() != want {
		t.Errorf("Expected %q, got %q", want, buf.String())
	}
}

func TestChannelSinkAbsentChannel(t *testing.T) {
	if err := NewChannelSink(nil).Deliver(samplePayload); err != nil {
		t.Errorf("Expected silent no-op for absent channel, got %v", err)
	}
}

func TestChannelFuncError(t *testing.T) {
	sink := NewChannelSink(ChannelFunc(func([]byte) error { return errors.New("closed") }))
	err := sink.Deliver(samplePayload)
	if err == nil || !strings.Contains(err.Error(), "closed") {
		t.Errorf("Expected channel error, got %v", err)
	}
}

func TestBusSinkPublishes(t *testing.T) {
	bus := event.NewBus()
	var got *event.FortuneRevealedPayload
	bus.Subscribe(event.EventFortuneRevealed, func(ev event.GameEvent) {
		got, _ = ev.Payload.(*event.FortuneRevealedPayload)
	})

	if err := NewBusSink(bus).Deliver(samplePayload); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got == nil || *got != samplePayload {
		t.Errorf("Expected %+v on the bus, got %+v", samplePayload, got)
	}
}
