package notify

import "github.com/CodewithAN/paper-fortune-teller/event"

// CallbackSink invokes a function registered at construction
type CallbackSink struct {
	fn func(event.FortuneRevealedPayload)
}

// NewCallbackSink wraps fn
// Returns a nil Sink when fn is nil so the notifier skips it
func NewCallbackSink(fn func(event.FortuneRevealedPayload)) Sink {
	if fn == nil {
		return nil
	}
	return &CallbackSink{fn: fn}
}

func (s *CallbackSink) Name() string { return "callback" }

func (s *CallbackSink) Deliver(p event.FortuneRevealedPayload) error {
	s.fn(p)
	return nil
}
