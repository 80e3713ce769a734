package engine

import (
	"github.com/CodewithAN/paper-fortune-teller/event"
	"github.com/CodewithAN/paper-fortune-teller/fortune"
	"github.com/CodewithAN/paper-fortune-teller/notify"
	"github.com/CodewithAN/paper-fortune-teller/status"
)

// Option configures a Sequencer at construction
type Option func(*options)

type options struct {
	fortunes []string
	callback func(event.FortuneRevealedPayload)
	channel  notify.MessageChannel
	bus      *event.Bus
	clock    Clock
	rng      fortune.RNG
	status   *status.Registry
	sinks    []notify.Sink
}

// WithFortunes replaces the built-in messages, an empty list keeps the defaults
func WithFortunes(entries []string) Option {
	return func(o *options) { o.fortunes = entries }
}

// WithCallback registers the direct result callback, delivered first
func WithCallback(fn func(event.FortuneRevealedPayload)) Option {
	return func(o *options) { o.callback = fn }
}

// WithMessageChannel sets the host message channel, delivered after the callback
func WithMessageChannel(ch notify.MessageChannel) Option {
	return func(o *options) { o.channel = ch }
}

// WithBus selects the bus for published events, default is event.Default()
func WithBus(bus *event.Bus) Option {
	return func(o *options) { o.bus = bus }
}

// WithClock replaces the real clock, tests pass a MockClock
func WithClock(c Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithRNG replaces the source used to pick fortunes
func WithRNG(rng fortune.RNG) Option {
	return func(o *options) { o.rng = rng }
}

// WithStatus shares a metrics registry with the host
func WithStatus(reg *status.Registry) Option {
	return func(o *options) { o.status = reg }
}

// WithSinks appends extra sinks after the callback, channel and bus sinks
func WithSinks(sinks ...notify.Sink) Option {
	return func(o *options) { o.sinks = append(o.sinks, sinks...) }
}
