// Package notify delivers revealed fortunes to the host environment
package notify

import (
	"fmt"
	"log"

	"github.com/CodewithAN/paper-fortune-teller/event"
)

// Sink receives every revealed fortune
type Sink interface {
	Name() string
	Deliver(p event.FortuneRevealedPayload) error
}

// Notifier fans a payload out to an ordered list of sinks
// Each sink is attempted regardless of what earlier sinks did
type Notifier struct {
	sinks []Sink
}

// NewNotifier creates a notifier over sinks in delivery order, nil entries are skipped
func NewNotifier(sinks ...Sink) *Notifier {
	n := &Notifier{}
	for _, s := range sinks {
		if s != nil {
			n.sinks = append(n.sinks, s)
		}
	}
	return n
}

// Add appends a sink to the end of the delivery order
func (n *Notifier) Add(s Sink) {
	if s != nil {
		n.sinks = append(n.sinks, s)
	}
}

// Sinks returns the sink names in delivery order
func (n *Notifier) Sinks() []string {
	names := make([]string, len(n.sinks))
	for i, s := range n.sinks {
		names[i] = s.Name()
	}
	return names
}

// Notify delivers p to every sink, returning how many succeeded
// Failures and panics are logged and never reach the caller
func (n *Notifier) Notify(p event.FortuneRevealedPayload) int {
	delivered := 0
	for _, s := range n.sinks {
		if err := deliver(s, p); err != nil {
			log.Printf("notify: sink %s: %v", s.Name(), err)
			continue
		}
		delivered++
	}
	return delivered
}

func deliver(s Sink, p event.FortuneRevealedPayload) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return s.Deliver(p)
}
