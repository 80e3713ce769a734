package fortune

import (
	"github.com/CodewithAN/paper-fortune-teller/event"
	"github.com/CodewithAN/paper-fortune-teller/parameter"
)

// Result is the outcome of one play-through
type Result struct {
	FlapNumber int
	Text       string
	Success    bool
	PlayID     string // Correlates logs and bus events, never sent to the host
}

// Payload converts the result into the host-facing message
func (r Result) Payload() event.FortuneRevealedPayload {
	return event.FortuneRevealedPayload{
		Type:       parameter.FortuneRevealedName,
		Fortune:    r.Text,
		FlapNumber: r.FlapNumber,
		Success:    r.Success,
	}
}
