package notify

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/CodewithAN/paper-fortune-teller/event"
)

// MessageChannel is the host's outbound message surface
// Implementations receive one JSON-encoded payload per call
type MessageChannel interface {
	PostMessage(data []byte) error
}

// ChannelSink posts the wire payload to a host message channel
// An absent channel makes delivery a silent no-op
type ChannelSink struct {
	ch MessageChannel
}

// NewChannelSink creates a sink over ch, ch may be nil
func NewChannelSink(ch MessageChannel) *ChannelSink {
	return &ChannelSink{ch: ch}
}

func (s *ChannelSink) Name() string { return "channel" }

func (s *ChannelSink) Deliver(p event.FortuneRevealedPayload) error {
	if s.ch == nil {
		return nil
	}
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}
	return s.ch.PostMessage(data)
}

// WriterChannel writes each message as one line to an io.Writer
type WriterChannel struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterChannel adapts w into a MessageChannel
func NewWriterChannel(w io.Writer) *WriterChannel {
	return &WriterChannel{w: w}
}

// PostMessage writes data followed by a newline
func (c *WriterChannel) PostMessage(data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	line := make([]byte, 0, len(data)+1)
	line = append(line, data...)
	line = append(line, '\n')
	if _, err := c.w.Write(line); err != nil {
		return fmt.Errorf("write message: %w", err)
	}
	return nil
}

// ChannelFunc adapts a function into a MessageChannel
type ChannelFunc func(data []byte) error

func (f ChannelFunc) PostMessage(data []byte) error { return f(data) }
