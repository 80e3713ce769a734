package main

import (
	"fmt"
	"io"
	"os"

	"github.com/CodewithAN/paper-fortune-teller/notify"
)

// Host channel outputs accepted by -host-out and host.output
const (
	outputStdout = "stdout"
	outputStderr = "stderr"
	outputNone   = "none"
)

// openHostChannel resolves the host message channel
// An empty output selects fallback, a nil channel means no host is listening
func openHostChannel(output, fallback string) (notify.MessageChannel, io.Closer, error) {
	if output == "" {
		output = fallback
	}

	switch output {
	case outputNone:
		return nil, nil, nil
	case outputStdout:
		return notify.NewWriterChannel(os.Stdout), nil, nil
	case outputStderr:
		return notify.NewWriterChannel(os.Stderr), nil, nil
	}

	f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open host output: %w", err)
	}
	return notify.NewWriterChannel(f), f, nil
}
