package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/CodewithAN/paper-fortune-teller/region"
)

// tapper is the part of the sequencer a script drives
type tapper interface {
	HandleTap(regionID, regionColor string)
}

// runScript executes a line-oriented tap script
//
//	tap <region-id> [color]   tap a region, color is used while closed
//	                          a palette name id such as "green" supplies its own color
//	wait <duration>           let timers run, e.g. "wait 2s"
//	quit                      stop reading
//
// Blank lines and lines starting with # are skipped
func runScript(r io.Reader, t tapper, wait func(time.Duration)) error {
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "tap":
			if len(fields) < 2 || len(fields) > 3 {
				return fmt.Errorf("line %d: usage: tap <region-id> [color]", lineNo)
			}
			color := ""
			if len(fields) == 3 {
				color = fields[2]
			} else if entry, ok := region.ColorFor(fields[1]); ok {
				color = entry.Hex
			}
			t.HandleTap(fields[1], color)

		case "wait":
			if len(fields) != 2 {
				return fmt.Errorf("line %d: usage: wait <duration>", lineNo)
			}
			d, err := time.ParseDuration(fields[1])
			if err != nil {
				return fmt.Errorf("line %d: %w", lineNo, err)
			}
			wait(d)

		case "quit":
			return nil

		default:
			return fmt.Errorf("line %d: unknown command %q", lineNo, fields[0])
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	return nil
}
