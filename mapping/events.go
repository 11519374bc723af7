package mapping

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ReadEvents parses a controller event script. Each non-empty line is
// "BUTTON press" or "BUTTON release" ("down"/"up" and "1"/"0" are accepted
// too); '#' starts a comment.
func ReadEvents(r io.Reader) ([]Event, error) {
	var events []Event
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: want BUTTON press|release, got %q", line, strings.TrimSpace(text))
		}
		pressed, err := parseAction(fields[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		events = append(events, Event{Button: fields[0], Pressed: pressed})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return events, nil
}

func parseAction(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "press", "down", "1":
		return true, nil
	case "release", "up", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid action %q", s)
	}
}
