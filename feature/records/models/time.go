package models

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseClockTime converts a clock-style time string to whole seconds.
// Accepted forms are "MM:SS" and "H:MM:SS". The empty string parses to 0,
// which the record model treats as "no time recorded".
func ParseClockTime(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}

	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("invalid time string %q", s)
	}

	values := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || v < 0 {
			return 0, fmt.Errorf("invalid time string %q", s)
		}
		values[i] = v
	}

	if len(values) == 2 {
		return values[0]*60 + values[1], nil
	}
	return values[0]*3600 + values[1]*60 + values[2], nil
}

// FormatSeconds renders whole seconds as "MM:SS", or "H:MM:SS" for times of
// an hour or more.
func FormatSeconds(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
