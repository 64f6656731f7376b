package utils

import (
	"strconv"
	"strings"
)

// ToSeconds converts a value to whole seconds using explicit type switching.
// Fractional inputs (speedrun.com reports times as fractional seconds) are
// truncated; unparseable strings yield 0.
func ToSeconds(val any) int {
	switch v := val.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case float32:
		return int(v)
	case string:
		// Accept both "3600" and "3600.45"
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return int(f)
		}
		return 0
	default:
		return 0
	}
}

// ToBool converts a stored boolean-as-integer column to bool.
// It handles bool, numeric types (1=true), and strings ("1", "true").
func ToBool(val any) bool {
	switch v := val.(type) {
	case bool:
		return v
	case int:
		return v == 1
	case int64:
		return v == 1
	case string:
		return v == "1" || strings.ToLower(v) == "true"
	default:
		return false
	}
}
