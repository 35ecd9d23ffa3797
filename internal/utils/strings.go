package utils

import (
	"strings"
)

// NoSelection is the value dropdown surfaces send when nothing is chosen.
const NoSelection = "None"

// TrimOrEmpty strips surrounding whitespace from raw input.
func TrimOrEmpty(s string) string {
	return strings.TrimSpace(s)
}

// IsUnselected reports whether a dropdown value means "no filter".
func IsUnselected(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || s == NoSelection
}

// Fallback returns v trimmed, or fallback when v is blank.
func Fallback(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

// Truncate shortens s to at most n runes, marking the cut with "...".
func Truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 || len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}
