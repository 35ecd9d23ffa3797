package utils

import (
	"testing"
	"time"
)

func TestFormatClock(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"21:15:00.000000", "21:15:00"},
		{"7:05:30.5", "07:05:30"},
		{"", "N/A"},
		{"21:15:00", "21:15:00"},
		{"not a time", "not a time"},
		{"25:00:00.000000", "25:00:00.000000"},
		{"1 day, 02:00:00.000000", "1 day, 02:00:00.000000"},
	}
	for _, tc := range cases {
		if got := FormatClock(tc.in); got != tc.want {
			t.Fatalf("FormatClock(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}

	// canonical values pass through the fallback unchanged
	if once := FormatClock("06:45:00.120000"); FormatClock(once) != once {
		t.Fatalf("formatting is not idempotent for %q", once)
	}
}

func TestClockString(t *testing.T) {
	if _, ok := ClockString(nil); ok {
		t.Fatalf("nil should report absent")
	}
	if s, _ := ClockString([]byte("21:15:00.000000")); s != "21:15:00.000000" {
		t.Fatalf("unexpected []byte rendering %q", s)
	}
	if s, _ := ClockString("-01:30:00"); s != "-01:30:00" {
		t.Fatalf("negative TIME text should pass through, got %q", s)
	}
	tm := time.Date(1, 1, 1, 6, 45, 0, 0, time.UTC)
	if s, _ := ClockString(tm); FormatClock(s) != "06:45:00" {
		t.Fatalf("unexpected time rendering %q", s)
	}
}

func TestParseClock(t *testing.T) {
	for in, want := range map[string]string{"20:00": "20:00:00", " 06:30:15 ": "06:30:15", "9:05": "09:05:00"} {
		got, err := ParseClock(in)
		if err != nil || got != want {
			t.Fatalf("ParseClock(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	for _, in := range []string{"25:00", "noon", "12:60", ""} {
		if _, err := ParseClock(in); err == nil {
			t.Fatalf("ParseClock(%q) should fail", in)
		}
	}
}
