package utils

import "testing"

func TestFormatRupee(t *testing.T) {
	cases := map[float64]string{
		0:         "Rs. 0.00",
		750:       "Rs. 750.00",
		1250.5:    "Rs. 1,250.50",
		1234567.5: "Rs. 12,34,567.50",
		-100000:   "-Rs. 1,00,000.00",
	}
	for in, want := range cases {
		if got := FormatRupee(in); got != want {
			t.Fatalf("FormatRupee(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestSelectionHelpers(t *testing.T) {
	for _, s := range []string{"", "  ", "None", " None "} {
		if !IsUnselected(s) {
			t.Fatalf("%q should mean no selection", s)
		}
	}
	if IsUnselected("KL") {
		t.Fatalf("KL is a selection")
	}
	if got := Truncate("Kochi to Bangalore", 8); got != "Kochi..." {
		t.Fatalf("unexpected truncation %q", got)
	}
	if got := Fallback("  ", "NA"); got != "NA" {
		t.Fatalf("unexpected fallback %q", got)
	}
}
