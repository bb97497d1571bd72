package sysinfo

import "testing"

func TestFormatUptime(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{3725, "1h 2m"},
		{59, "0h 0m"},
		{180000, "50h 0m"},
		{3599, "0h 59m"},
		{3600, "1h 0m"},
	}

	for _, tc := range tests {
		if got := formatUptime(tc.seconds); got != tc.want {
			t.Fatalf("formatUptime(%v) = %q; want %q", tc.seconds, got, tc.want)
		}
	}
}

func TestFormatRatio(t *testing.T) {
	if got := formatRatio(0.5, 2.0); got != "0.5 GiB / 2.0 GiB" {
		t.Fatalf("formatRatio failed: got %q", got)
	}
	if got := formatRatio(0, 0); got != "0.0 GiB / 0.0 GiB" {
		t.Fatalf("formatRatio zero case failed: got %q", got)
	}
}

func TestUnitConversions(t *testing.T) {
	// Memory is binary (2^20 KiB per GiB), swap/storage decimal (10^9
	// bytes per GB).
	if got := kibToGiB(1024 * 1024); got != 1.0 {
		t.Fatalf("kibToGiB(1Mi) = %v; want 1.0", got)
	}
	if got := bytesToGB(2_000_000_000); got != 2.0 {
		t.Fatalf("bytesToGB(2e9) = %v; want 2.0", got)
	}
}

func TestPadRight(t *testing.T) {
	if got := PadRight("Hi", 5); got != "Hi   " {
		t.Fatalf("PadRight failed: got %q", got)
	}
	if got := PadRight("HelloWorld", 5); got != "HelloWorld" {
		t.Fatalf("PadRight truncate-case failed: got %q", got)
	}
	if got := PadRight("OS", 8); got != "OS      " {
		t.Fatalf("PadRight label case failed: got %q", got)
	}
}
