package entities

import "testing"

func TestParseMeasurementDate(t *testing.T) {
	cases := []struct {
		in, date, clock string
	}{
		{"2025-01-15T10:30", "2025-01-15", "10:30"},
		{"2025-01-15 10:30:00", "2025-01-15", "10:30"},
		{" 2025-01-15 ", "2025-01-15", DefaultMeasurementTime},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			date, clock, err := ParseMeasurementDate(tc.in)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if date != tc.date || clock != tc.clock {
				t.Fatalf("expected %s %s, got %s %s", tc.date, tc.clock, date, clock)
			}
		})
	}

	for _, bad := range []string{"", "next tuesday", "2025-13-01", "15/01/2025"} {
		if _, _, err := ParseMeasurementDate(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestNormalizeSlot(t *testing.T) {
	cases := []struct {
		name                       string
		date, clock, wantD, wantC string
	}{
		{"already normal", "2025-01-15", "09:00", "2025-01-15", "09:00"},
		{"seconds", "2025-01-15", "09:00:00", "2025-01-15", "09:00"},
		{"rfc3339 date", "2025-01-15T00:00:00+09:00", "9:00 AM", "2025-01-15", "09:00"},
		{"datetime prefix", "2025-01-15 00:00", " 14:30 ", "2025-01-15", "14:30"},
		{"unknown kept", "tomorrow", "morning", "tomorrow", "morning"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, c := NormalizeSlot(tc.date, tc.clock)
			if d != tc.wantD || c != tc.wantC {
				t.Fatalf("expected %s %s, got %s %s", tc.wantD, tc.wantC, d, c)
			}
		})
	}
}
