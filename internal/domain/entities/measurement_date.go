package entities

import (
	"fmt"
	"strings"
	"time"
)

// DefaultMeasurementTime is used when the measurement date carries no time.
const DefaultMeasurementTime = "09:00"

var measurementLayouts = []struct {
	layout   string
	dateOnly bool
}{
	{"2006-01-02T15:04", false},
	{"2006-01-02 15:04", false},
	{"2006-01-02T15:04:05", false},
	{"2006-01-02 15:04:05", false},
	{time.RFC3339, false},
	{time.DateOnly, true},
}

// ParseMeasurementDate splits a measurement date into YYYY-MM-DD and HH:MM.
// A date without a time component gets DefaultMeasurementTime.
func ParseMeasurementDate(v string) (date string, clock string, err error) {
	v = strings.TrimSpace(v)
	for _, l := range measurementLayouts {
		t, perr := time.Parse(l.layout, v)
		if perr != nil {
			continue
		}
		if l.dateOnly {
			return t.Format(time.DateOnly), DefaultMeasurementTime, nil
		}
		return t.Format(time.DateOnly), t.Format("15:04"), nil
	}
	return "", "", fmt.Errorf("unrecognized measurement date %q", v)
}

var slotTimeLayouts = []string{"15:04", "15:04:05", "3:04 PM", "3:04PM"}

// NormalizeSlot brings a stored schedule date and time to YYYY-MM-DD and
// HH:MM. Values in an unknown format are returned trimmed but unchanged.
func NormalizeSlot(date, clock string) (string, string) {
	date, clock = strings.TrimSpace(date), strings.TrimSpace(clock)
	if t, err := time.Parse(time.RFC3339, date); err == nil {
		date = t.Format(time.DateOnly)
	} else if len(date) > len(time.DateOnly) {
		if t, err := time.Parse(time.DateOnly, date[:len(time.DateOnly)]); err == nil {
			date = t.Format(time.DateOnly)
		}
	}
	for _, l := range slotTimeLayouts {
		if t, err := time.Parse(l, clock); err == nil {
			return date, t.Format("15:04")
		}
	}
	return date, clock
}
