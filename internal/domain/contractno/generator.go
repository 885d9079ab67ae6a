// Package contractno builds date-scoped document numbers such as C20250101-001.
package contractno

import (
	"context"
	"fmt"
	"time"
)

const (
	PrefixContract = "C"
	PrefixEstimate = "E"

	dateLayout = "20060102"
)

// Base returns the date-scoped prefix shared by every number issued on that day.
func Base(prefix string, date time.Time) string {
	return prefix + date.Format(dateLayout) + "-"
}

// Generate returns the lowest unused number for the given prefix and date.
//
// The sequence is padded to three digits and keeps growing past 999.
func Generate(prefix string, date time.Time, existing []string) string {
	taken := make(map[string]struct{}, len(existing))
	for _, no := range existing {
		taken[no] = struct{}{}
	}

	base := Base(prefix, date)
	for seq := 1; ; seq++ {
		candidate := fmt.Sprintf("%s%03d", base, seq)
		if _, ok := taken[candidate]; !ok {
			return candidate
		}
	}
}

// Lister returns the numbers already issued that start with base.
type Lister func(ctx context.Context, base string) ([]string, error)

// Sequencer pairs Generate with a source of issued numbers.
type Sequencer struct {
	prefix string
	list   Lister
}

func NewSequencer(prefix string, list Lister) *Sequencer {
	return &Sequencer{prefix: prefix, list: list}
}

// Next lists the numbers issued for date and returns the next free one.
func (s *Sequencer) Next(ctx context.Context, date time.Time) (string, error) {
	if s == nil || s.list == nil {
		return "", fmt.Errorf("contractno: sequencer %q has no lister", s.prefixOrEmpty())
	}
	base := Base(s.prefix, date)
	existing, err := s.list(ctx, base)
	if err != nil {
		return "", fmt.Errorf("contractno: list %s: %w", base, err)
	}
	return Generate(s.prefix, date, existing), nil
}

func (s *Sequencer) prefixOrEmpty() string {
	if s == nil {
		return ""
	}
	return s.prefix
}
