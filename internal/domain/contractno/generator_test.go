package contractno

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"testing"
	"time"
)

var shape = regexp.MustCompile(`^C\d{8}-\d{3,}$`)

func day(t *testing.T) time.Time {
	t.Helper()
	return time.Date(2025, 1, 1, 15, 30, 0, 0, time.UTC)
}

func TestGenerate(t *testing.T) {
	d := day(t)

	t.Run("empty set starts at 001", func(t *testing.T) {
		if got := Generate(PrefixContract, d, nil); got != "C20250101-001" {
			t.Fatalf("expected C20250101-001, got %q", got)
		}
	})

	t.Run("next after existing", func(t *testing.T) {
		got := Generate(PrefixContract, d, []string{"C20250101-001"})
		if got != "C20250101-002" {
			t.Fatalf("expected C20250101-002, got %q", got)
		}
	})

	t.Run("lowest gap wins", func(t *testing.T) {
		got := Generate(PrefixContract, d, []string{"C20250101-003", "C20250101-001"})
		if got != "C20250101-002" {
			t.Fatalf("expected C20250101-002, got %q", got)
		}
	})

	t.Run("other days do not count", func(t *testing.T) {
		got := Generate(PrefixContract, d, []string{"C20241231-001", "E20250101-001"})
		if got != "C20250101-001" {
			t.Fatalf("expected C20250101-001, got %q", got)
		}
	})

	t.Run("sequence grows past 999", func(t *testing.T) {
		existing := make([]string, 0, 999)
		for i := 1; i <= 999; i++ {
			existing = append(existing, fmt.Sprintf("C20250101-%03d", i))
		}
		got := Generate(PrefixContract, d, existing)
		if got != "C20250101-1000" {
			t.Fatalf("expected C20250101-1000, got %q", got)
		}
	})

	t.Run("never collides and keeps shape", func(t *testing.T) {
		existing := []string{}
		for i := 0; i < 50; i++ {
			got := Generate(PrefixContract, d, existing)
			if !shape.MatchString(got) {
				t.Fatalf("unexpected shape %q", got)
			}
			for _, e := range existing {
				if e == got {
					t.Fatalf("collision on %q", got)
				}
			}
			existing = append(existing, got)
		}
	})

	t.Run("estimate prefix", func(t *testing.T) {
		if got := Generate(PrefixEstimate, d, nil); got != "E20250101-001" {
			t.Fatalf("expected E20250101-001, got %q", got)
		}
	})
}

func TestSequencer_Next(t *testing.T) {
	d := day(t)

	t.Run("passes date base to lister", func(t *testing.T) {
		var gotBase string
		s := NewSequencer(PrefixContract, func(_ context.Context, base string) ([]string, error) {
			gotBase = base
			return []string{"C20250101-001"}, nil
		})
		no, err := s.Next(context.Background(), d)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotBase != "C20250101-" {
			t.Fatalf("expected base C20250101-, got %q", gotBase)
		}
		if no != "C20250101-002" {
			t.Fatalf("expected C20250101-002, got %q", no)
		}
	})

	t.Run("lister error", func(t *testing.T) {
		boom := errors.New("db")
		s := NewSequencer(PrefixContract, func(context.Context, string) ([]string, error) { return nil, boom })
		if _, err := s.Next(context.Background(), d); !errors.Is(err, boom) {
			t.Fatalf("expected wrapped db error, got %v", err)
		}
	})

	t.Run("nil sequencer", func(t *testing.T) {
		var s *Sequencer
		if _, err := s.Next(context.Background(), d); err == nil {
			t.Fatalf("expected error")
		}
	})
}
