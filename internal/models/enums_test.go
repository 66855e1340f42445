// ABOUTME: Tests for enum parsing.
// ABOUTME: Validates case-insensitive matching and rejection of unknown values.

package models

import (
	"errors"
	"testing"
)

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("work")
	if err != nil || c != CategoryWork {
		t.Errorf("expected Work, got %q (%v)", c, err)
	}
	if _, err := ParseCategory("Chores"); !errors.Is(err, ErrInvalidCategory) {
		t.Errorf("expected ErrInvalidCategory, got %v", err)
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor(" Purple ")
	if err != nil || c != ColorPurple {
		t.Errorf("expected purple, got %q (%v)", c, err)
	}
	if _, err := ParseColor("orange"); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("expected ErrInvalidColor, got %v", err)
	}
}

func TestParsePriority(t *testing.T) {
	p, err := ParsePriority("HIGH")
	if err != nil || p != PriorityHigh {
		t.Errorf("expected high, got %q (%v)", p, err)
	}
	if _, err := ParsePriority("urgent"); !errors.Is(err, ErrInvalidPriority) {
		t.Errorf("expected ErrInvalidPriority, got %v", err)
	}
}
