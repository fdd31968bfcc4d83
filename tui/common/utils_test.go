package common

import (
	"testing"
	"time"
)

func TestRelativeTime(t *testing.T) {
	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		ago  time.Duration
		want string
	}{
		{30 * time.Second, "just now"},
		{5 * time.Minute, "5m"},
		{3 * time.Hour, "3h"},
		{48 * time.Hour, "2d"},
	}
	for _, tc := range tests {
		if got := RelativeTime(now.Add(-tc.ago), now); got != tc.want {
			t.Fatalf("RelativeTime(-%v) = %q, want %q", tc.ago, got, tc.want)
		}
	}
	if got := RelativeTime(now.Add(-30*24*time.Hour), now); got != "Feb 8" {
		t.Fatalf("old timestamps should fall back to a date, got %q", got)
	}
}

func TestPadCenter(t *testing.T) {
	if got := PadCenter("ab", 6); got != "  ab  " {
		t.Fatalf("unexpected centering: %q", got)
	}
	if got := PadCenter("abc", 6); got != " abc  " {
		t.Fatalf("odd remainder should lean left: %q", got)
	}
	if got := PadCenter("toolong", 3); got != "toolong" {
		t.Fatalf("wider text must pass through: %q", got)
	}
}

func TestTruncateRight(t *testing.T) {
	if got := TruncateRight("short", 10); got != "short" {
		t.Fatalf("no-op truncate changed text: %q", got)
	}
	got := TruncateRight("a very long caption", 8)
	if len([]rune(got)) > 8 || got[len(got)-len("…"):] != "…" {
		t.Fatalf("unexpected truncation: %q", got)
	}
}
