package clock

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		at     time.Time
		hour24 bool
		want   string
	}{
		{at: time.Date(2026, 10, 16, 9, 5, 0, 0, time.UTC), want: "09:05 AM"},
		{at: time.Date(2026, 10, 16, 15, 4, 59, 0, time.UTC), want: "03:04 PM"},
		{at: time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC), want: "12:00 AM"},
		{at: time.Date(2026, 10, 16, 15, 4, 0, 0, time.UTC), hour24: true, want: "15:04"},
	}
	for _, tt := range tests {
		if got := Format(tt.at, tt.hour24); got != tt.want {
			t.Fatalf("Format(%v, %v) = %q; want %q", tt.at, tt.hour24, got, tt.want)
		}
	}
}

func TestFixed(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	if got := Fixed(at).Now(); !got.Equal(at) {
		t.Fatalf("expected %v; got %v", at, got)
	}
}

func TestSchedule_TicksUntilStopped(t *testing.T) {
	t.Parallel()

	var n atomic.Int64
	stop := Schedule(context.Background(), 5*time.Millisecond, func(time.Time) { n.Add(1) })

	deadline := time.Now().Add(2 * time.Second)
	for n.Load() < 3 {
		if time.Now().After(deadline) {
			stop()
			t.Fatalf("expected at least 3 ticks; got %d", n.Load())
		}
		time.Sleep(2 * time.Millisecond)
	}

	stop()
	after := n.Load()
	time.Sleep(30 * time.Millisecond)
	if got := n.Load(); got != after {
		t.Fatalf("expected no ticks after stop; got %d more", got-after)
	}

	// Idempotent.
	stop()
	stop()
}

func TestSchedule_StopsWithContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	var n atomic.Int64
	stop := Schedule(ctx, 5*time.Millisecond, func(time.Time) { n.Add(1) })
	cancel()
	// stop after ctx cancellation must still return promptly.
	stop()
	after := n.Load()
	time.Sleep(20 * time.Millisecond)
	if got := n.Load(); got != after {
		t.Fatalf("expected no ticks after context cancel; got %d more", got-after)
	}
}
