package clock

import (
	"context"
	"sync"
	"time"
)

// Clock reports wall-clock time. Tests use Fixed.
type Clock interface {
	Now() time.Time
}

type Real struct{}

func (Real) Now() time.Time { return time.Now() }

type Fixed time.Time

func (f Fixed) Now() time.Time { return time.Time(f) }

// Format renders the header clock: "03:04 PM" (2-digit hour and minute), or
// "15:04" when hour24 is set.
func Format(t time.Time, hour24 bool) string {
	if hour24 {
		return t.Format("15:04")
	}
	return t.Format("03:04 PM")
}

// Schedule calls fn every interval until ctx is done or the returned stop is
// called. stop may be called any number of times; once it returns, fn is not
// running and will not be called again. fn must not call stop itself.
func Schedule(ctx context.Context, interval time.Duration, fn func(time.Time)) (stop func()) {
	if interval <= 0 {
		interval = time.Second
	}
	ctx, cancel := context.WithCancel(ctx)

	var (
		mu      sync.Mutex
		stopped bool
	)
	done := make(chan struct{})

	go func() {
		defer close(done)
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-t.C:
				mu.Lock()
				if !stopped {
					fn(now)
				}
				mu.Unlock()
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			mu.Lock()
			stopped = true
			mu.Unlock()
			cancel()
			<-done
		})
	}
}
