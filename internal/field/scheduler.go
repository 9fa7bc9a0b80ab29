package field

import (
	"context"
	"time"
)

// DefaultFrameInterval is roughly one 60 Hz display refresh
const DefaultFrameInterval = time.Second / 60

// Scheduler hands control back to the host between frames.
type Scheduler interface {
	// NextFrame presents the finished frame and blocks until the next
	// refresh. It returns ctx.Err() if ctx is done first.
	NextFrame(ctx context.Context) error
}

// TickerScheduler paces frames with a time.Ticker. Late frames are not
// dropped or caught up: a missed tick is simply delivered late.
type TickerScheduler struct {
	ticker  *time.Ticker
	present func()
}

// NewTickerScheduler returns a scheduler firing every interval. present, if
// non-nil, is called at the end of each frame before waiting.
func NewTickerScheduler(interval time.Duration, present func()) *TickerScheduler {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	return &TickerScheduler{
		ticker:  time.NewTicker(interval),
		present: present,
	}
}

// NextFrame implements Scheduler.
func (s *TickerScheduler) NextFrame(ctx context.Context) error {
	if s.present != nil {
		s.present()
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.ticker.C:
		return nil
	}
}

// Stop releases the underlying ticker.
func (s *TickerScheduler) Stop() {
	s.ticker.Stop()
}
