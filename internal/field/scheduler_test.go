package field

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"
)

func TestTickerSchedulerPresentsEachFrame(t *testing.T) {
	presented := 0
	s := NewTickerScheduler(time.Millisecond, func() { presented++ })
	defer s.Stop()

	for i := 0; i < 3; i++ {
		if err := s.NextFrame(context.Background()); err != nil {
			t.Fatalf("NextFrame() error = %v", err)
		}
	}
	if presented != 3 {
		t.Errorf("presented = %d, want 3", presented)
	}
}

func TestTickerSchedulerCancel(t *testing.T) {
	s := NewTickerScheduler(time.Hour, nil)
	defer s.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := s.NextFrame(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("NextFrame() error = %v, want %v", err, context.Canceled)
	}
}

func TestTickerSchedulerDefaultInterval(t *testing.T) {
	s := NewTickerScheduler(0, nil)
	defer s.Stop()

	start := time.Now()
	if err := s.NextFrame(context.Background()); err != nil {
		t.Fatalf("NextFrame() error = %v", err)
	}
	if time.Since(start) > time.Second {
		t.Errorf("first frame took %v", time.Since(start))
	}
}

func TestRunWithTickerScheduler(t *testing.T) {
	s := &recordSurface{}
	f := New(s, WithRand(rand.New(rand.NewSource(2))))
	f.Resize(200, 100)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	sched := NewTickerScheduler(time.Millisecond, nil)
	defer sched.Stop()

	err := f.Run(ctx, sched)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Run() error = %v, want %v", err, context.DeadlineExceeded)
	}
	if s.clears == 0 {
		t.Error("no frames ticked before deadline")
	}
}
