package scheduler

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestNextDeadlineAdvancesByExactlyOnePeriod(t *testing.T) {
	period := time.Second / 60
	prev := time.Now()
	now := prev.Add(period / 2) // well within schedule

	got := nextDeadline(prev, now, period, 250*time.Millisecond)
	want := prev.Add(period)

	if !got.Equal(want) {
		t.Errorf("nextDeadline = %v, want %v", got, want)
	}
}

func TestNextDeadlineResyncsWhenFarBehind(t *testing.T) {
	period := time.Second / 60
	prev := time.Now()
	now := prev.Add(500 * time.Millisecond) // far behind schedule

	got := nextDeadline(prev, now, period, 250*time.Millisecond)

	if !got.Equal(now) {
		t.Errorf("nextDeadline = %v, want resync to %v", got, now)
	}
}

func TestNextDeadlineDoesNotResyncBelowThreshold(t *testing.T) {
	period := time.Second / 60
	prev := time.Now()
	now := prev.Add(period + 200*time.Millisecond) // behind, but under threshold

	got := nextDeadline(prev, now, period, 250*time.Millisecond)
	want := prev.Add(period)

	if !got.Equal(want) {
		t.Errorf("nextDeadline = %v, want %v (no resync yet)", got, want)
	}
}

// countingCore reports itself ready on every call and counts how many
// times StepFrame was invoked.
type countingCore struct {
	calls int64
}

func (c *countingCore) StepFrame() (bool, error) {
	atomic.AddInt64(&c.calls, 1)
	return true, nil
}

func TestRunTicksAtRoughlySixtyHertz(t *testing.T) {
	core := &countingCore{}
	s := New(core, 250*time.Millisecond)

	var frames int64
	s.OnFrame(func() { atomic.AddInt64(&frames, 1) })

	s.Run()
	time.Sleep(500 * time.Millisecond)
	s.Stop()

	got := atomic.LoadInt64(&frames)
	// ~30 ticks expected in 500ms at 60Hz; allow wide tolerance for a
	// loaded test machine.
	if got < 15 || got > 45 {
		t.Errorf("frames = %d, want roughly 30 (15-45) in 500ms", got)
	}
}

func TestPauseStopsTicksWithoutLosingTheLoop(t *testing.T) {
	core := &countingCore{}
	s := New(core, 250*time.Millisecond)

	s.Run()
	time.Sleep(50 * time.Millisecond)
	s.Pause()

	paused := atomic.LoadInt64(&core.calls)
	time.Sleep(100 * time.Millisecond)
	stillPaused := atomic.LoadInt64(&core.calls)

	if stillPaused != paused {
		t.Errorf("StepFrame called while paused: before=%d after=%d", paused, stillPaused)
	}

	s.Run()
	time.Sleep(100 * time.Millisecond)
	resumed := atomic.LoadInt64(&core.calls)
	s.Stop()

	if resumed <= stillPaused {
		t.Errorf("expected ticking to resume after Run, calls stayed at %d", resumed)
	}
}

type erroringCore struct{}

func (erroringCore) StepFrame() (bool, error) {
	return false, errTest{}
}

type errTest struct{}

func (errTest) Error() string { return "boom" }

func TestOnErrorIsCalledOnTickFailure(t *testing.T) {
	s := New(erroringCore{}, 250*time.Millisecond)

	var gotErr int64
	s.OnError(func(err error) { atomic.AddInt64(&gotErr, 1) })

	s.Run()
	time.Sleep(50 * time.Millisecond)
	s.Stop()

	if atomic.LoadInt64(&gotErr) == 0 {
		t.Errorf("expected OnError to be invoked at least once")
	}
}
