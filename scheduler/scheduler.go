package scheduler

import (
	"sync"
	"time"

	"github.com/retrocores/retrocores/logger"
)

const logID = "scheduler"

const tickRate = 60

// Core is a steppable emulation core. One call to StepFrame performs a
// single tick's worth of work and reports whether the framebuffer
// completed a fresh frame.
type Core interface {
	StepFrame() (bool, error)
}

// Scheduler runs a Core's StepFrame at a fixed 60Hz rate on its own
// goroutine, publishing frame-ready and error notifications through the
// callbacks registered with OnFrame and OnError.
type Scheduler struct {
	core            Core
	period          time.Duration
	resyncThreshold time.Duration

	onFrame func()
	onError func(error)

	mu      sync.Mutex
	running bool
	stop    chan struct{}
	done    chan struct{}
}

// New returns a Scheduler ticking core at 60Hz, resyncing to wall-clock
// time once a tick falls more than resyncThreshold behind schedule.
func New(core Core, resyncThreshold time.Duration) *Scheduler {
	return &Scheduler{
		core:            core,
		period:          time.Second / tickRate,
		resyncThreshold: resyncThreshold,
	}
}

// OnFrame registers the callback invoked after a tick that completes a
// frame. It must be set before Run.
func (s *Scheduler) OnFrame(f func()) {
	s.onFrame = f
}

// OnError registers the callback invoked when a tick's StepFrame call
// returns an error. It must be set before Run.
func (s *Scheduler) OnError(f func(error)) {
	s.onError = f
}

// Run starts the tick loop if it is not already running. It is safe to
// call Run again after Pause to resume ticking without losing machine
// state.
func (s *Scheduler) Run() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}
	s.running = true

	if s.stop == nil {
		s.stop = make(chan struct{})
		s.done = make(chan struct{})
		go s.loop(s.stop, s.done)
	}
}

// Pause suspends ticking without cancelling the loop goroutine; Run
// resumes it from a fresh deadline.
func (s *Scheduler) Pause() {
	s.mu.Lock()
	s.running = false
	s.mu.Unlock()
}

// Stop cancels the loop goroutine entirely and blocks until it has
// exited, cancelling any pending tick.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if s.stop == nil {
		s.mu.Unlock()
		return
	}
	stop, done := s.stop, s.done
	s.running = false
	s.stop = nil
	s.done = nil
	s.mu.Unlock()

	close(stop)
	<-done
}

func (s *Scheduler) isRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *Scheduler) loop(stop <-chan struct{}, done chan struct{}) {
	defer close(done)

	next := time.Now()
	const idlePoll = 10 * time.Millisecond

	for {
		var wait time.Duration
		if s.isRunning() {
			wait = time.Until(next)
			if wait < 0 {
				wait = 0
			}
		} else {
			wait = idlePoll
		}

		select {
		case <-stop:
			return
		case <-time.After(wait):
		}

		if !s.isRunning() {
			next = time.Now()
			continue
		}

		ready, err := s.core.StepFrame()
		if err != nil {
			logger.Logf(logger.Allow, logID, "tick error: %v", err)
			if s.onError != nil {
				s.onError(err)
			}
		} else if ready && s.onFrame != nil {
			s.onFrame()
		}

		next = nextDeadline(next, time.Now(), s.period, s.resyncThreshold)
	}
}

// nextDeadline advances prev by exactly one period, resyncing to now
// only once the loop has fallen more than resyncThreshold behind.
func nextDeadline(prev, now time.Time, period, resyncThreshold time.Duration) time.Time {
	next := prev.Add(period)
	if now.Sub(next) > resyncThreshold {
		logger.Logf(logger.Allow, logID, "fell behind by more than %s, resyncing", resyncThreshold)
		return now
	}
	return next
}
