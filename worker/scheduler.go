package worker

import (
	"time"
)

// Status is the state of a Scheduler.
type Status string

const (
	// StatusStopped means no ticker is active
	StatusStopped Status = "stopped"
	// StatusRunning means a ticker is active and firing
	StatusRunning Status = "running"
)

// Ticker is a repeating timer. *time.Ticker is adapted to it by
// NewTimeTicker.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type timeTicker struct{ t *time.Ticker }

func (t timeTicker) C() <-chan time.Time { return t.t.C }
func (t timeTicker) Stop()               { t.t.Stop() }

// NewTimeTicker returns a Ticker backed by time.NewTicker.
func NewTimeTicker(d time.Duration) Ticker {
	return timeTicker{time.NewTicker(d)}
}

// Scheduler owns the single repeating timer that drives a game. It is not
// safe for concurrent use; it belongs to the goroutine running the game loop.
type Scheduler struct {
	// NewTicker builds the timer for each Start. Defaults to NewTimeTicker.
	NewTicker func(time.Duration) Ticker

	ticker   Ticker
	interval time.Duration
}

// Start cancels the active timer, if any, and starts a new one firing every
// interval.
func (s *Scheduler) Start(interval time.Duration) {
	s.Stop()
	newTicker := s.NewTicker
	if newTicker == nil {
		newTicker = NewTimeTicker
	}
	s.ticker = newTicker(interval)
	s.interval = interval
}

// Stop cancels the active timer. Stopping a stopped scheduler is a no-op.
func (s *Scheduler) Stop() {
	if s.ticker == nil {
		return
	}
	s.ticker.Stop()
	s.ticker = nil
}

// C returns the channel of the active timer. It is nil while stopped so a
// select on it never fires.
func (s *Scheduler) C() <-chan time.Time {
	if s.ticker == nil {
		return nil
	}
	return s.ticker.C()
}

// Interval is the interval of the most recent Start.
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// Status reports whether a timer is active.
func (s *Scheduler) Status() Status {
	if s.ticker == nil {
		return StatusStopped
	}
	return StatusRunning
}
