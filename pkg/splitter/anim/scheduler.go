// Package anim drives timed interpolations from a render loop.
//
// Nothing in here starts a goroutine or reads a clock. The owner calls
// Scheduler.Step once per frame with the elapsed time; every Apply and Done
// callback runs inside Step, on the caller's goroutine. This keeps the
// animation model identical to a UI toolkit's "animate, then call me back"
// without any locking.
package anim

import (
	"time"

	"github.com/tanema/gween"
)

// Tween is one timed interpolation.
type Tween struct {
	// Delay postpones the start of the tween. Apply is not called before it elapses.
	Delay time.Duration
	// Duration is the length of the interpolation. Zero completes on the first step.
	Duration time.Duration
	// Ease shapes the progress. Nil means Linear.
	Ease Ease
	// Apply receives the eased progress in [0, 1]. The final call always receives 1.
	Apply func(progress float64)
	// Done runs once, after the final Apply.
	Done func()
}

type running struct {
	tween   Tween
	curve   *gween.Tween
	elapsed time.Duration
}

// Scheduler holds the tweens in flight.
type Scheduler struct {
	active   []*running
	pending  []*running
	stepping bool
}

// NewScheduler creates an idle scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Add schedules a tween. Tweens added from inside a callback start on the next Step.
func (s *Scheduler) Add(t Tween) {
	if t.Ease == nil {
		t.Ease = Linear
	}
	r := &running{
		tween: t,
		curve: gween.New(0, 1, float32(t.Duration.Seconds()), t.Ease),
	}
	if s.stepping {
		s.pending = append(s.pending, r)
		return
	}
	s.active = append(s.active, r)
}

// Len returns the number of tweens that have not completed.
func (s *Scheduler) Len() int {
	return len(s.active) + len(s.pending)
}

// Idle reports whether no tween is in flight.
func (s *Scheduler) Idle() bool {
	return s.Len() == 0
}

// Step advances every tween by dt, applying progress and running completion
// callbacks in the order the tweens were added.
func (s *Scheduler) Step(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}

	s.stepping = true
	remaining := s.active[:0]
	var finished []*running

	for _, r := range s.active {
		r.elapsed += dt
		if r.elapsed < r.tween.Delay {
			remaining = append(remaining, r)
			continue
		}

		current, done := r.curve.Set(float32((r.elapsed - r.tween.Delay).Seconds()))
		progress := float64(current)
		if done {
			progress = 1
		}
		if r.tween.Apply != nil {
			r.tween.Apply(progress)
		}

		if done {
			finished = append(finished, r)
			continue
		}
		remaining = append(remaining, r)
	}

	// clear the tail so finished tweens can be collected
	for i := len(remaining); i < len(s.active); i++ {
		s.active[i] = nil
	}
	s.active = remaining

	for _, r := range finished {
		if r.tween.Done != nil {
			r.tween.Done()
		}
	}

	s.stepping = false
	if len(s.pending) > 0 {
		s.active = append(s.active, s.pending...)
		s.pending = nil
	}
}

// Flush steps until every tween, including ones scheduled by completion
// callbacks, has finished. It gives up after maxSteps steps of dt and reports
// whether the scheduler went idle.
func (s *Scheduler) Flush(dt time.Duration, maxSteps int) bool {
	for i := 0; i < maxSteps && !s.Idle(); i++ {
		s.Step(dt)
	}
	return s.Idle()
}
