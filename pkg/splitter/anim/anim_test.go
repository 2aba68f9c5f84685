package anim

import (
	"math"
	"testing"
	"time"
)

func TestEasingEndpoints(t *testing.T) {
	tests := []struct {
		name string
		ease Ease
	}{
		{"linear", Linear},
		{"in", EaseIn},
		{"out", EaseOut},
		{"in-out", EaseInOut},
		{"out-cubic", EaseOutCubic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := At(tt.ease, 0); math.Abs(got) > 0.001 {
				t.Errorf("f(0) = %v, want 0", got)
			}
			if got := At(tt.ease, 1); math.Abs(got-1) > 0.001 {
				t.Errorf("f(1) = %v, want 1", got)
			}
		})
	}
}

func TestEaseOutLeadsLinear(t *testing.T) {
	for p := 0.1; p < 1.0; p += 0.1 {
		if At(EaseOut, p) <= At(Linear, p) {
			t.Errorf("EaseOut(%v) = %v should lead linear", p, At(EaseOut, p))
		}
		if At(EaseIn, p) >= At(Linear, p) {
			t.Errorf("EaseIn(%v) = %v should trail linear", p, At(EaseIn, p))
		}
	}
}

func TestEasingMidpoints(t *testing.T) {
	tests := []struct {
		name string
		ease Ease
		t    float64
		want float64
	}{
		{"linear", Linear, 0.5, 0.5},
		{"in", EaseIn, 0.5, 0.25},
		{"out", EaseOut, 0.5, 0.75},
		{"in-out low", EaseInOut, 0.25, 0.125},
		{"in-out high", EaseInOut, 0.75, 0.875},
		{"out-cubic", EaseOutCubic, 0.5, 0.875},
		{"nil is linear", nil, 0.3, 0.3},
		{"clamped", EaseOut, 2, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := At(tt.ease, tt.t); math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("At(%v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}

func TestSchedulerAppliesEase(t *testing.T) {
	s := NewScheduler()

	var got []float64
	s.Add(Tween{
		Delay:    20 * time.Millisecond,
		Duration: 100 * time.Millisecond,
		Ease:     EaseIn,
		Apply:    func(p float64) { got = append(got, p) },
	})
	s.Add(Tween{
		Apply: func(p float64) { got = append(got, p) },
	})

	s.Step(10 * time.Millisecond)
	// zero duration completes at once with progress 1; the delayed one waits
	if len(got) != 1 || got[0] != 1 {
		t.Fatalf("after first step got %v, want [1]", got)
	}

	s.Step(60 * time.Millisecond)
	if len(got) != 2 || math.Abs(got[1]-0.25) > 1e-6 {
		t.Fatalf("eased progress at half way = %v, want 0.25", got)
	}

	s.Step(100 * time.Millisecond)
	if got[len(got)-1] != 1 || !s.Idle() {
		t.Fatalf("final progress %v idle %v", got[len(got)-1], s.Idle())
	}
}

func TestLerp(t *testing.T) {
	tests := []struct {
		a, b, t, want float64
	}{
		{0, 10, 0, 0},
		{0, 10, 1, 10},
		{0, 10, 0.5, 5},
		{1, 0, 0.25, 0.75},
	}
	for _, tt := range tests {
		if got := Lerp(tt.a, tt.b, tt.t); math.Abs(got-tt.want) > 0.001 {
			t.Errorf("Lerp(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.t, got, tt.want)
		}
	}
}

func TestSchedulerRunsToCompletion(t *testing.T) {
	s := NewScheduler()

	var last float64
	done := 0
	s.Add(Tween{
		Duration: 100 * time.Millisecond,
		Apply:    func(p float64) { last = p },
		Done:     func() { done++ },
	})

	s.Step(50 * time.Millisecond)
	if math.Abs(last-0.5) > 0.001 {
		t.Fatalf("progress after half the duration = %v, want 0.5", last)
	}
	if done != 0 {
		t.Fatal("Done ran early")
	}

	s.Step(80 * time.Millisecond)
	if last != 1 {
		t.Fatalf("final progress = %v, want exactly 1", last)
	}
	if done != 1 {
		t.Fatalf("Done ran %d times, want 1", done)
	}
	if !s.Idle() {
		t.Fatal("scheduler should be idle")
	}

	s.Step(time.Second)
	if done != 1 {
		t.Fatal("Done ran again after completion")
	}
}

func TestSchedulerDelay(t *testing.T) {
	s := NewScheduler()
	applied := false
	s.Add(Tween{
		Delay:    150 * time.Millisecond,
		Duration: 250 * time.Millisecond,
		Apply:    func(float64) { applied = true },
	})

	s.Step(100 * time.Millisecond)
	if applied {
		t.Fatal("Apply ran before the delay elapsed")
	}
	s.Step(100 * time.Millisecond)
	if !applied {
		t.Fatal("Apply did not run after the delay")
	}
}

func TestSchedulerZeroDuration(t *testing.T) {
	s := NewScheduler()
	var got float64 = -1
	s.Add(Tween{Apply: func(p float64) { got = p }})
	s.Step(0)
	if got != 1 {
		t.Fatalf("zero-length tween applied %v, want 1", got)
	}
	if !s.Idle() {
		t.Fatal("zero-length tween should finish on the first step")
	}
}

func TestSchedulerAddFromCallback(t *testing.T) {
	s := NewScheduler()
	second := false
	s.Add(Tween{
		Duration: 10 * time.Millisecond,
		Done: func() {
			s.Add(Tween{Duration: 10 * time.Millisecond, Done: func() { second = true }})
		},
	})

	s.Step(10 * time.Millisecond)
	if s.Len() != 1 {
		t.Fatalf("Len() = %d after chaining, want 1", s.Len())
	}
	if second {
		t.Fatal("chained tween must not complete within the step that scheduled it")
	}
	if !s.Flush(10*time.Millisecond, 10) {
		t.Fatal("Flush did not drain the scheduler")
	}
	if !second {
		t.Fatal("chained tween never completed")
	}
}

func TestSchedulerCompletionOrder(t *testing.T) {
	s := NewScheduler()
	var order []int
	for i := 0; i < 4; i++ {
		i := i
		s.Add(Tween{Duration: 20 * time.Millisecond, Done: func() { order = append(order, i) }})
	}
	s.Step(20 * time.Millisecond)
	for i, v := range order {
		if v != i {
			t.Fatalf("completion order %v, want ascending", order)
		}
	}
}

func TestBarrier(t *testing.T) {
	fired := 0
	b := NewBarrier(3, func() { fired++ })
	b.Done()
	b.Done()
	if fired != 0 || b.Remaining() != 1 {
		t.Fatalf("fired=%d remaining=%d after two completions", fired, b.Remaining())
	}
	b.Done()
	b.Done()
	if fired != 1 {
		t.Fatalf("fired %d times, want once", fired)
	}
	if !b.Fired() {
		t.Fatal("Fired() should report true")
	}
}

func TestEmptyBarrierFiresOnArm(t *testing.T) {
	fired := false
	b := NewBarrier(0, func() { fired = true })
	if fired {
		t.Fatal("barrier fired before Arm")
	}
	b.Arm()
	if !fired {
		t.Fatal("empty barrier did not fire on Arm")
	}
}

func TestBarrierWithScheduler(t *testing.T) {
	s := NewScheduler()
	open := false
	b := NewBarrier(3, func() { open = true })
	for _, d := range []time.Duration{100, 300, 200} {
		s.Add(Tween{Duration: d * time.Millisecond, Done: b.Done})
	}
	b.Arm()

	s.Step(250 * time.Millisecond)
	if open {
		t.Fatal("barrier fired before the slowest tween finished")
	}
	s.Step(100 * time.Millisecond)
	if !open {
		t.Fatal("barrier did not fire after all tweens finished")
	}
}
