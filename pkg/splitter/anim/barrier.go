package anim

// Barrier runs a callback once a fixed number of completions have been signalled.
type Barrier struct {
	remaining int
	fired     bool
	fn        func()
}

// NewBarrier returns a barrier waiting for n completions. With n <= 0 the
// callback runs on the first call to Arm.
func NewBarrier(n int, fn func()) *Barrier {
	if n < 0 {
		n = 0
	}
	return &Barrier{remaining: n, fn: fn}
}

// Done records one completion. It is safe to use directly as a Tween.Done.
func (b *Barrier) Done() {
	if b.fired {
		return
	}
	if b.remaining > 0 {
		b.remaining--
	}
	if b.remaining == 0 {
		b.fire()
	}
}

// Arm fires the callback if nothing is left to wait for. Call it after all
// tweens have been scheduled so an empty barrier still completes.
func (b *Barrier) Arm() {
	if b.remaining == 0 {
		b.fire()
	}
}

// Remaining returns the number of completions still outstanding.
func (b *Barrier) Remaining() int {
	return b.remaining
}

// Fired reports whether the callback has run.
func (b *Barrier) Fired() bool {
	return b.fired
}

func (b *Barrier) fire() {
	if b.fired {
		return
	}
	b.fired = true
	if b.fn != nil {
		b.fn()
	}
}
