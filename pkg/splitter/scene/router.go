package scene

import (
	"context"
	"fmt"
)

// ID identifies a scene. Applications define their own IDs with iota.
type ID int

// Exit is returned by a transition function to stop the router.
const Exit ID = -1

// Func runs a scene until it has a result.
type Func func(ctx context.Context, input any) (result any, err error)

// TransitionFunc picks the scene after from. Returning Exit stops the router.
type TransitionFunc func(from ID, result any, history *History) (next ID, input any)

// Router runs registered scenes, consulting the transition function between them.
type Router struct {
	scenes     map[ID]Func
	transition TransitionFunc
	history    *History
}

func New() *Router {
	return &Router{
		scenes:  make(map[ID]Func),
		history: NewHistory(),
	}
}

// Register adds a scene. Registering an ID twice replaces the earlier scene.
func (r *Router) Register(id ID, fn Func) *Router {
	r.scenes[id] = fn
	return r
}

func (r *Router) OnTransition(fn TransitionFunc) *Router {
	r.transition = fn
	return r
}

// Run starts at the given scene and returns when the transition function
// returns Exit, a scene fails, or ctx is done.
func (r *Router) Run(ctx context.Context, start ID, input any) error {
	if r.transition == nil {
		return fmt.Errorf("scene: no transition function set")
	}

	current, currentInput := start, input
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fn, ok := r.scenes[current]
		if !ok {
			return fmt.Errorf("scene: %d not registered", current)
		}

		result, err := fn(ctx, currentInput)
		if err != nil {
			return fmt.Errorf("scene: %d: %w", current, err)
		}

		next, nextInput := r.transition(current, result, r.history)
		if next == Exit {
			return nil
		}
		current, currentInput = next, nextInput
	}
}

// History returns the back stack the transition function receives.
func (r *Router) History() *History {
	return r.history
}
