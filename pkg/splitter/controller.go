package splitter

import (
	"log/slog"
	"time"

	"github.com/BrandonKowalski/splitter/pkg/splitter/anim"
	"github.com/BrandonKowalski/splitter/pkg/splitter/internal"
	"github.com/BrandonKowalski/splitter/pkg/splitter/layout"
)

// Controller is the open/close state machine of a splitting button.
//
// All methods must be called from the UI goroutine. Animation callbacks run
// inside Update (or inside the host's Scheduler.Step when the scheduler is
// shared), so no locking is needed.
type Controller struct {
	cfg       Config
	host      Host
	registry  *Registry
	provider  ElementProvider
	delegate  ActivationDelegate
	scheduler *anim.Scheduler
	logger    *slog.Logger
	listener  func(from, to State)

	state          State
	anchor         layout.Rect
	targets        []layout.Rect
	sizes          []layout.Size
	baseline       []baseline
	pendingSelect  int
	pendingRebuild bool
	activations    int
}

type baseline struct {
	alpha  float64
	hidden bool
}

// Option customizes a Controller at construction.
type Option func(*Controller)

// WithProvider sets the element provider and builds the registry from it.
func WithProvider(p ElementProvider) Option {
	return func(c *Controller) { c.provider = p }
}

// WithDelegate sets the receiver of sub-element activations.
func WithDelegate(d ActivationDelegate) Option {
	return func(c *Controller) { c.delegate = d }
}

// WithScheduler shares an animation scheduler with the host. The host is then
// responsible for stepping it; Update steps it too.
func WithScheduler(s *anim.Scheduler) Option {
	return func(c *Controller) { c.scheduler = s }
}

// WithLogger replaces the internal logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// WithStateListener registers a callback run after every state change.
func WithStateListener(fn func(from, to State)) Option {
	return func(c *Controller) { c.listener = fn }
}

// New creates a closed controller. The display configuration and frame are
// validated here; a missing element provider is only reported by Activate.
func New(cfg Config, host Host, opts ...Option) (*Controller, error) {
	if host == nil {
		return nil, configError("host", "no host", nil)
	}
	cfg.Timing = cfg.Timing.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Controller{
		cfg:           cfg,
		host:          host,
		registry:      NewRegistry(),
		pendingSelect: -1,
		state:         StateClosed,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.scheduler == nil {
		c.scheduler = anim.NewScheduler()
	}
	if c.logger == nil {
		c.logger = internal.GetInternalLogger()
	}

	main := host.Main()
	main.SetFrame(cfg.Frame)
	main.SetAlpha(1)
	main.SetHidden(false)

	if c.provider != nil {
		if err := c.registry.Rebuild(c.provider); err != nil {
			return nil, err
		}
	}

	return c, nil
}

func (c *Controller) State() State { return c.state }

func (c *Controller) Display() layout.Display { return c.cfg.Display }

func (c *Controller) Config() Config { return c.cfg }

func (c *Controller) Registry() *Registry { return c.registry }

func (c *Controller) Scheduler() *anim.Scheduler { return c.scheduler }

// Activations returns how many times the control has started opening.
func (c *Controller) Activations() int { return c.activations }

// Anchor returns the main control's frame captured by the last activation.
func (c *Controller) Anchor() layout.Rect { return c.anchor }

// Targets returns a copy of the target rectangles computed by the last activation.
func (c *Controller) Targets() []layout.Rect {
	out := make([]layout.Rect, len(c.targets))
	copy(out, c.targets)
	return out
}

// SetDelegate replaces the activation delegate.
func (c *Controller) SetDelegate(d ActivationDelegate) {
	c.delegate = d
}

// SetProvider replaces the element provider and rebuilds the registry. While a
// transition is in flight the rebuild waits until the control is closed again.
func (c *Controller) SetProvider(p ElementProvider) error {
	if p == nil {
		return configError("provider", "no element provider", nil)
	}
	c.provider = p
	return c.ReloadElements()
}

// ReloadElements queries the current provider again, like a "data changed"
// notification.
func (c *Controller) ReloadElements() error {
	if c.provider == nil {
		return configError("provider", "no element provider", nil)
	}
	if c.state != StateClosed {
		c.pendingRebuild = true
		c.logger.Debug("Deferring element rebuild", "state", c.state.String())
		return nil
	}
	return c.registry.Rebuild(c.provider)
}

// Update advances the animations by dt.
func (c *Controller) Update(dt time.Duration) {
	c.scheduler.Step(dt)
}

// Activate opens the control. It is a no-op returning false unless the
// control is closed.
func (c *Controller) Activate() (bool, error) {
	if c.state != StateClosed {
		c.reject("activate")
		return false, nil
	}
	if c.provider == nil || !c.registry.Built() {
		return false, configError("provider", "no element provider set before activation", nil)
	}

	main := c.host.Main()
	anchor := main.Frame()
	elements := c.registry.Elements()

	sizes := make([]layout.Size, len(elements))
	for i, e := range elements {
		sizes[i] = e.View.Frame().Size()
		if sizes[i].W <= 0 || sizes[i].H <= 0 {
			sizes[i] = anchor.Size()
		}
	}

	targets, err := layout.ComputeTargets(anchor, c.cfg.Display, len(elements), sizes)
	if err != nil {
		return false, configError("display", "", err)
	}

	c.anchor = anchor
	c.sizes = sizes
	c.targets = targets
	c.baseline = make([]baseline, len(elements))
	c.activations++
	c.setState(StateOpening)

	surface := c.host.Surface()
	timing := c.cfg.Timing

	main.SetAlpha(0)
	main.SetHidden(true)

	overlay := c.host.Overlay()
	overlay.SetAlpha(0)
	overlay.SetHidden(false)
	surface.Attach(overlay)
	c.revealFade(overlay, timing.OverlayAlpha, timing.OverlayIn)

	revealed := anim.NewBarrier(len(elements), c.opened)
	for i, e := range elements {
		view := e.View
		c.baseline[i] = baseline{alpha: view.Alpha(), hidden: view.Hidden()}

		start := c.restFrame(i)
		target := targets[i]
		view.SetFrame(start)
		view.SetAlpha(0)
		view.SetHidden(false)
		surface.Attach(view)

		c.scheduler.Add(anim.Tween{
			Duration: timing.Reveal,
			Ease:     anim.EaseOut,
			Apply: func(p float64) {
				view.SetFrame(layout.Lerp(start, target, p))
				view.SetAlpha(p)
			},
			Done: revealed.Done,
		})
	}

	dismiss := c.host.DismissControl()
	dismiss.SetFrame(anchor)
	dismiss.SetAlpha(0)
	dismiss.SetHidden(false)
	surface.Attach(dismiss)
	c.revealFade(dismiss, 1, timing.DismissIn)

	revealed.Arm()
	return true, nil
}

// Dismiss closes the control without a selection. It is a no-op returning
// false unless the control is open.
func (c *Controller) Dismiss() bool {
	if c.state != StateOpen {
		c.reject("dismiss")
		return false
	}
	c.close()
	return true
}

// Select activates the sub-element registered under index. While open the
// delegate is told first and the control then closes. While opening the
// selection is held and delivered as soon as the reveal completes. In any
// other state it is a no-op returning false.
func (c *Controller) Select(index int) (bool, error) {
	element, err := c.registry.Get(index)
	if err != nil {
		return false, err
	}

	switch c.state {
	case StateOpen:
		c.notify(element)
		c.close()
		return true, nil
	case StateOpening:
		if c.pendingSelect < 0 {
			c.pendingSelect = index
		}
		return true, nil
	default:
		c.reject("select")
		return false, nil
	}
}

// Toggle activates a closed control and dismisses an open one.
func (c *Controller) Toggle() (bool, error) {
	switch c.state {
	case StateClosed:
		return c.Activate()
	case StateOpen:
		return c.Dismiss(), nil
	default:
		c.reject("toggle")
		return false, nil
	}
}

// HitTest resolves a point in surface coordinates to what it would activate
// in the current state. For HitElement the index is returned as well.
func (c *Controller) HitTest(x, y float64) (Hit, int) {
	switch c.state {
	case StateClosed:
		main := c.host.Main()
		if !main.Hidden() && main.Frame().Contains(x, y) {
			return HitMain, -1
		}

	case StateOpening, StateOpen:
		if c.host.DismissControl().Frame().Contains(x, y) {
			return HitDismiss, -1
		}
		elements := c.registry.Elements()
		// later elements are drawn on top
		for i := len(elements) - 1; i >= 0; i-- {
			if elements[i].View.Frame().Contains(x, y) {
				return HitElement, elements[i].Index
			}
		}
	}
	return HitNone, -1
}

// Press performs whatever a press at (x, y) means in the current state.
func (c *Controller) Press(x, y float64) (Hit, error) {
	hit, index := c.HitTest(x, y)
	var err error
	switch hit {
	case HitMain:
		_, err = c.Activate()
	case HitDismiss:
		c.Dismiss()
	case HitElement:
		_, err = c.Select(index)
	}
	return hit, err
}

func (c *Controller) opened() {
	c.setState(StateOpen)

	if c.pendingSelect >= 0 {
		index := c.pendingSelect
		c.pendingSelect = -1
		if element, err := c.registry.Get(index); err == nil {
			c.notify(element)
			c.close()
		}
	}
}

func (c *Controller) close() {
	c.setState(StateClosing)

	surface := c.host.Surface()
	timing := c.cfg.Timing
	elements := c.registry.Elements()

	// overlay, main control, then one completion per element
	closed := anim.NewBarrier(len(elements)+2, c.closed)

	overlay := c.host.Overlay()
	c.fade(overlay, overlay.Alpha(), 0, timing.OverlayOut, 0, anim.EaseIn, func() {
		surface.Detach(overlay)
		overlay.SetHidden(true)
		closed.Done()
	})

	main := c.host.Main()
	main.SetHidden(false)
	c.fade(main, main.Alpha(), 1, timing.MainFadeIn, timing.MainFadeDelay, anim.EaseIn, closed.Done)

	for i, e := range elements {
		view := e.View
		from := view.Frame()
		to := c.restFrame(i)
		startAlpha := view.Alpha()

		collapsed := anim.NewBarrier(2, func() {
			surface.Detach(view)
			closed.Done()
		})
		c.scheduler.Add(anim.Tween{
			Duration: timing.Collapse,
			Ease:     anim.EaseOut,
			Apply:    func(p float64) { view.SetFrame(layout.Lerp(from, to, p)) },
			Done:     collapsed.Done,
		})
		c.scheduler.Add(anim.Tween{
			Duration: timing.Collapse,
			Ease:     anim.EaseIn,
			Apply:    func(p float64) { view.SetAlpha(anim.Lerp(startAlpha, 0, p)) },
			Done:     collapsed.Done,
		})
	}

	dismiss := c.host.DismissControl()
	surface.Detach(dismiss)
	dismiss.SetAlpha(0)
	dismiss.SetHidden(true)

	closed.Arm()
}

func (c *Controller) closed() {
	for i, e := range c.registry.Elements() {
		if i >= len(c.baseline) {
			break
		}
		e.View.SetFrame(c.restFrame(i))
		e.View.SetAlpha(c.baseline[i].alpha)
		e.View.SetHidden(c.baseline[i].hidden)
	}

	c.setState(StateClosed)

	if c.pendingRebuild {
		c.pendingRebuild = false
		if err := c.registry.Rebuild(c.provider); err != nil {
			c.logger.Error("Deferred element rebuild failed", "error", err)
		}
	}
}

// restFrame is element i collapsed onto the anchor at its own size.
func (c *Controller) restFrame(i int) layout.Rect {
	size := c.anchor.Size()
	if i < len(c.sizes) {
		size = c.sizes[i]
	}
	return layout.Centered(c.anchor.MidX(), c.anchor.MidY(), size)
}

func (c *Controller) fade(view View, from, to float64, d, delay time.Duration, ease anim.Ease, done func()) {
	c.scheduler.Add(anim.Tween{
		Delay:    delay,
		Duration: d,
		Ease:     ease,
		Apply:    func(p float64) { view.SetAlpha(anim.Lerp(from, to, p)) },
		Done:     done,
	})
}

// revealFade fades view in from 0. A fade that outlasts the open state runs to
// completion without touching the view, which the close sequence now owns.
func (c *Controller) revealFade(view View, to float64, d time.Duration) {
	c.scheduler.Add(anim.Tween{
		Duration: d,
		Apply: func(p float64) {
			if c.state == StateOpening || c.state == StateOpen {
				view.SetAlpha(anim.Lerp(0, to, p))
			}
		},
	})
}

func (c *Controller) notify(element SubElement) {
	if c.delegate == nil {
		c.logger.Debug("Sub-element activated without a delegate", "index", element.Index)
		return
	}
	c.delegate.OnActivated(element.View, element.Index)
}

func (c *Controller) setState(to State) {
	from := c.state
	c.state = to
	c.logger.Debug("Splitter state change",
		"from", from.String(),
		"to", to.String(),
		"count", c.registry.Len(),
		"mode", c.cfg.Display.Mode().String())
	if c.listener != nil {
		c.listener(from, to)
	}
}

func (c *Controller) reject(op string) {
	c.logger.Debug("Ignoring request", "op", op, "state", c.state.String(), "error", ErrInvalidTransition)
}
