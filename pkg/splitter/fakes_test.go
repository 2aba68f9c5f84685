package splitter

import (
	"time"

	"github.com/BrandonKowalski/splitter/pkg/splitter/layout"
)

type fakeView struct {
	name   string
	frame  layout.Rect
	alpha  float64
	hidden bool
}

func (v *fakeView) Frame() layout.Rect     { return v.frame }
func (v *fakeView) SetFrame(r layout.Rect) { v.frame = r }
func (v *fakeView) Alpha() float64         { return v.alpha }
func (v *fakeView) SetAlpha(a float64)     { v.alpha = a }
func (v *fakeView) Hidden() bool           { return v.hidden }
func (v *fakeView) SetHidden(h bool)       { v.hidden = h }

type fakeSurface struct {
	attached map[View]bool
	attaches int
	detaches int
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{attached: make(map[View]bool)}
}

func (s *fakeSurface) Attach(v View) {
	s.attached[v] = true
	s.attaches++
}

func (s *fakeSurface) Detach(v View) {
	delete(s.attached, v)
	s.detaches++
}

func (s *fakeSurface) isAttached(v View) bool { return s.attached[v] }

type fakeHost struct {
	surface *fakeSurface
	main    *fakeView
	overlay *fakeView
	dismiss *fakeView
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		surface: newFakeSurface(),
		main:    &fakeView{name: "main"},
		overlay: &fakeView{name: "overlay", hidden: true},
		dismiss: &fakeView{name: "dismiss", hidden: true},
	}
}

func (h *fakeHost) Surface() Surface     { return h.surface }
func (h *fakeHost) Main() View           { return h.main }
func (h *fakeHost) Overlay() View        { return h.overlay }
func (h *fakeHost) DismissControl() View { return h.dismiss }

func fakeViews(n int) Views {
	views := make(Views, n)
	for i := range views {
		views[i] = &fakeView{name: "element"}
	}
	return views
}

type negativeProvider struct{}

func (negativeProvider) Count() int         { return -1 }
func (negativeProvider) ElementAt(int) View { return nil }

type recordingDelegate struct {
	calls []int
	views []View
}

func (d *recordingDelegate) OnActivated(view View, index int) {
	d.calls = append(d.calls, index)
	d.views = append(d.views, view)
}

var testFrame = layout.Rect{X: 300, Y: 220, W: 40, H: 40}

// settle steps the controller until its animations are done.
func settle(c *Controller) {
	c.Scheduler().Flush(16*time.Millisecond, 1000)
}
