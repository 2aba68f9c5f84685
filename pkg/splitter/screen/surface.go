package screen

import (
	"github.com/BrandonKowalski/splitter/pkg/splitter"
	"github.com/veandco/go-sdl2/sdl"
)

// Surface draws its attached views in attach order, so later views cover
// earlier ones.
type Surface struct {
	views []splitter.View
}

func NewSurface() *Surface {
	return &Surface{}
}

// Attach adds v on top. Attaching a view twice keeps its first position.
func (s *Surface) Attach(v splitter.View) {
	if s.index(v) >= 0 {
		return
	}
	s.views = append(s.views, v)
}

func (s *Surface) Detach(v splitter.View) {
	if i := s.index(v); i >= 0 {
		s.views = append(s.views[:i], s.views[i+1:]...)
	}
}

// Views returns the attached views, bottom first.
func (s *Surface) Views() []splitter.View {
	out := make([]splitter.View, len(s.views))
	copy(out, s.views)
	return out
}

func (s *Surface) index(v splitter.View) int {
	for i, attached := range s.views {
		if attached == v {
			return i
		}
	}
	return -1
}

// Draw draws every attached view that implements Drawer.
func (s *Surface) Draw(renderer *sdl.Renderer) error {
	for _, v := range s.views {
		d, ok := v.(Drawer)
		if !ok || v.Hidden() {
			continue
		}
		if err := d.Draw(renderer); err != nil {
			return splitter.NewInfrastructureError("render", err)
		}
	}
	return nil
}
