package screen

import (
	"fmt"
	"image"

	"github.com/BrandonKowalski/splitter/pkg/splitter"
	"github.com/BrandonKowalski/splitter/pkg/splitter/internal/raster"
	"github.com/BrandonKowalski/splitter/pkg/splitter/internal/render"
	"github.com/BrandonKowalski/splitter/pkg/splitter/layout"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

// Drawer is a view the surface knows how to draw.
type Drawer interface {
	splitter.View
	Draw(renderer *sdl.Renderer) error
}

// viewState is the frame, alpha and visibility every view carries.
type viewState struct {
	frame  layout.Rect
	alpha  float64
	hidden bool
}

func (v *viewState) Frame() layout.Rect     { return v.frame }
func (v *viewState) SetFrame(r layout.Rect) { v.frame = r }
func (v *viewState) Alpha() float64         { return v.alpha }
func (v *viewState) SetAlpha(a float64)     { v.alpha = a }
func (v *viewState) Hidden() bool           { return v.hidden }
func (v *viewState) SetHidden(h bool)       { v.hidden = h }

func (v *viewState) invisible() bool {
	return v.hidden || v.alpha <= 0 || v.frame.Empty()
}

func (v *viewState) alphaMod(base uint8) uint8 {
	a := v.alpha
	if a > 1 {
		a = 1
	}
	return uint8(a * float64(base))
}

func (v *viewState) rectF() *sdl.FRect {
	return &sdl.FRect{X: float32(v.frame.X), Y: float32(v.frame.Y), W: float32(v.frame.W), H: float32(v.frame.H)}
}

// Button is a textured, optionally focused control.
type Button struct {
	viewState
	Name    string
	texture *sdl.Texture
	focused bool
}

// iconScale rasterizes above the frame size so scaled frames stay sharp.
const iconScale = 2

// NewIconButton creates a button showing an embedded SVG icon.
func NewIconButton(icon string, size layout.Size) (*Button, error) {
	w, h := int(size.W)*iconScale, int(size.H)*iconScale
	texture, err := cachedTexture(fmt.Sprintf("icon:%s:%dx%d", icon, w, h), func() (image.Image, error) {
		return raster.Icon(icon, w, h)
	})
	if err != nil {
		return nil, splitter.NewInfrastructureError("load_icon", err)
	}
	return newButton(icon, texture, size), nil
}

// NewFaceButton creates a round button filled with fill and an optional label.
func NewFaceButton(fill sdl.Color, label string, size layout.Size) (*Button, error) {
	d := int(min(size.W, size.H)) * iconScale
	ring := GetTheme().RingColor
	key := fmt.Sprintf("face:%02x%02x%02x%02x:%s:%d", fill.R, fill.G, fill.B, fill.A, label, d)
	texture, err := cachedTexture(key, func() (image.Image, error) {
		return raster.Face(d, raster.FaceStyle{
			Fill:       fill,
			Ring:       ring,
			RingWidth:  float64(d) / 20,
			Label:      label,
			LabelColor: ring,
		})
	})
	if err != nil {
		return nil, splitter.NewInfrastructureError("draw_face", err)
	}
	name := label
	if name == "" {
		name = "face"
	}
	return newButton(name, texture, size), nil
}

// NewImageButton creates a button from an image file (PNG or anything
// SDL_image loads).
func NewImageButton(path string, size layout.Size) (*Button, error) {
	if window == nil {
		return nil, splitter.NewInfrastructureError("load_image", errNotInitialized)
	}
	texture, err := textures.GetOrLoad("file:"+path, func() (*sdl.Texture, error) {
		t, err := img.LoadTexture(window.Renderer, path)
		if err != nil {
			return nil, err
		}
		t.SetBlendMode(sdl.BLENDMODE_BLEND)
		return t, nil
	})
	if err != nil {
		return nil, splitter.NewInfrastructureError("load_image", err)
	}
	return newButton(path, texture, size), nil
}

func newButton(name string, texture *sdl.Texture, size layout.Size) *Button {
	return &Button{
		viewState: viewState{frame: layout.Rect{W: size.W, H: size.H}, alpha: 1},
		Name:      name,
		texture:   texture,
	}
}

func cachedTexture(key string, draw func() (image.Image, error)) (*sdl.Texture, error) {
	if window == nil {
		return nil, errNotInitialized
	}
	return textures.GetOrLoad(key, func() (*sdl.Texture, error) {
		pixels, err := draw()
		if err != nil {
			return nil, err
		}
		return render.TextureFromImage(window.Renderer, pixels)
	})
}

// SetFocused shows or hides the focus ring.
func (b *Button) SetFocused(focused bool) {
	b.focused = focused
}

func (b *Button) Draw(renderer *sdl.Renderer) error {
	if b.invisible() {
		return nil
	}
	if err := b.texture.SetAlphaMod(b.alphaMod(255)); err != nil {
		return err
	}
	if err := renderer.CopyF(b.texture, nil, b.rectF()); err != nil {
		return err
	}

	if b.focused {
		accent := GetTheme().AccentColor
		renderer.SetDrawColor(accent.R, accent.G, accent.B, b.alphaMod(accent.A))
		ring := b.frame
		for i := 0; i < 3; i++ {
			ring = layout.Rect{X: ring.X - 1, Y: ring.Y - 1, W: ring.W + 2, H: ring.H + 2}
			renderer.DrawRectF(&sdl.FRect{X: float32(ring.X), Y: float32(ring.Y), W: float32(ring.W), H: float32(ring.H)})
		}
	}
	return nil
}

// Overlay dims everything drawn before it.
type Overlay struct {
	viewState
	Color sdl.Color
}

func NewOverlay(bounds layout.Rect, color sdl.Color) *Overlay {
	return &Overlay{viewState: viewState{frame: bounds, hidden: true}, Color: color}
}

func (o *Overlay) Draw(renderer *sdl.Renderer) error {
	if o.invisible() {
		return nil
	}
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)
	renderer.SetDrawColor(o.Color.R, o.Color.G, o.Color.B, o.alphaMod(o.Color.A))
	return renderer.FillRectF(o.rectF())
}

// Label is a line of text centred in its frame.
type Label struct {
	viewState
	text    string
	size    int
	color   sdl.Color
	texture *sdl.Texture
	w, h    int32
	dirty   bool
}

func NewLabel(text string, size int, frame layout.Rect) *Label {
	return &Label{
		viewState: viewState{frame: frame, alpha: 1},
		text:      text,
		size:      size,
		color:     GetTheme().TextColor,
		dirty:     true,
	}
}

func (l *Label) Text() string { return l.text }

// SetText changes the text; the texture is rebuilt on the next draw.
func (l *Label) SetText(text string) {
	if text != l.text {
		l.text = text
		l.dirty = true
	}
}

func (l *Label) Draw(renderer *sdl.Renderer) error {
	if l.hidden || l.alpha <= 0 {
		return nil
	}
	if l.dirty {
		if err := l.rebuild(renderer); err != nil {
			return err
		}
	}
	if l.texture == nil {
		return nil
	}
	l.texture.SetAlphaMod(l.alphaMod(255))
	dst := layout.Centered(l.frame.MidX(), l.frame.MidY(), layout.Size{W: float64(l.w), H: float64(l.h)})
	return renderer.CopyF(l.texture, nil, &sdl.FRect{X: float32(dst.X), Y: float32(dst.Y), W: float32(dst.W), H: float32(dst.H)})
}

func (l *Label) rebuild(renderer *sdl.Renderer) error {
	l.dirty = false
	if l.texture != nil {
		l.texture.Destroy()
		l.texture = nil
	}
	if l.text == "" {
		return nil
	}
	f, err := font(l.size)
	if err != nil {
		return err
	}
	texture, w, h, err := render.TextTexture(renderer, f, l.text, l.color)
	if err != nil {
		return splitter.NewInfrastructureError("render_text", err)
	}
	l.texture, l.w, l.h = texture, w, h
	return nil
}

// Destroy frees the label's texture.
func (l *Label) Destroy() {
	if l.texture != nil {
		l.texture.Destroy()
		l.texture = nil
	}
}
