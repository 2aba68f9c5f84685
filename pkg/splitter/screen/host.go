package screen

import (
	"github.com/BrandonKowalski/splitter/pkg/splitter"
	"github.com/BrandonKowalski/splitter/pkg/splitter/internal/raster"
	"github.com/BrandonKowalski/splitter/pkg/splitter/layout"
)

// Host gives a Controller the window's surface, a main button, a full-window
// overlay and a dismissal button.
type Host struct {
	surface *Surface
	main    *Button
	overlay *Overlay
	dismiss *Button
}

// HostOption customizes NewHost.
type HostOption func(*hostSettings)

type hostSettings struct {
	dismiss splitter.DismissConfig
}

// WithDismiss draws the dismissal control from an icon, an image or a title
// instead of the close glyph.
func WithDismiss(d splitter.DismissConfig) HostOption {
	return func(s *hostSettings) { s.dismiss = d }
}

// WithDismissIcon uses an embedded icon for the dismissal control.
func WithDismissIcon(name string) HostOption {
	return WithDismiss(splitter.DismissConfig{Icon: name})
}

// WithDismissImage uses an image file for the dismissal control.
func WithDismissImage(path string) HostOption {
	return WithDismiss(splitter.DismissConfig{Image: path})
}

// WithDismissTitle uses a round face labelled with title for the dismissal control.
func WithDismissTitle(title string) HostOption {
	return WithDismiss(splitter.DismissConfig{Title: title})
}

// NewHost builds the overlay and dismissal control around main. The
// dismissal control is sized like main.
func NewHost(main *Button, opts ...HostOption) (*Host, error) {
	if window == nil {
		return nil, splitter.NewInfrastructureError("new_host", errNotInitialized)
	}

	var settings hostSettings
	for _, opt := range opts {
		opt(&settings)
	}

	dismiss, err := dismissButton(settings.dismiss, main.Frame().Size())
	if err != nil {
		return nil, err
	}
	dismiss.SetHidden(true)
	dismiss.SetAlpha(0)

	return &Host{
		surface: NewSurface(),
		main:    main,
		overlay: NewOverlay(window.Bounds(), GetTheme().OverlayColor),
		dismiss: dismiss,
	}, nil
}

func dismissButton(d splitter.DismissConfig, size layout.Size) (*Button, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	switch d.Kind() {
	case splitter.DismissImage:
		return NewImageButton(d.Image, size)
	case splitter.DismissIcon:
		return NewIconButton(d.Icon, size)
	case splitter.DismissTitle:
		return NewFaceButton(GetTheme().FaceColor, d.Title, size)
	default:
		return NewIconButton(raster.CloseIcon, size)
	}
}

func (h *Host) Surface() splitter.Surface     { return h.surface }
func (h *Host) Main() splitter.View           { return h.main }
func (h *Host) Overlay() splitter.View        { return h.overlay }
func (h *Host) DismissControl() splitter.View { return h.dismiss }

// Views returns the concrete surface for drawing.
func (h *Host) Views() *Surface { return h.surface }

// MainButton returns the concrete main button.
func (h *Host) MainButton() *Button { return h.main }

// DismissButton returns the concrete dismissal button.
func (h *Host) DismissButton() *Button { return h.dismiss }
