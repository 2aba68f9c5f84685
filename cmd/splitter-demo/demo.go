package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/BrandonKowalski/splitter/pkg/splitter"
	"github.com/BrandonKowalski/splitter/pkg/splitter/layout"
	"github.com/BrandonKowalski/splitter/pkg/splitter/scene"
	"github.com/BrandonKowalski/splitter/pkg/splitter/screen"
)

var defaultIcons = []string{"camera", "music", "mail"}

// modeParams are the mode fields used when a scene is entered by paging
// rather than from the configuration.
type modeParams struct {
	mode      string
	direction string
	columns   int
}

func modeInput(id scene.ID) modeParams {
	switch id {
	case sceneDirection:
		return modeParams{mode: "direction", direction: "up"}
	case sceneList:
		return modeParams{mode: "list", direction: "down", columns: 2}
	default:
		return modeParams{mode: "circle"}
	}
}

type demo struct {
	base    splitter.FileConfig
	keys    *screen.KeySource
	entered bool
}

// scene shows the splitting button in one display mode.
func (d *demo) scene(ctx context.Context, input any) (any, error) {
	fc := d.base
	// the configured mode is used as-is the first time; paging uses defaults
	if d.entered {
		params := input.(modeParams)
		fc.Mode, fc.Direction, fc.Columns = params.mode, params.direction, params.columns
	}
	d.entered = true

	window := screen.GetWindow()
	cfg, err := fc.Config(window.Size())
	if err != nil {
		return nil, err
	}

	frameSize := cfg.Frame.Size()
	main, err := screen.NewFaceButton(screen.GetTheme().FaceColor, "+", frameSize)
	if err != nil {
		return nil, err
	}
	host, err := screen.NewHost(main, screen.WithDismiss(fc.Dismiss))
	if err != nil {
		return nil, err
	}

	elements, err := d.elements(fc.Icons, frameSize)
	if err != nil {
		return nil, err
	}

	bounds := window.Bounds()
	status := screen.NewLabel(splitter.Localize(splitter.MsgIdle, nil), 24,
		layout.Rect{X: 0, Y: bounds.H*0.85 - 20, W: bounds.W, H: 40})
	title := screen.NewLabel(splitter.ModeName(cfg.Display.Mode()), 28,
		layout.Rect{X: 0, Y: 20, W: bounds.W, H: 40})
	hint := screen.NewLabel("B: "+splitter.Localize(splitter.MsgDismiss, nil), 18,
		layout.Rect{X: 0, Y: bounds.H - 40, W: bounds.W, H: 30})
	defer status.Destroy()
	defer title.Destroy()
	defer hint.Destroy()

	logger := splitter.GetLogger()
	controller, err := splitter.New(cfg, host,
		splitter.WithProvider(elements),
		splitter.WithDelegate(splitter.DelegateFunc(func(view splitter.View, index int) {
			// buttons are numbered from one on screen
			status.SetText(splitter.Localize(splitter.MsgButtonActivated, map[string]any{"Index": index + 1}))
			logger.Info("Sub-button activated", "index", index, "name", view.(*screen.Button).Name)
		})),
	)
	if err != nil {
		return nil, err
	}
	logger.Info("Showing display mode", "display", fmt.Sprint(cfg.Display))

	return screen.Run(ctx, screen.RunSettings{
		Controller: controller,
		Host:       host,
		Background: []screen.Drawer{title, status, hint},
		Keys:       d.keys,
	})
}

// elements builds the icon sub-buttons followed by a plain red one. Icons
// ending in .png are loaded from disk, anything else is an embedded icon.
func (d *demo) elements(icons []string, size layout.Size) (splitter.Views, error) {
	if len(icons) == 0 {
		icons = defaultIcons
	}

	views := make(splitter.Views, 0, len(icons)+1)
	for _, icon := range icons {
		var b *screen.Button
		var err error
		if strings.HasSuffix(strings.ToLower(icon), ".png") {
			b, err = screen.NewImageButton(icon, size)
		} else {
			b, err = screen.NewIconButton(icon, size)
		}
		if err != nil {
			return nil, err
		}
		views = append(views, b)
	}

	red, err := screen.NewFaceButton(screen.HexToColor(0xE53935), "", size)
	if err != nil {
		return nil, err
	}
	return append(views, red), nil
}
