package main

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BrandonKowalski/splitter/pkg/splitter/layout"
	tea "github.com/charmbracelet/bubbletea"
)

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func mustModel(t *testing.T, mode, direction string, columns, count int) model {
	t.Helper()
	m, err := newModel(mode, direction, columns, count, 40)
	if err != nil {
		t.Fatalf("newModel: %v", err)
	}
	return m
}

func TestNewModelRejectsBadInput(t *testing.T) {
	tests := []struct {
		name      string
		mode      string
		direction string
		size      float64
	}{
		{"unknown mode", "spiral", "up", 40},
		{"unknown direction", "list", "sideways", 40},
		{"zero size", "circle", "up", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := newModel(tt.mode, tt.direction, 3, 4, tt.size); err == nil {
				t.Error("newModel returned nil error")
			}
		})
	}
}

func TestUpdateKeys(t *testing.T) {
	tests := []struct {
		name  string
		keys  []string
		check func(model) bool
	}{
		{"mode cycles to direction", []string{"m"}, func(m model) bool { return m.mode == layout.ModeDirection }},
		{"mode wraps", []string{"m", "m", "m"}, func(m model) bool { return m.mode == layout.ModeCircle }},
		{"direction cycles", []string{"d"}, func(m model) bool { return m.direction == layout.Right }},
		{"count grows", []string{"+", "+"}, func(m model) bool { return m.count == 6 }},
		{"count floors at zero", []string{"-", "-", "-", "-", "-", "-"}, func(m model) bool { return m.count == 0 }},
		{"columns floor at one", []string{"[", "[", "[", "["}, func(m model) bool { return m.columns == 1 }},
		{"columns grow", []string{"]"}, func(m model) bool { return m.columns == 4 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m tea.Model = mustModel(t, "circle", "up", 3, 4)
			for _, k := range tt.keys {
				m, _ = m.Update(key(k))
			}
			if !tt.check(m.(model)) {
				t.Errorf("unexpected model after %v: %+v", tt.keys, m)
			}
		})
	}
}

func TestQuit(t *testing.T) {
	m := mustModel(t, "circle", "up", 3, 4)
	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
}

func TestDisplay(t *testing.T) {
	m := mustModel(t, "list", "left", 2, 4)
	if got, want := m.display(), (layout.Grid{Direction: layout.Left, Columns: 2}); got != want {
		t.Errorf("display() = %v, want %v", got, want)
	}
}

func TestPlotLine(t *testing.T) {
	m := mustModel(t, "direction", "up", 1, 3)
	anchor, targets, err := m.layout()
	if err != nil {
		t.Fatal(err)
	}

	lines := plot(anchor, targets, 21, 9)
	if len(lines) != 9 {
		t.Fatalf("plot returned %d lines, want 9", len(lines))
	}

	// Up grows towards row 0: the farthest element is on top and the
	// anchor on the bottom, all in one column.
	rowOf := func(r rune) (int, int) {
		for i, line := range lines {
			if c := strings.IndexRune(line, r); c >= 0 {
				return i, c
			}
		}
		t.Fatalf("%q not plotted:\n%s", r, strings.Join(lines, "\n"))
		return -1, -1
	}
	ar, ac := rowOf(anchorRune)
	r1, c1 := rowOf('1')
	r3, c3 := rowOf('3')
	if !(r3 < r1 && r1 < ar) {
		t.Errorf("rows: 3=%d 1=%d anchor=%d, want 3 above 1 above anchor", r3, r1, ar)
	}
	if c1 != ac || c3 != ac {
		t.Errorf("columns: anchor=%d 1=%d 3=%d, want equal", ac, c1, c3)
	}
}

func TestPlotEmpty(t *testing.T) {
	if got := plot(layout.Rect{W: 1, H: 1}, nil, 0, 5); got != nil {
		t.Errorf("plot with zero columns = %v, want nil", got)
	}
}

func TestDescribe(t *testing.T) {
	got := describe([]layout.Rect{{X: 1, Y: 2, W: 40, H: 40}, {X: -3.5, Y: 0, W: 10, H: 20}})
	want := "0: 1,2 40x40\n1: -3.5,0 10x20\n"
	if got != want {
		t.Errorf("describe = %q, want %q", got, want)
	}
}

func TestExportPNG(t *testing.T) {
	m := mustModel(t, "circle", "up", 3, 4)
	anchor, targets, err := m.layout()
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "layout.png")
	if err := exportPNG(path, anchor, targets); err != nil {
		t.Fatalf("exportPNG: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	// Four elements sit on the compass points at twice the anchor side, so
	// the drawing spans five anchor widths plus padding.
	want := 5*40 + 2*exportPadding
	if b := img.Bounds(); b.Dx() != want || b.Dy() != want {
		t.Errorf("image is %dx%d, want %dx%d", b.Dx(), b.Dy(), want, want)
	}
}
