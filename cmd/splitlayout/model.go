package main

import (
	"fmt"
	"strings"

	"github.com/BrandonKowalski/splitter/pkg/splitter"
	"github.com/BrandonKowalski/splitter/pkg/splitter/layout"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	maxCount   = 16
	maxColumns = 8
	exportPath = "splitlayout.png"
)

var (
	modeOrder      = []layout.Mode{layout.ModeCircle, layout.ModeDirection, layout.ModeList}
	directionOrder = []layout.Direction{layout.Up, layout.Right, layout.Down, layout.Left}

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFC107"))
	anchorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#1E88E5"))
	targetStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#E53935"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#9E9E9E"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5252"))
)

type model struct {
	mode      layout.Mode
	direction layout.Direction
	columns   int
	count     int
	size      float64
	width     int
	height    int
	status    string
	err       error
}

func newModel(mode, direction string, columns, count int, size float64) (model, error) {
	m, err := layout.ParseMode(mode)
	if err != nil {
		return model{}, err
	}
	d, err := layout.ParseDirection(direction)
	if err != nil {
		return model{}, err
	}
	if size <= 0 {
		return model{}, fmt.Errorf("size must be positive, got %v", size)
	}
	return model{
		mode:      m,
		direction: d,
		columns:   clamp(columns, 1, maxColumns),
		count:     clamp(count, 0, maxCount),
		size:      size,
		width:     80,
		height:    24,
	}, nil
}

func (m *model) applyConfig(fc *splitter.FileConfig) error {
	display, err := fc.Display()
	if err != nil {
		return err
	}
	m.mode = display.Mode()
	switch d := display.(type) {
	case layout.Line:
		m.direction = d.Direction
	case layout.Grid:
		m.direction = d.Direction
		m.columns = d.Columns
	}
	if fc.Frame.W > 0 {
		m.size = fc.Frame.W
	}
	if len(fc.Icons) > 0 {
		m.count = len(fc.Icons) + 1
	}
	return nil
}

func (m model) display() layout.Display {
	switch m.mode {
	case layout.ModeDirection:
		return layout.Line{Direction: m.direction}
	case layout.ModeList:
		return layout.Grid{Direction: m.direction, Columns: m.columns}
	default:
		return layout.Circle{}
	}
}

// layout returns the anchor centred in the canvas and the computed targets.
func (m model) layout() (layout.Rect, []layout.Rect, error) {
	anchor := layout.Centered(canvas.W/2, canvas.H/2, layout.Size{W: m.size, H: m.size})
	targets, err := layout.Targets(anchor, m.display(), layout.UniformSizes(m.count, anchor.Size()))
	return anchor, targets, err
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height

	case tea.KeyMsg:
		m.status, m.err = "", nil
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "m":
			m.mode = next(modeOrder, m.mode)
		case "d":
			m.direction = next(directionOrder, m.direction)
		case "+", "=", "up":
			m.count = clamp(m.count+1, 0, maxCount)
		case "-", "down":
			m.count = clamp(m.count-1, 0, maxCount)
		case "]", "right":
			m.columns = clamp(m.columns+1, 1, maxColumns)
		case "[", "left":
			m.columns = clamp(m.columns-1, 1, maxColumns)
		case "c":
			m.copyTargets()
		case "p":
			m.export()
		}
	}
	return m, nil
}

func (m *model) copyTargets() {
	_, targets, err := m.layout()
	if err != nil {
		m.err = err
		return
	}
	if err := clipboard.WriteAll(describe(targets)); err != nil {
		m.err = fmt.Errorf("copy: %w", err)
		return
	}
	m.status = fmt.Sprintf("copied %d targets", len(targets))
}

func (m *model) export() {
	anchor, targets, err := m.layout()
	if err == nil {
		err = exportPNG(exportPath, anchor, targets)
	}
	if err != nil {
		m.err = err
		return
	}
	m.status = "wrote " + exportPath
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("%v  ·  %d elements", m.display(), m.count)))
	b.WriteString("\n")

	anchor, targets, err := m.layout()
	if err != nil {
		b.WriteString(errorStyle.Render(err.Error()))
		return b.String()
	}

	rows := m.height - 4
	if rows < 5 {
		rows = 5
	}
	for _, line := range plot(anchor, targets, m.width, rows) {
		b.WriteString(colorize(line))
		b.WriteString("\n")
	}

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render(m.err.Error()))
	case m.status != "":
		b.WriteString(helpStyle.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("m mode · d direction · +/- count · [/] columns · c copy · p png · q quit"))
	return b.String()
}

func colorize(line string) string {
	var b strings.Builder
	for _, r := range line {
		switch {
		case r == anchorRune:
			b.WriteString(anchorStyle.Render(string(r)))
		case r != ' ':
			b.WriteString(targetStyle.Render(string(r)))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func next[T comparable](order []T, current T) T {
	for i, v := range order {
		if v == current {
			return order[(i+1)%len(order)]
		}
	}
	return order[0]
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
