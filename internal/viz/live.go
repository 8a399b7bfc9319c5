package viz

import (
	"fmt"
	"image"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/san-kum/procvis/internal/export"
	"github.com/san-kum/procvis/internal/generator"
	"github.com/san-kum/procvis/internal/logging"
	"github.com/san-kum/procvis/internal/metrics"
	"github.com/san-kum/procvis/internal/pixel"
)

const (
	frameRate       = 60
	historyCapacity = 600
	zoomDuration    = 0.4
	iterStep        = 50
	panStep         = 0.1
)

type TickMsg time.Time

// Options configures a live Model.
type Options struct {
	Cols, Rows int
	Theme      string
	// GIFPath is where a recording is written when it stops.
	GIFPath string
	// Delay is the GIF frame delay in hundredths of a second.
	Delay int
	Scale int
}

// zoomAnim eases the fractal zoom between two levels. The tween runs over
// [0, 1] and the zoom is interpolated geometrically.
type zoomAnim struct {
	tween    *gween.Tween
	from, to float64
}

// Model drives one generator.Source on the bubbletea update loop.
type Model struct {
	src     generator.Source
	opts    Options
	canvas  *Canvas
	frame   *pixel.Frame
	err     error
	running bool

	samples *metrics.Series
	fps     *metrics.FPS
	theme   int
	styles  styles

	cursor image.Point
	zoom   *zoomAnim

	recording bool
	frames    []*pixel.Frame
	status    string
	showHelp  bool
}

func NewModel(src generator.Source, opts Options) Model {
	if opts.Cols <= 0 {
		opts.Cols = 80
	}
	if opts.Rows <= 0 {
		opts.Rows = 30
	}
	if opts.GIFPath == "" {
		opts.GIFPath = src.Name() + ".gif"
	}
	if opts.Delay <= 0 {
		opts.Delay = 3
	}
	theme := ThemeIndex(opts.Theme)
	m := Model{
		src:     src,
		opts:    opts,
		canvas:  NewCanvas(opts.Cols, opts.Rows),
		running: true,
		samples: metrics.NewSeries(src.SampleName(), historyCapacity),
		fps:     metrics.NewFPS(metrics.DefaultFPSWindow),
		theme:   theme,
		styles:  newStyles(Themes[theme]),
	}
	m.redraw()
	if m.frame != nil {
		m.cursor = image.Pt(m.frame.Width/2, m.frame.Height/2)
	}
	return m
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return tick()
}

// Update handles input events and advances the generator.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.canvas.Resize(msg.Width-panelWidth-4, msg.Height-1)
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.click(msg.X, msg.Y)
		}
	case TickMsg:
		m.fps.Tick(time.Time(msg))
		m.step(1.0 / frameRate)
		return m, tick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	nav, navigable := m.src.(generator.Navigable)
	edit, editable := m.src.(generator.Editable)

	switch msg.String() {
	case "q", "ctrl+c":
		if m.recording {
			m.stopRecording()
		}
		return m, tea.Quit
	case " ":
		m.running = !m.running
	case "r":
		m.zoom = nil
		if err := m.src.Reset(); err != nil {
			m.err = err
		}
		m.samples.Reset()
		m.redraw()
	case "c":
		if editable {
			edit.Clear()
			m.redraw()
		}
	case "up", "k":
		m.move(nav, navigable, 0, -1)
	case "down", "j":
		m.move(nav, navigable, 0, 1)
	case "left", "h":
		m.move(nav, navigable, -1, 0)
	case "right", "l":
		m.move(nav, navigable, 1, 0)
	case "enter":
		if editable {
			edit.Toggle(m.cursor.X, m.cursor.Y)
			m.redraw()
		}
	case "+", "=":
		if navigable {
			m.startZoom(nav.View().Zoom, nav.View().Zoom*2)
		}
	case "-", "_":
		if navigable {
			m.startZoom(nav.View().Zoom, nav.View().Zoom/2)
		}
	case "]":
		if navigable {
			nav.SetMaxIter(nav.MaxIter() + iterStep)
			m.redraw()
		}
	case "[":
		if navigable {
			nav.SetMaxIter(nav.MaxIter() - iterStep)
			m.redraw()
		}
	case "g":
		if m.recording {
			m.stopRecording()
		} else {
			m.recording = true
			m.frames = m.frames[:0]
			m.status = "recording"
		}
	case "t":
		m.theme = (m.theme + 1) % len(Themes)
		m.styles = newStyles(Themes[m.theme])
	case "?":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

// step advances the zoom tween and, unless paused, the generator by one frame.
func (m *Model) step(dt float32) {
	changed := false
	if m.zoom != nil {
		if nav, ok := m.src.(generator.Navigable); ok {
			u, done := m.zoom.tween.Update(dt)
			v := nav.View()
			v.Zoom = m.zoom.from * math.Pow(m.zoom.to/m.zoom.from, float64(u))
			if done {
				v.Zoom = m.zoom.to
				m.zoom = nil
			}
			nav.SetView(v)
			changed = true
		} else {
			m.zoom = nil
		}
	}

	if m.running {
		m.src.Advance()
		if v, err := m.src.Sample(); err == nil {
			m.samples.Observe(v)
		}
		changed = true
	}

	if changed {
		m.redraw()
		if m.recording && m.frame != nil {
			m.frames = append(m.frames, m.frame)
		}
	}
}

func (m *Model) redraw() {
	f, err := m.src.Frame()
	if err != nil {
		m.err = err
		return
	}
	m.frame, m.err = f, nil
}

func (m *Model) startZoom(from, to float64) {
	m.zoom = &zoomAnim{
		tween: gween.New(0, 1, zoomDuration, ease.OutQuad),
		from:  from,
		to:    to,
	}
}

// move pans a navigable view or walks the edit cursor.
func (m *Model) move(nav generator.Navigable, navigable bool, dx, dy int) {
	if navigable {
		nav.SetView(nav.View().Pan(float64(dx)*panStep, float64(dy)*panStep))
		m.redraw()
		return
	}
	if m.frame == nil {
		return
	}
	m.cursor.X = min(max(m.cursor.X+dx, 0), m.frame.Width-1)
	m.cursor.Y = min(max(m.cursor.Y+dy, 0), m.frame.Height-1)
}

// click zooms a navigable view onto the clicked pixel or toggles the cell
// under it.
func (m *Model) click(col, row int) {
	if m.frame == nil {
		return
	}
	w, h := m.canvas.fit(m.frame)
	if col < 0 || col >= w || row < 0 || row*2 >= h {
		return
	}
	x, y := m.canvas.Source(m.frame, col, row*2)

	switch src := m.src.(type) {
	case generator.Navigable:
		m.zoom = nil
		src.SetView(src.View().ZoomAt(x, y, m.frame.Width, m.frame.Height))
	case generator.Editable:
		m.cursor = image.Pt(x, y)
		src.Toggle(x, y)
	default:
		return
	}
	m.redraw()
}

func (m *Model) stopRecording() {
	m.recording = false
	if len(m.frames) == 0 {
		m.status = "nothing recorded"
		return
	}
	if err := export.WriteGIF(m.opts.GIFPath, m.frames, m.opts.Delay, m.opts.Scale); err != nil {
		logging.Logger().Error("gif export failed", "path", m.opts.GIFPath, "err", err)
		m.status = "gif failed: " + err.Error()
	} else {
		m.status = fmt.Sprintf("saved %d frames to %s", len(m.frames), m.opts.GIFPath)
	}
	m.frames = nil
}

// View renders the canvas beside the status panel.
func (m Model) View() string {
	var mark *image.Point
	if _, ok := m.src.(generator.Editable); ok {
		mark = &m.cursor
	}
	canvasView := m.canvas.Render(m.frame, mark, Themes[m.theme].Cursor)

	st := m.styles
	var s strings.Builder
	theme := Themes[m.theme]
	s.WriteString(GradientText(strings.ToUpper(m.src.Name()), theme.Title, theme.Accent) + "\n")

	switch {
	case m.recording:
		s.WriteString(st.recording.Render(fmt.Sprintf("● REC %d", len(m.frames))) + "\n\n")
	case m.running:
		s.WriteString(st.running.Render("RUNNING") + "\n\n")
	default:
		s.WriteString(st.paused.Render("PAUSED") + "\n\n")
	}

	row := func(label, value string) {
		s.WriteString(st.label.Render(label) + st.value.Render(value) + "\n")
	}
	row("FPS", fmt.Sprintf("%.0f", m.fps.Value()))
	if m.frame != nil {
		row("Size", fmt.Sprintf("%dx%d", m.frame.Width, m.frame.Height))
	}
	row("Sample", fmt.Sprintf("%.4g", m.samples.Value()))

	if nav, ok := m.src.(generator.Navigable); ok {
		v := nav.View()
		row("Center", fmt.Sprintf("%.5f, %.5f", v.CenterX, v.CenterY))
		row("Zoom", fmt.Sprintf("%.2fx", v.Zoom))
		row("Iterations", fmt.Sprintf("%d", nav.MaxIter()))
	}
	if _, ok := m.src.(generator.Editable); ok {
		row("Cursor", fmt.Sprintf("%d, %d", m.cursor.X, m.cursor.Y))
	}
	row("Theme", theme.Name)

	if vals := m.samples.Values(); len(vals) > 1 {
		chart := asciigraph.Plot(vals,
			asciigraph.Height(5),
			asciigraph.Width(panelWidth-12),
			asciigraph.Caption(m.samples.Name()))
		s.WriteString("\n" + st.graph.Render(chart) + "\n")
	}

	if m.err != nil {
		s.WriteString("\n" + st.recording.Render(m.err.Error()) + "\n")
	} else if m.status != "" {
		s.WriteString("\n" + st.value.Render(m.status) + "\n")
	}

	s.WriteString("\n" + st.help.Render(m.helpText()))
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, st.panel.Render(s.String()))
}

func (m Model) helpText() string {
	if !m.showHelp {
		return "SP pause  R reset  G rec  T theme  ? help  Q quit"
	}
	lines := []string{
		"space  pause / resume",
		"r      reset",
		"g      start / stop GIF recording",
		"t      cycle theme",
		"q      quit",
	}
	switch m.src.(type) {
	case generator.Navigable:
		lines = append(lines,
			"arrows pan",
			"+ / -  zoom in / out",
			"[ / ]  fewer / more iterations",
			"click  zoom onto point")
	case generator.Editable:
		lines = append(lines,
			"arrows move cursor",
			"enter  toggle cell",
			"c      clear",
			"click  toggle cell")
	}
	return strings.Join(lines, "\n")
}

// Run starts a full-screen session for src.
func Run(src generator.Source, opts Options) error {
	p := tea.NewProgram(NewModel(src, opts), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
