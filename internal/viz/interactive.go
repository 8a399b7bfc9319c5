package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/procvis/internal/config"
	"github.com/san-kum/procvis/internal/generator"
)

var generatorInfo = map[string]string{
	"particles":  "bouncing hue-cycling particles",
	"mandelbrot": "escape-time fractal",
	"life":       "toroidal game of life",
	"raytrace":   "orbiting lit sphere",
}

const (
	stateMenu = iota
	stateLive
)

// picker lists the registered generators and hands the chosen one to a
// live Model.
type picker struct {
	state    int
	cursor   int
	names    []string
	registry *generator.Registry
	cfg      config.Config
	opts     Options
	live     Model
	src      generator.Source
	err      error
}

func newPicker(reg *generator.Registry, cfg *config.Config, opts Options) *picker {
	return &picker{
		names:    reg.List(),
		registry: reg,
		cfg:      *cfg,
		opts:     opts,
	}
}

func (p *picker) Init() tea.Cmd { return nil }

func (p *picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if p.state == stateLive {
		if ws, ok := msg.(tea.WindowSizeMsg); ok {
			p.opts.Cols, p.opts.Rows = ws.Width-panelWidth-4, ws.Height-1
		}
		next, cmd := p.live.Update(msg)
		p.live = next.(Model)
		return p, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.opts.Cols, p.opts.Rows = msg.Width-panelWidth-4, msg.Height-1
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return p, tea.Quit
		case "up", "k":
			if p.cursor > 0 {
				p.cursor--
			}
		case "down", "j":
			if p.cursor < len(p.names)-1 {
				p.cursor++
			}
		case "enter", " ":
			return p, p.start(p.names[p.cursor])
		}
	}
	return p, nil
}

func (p *picker) start(name string) tea.Cmd {
	cfg := p.cfg
	cfg.Generator = name
	src, err := p.registry.Get(&cfg)
	if err != nil {
		p.err = err
		return nil
	}
	p.src, p.err = src, nil
	p.live = NewModel(src, p.opts)
	p.state = stateLive
	return p.live.Init()
}

func (p *picker) View() string {
	if p.state == stateLive {
		return p.live.View()
	}

	h := lipgloss.NewStyle().Foreground(lipgloss.Color("#00cccc")).Bold(true)
	sub := lipgloss.NewStyle().Foreground(lipgloss.Color("#666688"))
	sel := lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true)
	desc := lipgloss.NewStyle().Foreground(lipgloss.Color("#ff88ff"))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("#555566"))
	key := lipgloss.NewStyle().Foreground(lipgloss.Color("#00aaaa")).Bold(true)

	var b strings.Builder
	b.WriteString("\n\n    " + h.Render("PROCVIS") + "\n    " + sub.Render("procedural visual generators") + "\n    " + sub.Render("────────────────────────────") + "\n\n")
	for i, name := range p.names {
		if i == p.cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n", h.Render("▸"), sel.Render(fmt.Sprintf("%-12s", name)), desc.Render(generatorInfo[name])))
		} else {
			b.WriteString(fmt.Sprintf("    %s  %s\n", dim.Render(fmt.Sprintf("  %-12s", name)), dim.Render(generatorInfo[name])))
		}
	}
	if p.err != nil {
		b.WriteString("\n    " + lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444")).Render(p.err.Error()) + "\n")
	}
	b.WriteString("\n    " + key.Render("j/k") + dim.Render(" navigate  ") + key.Render("enter") + dim.Render(" select  ") + key.Render("q") + dim.Render(" quit") + "\n")
	return b.String()
}

// RunPicker shows the generator menu and runs the chosen generator live.
// cfg supplies every setting except the generator name.
func RunPicker(reg *generator.Registry, cfg *config.Config, opts Options) error {
	p := newPicker(reg, cfg, opts)
	_, err := tea.NewProgram(p, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	if p.src != nil {
		if cerr := p.src.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
