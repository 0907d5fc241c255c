package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"go.uber.org/zap"

	"github.com/san-kum/membrane/internal/config"
	"github.com/san-kum/membrane/internal/geom"
	"github.com/san-kum/membrane/internal/interact"
	"github.com/san-kum/membrane/internal/membrane"
	"github.com/san-kum/membrane/internal/metrics"
	"github.com/san-kum/membrane/internal/render"
	"github.com/san-kum/membrane/internal/scene"
)

const (
	defaultCols     = 80
	defaultRows     = 24
	statsWidth      = 36
	historyCapacity = 120
	minScale        = 0.01
	maxScale        = 4.0
	minSamples      = 3
	maxSamples      = 800
)

var (
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(0, 2).Width(statsWidth)
	headerStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type frameMsg time.Time

// App is the Bubble Tea model of the terminal frontend.
type App struct {
	store   *scene.Store
	machine *interact.Machine
	surface *Surface
	sched   *render.ManualScheduler
	loop    *render.Loop
	log     *zap.Logger

	theme      Theme
	showHelp   bool
	clicked    bool
	interval   time.Duration
	cols, rows int
	sceneSize  geom.Point
	zoom       float64

	vertices  []float64
	lastFrame time.Time
	fps       float64
}

func NewApp(cfg *config.Config, store *scene.Store, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	a := &App{
		store:     store,
		machine:   interact.NewMachine(store, log),
		sched:     &render.ManualScheduler{},
		log:       log,
		theme:     ThemeClassic,
		showHelp:  true,
		interval:  time.Second / time.Duration(cfg.Window.FPS),
		sceneSize: geom.Pt(float64(cfg.Window.Width), float64(cfg.Window.Height)),
		zoom:      1,
		vertices:  make([]float64, 0, historyCapacity),
	}
	a.surface = NewSurface(defaultCols, defaultRows, Viewport{})
	a.resize(defaultCols+statsWidth+1, defaultRows+1)
	a.loop = render.NewLoop(store, a.surface, a.sched, cfg.RenderStyle(), cfg.Params(), log)
	a.loop.Observe(metrics.Standard()...)
	return a
}

// Run starts the terminal frontend and blocks until the user quits.
func Run(cfg *config.Config, store *scene.Store, log *zap.Logger) error {
	p := tea.NewProgram(NewApp(cfg, store, log), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

func (a *App) tick() tea.Cmd {
	return tea.Tick(a.interval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (a *App) Init() tea.Cmd {
	a.loop.Start()
	return a.tick()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKey(msg)
	case tea.MouseMsg:
		a.handleMouse(msg)
	case tea.WindowSizeMsg:
		a.resize(msg.Width, msg.Height)
	case frameMsg:
		// The loop's pending frame runs on the tick; it queues the next one.
		a.sched.Step()
		a.record(time.Time(msg))
		if a.loop.Stopped() {
			return a, nil
		}
		return a, a.tick()
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		a.loop.Stop()
		a.log.Debug("terminal view closed", zap.Uint64("frames", a.loop.Frames()))
		return a, tea.Quit
	case "c":
		a.machine.Cancel()
		a.store.Clear()
		for _, m := range a.loop.Metrics() {
			m.Reset()
		}
	case "t":
		a.theme = NextTheme(a.theme)
	case "h":
		a.showHelp = !a.showHelp
	case "]":
		a.setSamples(a.loop.Params().SamplesPerCircle * 2)
	case "[":
		a.setSamples(a.loop.Params().SamplesPerCircle / 2)
	case "+", "=":
		a.setZoom(a.zoom * 1.25)
	case "-", "_":
		a.setZoom(a.zoom / 1.25)
	}
	return a, nil
}

func (a *App) handleMouse(msg tea.MouseMsg) {
	if msg.X >= a.cols || msg.Y >= a.rows {
		if msg.Action == tea.MouseActionRelease {
			a.machine.Release()
		}
		return
	}
	p := a.surface.View.CellToScene(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		if !a.clicked && !tea.MouseEvent(msg).IsWheel() {
			a.clicked = true
			a.showHelp = false
		}
		switch msg.Button {
		case tea.MouseButtonLeft:
			a.machine.Press(p, interact.ButtonLeft)
		case tea.MouseButtonRight:
			a.machine.Press(p, interact.ButtonRight)
		case tea.MouseButtonMiddle:
			a.machine.Press(p, interact.ButtonMiddle)
		case tea.MouseButtonWheelUp:
			a.setZoom(a.zoom * 1.1)
		case tea.MouseButtonWheelDown:
			a.setZoom(a.zoom / 1.1)
		}
	case tea.MouseActionMotion:
		a.machine.Move(p)
	case tea.MouseActionRelease:
		a.machine.Release()
	}
}

// setSamples changes samples per circle for the following frames.
func (a *App) setSamples(n int) {
	p := a.loop.Params()
	p.SamplesPerCircle = max(minSamples, min(maxSamples, n))
	a.loop.SetParams(p)
}

// resize fits the configured scene into the space left of the stats panel.
func (a *App) resize(width, height int) {
	a.cols = max(width-statsWidth-1, 10)
	a.rows = max(height-1, 4)
	a.surface.Resize(a.cols, a.rows)
	a.setZoom(a.zoom)
}

func (a *App) setZoom(z float64) {
	fit := math.Min(float64(a.cols*2)/a.sceneSize.X, float64(a.rows*4)/a.sceneSize.Y)
	scale := math.Max(minScale, math.Min(maxScale, fit*z))
	a.zoom = scale / fit
	a.surface.View = Viewport{Scale: scale}
}

func (a *App) record(now time.Time) {
	if !a.lastFrame.IsZero() {
		if dt := now.Sub(a.lastFrame).Seconds(); dt > 0 {
			a.fps = 0.9*a.fps + 0.1/dt
		}
	}
	a.lastFrame = now

	a.vertices = append(a.vertices, float64(len(a.loop.Last().Hull)))
	if len(a.vertices) > historyCapacity {
		a.vertices = a.vertices[1:]
	}
}

func (a *App) View() string {
	canvasView := a.composeCanvas()

	last := a.loop.Last()
	stats := last.Stats(a.store.Len())
	header := headerStyle.Foreground(a.theme.Accent).Render("MEMBRANE")

	var s strings.Builder
	s.WriteString(header + "\n")
	row := func(label, value string) {
		s.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}
	row("Circles", fmt.Sprintf("%d", stats.Circles))
	row("Samples", fmt.Sprintf("%d (%d/circle)", stats.Samples, a.loop.Params().SamplesPerCircle))
	row("Vertices", fmt.Sprintf("%d", stats.Vertices))
	row("Perimeter", fmt.Sprintf("%.1f", stats.Perimeter))
	row("Area", fmt.Sprintf("%.0f", stats.Area))
	row("Gesture", a.machine.Mode().String())
	row("FPS", fmt.Sprintf("%.0f", a.fps))
	row("Theme", a.theme.Name)
	for _, m := range a.loop.Metrics() {
		row(m.Name(), fmt.Sprintf("%.3g", m.Value()))
	}
	if !last.HasMembrane() {
		row("Membrane", "none")
	}

	if len(a.vertices) > 1 {
		chart := asciigraph.Plot(a.vertices, asciigraph.Height(4), asciigraph.Width(statsWidth-12), asciigraph.Caption("hull vertices"))
		s.WriteString(graphStyle.Foreground(a.theme.Membrane).Render(chart) + "\n")
	}
	if a.showHelp {
		s.WriteString(helpStyle.Render("LMB:Create/Drag RMB:Delete\nC:Clear T:Theme +/-:Zoom\n[/]:Samples H:Help Q:Quit"))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsStyle.Render(s.String()))
}

// composeCanvas merges both canvases cell by cell. Cells holding membrane
// dots take the membrane color; runs of equal color are styled together.
func (a *App) composeCanvas() string {
	circleStyle := lipgloss.NewStyle().Foreground(a.theme.Circle)
	membraneStyle := lipgloss.NewStyle().Foreground(a.theme.Membrane)

	var b strings.Builder
	for row := 0; row < a.surface.Circles.Height; row++ {
		var run []rune
		kind := 0
		flush := func() {
			switch kind {
			case 1:
				b.WriteString(circleStyle.Render(string(run)))
			case 2:
				b.WriteString(membraneStyle.Render(string(run)))
			default:
				b.WriteString(string(run))
			}
			run = run[:0]
		}
		for col := 0; col < a.surface.Circles.Width; col++ {
			k, r := 0, rune(' ')
			switch {
			case a.surface.Membrane.Lit(col, row):
				k, r = 2, a.surface.Membrane.Grid[row][col]|a.surface.Circles.Grid[row][col]
			case a.surface.Circles.Lit(col, row):
				k, r = 1, a.surface.Circles.Grid[row][col]
			}
			if k != kind && len(run) > 0 {
				flush()
			}
			kind = k
			run = append(run, r)
		}
		flush()
		b.WriteString("\n")
	}
	return b.String()
}

// Frame exposes the latest pipeline result for tests and status output.
func (a *App) Frame() membrane.Frame { return a.loop.Last() }
