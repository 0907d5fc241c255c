package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"github.com/san-kum/membrane/internal/config"
	"github.com/san-kum/membrane/internal/geom"
	"github.com/san-kum/membrane/internal/interact"
	"github.com/san-kum/membrane/internal/metrics"
	"github.com/san-kum/membrane/internal/render"
	"github.com/san-kum/membrane/internal/scene"
)

var (
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
)

type App struct {
	Store    *scene.Store
	Machine  *interact.Machine
	Loop     *render.Loop
	Sched    *render.ManualScheduler
	ShowHelp bool

	width, height int32
	log           *zap.Logger
	clicked       bool
	compute       *metrics.ComputeTime
}

func initWindow(cfg *config.Config) {
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), "membrane")
	rl.SetTargetFPS(int32(cfg.Window.FPS))
	rl.SetExitKey(0)
}

// NewApp wires the store to a raylib surface. The window must already be open.
func NewApp(cfg *config.Config, store *scene.Store, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	sched := &render.ManualScheduler{}
	compute := metrics.NewComputeTime()
	app := &App{
		Store:    store,
		Machine:  interact.NewMachine(store, log),
		Loop:     render.NewLoop(store, Surface{}, sched, cfg.RenderStyle(), cfg.Params(), log),
		Sched:    sched,
		ShowHelp: true,
		width:    int32(cfg.Window.Width),
		height:   int32(cfg.Window.Height),
		log:      log,
		compute:  compute,
	}
	app.Loop.Observe(compute)
	return app
}

// Run opens the window and blocks until it is closed or Q is pressed.
func Run(cfg *config.Config, store *scene.Store, log *zap.Logger) {
	initWindow(cfg)
	defer rl.CloseWindow()

	app := NewApp(cfg, store, log)
	app.log.Info("window opened",
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.Int("circles", store.Len()))
	app.RunLoop()
}

func (a *App) RunLoop() {
	a.Loop.Start()
	for !rl.WindowShouldClose() && !a.Loop.Stopped() {
		a.Update()
		a.Draw()
	}
	a.Loop.Stop()
	a.log.Info("window closed", zap.Uint64("frames", a.Loop.Frames()))
}

func (a *App) Update() {
	if rl.IsKeyPressed(rl.KeyQ) {
		a.Loop.Stop()
		return
	}
	if rl.IsKeyPressed(rl.KeyC) {
		a.Machine.Cancel()
		a.Store.Clear()
		a.compute.Reset()
	}
	if rl.IsKeyPressed(rl.KeyH) {
		a.ShowHelp = !a.ShowHelp
	}

	mouse := rl.GetMousePosition()
	p := geom.Pt(float64(mouse.X), float64(mouse.Y))

	pressed := true
	switch {
	case rl.IsMouseButtonPressed(rl.MouseLeftButton):
		a.Machine.Press(p, interact.ButtonLeft)
	case rl.IsMouseButtonPressed(rl.MouseRightButton):
		a.Machine.Press(p, interact.ButtonRight)
	case rl.IsMouseButtonPressed(rl.MouseMiddleButton):
		a.Machine.Press(p, interact.ButtonMiddle)
	default:
		pressed = false
	}
	// The help line goes away with the first click; H brings it back.
	if pressed && !a.clicked {
		a.clicked = true
		a.ShowHelp = false
	}
	if a.Machine.Mode() != interact.Idle {
		a.Machine.Move(p)
	}
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) || rl.IsMouseButtonReleased(rl.MouseRightButton) ||
		rl.IsMouseButtonReleased(rl.MouseMiddleButton) {
		a.Machine.Release()
	}
}

// Draw runs the loop's pending frame inside the raylib frame, then the HUD.
func (a *App) Draw() {
	rl.BeginDrawing()
	a.Sched.Step()
	a.DrawHUD()
	rl.EndDrawing()
}

func (a *App) DrawHUD() {
	stats := a.Loop.Last().Stats(a.Store.Len())
	a.drawText(fmt.Sprintf("%d circles  %d vertices  %s", stats.Circles, stats.Vertices, a.Machine.Mode()), 20, 20, 16, ColText)
	a.drawText(fmt.Sprintf("%d FPS  %.2f ms", rl.GetFPS(), a.compute.Value()), 20, a.height-30, 14, ColTextDim)
	if a.ShowHelp {
		a.drawText("[LMB] ADD/DRAG  [RMB] DELETE  [C] CLEAR  [H] HELP  [Q] QUIT", a.width-560, a.height-30, 14, ColTextDim)
	}
}

func (a *App) drawText(text string, x, y, size int32, color rl.Color) {
	rl.DrawText(text, x, y, size, color)
}
