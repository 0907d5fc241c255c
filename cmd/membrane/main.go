package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/membrane/internal/config"
	"github.com/san-kum/membrane/internal/export"
	"github.com/san-kum/membrane/internal/gui"
	"github.com/san-kum/membrane/internal/logging"
	"github.com/san-kum/membrane/internal/membrane"
	"github.com/san-kum/membrane/internal/raster"
	"github.com/san-kum/membrane/internal/render"
	"github.com/san-kum/membrane/internal/viz"
)

var (
	configFile string
	preset     string
	logLevel   string
	// tui
	logFile string
	// snapshot
	outFile    string
	width      int
	height     int
	saveConfig string
	// bench
	maxSamples int
)

// main registers the membrane commands and runs the window frontend when no
// subcommand is given. It exits with status 1 if a command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:           "membrane",
		Short:         "circles wrapped in a smooth convex membrane",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runGUI,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "seed circles from a preset")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the interactive window",
		Args:  cobra.NoArgs,
		RunE:  runGUI,
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive terminal view",
		Args:  cobra.NoArgs,
		RunE:  runTUI,
	}
	tuiCmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file (default: discard)")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "render a single frame to PNG or SVG",
		Args:  cobra.NoArgs,
		RunE:  runSnapshot,
	}
	snapshotCmd.Flags().StringVarP(&outFile, "out", "o", "membrane.png", "output file (.png or .svg)")
	snapshotCmd.Flags().IntVar(&width, "width", 0, "image width (default from config)")
	snapshotCmd.Flags().IntVar(&height, "height", 0, "image height (default from config)")
	snapshotCmd.Flags().StringVar(&saveConfig, "save-config", "", "also write the resolved config (yaml) to this file")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "sweep samples per circle and report hull convergence",
		Args:  cobra.NoArgs,
		RunE:  runBench,
	}
	benchCmd.Flags().IntVar(&maxSamples, "max-samples", 128, "largest samples-per-circle value")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tCIRCLES")
			for _, name := range config.ListPresets() {
				fmt.Fprintf(w, "%s\t%d\n", name, len(config.Presets[name]))
			}
			w.Flush()
		},
	}

	rootCmd.AddCommand(guiCmd, tuiCmd, snapshotCmd, benchCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// resolveConfig applies the config file, then the preset, then --log-level.
func resolveConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("load config %s: %w", configFile, err)
		}
		cfg = loaded
	}
	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg.Circles = p.Circles
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadConfig resolves the config and builds the stderr logger.
func loadConfig() (*config.Config, *zap.Logger, error) {
	cfg, err := resolveConfig()
	if err != nil {
		return nil, nil, err
	}
	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	defer log.Sync()

	gui.Run(cfg, cfg.NewStore(), log)
	return nil
}

// runTUI never logs to stderr: Bubble Tea owns the screen.
func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	log, err := terminalLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Sync()

	if err := viz.Run(cfg, cfg.NewStore(), log); err != nil {
		return fmt.Errorf("terminal view: %w", err)
	}
	return nil
}

// terminalLogger writes to --log-file when given and discards otherwise.
func terminalLogger(cfg *config.Config) (*zap.Logger, error) {
	return logging.ForTerminal(cfg.LogLevel, logFile)
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	defer log.Sync()

	if width > 0 {
		cfg.Window.Width = width
	}
	if height > 0 {
		cfg.Window.Height = height
	}
	store := cfg.NewStore()
	sched := &render.ManualScheduler{}

	var frame membrane.Frame
	switch ext := strings.ToLower(filepath.Ext(outFile)); ext {
	case ".svg":
		svg := export.NewSVG(cfg.Window.Width, cfg.Window.Height)
		frame = render.NewLoop(store, svg, sched, cfg.RenderStyle(), cfg.Params(), log).Frame()
		if err := os.WriteFile(outFile, []byte(svg.String()), 0644); err != nil {
			return fmt.Errorf("write %s: %w", outFile, err)
		}
	case ".png":
		surf := raster.NewSurface(cfg.Window.Width, cfg.Window.Height)
		defer surf.Close()
		frame = render.NewLoop(store, surf, sched, cfg.RenderStyle(), cfg.Params(), log).Frame()
		if err := surf.Err(); err != nil {
			return fmt.Errorf("rasterize: %w", err)
		}
		if err := surf.SavePNG(outFile); err != nil {
			return fmt.Errorf("write %s: %w", outFile, err)
		}
	default:
		return fmt.Errorf("unsupported output format %q (want .png or .svg)", ext)
	}

	if saveConfig != "" {
		if err := config.Save(saveConfig, cfg); err != nil {
			return fmt.Errorf("save config %s: %w", saveConfig, err)
		}
		log.Info("config saved", zap.String("file", saveConfig))
	}

	stats := frame.Stats(store.Len())
	log.Info("snapshot written",
		zap.String("file", outFile),
		zap.Int("circles", stats.Circles),
		zap.Int("vertices", stats.Vertices))
	fmt.Printf("wrote %s (%d circles, %d hull vertices)\n", outFile, stats.Circles, stats.Vertices)
	return nil
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	defer log.Sync()

	if maxSamples < 3 {
		return fmt.Errorf("max-samples must be at least 3, got %d", maxSamples)
	}

	store := cfg.NewStore()
	params := cfg.Params()
	var vertices, perimeters []float64

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SAMPLES\tPOINTS\tVERTICES\tPERIMETER\tAREA\tTIME")
	for n := 3; n <= maxSamples; n = nextSampleCount(n) {
		params.SamplesPerCircle = n
		start := time.Now()
		frame := membrane.Compute(store.Circles(), params)
		elapsed := time.Since(start)

		stats := frame.Stats(store.Len())
		vertices = append(vertices, float64(stats.Vertices))
		perimeters = append(perimeters, stats.Perimeter)
		fmt.Fprintf(w, "%d\t%d\t%d\t%.2f\t%.1f\t%s\n",
			n, stats.Samples, stats.Vertices, stats.Perimeter, stats.Area, elapsed)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if store.Len() == 0 {
		fmt.Println("\nno circles; nothing to plot")
		return nil
	}
	fmt.Println()
	fmt.Println(asciigraph.Plot(vertices,
		asciigraph.Height(10), asciigraph.Width(60), asciigraph.Caption("hull vertices by sample step")))
	fmt.Println()
	fmt.Println(asciigraph.Plot(perimeters,
		asciigraph.Height(10), asciigraph.Width(60), asciigraph.Caption("perimeter by sample step")))
	return nil
}

// nextSampleCount grows the sweep roughly geometrically.
func nextSampleCount(n int) int {
	if step := n / 4; step > 1 {
		return n + step
	}
	return n + 1
}
