package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/aquarium/internal/config"
	"github.com/san-kum/aquarium/internal/driver"
	"github.com/san-kum/aquarium/internal/metrics"
	"github.com/san-kum/aquarium/internal/palette"
	"github.com/san-kum/aquarium/internal/render"
	"github.com/san-kum/aquarium/internal/sprite"
	"github.com/san-kum/aquarium/internal/tui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	configFile  string
	preset      string
	paletteName string
	seed        int64
	fps         int
	verbose     bool
	// Offline surface
	width      float64
	height     float64
	fontSize   float64
	lineHeight float64
	frames     int
	format     string
	outFile    string
	logFile    string
)

// main registers the commands and flags and runs the full-screen aquarium
// when no subcommand is given.
func main() {
	rootCmd := &cobra.Command{
		Use:          "aquarium",
		Short:        "animated ascii aquarium",
		SilenceUsage: true,
		RunE:         runTUI,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.StringVar(&paletteName, "palette", config.DefaultPalette, "color palette")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 = time based)")
	pf.IntVar(&fps, "fps", config.DefaultFPS, "frame rate")
	pf.BoolVarP(&verbose, "verbose", "v", false, "log re-initializations")
	rootCmd.Flags().StringVar(&logFile, "log-file", "aquarium.log", "log file when --verbose")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "full-screen terminal aquarium",
		RunE:  runTUI,
	}
	tuiCmd.Flags().StringVar(&logFile, "log-file", "aquarium.log", "log file when --verbose")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "stream ansi frames to the terminal",
		RunE:  runLive,
	}

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "render frames on an offline page surface",
		RunE:  runRender,
	}
	addSurfaceFlags(renderCmd)
	renderCmd.Flags().StringVar(&format, "format", "page", "output format (page, html, svg, text, ansi)")
	renderCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "run headless and report frame metrics",
		RunE:  runStats,
	}
	addSurfaceFlags(statsCmd)

	spritesCmd := &cobra.Command{
		Use:   "sprites",
		Short: "list the sprite catalog",
		RunE:  listSprites,
	}

	palettesCmd := &cobra.Command{
		Use:   "palettes",
		Short: "list color palettes",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range palette.Names() {
				fmt.Printf("  %-8s %s\n", name, swatches(palette.Get(name)))
			}
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list configuration presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				p := config.Presets[name]
				fmt.Printf("  %-8s palette=%s fps=%d surface=%.0fx%.0f\n", name, p.Palette, p.FPS, p.Surface.Width, p.Surface.Height)
			}
		},
	}

	rootCmd.AddCommand(tuiCmd, liveCmd, renderCmd, statsCmd, spritesCmd, palettesCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSurfaceFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&width, "width", config.DefaultWidth, "surface width in pixels")
	cmd.Flags().Float64Var(&height, "height", config.DefaultHeight, "surface height in pixels")
	cmd.Flags().Float64Var(&fontSize, "font-size", config.DefaultFontSize, "font size in pixels")
	cmd.Flags().Float64Var(&lineHeight, "line-height", config.DefaultLineHeight, "line height multiplier")
	cmd.Flags().IntVar(&frames, "frames", config.DefaultFrames, "frames to simulate")
}

// loadConfig layers defaults, preset, config file and explicitly set flags,
// in that order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("palette") {
		cfg.Palette = paletteName
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("fps") {
		cfg.FPS = fps
	}
	if flags.Lookup("width") != nil {
		if flags.Changed("width") {
			cfg.Surface.Width = width
		}
		if flags.Changed("height") {
			cfg.Surface.Height = height
		}
		if flags.Changed("font-size") {
			cfg.Surface.FontSize = fontSize
		}
		if flags.Changed("line-height") {
			cfg.Surface.LineHeight = lineHeight
		}
		if flags.Changed("frames") {
			cfg.Surface.Frames = frames
		}
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg, nil
}

func newLogger(w io.Writer) *log.Logger {
	if !verbose {
		return log.New(io.Discard, "", 0)
	}
	return log.New(w, "aquarium: ", log.LstdFlags)
}

func driverOptions(cfg *config.Config, logger *log.Logger) ([]driver.Option, error) {
	pal, err := cfg.ResolvePalette()
	if err != nil {
		return nil, err
	}
	return []driver.Option{
		driver.WithPalette(pal),
		driver.WithSeed(cfg.Seed),
		driver.WithDebounce(cfg.ResizeDebounce()),
		driver.WithLogger(logger),
	}, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := log.New(io.Discard, "", 0)
	if verbose {
		f, err := tea.LogToFile(logFile, "aquarium")
		if err != nil {
			return err
		}
		defer f.Close()
		logger = log.Default()
	}

	opts, err := driverOptions(cfg, logger)
	if err != nil {
		return err
	}

	surface := tui.NewSurface(0, 0)
	d := driver.New(surface, append(opts, driver.WithEncoder(render.ANSI{}))...)
	m := tui.NewModel(d, surface, cfg.FPS, cfg.ResizeDebounce())

	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(tui.Model); ok {
		return fm.Err()
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	opts, err := driverOptions(cfg, newLogger(os.Stderr))
	if err != nil {
		return err
	}

	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("live needs a terminal on stdout; use render for files")
	}
	size := func() (int, int, error) { return term.GetSize(fd) }

	r := tui.NewLiveRenderer(os.Stdout, size)
	d := driver.New(r, append(opts, driver.WithEncoder(render.ANSI{}))...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return r.Run(ctx, d, cfg.FPS)
}

// simulate drives an offline page surface for the configured number of
// frames, spaced as they would be at the configured frame rate.
func simulate(cfg *config.Config, extra ...driver.Option) (*driver.Driver, *driver.PageSurface, error) {
	opts, err := driverOptions(cfg, newLogger(os.Stderr))
	if err != nil {
		return nil, nil, err
	}

	surface := &driver.PageSurface{
		Width:      cfg.Surface.Width,
		Height:     cfg.Surface.Height,
		FontSize:   cfg.Surface.FontSize,
		LineHeight: cfg.Surface.LineHeight,
	}
	d := driver.New(surface, append(opts, extra...)...)

	n := max(1, cfg.Surface.Frames)
	step := time.Second / time.Duration(max(1, cfg.FPS))
	ticks := make(chan time.Time, n)
	start := time.Now()
	for i := 0; i < n; i++ {
		ticks <- start.Add(time.Duration(i) * step)
	}
	close(ticks)

	if err := d.Run(context.Background(), ticks); err != nil {
		return nil, nil, err
	}
	return d, surface, nil
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	d, surface, err := simulate(cfg)
	if err != nil {
		return err
	}

	var out string
	switch strings.ToLower(format) {
	case "page":
		var b strings.Builder
		page := render.Page{
			Title:      "aquarium",
			Background: "#0a0a0a",
			FontSize:   cfg.Surface.FontSize,
			LineHeight: cfg.Surface.LineHeight,
		}
		if err := page.Write(&b, surface.Markup); err != nil {
			return err
		}
		out = b.String()
	case "html":
		out = surface.Markup
	case "svg":
		cw, ch := d.CellSize()
		out = render.SVG{CellWidth: cw, CellHeight: ch}.Encode(d.Scene().Grid)
	default:
		enc, ok := render.ByName(format)
		if !ok {
			return fmt.Errorf("unknown format: %s", format)
		}
		out = enc.Encode(d.Scene().Grid)
	}

	if outFile == "" {
		fmt.Print(out)
		return nil
	}
	if err := os.WriteFile(outFile, []byte(out), 0644); err != nil {
		return err
	}
	g := d.Scene().Grid
	fmt.Printf("wrote %s (%dx%d grid, %d frames)\n", outFile, g.Cols, g.Rows, surface.Frames)
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	set := metrics.Default()
	coverage := set.Coverage()

	start := time.Now()
	d, surface, err := simulate(cfg, driver.WithObserver(set))
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	s := d.Scene()
	cw, ch := d.CellSize()
	fmt.Printf("grid: %dx%d (cell %.1fx%.1f px)\n", s.Grid.Cols, s.Grid.Rows, cw, ch)
	fmt.Printf("population: %d fish, %d bubbles, %d seaweed\n", len(s.Fish), len(s.Bubbles), len(s.Seaweed))
	fmt.Printf("frames: %d in %v (%.0f frames/s)\n", surface.Frames, elapsed, float64(surface.Frames)/elapsed.Seconds())
	fmt.Println("\nmetrics:")
	values := set.Values()
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %s: %.4f\n", name, values[name])
	}

	if series := coverage.Series(); len(series) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(series,
			asciigraph.Height(8),
			asciigraph.Width(70),
			asciigraph.Caption("ink coverage per frame"),
		))
	}
	return nil
}

func listSprites(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	pal, err := cfg.ResolvePalette()
	if err != nil {
		return err
	}

	defs := sprite.Catalog(pal)
	probs := sprite.Probability(defs)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tWEIGHT\tP\tSIZE\tFLAGS")
	for i, def := range defs {
		right, _ := def.Shapes()
		var flags []string
		if def.Forced() {
			flags = append(flags, fmt.Sprintf("dir=%+d", def.ForceDirection))
		}
		if def.NoMirror {
			flags = append(flags, "no-mirror")
		}
		fmt.Fprintf(w, "%s\t%.0f\t%.1f%%\t%dx%d\t%s\n", def.Name, def.Mass(), probs[i]*100, right.Width, right.Height, strings.Join(flags, ","))
	}
	w.Flush()

	fmt.Println()
	for _, def := range defs {
		right, left := def.Shapes()
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(def.Color))
		preview := lipgloss.JoinHorizontal(lipgloss.Top,
			style.Render(shapeText(right)), "    ", style.Render(shapeText(left)))
		fmt.Printf("%s\n%s\n\n", def.Name, preview)
	}
	return nil
}

// swatches renders one colored block per palette role.
func swatches(p palette.Palette) string {
	colors := []string{p.Fish1, p.Fish2, p.Fish3, p.Bubble, p.Seaweed, p.Coral, p.Wave}
	blocks := make([]string, len(colors))
	for i, c := range colors {
		blocks[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Render("██")
	}
	return strings.Join(blocks, " ")
}

func shapeText(s sprite.Shape) string {
	lines := make([][]rune, s.Height)
	for y := range lines {
		lines[y] = []rune(strings.Repeat(" ", s.Width))
	}
	for _, c := range s.Cells {
		lines[c.Y][c.X] = c.Char
	}
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = string(l)
	}
	return strings.Join(out, "\n")
}
