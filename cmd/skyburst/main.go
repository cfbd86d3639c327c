package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/skyburst/internal/config"
	"github.com/san-kum/skyburst/internal/gui"
	"github.com/san-kum/skyburst/internal/randx"
	"github.com/san-kum/skyburst/internal/show"
	"github.com/san-kum/skyburst/internal/stats"
	"github.com/san-kum/skyburst/internal/storage"
	"github.com/san-kum/skyburst/internal/tui"
)

var (
	dataDir    string
	configFile string
	preset     string
	seed       int64
	fps        int
	width      int
	height     int
	burstMin   int
	burstMax   int
	dt         float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "skyburst",
		Short: "particle fireworks show",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return gui.Run(cfg, resolveSeed(cfg))
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".skyburst", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")
	rootCmd.PersistentFlags().IntVar(&fps, "fps", config.DefaultFPS, "frame rate")
	rootCmd.PersistentFlags().IntVar(&width, "width", config.DefaultWidth, "canvas width")
	rootCmd.PersistentFlags().IntVar(&height, "height", config.DefaultHeight, "canvas height")
	rootCmd.PersistentFlags().IntVar(&burstMin, "burst-min", config.DefaultBurstMin, "minimum rockets per burst")
	rootCmd.PersistentFlags().IntVar(&burstMax, "burst-max", config.DefaultBurstMax, "maximum rockets per burst")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "run one burst headless to completion",
		RunE:  runShow,
	}
	showCmd.Flags().Float64Var(&dt, "dt", 1.0/60, "fixed timestep")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run the show in the terminal",
		RunE:  runLive,
	}

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "run the show in a window",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return gui.Run(cfg, resolveSeed(cfg))
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a recorded run's particle counts",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("  %-10s %dx%d, %d-%d rockets per burst\n",
					name, p.Width, p.Height, p.Burst.Min, p.Burst.Max)
			}
		},
	}

	rootCmd.AddCommand(showCmd, liveCmd, guiCmd, listCmd, plotCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves the effective configuration: preset, then config
// file, then explicit flags on top.
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

	if cmd.Flags().Changed("fps") {
		cfg.FPS = fps
	}
	if cmd.Flags().Changed("width") {
		cfg.Width = width
	}
	if cmd.Flags().Changed("height") {
		cfg.Height = height
	}
	if cmd.Flags().Changed("burst-min") {
		cfg.Burst.Min = burstMin
	}
	if cmd.Flags().Changed("burst-max") {
		cfg.Burst.Max = burstMax
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func resolveSeed(cfg *config.Config) int64 {
	if cfg.Seed != 0 {
		return cfg.Seed
	}
	return time.Now().UnixNano()
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", dt)
	}

	sd := resolveSeed(cfg)
	shw := show.New(randx.New(sd), float64(cfg.Width), float64(cfg.Height))
	rec := stats.NewRecorder()

	n := shw.LaunchRandom(cfg.Burst.Min, cfg.Burst.Max)
	rec.AddLaunched(n)
	fmt.Printf("launching %d rockets (seed %d)...\n", n, sd)

	start := time.Now()
	for shw.Running() {
		shw.Step(dt)
		rec.Observe(shw.Elapsed(), shw.EntityCount(), shw.ParticleCount())
	}
	elapsed := time.Since(start)

	sum := rec.Summary()
	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("simulated: %.2fs over %d frames\n", sum.Duration, sum.Frames)
	fmt.Printf("peak particles: %d\n\n", sum.PeakParticles)

	graph := asciigraph.Plot(rec.ParticleSeries(),
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("live particles"),
	)
	fmt.Println(graph)

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(sd, dt, rec)
	if err != nil {
		return err
	}
	fmt.Printf("\nrun id: %s\n", runID)

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewModel(cfg, resolveSeed(cfg)), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tSEED\tDURATION\tROCKETS\tPEAK")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%.2fs\t%d\t%d\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Seed,
			run.Duration,
			run.TotalLaunched,
			run.PeakParticles,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	samples, err := st.LoadCounts(runID)
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("rockets: %d, peak particles: %d\n\n", meta.TotalLaunched, meta.PeakParticles)

	data := make([]float64, len(samples))
	for i, s := range samples {
		data[i] = float64(s.Particles)
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("live particles"),
	)
	fmt.Println(graph)

	return nil
}
