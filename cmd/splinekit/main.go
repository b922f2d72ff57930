package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/splinekit/internal/config"
	"github.com/san-kum/splinekit/internal/spline"
	"github.com/san-kum/splinekit/internal/store"
	"github.com/san-kum/splinekit/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	boundary   string
	samples    int
	margin     float64
	outFile    string
	// Phase plot axes
	xAxis int
	yAxis int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "splinekit",
		Short: "cubic spline interpolation toolkit",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".splinekit", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "curve config file (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use a named curve preset")

	sampleCmd := &cobra.Command{
		Use:   "sample",
		Short: "sample a curve and save the run",
		RunE:  sampleCurve,
	}
	sampleCmd.Flags().IntVar(&samples, "samples", 0, "sample count (0 = from config)")
	sampleCmd.Flags().Float64Var(&margin, "margin", -1, "extrapolation margin in argument units (-1 = from config)")
	sampleCmd.Flags().StringVar(&boundary, "boundary", "", "override boundary policy")

	evalCmd := &cobra.Command{
		Use:   "eval [t]",
		Short: "evaluate the curve at one argument",
		Args:  cobra.ExactArgs(1),
		RunE:  evalCurve,
	}

	tangentsCmd := &cobra.Command{
		Use:   "tangents",
		Short: "print computed control-point tangents and norms",
		RunE:  printTangents,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	phaseCmd := &cobra.Command{
		Use:   "phase [run_id]",
		Short: "planar plot of two components of a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  phasePlot,
	}
	phaseCmd.Flags().IntVar(&xAxis, "x-axis", 0, "component for x-axis")
	phaseCmd.Flags().IntVar(&yAxis, "y-axis", 1, "component for y-axis")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a saved run to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVar(&outFile, "out", "", "output file (default stdout)")

	exploreCmd := &cobra.Command{
		Use:   "explore",
		Short: "interactive curve explorer",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadCurve()
			if err != nil {
				return err
			}
			s, err := cfg.Build()
			if err != nil {
				return err
			}
			return viz.NewExplorer(cfg.Name, s).Run()
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list curve presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets()
			sort.Strings(names)
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tBOUNDARY\tPOINTS\tDIM")
			for _, name := range names {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%s\t%d\t%d\n", name, p.Boundary, len(p.Points), p.Dim())
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(sampleCmd, evalCmd, tangentsCmd, listCmd, plotCmd, phaseCmd, exportJSONCmd, exploreCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadCurve resolves the curve definition: config file first, then
// preset, then the built-in default.
func loadCurve() (*config.Config, error) {
	if configFile != "" {
		return config.Load(configFile)
	}
	if preset != "" {
		cfg := config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		return cfg, nil
	}
	return config.DefaultConfig(), nil
}

func sampleCurve(cmd *cobra.Command, args []string) error {
	cfg, err := loadCurve()
	if err != nil {
		return err
	}
	if boundary != "" {
		cfg.Boundary = boundary
	}
	if samples > 0 {
		cfg.Samples = samples
	}
	if margin >= 0 {
		cfg.Margin = margin
	}

	s, err := cfg.Build()
	if err != nil {
		return err
	}

	lo, hi := s.Domain()
	sampleArgs, values := s.Sample(lo-cfg.Margin, hi+cfg.Margin, cfg.Samples)

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(cfg.Name, cfg.Boundary, s.Norms(), sampleArgs, values)
	if err != nil {
		return err
	}

	fmt.Printf("sampled %s (%s, %d points, dim %d)\n", cfg.Name, cfg.Boundary, len(cfg.Points), s.Dim())
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("samples: %d over [%.4g, %.4g]\n", len(values), sampleArgs[0], sampleArgs[len(sampleArgs)-1])
	return nil
}

func evalCurve(cmd *cobra.Command, args []string) error {
	t, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid argument %q: %w", args[0], err)
	}

	cfg, err := loadCurve()
	if err != nil {
		return err
	}
	s, err := cfg.Build()
	if err != nil {
		return err
	}

	v := s.Evaluate(t)
	fmt.Printf("t = %g\n", t)
	for d := 0; d < v.Dim(); d++ {
		fmt.Printf("  y%d = %.9g\n", d, v.At(d))
	}
	return nil
}

func printTangents(cmd *cobra.Command, args []string) error {
	cfg, err := loadCurve()
	if err != nil {
		return err
	}
	s, err := cfg.Build()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "POINT\tARG\tVALUE\tTANGENT\tNORM")
	sArgs := s.Arguments()
	for i := range s.Values() {
		fmt.Fprintf(w, "%d\t%.4g\t%s\t%s\t%.6f\n",
			i, sArgs[i], formatVec(s.Values()[i]), formatVec(s.Tangents()[i]), s.Norms()[i])
	}
	return w.Flush()
}

func formatVec(v spline.Vec) string {
	out := "("
	for d := 0; d < v.Dim(); d++ {
		if d > 0 {
			out += ", "
		}
		out += strconv.FormatFloat(v.At(d), 'g', 6, 64)
	}
	return out + ")"
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RUN\tCURVE\tBOUNDARY\tDIM\tSAMPLES\tWHEN")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%s\n",
			r.ID, r.Name, r.Boundary, r.Dim, r.Samples, r.Timestamp.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	sampleArgs, values, err := st.LoadSamples(args[0])
	if err != nil {
		return err
	}

	title := fmt.Sprintf("%s (%s)", meta.Name, meta.Boundary)
	fmt.Println(viz.Plot(title, sampleArgs, values))
	return nil
}

func phasePlot(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	if meta.Dim < 2 {
		return fmt.Errorf("phase plot needs at least 2 components, run has %d", meta.Dim)
	}
	_, values, err := st.LoadSamples(args[0])
	if err != nil {
		return err
	}

	title := fmt.Sprintf("%s (%s) y%d vs y%d", meta.Name, meta.Boundary, xAxis, yAxis)
	fmt.Println(viz.PlotPhase(title, values, xAxis, yAxis))
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	if outFile != "" {
		if err := st.ExportJSONFile(outFile, args[0]); err != nil {
			return err
		}
		fmt.Printf("exported to %s\n", outFile)
		return nil
	}
	return st.ExportJSON(os.Stdout, args[0])
}
