package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/yanickziegler/TWIST/config"
	"github.com/yanickziegler/TWIST/journal"
	"github.com/yanickziegler/TWIST/model"
	"github.com/yanickziegler/TWIST/pkg/id"
	"github.com/yanickziegler/TWIST/series"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the deficit recurrence from a config file",
	Long: `Run the tree water deficit recurrence using settings from a
configuration file.

The config file maps the input table's column names to the model roles,
sets the model parameters, and selects the output journal.

Example:
  twist run -f examples/configs/basic.yaml`,
	RunE: runRun,
}

var runConfigPath string

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runConfigPath, "config", "f", "", "path to config file (YAML or JSON) (required)")
	runCmd.MarkFlagRequired("config")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFromFile(runConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	var poolOf func(float64) float64
	if cfg.Columns.WoodMass != "" {
		pp := model.PoolParams{RhoSat: cfg.Pool.RhoSat, RhoDry: cfg.Pool.RhoDry}
		poolOf = func(m float64) float64 { return model.PoolSize(m, pp) }
	}

	feed, err := series.NewReader(cfg.Run.Input, series.ColumnMap{
		Time:     cfg.Columns.Time,
		E:        cfg.Columns.E,
		Theta:    cfg.Columns.Theta,
		WoodMass: cfg.Columns.WoodMass,
		Pool:     cfg.Columns.Pool,
	}, poolOf)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}

	var j journal.Journal
	if cfg.Journal.Type == "csv" {
		j, err = journal.NewCSV(cfg.Journal.OutputFile)
	} else {
		j, err = journal.NewSQLite(cfg.Journal.DBPath)
	}
	if err != nil {
		feed.Close()
		return fmt.Errorf("create journal: %w", err)
	}
	defer j.Close()

	runID := id.New()
	runner := model.Runner{
		Params: model.DeficitParams{
			FE:     cfg.Deficit.FE,
			FTWD:   cfg.Deficit.FTWD,
			FTheta: cfg.Deficit.FTheta,
		},
		InitialTWD: cfg.Run.InitialTWD,
	}

	sum, err := runner.RunFeed(feed, func(o series.Output) error {
		return j.RecordRow(runID, o)
	})
	if err != nil {
		return err
	}

	if err := j.RecordRun(journal.Run{
		RunID:      runID,
		Created:    time.Now().UTC(),
		Input:      cfg.Run.Input,
		FE:         cfg.Deficit.FE,
		FTWD:       cfg.Deficit.FTWD,
		FTheta:     cfg.Deficit.FTheta,
		InitialTWD: cfg.Run.InitialTWD,
		Rows:       sum.Rows,
		Start:      sum.Start,
		End:        sum.End,
		FinalTWD:   sum.FinalTWD,
		MinTWD:     sum.MinTWD,
		MaxTWD:     sum.MaxTWD,
	}); err != nil {
		return fmt.Errorf("record run: %w", err)
	}

	printSummary(runID, cfg, sum)
	return nil
}

func printSummary(runID string, cfg *config.Config, s model.Summary) {
	fmt.Println("==================================================")
	fmt.Println(" Deficit Run")
	fmt.Println("==================================================")
	fmt.Printf("Run ID:      %s\n", runID)
	fmt.Printf("Input:       %s\n", cfg.Run.Input)
	fmt.Printf("Params:      f_e=%.3f f_twd=%.3f f_theta=%.3f\n",
		cfg.Deficit.FE, cfg.Deficit.FTWD, cfg.Deficit.FTheta)
	fmt.Printf("Initial TWD: %.4f\n", cfg.Run.InitialTWD)
	fmt.Println()
	fmt.Printf("Rows:        %d\n", s.Rows)
	if s.Rows > 0 {
		fmt.Printf("Period:      %s -> %s\n",
			s.Start.Format(time.RFC3339), s.End.Format(time.RFC3339))
	}
	fmt.Printf("Final TWD:   %.4f\n", s.FinalTWD)
	fmt.Printf("TWD range:   [%.4f, %.4f]\n", s.MinTWD, s.MaxTWD)
}
