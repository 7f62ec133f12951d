package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yanickziegler/TWIST/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage run configuration files",
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a default configuration file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "twist.yaml"
		if len(args) == 1 {
			path = args[0]
		}
		if err := config.Default().SaveToFile(path); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show <path>",
	Short: "Load, validate and print a configuration file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadFromFile(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("deficit: f_e=%.3f f_twd=%.3f f_theta=%.3f\n",
			cfg.Deficit.FE, cfg.Deficit.FTWD, cfg.Deficit.FTheta)
		fmt.Printf("pool:    rho_sat=%.3f rho_dry=%.3f\n",
			cfg.Pool.RhoSat, cfg.Pool.RhoDry)
		fmt.Printf("columns: time=%q e=%q theta=%q wood_mass=%q pool=%q\n",
			cfg.Columns.Time, cfg.Columns.E, cfg.Columns.Theta,
			cfg.Columns.WoodMass, cfg.Columns.Pool)
		fmt.Printf("run:     input=%q initial_twd=%.4f\n",
			cfg.Run.Input, cfg.Run.InitialTWD)
		fmt.Printf("journal: type=%q output=%q db=%q\n",
			cfg.Journal.Type, cfg.Journal.OutputFile, cfg.Journal.DBPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}
