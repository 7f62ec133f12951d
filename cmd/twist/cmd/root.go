package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "twist",
	Short: "Tree water deficit simulation over hourly timeseries",
	Long: `TWIST computes a tree water deficit (TWD) recurrence over an hourly
timeseries of transpiration and relative soil moisture, and derives the
relative water content (RWC) of the tree's storage pool at each timestep.

It provides tools for:
  - Running the deficit recurrence over column-mapped CSV tables
  - Sizing the storage pool from wood biomass and densities
  - Journaling computed rows to CSV or SQLite
  - Managing run configuration files`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
