package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yanickziegler/TWIST/model"
)

var poolCmd = &cobra.Command{
	Use:   "pool",
	Short: "Compute a storage-pool size from biomass and densities",
	Long: `Compute the plant water-storage pool size from dry wood biomass and
the saturated/oven-dry density ratio:

  W = (rho_sat/rho_dry - 1) * mass

Example:
  twist pool --rho-sat 1.07 --rho-dry 0.58 --mass 50`,
	RunE: runPool,
}

var (
	poolRhoSat float64
	poolRhoDry float64
	poolMass   float64
)

func init() {
	rootCmd.AddCommand(poolCmd)

	poolCmd.Flags().Float64Var(&poolRhoSat, "rho-sat", 0, "saturated wood density (required)")
	poolCmd.Flags().Float64Var(&poolRhoDry, "rho-dry", 0, "oven-dry wood density (required)")
	poolCmd.Flags().Float64Var(&poolMass, "mass", 0, "dry wood biomass (required)")
	poolCmd.MarkFlagRequired("rho-sat")
	poolCmd.MarkFlagRequired("rho-dry")
	poolCmd.MarkFlagRequired("mass")
}

func runPool(cmd *cobra.Command, args []string) error {
	w := model.PoolSize(poolMass, model.PoolParams{RhoSat: poolRhoSat, RhoDry: poolRhoDry})
	fmt.Printf("W = %.6f\n", w)
	return nil
}
