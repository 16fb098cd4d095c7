package cmd

import (
	"context"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/c9s/bstmap/pkg/bench"
	"github.com/c9s/bstmap/pkg/cmd/cmdutil"
)

func init() {
	BenchCmd.Flags().Int("count", 100_000, "number of keys to insert")
	BenchCmd.Flags().String("order", string(bench.OrderRandom), "insertion order: random, ascending or descending")
	BenchCmd.Flags().Float64("delete-ratio", 0.5, "fraction of the keys to delete after the lookups")
	BenchCmd.Flags().Int64("seed", 0, "random seed, 0 picks one from the clock")
	BenchCmd.Flags().Bool("validate", false, "check the tree invariants at the end")
	BenchCmd.Flags().Bool("progress", false, "show progress bars")

	for _, name := range []string{"count", "order", "delete-ratio", "seed", "validate", "progress"} {
		if err := viper.BindPFlag("bench."+name, BenchCmd.Flags().Lookup(name)); err != nil {
			log.WithError(err).Errorf("failed to bind bench flag %s", name)
		}
	}

	RootCmd.AddCommand(BenchCmd)
}

var BenchCmd = &cobra.Command{
	Use:   "bench",
	Short: "insert, look up and delete generated keys and report timings",

	// SilenceUsage is an option to silence usage when an error occurs.
	SilenceUsage: true,

	RunE: func(cmd *cobra.Command, args []string) error {
		config := bench.Config{
			Count:       viper.GetInt("bench.count"),
			Order:       bench.Order(viper.GetString("bench.order")),
			DeleteRatio: viper.GetFloat64("bench.delete-ratio"),
			Seed:        viper.GetInt64("bench.seed"),
			Validate:    viper.GetBool("bench.validate"),
			Progress:    viper.GetBool("bench.progress"),
		}

		ctx, cancel := cmdutil.CancelOnSignal(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		log.Infof("benchmarking %d keys in %s order", config.Count, config.Order)

		stats, err := bench.Run(ctx, config)
		if stats != nil {
			bench.RenderStats(cmd.OutOrStdout(), stats, !viper.GetBool("no-color"))
		}

		return err
	},
}
