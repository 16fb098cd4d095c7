package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/c9s/bstmap/pkg/script"
)

func init() {
	RunCmd.Flags().Bool("graph", false, "print the tree structure after the script")
	RunCmd.Flags().Bool("stop-on-error", false, "abort at the first failing operation")
	RootCmd.AddCommand(RunCmd)
}

var RunCmd = &cobra.Command{
	Use:   "run [script.yaml...]",
	Short: "apply operation scripts to a tree",
	Long:  "apply the operations of each script in order to one shared tree and print the outcome of every operation",
	Args:  cobra.MinimumNArgs(1),

	// SilenceUsage is an option to silence usage when an error occurs.
	SilenceUsage: true,

	RunE: func(cmd *cobra.Command, args []string) error {
		showGraph, err := cmd.Flags().GetBool("graph")
		if err != nil {
			return err
		}

		stopOnError, err := cmd.Flags().GetBool("stop-on-error")
		if err != nil {
			return err
		}

		color := !viper.GetBool("no-color")
		runner := script.NewRunner("run")
		runner.StopOnError = stopOnError

		for _, path := range args {
			s, err := script.Load(path)
			if err != nil {
				return err
			}

			title := s.Name
			if title == "" {
				title = path
			}

			results, runErr := runner.Run(s)
			script.RenderResults(cmd.OutOrStdout(), title, results, color)
			if runErr != nil {
				return runErr
			}
		}

		if showGraph {
			fmt.Fprintln(cmd.OutOrStdout(), runner.Graph())
		}

		return nil
	},
}
