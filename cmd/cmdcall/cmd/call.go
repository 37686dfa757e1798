package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var callCmd = &cobra.Command{
	Use:   "call <line> | call <name> [args...]",
	Short: "Runs one command",
	Long: `Runs one command and prints its output.

With a single argument the argument is a complete command line and is
tokenized with shell style quoting. With more arguments the first one is
the command name and the rest are passed through as tokens unchanged.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCall,
}

func init() {
	rootCmd.AddCommand(callCmd)
}

func runCall(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	var out string
	if len(args) == 1 {
		result, err := a.engine.Execute(cmd.Context(), args[0], nil)
		if err != nil {
			return err
		}
		if result.Error != nil {
			return result.Error
		}
		out = result.Output
	} else {
		out, err = a.engine.Registry().DispatchTokens(args[0], args[1:])
		if err != nil {
			return err
		}
	}

	if out != "" {
		fmt.Fprintln(cmd.OutOrStdout(), out)
	}
	return nil
}
