package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	ccerror "github.com/msto63/cmdcall/foundation/core/error"
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Runs a script of commands",
	Long: `Runs one command per line from a file, or from stdin without a file.

Blank lines and lines starting with # are skipped. Output of successful
commands goes to stdout, failures are reported on stderr with their line
number. With stop_on_error set in the config the script ends at the first
failure.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runScript(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	var (
		input  io.Reader = cmd.InOrStdin()
		source           = "stdin"
	)
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return ccerror.Wrap(err, "cannot open script").
				WithCode(ccerror.CodeInvalidInput).
				WithDetail("path", args[0])
		}
		defer f.Close()
		input, source = f, args[0]
	}

	results, runErr := a.engine.ExecuteScript(cmd.Context(), input, source)

	failed := 0
	for _, r := range results {
		if !r.Success {
			failed++
			fmt.Fprintf(cmd.ErrOrStderr(), "%s %s\n",
				errorStyle.Render(fmt.Sprintf("%s:%d:", source, r.Line)), r.Error)
			continue
		}
		if r.Output != "" {
			fmt.Fprintln(cmd.OutOrStdout(), r.Output)
		}
	}

	a.logger.Debug("script done", "source", source, "commands", len(results), "failed", failed)

	if runErr != nil {
		// The failed line was already reported above.
		if n := len(results); n > 0 && !results[n-1].Success && errors.Is(runErr, results[n-1].Error) {
			return ccerror.Newf("script stopped at %s:%d", source, results[n-1].Line).
				WithCode(ccerror.CodeExecution).
				WithDetail("line", results[n-1].Line)
		}
		return runErr
	}
	if failed > 0 {
		return ccerror.Newf("%d of %d commands failed", failed, len(results)).
			WithCode(ccerror.CodeExecution).
			WithDetail("failed", failed)
	}
	return nil
}
