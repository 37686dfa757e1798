package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	ccerror "github.com/msto63/cmdcall/foundation/core/error"
)

var (
	cfgFile   string
	verbose   bool
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "cmdcall",
	Short: "cmdcall - string driven command dispatcher",
	Long: `cmdcall dispatches shell quoted command lines to typed Go functions.

A line is split into tokens, the first token names the command and the
remaining tokens are converted to the command's argument types:

  cmdcall call "add 2 3"
  cmdcall call concat 'a b' c
  echo "repeat ab 3" | cmdcall run`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and prints a styled error on failure
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

// ExitCode maps an error returned by Execute onto a process exit status
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return ccerror.GetCode(err).ExitCode()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $CMDCALL_CONFIG or ./cmdcall.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (debug logging)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: text, json or logfmt")
}

func printError(w io.Writer, err error) {
	code := ccerror.GetCode(err)
	if code == ccerror.CodeUnknown {
		fmt.Fprintln(w, errorStyle.Render("error:"), err)
		return
	}
	fmt.Fprintln(w, errorStyle.Render("error:"), err,
		mutedStyle.Render("["+code.Category()+": "+code.String()+"]"))
}
