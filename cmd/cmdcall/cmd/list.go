package cmd

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/cmdcall/foundation/tcol/builtin"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists the available commands",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	descriptions := make(map[string]string)
	for _, c := range builtin.Commands() {
		descriptions[c.Name] = c.Description
	}

	names := a.engine.Registry().Names()
	width := 0
	for _, name := range names {
		width = max(width, len(name))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("Commands (%d)", len(names))))
	for _, name := range names {
		fn, _ := a.engine.Registry().Lookup(name)
		fmt.Fprintf(out, "  %s  %d  %s  %s\n",
			nameStyle.Render(name+strings.Repeat(" ", width-len(name))),
			fn.Arity(),
			fn.Signature(),
			mutedStyle.Render(descriptions[name]))
	}

	aliases := a.engine.Aliases()
	if len(aliases) == 0 {
		return nil
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("Aliases (%d)", len(aliases))))
	for _, alias := range slices.Sorted(maps.Keys(aliases)) {
		fmt.Fprintf(out, "  %s  %s\n", nameStyle.Render(alias), aliases[alias])
	}
	return nil
}
