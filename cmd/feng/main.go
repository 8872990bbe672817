// Command feng reads a program from standard input, evaluates it, and
// writes the result to standard output. It takes no flags.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/H2NCH2COOH/feng"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "feng",
		Short:         "Evaluate a feng program read from standard input",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			prog, err := feng.Parse("STDIN", os.Stdin)
			if err != nil {
				return err
			}
			result, err := feng.EvalProgram(prog)
			if err != nil {
				return err
			}
			if err := feng.Print(os.Stdout, result); err != nil {
				return err
			}
			_, err = fmt.Fprintln(os.Stdout)
			return err
		},
	}
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
