package main

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/binconv/internal/cli"
	"github.com/idilsaglam/binconv/internal/ui"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "binconv",
		Short: "Compose a 10-bit binary number and convert it to decimal",
		Long: `binconv opens a full-screen converter. Pick a bit with k/j, push it
with Enter, and press Enter on a full buffer to convert.

  k          toggle up
  j          toggle down
  Enter      push bit, or convert when ten bits are entered
  Backspace  drop the last bit
  r          reset
  q          quit`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Run(cmd.Context())
		},
	}

	if err := fang.Execute(context.Background(), rootCmd,
		fang.WithVersion("v0.1.0"),
		fang.WithErrorHandler(func(w io.Writer, _ fang.Styles, err error) {
			ui.Fail(w, err.Error())
		}),
	); err != nil {
		os.Exit(1)
	}
}
