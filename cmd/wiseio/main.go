package main

import (
	"os"

	"github.com/gobeaver/wiseio"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "wiseio",
		Short:        "Positional file I/O from the command line",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newLinesCmd())
	rootCmd.AddCommand(newCatCmd())
	rootCmd.AddCommand(newSizeCmd())
	rootCmd.AddCommand(newAppendCmd())
	rootCmd.AddCommand(newChecksumCmd())

	return rootCmd
}

// openStream opens path through the default Opener, configured from
// BEAVER_WISEIO_* environment variables.
func openStream(path string, mode wiseio.OpenMode) (*wiseio.Stream, error) {
	return wiseio.CreateStream(path, mode)
}
