package main

import (
	"fmt"

	"github.com/gobeaver/wiseio"
	"github.com/spf13/cobra"
)

func newLinesCmd() *cobra.Command {
	var (
		ignoreComments bool
		ignoreBlank    bool
		number         bool
	)

	cmd := &cobra.Command{
		Use:   "lines FILE",
		Short: "Print the logical lines of a text file",
		Long: `Print a text file line by line.

With --ignore-comments, lines that hold only a '#' comment are dropped and
trailing comments are cut off. A '#' only starts a comment at the start of
a line or after whitespace. With --ignore-blank, empty and whitespace-only
lines are dropped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStream(args[0], wiseio.ModeRead)
			if err != nil {
				return err
			}
			defer s.Close()

			tb := wiseio.NewTextBuffer(0)
			tb.SetIgnoreComments(ignoreComments)
			tb.SetIgnoreBlank(ignoreBlank)
			if _, err := s.ReadAllBuffer(tb); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			n := 0
			for line, ok := tb.NextLine(); ok; line, ok = tb.NextLine() {
				n++
				if number {
					fmt.Fprintf(out, "%6d\t%s\n", n, line)
					continue
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&ignoreComments, "ignore-comments", "c", false, "drop comments")
	cmd.Flags().BoolVarP(&ignoreBlank, "ignore-blank", "b", false, "drop blank lines")
	cmd.Flags().BoolVarP(&number, "number", "n", false, "number the printed lines")

	return cmd
}
