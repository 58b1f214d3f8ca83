package main

import (
	"fmt"

	"github.com/gobeaver/wiseio"
	"github.com/spf13/cobra"
)

func newSizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "size FILE",
		Short: "Print the size of a file in bytes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStream(args[0], wiseio.ModeRead)
			if err != nil {
				return err
			}
			defer s.Close()

			size, err := s.Size()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), size)
			return nil
		},
	}
}
