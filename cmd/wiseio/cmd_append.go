package main

import (
	"strings"

	"github.com/gobeaver/wiseio"
	"github.com/spf13/cobra"
)

func newAppendCmd() *cobra.Command {
	var noNewline bool

	cmd := &cobra.Command{
		Use:   "append FILE TEXT...",
		Short: "Append text to a file, creating it if needed",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStream(args[0], wiseio.ModeAppend)
			if err != nil {
				return err
			}
			defer s.Close()

			text := strings.Join(args[1:], " ")
			if !noNewline {
				text += "\n"
			}
			_, err = s.AWriteString(text)
			return err
		},
	}

	cmd.Flags().BoolVarP(&noNewline, "no-newline", "N", false, "do not end the text with a newline")

	return cmd
}
