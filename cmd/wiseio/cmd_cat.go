package main

import (
	"fmt"

	"github.com/gobeaver/wiseio"
	"github.com/spf13/cobra"
)

func newCatCmd() *cobra.Command {
	var (
		offset int64
		length int
	)

	cmd := &cobra.Command{
		Use:   "cat FILE",
		Short: "Print a file, or a byte range of it",
		Long: `Print a file to stdout.

With --offset and --length only that byte range is read. A negative length
means up to the end of the file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if offset < 0 {
				return fmt.Errorf("offset must not be negative")
			}

			s, err := openStream(args[0], wiseio.ModeRead)
			if err != nil {
				return err
			}
			defer s.Close()

			var data []byte
			if offset == 0 && length < 0 {
				data, err = s.ReadAll()
			} else {
				b := wiseio.NewByteBuffer(0)
				if length < 0 {
					size, serr := s.Size()
					if serr != nil {
						return serr
					}
					length = int(max(size-offset, 0))
				}
				b.Resize(length)
				if length > 0 {
					_, err = s.CustomReadBuffer(b, offset)
				}
				data = b.Bytes()
			}
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().Int64VarP(&offset, "offset", "o", 0, "byte offset to start reading at")
	cmd.Flags().IntVarP(&length, "length", "l", -1, "number of bytes to read")

	return cmd
}
