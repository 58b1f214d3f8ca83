package main

import (
	"fmt"

	"github.com/gobeaver/wiseio"
	"github.com/spf13/cobra"
)

func newChecksumCmd() *cobra.Command {
	var algorithm string

	cmd := &cobra.Command{
		Use:   "checksum FILE...",
		Short: "Print checksums of files",
		Long: `Print one checksum per file, in the style of sha256sum.

Supported algorithms: md5, sha1, sha256, sha512, crc32, xxhash.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			alg := wiseio.ChecksumAlgorithm(algorithm)
			if _, err := wiseio.NewHasher(alg); err != nil {
				return err
			}

			for _, path := range args {
				sum, err := checksumFile(path, alg)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", sum, path)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", string(wiseio.ChecksumSHA256), "checksum algorithm")

	return cmd
}

func checksumFile(path string, alg wiseio.ChecksumAlgorithm) (string, error) {
	s, err := openStream(path, wiseio.ModeRead)
	if err != nil {
		return "", err
	}
	defer s.Close()
	return s.Checksum(alg)
}
