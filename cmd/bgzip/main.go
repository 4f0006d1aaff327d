// Command bgzip compresses a file or standard input into the BGZF
// block-gzip format, or into a single plain gzip stream.
package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/nfam/pool/buffer"
	"github.com/nfam/pool/iocopy"
	"github.com/spf13/cobra"

	"github.com/nfam/bgzf"
)

type compressFlags struct {
	level  int
	eof    bool
	plain  bool
	output string
}

func newCmdBgzip() *cobra.Command {
	flags := &compressFlags{}

	cmd := &cobra.Command{
		Use:   "bgzip [file]",
		Short: "Compress a file or stdin into the BGZF block-gzip format",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompress(flags, args)
		},
		SilenceUsage: true,
	}

	cmd.Flags().IntVarP(&flags.level, "level", "l", 9, "compression level, -1 (default effort) to 9 (best)")
	cmd.Flags().BoolVar(&flags.eof, "eof", false, "append the 28-byte EOF marker block")
	cmd.Flags().BoolVar(&flags.plain, "gzip", false, "emit a single gzip stream instead of BGZF blocks")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write output to file instead of stdout")

	return cmd
}

func runCompress(flags *compressFlags, args []string) error {
	content, err := readInput(args)
	if err != nil {
		return err
	}

	var compressed []byte
	if flags.plain {
		compressed, err = bgzf.GzipCompress(content, flags.level)
	} else {
		compressed, err = bgzf.Compress(content, flags.level, flags.eof)
	}
	if err != nil {
		return err
	}

	if flags.output != "" {
		return os.WriteFile(flags.output, compressed, 0o644)
	}
	if _, err := iocopy.Copy(os.Stdout, bytes.NewReader(compressed)); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 1 && args[0] != "-" {
		return os.ReadFile(args[0])
	}
	b := buffer.Get()
	defer b.Close()
	if _, err := iocopy.Copy(b, os.Stdin); err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return bytes.Clone(b.Bytes()), nil
}

func main() {
	if err := newCmdBgzip().Execute(); err != nil {
		os.Exit(1)
	}
}
