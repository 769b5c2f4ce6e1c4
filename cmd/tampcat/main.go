// SPDX-License-Identifier: MIT
// Source: github.com/toxicfrazzles/tamp

// Command tampcat is a thin file-I/O front end over the tamp core: it parses
// flags and moves bytes between files and stdio. All codec logic lives in
// the tamp package; this command holds none.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/toxicfrazzles/tamp"
)

var log = logrus.New()

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "tampcat",
		Short: "Compress or decompress a file with the Tamp codec",
	}

	var verbose bool
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log parameter choices and byte counts")
	root.PersistentPreRun = func(*cobra.Command, []string) {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	}

	root.AddCommand(newCompressCmd(), newDecompressCmd())
	return root
}

func newCompressCmd() *cobra.Command {
	var window, literal int
	var dictPath string

	cmd := &cobra.Command{
		Use:   "compress [input] [output]",
		Short: "Compress input (or stdin) to output (or stdout)",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			in, out, err := openInOut(args)
			if err != nil {
				return err
			}
			defer in.Close()
			defer out.Close()

			opts := &tamp.CompressorOptions{Window: uint8(window), Literal: uint8(literal)}
			if dictPath != "" {
				dict, err := os.ReadFile(dictPath)
				if err != nil {
					return err
				}
				opts.Dictionary = dict
			}

			log.Debugf("compressing with window=%d literal=%d custom_dict=%t", window, literal, dictPath != "")

			data, err := io.ReadAll(in)
			if err != nil {
				return err
			}
			compressed, err := tamp.Compress(data, opts)
			if err != nil {
				return err
			}
			log.Debugf("wrote %d compressed bytes from %d input bytes", len(compressed), len(data))
			_, err = out.Write(compressed)
			return err
		},
	}

	cmd.Flags().IntVar(&window, "window", 10, "window parameter W, in [8,15]")
	cmd.Flags().IntVar(&literal, "literal", 8, "literal parameter L, in [5,8]")
	cmd.Flags().StringVar(&dictPath, "dict", "", "path to a custom dictionary of length 1<<window")

	return cmd
}

func newDecompressCmd() *cobra.Command {
	var dictPath string

	cmd := &cobra.Command{
		Use:   "decompress [input] [output]",
		Short: "Decompress input (or stdin) to output (or stdout)",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			in, out, err := openInOut(args)
			if err != nil {
				return err
			}
			defer in.Close()
			defer out.Close()

			opts := tamp.DefaultDecompressorOptions()
			if dictPath != "" {
				dict, err := os.ReadFile(dictPath)
				if err != nil {
					return err
				}
				opts.Dictionary = dict
			}

			data, err := io.ReadAll(in)
			if err != nil {
				return err
			}
			decompressed, err := tamp.Decompress(data, opts)
			if err != nil {
				return err
			}
			log.Debugf("wrote %d decompressed bytes from %d input bytes", len(decompressed), len(data))
			_, err = out.Write(decompressed)
			return err
		},
	}

	cmd.Flags().StringVar(&dictPath, "dict", "", "path to the custom dictionary used at compression time")

	return cmd
}

func openInOut(args []string) (io.ReadCloser, io.WriteCloser, error) {
	in := io.NopCloser(os.Stdin)
	out := nopWriteCloser{os.Stdout}

	if len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, nil, err
		}
		in = f
	}
	if len(args) > 1 && args[1] != "-" {
		f, err := os.Create(args[1])
		if err != nil {
			return nil, nil, err
		}
		out = nopWriteCloser{f}
	}
	return in, out, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
