// Command jsonstream drives the jsonstream.Parser over a file or
// stdin, optionally gzip-decompressed, in caller-chosen chunk sizes.
// It exists to make the "input split at any byte boundary" property
// observable from the command line: the same document parses
// identically no matter what --chunk is set to.
package main

import (
	"fmt"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/spf13/cobra"

	"github.com/mcvoid/jsonstream"
	"github.com/mcvoid/jsonstream/jsonvalue"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		gzipped bool
		chunk   int
		events  bool
		maxDep  int
	)

	cmd := &cobra.Command{
		Use:   "jsonstream [file]",
		Short: "Parse a JSON document incrementally and print its structure",
		Long: "jsonstream reads a JSON document (from a file argument, or stdin if " +
			"none is given), feeds it through the streaming parser in --chunk-sized " +
			"pieces, and prints either the reconstructed value tree or the raw " +
			"sequence of structural events.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := os.Stdin
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			var seq jsonstream.BufferSequence
			if gzipped {
				zr, err := gzip.NewReader(in)
				if err != nil {
					return fmt.Errorf("jsonstream: opening gzip stream: %w", err)
				}
				defer zr.Close()
				seq = jsonstream.ReaderSequence(zr, chunk)
			} else {
				seq = jsonstream.ReaderSequence(in, chunk)
			}

			var opts []jsonstream.Option
			if maxDep > 0 {
				opts = append(opts, jsonstream.WithMaxDepth(maxDep))
			}

			if events {
				rec := &eventPrinter{w: cmd.OutOrStdout()}
				p := jsonstream.New(rec, opts...)
				if err := p.WriteSequence(seq); err != nil {
					return err
				}
				return p.WriteEOF()
			}

			b := jsonvalue.NewBuilder()
			p := jsonstream.New(b, opts...)
			if err := p.WriteSequence(seq); err != nil {
				return err
			}
			if err := p.WriteEOF(); err != nil {
				return err
			}
			val, err := b.Result()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), val.String())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&gzipped, "gzip", "z", false, "decompress the input as gzip before parsing")
	cmd.Flags().IntVar(&chunk, "chunk", 4096, "bytes read per Write call (0 or less means 4096)")
	cmd.Flags().BoolVar(&events, "events", false, "print the raw structural event trace instead of the value tree")
	cmd.Flags().IntVar(&maxDep, "max-depth", 0, "maximum parser stack depth; each open object/array uses several entries (0 means unbounded)")

	return cmd
}

// eventPrinter is a jsonstream.Handler that prints one line per
// callback, used by --events to make the structural event sequence
// directly observable.
type eventPrinter struct {
	w interface {
		Write(p []byte) (int, error)
	}
}

func (e *eventPrinter) printf(format string, args ...any) error {
	_, err := fmt.Fprintf(e.w, format+"\n", args...)
	return err
}

func (e *eventPrinter) OnObjectBegin() error { return e.printf("object_begin") }
func (e *eventPrinter) OnObjectEnd() error   { return e.printf("object_end") }
func (e *eventPrinter) OnArrayBegin() error  { return e.printf("array_begin") }
func (e *eventPrinter) OnArrayEnd() error    { return e.printf("array_end") }
func (e *eventPrinter) OnStringBegin() error { return e.printf("string_begin") }
func (e *eventPrinter) OnStringPiece(p []byte) error {
	return e.printf("string_piece %q", p)
}
func (e *eventPrinter) OnStringEnd() error { return e.printf("string_end") }
func (e *eventPrinter) OnNumber(neg bool, mantissa, exp, expSign int64) error {
	return e.printf("number %v", jsonstream.Float64(neg, mantissa, exp, expSign))
}
func (e *eventPrinter) OnTrue() error  { return e.printf("true") }
func (e *eventPrinter) OnFalse() error { return e.printf("false") }
func (e *eventPrinter) OnNull() error  { return e.printf("null") }
