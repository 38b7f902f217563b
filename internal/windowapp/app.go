// internal/windowapp/app.go
package windowapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"fastatools/internal/fasta"
	"fastatools/internal/output"
	"fastatools/internal/version"
	"fastatools/internal/window"
	"fastatools/internal/windowcli"
	"fastatools/internal/writers"
)

// RunContext parses argv, then streams each input record's overlapping
// windows as FASTA to stdout, dropping windows whose N percentage is at
// or above the threshold. Records are processed one at a time; output
// for a record is written before the next record is read.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := windowcli.NewFlagSet("slidingwindow")
	fs.SetOutput(io.Discard)

	opts, err := windowcli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			if e := outw.Flush(); writers.IsBrokenPipe(e) {
				return 0
			} else if e != nil {
				_, _ = fmt.Fprintln(stderr, e)
				return 3
			}
			return 0
		}
		_, _ = fmt.Fprintln(outw, err)
		fs.SetOutput(outw)
		fs.Usage()
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "slidingwindow version %s\n", version.Version)
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	threshold := float64(opts.NThreshold)
	err = fasta.StreamRecordsPathCtx(ctx, opts.File, func(rec fasta.Record) error {
		return window.ForEach(rec.Seq, opts.Width, opts.Overlap, func(win window.Window) error {
			if window.NPercent(win.Seq) >= threshold {
				return nil
			}
			desc := output.WindowDescriptor(rec.Descriptor, win.Start, opts.Width, opts.Overlap)
			return output.WriteRecord(outw, desc, win.Seq)
		})
	})
	if err != nil {
		if writers.IsBrokenPipe(err) {
			return 0
		}
		// Input-access failures share the stdout reporting contract
		// with validation errors.
		_, _ = fmt.Fprintln(outw, err)
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 2
	}

	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
