// internal/randseqapp/app.go
package randseqapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"time"

	"fastatools/internal/gen"
	"fastatools/internal/gencli"
	"fastatools/internal/output"
	"fastatools/internal/version"
	"fastatools/internal/writers"
)

// RunContext parses argv, generates the requested sequences, and
// streams them as FASTA to stdout. Validation errors print to stdout
// (the tools report all failures on the result stream) and return 2.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := gencli.NewFlagSet("randseq")
	fs.SetOutput(io.Discard)

	opts, err := gencli.ParseArgs(fs, argv)
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
		_, _ = fmt.Fprintf(outw, "randseq version %s\n", version.Version)
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := gen.New(rand.New(rand.NewSource(seed)))

	params := gen.Params{Count: opts.Count, Length: opts.Length, GCPercent: opts.GCPercent}
	err = g.ForEach(params, func(i int, seq []byte) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		return output.WriteRecord(outw, output.SequenceDescriptor(i+1), seq)
	})
	if err != nil {
		if writers.IsBrokenPipe(err) {
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 3
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
