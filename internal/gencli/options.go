// internal/gencli/options.go
package gencli

import (
	"flag"
	"fmt"

	"fastatools/internal/gen"
	"fastatools/internal/version"
)

// Options holds all randseq CLI flags.
type Options struct {
	GCPercent int
	Length    int
	Count     int
	Seed      int64

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: random DNA sequence generator with a fixed GC percentage

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.IntVar(&opt.GCPercent, "gc", 50, "GC percentage [50]")
	fs.IntVar(&opt.Length, "l", 10, "sequence length [10]")
	fs.IntVar(&opt.Count, "n", 1, "number of sequences to generate [1]")
	fs.Int64Var(&opt.Seed, "seed", 0, "random seed (0 = time-based) [0]")

	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	// Validation
	p := gen.Params{Count: opt.Count, Length: opt.Length, GCPercent: opt.GCPercent}
	if err := p.Validate(); err != nil {
		return opt, err
	}
	return opt, nil
}
