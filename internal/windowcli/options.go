// internal/windowcli/options.go
package windowcli

import (
	"errors"
	"flag"
	"fmt"

	"fastatools/internal/version"
)

// Options holds all slidingwindow CLI flags.
type Options struct {
	File       string
	Width      int
	Overlap    int
	NThreshold int

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: overlap-window FASTA chunker with N-content filtering

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
// All validation runs here, before any record is processed.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.File, "f", "", "input FASTA file, '-' = stdin, .gz accepted [*]")
	fs.IntVar(&opt.Width, "w", 100, "sliding window width [100]")
	fs.IntVar(&opt.Overlap, "o", 30, "window overlap [30]")
	fs.IntVar(&opt.NThreshold, "n", 50, "drop windows whose N percentage is at or above this [50]")

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
	if opt.File == "" {
		return opt, errors.New("-f input FASTA file is required")
	}
	if opt.Overlap < 0 {
		return opt, errors.New("-o overlap must be ≥ 0")
	}
	if opt.Width <= opt.Overlap {
		return opt, errors.New("-w window width must be greater than -o overlap")
	}
	if opt.NThreshold < 0 || opt.NThreshold > 100 {
		return opt, errors.New("-n threshold must be within 0..100")
	}
	return opt, nil
}
