package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/coregx/strcount"
	"github.com/coregx/strcount/finder"
	"github.com/coregx/strcount/stream"
)

// Exit codes.
const (
	ExitOK         = 0
	ExitArgument   = 1
	ExitProcessing = 2
)

type options struct {
	strategy  string
	blockSize int
	finder    string
	layout    string
	verbose   bool
}

func newFlagSet(opts *options) *flag.FlagSet {
	def := strcount.DefaultConfig()
	flags := flag.NewFlagSet("strcount", flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.StringVar(&opts.strategy, "strategy", "auto", "counting strategy: auto | bitparallel | blockscan")
	flags.IntVar(&opts.blockSize, "block-size", def.BlockSize, "bytes read from the file at a time")
	flags.StringVar(&opts.finder, "finder", def.Finder.String(), "block scan search: auto | stdlib | memmem | memchr | ahocorasick")
	flags.StringVar(&opts.layout, "layout", "carry", "block scan buffer: carry | double")
	flags.BoolVar(&opts.verbose, "v", false, "log strategy selection to stderr")
	return flags
}

func usage(out io.Writer, flags *flag.FlagSet) {
	_, _ = fmt.Fprintln(out, "Usage: strcount [flags] <file>")
	_, _ = fmt.Fprintln(out, "\nCounts the occurrences of the file name, without extension, in the file.")
	_, _ = fmt.Fprintln(out, "\nFlags:")
	flags.SetOutput(out)
	flags.PrintDefaults()
	flags.SetOutput(io.Discard)
}

// Run executes the command with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// RunContext parses argv, counts and writes the result line or a failure
// message to stdout. It returns the process exit code.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	var opts options
	flags := newFlagSet(&opts)
	if err := flags.Parse(argv); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			usage(stdout, flags)
			return ExitOK
		}
		_, _ = fmt.Fprintln(stderr, err)
		usage(stderr, flags)
		return ExitArgument
	}

	config, err := opts.config()
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitArgument
	}

	target, err := ProcessArgs(flags.Args())
	if err != nil {
		_, _ = fmt.Fprintln(stdout, messageOf(err))
		return ExitArgument
	}

	n, err := count(ctx, target, config, stderr, opts.verbose)
	if err != nil {
		_, _ = fmt.Fprintln(stdout, processingMessage(err))
		Logf(stderr, opts.verbose, "%v", err)
		return ExitProcessing
	}
	_, _ = fmt.Fprintln(stdout, Successful(n, target.Pattern, target.Name))
	return ExitOK
}

func (o options) config() (strcount.Config, error) {
	config := strcount.DefaultConfig()
	config.BlockSize = o.blockSize

	var err error
	if config.Strategy, err = strcount.ParseStrategy(o.strategy); err != nil {
		return config, err
	}
	if config.Finder, err = finder.ParseKind(o.finder); err != nil {
		return config, err
	}
	switch o.layout {
	case "carry":
		config.Layout = stream.CarryCopy
	case "double":
		config.Layout = stream.DoubleBuffer
	default:
		return config, fmt.Errorf("unknown layout %q", o.layout)
	}
	return config, config.Validate()
}

func count(ctx context.Context, t Target, config strcount.Config, stderr io.Writer, verbose bool) (uint64, error) {
	pattern := []byte(t.Pattern)
	s := strcount.SelectStrategy(pattern, config)
	Logf(stderr, verbose, "pattern %q, strategy %v: %s", t.Pattern, s, strcount.StrategyReason(s, pattern, config))

	c, err := strcount.New(t.Pattern, config)
	if err != nil {
		return 0, err
	}

	f, err := os.Open(t.Path)
	if err != nil {
		return 0, err
	}
	defer func() { _ = f.Close() }()

	return c.CountContext(ctx, f)
}

func messageOf(err error) string {
	var aerr *ArgumentError
	if errors.As(err, &aerr) {
		return aerr.Message
	}
	return MsgUnexpected
}

func processingMessage(err error) string {
	var cerr *strcount.ConfigError
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return MsgUnexpectedNoFile
	case errors.Is(err, fs.ErrPermission):
		return MsgUnexpectedNoAccess
	case errors.As(err, &cerr), errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return MsgUnknownError
	default:
		return MsgProblemReading
	}
}
