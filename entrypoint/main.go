package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/kelseyhightower/envconfig"

	"github.com/spyysalo/tweak-conll/logger"
	"github.com/spyysalo/tweak-conll/pipeline"
	"github.com/spyysalo/tweak-conll/types"
)

type Config struct {
	ConfigPath string `envconfig:"TWEAKCONLL_CONFIG_PATH"`
}

type Options struct {
	ConfigPath     string
	TokenField     int
	TagField       int
	ExactNextBound bool
	Data           []string

	// names of the flags given on the command line
	set map[string]bool
}

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	logger.SetupLogging()
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout io.Writer, stderr io.Writer) int {
	mainLogger := logger.NewLogger("Main")
	errLogger := mainLogger.With().Caller().Logger()

	var config Config
	if err := envconfig.Process("", &config); err != nil {
		errLogger.Err(err).Msg("Failed to read environment")
		return exitError
	}

	opts, err := parseArgs(args, config, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	cfg, err := opts.configuration()
	if err != nil {
		errLogger.Err(err).Str("config_path", opts.ConfigPath).Msg("Failed to load configuration")
		return exitError
	}

	ppln, err := pipeline.New(cfg)
	if err != nil {
		errLogger.Err(err).Msg("Failed to start pipeline")
		return exitError
	}

	var total pipeline.Stats
	for _, path := range opts.Data {
		stats, err := ppln(pipeline.Request{Path: path, Out: stdout})
		total.Add(stats)
		if err != nil {
			errLogger.Err(err).Str("file", path).Msg("Failed to tweak file")
			return exitError
		}
	}

	mainLogger.Info().
		Int("files", len(opts.Data)).
		Interface("stats", total).
		Msg("Done")
	return exitOK
}

func parseArgs(args []string, config Config, stderr io.Writer) (Options, error) {
	defaults := types.DefaultConfiguration()
	opts := Options{set: map[string]bool{}}

	fs := flag.NewFlagSet("tweak-conll", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: tweak-conll [OPTIONS] DATA [DATA...]\n\n")
		fmt.Fprintf(fs.Output(), "Moves quote tokens out of BIO spans in CoNLL-formatted data.\n\n")
		fs.PrintDefaults()
	}

	const (
		tokenHelp  = "index of token text field (1-based)"
		indexHelp  = "index of field to tweak (1-based)"
		configHelp = "YAML profile with token, index, quotes and exact_next_bound (env TWEAKCONLL_CONFIG_PATH)"
	)
	fs.IntVar(&opts.TokenField, "t", defaults.TokenField, tokenHelp)
	fs.IntVar(&opts.TokenField, "token", defaults.TokenField, tokenHelp)
	fs.IntVar(&opts.TagField, "i", defaults.TagField, indexHelp)
	fs.IntVar(&opts.TagField, "index", defaults.TagField, indexHelp)
	fs.StringVar(&opts.ConfigPath, "c", config.ConfigPath, configHelp)
	fs.StringVar(&opts.ConfigPath, "config", config.ConfigPath, configHelp)
	fs.BoolVar(&opts.ExactNextBound, "exact-next-bound", defaults.ExactNextBound,
		"let the token before the last one see the last tag as its next neighbour")

	// flags may follow positional arguments
	rest := args
	for {
		if err := fs.Parse(rest); err != nil {
			return Options{}, err
		}
		if fs.NArg() == 0 {
			break
		}
		consumed := len(rest) - fs.NArg()
		if consumed > 0 && rest[consumed-1] == "--" {
			opts.Data = append(opts.Data, fs.Args()...)
			break
		}
		opts.Data = append(opts.Data, fs.Arg(0))
		rest = fs.Args()[1:]
	}

	fs.Visit(func(f *flag.Flag) {
		opts.set[f.Name] = true
	})

	if len(opts.Data) == 0 {
		fmt.Fprintln(stderr, "tweak-conll: at least one DATA file is required")
		fs.Usage()
		return Options{}, errors.New("missing data")
	}

	return opts, nil
}

// configuration layers the command line over the profile over the defaults.
func (opts Options) configuration() (types.Configuration, error) {
	cfg := types.DefaultConfiguration()
	if opts.ConfigPath != "" {
		var err error
		cfg, err = types.LoadConfiguration(opts.ConfigPath)
		if err != nil {
			return types.Configuration{}, err
		}
	}

	if opts.set["t"] || opts.set["token"] {
		cfg.TokenField = opts.TokenField
	}
	if opts.set["i"] || opts.set["index"] {
		cfg.TagField = opts.TagField
	}
	if opts.set["exact-next-bound"] {
		cfg.ExactNextBound = opts.ExactNextBound
	}

	return cfg, cfg.Validate()
}
