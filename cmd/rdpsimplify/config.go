package main

import (
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/osuushi/rdp/pointio"
	"github.com/pkg/errors"
)

const defaultThreshold = 0.2

// Settings that can come from a TOML file. Command line values win over the
// file, and the file wins over the built-in defaults.
//
//	threshold = 0.5
//	debug = true
//	format = "geojson"
//	max_steps = 100000
//	output = "simplified.txt"
type Config struct {
	Threshold float64 `toml:"threshold"`
	Debug     bool    `toml:"debug"`
	Format    string  `toml:"format"`
	MaxSteps  int     `toml:"max_steps"`
	Output    string  `toml:"output"`
}

func DefaultConfig() Config {
	return Config{Threshold: defaultThreshold, Format: "text"}
}

// Load a config file over the defaults. Keys missing from the file keep their
// default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, errors.Wrapf(err, "loading config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, errors.Errorf("unknown config keys in %s: %v", path, undecoded)
	}
	return cfg, errors.Wrapf(cfg.Validate(), "loading config %s", path)
}

// Reject values that would only fail once output has started. The format
// flag is checked by the command line parser, but the file is not.
func (cfg Config) Validate() error {
	for _, format := range pointio.Formats {
		if cfg.Format == format {
			return nil
		}
	}
	return errors.Errorf("unknown output format %q, expected one of %v", cfg.Format, pointio.Formats)
}

// Positional arguments as given on the command line, empty when absent.
type Args struct {
	Input     string
	Threshold string
	Debug     string
	Output    string
	Format    string
	MaxSteps  int
}

// Merge command line values over cfg. An unparsable threshold falls back to
// the configured one and is reported through warn.
func (cfg Config) Merge(args Args, warn func(format string, v ...interface{})) Config {
	if args.Threshold != "" {
		threshold, err := strconv.ParseFloat(strings.TrimSpace(args.Threshold), 64)
		if err != nil {
			warn("cannot parse threshold %q, using %v", args.Threshold, cfg.Threshold)
		} else {
			cfg.Threshold = threshold
		}
	}
	if args.Debug != "" {
		n, err := strconv.Atoi(strings.TrimSpace(args.Debug))
		if err != nil {
			// Accept true/false as well as the 0/1 form.
			b, berr := strconv.ParseBool(args.Debug)
			if berr != nil {
				warn("cannot parse debug flag %q, ignoring", args.Debug)
			} else {
				cfg.Debug = b
			}
		} else {
			cfg.Debug = n != 0
		}
	}
	if args.Format != "" {
		cfg.Format = args.Format
	}
	if args.MaxSteps > 0 {
		cfg.MaxSteps = args.MaxSteps
	}
	if args.Output != "" {
		cfg.Output = args.Output
	}
	if cfg.Output == "" {
		cfg.Output = OutputPath(args.Input)
	}
	return cfg
}

// tmp.out for the synthetic curve, <input>_out otherwise.
func OutputPath(input string) string {
	if input == "" {
		return "tmp.out"
	}
	return input + "_out"
}
