// anyref-example runs the anyref demonstrations: erased references of each
// variant and generic operation bundles visited through type-erased
// handles.
//
// Settings come from an optional YAML file (--config) and are overridden by
// flags. Logs go to stderr, as console output on a terminal and JSON lines
// otherwise unless --log-format says which.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/on-the-ground/anyref/config"
	"github.com/on-the-ground/anyref/generics"
	"github.com/on-the-ground/anyref/shared/logging"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	var configPath string

	flagSet := pflag.NewFlagSet("anyref-example", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVar(&configPath, "config", "", "path to a YAML configuration file")
	flagSet.String("log-level", "", "log level (debug, info, warn, error)")
	flagSet.String("log-format", "", "log format (auto, console, json)")
	flagSet.StringSlice("examples", nil, "examples to run, in order (default: all)")
	flagSet.Uint32("signature-cache-size", 0, "signatures kept per cache generation")
	flagSet.Bool("list", false, "list the examples and exit")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(stderr, flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(stderr, flagSet)
		return nil
	}
	if rest := flagSet.Args(); len(rest) > 0 {
		return fmt.Errorf("unexpected argument: %s", rest[0])
	}
	if list, _ := flagSet.GetBool("list"); list {
		for _, e := range examples {
			fmt.Fprintf(stdout, "%-10s %s\n", e.name, e.title)
		}
		return nil
	}

	cfg, err := loadConfig(configPath, flagSet)
	if err != nil {
		return err
	}

	logger := newLogger(cfg)
	defer logging.Set(logger)()
	defer func() { _ = logger.Sync() }()
	generics.ResetSignatureCache(cfg.SignatureCache.Size)

	selected, err := selectExamples(cfg.Examples)
	if err != nil {
		return err
	}
	for i, e := range selected {
		if i > 0 {
			fmt.Fprintln(stdout)
		}
		logging.L().Info("running example", zap.String("example", e.name))
		fmt.Fprintf(stdout, "----- %s -----\n", e.title)
		e.run(stdout)
	}
	return nil
}

// flagKeys maps flags onto the configuration keys they override.
var flagKeys = map[string]string{
	"log-level":            config.LogLevel,
	"log-format":           config.LogFormat,
	"examples":             config.Examples,
	"signature-cache-size": config.SignatureCacheSize,
}

func loadConfig(path string, flagSet *pflag.FlagSet) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	var setErr error
	flagSet.Visit(func(f *pflag.Flag) {
		key, ok := flagKeys[f.Name]
		if !ok || setErr != nil {
			return
		}
		value := f.Value.String()
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			value = strings.Join(sv.GetSlice(), ",")
		}
		setErr = cfg.Set(key, value)
	})
	if setErr != nil {
		return config.Config{}, setErr
	}
	return cfg, cfg.Validate()
}

func newLogger(cfg config.Config) *zap.Logger {
	format := cfg.Log.Format
	if format == config.FormatAuto {
		format = config.FormatJSON
		if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
			format = config.FormatConsole
		}
	}
	if format == config.FormatConsole {
		return logging.NewConsole(cfg.Level())
	}
	return logging.NewJSON(cfg.Level())
}

func selectExamples(names []string) ([]example, error) {
	if len(names) == 0 {
		return examples, nil
	}
	selected := make([]example, 0, len(names))
	for _, name := range names {
		e, ok := lookupExample(name)
		if !ok {
			return nil, fmt.Errorf("unknown example %q (see --list)", name)
		}
		selected = append(selected, e)
	}
	return selected, nil
}

func printHelp(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, `anyref-example runs the anyref demonstrations.

Usage:
  anyref-example [flags]

Flags:
%s`, flagSet.FlagUsages())
}
