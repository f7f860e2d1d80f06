// Command bitset runs bitset scripts against the binding registry.
//
//	bitset run script.txt
//	echo "a = new\nset a 3" | bitset --profile basic run
//	bitset ops
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/hupe1980/bitset/binding"
	"github.com/hupe1980/bitset/internal/script"
)

var (
	profileFlag = &cli.StringFlag{
		Name:    "profile",
		Value:   "full",
		Usage:   "Operation profile to expose (full or basic)",
		EnvVars: []string{"BITSET_PROFILE"},
	}
	logLevelFlag = &cli.StringFlag{
		Name:    "log-level",
		Value:   "warn",
		Usage:   "Minimum log level (debug, info, warn, error)",
		EnvVars: []string{"BITSET_LOG_LEVEL"},
	}
	logFormatFlag = &cli.StringFlag{
		Name:    "log-format",
		Value:   "text",
		Usage:   "Log output format (text or json)",
		EnvVars: []string{"BITSET_LOG_FORMAT"},
	}
	statsFlag = &cli.BoolFlag{
		Name:  "stats",
		Usage: "Print call statistics to stderr when the script finishes",
	}
)

func main() {
	app := newApp(os.Stdin)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp(stdin io.Reader) *cli.App {
	return &cli.App{
		Name:  "bitset",
		Usage: "evaluate bitset scripts",
		Flags: []cli.Flag{
			profileFlag,
			logLevelFlag,
			logFormatFlag,
			statsFlag,
		},
		Commands: []*cli.Command{
			{
				Name:      "run",
				Usage:     "run a script file, or stdin when no file is given",
				ArgsUsage: "[file]",
				Action: func(cliCtx *cli.Context) error {
					return runScript(cliCtx, stdin)
				},
			},
			{
				Name:   "ops",
				Usage:  "list the operations of the selected profile",
				Action: listOps,
			},
		},
	}
}

func runScript(cliCtx *cli.Context, stdin io.Reader) error {
	metrics := &binding.BasicMetricsCollector{}
	reg, err := newRegistry(cliCtx, metrics)
	if err != nil {
		return err
	}

	src := stdin
	name := "<stdin>"
	if path := cliCtx.Args().First(); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		src, name = f, path
	}

	runErr := script.New(reg, cliCtx.App.Writer).Run(cliCtx.Context, src)

	if cliCtx.Bool(statsFlag.Name) {
		stats := metrics.GetStats()
		fmt.Fprintf(cliCtx.App.ErrWriter, "calls=%d errors=%d mutating=%d avg=%s\n",
			stats.CallCount, stats.CallErrors, stats.MutatingCalls, time.Duration(stats.CallAvgNanos))
	}

	if runErr != nil {
		return fmt.Errorf("%s: %w", name, runErr)
	}
	return nil
}

func listOps(cliCtx *cli.Context) error {
	reg, err := newRegistry(cliCtx, nil)
	if err != nil {
		return err
	}

	w := cliCtx.App.Writer
	for _, name := range reg.Names() {
		fmt.Fprintln(w, name)
	}
	if hooks := reg.Operators(); len(hooks) > 0 {
		fmt.Fprintf(w, "operators: %s\n", strings.Join(hooks, " "))
	}
	return nil
}

func newRegistry(cliCtx *cli.Context, metrics binding.MetricsCollector) (*binding.Registry, error) {
	profile, err := binding.ParseProfile(cliCtx.String(profileFlag.Name))
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(cliCtx.App.ErrWriter, cliCtx.String(logLevelFlag.Name), cliCtx.String(logFormatFlag.Name))
	if err != nil {
		return nil, err
	}

	return binding.New(
		binding.WithProfile(profile),
		binding.WithLogger(logger),
		binding.WithMetricsCollector(metrics),
	), nil
}

func newLogger(w io.Writer, level, format string) (*binding.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	switch format {
	case "text":
		return binding.NewTextLogger(w, lvl), nil
	case "json":
		return binding.NewJSONLogger(w, lvl), nil
	default:
		return nil, fmt.Errorf("unknown log format %q (want text or json)", format)
	}
}
