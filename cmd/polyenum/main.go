// Command polyenum generates sub-enums, conversions and views from base enums
// declared in files with the "//go:build polyenum" constraint.
//
//	polyenum [flags] [packages]           generate polyenum_gen.go
//	polyenum generate [flags] [packages]  same as above
//	polyenum plan [flags] [packages]      print the planned families as YAML
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	polyenuminternal "github.com/jesmaz/poly-enum/internal/polyenum"
)

var Version = "dev"

func init() {
	polyenuminternal.Version = Version
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := &app{log: zerolog.Nop()}
	if err := app.command().ExecuteContext(ctx); err != nil {
		stop()
		app.fail(err)
		os.Exit(1)
	}
}

// app holds the flags and the state resolved before a subcommand runs.
type app struct {
	tags    string
	tests   bool
	output  string
	color   string
	verbose bool

	wd  string
	log zerolog.Logger
}

func (a *app) command() *cobra.Command {
	root := &cobra.Command{
		Use:               "polyenum [packages]",
		Short:             "Generate sub-enums of tagged base enums",
		Version:           Version,
		Args:              cobra.ArbitraryArgs,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE:              a.generate,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.tags, "tags", "b", "", "comma-separated build tags")
	flags.BoolVarP(&a.tests, "tests", "t", false, "include tests")
	flags.StringVarP(&a.output, "output", "o", "polyenum_gen.go", "output file name")
	flags.StringVarP(&a.color, "color", "c", "auto", "colorize (auto|always|never)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log progress to stderr")

	root.AddCommand(&cobra.Command{
		Use:   "generate [packages]",
		Short: "Generate code in each package (default)",
		Args:  cobra.ArbitraryArgs,
		RunE:  a.generate,
	})
	root.AddCommand(&cobra.Command{
		Use:   "plan [packages]",
		Short: "Print the planned sub-enums and conversions as YAML",
		Args:  cobra.ArbitraryArgs,
		RunE:  a.plan,
	})
	return root
}

// setup applies polyenum.toml under the flags which are not set explicitly.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	a.wd = wd

	path, ok, err := findConfig(wd)
	if err != nil {
		return err
	}
	if ok {
		cfg, err := loadConfig(path)
		if err != nil {
			return err
		}
		cfg.apply(a, cmd.Flags().Changed)
	}

	if err := a.setupColor(); err != nil {
		return err
	}

	if a.verbose {
		a.log = zerolog.New(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.TimeOnly,
		}).With().Timestamp().Logger()
	}
	if ok {
		a.log.Info().Str("path", path).Msg("config loaded")
	}
	return nil
}

func (a *app) setupColor() error {
	switch a.color {
	case "auto":
		color.NoColor = !isatty(os.Stderr)
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	default:
		return fmt.Errorf("invalid --color value: %s", a.color)
	}
	return nil
}

func (a *app) generate(cmd *cobra.Command, args []string) error {
	start := time.Now()
	a.log.Info().Strs("patterns", args).Str("tags", a.tags).Bool("tests", a.tests).Msg("generating")

	outs, err := polyenuminternal.Main(cmd.Context(), a.wd, os.Environ(), a.tags, a.tests, a.output, args)
	if err != nil {
		return err
	}

	for out, code := range outs {
		if err := os.WriteFile(out, code, 0o644); err != nil {
			return err
		}

		if relOut, err := filepath.Rel(a.wd, out); err == nil {
			out = relOut
		}
		a.log.Info().Str("file", out).Int("bytes", len(code)).Msg("written")
		fmt.Fprintln(cmd.OutOrStdout(), "Generated:", out)
	}

	a.log.Info().Int("files", len(outs)).Dur("took", time.Since(start)).Msg("done")
	return nil
}

func (a *app) plan(cmd *cobra.Command, args []string) error {
	a.log.Info().Strs("patterns", args).Msg("planning")

	reports, err := polyenuminternal.Report(cmd.Context(), a.wd, os.Environ(), a.tags, a.tests, args)
	if err != nil {
		return err
	}

	out, err := yaml.Marshal(reports)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}

// fail prints the error on stderr.
func (a *app) fail(err error) {
	fmt.Fprintln(os.Stderr, colorize(err.Error()))
}
