package main

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/arloliu/go-sml/logger"
	"github.com/arloliu/go-sml/message"
	"github.com/arloliu/go-sml/obis"
	"github.com/arloliu/go-sml/sml"
)

// choiceValue is a string flag restricted to a fixed set of values.
type choiceValue struct {
	value   string
	choices []string
}

var _ pflag.Value = (*choiceValue)(nil)

func newChoiceValue(def string, choices ...string) *choiceValue {
	return &choiceValue{value: def, choices: choices}
}

func (v *choiceValue) String() string { return v.value }

func (v *choiceValue) Set(s string) error {
	if !slices.Contains(v.choices, s) {
		return fmt.Errorf("should be one of %s", strings.Join(v.choices, ", "))
	}
	v.value = s

	return nil
}

func (v *choiceValue) Type() string { return "string" }

type rootFlags struct {
	configFile  string
	logLevel    string
	strict      bool
	maxDepth    int
	noDZG       bool
	metricsFile string
	format      *choiceValue
	input       *choiceValue
}

// app carries the state of one command invocation.
type app struct {
	flags   rootFlags
	cfg     config
	log     logger.Logger
	metrics *message.DecodeMetrics
	names   *obis.Registry
	out     io.Writer
	errOut  io.Writer
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{
		flags: rootFlags{
			format: newChoiceValue("text", "text", "json", "yaml"),
			input:  newChoiceValue("auto", "auto", "hex", "binary"),
		},
		metrics: &message.DecodeMetrics{},
		out:     out,
		errOut:  errOut,
	}

	cmd := &cobra.Command{
		Use:   "smldump",
		Short: "Decode and inspect SML (Smart Message Language) files",
		Long: `smldump decodes SML files as sent by electricity meters, raw binary or hex text,
and prints their messages or the readings of their GetList responses.`,
		SilenceUsage:       true,
		PersistentPreRunE:  a.preRun,
		PersistentPostRunE: a.postRun,
	}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.flags.configFile, "config", "", "TOML configuration file")
	flags.StringVar(&a.flags.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	flags.BoolVar(&a.flags.strict, "strict", true, "fail on the first malformed message instead of logging it")
	flags.IntVar(&a.flags.maxDepth, "max-depth", sml.DefaultMaxDepth, "maximum nesting depth of parameter trees")
	flags.BoolVar(&a.flags.noDZG, "no-dzg-workaround", false, "do not correct power readings of DZG DVS74 meters")
	flags.StringVar(&a.flags.metricsFile, "metrics-file", "", "write decode counters to this file in Prometheus text format")
	flags.VarP(a.flags.format, "format", "f", "output format: text, json, yaml")
	flags.Var(a.flags.input, "input", "input encoding: auto, hex, binary")

	cmd.AddCommand(newDecodeCmd(a), newValuesCmd(a))

	return cmd
}

func (a *app) preRun(cmd *cobra.Command, _ []string) error {
	return a.setup(cmd.Flags())
}

func (a *app) postRun(_ *cobra.Command, _ []string) error {
	if a.cfg.MetricsFile == "" {
		return nil
	}

	return writeMetrics(a.cfg.MetricsFile, a.metrics)
}

// setup builds the configuration from the config file and the flags set on
// the command line, which take precedence.
func (a *app) setup(flags *pflag.FlagSet) error {
	cfg := defaultConfig()
	if a.flags.configFile != "" {
		var err error
		if cfg, err = loadConfig(a.flags.configFile); err != nil {
			return err
		}
	}

	if flags.Changed("log-level") {
		level, err := logger.ParseLevel(a.flags.logLevel)
		if err != nil {
			return err
		}
		cfg.LogLevel = level
	}
	if flags.Changed("strict") {
		cfg.Strict = a.flags.strict
	}
	if flags.Changed("max-depth") {
		cfg.MaxDepth = a.flags.maxDepth
	}
	if flags.Changed("no-dzg-workaround") {
		cfg.DZGWorkaround = !a.flags.noDZG
	}
	if flags.Changed("metrics-file") {
		cfg.MetricsFile = a.flags.metricsFile
	}
	if flags.Changed("format") {
		cfg.Format = a.flags.format.String()
	}
	if flags.Changed("input") {
		cfg.Input = a.flags.input.String()
	}
	if err := cfg.validate(); err != nil {
		return err
	}
	a.cfg = cfg

	a.log = logger.NewSlogWithWriter(a.errOut, cfg.LogLevel, false)

	a.names = obis.NewRegistry()
	for _, info := range obis.Default().All() {
		a.names.Register(info)
	}
	for _, info := range cfg.Names {
		a.names.Register(info)
	}

	return nil
}

func (a *app) decodeOptions() []message.Option {
	bufOpts := []sml.Option{sml.WithMaxDepth(a.cfg.MaxDepth)}
	if !a.cfg.DZGWorkaround {
		bufOpts = append(bufOpts, sml.WithoutDZGWorkaround())
	}

	return []message.Option{
		message.WithLogger(a.log),
		message.WithStrict(a.cfg.Strict),
		message.WithMetrics(a.metrics),
		message.WithBufferOptions(bufOpts...),
	}
}
