package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cppcheck-junit/internal/config"
	"cppcheck-junit/internal/cppcheck"
	"cppcheck-junit/internal/logging"
	"cppcheck-junit/internal/observ"
	"cppcheck-junit/internal/report"
)

// convertOptions is the merged view of config file, flags and arguments.
type convertOptions struct {
	input         string
	output        string
	errorExitCode int
	report        report.Options
}

func (a *app) runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	opts, err := a.resolveConvertOptions(cmd, cfg, args)
	if err != nil {
		return err
	}

	timer := observ.NewTimer()
	found, err := a.convert(opts, timer)
	if a.timings {
		fmt.Fprint(a.stderr, timer.Summary())
	}
	if err != nil {
		return err
	}

	if found > 0 {
		a.exitCode = opts.errorExitCode
		a.infof("%s: %d diagnostic(s) written to %s\n", opts.input, found, opts.output)
	} else {
		a.infof("%s: no diagnostics, success case written to %s\n", opts.input, opts.output)
	}
	return nil
}

func (a *app) loadConfig() (config.Config, error) {
	cfg, err := config.Load(a.configPath, ".")
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.Path != "" {
		logging.Logger.Debugw("loaded config", "path", cfg.Path)
	}
	return cfg, nil
}

// resolveConvertOptions applies config values first, then flags and
// positional arguments on top.
func (a *app) resolveConvertOptions(cmd *cobra.Command, cfg config.Config, args []string) (convertOptions, error) {
	opts := convertOptions{
		input:         args[0],
		output:        args[1],
		errorExitCode: cfg.ErrorExitCode,
		report: report.Options{
			SuiteName:       cfg.SuiteName,
			SuccessName:     cfg.SuccessName,
			UnnamedCaseName: cfg.UnnamedCaseName,
			ErrorClassname:  cfg.ErrorClassname,
			Hostname:        cfg.Hostname,
			Timestamp:       a.now(),
		},
	}
	if len(args) == 3 {
		code, err := parseExitCodeArg(args[2])
		if err != nil {
			return convertOptions{}, err
		}
		opts.errorExitCode = code
	}

	asFailures := cfg.AsFailures
	if cmd.Flags().Changed("as-failures") {
		asFailures = a.asFailures
	}
	if asFailures {
		opts.report.Kind = report.KindFailure
	}

	if cmd.Flags().Changed("hostname") {
		opts.report.Hostname = a.hostname
	}
	if opts.report.Hostname == "" {
		host, err := a.hostFunc()
		if err != nil {
			logging.Logger.Warnw("cannot determine hostname", "error", err)
		}
		opts.report.Hostname = host
	}
	return opts, nil
}

// stdinPath selects standard input instead of a report file.
const stdinPath = "-"

// readInput parses the report at path, or standard input for "-".
func (a *app) readInput(path string) (*cppcheck.Result, error) {
	if path == stdinPath {
		return cppcheck.Parse(a.stdin)
	}
	return cppcheck.ParseFile(path)
}

// convert parses, builds and writes one report and returns the number of
// diagnostics found. The output file is only created once the whole document
// has been encoded.
func (a *app) convert(opts convertOptions, timer *observ.Timer) (int, error) {
	idx := timer.Begin("parse")
	res, err := a.readInput(opts.input)
	if err != nil {
		timer.End(idx, "failed")
		return 0, err
	}
	timer.End(idx, fmt.Sprintf("%d file(s), %d diagnostic(s)", res.Groups.Len(), res.Groups.Total()))
	logging.Logger.Debugw("parsed report",
		"input", opts.input,
		"groups", res.Groups.Len(),
		"files", res.Groups.Files(),
		"diagnostics", res.Groups.Total(),
		"cppcheck_version", res.CppcheckVersion,
	)

	idx = timer.Begin("build")
	suite := report.Build(res.Groups, opts.report)
	data, err := report.MarshalXML(suite)
	if err != nil {
		timer.End(idx, "failed")
		return 0, fmt.Errorf("failed to encode report: %w", err)
	}
	timer.End(idx, fmt.Sprintf("%d case(s), %s", suite.Tests(), suite.Kind))
	logging.Logger.Debugw("built suite", "tests", suite.Tests(), "errors", suite.Errors(), "failures", suite.Failures())

	idx = timer.Begin("write")
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		timer.End(idx, "failed")
		return 0, fmt.Errorf("failed to write %s: %w", opts.output, err)
	}
	timer.End(idx, fmt.Sprintf("%d bytes", len(data)))

	return res.Groups.Total(), nil
}
