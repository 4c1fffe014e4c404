package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"cppcheck-junit/internal/cppcheck"
	"cppcheck-junit/internal/diagfmt"
	"cppcheck-junit/internal/logging"
	"cppcheck-junit/internal/observ"
)

type inspectOptions struct {
	format string
	output string
	notes  bool
	width  int
}

func (a *app) inspectCmd() *cobra.Command {
	var opts inspectOptions
	cmd := &cobra.Command{
		Use:   "inspect [flags] <cppcheck.xml|->",
		Short: "Parse a Cppcheck report and print its diagnostics",
		Long: `inspect parses a Cppcheck XML version 2 report and prints the grouped
diagnostics without writing a JUnit file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInspect(args[0], opts)
		},
	}
	cmd.Flags().StringVar(&opts.format, "format", "pretty", "output format (short|pretty|json|msgpack)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write to file instead of stdout")
	cmd.Flags().BoolVar(&opts.notes, "notes", false, "include per-location info lines")
	cmd.Flags().IntVar(&opts.width, "width", 0, "truncate pretty messages to this many columns (0 = no limit)")
	return cmd
}

func (a *app) runInspect(input string, opts inspectOptions) error {
	format, err := diagfmt.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	if opts.width < 0 {
		return fmt.Errorf("invalid --width %d: must not be negative", opts.width)
	}

	timer := observ.NewTimer()
	idx := timer.Begin("parse")
	res, err := a.readInput(input)
	timer.End(idx, "")
	if err != nil {
		return err
	}
	logging.Logger.Debugw("parsed report", "input", input, "groups", res.Groups.Len(), "diagnostics", res.Groups.Total())

	out := a.stdout
	toFile := opts.output != ""
	if !toFile && format.Binary() && isTerminal(out) {
		return errors.New("refusing to write msgpack to a terminal, use --output")
	}

	idx = timer.Begin("render")
	if toFile {
		err = writeFileAtomic(opts.output, func(w io.Writer) error {
			return render(w, res, format, opts, false)
		})
	} else {
		err = render(out, res, format, opts, a.useColor)
	}
	timer.End(idx, format.String())
	if a.timings {
		fmt.Fprint(a.stderr, timer.Summary())
	}
	return err
}

func render(w io.Writer, res *cppcheck.Result, format diagfmt.Format, opts inspectOptions, useColor bool) error {
	switch format {
	case diagfmt.FormatShort:
		return diagfmt.Short(w, res, diagfmt.ShortOpts{IncludeNotes: opts.notes})
	case diagfmt.FormatJSON:
		return diagfmt.JSON(w, res)
	case diagfmt.FormatMsgpack:
		return diagfmt.Msgpack(w, res)
	default:
		return diagfmt.Pretty(w, res, diagfmt.PrettyOpts{Color: useColor, Width: opts.width, ShowNotes: opts.notes})
	}
}

// writeFileAtomic renders into a temporary file next to path and renames it
// into place only when fn succeeds.
func writeFileAtomic(path string, fn func(io.Writer) error) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".inspect-*")
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	bw := bufio.NewWriter(tmp)
	if err = fn(bw); err != nil {
		return err
	}
	if err = bw.Flush(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
