package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"cppcheck-junit/internal/config"
	"cppcheck-junit/internal/cppcheck"
	"cppcheck-junit/internal/logging"
	"cppcheck-junit/internal/prof"
	"cppcheck-junit/internal/version"
)

// exitFailure is returned for every error: unreadable, malformed or
// unsupported input, unwritable output and invalid arguments.
const exitFailure = 255

// app carries the state of one invocation. Tests build their own through
// run, so no command state leaks between them.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	colorMode  string
	quiet      bool
	debug      bool
	timings    bool
	configPath string
	cpuProfile string
	memProfile string

	asFailures bool
	hostname   string

	useColor bool
	exitCode int
	profile  *prof.Session

	now      func() time.Time
	hostFunc func() (string, error)
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the CLI with args and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{
		stdin:    stdin,
		stdout:   stdout,
		stderr:   stderr,
		now:      time.Now,
		hostFunc: os.Hostname,
	}
	return a.execute(args)
}

func (a *app) execute(args []string) int {
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	err := root.Execute()
	if stopErr := a.profile.Stop(); stopErr != nil && err == nil {
		err = stopErr
	}
	logging.Sync()
	if err != nil {
		a.printError(err)
		return exitFailure
	}
	return a.exitCode
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "cppcheck-junit [flags] <cppcheck.xml> <junit.xml> [error-exitcode]",
		Short: "Convert Cppcheck XML version 2 reports to JUnit XML",
		Long: `cppcheck-junit converts a report produced by "cppcheck --xml --xml-version=2"
into a JUnit XML test suite: one test case per source file, one error per diagnostic.
Use "-" as <cppcheck.xml> to read the report from stdin.

When at least one diagnostic is found the process exits with error-exitcode
(default 0).`,
		Version:           version.Version,
		Args:              cobra.RangeArgs(2, 3),
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE:              a.runConvert,
	}

	// Глобальные флаги
	pf := root.PersistentFlags()
	pf.StringVar(&a.colorMode, "color", "auto", "colorize output (auto|on|off)")
	pf.BoolVar(&a.quiet, "quiet", false, "suppress non-essential output")
	pf.BoolVar(&a.debug, "debug", false, "write debug logs to stderr")
	pf.BoolVar(&a.timings, "timings", false, "show timing information")
	pf.StringVar(&a.configPath, "config", "", "path to "+config.FileName+" (default: searched upwards from the working directory)")
	pf.StringVar(&a.cpuProfile, "cpuprofile", "", "write CPU profile to file")
	pf.StringVar(&a.memProfile, "memprofile", "", "write heap profile to file")

	root.Flags().BoolVar(&a.asFailures, "as-failures", false, "emit <failure> elements instead of <error>")
	root.Flags().StringVar(&a.hostname, "hostname", "", "hostname recorded in the test suite (default: this machine)")

	root.AddCommand(a.versionCmd())
	root.AddCommand(a.inspectCmd())
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	mode, err := readColorMode(a.colorMode)
	if err != nil {
		return err
	}
	a.useColor = shouldUseColor(mode, a.stderr)
	color.NoColor = !a.useColor

	logging.Init(a.debug, a.stderr)
	logging.Logger.Debugw("starting", "command", cmd.Name(), "version", version.Version, "color", a.useColor)

	a.profile, err = prof.Start(prof.Options{CPUPath: a.cpuProfile, MemPath: a.memProfile})
	return err
}

// parseExitCodeArg reads the optional positional error-exitcode.
func parseExitCodeArg(s string) (int, error) {
	code, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid error-exitcode %q: must be an integer", s)
	}
	if err := config.ValidateExitCode(code); err != nil {
		return 0, fmt.Errorf("invalid error-exitcode: %w", err)
	}
	return code, nil
}

// errorLabel names the failure class shown in front of the message.
func errorLabel(err error) string {
	var (
		notFound  *cppcheck.NotFoundError
		malformed *cppcheck.MalformedError
		ver       *cppcheck.VersionError
	)
	switch {
	case errors.As(err, &notFound):
		return "input error"
	case errors.As(err, &malformed):
		return "malformed input"
	case errors.As(err, &ver):
		return "unsupported input"
	}
	return "error"
}

func (a *app) printError(err error) {
	label := color.New(color.FgRed, color.Bold)
	if a.useColor {
		label.EnableColor()
	} else {
		label.DisableColor()
	}
	fmt.Fprintf(a.stderr, "%s %v\n", label.Sprint(errorLabel(err)+":"), err)
}

func (a *app) infof(format string, args ...any) {
	if a.quiet {
		return
	}
	fmt.Fprintf(a.stderr, format, args...)
}

// isTerminal проверяет, является ли writer терминалом
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
