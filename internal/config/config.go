// Package config loads the optional .cppcheck-junit.toml file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is looked up from the working directory towards the filesystem root.
const FileName = ".cppcheck-junit.toml"

// Config mirrors the TOML file. Zero values mean "use the built-in default".
type Config struct {
	SuiteName       string `toml:"suite_name"`
	SuccessName     string `toml:"success_name"`
	UnnamedCaseName string `toml:"unnamed_case_name"`
	ErrorClassname  string `toml:"error_classname"`
	AsFailures      bool   `toml:"as_failures"`
	ErrorExitCode   int    `toml:"error_exitcode"`
	Hostname        string `toml:"hostname"`

	// Path is the file the values came from, empty when no file was found.
	Path string `toml:"-"`
}

// Find walks up from startDir looking for FileName.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load reads an explicit config path, or discovers one from startDir when
// path is empty. A missing discovered file yields a zero Config.
func Load(path, startDir string) (Config, error) {
	if path == "" {
		found, ok, err := Find(startDir)
		if err != nil || !ok {
			return Config{}, err
		}
		path = found
	}
	return LoadFile(path)
}

// LoadFile decodes and validates a single TOML file.
func LoadFile(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if meta.IsDefined("error_exitcode") {
		if err := ValidateExitCode(cfg.ErrorExitCode); err != nil {
			return Config{}, fmt.Errorf("%s: error_exitcode: %w", path, err)
		}
	}
	cfg.Path = path
	return cfg, nil
}

// ValidateExitCode accepts values a process can portably return.
func ValidateExitCode(code int) error {
	if code < 0 || code > 255 {
		return fmt.Errorf("exit code %d out of range 0..255", code)
	}
	return nil
}
