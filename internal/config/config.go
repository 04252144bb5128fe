// Package config merges CLI flags with the optional c3tconv.yaml file into the
// settings a conversion run consumes.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/reoring/c3tconv"
)

const (
	// ErrCodeNotFound means --config named a file that does not exist.
	ErrCodeNotFound = "config_not_found"
	// ErrCodeInvalid means the config file could not be read or parsed, or a
	// field (from the file or a flag) holds an unsupported value.
	ErrCodeInvalid = "config_invalid"
)

const (
	// DefaultMaxInputBytes caps how much of the input file is read.
	DefaultMaxInputBytes int64 = 100 << 20
	DefaultLogLevel            = "info"
	DefaultLogFormat           = "text"
)

// CLIArgs carries the flag values together with whether each one was set
// explicitly, so that --separate-anim=false can override the file.
type CLIArgs struct {
	Input      string
	Output     string
	ConfigPath string

	SeparateAnim    bool
	SeparateAnimSet bool

	// Empty means not set.
	LogLevel  string
	LogFormat string
}

// FileConfig mirrors c3tconv.yaml. Pointer fields distinguish "absent" from
// the zero value.
type FileConfig struct {
	SeparateAnim  *bool     `yaml:"separate_anim"`
	MaxInputBytes *int64    `yaml:"max_input_bytes"`
	DuplicateKeys string    `yaml:"duplicate_keys"`
	MaxDepth      *int      `yaml:"max_depth"`
	Log           LogConfig `yaml:"log"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Effective is the merged result. Consumers do no further defaulting.
type Effective struct {
	Input  string
	Output string

	SeparateAnim  bool
	MaxInputBytes int64
	DuplicateKeys c3tconv.DuplicatePolicy
	MaxDepth      int

	LogLevel  string
	LogFormat string
}

// Error is a configuration failure tagged with an error code.
type Error struct {
	Code string
	Path string // config file path, or the flag name for flag values
	Err  error
}

func (e *Error) Error() string {
	switch e.Code {
	case ErrCodeNotFound:
		return fmt.Sprintf("%s: config file %q not found", e.Code, e.Path)
	case ErrCodeInvalid:
		if e.Err != nil {
			return fmt.Sprintf("%s: %q: %v", e.Code, e.Path, e.Err)
		}
		return fmt.Sprintf("%s: %q", e.Code, e.Path)
	default:
		if e.Err != nil {
			return fmt.Sprintf("%s: %v", e.Code, e.Err)
		}
		return e.Code
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Code extracts the error code from err, or "" when err is not an *Error.
func Code(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// Load reads the config file named by cli.ConfigPath (if any) and merges it
// with cli.
//
// Precedence:
// - separate_anim, log.level, log.format: CLI > file > default
// - max_input_bytes, duplicate_keys, max_depth: file > default (no flag)
func Load(cli CLIArgs) (Effective, error) {
	var fc FileConfig
	cfgPath := strings.TrimSpace(cli.ConfigPath)
	if cfgPath != "" {
		var exists bool
		var err error
		fc, exists, err = readFileConfig(cfgPath)
		if err != nil {
			return Effective{}, &Error{Code: ErrCodeInvalid, Path: cfgPath, Err: err}
		}
		if !exists {
			return Effective{}, &Error{Code: ErrCodeNotFound, Path: cfgPath, Err: os.ErrNotExist}
		}
	}
	return merge(cli, fc, cfgPath)
}

func merge(cli CLIArgs, fc FileConfig, cfgPath string) (Effective, error) {
	eff := Effective{
		Input:         cli.Input,
		Output:        cli.Output,
		MaxInputBytes: DefaultMaxInputBytes,
		LogLevel:      DefaultLogLevel,
		LogFormat:     DefaultLogFormat,
	}

	if cli.SeparateAnimSet {
		eff.SeparateAnim = cli.SeparateAnim
	} else if fc.SeparateAnim != nil {
		eff.SeparateAnim = *fc.SeparateAnim
	}

	if fc.MaxInputBytes != nil {
		if *fc.MaxInputBytes <= 0 {
			return Effective{}, &Error{Code: ErrCodeInvalid, Path: cfgPath, Err: fmt.Errorf("max_input_bytes must be positive, got %d", *fc.MaxInputBytes)}
		}
		eff.MaxInputBytes = *fc.MaxInputBytes
	}

	if fc.MaxDepth != nil {
		if *fc.MaxDepth < 0 {
			return Effective{}, &Error{Code: ErrCodeInvalid, Path: cfgPath, Err: fmt.Errorf("max_depth must not be negative, got %d", *fc.MaxDepth)}
		}
		eff.MaxDepth = *fc.MaxDepth
	}

	dup, err := parseDuplicateKeys(fc.DuplicateKeys)
	if err != nil {
		return Effective{}, &Error{Code: ErrCodeInvalid, Path: cfgPath, Err: err}
	}
	eff.DuplicateKeys = dup

	level, levelSrc := pick(cli.LogLevel, "--log-level", fc.Log.Level, cfgPath)
	if level != "" {
		if err := validateLogLevel(level); err != nil {
			return Effective{}, &Error{Code: ErrCodeInvalid, Path: levelSrc, Err: err}
		}
		eff.LogLevel = level
	}

	format, formatSrc := pick(cli.LogFormat, "--log-format", fc.Log.Format, cfgPath)
	if format != "" {
		if format != "text" && format != "json" {
			return Effective{}, &Error{Code: ErrCodeInvalid, Path: formatSrc, Err: fmt.Errorf("log format must be text or json, got %q", format)}
		}
		eff.LogFormat = format
	}

	return eff, nil
}

// pick returns the CLI value when set, else the file value, along with where
// it came from for error reporting.
func pick(cliVal, flag, fileVal, cfgPath string) (string, string) {
	if v := strings.TrimSpace(cliVal); v != "" {
		return strings.ToLower(v), flag
	}
	return strings.ToLower(strings.TrimSpace(fileVal)), cfgPath
}

func parseDuplicateKeys(s string) (c3tconv.DuplicatePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "ignore":
		return c3tconv.DuplicateIgnore, nil
	case "warn":
		return c3tconv.DuplicateWarn, nil
	case "error":
		return c3tconv.DuplicateReject, nil
	default:
		return 0, fmt.Errorf("duplicate_keys must be ignore, warn or error, got %q", s)
	}
}

func validateLogLevel(l string) error {
	switch l {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("log level must be debug, info, warn or error, got %q", l)
	}
}

// readFileConfig parses the YAML file at path. exists is false when the file
// is missing, which is not an error by itself. Unknown keys are rejected.
func readFileConfig(path string) (fc FileConfig, exists bool, err error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, false, nil
		}
		return FileConfig{}, false, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil {
		if errors.Is(err, io.EOF) {
			return FileConfig{}, true, nil
		}
		return FileConfig{}, true, err
	}
	return fc, true, nil
}
