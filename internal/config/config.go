// Package config loads the settings of the tvm command from a TOML or YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/govalues/tvm"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a configuration cannot be parsed or
// holds a value outside of its domain.
var ErrInvalidConfig = errors.New("invalid configuration")

// Format is the encoding of a configuration file.
type Format int

const (
	FormatAuto Format = iota // derived from the file extension
	FormatTOML
	FormatYAML
)

// String implements the [fmt.Stringer] interface.
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "auto"
	}
}

// DetectFormat returns the format implied by the extension of path.
// Unknown extensions are treated as TOML.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Solver holds the settings of the rate solver.
type Solver struct {
	Tolerance     float64 `toml:"tolerance" yaml:"tolerance"`
	MaxIterations int     `toml:"max_iterations" yaml:"max_iterations"`
	Guess         float64 `toml:"guess" yaml:"guess"`
}

// Config is the complete configuration of the command.
type Config struct {
	Solver Solver `toml:"solver" yaml:"solver"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Solver: Solver{
			Tolerance:     tvm.DefaultTolerance,
			MaxIterations: tvm.DefaultMaxIterations,
			Guess:         tvm.DefaultGuess,
		},
	}
}

// Load reads the configuration file at path.
// An empty path returns [Default].
// Keys missing from the file keep their default values.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %q: %w", path, err)
	}
	c, err := Parse(data, DetectFormat(path))
	if err != nil {
		return Config{}, fmt.Errorf("loading config %q: %w", path, err)
	}
	return c, nil
}

// Parse decodes a configuration in the given format on top of [Default]
// and validates it. Unknown keys are rejected.
func Parse(data []byte, format Format) (Config, error) {
	c := Default()
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	default:
		md, err := toml.Decode(string(data), &c)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			sort.Strings(keys)
			return Config{}, fmt.Errorf("%w: unknown key(s) %v", ErrInvalidConfig, strings.Join(keys, ", "))
		}
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate returns an error if a setting is outside of its domain.
func (c Config) Validate() error {
	s := c.Solver
	switch {
	case !(s.Tolerance > 0):
		return fmt.Errorf("%w: solver.tolerance must be positive, got %v", ErrInvalidConfig, s.Tolerance)
	case s.MaxIterations < 0:
		return fmt.Errorf("%w: solver.max_iterations must not be negative, got %v", ErrInvalidConfig, s.MaxIterations)
	case !(s.Guess > -1):
		return fmt.Errorf("%w: solver.guess must be greater than -1, got %v", ErrInvalidConfig, s.Guess)
	}
	return nil
}

// RateSolver returns the solver described by the settings.
func (s Solver) RateSolver() tvm.RateSolver {
	return tvm.RateSolver{
		Tolerance:     s.Tolerance,
		MaxIterations: s.MaxIterations,
	}
}

// InitialGuess returns the starting rate of the solver.
func (s Solver) InitialGuess() (tvm.Rate, error) {
	return tvm.NewRate(s.Guess)
}
