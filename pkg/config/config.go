// Package config loads robocheck settings from a TOML file and the
// environment.
package config

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"

	"github.com/chazu/robocheck/pkg/parser"
)

// DefaultMaxLineBytes is the longest accepted line, newline included.
const DefaultMaxLineBytes = 1024

// Config holds the settings for a run. Flags override the environment,
// which overrides the file, which overrides the defaults.
type Config struct {
	Color        bool `toml:"color"`
	JSON         bool `toml:"json"`
	Jobs         int  `toml:"jobs"`
	MaxLineBytes int  `toml:"max_line_bytes"`
	MaxSentence  int  `toml:"max_sentence"`
	Debug        bool `toml:"debug"`

	// History is the SQLite database runs are recorded in. Empty means
	// runs are not recorded.
	History string `toml:"history"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Jobs:         runtime.GOMAXPROCS(0),
		MaxLineBytes: DefaultMaxLineBytes,
		MaxSentence:  parser.DefaultMaxSentence,
	}
}

// Load returns the defaults overlaid with the file at path (if path is not
// empty) and then the process environment.
func Load(path string, log logrus.FieldLogger) (Config, error) {
	c := Default()
	if path != "" {
		if err := c.LoadFile(path); err != nil {
			return c, err
		}
	}
	c.ApplyEnv(os.Getenv, log)
	return c, c.Validate()
}

// LoadFile overlays the settings in a TOML file. Unknown keys are an error.
func (c *Config) LoadFile(path string) error {
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return fmt.Errorf("failed to load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return nil
}

// EnvVar documents one environment variable.
type EnvVar struct {
	Name        string
	Value       any
	Description string
}

// AsMap describes the environment variables and their current values in c.
func (c Config) AsMap() map[string]EnvVar {
	return map[string]EnvVar{
		"ROBOCHECK_COLOR":          {"ROBOCHECK_COLOR", c.Color, "Colour the error marker (e.g. ROBOCHECK_COLOR=1)"},
		"ROBOCHECK_DEBUG":          {"ROBOCHECK_DEBUG", c.Debug, "Show debug logging"},
		"ROBOCHECK_HISTORY":        {"ROBOCHECK_HISTORY", c.History, "Record runs in this SQLite database"},
		"ROBOCHECK_JOBS":           {"ROBOCHECK_JOBS", c.Jobs, "Lines validated in parallel (default GOMAXPROCS)"},
		"ROBOCHECK_JSON":           {"ROBOCHECK_JSON", c.JSON, "Print a JSON report instead of text"},
		"ROBOCHECK_MAX_LINE_BYTES": {"ROBOCHECK_MAX_LINE_BYTES", c.MaxLineBytes, "Longest accepted line in bytes (default 1024)"},
		"ROBOCHECK_MAX_SENTENCE":   {"ROBOCHECK_MAX_SENTENCE", c.MaxSentence, "Most tokens on one line (default 64)"},
	}
}

// Clean quotes and spaces from the value
func clean(getenv func(string) string, key string) string {
	return strings.Trim(getenv(key), "\"' ")
}

// ApplyEnv overlays the ROBOCHECK_* variables. Invalid values are logged
// and ignored.
func (c *Config) ApplyEnv(getenv func(string) string, log logrus.FieldLogger) {
	if debug := clean(getenv, "ROBOCHECK_DEBUG"); debug != "" {
		d, err := strconv.ParseBool(debug)
		if err == nil {
			c.Debug = d
		} else {
			c.Debug = true
		}
	}

	if history := clean(getenv, "ROBOCHECK_HISTORY"); history != "" {
		c.History = history
	}

	for key, dst := range map[string]*bool{
		"ROBOCHECK_COLOR": &c.Color,
		"ROBOCHECK_JSON":  &c.JSON,
	} {
		if v := clean(getenv, key); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				log.WithFields(logrus.Fields{key: v, "error": err}).Warn("invalid setting, ignoring")
				continue
			}
			*dst = b
		}
	}

	for key, dst := range map[string]*int{
		"ROBOCHECK_JOBS":           &c.Jobs,
		"ROBOCHECK_MAX_LINE_BYTES": &c.MaxLineBytes,
		"ROBOCHECK_MAX_SENTENCE":   &c.MaxSentence,
	} {
		if v := clean(getenv, key); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				log.WithFields(logrus.Fields{key: v, "error": err}).Warn("invalid setting must be greater than zero")
				continue
			}
			*dst = n
		}
	}
}

// Validate checks that the numeric settings are usable.
func (c Config) Validate() error {
	if c.Jobs <= 0 {
		return fmt.Errorf("jobs must be greater than zero, got %d", c.Jobs)
	}
	if c.MaxLineBytes <= 1 {
		return fmt.Errorf("max_line_bytes must be greater than one, got %d", c.MaxLineBytes)
	}
	if c.MaxSentence <= 0 {
		return fmt.Errorf("max_sentence must be greater than zero, got %d", c.MaxSentence)
	}
	return nil
}
