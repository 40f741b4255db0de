/*
Package config manages the TOML settings of a tape session.

All keys are optional:

	output_file = "tapey_tape.txt"
	line_format = "%b |%S| %D  %s"
	bar_character = "+"
	bar_max_width = 5
	bar_time_unit = 0.2
	bar_threshold = 0.0
	bar_alignment = "right"
	suggestions_marker = ">"
	suggestion_windows = 10
	dictionaries = ["main.json", "user.json"]

	[dictionary_names]
	"user.json" = "U"

Relative paths are taken from the config directory.
*/
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/bastiangx/tapeytape/internal/utils"
	"github.com/charmbracelet/log"
)

// FileName is the default config file name.
const FileName = "tapey_tape.toml"

// Bar alignments.
const (
	AlignLeft  = "left"
	AlignRight = "right"
)

// Config holds the settings of a tape session.
type Config struct {
	OutputFile        string            `toml:"output_file"`
	LineFormat        string            `toml:"line_format"`
	BarCharacter      string            `toml:"bar_character"`
	BarMaxWidth       int               `toml:"bar_max_width"`
	BarTimeUnit       float64           `toml:"bar_time_unit"`
	BarThreshold      float64           `toml:"bar_threshold"`
	BarAlignment      string            `toml:"bar_alignment"`
	SuggestionsMarker string            `toml:"suggestions_marker"`
	SuggestionWindows int               `toml:"suggestion_windows"`
	Dictionaries      []string          `toml:"dictionaries"`
	DictionaryNames   map[string]string `toml:"dictionary_names"`
}

// ConfigError reports an unusable setting. It is fatal to session start.
type ConfigError struct {
	Option string
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	msg := e.Option + " " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func mustBe(option, description string) *ConfigError {
	return &ConfigError{Option: option, Reason: "must be " + description}
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		OutputFile:        "tapey_tape.txt",
		LineFormat:        "%b |%S| %D  %s",
		BarCharacter:      "+",
		BarMaxWidth:       5,
		BarTimeUnit:       0.2,
		BarThreshold:      0.0,
		BarAlignment:      AlignRight,
		SuggestionsMarker: ">",
		SuggestionWindows: 10,
		Dictionaries:      []string{},
		DictionaryNames:   map[string]string{},
	}
}

// option reads one key out of the parsed file. apply returns false when the
// value has the wrong type.
type option struct {
	key         string
	description string
	apply       func(c *Config, data map[string]any) bool
}

var options = []option{
	{"output_file", "a string", func(c *Config, data map[string]any) (ok bool) {
		c.OutputFile, ok = utils.ExtractString(data, "output_file")
		return
	}},
	{"line_format", "a string", func(c *Config, data map[string]any) (ok bool) {
		c.LineFormat, ok = utils.ExtractString(data, "line_format")
		return
	}},
	{"bar_character", "a 1-character string", func(c *Config, data map[string]any) (ok bool) {
		c.BarCharacter, ok = utils.ExtractString(data, "bar_character")
		return
	}},
	{"bar_max_width", "a non-negative integer", func(c *Config, data map[string]any) (ok bool) {
		c.BarMaxWidth, ok = utils.ExtractInt64(data, "bar_max_width")
		return
	}},
	{"bar_time_unit", "a positive number", func(c *Config, data map[string]any) (ok bool) {
		c.BarTimeUnit, ok = utils.ExtractFloat(data, "bar_time_unit")
		return
	}},
	{"bar_threshold", "a number", func(c *Config, data map[string]any) (ok bool) {
		c.BarThreshold, ok = utils.ExtractFloat(data, "bar_threshold")
		return
	}},
	{"bar_alignment", `either "left" or "right"`, func(c *Config, data map[string]any) (ok bool) {
		c.BarAlignment, ok = utils.ExtractString(data, "bar_alignment")
		return
	}},
	{"suggestions_marker", "a string", func(c *Config, data map[string]any) (ok bool) {
		c.SuggestionsMarker, ok = utils.ExtractString(data, "suggestions_marker")
		return
	}},
	{"suggestion_windows", "a positive integer", func(c *Config, data map[string]any) (ok bool) {
		c.SuggestionWindows, ok = utils.ExtractInt64(data, "suggestion_windows")
		return
	}},
	{"dictionaries", "an array of strings", func(c *Config, data map[string]any) (ok bool) {
		c.Dictionaries, ok = utils.ExtractStringSlice(data, "dictionaries")
		return
	}},
	{"dictionary_names", "a table mapping strings to strings", func(c *Config, data map[string]any) (ok bool) {
		c.DictionaryNames, ok = utils.ExtractStringMap(data, "dictionary_names")
		return
	}},
}

// Validate checks every option against its allowed range.
func (c *Config) Validate() error {
	switch {
	case utf8.RuneCountInString(c.BarCharacter) != 1:
		return mustBe("bar_character", "a 1-character string")
	case c.BarMaxWidth < 0:
		return mustBe("bar_max_width", "a non-negative integer")
	case !(c.BarTimeUnit > 0):
		return mustBe("bar_time_unit", "a positive number")
	case c.BarAlignment != AlignLeft && c.BarAlignment != AlignRight:
		return mustBe("bar_alignment", `either "left" or "right"`)
	case c.SuggestionWindows < 1:
		return mustBe("suggestion_windows", "a positive integer")
	}
	return nil
}

// Parse reads settings from TOML text on top of the defaults.
func Parse(data string) (*Config, error) {
	values, err := utils.ParseTOML(data)
	if err != nil {
		return nil, &ConfigError{Option: "settings", Reason: "must be valid TOML", Err: err}
	}
	return fromValues(values)
}

// LoadConfig loads from a TOML file. Every present key must have the
// right type and range; missing keys keep their defaults.
func LoadConfig(configPath string) (*Config, error) {
	values, err := utils.ParseTOMLFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, err
		}
		return nil, &ConfigError{Option: filepath.Base(configPath), Reason: "must be valid TOML", Err: err}
	}
	return fromValues(values)
}

func fromValues(values map[string]any) (*Config, error) {
	config := DefaultConfig()
	known := make(map[string]bool, len(options))
	for _, opt := range options {
		known[opt.key] = true
		if _, present := values[opt.key]; !present {
			continue
		}
		if !opt.apply(config, values) {
			return nil, mustBe(opt.key, opt.description)
		}
	}
	for key := range values {
		if !known[key] {
			log.Warnf("Ignoring unknown setting %q", key)
		}
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// InitConfig loads config from file or creates default if missing.
// Unlike a missing file, a broken one is an error.
func InitConfig(configPath string) (*Config, error) {
	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := utils.EnsureDir(filepath.Dir(configPath)); err != nil {
			log.Warnf("Failed to create config directory for %s: %v. Using built-in defaults...", configPath, err)
			return config, nil
		}
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return config, nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}
	return LoadConfig(configPath)
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from the -config flag
// 2. Default path: [config dir]/tapey_tape.toml, created when missing
// 3. Builtin defaults
//
// Paths inside the config are resolved against the directory of the file
// that was used.
func LoadConfigWithPriority(customConfigPath, defaultPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if utils.FileExists(customConfigPath) {
			config, err := LoadConfig(customConfigPath)
			if err != nil {
				return nil, customConfigPath, err
			}
			log.Debugf("Loaded config from custom path: %s", customConfigPath)
			config.Resolve(filepath.Dir(utils.GetAbsolutePath(customConfigPath)))
			return config, customConfigPath, nil
		}
		log.Warnf("Custom config file not found at %s. Trying default path...", customConfigPath)
	}

	if defaultPath == "" {
		log.Warn("No default config path. Using built-in defaults...")
		config := DefaultConfig()
		config.Resolve(utils.GetAbsolutePath("."))
		return config, "", nil
	}

	config, err := InitConfig(defaultPath)
	if err != nil {
		return nil, defaultPath, err
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	config.Resolve(filepath.Dir(defaultPath))
	return config, defaultPath, nil
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}

// Resolve makes every path in the config absolute, relative paths being
// taken from baseDir. Dictionary names are re-keyed by resolved path.
func (c *Config) Resolve(baseDir string) {
	c.OutputFile = utils.MakeAbsolute(c.OutputFile, baseDir)
	for i, path := range c.Dictionaries {
		c.Dictionaries[i] = utils.MakeAbsolute(path, baseDir)
	}
	names := make(map[string]string, len(c.DictionaryNames))
	for path, name := range c.DictionaryNames {
		names[utils.MakeAbsolute(path, baseDir)] = name
	}
	c.DictionaryNames = names
}

// OpenOutput opens the tape file for appending.
func (c *Config) OpenOutput() (*os.File, error) {
	file, err := utils.OpenAppend(c.OutputFile)
	if err != nil {
		return nil, &ConfigError{Option: "output_file", Reason: "could not be opened", Err: err}
	}
	return file, nil
}

// String summarizes the config for debug logs.
func (c *Config) String() string {
	return fmt.Sprintf("output=%s format=%q bar=%sx%d/%gs windows=%d dictionaries=%d",
		c.OutputFile, c.LineFormat, c.BarCharacter, c.BarMaxWidth, c.BarTimeUnit,
		c.SuggestionWindows, len(c.Dictionaries))
}
