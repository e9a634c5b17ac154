// Package config loads tagit's YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/stwalsh4118/tagit/internal/debug"
	"github.com/stwalsh4118/tagit/internal/git"
	"github.com/stwalsh4118/tagit/internal/pathutil"
)

// DefaultPath is where Load looks when no path is given.
const DefaultPath = "~/.config/tagit/config.yaml"

// Validation errors
var (
	ErrUnknownBackend  = errors.New("unknown backend")
	ErrUnknownLogLevel = errors.New("unknown log level")
)

// Labels holds the user-visible strings of the tag dialog. Platform
// conventions differ only in capitalization, see DefaultLabels.
type Labels struct {
	Title        string `yaml:"title,omitempty"`
	NameLabel    string `yaml:"name_label,omitempty"`
	Placeholder  string `yaml:"placeholder,omitempty"`
	CreateButton string `yaml:"create_button,omitempty"`
	CancelButton string `yaml:"cancel_button,omitempty"`
	Creating     string `yaml:"creating,omitempty"`
	ErrorTitle   string `yaml:"error_title,omitempty"`
}

// Config is the root of config.yaml.
type Config struct {
	Backend         string `yaml:"backend,omitempty"`
	LogLevel        string `yaml:"log_level,omitempty"`
	Debug           bool   `yaml:"debug,omitempty"`
	MetricsTextfile string `yaml:"metrics_textfile,omitempty"`
	TaggerName      string `yaml:"tagger_name,omitempty"`
	TaggerEmail     string `yaml:"tagger_email,omitempty"`
	Labels          Labels `yaml:"labels,omitempty"`
}

// DefaultLabels returns the label table for goos. macOS uses title case.
func DefaultLabels(goos string) Labels {
	if goos == "darwin" {
		return Labels{
			Title:        "Create a Tag",
			NameLabel:    "Name",
			Placeholder:  "Tag name",
			CreateButton: "Create Tag",
			CancelButton: "Cancel",
			Creating:     "Creating Tag…",
			ErrorTitle:   "Tag Creation Failed",
		}
	}
	return Labels{
		Title:        "Create a tag",
		NameLabel:    "Name",
		Placeholder:  "Tag name",
		CreateButton: "Create tag",
		CancelButton: "Cancel",
		Creating:     "Creating tag…",
		ErrorTitle:   "Tag creation failed",
	}
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Backend:  git.BackendCLI,
		LogLevel: debug.LevelInfo,
		Labels:   DefaultLabels(runtime.GOOS),
	}
}

// Load reads the configuration at path (DefaultPath if empty). A missing
// file yields Default(). Fields left empty in the file keep their defaults.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultPath
	}
	path = pathutil.ExpandPath(path)

	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.Merge(file)
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Merge copies every non-empty field of other over c.
func (c *Config) Merge(other Config) {
	setIf(&c.Backend, other.Backend)
	setIf(&c.LogLevel, other.LogLevel)
	setIf(&c.MetricsTextfile, other.MetricsTextfile)
	setIf(&c.TaggerName, other.TaggerName)
	setIf(&c.TaggerEmail, other.TaggerEmail)
	if other.Debug {
		c.Debug = true
	}
	c.Labels.Merge(other.Labels)
}

// Merge copies every non-empty label of other over l.
func (l *Labels) Merge(other Labels) {
	setIf(&l.Title, other.Title)
	setIf(&l.NameLabel, other.NameLabel)
	setIf(&l.Placeholder, other.Placeholder)
	setIf(&l.CreateButton, other.CreateButton)
	setIf(&l.CancelButton, other.CancelButton)
	setIf(&l.Creating, other.Creating)
	setIf(&l.ErrorTitle, other.ErrorTitle)
}

// Validate checks enumerated fields.
func (c Config) Validate() error {
	switch c.Backend {
	case git.BackendCLI, git.BackendGoGit:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Backend)
	}
	if _, err := debug.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownLogLevel, c.LogLevel)
	}
	return nil
}

func setIf(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
