package app

import (
	"fmt"
	"slices"
	"strings"

	"github.com/specialistvlad/vcfconvert/internal/config"
)

// Commands understood by App.Run.
const (
	CommandConvert = "convert"
	CommandStats   = "stats"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"text", "json"}
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Command    string
	InputPath  string // .vcf file; a file or directory for stats
	OutputPath string // optional output base

	Formats []string // renderer names, in render order
	Unknown bool

	StampPrefix bool
	StampSuffix bool
	UTC         bool
	Overwrite   bool

	Preferred     bool
	Reorder       bool
	FormatAddress bool
	FormatPhone   bool

	Progress  bool
	LogFormat string
	LogLevel  string
}

// DefaultConfig returns the built-in settings that profiles and flags
// override.
func DefaultConfig() Config {
	return Config{
		Command:   CommandConvert,
		Progress:  true,
		LogFormat: "text",
		LogLevel:  "warn",
	}
}

// NewConfig validates cfg and returns a normalized copy.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Command == "" {
		cfg.Command = CommandConvert
	}
	if cfg.InputPath == "" {
		return nil, fmt.Errorf("%w: no input path given", ErrInputNotFound)
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	if !slices.Contains(logLevels, cfg.LogLevel) {
		return nil, fmt.Errorf("invalid log-level %q: must be one of %s", cfg.LogLevel, strings.Join(logLevels, ", "))
	}
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if !slices.Contains(logFormats, cfg.LogFormat) {
		return nil, fmt.Errorf("invalid log-format %q: must be one of %s", cfg.LogFormat, strings.Join(logFormats, ", "))
	}

	if cfg.Command == CommandConvert && len(cfg.Formats) == 0 && !cfg.Unknown {
		return nil, ErrNoOutputMode
	}
	cfg.Formats = slices.Compact(slices.Clone(cfg.Formats))

	return &cfg, nil
}

// ApplyProfile overlays every setting the profile names onto cfg.
func (c *Config) ApplyProfile(p *config.Profile) {
	if p == nil {
		return
	}
	if f := p.Features; f != nil {
		setBool(&c.Preferred, f.Preferred)
		setBool(&c.Reorder, f.Reorder)
		setBool(&c.FormatAddress, f.Address)
		setBool(&c.FormatPhone, f.Phone)
	}
	if o := p.Output; o != nil {
		if o.Formats != nil {
			c.Formats = slices.Clone(o.Formats)
		}
		setString(&c.OutputPath, o.Path)
		if o.Stamp != nil {
			c.StampPrefix = *o.Stamp == config.StampPrefix || *o.Stamp == config.StampBoth
			c.StampSuffix = *o.Stamp == config.StampSuffix || *o.Stamp == config.StampBoth
		}
		setBool(&c.UTC, o.UTC)
		setBool(&c.Overwrite, o.Overwrite)
	}
	if lg := p.Logging; lg != nil {
		setString(&c.LogLevel, lg.Level)
		setString(&c.LogFormat, lg.Format)
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
