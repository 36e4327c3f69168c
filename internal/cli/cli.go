package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/specialistvlad/vcfconvert/internal/app"
	"github.com/specialistvlad/vcfconvert/internal/config"
)

const description = `Parse/convert Apple Contacts vCard exports to CSV, JSON, or YAML.
Values not present in the Apple format show up as Unknown fields.`

// flags holds the raw flag values before they are layered onto the config.
type flags struct {
	csv, json, yaml, display, unknown bool

	stamp1, stamp2, zulu, overwrite bool

	preferred, reorder, address, phone bool

	profile    string
	logLevel   string
	logFormat  string
	noProgress bool
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
// loader reads the optional profile file.
func Parse(args []string, output io.Writer, loader config.Loader) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	ctx := context.Background()

	var (
		f      flags
		result *app.Config
	)

	root := &cobra.Command{
		Use:           "vcfconvert [flags] <input.vcf> [output]",
		Short:         "Convert Apple vCard exports",
		Long:          description,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Usage()
				return &ExitError{Code: 1, Message: "Error: an input .vcf file is required"}
			}
			cfg, err := build(ctx, cmd.Flags(), &f, loader, app.CommandConvert, args)
			if err != nil {
				return err
			}
			result = cfg
			return nil
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetArgs(args)
	root.SetOut(output)
	root.SetErr(output)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &ExitError{Code: 2, Message: err.Error()}
	})

	fs := root.Flags()
	fs.BoolVarP(&f.csv, "csv", "c", false, "Save parsed data to CSV file")
	fs.BoolVarP(&f.json, "json", "j", false, "Save parsed data to JSON file")
	fs.BoolVarP(&f.yaml, "yaml", "y", false, "Save parsed data to YAML file")
	fs.BoolVarP(&f.display, "display", "d", false, "Display parsed data in console")
	fs.BoolVarP(&f.unknown, "unknown", "u", false, "Display unknown data to console, then exit without creating files")
	fs.BoolVar(&f.stamp1, "stamp1", false, "Prepend date/time stamp to output filenames")
	fs.BoolVar(&f.stamp2, "stamp2", false, "Append date/time stamp to output filenames")
	fs.BoolVar(&f.zulu, "zulu", false, "Use UTC / Zulu time for file timestamps")
	fs.BoolVar(&f.overwrite, "overwrite", false, "Overwrite output files if they already exist")
	fs.BoolVar(&f.preferred, "preferred", false, `Duplicate fields marked "pref" into a "(Preferred)" field`)
	fs.BoolVar(&f.reorder, "reorder", false, "Order fields: Organization, Name, Phones, Emails, Addresses, Dates, Relationships, others")
	fs.BoolVar(&f.address, "address", false, "Reformat addresses from vCard format to postal format")
	fs.BoolVar(&f.phone, "phone", false, "Reformat US phone numbers to NPA-NXX-XXXX")
	fs.BoolVar(&f.noProgress, "no-progress", false, "Do not draw the progress counter")

	pfs := root.PersistentFlags()
	pfs.StringVar(&f.profile, "profile", "", "Path to an HCL profile (default $VCFCONVERT_PROFILE or ./vcfconvert.hcl)")
	pfs.StringVar(&f.logLevel, "log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	pfs.StringVar(&f.logFormat, "log-format", "text", "Log output format. Options: 'text' or 'json'.")

	root.AddCommand(&cobra.Command{
		Use:   "stats <input.vcf|dir>",
		Short: "Summarize the structure of vCard files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := build(ctx, cmd.Flags(), &f, loader, app.CommandStats, args)
			if err != nil {
				return err
			}
			result = cfg
			return nil
		},
	})

	if err := loadDotEnv(ctx, dotEnvFile); err != nil {
		return nil, false, &ExitError{Code: 1, Message: fmt.Sprintf("failed to load %s: %v", dotEnvFile, err)}
	}

	if err := root.Execute(); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return nil, false, exitErr
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if result == nil {
		// Help was requested.
		return nil, true, nil
	}

	slog.Debug("CLI parser finished successfully.", "config", result)
	return result, false, nil
}

// build layers defaults, the profile, and explicitly set flags, then
// validates the result.
func build(ctx context.Context, fs *pflag.FlagSet, f *flags, loader config.Loader, command string, args []string) (*app.Config, error) {
	cfg := app.DefaultConfig()
	cfg.Command = command

	profile, err := loadProfile(ctx, loader, resolveProfile(f.profile))
	if err != nil {
		return nil, &ExitError{Code: 1, Message: err.Error()}
	}
	cfg.ApplyProfile(profile)
	applyFlags(&cfg, fs, f)

	cfg.InputPath = args[0]
	if len(args) > 1 {
		cfg.OutputPath = args[1]
	}

	validated, err := app.NewConfig(cfg)
	if err != nil {
		code := 2
		if errors.Is(err, app.ErrNoOutputMode) || errors.Is(err, app.ErrInputNotFound) {
			code = 1
		}
		return nil, &ExitError{Code: code, Message: "Error: " + err.Error()}
	}
	return validated, nil
}

// applyFlags copies only the flags the user actually set, so an unset flag
// never overrides a profile value.
func applyFlags(cfg *app.Config, fs *pflag.FlagSet, f *flags) {
	set := func(name string, dst *bool, v bool) {
		if fs.Changed(name) {
			*dst = v
		}
	}

	if fs.Lookup("csv") != nil {
		formatFlags := []struct {
			flag, format string
			on           bool
		}{
			{"csv", "csv", f.csv},
			{"json", "json", f.json},
			{"yaml", "yaml", f.yaml},
			{"display", "console", f.display},
		}
		var formats []string
		changed := false
		for _, ff := range formatFlags {
			if fs.Changed(ff.flag) {
				changed = true
				if ff.on {
					formats = append(formats, ff.format)
				}
			}
		}
		if changed {
			cfg.Formats = formats
		}

		set("unknown", &cfg.Unknown, f.unknown)
		set("stamp1", &cfg.StampPrefix, f.stamp1)
		set("stamp2", &cfg.StampSuffix, f.stamp2)
		set("zulu", &cfg.UTC, f.zulu)
		set("overwrite", &cfg.Overwrite, f.overwrite)
		set("preferred", &cfg.Preferred, f.preferred)
		set("reorder", &cfg.Reorder, f.reorder)
		set("address", &cfg.FormatAddress, f.address)
		set("phone", &cfg.FormatPhone, f.phone)
		if fs.Changed("no-progress") {
			cfg.Progress = !f.noProgress
		}
	}

	if fs.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if fs.Changed("log-format") {
		cfg.LogFormat = f.logFormat
	}
}
