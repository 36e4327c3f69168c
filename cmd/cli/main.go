package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/vcfconvert/internal/app"
	"github.com/specialistvlad/vcfconvert/internal/cli"
	"github.com/specialistvlad/vcfconvert/internal/hcl"
)

// main is the entrypoint for the vcfconvert application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW, errW io.Writer, args []string) error {
	// Instantiate the concrete HCL loader to pass to the CLI layer.
	loader := hcl.NewLoader()

	appConfig, shouldExit, err := cli.Parse(args, outW, loader)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	vcfApp, err := app.NewApp(outW, errW, appConfig)
	if err != nil {
		return &cli.ExitError{Code: 1, Message: "Error: " + err.Error()}
	}

	return vcfApp.Run(context.Background())
}
