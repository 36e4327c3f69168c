package cli

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"github.com/specialistvlad/vcfconvert/internal/config"
	"github.com/specialistvlad/vcfconvert/internal/ctxlog"
	"github.com/specialistvlad/vcfconvert/internal/fsutil"
)

const (
	dotEnvFile     = ".env"
	profileEnvVar  = "VCFCONVERT_PROFILE"
	defaultProfile = "vcfconvert.hcl"
)

// loadDotEnv loads variables from path without overriding ones already set.
// A missing file is not an error.
func loadDotEnv(ctx context.Context, path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	ctxlog.FromContext(ctx).Debug("Loaded environment file.", "path", path)
	return nil
}

// resolveProfile picks the profile path: the flag value, then the
// VCFCONVERT_PROFILE variable, then ./vcfconvert.hcl when it exists. An empty
// result means no profile.
func resolveProfile(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := os.Getenv(profileEnvVar); v != "" {
		return v
	}
	if fsutil.IsFile(defaultProfile) {
		return defaultProfile
	}
	return ""
}

// loadProfile loads the profile at path, or returns nil when path is empty.
func loadProfile(ctx context.Context, loader config.Loader, path string) (*config.Profile, error) {
	if path == "" || loader == nil {
		return nil, nil
	}
	ctxlog.FromContext(ctx).Debug("Loading profile.", "path", path)
	return loader.Load(ctx, path)
}
