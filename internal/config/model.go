package config

// Stamp placements accepted in the output block.
const (
	StampNone   = "none"
	StampPrefix = "prefix"
	StampSuffix = "suffix"
	StampBoth   = "both"
)

// Profile is the unified, format-agnostic representation of a settings file.
type Profile struct {
	Features *Features
	Output   *Output
	Logging  *Logging
}

// Features toggles the optional parser and renderer transformations.
type Features struct {
	Preferred *bool
	Reorder   *bool
	Address   *bool
	Phone     *bool
}

// Output describes which files are written and how they are named.
type Output struct {
	// Formats lists renderer names; nil means not set, empty means none.
	Formats   []string
	Path      *string
	Stamp     *string
	UTC       *bool
	Overwrite *bool
}

// Logging mirrors the --log-level and --log-format flags.
type Logging struct {
	Level  *string
	Format *string
}
