package hcl

// profileRoot is the HCL-specific schema of a profile file.
type profileRoot struct {
	Features *featuresBlock `hcl:"features,block"`
	Output   *outputBlock   `hcl:"output,block"`
	Logging  *loggingBlock  `hcl:"logging,block"`
}

type featuresBlock struct {
	Preferred *bool `hcl:"preferred,optional"`
	Reorder   *bool `hcl:"reorder,optional"`
	Address   *bool `hcl:"address,optional"`
	Phone     *bool `hcl:"phone,optional"`
}

type outputBlock struct {
	Formats   *[]string `hcl:"formats,optional"`
	Path      *string   `hcl:"path,optional"`
	Stamp     *string   `hcl:"stamp,optional"`
	UTC       *bool     `hcl:"utc,optional"`
	Overwrite *bool     `hcl:"overwrite,optional"`
}

type loggingBlock struct {
	Level  *string `hcl:"level,optional"`
	Format *string `hcl:"format,optional"`
}
