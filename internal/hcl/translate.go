package hcl

import (
	"fmt"
	"slices"

	"github.com/specialistvlad/vcfconvert/internal/config"
)

var stamps = []string{config.StampNone, config.StampPrefix, config.StampSuffix, config.StampBoth}

// translate converts the HCL-specific schema into the agnostic model.
func translate(root *profileRoot) (*config.Profile, error) {
	p := &config.Profile{}
	if f := root.Features; f != nil {
		p.Features = &config.Features{
			Preferred: f.Preferred,
			Reorder:   f.Reorder,
			Address:   f.Address,
			Phone:     f.Phone,
		}
	}
	if o := root.Output; o != nil {
		if o.Stamp != nil && !slices.Contains(stamps, *o.Stamp) {
			return nil, fmt.Errorf("output.stamp must be one of %v, got %q", stamps, *o.Stamp)
		}
		p.Output = &config.Output{
			Path:      o.Path,
			Stamp:     o.Stamp,
			UTC:       o.UTC,
			Overwrite: o.Overwrite,
		}
		if o.Formats != nil {
			p.Output.Formats = append([]string{}, *o.Formats...)
		}
	}
	if lg := root.Logging; lg != nil {
		p.Logging = &config.Logging{Level: lg.Level, Format: lg.Format}
	}
	return p, nil
}
