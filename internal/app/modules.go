package app

import (
	"github.com/specialistvlad/vcfconvert/internal/registry"
	"github.com/specialistvlad/vcfconvert/modules/console"
	"github.com/specialistvlad/vcfconvert/modules/csv"
	"github.com/specialistvlad/vcfconvert/modules/json"
	"github.com/specialistvlad/vcfconvert/modules/yaml"
)

// coreModules is the definitive list of all output modules that are compiled
// into the vcfconvert binary.
var coreModules = []registry.Module{
	&csv.Module{},
	&json.Module{},
	&yaml.Module{},
	&console.Module{},
}
