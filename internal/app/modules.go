package app

import (
	"github.com/specialistvlad/gospec/internal/handlers"
	"github.com/specialistvlad/gospec/modules/builtin"
	"github.com/specialistvlad/gospec/modules/print"
)

// coreModules is the definitive list of all modules that are compiled into
// the gospec binary.
var coreModules = []handlers.Module{
	&builtin.Module{},
	&print.Module{},
}
