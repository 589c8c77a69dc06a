package spec

import "github.com/specialistvlad/gospec/internal/specerr"

type (
	// IllegalContextError is raised by declaration calls made outside a
	// compilation.
	IllegalContextError = specerr.IllegalContextError
	// BlockAlreadyDefinedError is returned when two siblings share a
	// description.
	BlockAlreadyDefinedError = specerr.BlockAlreadyDefinedError
	// SpecInitializationFailedError is returned when the declaration script
	// itself fails.
	SpecInitializationFailedError = specerr.SpecInitializationFailedError
)
