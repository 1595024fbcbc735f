package resolver

import "errors"

// Sentinel errors returned in strict mode.
var (
	// ErrUnknownDependency indicates a dependency naming an asset that is not registered.
	ErrUnknownDependency = errors.New("unknown dependency")

	// ErrDependencyCycle indicates assets that depend on each other, directly or transitively.
	ErrDependencyCycle = errors.New("dependency cycle")
)
