package main

import (
	"errors"
	"os"

	assetpipe "github.com/alnah/go-assetpipe"
	"github.com/alnah/go-assetpipe/internal/config"
)

// Exit codes for the assetpipe CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess    = 0 // Command completed
	ExitGeneral    = 1 // General/unexpected error
	ExitUsage      = 2 // Invalid flags, manifest, or arguments
	ExitIO         = 3 // File not found, permission denied
	ExitDependency = 4 // Unknown dependency or dependency cycle
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Dependency errors (exit 4)
	if errors.Is(err, assetpipe.ErrUnknownDependency) ||
		errors.Is(err, assetpipe.ErrDependencyCycle) ||
		errors.Is(err, ErrCheckFailed) {
		return ExitDependency
	}

	// Usage/manifest/validation errors (exit 2)
	if errors.Is(err, assetpipe.ErrManifestNotFound) ||
		errors.Is(err, assetpipe.ErrManifestParse) ||
		errors.Is(err, assetpipe.ErrInvalidManifest) ||
		errors.Is(err, assetpipe.ErrUnsupportedFormat) ||
		errors.Is(err, assetpipe.ErrInvalidFingerprint) ||
		errors.Is(err, assetpipe.ErrFieldTooLong) ||
		errors.Is(err, assetpipe.ErrInvalidAssetType) ||
		errors.Is(err, config.ErrEmptyManifestName) ||
		errors.Is(err, config.ErrManifestTooLarge) ||
		errors.Is(err, ErrUnknownContainer) ||
		errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrManifestExists) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrWriteOutput) {
		return ExitIO
	}

	return ExitGeneral
}
