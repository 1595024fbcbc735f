package assetpipe

import (
	"github.com/alnah/go-assetpipe/internal/config"
	"github.com/alnah/go-assetpipe/internal/registry"
	"github.com/alnah/go-assetpipe/internal/resolver"
)

// Sentinel errors for library operations.
// They are the same values the internal packages return, so errors.Is works
// on errors from every layer.
var (
	// ErrInvalidAssetType indicates a type name that is neither style nor script.
	ErrInvalidAssetType = registry.ErrInvalidType

	// Strict mode errors.
	ErrUnknownDependency = resolver.ErrUnknownDependency
	ErrDependencyCycle   = resolver.ErrDependencyCycle

	// Manifest errors.
	ErrManifestNotFound   = config.ErrManifestNotFound
	ErrManifestParse      = config.ErrManifestParse
	ErrInvalidManifest    = config.ErrInvalidManifest
	ErrUnsupportedFormat  = config.ErrUnsupportedFormat
	ErrInvalidFingerprint = config.ErrInvalidFingerprint
	ErrFieldTooLong       = config.ErrFieldTooLong
)
