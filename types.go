package assetpipe

import (
	"path"
	"strings"

	"github.com/alnah/go-assetpipe/internal/config"
	"github.com/alnah/go-assetpipe/internal/fingerprint"
	"github.com/alnah/go-assetpipe/internal/registry"
	"github.com/alnah/go-assetpipe/internal/tags"
)

// AssetType selects the kind of tag an asset renders to.
type AssetType = registry.Type

// Asset types.
const (
	Style  AssetType = registry.Style
	Script AssetType = registry.Script
)

// OverrideMarker is the legacy name prefix that turns a registration into an override.
const OverrideMarker = "!"

// Asset is a named style or script resource.
type Asset = registry.Asset

// ParseAssetType converts "style", "styles", "css", "script", "scripts" or "js"
// (case-insensitive) to an AssetType.
// Returns ErrInvalidAssetType for anything else.
func ParseAssetType(s string) (AssetType, error) {
	return registry.ParseType(s)
}

// inferType picks Style for .css sources and Script for everything else.
func inferType(source string) AssetType {
	if i := strings.IndexAny(source, "?#"); i >= 0 {
		source = source[:i]
	}
	if strings.EqualFold(path.Ext(source), ".css") {
		return Style
	}
	return Script
}

// FingerprintMode selects how versioned URLs are fingerprinted.
type FingerprintMode string

// Fingerprint modes.
const (
	FingerprintModTime FingerprintMode = config.FingerprintModTime // unix modification time
	FingerprintContent FingerprintMode = config.FingerprintContent // xxhash64 of file content
)

// Fingerprinter returns a cache-busting value for a site-relative file path,
// or "" when none is available.
type Fingerprinter = fingerprint.Fingerprinter

// Clock reports when a site-relative file was last modified.
type Clock = fingerprint.Clock

// Formatter renders an asset URL and its attributes into markup.
type Formatter = tags.Formatter

// MissingDependency is a dependency naming an asset that is not registered.
type MissingDependency struct {
	Asset      string
	Dependency string
}

// DependencyReport lists the problems strict mode would reject.
type DependencyReport struct {
	Missing []MissingDependency
	Cycles  [][]string // members of each cycle, sorted
}

// OK returns true if the report found nothing.
func (r *DependencyReport) OK() bool {
	return len(r.Missing) == 0 && len(r.Cycles) == 0
}
