package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/alnah/go-assetpipe/internal/fileutil"
	"github.com/alnah/go-assetpipe/internal/yamlutil"
)

// Sentinel errors for manifest operations.
var (
	ErrManifestNotFound   = errors.New("manifest file not found")
	ErrEmptyManifestName  = errors.New("manifest name cannot be empty")
	ErrManifestParse      = errors.New("failed to parse manifest")
	ErrUnsupportedFormat  = errors.New("unsupported manifest format")
	ErrInvalidManifest    = errors.New("invalid manifest")
	ErrFieldTooLong       = errors.New("field exceeds maximum length")
	ErrManifestTooLarge   = errors.New("manifest exceeds maximum size")
	ErrInvalidFingerprint = errors.New("invalid fingerprint mode")
)

// Field length limits.
const (
	MaxNameLength      = 100  // Asset and container names
	MaxURLLength       = 2048 // Browser limit
	MaxAttributeLength = 2048 // Attribute values (integrity hashes, etc.)
	MaxManifestSize    = 1 << 20
)

// Fingerprint modes.
const (
	FingerprintModTime = "mtime"
	FingerprintContent = "content"
)

// Manifest declares containers of assets and how they render.
type Manifest struct {
	Versioning  bool                       `yaml:"versioning" toml:"versioning"`
	Strict      bool                       `yaml:"strict" toml:"strict"`
	Fingerprint string                     `yaml:"fingerprint" toml:"fingerprint"` // "mtime" (default) or "content"
	Root        string                     `yaml:"root" toml:"root"`               // Directory fingerprints are read from (default ".")
	Containers  map[string]ContainerConfig `yaml:"containers" toml:"containers"`

	// Path is the file the manifest was loaded from; empty when parsed from memory.
	Path string `yaml:"-" toml:"-"`
}

// ContainerConfig declares the assets of one named container.
type ContainerConfig struct {
	Prefix  string          `yaml:"prefix,omitempty" toml:"prefix"` // Empty = no prefix
	Styles  []AssetConfig   `yaml:"styles,omitempty" toml:"styles"`
	Scripts []AssetConfig   `yaml:"scripts,omitempty" toml:"scripts"`
	Remove  []RemovalConfig `yaml:"remove,omitempty" toml:"remove"`
}

// AssetConfig declares a single asset.
type AssetConfig struct {
	Name         string            `yaml:"name" toml:"name"`
	Source       string            `yaml:"source" toml:"source"`
	Dependencies []string          `yaml:"dependencies,omitempty" toml:"dependencies"`
	Attributes   map[string]string `yaml:"attributes,omitempty" toml:"attributes"`
	Override     bool              `yaml:"override,omitempty" toml:"override"` // Applies to the next render only
}

// RemovalConfig names an asset to drop on the next render.
type RemovalConfig struct {
	Type string `yaml:"type" toml:"type"` // "style" or "script"
	Name string `yaml:"name" toml:"name"`
}

// DefaultManifest returns an empty manifest with versioning off.
func DefaultManifest() *Manifest {
	return &Manifest{
		Fingerprint: FingerprintModTime,
		Root:        ".",
		Containers:  map[string]ContainerConfig{},
	}
}

// Validate checks names, sources and field lengths.
// Called automatically by LoadManifest, but available for callers that build
// a Manifest in code.
func (m *Manifest) Validate() error {
	switch m.Fingerprint {
	case "", FingerprintModTime, FingerprintContent:
	default:
		return fmt.Errorf("%w: %q (must be %s or %s)", ErrInvalidFingerprint, m.Fingerprint, FingerprintModTime, FingerprintContent)
	}

	for name, c := range m.Containers {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%w: container name cannot be empty", ErrInvalidManifest)
		}
		field := "containers." + name
		if err := validateFieldLength(field, name, MaxNameLength); err != nil {
			return err
		}
		if err := validateFieldLength(field+".prefix", c.Prefix, MaxURLLength); err != nil {
			return err
		}
		if err := validateAssets(field+".styles", c.Styles); err != nil {
			return err
		}
		if err := validateAssets(field+".scripts", c.Scripts); err != nil {
			return err
		}
		for i, r := range c.Remove {
			f := fmt.Sprintf("%s.remove[%d]", field, i)
			switch strings.ToLower(r.Type) {
			case "style", "styles", "css", "script", "scripts", "js":
			default:
				return fmt.Errorf("%w: %s.type: unknown asset type %q", ErrInvalidManifest, f, r.Type)
			}
			if r.Name == "" {
				return fmt.Errorf("%w: %s.name: required", ErrInvalidManifest, f)
			}
		}
	}

	return nil
}

func validateAssets(field string, assets []AssetConfig) error {
	for i, a := range assets {
		f := fmt.Sprintf("%s[%d]", field, i)
		if a.Name == "" {
			return fmt.Errorf("%w: %s.name: required", ErrInvalidManifest, f)
		}
		if strings.HasPrefix(a.Name, "!") {
			return fmt.Errorf("%w: %s.name: use override: true instead of a leading '!'", ErrInvalidManifest, f)
		}
		if a.Source == "" {
			return fmt.Errorf("%w: %s.source: required", ErrInvalidManifest, f)
		}
		if err := validateFieldLength(f+".name", a.Name, MaxNameLength); err != nil {
			return err
		}
		if err := validateFieldLength(f+".source", a.Source, MaxURLLength); err != nil {
			return err
		}
		for j, dep := range a.Dependencies {
			if err := validateFieldLength(fmt.Sprintf("%s.dependencies[%d]", f, j), dep, MaxNameLength); err != nil {
				return err
			}
		}
		for k, v := range a.Attributes {
			if err := validateFieldLength(f+".attributes."+k, v, MaxAttributeLength); err != nil {
				return err
			}
		}
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadManifest loads a manifest from a file path or manifest name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a manifest name and searched in standard locations.
// The format follows the extension: .yaml/.yml or .toml. Unknown fields are rejected.
func LoadManifest(nameOrPath string) (*Manifest, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyManifestName
	}

	var manifestPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) || hasManifestExt(nameOrPath) {
		manifestPath = nameOrPath
	} else {
		manifestPath, err = resolveManifestPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(manifestPath) // #nosec G304 -- manifest path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrManifestNotFound, manifestPath)
		}
		return nil, fmt.Errorf("reading manifest file: %w", err)
	}

	m, err := ParseManifest(data, filepath.Ext(manifestPath))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", manifestPath, err)
	}
	m.Path = manifestPath
	return m, nil
}

// ParseManifest decodes and validates manifest data in the format named by ext
// (".yaml", ".yml" or ".toml").
func ParseManifest(data []byte, ext string) (*Manifest, error) {
	if len(data) > MaxManifestSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrManifestTooLarge, len(data), MaxManifestSize)
	}

	m := DefaultManifest()
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yamlutil.UnmarshalStrict(data, m); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrManifestParse, err)
		}
	case ".toml":
		md, err := toml.Decode(string(data), m)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrManifestParse, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("%w: unknown field %q", ErrManifestParse, undecoded[0].String())
		}
	default:
		return nil, fmt.Errorf("%w: %q (use .yaml, .yml or .toml)", ErrUnsupportedFormat, ext)
	}

	if m.Fingerprint == "" {
		m.Fingerprint = FingerprintModTime
	}
	if m.Root == "" {
		m.Root = "."
	}
	if m.Containers == nil {
		m.Containers = map[string]ContainerConfig{}
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// manifestExtensions are tried in order when resolving a manifest by name.
var manifestExtensions = []string{".yaml", ".yml", ".toml"}

func hasManifestExt(s string) bool {
	ext := strings.ToLower(filepath.Ext(s))
	for _, e := range manifestExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// resolveManifestPath searches for a manifest by name in standard locations.
// Tries extensions in order: .yaml, .yml, .toml
// Tries locations in order: current directory, ~/.config/go-assetpipe/
func resolveManifestPath(name string) (string, error) {
	triedPaths := make([]string, 0, len(manifestExtensions)*2) // 2 locations

	// Try current directory first
	for _, ext := range manifestExtensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	// Try user config directory
	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range manifestExtensions {
			userPath := filepath.Join(userConfigDir, "go-assetpipe", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrManifestNotFound, strings.Join(triedPaths, ", "))
}
