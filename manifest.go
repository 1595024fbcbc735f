package assetpipe

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/alnah/go-assetpipe/internal/config"
)

// LoadFactory builds a Factory from a YAML or TOML manifest.
// nameOrPath is a file path, or a manifest name searched in the working
// directory and the user config directory. A relative manifest root is taken
// relative to the manifest file.
//
// opts are applied after the manifest settings, so they take precedence.
func LoadFactory(nameOrPath string, opts ...DispatcherOption) (*Factory, error) {
	m, err := config.LoadManifest(nameOrPath)
	if err != nil {
		return nil, err
	}
	if !filepath.IsAbs(m.Root) {
		m.Root = filepath.Join(filepath.Dir(m.Path), m.Root)
	}
	return fromManifest(m, opts), nil
}

// ParseFactory builds a Factory from manifest data in the given format
// ("yaml", "yml" or "toml"). A relative manifest root is taken relative to the
// working directory.
func ParseFactory(data []byte, format string, opts ...DispatcherOption) (*Factory, error) {
	m, err := config.ParseManifest(data, "."+format)
	if err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	return fromManifest(m, opts), nil
}

func fromManifest(m *config.Manifest, opts []DispatcherOption) *Factory {
	dispatcherOpts := []DispatcherOption{
		WithVersioning(m.Versioning),
		WithStrict(m.Strict),
		WithRoot(m.Root),
		WithFingerprintMode(FingerprintMode(m.Fingerprint)),
	}
	f := NewFactory(WithDispatcherOptions(append(dispatcherOpts, opts...)...))

	names := make([]string, 0, len(m.Containers))
	for name := range m.Containers {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		cfg := m.Containers[name]
		c := f.Container(name)
		c.Prefix(cfg.Prefix)
		registerAll(c, Style, cfg.Styles)
		registerAll(c, Script, cfg.Scripts)
		for _, r := range cfg.Remove {
			c.RemoveByName(r.Type, r.Name)
		}
	}
	return f
}

func registerAll(c *Container, t AssetType, assets []config.AssetConfig) {
	for _, a := range assets {
		if a.Override {
			c.Override(t, a.Name, a.Source, a.Dependencies, a.Attributes)
			continue
		}
		c.Register(t, a.Name, a.Source, a.Dependencies, a.Attributes)
	}
}
