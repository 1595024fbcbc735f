package assetpipe

import (
	"io"
	"strings"

	"github.com/alnah/go-assetpipe/internal/depgraph"
	"github.com/alnah/go-assetpipe/internal/registry"
)

// Container is a named collection of assets with its own path prefix.
// Rendering and versioning are delegated to its Dispatcher.
// A Container is not safe for concurrent use.
type Container struct {
	name       string
	registry   *registry.Registry
	prefix     string
	dispatcher *Dispatcher
}

// NewContainer creates an empty container. If d is nil the container gets its
// own Dispatcher with default settings.
func NewContainer(name string, d *Dispatcher) *Container {
	if d == nil {
		d = NewDispatcher()
	}
	return &Container{
		name:       name,
		registry:   registry.New(),
		dispatcher: d,
	}
}

// Name returns the container name.
func (c *Container) Name() string {
	return c.name
}

// Dispatcher returns the Dispatcher rendering this container.
func (c *Container) Dispatcher() *Dispatcher {
	return c.dispatcher
}

// Register adds an asset of type t, replacing any asset of that type with the
// same name. Styles default to media="all".
// A name starting with OverrideMarker registers an override instead; see Override.
func (c *Container) Register(t AssetType, name, source string, deps []string, attrs map[string]string) {
	if stripped, ok := strings.CutPrefix(name, OverrideMarker); ok {
		c.Override(t, stripped, source, deps, attrs)
		return
	}
	c.registry.Add(t, registry.Asset{
		Name:         name,
		Source:       source,
		Dependencies: deps,
		Attributes:   attrs,
	})
}

// Add registers an asset whose type is inferred from source: .css files are
// styles, everything else is a script.
func (c *Container) Add(name, source string, deps []string, attrs map[string]string) {
	c.Register(inferType(source), name, source, deps, attrs)
}

// Style registers a stylesheet.
func (c *Container) Style(name, source string, deps []string, attrs map[string]string) {
	c.Register(Style, name, source, deps, attrs)
}

// Script registers a script.
func (c *Container) Script(name, source string, deps []string, attrs map[string]string) {
	c.Register(Script, name, source, deps, attrs)
}

// Override replaces the asset named name for the next render of t only.
// The following render uses the regular definition again. If no asset of that
// name exists, the override is also registered as a regular asset.
func (c *Container) Override(t AssetType, name, source string, deps []string, attrs map[string]string) {
	c.registry.Override(t, registry.Asset{
		Name:         name,
		Source:       source,
		Dependencies: deps,
		Attributes:   attrs,
	})
}

// Remove drops the asset named name from the next render of t onwards.
// Unknown names and types are ignored.
func (c *Container) Remove(t AssetType, name string) {
	c.registry.Remove(t, name)
}

// RemoveByName is Remove with the type given by name ("style", "script", ...).
// Unrecognised type names are ignored.
func (c *Container) RemoveByName(typeName, name string) {
	t, err := ParseAssetType(typeName)
	if err != nil {
		return
	}
	c.Remove(t, name)
}

// Prefix sets the path prefix for rendered URLs. An empty prefix means none.
func (c *Container) Prefix(prefix string) {
	c.prefix = prefix
}

// PrefixPath returns the current path prefix.
func (c *Container) PrefixPath() string {
	return c.prefix
}

// AddVersioning turns on cache-busting query values on the container's Dispatcher.
func (c *Container) AddVersioning() {
	c.dispatcher.AddVersioning()
}

// RemoveVersioning turns off cache-busting query values on the container's Dispatcher.
func (c *Container) RemoveVersioning() {
	c.dispatcher.RemoveVersioning()
}

// Styles renders the stylesheet tags. An empty style set renders "".
func (c *Container) Styles() (string, error) {
	return c.dispatcher.render(Style, c.registry, c.prefix)
}

// Scripts renders the script tags. An empty script set renders "".
func (c *Container) Scripts() (string, error) {
	return c.dispatcher.render(Script, c.registry, c.prefix)
}

// Show renders scripts followed by styles. Pending overrides and removals are
// consumed only when every type resolves.
func (c *Container) Show() (string, error) {
	ordered := make([][]registry.Asset, len(registry.Types))
	for i, t := range registry.Types {
		assets, err := c.dispatcher.resolve(t, c.registry)
		if err != nil {
			return "", err
		}
		ordered[i] = assets
	}

	var b strings.Builder
	for i, t := range registry.Types {
		commit(t, c.registry)
		b.WriteString(c.dispatcher.emit(t, ordered[i], c.prefix))
	}
	return b.String(), nil
}

// Assets returns the registered assets of type t in registration order,
// without applying pending overrides or removals.
func (c *Container) Assets(t AssetType) []Asset {
	return c.registry.Snapshot(t)
}

// Has reports whether an asset of type t named name is registered.
func (c *Container) Has(t AssetType, name string) bool {
	return c.registry.Has(t, name)
}

// Check reports unknown dependencies and dependency cycles among the assets of
// type t. It does not consume pending overrides or removals.
func (c *Container) Check(t AssetType) (*DependencyReport, error) {
	report, err := depgraph.Analyze(c.pending(t))
	if err != nil {
		return nil, err
	}
	out := &DependencyReport{Cycles: report.Cycles}
	for _, m := range report.Missing {
		out.Missing = append(out.Missing, MissingDependency{Asset: m.Asset, Dependency: m.Dependency})
	}
	return out, nil
}

// WriteGraph writes the dependency graph of the assets of type t to w in
// Graphviz DOT format. It does not consume pending overrides or removals.
func (c *Container) WriteGraph(w io.Writer, t AssetType) error {
	return depgraph.WriteDOT(w, c.pending(t))
}

// pending returns the assets the next render of t would resolve.
func (c *Container) pending(t AssetType) []registry.Asset {
	overrides, removals := c.registry.Pending(t)
	return prepare(c.registry.Snapshot(t), overrides, removals)
}
