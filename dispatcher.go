package assetpipe

import (
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/alnah/go-assetpipe/internal/fingerprint"
	"github.com/alnah/go-assetpipe/internal/registry"
	"github.com/alnah/go-assetpipe/internal/resolver"
	"github.com/alnah/go-assetpipe/internal/tags"
	"github.com/alnah/go-assetpipe/internal/urlpath"
)

// Compile-time interface implementation checks.
var (
	_ Formatter     = (*tags.HTML)(nil)
	_ Fingerprinter = (*fingerprint.ModTime)(nil)
	_ Fingerprinter = (*fingerprint.ContentHash)(nil)
)

// Dispatcher renders the assets of a registry into tags.
// A Dispatcher may be shared by several containers. It is not safe for
// concurrent use: the versioning flag is read and written without locking.
type Dispatcher struct {
	versioning    bool
	strict        bool
	root          string
	fsys          fs.FS
	mode          FingerprintMode
	fingerprinter Fingerprinter
	formatter     Formatter
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithVersioning enables or disables cache-busting query values.
func WithVersioning(enabled bool) DispatcherOption {
	return func(d *Dispatcher) { d.versioning = enabled }
}

// WithStrict makes renders fail on unknown dependencies and dependency cycles.
func WithStrict(strict bool) DispatcherOption {
	return func(d *Dispatcher) { d.strict = strict }
}

// WithRoot sets the directory local asset files are fingerprinted from.
// Defaults to the working directory.
func WithRoot(dir string) DispatcherOption {
	return func(d *Dispatcher) {
		if dir != "" {
			d.root = dir
		}
	}
}

// WithFS sets the filesystem local asset files are fingerprinted from.
// Takes precedence over WithRoot.
func WithFS(fsys fs.FS) DispatcherOption {
	return func(d *Dispatcher) { d.fsys = fsys }
}

// WithFingerprintMode selects modification-time or content-hash fingerprints.
// Ignored when WithFingerprinter or WithClock is used.
func WithFingerprintMode(mode FingerprintMode) DispatcherOption {
	return func(d *Dispatcher) {
		if mode != "" {
			d.mode = mode
		}
	}
}

// WithClock fingerprints by modification time read from clock.
func WithClock(clock Clock) DispatcherOption {
	return func(d *Dispatcher) { d.fingerprinter = fingerprint.NewModTime(clock) }
}

// WithFingerprinter sets a custom fingerprint source.
func WithFingerprinter(f Fingerprinter) DispatcherOption {
	return func(d *Dispatcher) { d.fingerprinter = f }
}

// WithFormatter sets the tag formatter. Defaults to HTML tags.
func WithFormatter(f Formatter) DispatcherOption {
	return func(d *Dispatcher) { d.formatter = f }
}

// NewDispatcher creates a Dispatcher. Versioning and strict mode are off by
// default; fingerprints use file modification times under the working directory.
func NewDispatcher(opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		root: ".",
		mode: FingerprintModTime,
	}

	for _, opt := range opts {
		opt(d)
	}

	if d.fsys == nil {
		d.fsys = os.DirFS(d.root)
	}
	if d.fingerprinter == nil {
		switch d.mode {
		case FingerprintContent:
			d.fingerprinter = fingerprint.NewContentHash(d.fsys)
		default:
			d.fingerprinter = fingerprint.NewModTime(fingerprint.NewFSClock(d.fsys))
		}
	}
	if d.formatter == nil {
		d.formatter = tags.NewHTML()
	}

	return d
}

// AddVersioning turns cache-busting query values on for subsequent renders.
func (d *Dispatcher) AddVersioning() {
	d.versioning = true
}

// RemoveVersioning turns cache-busting query values off for subsequent renders.
func (d *Dispatcher) RemoveVersioning() {
	d.versioning = false
}

// Versioning reports whether cache-busting query values are appended.
func (d *Dispatcher) Versioning() bool {
	return d.versioning
}

// Strict reports whether renders fail on dependency problems.
func (d *Dispatcher) Strict() bool {
	return d.strict
}

// render renders the assets of type t held by reg, in dependency order, as one
// string of concatenated tags.
//
// Pending overrides for t replace the matching assets for this render and are
// then discarded. Pending removals for t delete the named assets. Both are only
// consumed when the render succeeds. Local sources are placed under prefix and
// remote sources are moved under it when prefix is remote too.
//
// The error is always nil unless the Dispatcher is strict.
func (d *Dispatcher) render(t AssetType, reg *registry.Registry, prefix string) (string, error) {
	if reg == nil || !t.Valid() {
		return "", nil
	}
	ordered, err := d.resolve(t, reg)
	if err != nil {
		return "", err
	}
	commit(t, reg)
	return d.emit(t, ordered, prefix), nil
}

// resolve orders the assets of type t with pending overrides and removals
// layered on, leaving reg untouched.
func (d *Dispatcher) resolve(t AssetType, reg *registry.Registry) ([]registry.Asset, error) {
	overrides, removals := reg.Pending(t)
	working := prepare(reg.Snapshot(t), overrides, removals)

	ordered, err := resolver.Resolve(working, resolver.WithStrict(d.strict))
	if err != nil {
		return nil, fmt.Errorf("rendering %ss: %w", t, err)
	}
	return ordered, nil
}

// commit discards the pending overrides of type t and deletes its pending
// removals from reg.
func commit(t AssetType, reg *registry.Registry) {
	reg.TakeOverrides(t)
	for _, name := range reg.TakeRemovals(t) {
		reg.Delete(t, name)
	}
}

func (d *Dispatcher) emit(t AssetType, ordered []registry.Asset, prefix string) string {
	var b strings.Builder
	for _, a := range ordered {
		// Inconsistent registrations render nothing rather than a broken tag.
		if a.Source == "" {
			continue
		}
		b.WriteString(d.tag(t, a, prefix))
	}
	return b.String()
}

// prepare layers overrides over assets and drops removed names, keeping the
// registration order of assets.
func prepare(assets, overrides []registry.Asset, removals []string) []registry.Asset {
	removed := make(map[string]bool, len(removals))
	for _, name := range removals {
		removed[name] = true
	}
	replacement := make(map[string]registry.Asset, len(overrides))
	for _, o := range overrides {
		replacement[o.Name] = o
	}

	out := assets[:0]
	for _, a := range assets {
		if removed[a.Name] {
			continue
		}
		if o, ok := replacement[a.Name]; ok {
			a = o
		}
		out = append(out, a)
	}
	return out
}

// URL returns the effective URL of source under prefix, with a fingerprint
// appended when versioning is on and source is a local file.
func (d *Dispatcher) URL(source, prefix string) string {
	url := urlpath.Apply(prefix, source)
	if !d.versioning {
		return url
	}
	file, ok := urlpath.FilePath(prefix, source)
	if !ok {
		return url
	}
	return urlpath.AppendQuery(url, d.fingerprinter.Fingerprint(file))
}

func (d *Dispatcher) tag(t AssetType, a registry.Asset, prefix string) string {
	url := d.URL(a.Source, prefix)
	if t == Style {
		return d.formatter.StyleTag(url, a.Attributes)
	}
	return d.formatter.ScriptTag(url, a.Attributes)
}
