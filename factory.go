package assetpipe

import "sort"

// DefaultContainer is the container name used when none is given.
const DefaultContainer = "default"

// Factory hands out named containers, creating them on first use.
type Factory struct {
	containers     map[string]*Container
	dispatcher     *Dispatcher
	dispatcherOpts []DispatcherOption
}

// FactoryOption configures a Factory.
type FactoryOption func(*Factory)

// WithDispatcher makes every container share d.
func WithDispatcher(d *Dispatcher) FactoryOption {
	return func(f *Factory) { f.dispatcher = d }
}

// WithDispatcherOptions sets the options used to build each container's own
// Dispatcher. Ignored when WithDispatcher is used.
func WithDispatcherOptions(opts ...DispatcherOption) FactoryOption {
	return func(f *Factory) { f.dispatcherOpts = append(f.dispatcherOpts, opts...) }
}

// NewFactory creates a Factory with no containers.
func NewFactory(opts ...FactoryOption) *Factory {
	f := &Factory{containers: make(map[string]*Container)}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Container returns the container called name, creating it if needed.
// An empty name selects DefaultContainer.
func (f *Factory) Container(name string) *Container {
	if name == "" {
		name = DefaultContainer
	}
	if c, ok := f.containers[name]; ok {
		return c
	}
	d := f.dispatcher
	if d == nil {
		d = NewDispatcher(f.dispatcherOpts...)
	}
	c := NewContainer(name, d)
	f.containers[name] = c
	return c
}

// Has reports whether a container called name exists.
func (f *Factory) Has(name string) bool {
	_, ok := f.containers[name]
	return ok
}

// Names returns the names of the existing containers, sorted.
func (f *Factory) Names() []string {
	names := make([]string, 0, len(f.containers))
	for name := range f.containers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
