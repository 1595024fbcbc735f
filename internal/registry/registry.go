package registry

// DefaultStyleMedia is the media attribute given to styles registered without one.
const DefaultStyleMedia = "all"

// Registry stores assets, pending overrides and pending removals per type.
// It is not safe for concurrent use.
type Registry struct {
	assets    [numTypes]*bucket
	overrides [numTypes]*bucket
	removals  [numTypes][]string
}

// New creates an empty Registry.
func New() *Registry {
	r := &Registry{}
	for i := 0; i < numTypes; i++ {
		r.assets[i] = newBucket()
		r.overrides[i] = newBucket()
	}
	return r
}

// Add stores a in the live set for t, replacing any asset with the same name.
// Returns false without storing anything if t is not recognised or the name is empty.
func (r *Registry) Add(t Type, a Asset) bool {
	if !t.Valid() || a.Name == "" {
		return false
	}
	r.assets[t].put(withDefaults(t, a))
	return true
}

// Override stores a as a replacement applied to the next render of t only.
// If t has no live asset named a.Name, a is also added to the live set so it
// keeps rendering after the override has been consumed.
func (r *Registry) Override(t Type, a Asset) bool {
	if !t.Valid() || a.Name == "" {
		return false
	}
	a = withDefaults(t, a)
	r.overrides[t].put(a)
	if _, ok := r.assets[t].get(a.Name); !ok {
		r.assets[t].put(a.Clone())
	}
	return true
}

// Remove records name for deletion from t on the next render.
// Unrecognised types and unknown names are accepted silently.
func (r *Registry) Remove(t Type, name string) {
	if !t.Valid() {
		return
	}
	r.removals[t] = append(r.removals[t], name)
}

// Get returns the live asset named name, if any.
func (r *Registry) Get(t Type, name string) (Asset, bool) {
	if !t.Valid() {
		return Asset{}, false
	}
	a, ok := r.assets[t].get(name)
	if !ok {
		return Asset{}, false
	}
	return a.Clone(), true
}

// Has reports whether t has a live asset named name.
func (r *Registry) Has(t Type, name string) bool {
	_, ok := r.Get(t, name)
	return ok
}

// Len returns the number of live assets of type t.
func (r *Registry) Len(t Type) int {
	if !t.Valid() {
		return 0
	}
	return r.assets[t].len()
}

// Snapshot returns copies of the live assets of type t in registration order.
func (r *Registry) Snapshot(t Type) []Asset {
	if !t.Valid() {
		return nil
	}
	return r.assets[t].list()
}

// Pending returns the overrides and removals waiting for the next render of t
// without consuming them.
func (r *Registry) Pending(t Type) (overrides []Asset, removals []string) {
	if !t.Valid() {
		return nil, nil
	}
	return r.overrides[t].list(), append([]string(nil), r.removals[t]...)
}

// TakeOverrides returns the pending overrides for t and clears them.
func (r *Registry) TakeOverrides(t Type) []Asset {
	if !t.Valid() {
		return nil
	}
	out := r.overrides[t].list()
	r.overrides[t].reset()
	return out
}

// TakeRemovals returns the pending removals for t, in the order they were
// recorded, and clears them.
func (r *Registry) TakeRemovals(t Type) []string {
	if !t.Valid() {
		return nil
	}
	out := r.removals[t]
	r.removals[t] = nil
	return out
}

// Delete drops the live asset named name from t. Returns false if it was absent.
func (r *Registry) Delete(t Type, name string) bool {
	if !t.Valid() {
		return false
	}
	return r.assets[t].delete(name)
}

// withDefaults returns a clone of a with the type-specific default attributes set.
func withDefaults(t Type, a Asset) Asset {
	a = a.Clone()
	if t == Style {
		if _, ok := a.Attributes["media"]; !ok {
			a.Attributes["media"] = DefaultStyleMedia
		}
	}
	return a
}
