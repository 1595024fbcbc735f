package registry

// bucket is an insertion-ordered map of assets keyed by name.
// Replacing an existing name keeps its original position.
type bucket struct {
	order []string
	items map[string]Asset
}

func newBucket() *bucket {
	return &bucket{items: make(map[string]Asset)}
}

func (b *bucket) put(a Asset) {
	if _, ok := b.items[a.Name]; !ok {
		b.order = append(b.order, a.Name)
	}
	b.items[a.Name] = a
}

func (b *bucket) get(name string) (Asset, bool) {
	a, ok := b.items[name]
	return a, ok
}

func (b *bucket) delete(name string) bool {
	if _, ok := b.items[name]; !ok {
		return false
	}
	delete(b.items, name)
	for i, n := range b.order {
		if n == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	return true
}

func (b *bucket) len() int {
	return len(b.order)
}

// list returns clones of the assets in insertion order.
func (b *bucket) list() []Asset {
	out := make([]Asset, 0, len(b.order))
	for _, name := range b.order {
		out = append(out, b.items[name].Clone())
	}
	return out
}

func (b *bucket) reset() {
	b.order = nil
	b.items = make(map[string]Asset)
}
