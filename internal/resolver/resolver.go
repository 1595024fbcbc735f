package resolver

import (
	"fmt"
	"strings"

	"github.com/alnah/go-assetpipe/internal/registry"
)

type visitState uint8

const (
	unvisited visitState = iota
	inProgress
	done
)

type node struct {
	asset registry.Asset
	state visitState
}

// frame is one level of the explicit traversal stack: the node being expanded
// and the index of its next dependency to visit.
type frame struct {
	idx  int
	next int
}

type options struct {
	strict bool
}

// Option configures a resolution.
type Option func(*options)

// Strict makes unknown dependencies and cycles fail the resolution.
func Strict() Option {
	return func(o *options) { o.strict = true }
}

// WithStrict enables or disables strict mode.
func WithStrict(strict bool) Option {
	return func(o *options) { o.strict = strict }
}

// Resolve returns assets in dependency order: every asset appears exactly once,
// after each of its dependencies that is present in the input.
// If the input holds the same name more than once, the last definition wins and
// keeps the position of the first.
func Resolve(assets []registry.Asset, opts ...Option) ([]registry.Asset, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	nodes := make([]node, 0, len(assets))
	index := make(map[string]int, len(assets))
	for _, a := range assets {
		if i, ok := index[a.Name]; ok {
			nodes[i].asset = a
			continue
		}
		index[a.Name] = len(nodes)
		nodes = append(nodes, node{asset: a})
	}

	ordered := make([]registry.Asset, 0, len(nodes))
	var stack []frame

	for root := range nodes {
		if nodes[root].state != unvisited {
			continue
		}
		nodes[root].state = inProgress
		stack = append(stack[:0], frame{idx: root})

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			current := &nodes[top.idx]
			deps := current.asset.Dependencies

			if top.next == len(deps) {
				current.state = done
				ordered = append(ordered, current.asset)
				stack = stack[:len(stack)-1]
				continue
			}

			dep := deps[top.next]
			top.next++

			i, ok := index[dep]
			if !ok {
				if o.strict {
					return nil, fmt.Errorf("%w: %q requires %q", ErrUnknownDependency, current.asset.Name, dep)
				}
				continue
			}

			switch nodes[i].state {
			case unvisited:
				nodes[i].state = inProgress
				stack = append(stack, frame{idx: i})
			case inProgress:
				if o.strict {
					return nil, fmt.Errorf("%w: %s", ErrDependencyCycle, cyclePath(nodes, stack, i))
				}
			case done:
			}
		}
	}

	return ordered, nil
}

// cyclePath formats the back-edge to nodes[target] as "a -> b -> a", starting at
// the frame where target was entered.
func cyclePath(nodes []node, stack []frame, target int) string {
	start := 0
	for i, f := range stack {
		if f.idx == target {
			start = i
			break
		}
	}
	parts := make([]string, 0, len(stack)-start+1)
	for _, f := range stack[start:] {
		parts = append(parts, nodes[f.idx].asset.Name)
	}
	parts = append(parts, nodes[target].asset.Name)
	return strings.Join(parts, " -> ")
}
