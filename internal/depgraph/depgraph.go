// Package depgraph builds a dominikbraun/graph view of asset dependencies for
// diagnostics: Graphviz DOT export and reports of unknown dependencies and cycles.
//
// Rendering never goes through this package; see the resolver package for the
// ordering used to emit tags.
package depgraph

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/dominikbraun/graph"
	"github.com/dominikbraun/graph/draw"

	"github.com/alnah/go-assetpipe/internal/registry"
)

// Missing is a dependency naming an asset that is not registered.
type Missing struct {
	Asset      string
	Dependency string
}

// Report summarizes problems found in a set of assets.
type Report struct {
	Missing []Missing  // in asset order, then declared dependency order
	Cycles  [][]string // each cycle's members sorted; cycles sorted by first member
}

// OK returns true if the report found nothing.
func (r *Report) OK() bool {
	return len(r.Missing) == 0 && len(r.Cycles) == 0
}

func assetHash(a registry.Asset) string {
	return a.Name
}

// Build returns a directed graph with an edge dep -> asset for every dependency
// present in assets. Unknown dependencies and self-dependencies add no edge.
func Build(assets []registry.Asset) (graph.Graph[string, registry.Asset], error) {
	g := graph.New(assetHash, graph.Directed())

	for _, a := range assets {
		if err := g.AddVertex(a); err != nil && !errors.Is(err, graph.ErrVertexAlreadyExists) {
			return nil, fmt.Errorf("adding vertex %q: %w", a.Name, err)
		}
	}

	known := names(assets)
	for _, a := range assets {
		for _, dep := range a.Dependencies {
			if dep == a.Name || !known[dep] {
				continue
			}
			// dep must be emitted before a, so the edge points from dep to a.
			if err := g.AddEdge(dep, a.Name); err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists) {
				return nil, fmt.Errorf("adding edge %q -> %q: %w", dep, a.Name, err)
			}
		}
	}

	return g, nil
}

// Analyze reports unknown dependencies and dependency cycles in assets.
func Analyze(assets []registry.Asset) (*Report, error) {
	report := &Report{}
	known := names(assets)

	for _, a := range assets {
		seen := make(map[string]bool, len(a.Dependencies))
		for _, dep := range a.Dependencies {
			if seen[dep] {
				continue
			}
			seen[dep] = true
			if dep == a.Name {
				report.Cycles = append(report.Cycles, []string{a.Name})
				continue
			}
			if !known[dep] {
				report.Missing = append(report.Missing, Missing{Asset: a.Name, Dependency: dep})
			}
		}
	}

	g, err := Build(assets)
	if err != nil {
		return nil, err
	}
	components, err := graph.StronglyConnectedComponents(g)
	if err != nil {
		return nil, fmt.Errorf("finding cycles: %w", err)
	}
	for _, c := range components {
		if len(c) < 2 {
			continue
		}
		report.Cycles = append(report.Cycles, c)
	}

	for _, c := range report.Cycles {
		sort.Strings(c)
	}
	sort.Slice(report.Cycles, func(i, j int) bool {
		return report.Cycles[i][0] < report.Cycles[j][0]
	})

	return report, nil
}

// WriteDOT writes the dependency graph of assets to w in Graphviz DOT format.
func WriteDOT(w io.Writer, assets []registry.Asset) error {
	g, err := Build(assets)
	if err != nil {
		return err
	}
	if err := draw.DOT(g, w); err != nil {
		return fmt.Errorf("writing DOT: %w", err)
	}
	return nil
}

func names(assets []registry.Asset) map[string]bool {
	out := make(map[string]bool, len(assets))
	for _, a := range assets {
		out[a.Name] = true
	}
	return out
}
