// Package graph derives the target index and the dependency edge list from a
// loaded ProjectGraph. Both are built once per run and never mutated.
package graph

import (
	"github.com/layercheck/layercheck/internal/domain"
	"github.com/layercheck/layercheck/internal/domain/classify"
)

// BuildIndex classifies every target of g. Targets without a bundle
// identifier are present in the index as unclassified, so that a lookup miss
// always means a dangling reference.
func BuildIndex(g *domain.ProjectGraph) domain.TargetIndex {
	index := make(domain.TargetIndex, g.TargetCount())
	for _, p := range g.Projects {
		for _, t := range p.Targets {
			key := domain.TargetKey{ProjectPath: p.Path, TargetName: t.Name}
			if !t.HasBundleID {
				index[key] = domain.Unclassified(domain.ReasonNoIdentifier)
				continue
			}
			index[key] = classify.Classify(t.BundleID)
		}
	}
	return index
}
