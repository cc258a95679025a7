package graph

import "github.com/layercheck/layercheck/internal/domain"

// EnumerateEdges resolves every usable dependency reference of g into an Edge.
// Order follows projects, then targets, then declaration order. Duplicate
// declarations produce duplicate edges.
func EnumerateEdges(g *domain.ProjectGraph) []domain.Edge {
	var edges []domain.Edge
	for _, p := range g.Projects {
		for _, t := range p.Targets {
			source := domain.TargetKey{ProjectPath: p.Path, TargetName: t.Name}
			for _, dep := range t.Dependencies {
				dest, ok := resolve(p.Path, dep)
				if !ok {
					continue
				}
				edges = append(edges, domain.Edge{Source: source, Destination: dest})
			}
		}
	}
	return edges
}

func resolve(projectPath string, dep domain.DependencyRef) (domain.TargetKey, bool) {
	switch dep.Shape {
	case domain.RefProject:
		if dep.ProjectPath == "" || !dep.HasTargetName {
			return domain.TargetKey{}, false
		}
		return domain.TargetKey{ProjectPath: dep.ProjectPath, TargetName: dep.TargetName}, true
	case domain.RefTarget:
		if !dep.HasTargetName {
			return domain.TargetKey{}, false
		}
		return domain.TargetKey{ProjectPath: projectPath, TargetName: dep.TargetName}, true
	default:
		return domain.TargetKey{}, false
	}
}
