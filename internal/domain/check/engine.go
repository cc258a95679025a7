// Package check evaluates layering rules over a target index and edge list.
package check

import "github.com/layercheck/layercheck/internal/domain"

// Evaluate returns one violation per edge and rule that the edge breaks, in
// edge order. Edges touching unknown or unclassified targets are not judged,
// and self-edges are always allowed.
func Evaluate(index domain.TargetIndex, edges []domain.Edge, rules ...Rule) []domain.Violation {
	var violations []domain.Violation

	for _, e := range edges {
		if e.IsSelf() {
			continue
		}

		src, ok := index.Module(e.Source)
		if !ok {
			continue
		}
		dst, ok := index.Module(e.Destination)
		if !ok {
			continue
		}

		for _, r := range rules {
			if !r.Forbids(src, dst) {
				continue
			}
			violations = append(violations, domain.Violation{
				Rule:              r.ID,
				Source:            e.Source,
				SourceModule:      src,
				Destination:       e.Destination,
				DestinationModule: dst,
			})
		}
	}

	return violations
}
