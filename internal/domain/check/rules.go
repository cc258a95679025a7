package check

import "github.com/layercheck/layercheck/internal/domain"

// Rule is a layering policy over pairs of governed modules.
type Rule struct {
	ID        domain.RuleID `json:"id"`
	Statement string        `json:"statement"`
	Hints     []string      `json:"hints"`
	// Forbids reports whether a dependency from src to dst breaks the rule.
	Forbids func(src, dst domain.ModuleDescriptor) bool `json:"-"`
}

// NoLateralImplCoupling forbids impl targets from linking other impl targets,
// except from the composition root layer, which exists to wire implementations.
var NoLateralImplCoupling = Rule{
	ID:        domain.RuleNoLateralImplCoupling,
	Statement: "Non-composition-root Impl targets must not link other Impl targets.",
	Hints: []string{
		"Depend on the other module's Interface target instead, or",
		"Move wiring into a CompositionRoot.",
	},
	Forbids: func(src, dst domain.ModuleDescriptor) bool {
		if src.Kind != domain.KindImpl || dst.Kind != domain.KindImpl {
			return false
		}
		return src.Layer != domain.LayerCompositionRoot
	},
}

// DefaultRules returns the fixed policy enforced by layercheck.
func DefaultRules() []Rule {
	return []Rule{NoLateralImplCoupling}
}

// Lookup returns the default rule with the given id.
func Lookup(id domain.RuleID) (Rule, bool) {
	for _, r := range DefaultRules() {
		if r.ID == id {
			return r, true
		}
	}
	return Rule{}, false
}

// IDs returns the ids of rules in order.
func IDs(rules []Rule) []domain.RuleID {
	ids := make([]domain.RuleID, len(rules))
	for i, r := range rules {
		ids[i] = r.ID
	}
	return ids
}
