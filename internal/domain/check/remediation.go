package check

import (
	"fmt"
	"strings"

	"github.com/fatih/camelcase"
	"github.com/layercheck/layercheck/internal/domain"
)

// Remediation returns the fix hints for v, naming the interface target the
// source should depend on when one can be derived.
func Remediation(v domain.Violation) []string {
	r, ok := Lookup(v.Rule)
	if !ok {
		return nil
	}

	hints := make([]string, len(r.Hints))
	copy(hints, r.Hints)

	if v.Rule == domain.RuleNoLateralImplCoupling && len(hints) > 0 {
		if iface := SuggestInterfaceTarget(v.Destination.TargetName, v.DestinationModule.ModuleName); iface != "" {
			hints[0] = fmt.Sprintf("Depend on the other module's Interface target (e.g. %s) instead, or", iface)
		}
	}
	return hints
}

// SuggestInterfaceTarget guesses the interface sibling of an impl target name:
// "AccountsImpl" becomes "AccountsInterface". When the target name carries no
// Impl suffix the module name is used instead; an empty result means no guess.
func SuggestInterfaceTarget(targetName, moduleName string) string {
	words := camelcase.Split(targetName)
	if n := len(words); n > 1 && strings.EqualFold(words[n-1], "impl") {
		return strings.Join(words[:n-1], "") + "Interface"
	}
	if moduleName == "" {
		return ""
	}
	return moduleName + "Interface"
}
