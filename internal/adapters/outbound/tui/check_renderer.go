package tui

import (
	"fmt"
	"strings"

	"github.com/layercheck/layercheck/internal/domain"
	"github.com/layercheck/layercheck/internal/domain/check"
)

// RenderViolation renders one violation as a block naming the rule, both
// endpoints and the fix hints.
func RenderViolation(v domain.Violation) string {
	var b strings.Builder

	statement := string(v.Rule)
	if r, ok := check.Lookup(v.Rule); ok {
		statement = r.Statement
	}

	b.WriteString(alarmStyle.Render("🛑 ARCHITECTURE VIOLATION 🛑") + "\n")
	b.WriteString(faintStyle.Render(ruleLineText) + "\n")
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Rule:"), statement)
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("From:"), endpoint(v.Source, v.SourceModule))
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("To:  "), endpoint(v.Destination, v.DestinationModule))
	b.WriteString(labelStyle.Render("Fix:") + "\n")
	for _, hint := range check.Remediation(v) {
		b.WriteString("- " + hint + "\n")
	}
	b.WriteString(faintStyle.Render(ruleLineText))

	return b.String()
}

// RenderViolations renders every violation block separated by a blank line,
// followed by the failure summary.
func RenderViolations(result *domain.CheckResult) string {
	blocks := make([]string, len(result.Violations))
	for i, v := range result.Violations {
		blocks[i] = RenderViolation(v)
	}

	var b strings.Builder
	if len(blocks) > 0 {
		b.WriteString(strings.Join(blocks, "\n\n"))
		b.WriteString("\n")
	}
	b.WriteString(RenderSummary(result))
	b.WriteString("\n")
	return b.String()
}

// RenderSummary returns the one-line pass or fail summary for result.
func RenderSummary(result *domain.CheckResult) string {
	ms := result.Duration.Milliseconds()
	if result.Passed() {
		return passStyle.Render(fmt.Sprintf("✅ graph check passed (%d edges, %dms).", result.Edges, ms))
	}
	return failStyle.Render(fmt.Sprintf("❌ graph check failed (%d violations, %dms).", len(result.Violations), ms))
}

func endpoint(key domain.TargetKey, m domain.ModuleDescriptor) string {
	return fmt.Sprintf("%s :: %s %s", key.ProjectPath, key.TargetName, dimStyle.Render("("+m.SourceIdentifier+")"))
}
