package check_test

import (
	"testing"

	"github.com/layercheck/layercheck/internal/domain"
	"github.com/layercheck/layercheck/internal/domain/check"
	"github.com/layercheck/layercheck/internal/domain/classify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(project, target string) domain.TargetKey {
	return domain.TargetKey{ProjectPath: project, TargetName: target}
}

func edge(src, dst domain.TargetKey) domain.Edge {
	return domain.Edge{Source: src, Destination: dst}
}

var (
	widgetsImpl  = key("/A", "Widgets")
	widgetsIface = key("/A", "WidgetsInterface")
	accountsImpl = key("/B", "Accounts")
	rootImpl     = key("/App", "Root")
	sharedImpl   = key("/S", "Logging")
	thirdParty   = key("/B", "Alamofire")
	noBundleID   = key("/B", "Resources")
	dangling     = key("/Gone", "Ghost")
)

func sampleIndex() domain.TargetIndex {
	return domain.TargetIndex{
		widgetsImpl:  classify.Classify("feature.core.Widgets.impl"),
		widgetsIface: classify.Classify("feature.core.Widgets.interface"),
		accountsImpl: classify.Classify("feature.core.Accounts.impl"),
		rootImpl:     classify.Classify("compositionRoot.App.impl"),
		sharedImpl:   classify.Classify("shared.Logging.impl"),
		thirdParty:   classify.Classify("org.alamofire.Alamofire"),
		noBundleID:   domain.Unclassified(domain.ReasonNoIdentifier),
	}
}

func evaluate(edges ...domain.Edge) []domain.Violation {
	return check.Evaluate(sampleIndex(), edges, check.DefaultRules()...)
}

func TestEvaluate_ImplToImplIsViolation(t *testing.T) {
	violations := evaluate(edge(widgetsImpl, accountsImpl))
	require.Len(t, violations, 1)

	v := violations[0]
	assert.Equal(t, domain.RuleNoLateralImplCoupling, v.Rule)
	assert.Equal(t, widgetsImpl, v.Source)
	assert.Equal(t, accountsImpl, v.Destination)
	assert.Equal(t, "feature.core.Widgets.impl", v.SourceModule.SourceIdentifier)
	assert.Equal(t, "feature.core.Accounts.impl", v.DestinationModule.SourceIdentifier)
}

func TestEvaluate_ImplToInterfaceIsAllowed(t *testing.T) {
	assert.Empty(t, evaluate(edge(widgetsImpl, widgetsIface)))
}

func TestEvaluate_InterfaceToImplIsAllowed(t *testing.T) {
	assert.Empty(t, evaluate(edge(widgetsIface, accountsImpl)))
}

func TestEvaluate_SelfEdgeIsNeverAViolation(t *testing.T) {
	assert.Empty(t, evaluate(edge(widgetsImpl, widgetsImpl)))

	alwaysForbid := check.Rule{
		ID:      "always",
		Forbids: func(_, _ domain.ModuleDescriptor) bool { return true },
	}
	assert.Empty(t, check.Evaluate(sampleIndex(), []domain.Edge{edge(widgetsImpl, widgetsImpl)}, alwaysForbid))
}

func TestEvaluate_CompositionRootIsExempt(t *testing.T) {
	assert.Empty(t, evaluate(
		edge(rootImpl, widgetsImpl),
		edge(rootImpl, accountsImpl),
		edge(rootImpl, sharedImpl),
	))
}

func TestEvaluate_ImplToCompositionRootIsViolation(t *testing.T) {
	assert.Len(t, evaluate(edge(widgetsImpl, rootImpl)), 1)
}

func TestEvaluate_DetectionIgnoresLayerEquality(t *testing.T) {
	sameLayer := evaluate(edge(widgetsImpl, accountsImpl))
	crossLayer := evaluate(edge(widgetsImpl, sharedImpl))
	reverse := evaluate(edge(sharedImpl, widgetsImpl))

	assert.Len(t, sameLayer, 1)
	assert.Len(t, crossLayer, 1)
	assert.Len(t, reverse, 1)
}

func TestEvaluate_UnclassifiedTargetsAreOpaque(t *testing.T) {
	assert.Empty(t, evaluate(
		edge(widgetsImpl, thirdParty),
		edge(thirdParty, widgetsImpl),
		edge(widgetsImpl, noBundleID),
		edge(noBundleID, accountsImpl),
		edge(widgetsImpl, dangling),
		edge(dangling, accountsImpl),
	))
}

func TestEvaluate_DuplicateEdgesReportedEach(t *testing.T) {
	violations := evaluate(edge(widgetsImpl, accountsImpl), edge(widgetsImpl, accountsImpl))
	assert.Len(t, violations, 2)
}

func TestEvaluate_PreservesEdgeOrder(t *testing.T) {
	violations := evaluate(
		edge(sharedImpl, accountsImpl),
		edge(widgetsImpl, widgetsIface),
		edge(widgetsImpl, accountsImpl),
		edge(accountsImpl, sharedImpl),
	)
	require.Len(t, violations, 3)
	assert.Equal(t, sharedImpl, violations[0].Source)
	assert.Equal(t, widgetsImpl, violations[1].Source)
	assert.Equal(t, accountsImpl, violations[2].Source)
}

func TestEvaluate_IsPure(t *testing.T) {
	edges := []domain.Edge{edge(widgetsImpl, accountsImpl), edge(sharedImpl, widgetsImpl)}
	first := check.Evaluate(sampleIndex(), edges, check.DefaultRules()...)
	second := check.Evaluate(sampleIndex(), edges, check.DefaultRules()...)
	assert.Equal(t, first, second)
}

func TestEvaluate_NoRulesNoViolations(t *testing.T) {
	assert.Empty(t, check.Evaluate(sampleIndex(), []domain.Edge{edge(widgetsImpl, accountsImpl)}))
}

func TestLookup(t *testing.T) {
	r, ok := check.Lookup(domain.RuleNoLateralImplCoupling)
	require.True(t, ok)
	assert.Contains(t, r.Statement, "Impl")

	_, ok = check.Lookup("no-such-rule")
	assert.False(t, ok)
}

func TestIDs(t *testing.T) {
	assert.Equal(t, []domain.RuleID{domain.RuleNoLateralImplCoupling}, check.IDs(check.DefaultRules()))
}
