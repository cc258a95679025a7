package graph_test

import (
	"testing"

	"github.com/layercheck/layercheck/internal/domain"
	"github.com/layercheck/layercheck/internal/domain/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(project, target string) domain.TargetKey {
	return domain.TargetKey{ProjectPath: project, TargetName: target}
}

func target(name, bundleID string, deps ...domain.DependencyRef) domain.Target {
	return domain.Target{Name: name, BundleID: bundleID, HasBundleID: true, Dependencies: deps}
}

func projectRef(path, name string) domain.DependencyRef {
	return domain.DependencyRef{Shape: domain.RefProject, ProjectPath: path, TargetName: name, HasTargetName: true}
}

func localRef(name string) domain.DependencyRef {
	return domain.DependencyRef{Shape: domain.RefTarget, TargetName: name, HasTargetName: true}
}

func sampleGraph() *domain.ProjectGraph {
	return &domain.ProjectGraph{Projects: []domain.Project{
		{
			Path: "/repo/Features/Widgets",
			Targets: []domain.Target{
				target("WidgetsImpl", "feature.core.Widgets.impl",
					projectRef("/repo/Features/Accounts", "AccountsImpl"),
					localRef("WidgetsInterface"),
				),
				target("WidgetsInterface", "feature.core.Widgets.interface"),
				{Name: "WidgetsResources"},
			},
		},
		{
			Path: "/repo/Features/Accounts",
			Targets: []domain.Target{
				target("AccountsImpl", "feature.core.Accounts.impl"),
				target("Alamofire", "org.alamofire.Alamofire"),
			},
		},
	}}
}

func TestBuildIndex_EveryTargetHasAnEntry(t *testing.T) {
	index := graph.BuildIndex(sampleGraph())
	assert.Len(t, index, 5)
	assert.Equal(t, 3, index.GovernedCount())
}

func TestBuildIndex_ClassifiesBundleIDs(t *testing.T) {
	index := graph.BuildIndex(sampleGraph())

	m, ok := index.Module(key("/repo/Features/Widgets", "WidgetsImpl"))
	require.True(t, ok)
	assert.Equal(t, domain.LayerCore, m.Layer)
	assert.Equal(t, "Widgets", m.ModuleName)
	assert.Equal(t, domain.KindImpl, m.Kind)
}

func TestBuildIndex_KnownButUngoverned(t *testing.T) {
	index := graph.BuildIndex(sampleGraph())

	c, known := index.Lookup(key("/repo/Features/Widgets", "WidgetsResources"))
	assert.True(t, known)
	assert.False(t, c.Governed())
	assert.Equal(t, domain.ReasonNoIdentifier, c.Reason())

	c, known = index.Lookup(key("/repo/Features/Accounts", "Alamofire"))
	assert.True(t, known)
	assert.False(t, c.Governed())
	assert.Equal(t, domain.ReasonUnknownKind, c.Reason())
}

func TestBuildIndex_UnknownKey(t *testing.T) {
	index := graph.BuildIndex(sampleGraph())
	_, known := index.Lookup(key("/repo/Missing", "Ghost"))
	assert.False(t, known)
	_, ok := index.Module(key("/repo/Missing", "Ghost"))
	assert.False(t, ok)
}

func TestBuildIndex_EmptyGraph(t *testing.T) {
	index := graph.BuildIndex(&domain.ProjectGraph{})
	assert.Empty(t, index)
}

func TestEnumerateEdges_ResolvesBothShapes(t *testing.T) {
	edges := graph.EnumerateEdges(sampleGraph())
	require.Len(t, edges, 2)

	assert.Equal(t, domain.Edge{
		Source:      key("/repo/Features/Widgets", "WidgetsImpl"),
		Destination: key("/repo/Features/Accounts", "AccountsImpl"),
	}, edges[0])
	assert.Equal(t, domain.Edge{
		Source:      key("/repo/Features/Widgets", "WidgetsImpl"),
		Destination: key("/repo/Features/Widgets", "WidgetsInterface"),
	}, edges[1])
}

func TestEnumerateEdges_SkipsMalformedReferences(t *testing.T) {
	g := &domain.ProjectGraph{Projects: []domain.Project{{
		Path: "/p",
		Targets: []domain.Target{
			target("A", "feature.A.impl",
				domain.DependencyRef{Shape: domain.RefProject, TargetName: "B", HasTargetName: true},
				domain.DependencyRef{Shape: domain.RefProject, ProjectPath: "/q"},
				domain.DependencyRef{Shape: domain.RefTarget},
				domain.DependencyRef{Shape: domain.RefUnknown, ProjectPath: "/q", TargetName: "B", HasTargetName: true},
				localRef("C"),
			),
		},
	}}}

	edges := graph.EnumerateEdges(g)
	require.Len(t, edges, 1)
	assert.Equal(t, key("/p", "C"), edges[0].Destination)
}

func TestEnumerateEdges_EmptyTargetNameIsStillAName(t *testing.T) {
	g := &domain.ProjectGraph{Projects: []domain.Project{{
		Path:    "/p",
		Targets: []domain.Target{target("A", "", localRef(""))},
	}}}

	edges := graph.EnumerateEdges(g)
	require.Len(t, edges, 1)
	assert.Equal(t, key("/p", ""), edges[0].Destination)
}

func TestEnumerateEdges_KeepsDuplicatesAndOrder(t *testing.T) {
	g := &domain.ProjectGraph{Projects: []domain.Project{
		{Path: "/b", Targets: []domain.Target{
			target("Z", "", localRef("Y"), localRef("Y")),
			target("A", "", localRef("X")),
		}},
		{Path: "/a", Targets: []domain.Target{
			target("M", "", projectRef("/b", "Z")),
		}},
	}}

	edges := graph.EnumerateEdges(g)
	require.Len(t, edges, 4)
	assert.Equal(t, key("/b", "Y"), edges[0].Destination)
	assert.Equal(t, key("/b", "Y"), edges[1].Destination)
	assert.Equal(t, key("/b", "X"), edges[2].Destination)
	assert.Equal(t, key("/a", "M"), edges[3].Source)
}

func TestEnumerateEdges_SelfEdge(t *testing.T) {
	g := &domain.ProjectGraph{Projects: []domain.Project{{
		Path:    "/p",
		Targets: []domain.Target{target("A", "feature.A.impl", localRef("A"), projectRef("/p", "A"))},
	}}}

	edges := graph.EnumerateEdges(g)
	require.Len(t, edges, 2)
	assert.True(t, edges[0].IsSelf())
	assert.True(t, edges[1].IsSelf())
}

func TestGroupModules(t *testing.T) {
	g := sampleGraph()
	g.Projects = append(g.Projects, domain.Project{
		Path: "/repo/App",
		Targets: []domain.Target{
			target("AppImpl", "app.Main.impl"),
			target("Root", "compositionRoot.Main.impl"),
		},
	})

	groups := graph.GroupModules(graph.BuildIndex(g))
	require.Len(t, groups, 3)

	assert.Equal(t, domain.LayerApp, groups[0].Layer)
	assert.Equal(t, domain.LayerCompositionRoot, groups[1].Layer)
	assert.Equal(t, domain.LayerCore, groups[2].Layer)

	core := groups[2]
	require.Len(t, core.Modules, 2)
	assert.Equal(t, "Accounts", core.Modules[0].Name)
	assert.Equal(t, "Widgets", core.Modules[1].Name)

	widgets := core.Modules[1].Targets
	require.Len(t, widgets, 2)
	assert.Equal(t, domain.KindInterface, widgets[0].Kind)
	assert.Equal(t, domain.KindImpl, widgets[1].Kind)
}

func TestGroupModules_NoGovernedTargets(t *testing.T) {
	g := &domain.ProjectGraph{Projects: []domain.Project{{
		Path:    "/p",
		Targets: []domain.Target{target("Alamofire", "org.alamofire.Alamofire")},
	}}}
	assert.Empty(t, graph.GroupModules(graph.BuildIndex(g)))
}
