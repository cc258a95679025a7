package tui_test

import (
	"testing"

	"github.com/layercheck/layercheck/internal/adapters/outbound/tui"
	"github.com/layercheck/layercheck/internal/domain"
	"github.com/layercheck/layercheck/internal/domain/classify"
	"github.com/layercheck/layercheck/internal/domain/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderHistory_Empty(t *testing.T) {
	assert.Contains(t, tui.RenderHistory(nil), "No check history found.")
}

func TestRenderHistory_Entries(t *testing.T) {
	entries := []domain.RunEntry{
		{Timestamp: "2026-10-01T10:00:00Z", CommitHash: "abcdef1234567", Edges: 40, Violations: 0, DurationMS: 12},
		{Timestamp: "2026-10-02T10:00:00Z", Edges: 41, Violations: 3, DurationMS: 15},
	}

	out := tui.RenderHistory(entries)
	assert.Contains(t, out, "Check History")
	assert.Contains(t, out, "2026-10-01")
	assert.Contains(t, out, "abcdef1")
	assert.NotContains(t, out, "abcdef12")
	assert.Contains(t, out, "pass")
	assert.Contains(t, out, "3 violations")
	assert.Contains(t, out, "↑3")
}

func TestRenderModules_Tree(t *testing.T) {
	index := domain.TargetIndex{
		{ProjectPath: "/repo/Accounts", TargetName: "AccountsImpl"}:      classify.Classify("feature.Accounts.impl"),
		{ProjectPath: "/repo/Accounts", TargetName: "AccountsInterface"}: classify.Classify("feature.Accounts.interface"),
		{ProjectPath: "/repo/App", TargetName: "Root"}:                   classify.Classify("compositionRoot.App.impl"),
		{ProjectPath: "/repo/Vendor", TargetName: "Alamofire"}:           classify.Classify("org.alamofire.Alamofire"),
	}

	out, err := tui.RenderModules(graph.GroupModules(index), index.GovernedCount(), len(index))
	require.NoError(t, err)

	assert.Contains(t, out, "Governed Modules")
	assert.Contains(t, out, "3 of 4 targets governed")
	assert.Contains(t, out, "compositionRoot")
	assert.Contains(t, out, "feature")
	assert.Contains(t, out, "Accounts")
	assert.Contains(t, out, "AccountsImpl [impl] /repo/Accounts")
	assert.Contains(t, out, "AccountsInterface [interface] /repo/Accounts")
	assert.NotContains(t, out, "Alamofire")
}

func TestRenderModules_Empty(t *testing.T) {
	out, err := tui.RenderModules(nil, 0, 2)
	require.NoError(t, err)
	assert.Contains(t, out, "No governed targets found.")
}

func TestRenderClassification(t *testing.T) {
	governed := tui.RenderClassification("feature.core.WidgetKit.impl", classify.Classify("feature.core.WidgetKit.impl"))
	assert.Contains(t, governed, "layer=core module=WidgetKit kind=impl")

	ungoverned := tui.RenderClassification("com.acme.Payments.impl", classify.Classify("com.acme.Payments.impl"))
	assert.Contains(t, ungoverned, "unclassified: no layer segment")
}
