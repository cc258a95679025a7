package domain

import "time"

// Layer is the architectural tier a governed module belongs to.
type Layer string

const (
	LayerApp             Layer = "app"
	LayerCompositionRoot Layer = "compositionRoot"
	LayerFeature         Layer = "feature"
	LayerCore            Layer = "core"
	LayerShared          Layer = "shared"
	LayerUtility         Layer = "utility"
)

// Layers enumerates every recognized layer token in display order.
var Layers = []Layer{
	LayerApp,
	LayerCompositionRoot,
	LayerFeature,
	LayerCore,
	LayerShared,
	LayerUtility,
}

// IsLayer reports whether s is a recognized layer token.
func IsLayer(s string) bool {
	for _, l := range Layers {
		if string(l) == s {
			return true
		}
	}
	return false
}

// Kind is the role variant of a governed module target.
type Kind string

const (
	KindInterface Kind = "interface"
	KindImpl      Kind = "impl"
	KindTesting   Kind = "testing"
	KindTests     Kind = "tests"
)

// Kinds enumerates every recognized kind token.
var Kinds = []Kind{KindInterface, KindImpl, KindTesting, KindTests}

// IsKind reports whether s is a recognized kind token.
func IsKind(s string) bool {
	for _, k := range Kinds {
		if string(k) == s {
			return true
		}
	}
	return false
}

// TargetKey identifies a target inside the build graph.
type TargetKey struct {
	ProjectPath string `json:"project_path"`
	TargetName  string `json:"target_name"`
}

// ModuleDescriptor is the structured form of a target identifier that
// belongs to the governed layering scheme.
type ModuleDescriptor struct {
	Layer            Layer  `json:"layer"`
	ModuleName       string `json:"module_name"`
	Kind             Kind   `json:"kind"`
	SourceIdentifier string `json:"source_identifier"`
}

// Edge is a resolved, directed dependency declaration.
type Edge struct {
	Source      TargetKey `json:"source"`
	Destination TargetKey `json:"destination"`
}

// IsSelf reports whether the edge points back at its own source target.
func (e Edge) IsSelf() bool { return e.Source == e.Destination }

// RuleID names a layering rule.
type RuleID string

const RuleNoLateralImplCoupling RuleID = "no-lateral-impl-coupling"

// Violation is a single dependency declaration that breaks a rule.
type Violation struct {
	Rule              RuleID           `json:"rule"`
	Source            TargetKey        `json:"source"`
	SourceModule      ModuleDescriptor `json:"source_module"`
	Destination       TargetKey        `json:"destination"`
	DestinationModule ModuleDescriptor `json:"destination_module"`
}

// CheckResult holds the outcome of one full pipeline run.
type CheckResult struct {
	GraphSource string        `json:"graph_source,omitempty"`
	Projects    int           `json:"projects"`
	Targets     int           `json:"targets"`
	Governed    int           `json:"governed_targets"`
	Edges       int           `json:"edges"`
	Rules       []RuleID      `json:"rules"`
	Violations  []Violation   `json:"violations"`
	Duration    time.Duration `json:"duration_ns"`
	CommitHash  string        `json:"commit_hash,omitempty"`
}

// Passed reports whether the run found no violations.
func (r CheckResult) Passed() bool { return len(r.Violations) == 0 }

// RunEntry is one recorded check run.
type RunEntry struct {
	Timestamp  string `json:"timestamp"`
	CommitHash string `json:"commit_hash,omitempty"`
	Graph      string `json:"graph,omitempty"`
	Edges      int    `json:"edges"`
	Violations int    `json:"violations"`
	DurationMS int64  `json:"duration_ms"`
}

// Passed reports whether the recorded run found no violations.
func (e RunEntry) Passed() bool { return e.Violations == 0 }
