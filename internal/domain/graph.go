package domain

import (
	"errors"
	"fmt"
)

// ProjectGraph is the in-memory form of an exported build graph.
// Projects and targets keep their document order.
type ProjectGraph struct {
	Projects []Project `json:"projects"`
}

// Project is one project record of the graph.
type Project struct {
	Path    string   `json:"path"`
	Targets []Target `json:"targets"`
}

// Target is one target record of a project.
type Target struct {
	Name         string          `json:"name"`
	BundleID     string          `json:"bundle_id,omitempty"`
	HasBundleID  bool            `json:"has_bundle_id"`
	Dependencies []DependencyRef `json:"dependencies,omitempty"`
}

// RefShape distinguishes the dependency reference shapes found in a graph.
type RefShape int

const (
	RefUnknown RefShape = iota
	RefProject
	RefTarget
)

func (s RefShape) String() string {
	switch s {
	case RefProject:
		return "project"
	case RefTarget:
		return "target"
	default:
		return "unknown"
	}
}

// DependencyRef is a dependency declaration as it appeared in the graph.
// Validation of the fields is left to the edge enumerator.
type DependencyRef struct {
	Shape         RefShape `json:"shape"`
	ProjectPath   string   `json:"project_path,omitempty"`
	TargetName    string   `json:"target_name,omitempty"`
	HasTargetName bool     `json:"has_target_name"`
}

// TargetCount returns the number of target records across all projects.
func (g *ProjectGraph) TargetCount() int {
	n := 0
	for _, p := range g.Projects {
		n += len(p.Targets)
	}
	return n
}

// ErrMalformedGraph is the sentinel matched by every MalformedGraphError.
var ErrMalformedGraph = errors.New("malformed graph")

// MalformedGraphError reports input that is not a usable graph document.
type MalformedGraphError struct {
	Reason string
	Err    error
}

func (e *MalformedGraphError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed graph: %s: %v", e.Reason, e.Err)
	}
	return "malformed graph: " + e.Reason
}

func (e *MalformedGraphError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrMalformedGraph) hold for every MalformedGraphError.
func (e *MalformedGraphError) Is(target error) bool { return target == ErrMalformedGraph }
