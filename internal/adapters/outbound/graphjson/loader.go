// Package graphjson decodes the JSON document produced by `tuist graph -f json`.
//
// Decoding walks the raw bytes with jsonparser instead of unmarshalling into
// maps, so target order follows the document and fields of an unexpected type
// can be skipped one at a time.
package graphjson

import (
	"encoding/json"
	"errors"

	"github.com/buger/jsonparser"
	"github.com/layercheck/layercheck/internal/domain"
)

// Loader implements domain.GraphLoader.
type Loader struct{}

// New creates a Loader.
func New() *Loader { return &Loader{} }

// Load decodes raw into a ProjectGraph. It fails with a
// *domain.MalformedGraphError when raw is not a JSON object holding a
// "projects" array; anything inside the array that does not look like a
// project, target or dependency is skipped.
func (l *Loader) Load(raw []byte) (*domain.ProjectGraph, error) {
	if !json.Valid(raw) {
		return nil, &domain.MalformedGraphError{Reason: "not a well-formed JSON document"}
	}

	_, rootType, _, err := jsonparser.Get(raw)
	if err != nil {
		return nil, &domain.MalformedGraphError{Reason: "unreadable document", Err: err}
	}
	if rootType != jsonparser.Object {
		return nil, &domain.MalformedGraphError{Reason: "top-level value is " + rootType.String() + ", want object"}
	}

	projects, projectsType, _, err := jsonparser.Get(raw, "projects")
	if errors.Is(err, jsonparser.KeyPathNotFoundError) || projectsType == jsonparser.NotExist {
		return nil, &domain.MalformedGraphError{Reason: `missing "projects" collection`}
	}
	if err != nil {
		return nil, &domain.MalformedGraphError{Reason: `unreadable "projects" collection`, Err: err}
	}
	if projectsType != jsonparser.Array {
		return nil, &domain.MalformedGraphError{Reason: `"projects" is ` + projectsType.String() + ", want array"}
	}

	g := &domain.ProjectGraph{}
	_, err = jsonparser.ArrayEach(projects, func(value []byte, dataType jsonparser.ValueType, _ int, _ error) {
		if dataType != jsonparser.Object {
			return
		}
		if p, ok := decodeProject(value); ok {
			g.Projects = append(g.Projects, p)
		}
	})
	if err != nil {
		return nil, &domain.MalformedGraphError{Reason: `unreadable "projects" collection`, Err: err}
	}

	return g, nil
}

func decodeProject(raw []byte) (domain.Project, bool) {
	pathValue, pathType, _, err := jsonparser.Get(raw, "path")
	if err != nil {
		return domain.Project{}, false
	}
	path, ok := scalarText(pathValue, pathType)
	if !ok {
		return domain.Project{}, false
	}

	targets, targetsType, _, err := jsonparser.Get(raw, "targets")
	if err != nil || targetsType != jsonparser.Object {
		return domain.Project{}, false
	}

	// A repeated key replaces the earlier value but keeps its position.
	var order []string
	values := make(map[string]targetValue)
	err = jsonparser.ObjectEach(targets, func(key, value []byte, dataType jsonparser.ValueType, _ int) error {
		name, err := jsonparser.ParseString(key)
		if err != nil {
			return nil
		}
		if _, dup := values[name]; !dup {
			order = append(order, name)
		}
		values[name] = targetValue{raw: value, dataType: dataType}
		return nil
	})
	if err != nil {
		return domain.Project{}, false
	}

	p := domain.Project{Path: path}
	for _, name := range order {
		v := values[name]
		if v.dataType != jsonparser.Object {
			continue
		}
		p.Targets = append(p.Targets, decodeTarget(name, v.raw))
	}
	return p, true
}

type targetValue struct {
	raw      []byte
	dataType jsonparser.ValueType
}

func decodeTarget(name string, raw []byte) domain.Target {
	t := domain.Target{Name: name}

	if v, dataType, _, err := jsonparser.Get(raw, "bundleId"); err == nil && dataType == jsonparser.String {
		if s, err := jsonparser.ParseString(v); err == nil {
			t.BundleID = s
			t.HasBundleID = true
		}
	}

	deps, depsType, _, err := jsonparser.Get(raw, "dependencies")
	if err != nil || depsType != jsonparser.Array {
		return t
	}
	_, _ = jsonparser.ArrayEach(deps, func(value []byte, dataType jsonparser.ValueType, _ int, _ error) {
		if dataType != jsonparser.Object {
			t.Dependencies = append(t.Dependencies, domain.DependencyRef{Shape: domain.RefUnknown})
			return
		}
		t.Dependencies = append(t.Dependencies, decodeDependency(value))
	})

	return t
}

// decodeDependency recognizes {"project": {"path", "target"}} and
// {"target": {"name"}}. A "project" object takes precedence when both appear.
func decodeDependency(raw []byte) domain.DependencyRef {
	if v, dataType, _, err := jsonparser.Get(raw, "project"); err == nil && dataType == jsonparser.Object {
		ref := domain.DependencyRef{Shape: domain.RefProject}
		if pv, pt, _, err := jsonparser.Get(v, "path"); err == nil {
			ref.ProjectPath, _ = scalarText(pv, pt)
		}
		ref.TargetName, ref.HasTargetName = stringField(v, "target")
		return ref
	}

	if v, dataType, _, err := jsonparser.Get(raw, "target"); err == nil && dataType == jsonparser.Object {
		ref := domain.DependencyRef{Shape: domain.RefTarget}
		ref.TargetName, ref.HasTargetName = stringField(v, "name")
		return ref
	}

	return domain.DependencyRef{Shape: domain.RefUnknown}
}

func stringField(raw []byte, key string) (string, bool) {
	v, dataType, _, err := jsonparser.Get(raw, key)
	if err != nil || dataType != jsonparser.String {
		return "", false
	}
	s, err := jsonparser.ParseString(v)
	if err != nil {
		return "", false
	}
	return s, true
}

// scalarText renders a string, number or boolean value as text. Paths written
// as numbers by foreign exporters are accepted verbatim.
func scalarText(value []byte, dataType jsonparser.ValueType) (string, bool) {
	switch dataType {
	case jsonparser.String:
		s, err := jsonparser.ParseString(value)
		if err != nil {
			return "", false
		}
		return s, true
	case jsonparser.Number, jsonparser.Boolean:
		return string(value), true
	default:
		return "", false
	}
}
