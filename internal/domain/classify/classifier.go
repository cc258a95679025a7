// Package classify turns raw target identifiers such as
// "com.acme.feature.Payments.impl" into module descriptors.
//
// The classifier runs a small state machine over the dot-separated segments:
// tokenize, read the kind from the last segment, find the rightmost layer
// token, then take the module name that follows it. Each stage either
// advances or stops with an UnclassifiedReason.
package classify

import (
	"strings"

	"github.com/layercheck/layercheck/internal/domain"
)

const delimiter = "."

type stage int

const (
	stageTokenize stage = iota
	stageKind
	stageLayer
	stageModule
	stageDone
)

type machine struct {
	identifier string
	segments   []string
	kind       domain.Kind
	layerAt    int
	module     string
}

// Classify parses identifier into a module descriptor. Identifiers outside the
// governed scheme yield an unclassified result; this is never an error.
func Classify(identifier string) domain.Classification {
	m := &machine{identifier: identifier, layerAt: -1}

	for st := stageTokenize; st != stageDone; {
		next, reason := m.step(st)
		if reason != "" {
			return domain.Unclassified(reason)
		}
		st = next
	}

	return domain.Classified(domain.ModuleDescriptor{
		Layer:            domain.Layer(m.segments[m.layerAt]),
		ModuleName:       m.module,
		Kind:             m.kind,
		SourceIdentifier: identifier,
	})
}

func (m *machine) step(st stage) (stage, domain.UnclassifiedReason) {
	switch st {
	case stageTokenize:
		return m.tokenize()
	case stageKind:
		return m.readKind()
	case stageLayer:
		return m.findLayer()
	case stageModule:
		return m.readModule()
	}
	return stageDone, ""
}

func (m *machine) tokenize() (stage, domain.UnclassifiedReason) {
	for _, seg := range strings.Split(m.identifier, delimiter) {
		if seg != "" {
			m.segments = append(m.segments, seg)
		}
	}
	if len(m.segments) < 2 {
		return stageDone, domain.ReasonTooFewSegments
	}
	return stageKind, ""
}

func (m *machine) readKind() (stage, domain.UnclassifiedReason) {
	last := m.segments[len(m.segments)-1]
	if !domain.IsKind(last) {
		return stageDone, domain.ReasonUnknownKind
	}
	m.kind = domain.Kind(last)
	return stageLayer, ""
}

// findLayer keeps the rightmost layer token so a module named after a layer
// earlier in the path does not shadow the real one.
func (m *machine) findLayer() (stage, domain.UnclassifiedReason) {
	for i, seg := range m.segments[:len(m.segments)-1] {
		if domain.IsLayer(seg) {
			m.layerAt = i
		}
	}
	if m.layerAt < 0 {
		return stageDone, domain.ReasonNoLayer
	}
	return stageModule, ""
}

func (m *machine) readModule() (stage, domain.UnclassifiedReason) {
	moduleAt := m.layerAt + 1
	if moduleAt >= len(m.segments)-1 {
		return stageDone, domain.ReasonMissingModuleName
	}
	m.module = m.segments[moduleAt]
	return stageDone, ""
}
