package domain

// UnclassifiedReason explains why an identifier is outside the governed scheme.
type UnclassifiedReason string

const (
	ReasonNoIdentifier      UnclassifiedReason = "no identifier"
	ReasonTooFewSegments    UnclassifiedReason = "fewer than two segments"
	ReasonUnknownKind       UnclassifiedReason = "last segment is not a kind"
	ReasonNoLayer           UnclassifiedReason = "no layer segment"
	ReasonMissingModuleName UnclassifiedReason = "no module name after layer"
)

// Classification is either a governed ModuleDescriptor or an unclassified
// marker carrying the reason. The zero value is unclassified.
type Classification struct {
	module *ModuleDescriptor
	reason UnclassifiedReason
}

// Classified wraps a descriptor.
func Classified(m ModuleDescriptor) Classification {
	return Classification{module: &m}
}

// Unclassified returns a classification for an ungoverned target.
func Unclassified(reason UnclassifiedReason) Classification {
	return Classification{reason: reason}
}

// Governed reports whether the classification holds a descriptor.
func (c Classification) Governed() bool { return c.module != nil }

// Module returns the descriptor and true for governed targets.
func (c Classification) Module() (ModuleDescriptor, bool) {
	if c.module == nil {
		return ModuleDescriptor{}, false
	}
	return *c.module, true
}

// Reason is empty for governed targets.
func (c Classification) Reason() UnclassifiedReason {
	if c.module != nil {
		return ""
	}
	if c.reason == "" {
		return ReasonNoIdentifier
	}
	return c.reason
}

// TargetIndex maps every target in a graph to its classification.
type TargetIndex map[TargetKey]Classification

// Lookup returns the classification of key and whether the key exists in the graph.
func (ix TargetIndex) Lookup(key TargetKey) (Classification, bool) {
	c, ok := ix[key]
	return c, ok
}

// Module returns the descriptor for key when the key is known and governed.
func (ix TargetIndex) Module(key TargetKey) (ModuleDescriptor, bool) {
	c, ok := ix[key]
	if !ok {
		return ModuleDescriptor{}, false
	}
	return c.Module()
}

// GovernedCount returns the number of governed targets.
func (ix TargetIndex) GovernedCount() int {
	n := 0
	for _, c := range ix {
		if c.Governed() {
			n++
		}
	}
	return n
}
