package graph

import (
	"sort"

	"github.com/layercheck/layercheck/internal/domain"
)

// LayerGroup lists the governed modules of one layer.
type LayerGroup struct {
	Layer   domain.Layer  `json:"layer"`
	Modules []ModuleGroup `json:"modules"`
}

// ModuleGroup lists the targets that classify to one module name.
type ModuleGroup struct {
	Name    string         `json:"name"`
	Targets []ModuleTarget `json:"targets"`
}

// ModuleTarget is one governed target of a module.
type ModuleTarget struct {
	Key  domain.TargetKey `json:"key"`
	Kind domain.Kind      `json:"kind"`
}

// GroupModules arranges the governed targets of index by layer and module.
// Layers follow domain.Layers order; modules and targets are sorted by name.
func GroupModules(index domain.TargetIndex) []LayerGroup {
	byLayer := make(map[domain.Layer]map[string][]ModuleTarget)
	for key, c := range index {
		m, ok := c.Module()
		if !ok {
			continue
		}
		if byLayer[m.Layer] == nil {
			byLayer[m.Layer] = make(map[string][]ModuleTarget)
		}
		byLayer[m.Layer][m.ModuleName] = append(byLayer[m.Layer][m.ModuleName], ModuleTarget{Key: key, Kind: m.Kind})
	}

	var groups []LayerGroup
	for _, layer := range domain.Layers {
		modules, ok := byLayer[layer]
		if !ok {
			continue
		}

		names := make([]string, 0, len(modules))
		for name := range modules {
			names = append(names, name)
		}
		sort.Strings(names)

		lg := LayerGroup{Layer: layer}
		for _, name := range names {
			targets := modules[name]
			sort.Slice(targets, func(i, j int) bool {
				if targets[i].Kind != targets[j].Kind {
					return kindRank(targets[i].Kind) < kindRank(targets[j].Kind)
				}
				if targets[i].Key.ProjectPath != targets[j].Key.ProjectPath {
					return targets[i].Key.ProjectPath < targets[j].Key.ProjectPath
				}
				return targets[i].Key.TargetName < targets[j].Key.TargetName
			})
			lg.Modules = append(lg.Modules, ModuleGroup{Name: name, Targets: targets})
		}
		groups = append(groups, lg)
	}
	return groups
}

func kindRank(k domain.Kind) int {
	for i, known := range domain.Kinds {
		if known == k {
			return i
		}
	}
	return len(domain.Kinds)
}
