package application

import (
	"fmt"
	"path/filepath"

	"github.com/layercheck/layercheck/internal/domain"
)

// Workspace is a project directory together with its loaded configuration.
type Workspace struct {
	ProjectPath string
	Config      domain.ProjectConfig
}

// OpenWorkspace resolves projectPath and loads its configuration through loader.
func OpenWorkspace(loader domain.ConfigLoader, projectPath string) (*Workspace, error) {
	if projectPath == "" {
		projectPath = "."
	}
	absPath, err := filepath.Abs(projectPath)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := loader.Load(absPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Workspace{ProjectPath: absPath, Config: cfg}, nil
}

// Request picks the graph source: graphPath when given, then the configured
// graph, then the export command. A configured path is relative to the project.
func (w *Workspace) Request(graphPath string) CheckRequest {
	if graphPath == "" && w.Config.Graph != "" {
		graphPath = w.resolve(w.Config.Graph)
	}
	return CheckRequest{GraphPath: graphPath, ProjectPath: w.ProjectPath}
}

// MetricsFile returns flagValue, or the configured metrics file relative to
// the project. Empty means no metrics are written.
func (w *Workspace) MetricsFile(flagValue string) string {
	if flagValue != "" || w.Config.MetricsFile == "" {
		return flagValue
	}
	return w.resolve(w.Config.MetricsFile)
}

func (w *Workspace) resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(w.ProjectPath, p)
}
