package domain

import "context"

// GraphLoader decodes a raw exported graph document.
type GraphLoader interface {
	Load(raw []byte) (*ProjectGraph, error)
}

// GraphExporter produces a raw graph document for the project at projectPath.
type GraphExporter interface {
	Export(ctx context.Context, projectPath string) ([]byte, error)
}

// ConfigLoader loads project configuration.
type ConfigLoader interface {
	Load(projectPath string) (ProjectConfig, error)
}

// RunHistory persists check runs for a project.
type RunHistory interface {
	Save(projectPath string, entry RunEntry) error
	Load(projectPath string) ([]RunEntry, error)
}

// GitInfo resolves version-control metadata.
type GitInfo interface {
	IsGitRepo(projectPath string) bool
	CommitHash(projectPath string) (string, error)
}
