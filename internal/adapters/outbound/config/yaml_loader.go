package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/layercheck/layercheck/internal/domain"
	"gopkg.in/yaml.v3"
)

const (
	envFileName = ".env"
	// TuistEnvVar overrides tuist.binary from the environment or .env.
	TuistEnvVar = "LAYERCHECK_TUIST"
)

// YAMLLoader implements domain.ConfigLoader by reading .layercheck.yaml.
type YAMLLoader struct {
	getenv func(string) string
}

// New creates a YAMLLoader reading overrides from the process environment.
func New() *YAMLLoader { return &YAMLLoader{getenv: os.Getenv} }

// NewWithEnv creates a YAMLLoader with a custom environment lookup.
func NewWithEnv(getenv func(string) string) *YAMLLoader { return &YAMLLoader{getenv: getenv} }

// Load reads .layercheck.yaml from projectPath on top of DefaultConfig.
// A missing file is not an error. The tuist binary may be overridden by
// LAYERCHECK_TUIST, taken from the process environment first and then from
// a .env file next to the config.
func (l *YAMLLoader) Load(projectPath string) (domain.ProjectConfig, error) {
	cfg := domain.DefaultConfig()

	data, err := os.ReadFile(filepath.Join(projectPath, domain.ConfigFileName))
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return domain.ProjectConfig{}, fmt.Errorf("parsing %s: %w", domain.ConfigFileName, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return domain.ProjectConfig{}, err
	}

	binary, err := l.tuistOverride(projectPath)
	if err != nil {
		return domain.ProjectConfig{}, err
	}
	if binary != "" {
		cfg.Tuist.Binary = binary
	}

	if err := cfg.Validate(); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("invalid %s: %w", domain.ConfigFileName, err)
	}

	return cfg, nil
}

func (l *YAMLLoader) tuistOverride(projectPath string) (string, error) {
	if v := l.getenv(TuistEnvVar); v != "" {
		return v, nil
	}

	env, err := godotenv.Read(filepath.Join(projectPath, envFileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("reading %s: %w", envFileName, err)
	}
	return env[TuistEnvVar], nil
}
