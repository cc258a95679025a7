package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/layercheck/layercheck/internal/domain"
)

const (
	runsFile = ".layercheck/history/runs.json"

	// DefaultLimit is the number of runs kept per project.
	DefaultLimit = 100
)

// FileHistory implements domain.RunHistory as a JSON array of runs under the
// project directory, oldest first. Only the newest limit runs are kept.
type FileHistory struct {
	limit int
}

// Option configures a FileHistory.
type Option func(*FileHistory)

// WithLimit caps the retained runs. Values below one are ignored.
func WithLimit(n int) Option {
	return func(h *FileHistory) {
		if n > 0 {
			h.limit = n
		}
	}
}

func New(opts ...Option) *FileHistory {
	h := &FileHistory{limit: DefaultLimit}
	for _, o := range opts {
		o(h)
	}
	return h
}

func (h *FileHistory) Save(projectPath string, entry domain.RunEntry) error {
	runs, err := h.Load(projectPath)
	if err != nil {
		return err
	}

	runs = append(runs, entry)
	if len(runs) > h.limit {
		runs = runs[len(runs)-h.limit:]
	}

	data, err := json.MarshalIndent(runs, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding runs: %w", err)
	}

	return writeFileAtomic(filepath.Join(projectPath, runsFile), data)
}

func (h *FileHistory) Load(projectPath string) ([]domain.RunEntry, error) {
	fp := filepath.Join(projectPath, runsFile)

	data, err := os.ReadFile(fp)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var runs []domain.RunEntry
	if err := json.Unmarshal(data, &runs); err != nil {
		return nil, fmt.Errorf("reading %s: %w", fp, err)
	}

	return runs, nil
}

// A partially written history would fail every later Load, so the file is
// replaced by rename.
func writeFileAtomic(fp string, data []byte) error {
	dir := filepath.Dir(fp)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".runs-*.json")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), fp)
}
