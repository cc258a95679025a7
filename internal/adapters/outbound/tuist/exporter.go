// Package tuist runs the external `tuist graph` export and returns the JSON it
// writes.
package tuist

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

// OutputFile is the file name tuist writes into its output directory.
const OutputFile = "graph.json"

// Exporter implements domain.GraphExporter by shelling out to tuist.
type Exporter struct {
	binary  string
	timeout time.Duration
	output  io.Writer
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithTimeout bounds a single export run. Zero means no bound.
func WithTimeout(d time.Duration) Option {
	return func(e *Exporter) { e.timeout = d }
}

// WithOutput sets where the tool's own stdout and stderr go.
func WithOutput(w io.Writer) Option {
	return func(e *Exporter) { e.output = w }
}

// New creates an Exporter for the given tuist binary.
func New(binary string, opts ...Option) *Exporter {
	e := &Exporter{binary: binary, output: os.Stderr}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Export runs `tuist graph -f json --no-open -o <tmp>` in projectPath and
// returns the contents of the produced graph.json. The temporary directory is
// removed on every return path.
func (e *Exporter) Export(ctx context.Context, projectPath string) ([]byte, error) {
	dir, err := os.MkdirTemp("", "tuist-graph.")
	if err != nil {
		return nil, fmt.Errorf("creating export directory: %w", err)
	}
	defer os.RemoveAll(dir)

	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, e.binary, "graph", "-f", "json", "--no-open", "-o", dir)
	cmd.Dir = projectPath
	cmd.Stdout = e.output
	cmd.Stderr = e.output

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("running %s graph: %w", e.binary, ctxErr)
		}
		return nil, fmt.Errorf("running %s graph: %w", e.binary, err)
	}

	graphPath := filepath.Join(dir, OutputFile)
	data, err := os.ReadFile(graphPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("expected graph output at %s", graphPath)
		}
		return nil, fmt.Errorf("reading graph output: %w", err)
	}

	return data, nil
}
