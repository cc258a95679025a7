package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/layercheck/layercheck/internal/domain"
	"github.com/layercheck/layercheck/internal/domain/check"
	"github.com/layercheck/layercheck/internal/domain/graph"
)

// CheckRequest selects where the graph comes from. A non-empty GraphPath is
// read directly; otherwise the exporter runs in ProjectPath.
type CheckRequest struct {
	GraphPath   string
	ProjectPath string
}

// Source describes the request for reports and history.
func (r CheckRequest) Source() string {
	if r.GraphPath != "" {
		return r.GraphPath
	}
	return "tuist graph (" + r.ProjectPath + ")"
}

// CheckService orchestrates the check pipeline:
// acquire -> load -> index -> enumerate edges -> evaluate rules.
type CheckService struct {
	loader   domain.GraphLoader
	exporter domain.GraphExporter
	rules    []check.Rule
	logger   *slog.Logger
}

func NewCheckService(
	loader domain.GraphLoader,
	exporter domain.GraphExporter,
	logger *slog.Logger,
) *CheckService {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &CheckService{
		loader:   loader,
		exporter: exporter,
		rules:    check.DefaultRules(),
		logger:   logger,
	}
}

// Check acquires the graph for req and runs the full pipeline. Duration covers
// acquisition as well as analysis.
func (s *CheckService) Check(ctx context.Context, req CheckRequest) (*domain.CheckResult, error) {
	start := time.Now()

	raw, err := s.Acquire(ctx, req)
	if err != nil {
		return nil, err
	}

	result, err := s.CheckBytes(raw)
	if err != nil {
		return nil, err
	}
	result.GraphSource = req.Source()
	result.Duration = time.Since(start)
	return result, nil
}

// CheckBytes decodes raw and analyzes it.
func (s *CheckService) CheckBytes(raw []byte) (*domain.CheckResult, error) {
	start := time.Now()

	g, err := s.loader.Load(raw)
	if err != nil {
		return nil, err
	}

	result := s.Analyze(g)
	result.Duration = time.Since(start)
	return result, nil
}

// Analyze runs the pure part of the pipeline over an already loaded graph.
func (s *CheckService) Analyze(g *domain.ProjectGraph) *domain.CheckResult {
	index := graph.BuildIndex(g)
	edges := graph.EnumerateEdges(g)
	violations := check.Evaluate(index, edges, s.rules...)
	if violations == nil {
		violations = []domain.Violation{}
	}

	s.logger.Debug("graph analyzed",
		"projects", len(g.Projects),
		"targets", len(index),
		"governed", index.GovernedCount(),
		"edges", len(edges),
		"violations", len(violations),
	)

	return &domain.CheckResult{
		Projects:   len(g.Projects),
		Targets:    len(index),
		Governed:   index.GovernedCount(),
		Edges:      len(edges),
		Rules:      check.IDs(s.rules),
		Violations: violations,
	}
}

// Index acquires and loads the graph for req and returns its target index.
func (s *CheckService) Index(ctx context.Context, req CheckRequest) (domain.TargetIndex, error) {
	raw, err := s.Acquire(ctx, req)
	if err != nil {
		return nil, err
	}
	g, err := s.loader.Load(raw)
	if err != nil {
		return nil, err
	}
	return graph.BuildIndex(g), nil
}

// Acquire returns the raw graph document for req.
func (s *CheckService) Acquire(ctx context.Context, req CheckRequest) ([]byte, error) {
	if req.GraphPath != "" {
		s.logger.Debug("reading graph file", "path", req.GraphPath)
		data, err := os.ReadFile(req.GraphPath)
		if err != nil {
			return nil, fmt.Errorf("reading graph: %w", err)
		}
		return data, nil
	}

	if s.exporter == nil {
		return nil, errors.New("no graph file given and no exporter configured")
	}

	s.logger.Debug("exporting graph", "project", req.ProjectPath)
	data, err := s.exporter.Export(ctx, req.ProjectPath)
	if err != nil {
		return nil, fmt.Errorf("exporting graph: %w", err)
	}
	return data, nil
}
