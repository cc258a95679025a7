package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/layercheck/layercheck/internal/adapters/outbound/graphjson"
	"github.com/layercheck/layercheck/internal/adapters/outbound/tuist"
	"github.com/layercheck/layercheck/internal/application"
	"github.com/layercheck/layercheck/internal/domain"
	"github.com/layercheck/layercheck/internal/domain/check"
	"github.com/layercheck/layercheck/internal/domain/classify"
	"github.com/layercheck/layercheck/internal/domain/graph"
)

// registerTools registers all layercheck MCP tools on the given server.
func registerTools(s *server.MCPServer, h *handlers) {
	// 1. layercheck_check
	s.AddTool(
		mcplib.NewTool("layercheck_check",
			mcplib.WithDescription("Check the project's dependency graph against the layering rules. Returns the result as JSON with every violation and its suggested fix."),
			mcplib.WithString("graph",
				mcplib.Description("Path to a graph JSON file, relative to the project. Omit to use the configured graph or run tuist."),
			),
		),
		h.handleCheck,
	)

	// 2. layercheck_classify
	s.AddTool(
		mcplib.NewTool("layercheck_classify",
			mcplib.WithDescription("Classify a bundle identifier into layer, module and kind"),
			mcplib.WithString("identifier",
				mcplib.Required(),
				mcplib.Description("Dotted bundle identifier, e.g. feature.Payments.impl"),
			),
		),
		h.handleClassify,
	)

	// 3. layercheck_modules
	s.AddTool(
		mcplib.NewTool("layercheck_modules",
			mcplib.WithDescription("List governed modules grouped by layer"),
			mcplib.WithString("graph",
				mcplib.Description("Path to a graph JSON file, relative to the project"),
			),
		),
		h.handleModules,
	)
}

type handlers struct {
	projectPath  string
	configLoader domain.ConfigLoader
	cache        *resultCache
}

func newHandlers(projectPath string, loader domain.ConfigLoader) *handlers {
	return &handlers{
		projectPath:  projectPath,
		configLoader: loader,
		cache:        newResultCache(resultCacheSize),
	}
}

type checkResponse struct {
	Passed bool `json:"passed"`
	*domain.CheckResult
	Fixes [][]string `json:"fixes"`
}

type classifyResponse struct {
	Identifier string                   `json:"identifier"`
	Governed   bool                     `json:"governed"`
	Module     *domain.ModuleDescriptor `json:"module,omitempty"`
	Reason     string                   `json:"reason,omitempty"`
}

type modulesResponse struct {
	Targets  int                `json:"targets"`
	Governed int                `json:"governed"`
	Layers   []graph.LayerGroup `json:"layers"`
}

// pipeline builds a check service and request from the project config.
// A relative graph argument resolves against the project.
func (h *handlers) pipeline(graphArg string) (*application.CheckService, application.CheckRequest, error) {
	ws, err := application.OpenWorkspace(h.configLoader, h.projectPath)
	if err != nil {
		return nil, application.CheckRequest{}, err
	}

	if graphArg != "" && !filepath.IsAbs(graphArg) {
		graphArg = filepath.Join(ws.ProjectPath, graphArg)
	}

	exporter := tuist.New(ws.Config.Tuist.Binary, tuist.WithTimeout(ws.Config.Tuist.Timeout))
	svc := application.NewCheckService(graphjson.New(), exporter, nil)
	return svc, ws.Request(graphArg), nil
}

func (h *handlers) handleCheck(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	start := time.Now()

	svc, req, err := h.pipeline(request.GetString("graph", ""))
	if err != nil {
		return errorResult(err.Error()), nil
	}

	raw, err := svc.Acquire(ctx, req)
	if err != nil {
		return errorResult(fmt.Sprintf("check failed: %v", err)), nil
	}

	analysis, ok := h.cache.get(raw)
	if !ok {
		analysis, err = svc.CheckBytes(raw)
		if err != nil {
			return errorResult(fmt.Sprintf("check failed: %v", err)), nil
		}
		h.cache.add(raw, analysis)
	}

	// The cached analysis is shared; source and timing belong to this request.
	result := *analysis
	result.GraphSource = req.Source()
	result.Duration = time.Since(start)

	fixes := make([][]string, len(result.Violations))
	for i, v := range result.Violations {
		fixes[i] = check.Remediation(v)
	}
	return jsonResult(checkResponse{Passed: result.Passed(), CheckResult: &result, Fixes: fixes})
}

func (h *handlers) handleClassify(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	identifier, err := request.RequireString("identifier")
	if err != nil {
		return errorResult(err.Error()), nil
	}

	c := classify.Classify(identifier)
	resp := classifyResponse{Identifier: identifier, Governed: c.Governed(), Reason: string(c.Reason())}
	if m, ok := c.Module(); ok {
		resp.Module = &m
	}
	return jsonResult(resp)
}

func (h *handlers) handleModules(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	svc, req, err := h.pipeline(request.GetString("graph", ""))
	if err != nil {
		return errorResult(err.Error()), nil
	}

	index, err := svc.Index(ctx, req)
	if err != nil {
		return errorResult(fmt.Sprintf("loading modules failed: %v", err)), nil
	}

	return jsonResult(modulesResponse{
		Targets:  len(index),
		Governed: index.GovernedCount(),
		Layers:   graph.GroupModules(index),
	})
}

// jsonResult marshals v as indented JSON into a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
