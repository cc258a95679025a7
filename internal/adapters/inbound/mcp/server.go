package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/layercheck/layercheck/internal/adapters/outbound/config"
	"github.com/layercheck/layercheck/internal/domain"
)

const serverVersion = "0.1.0"

// Option configures the layercheck MCP server.
type Option func(*handlers)

// WithConfigLoader replaces the .layercheck.yaml loader.
func WithConfigLoader(loader domain.ConfigLoader) Option {
	return func(h *handlers) { h.configLoader = loader }
}

// NewLayercheckMCPServer creates a new MCP server with all layercheck tools and
// resources registered. The projectPath is the directory whose config decides
// where graphs come from; relative graph arguments resolve against it.
func NewLayercheckMCPServer(projectPath string, opts ...Option) *server.MCPServer {
	s := server.NewMCPServer(
		"layercheck",
		serverVersion,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	h := newHandlers(projectPath, config.New())
	for _, o := range opts {
		o(h)
	}
	registerTools(s, h)
	registerResources(s)

	return s
}
