package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/layercheck/layercheck/internal/domain"
	"github.com/layercheck/layercheck/internal/domain/check"
)

const rulesURI = "layercheck://rules"

// registerResources registers all layercheck MCP resources on the given server.
func registerResources(s *server.MCPServer) {
	s.AddResource(
		mcplib.NewResource(
			rulesURI,
			"Layering Rules",
			mcplib.WithResourceDescription("The layering rules enforced by layercheck and the recognized layer and kind tokens"),
			mcplib.WithMIMEType("application/json"),
		),
		handleRulesResource,
	)
}

type rulesDocument struct {
	Rules  []check.Rule   `json:"rules"`
	Layers []domain.Layer `json:"layers"`
	Kinds  []domain.Kind  `json:"kinds"`
}

func handleRulesResource(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
	data, err := json.MarshalIndent(rulesDocument{
		Rules:  check.DefaultRules(),
		Layers: domain.Layers,
		Kinds:  domain.Kinds,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling rules: %w", err)
	}

	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      rulesURI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
