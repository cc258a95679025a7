package cli

import (
	"log/slog"

	"github.com/layercheck/layercheck/internal/adapters/outbound/graphjson"
	"github.com/layercheck/layercheck/internal/adapters/outbound/tuist"
	"github.com/layercheck/layercheck/internal/application"
	"github.com/layercheck/layercheck/internal/domain"
	"github.com/spf13/cobra"
)

// pipeline is the wiring shared by commands that need a graph.
type pipeline struct {
	*application.Workspace
	svc    *application.CheckService
	logger *slog.Logger
}

func newPipeline(cmd *cobra.Command, loader domain.ConfigLoader, projectPath string, verbose bool) (*pipeline, error) {
	ws, err := application.OpenWorkspace(loader, projectPath)
	if err != nil {
		return nil, err
	}

	logger := newLogger(cmd.ErrOrStderr(), verbose)
	exporter := tuist.New(ws.Config.Tuist.Binary,
		tuist.WithTimeout(ws.Config.Tuist.Timeout),
		tuist.WithOutput(cmd.ErrOrStderr()),
	)

	return &pipeline{
		Workspace: ws,
		svc:       application.NewCheckService(graphjson.New(), exporter, logger),
		logger:    logger,
	}, nil
}
