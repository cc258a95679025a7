package cli

import (
	"fmt"

	"github.com/layercheck/layercheck/internal/adapters/outbound/config"
	"github.com/layercheck/layercheck/internal/adapters/outbound/tui"
	"github.com/layercheck/layercheck/internal/domain/graph"
	"github.com/spf13/cobra"
)

func newModulesCmd(verbose *bool) *cobra.Command {
	var (
		graphPath string
		path      string
	)

	cmd := &cobra.Command{
		Use:   "modules",
		Short: "Show governed modules grouped by layer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newPipeline(cmd, config.New(), path, *verbose)
			if err != nil {
				return err
			}

			index, err := p.svc.Index(cmd.Context(), p.Request(graphPath))
			if err != nil {
				return fmt.Errorf("loading modules: %w", err)
			}

			out, err := tui.RenderModules(graph.GroupModules(index), index.GovernedCount(), len(index))
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&graphPath, "graph", "", "Read the graph from this JSON file instead of running tuist")
	cmd.Flags().StringVar(&path, "path", ".", "Project path")

	return cmd
}
