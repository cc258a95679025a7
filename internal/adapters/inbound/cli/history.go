package cli

import (
	"fmt"
	"path/filepath"

	"github.com/layercheck/layercheck/internal/adapters/outbound/gitinfo"
	"github.com/layercheck/layercheck/internal/adapters/outbound/history"
	"github.com/layercheck/layercheck/internal/adapters/outbound/tui"
	"github.com/layercheck/layercheck/internal/application"
	"github.com/spf13/cobra"
)

func newHistoryCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded check runs",
		Long:  "Show runs recorded with `check --record` or `history: true` in .layercheck.yaml.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			svc := application.NewHistoryService(history.New(), gitinfo.New())
			entries, err := svc.Entries(absPath)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries))
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", ".", "Project path")

	return cmd
}
