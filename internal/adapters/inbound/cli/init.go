package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/layercheck/layercheck/internal/domain"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Generate a .layercheck.yaml configuration file",
		Long:  "Create a .layercheck.yaml with the default settings.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			dest := filepath.Join(absPath, domain.ConfigFileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", domain.ConfigFileName)
				}
			}

			if err := os.WriteFile(dest, []byte(generateConfig(domain.DefaultConfig())), 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", domain.ConfigFileName)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing .layercheck.yaml")

	return cmd
}

func generateConfig(cfg domain.ProjectConfig) string {
	return fmt.Sprintf(`# layercheck configuration

# Read the graph from a file instead of running tuist.
# graph: graph.json

tuist:
  binary: %s
  # timeout: 2m

# Append every check run to .layercheck/history/runs.json.
history: %t

# Write Prometheus textfile metrics after every check.
# metrics_file: layercheck.prom
`, cfg.Tuist.Binary, cfg.History)
}
