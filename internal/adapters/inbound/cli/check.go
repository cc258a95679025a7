package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/layercheck/layercheck/internal/adapters/outbound/config"
	"github.com/layercheck/layercheck/internal/adapters/outbound/gitinfo"
	"github.com/layercheck/layercheck/internal/adapters/outbound/history"
	"github.com/layercheck/layercheck/internal/adapters/outbound/metrics"
	"github.com/layercheck/layercheck/internal/adapters/outbound/tui"
	"github.com/layercheck/layercheck/internal/application"
	"github.com/layercheck/layercheck/internal/domain"
	"github.com/spf13/cobra"
)

// ErrViolationsFound is returned by check after the report has been written.
var ErrViolationsFound = errors.New("architecture violations found")

func newCheckCmd(verbose *bool) *cobra.Command {
	var (
		graphPath   string
		path        string
		jsonOutput  bool
		metricsFile string
		record      bool
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check the dependency graph against the layering rules",
		Long:  "Load the graph from --graph (or run `tuist graph` in --path), classify every target and report each dependency that breaks a layering rule. Exits 1 when violations are found.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newPipeline(cmd, config.New(), path, *verbose)
			if err != nil {
				return err
			}

			result, err := p.svc.Check(cmd.Context(), p.Request(graphPath))
			if err != nil {
				return fmt.Errorf("check failed: %w", err)
			}

			if record || p.Config.History {
				hist := application.NewHistoryService(history.New(), gitinfo.New())
				if _, err := hist.Record(p.ProjectPath, result); err != nil {
					p.logger.Warn("run not recorded", "error", err)
				}
			}

			if jsonOutput {
				if err := renderCheckJSON(cmd, result); err != nil {
					return err
				}
			} else if result.Passed() {
				fmt.Fprintln(cmd.OutOrStdout(), tui.RenderSummary(result))
			} else {
				fmt.Fprint(cmd.ErrOrStderr(), tui.RenderViolations(result))
			}

			metricsFile = p.MetricsFile(metricsFile)
			if metricsFile != "" {
				if err := metrics.WriteTextfile(metricsFile, result); err != nil {
					return err
				}
			}

			if !result.Passed() {
				return fmt.Errorf("%d %w", len(result.Violations), ErrViolationsFound)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&graphPath, "graph", "", "Read the graph from this JSON file instead of running tuist")
	cmd.Flags().StringVar(&path, "path", ".", "Project path")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the result as JSON on stdout")
	cmd.Flags().StringVar(&metricsFile, "metrics-file", "", "Write Prometheus textfile metrics to this path")
	cmd.Flags().BoolVar(&record, "record", false, "Append this run to the project history")

	return cmd
}

func renderCheckJSON(cmd *cobra.Command, result *domain.CheckResult) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
