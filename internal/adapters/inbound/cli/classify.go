package cli

import (
	"encoding/json"
	"fmt"

	"github.com/layercheck/layercheck/internal/adapters/outbound/tui"
	"github.com/layercheck/layercheck/internal/domain"
	"github.com/layercheck/layercheck/internal/domain/classify"
	"github.com/spf13/cobra"
)

type classificationJSON struct {
	Identifier string                   `json:"identifier"`
	Governed   bool                     `json:"governed"`
	Module     *domain.ModuleDescriptor `json:"module,omitempty"`
	Reason     string                   `json:"reason,omitempty"`
}

func newClassifyCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "classify <identifier>...",
		Short: "Show how bundle identifiers map to layer, module and kind",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if jsonOutput {
				out := make([]classificationJSON, len(args))
				for i, id := range args {
					c := classify.Classify(id)
					out[i] = classificationJSON{Identifier: id, Governed: c.Governed(), Reason: string(c.Reason())}
					if m, ok := c.Module(); ok {
						out[i].Module = &m
					}
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}

			for _, id := range args {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderClassification(id, classify.Classify(id)))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
