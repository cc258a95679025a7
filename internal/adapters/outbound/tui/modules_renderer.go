package tui

import (
	"fmt"
	"strings"

	"github.com/ddddddO/gtree"
	"github.com/layercheck/layercheck/internal/domain"
	"github.com/layercheck/layercheck/internal/domain/graph"
)

// RenderModules draws the governed modules as a layer -> module -> target tree.
func RenderModules(groups []graph.LayerGroup, governed, total int) (string, error) {
	var b strings.Builder

	title := headerStyle.Render("Governed Modules")
	stats := dimStyle.Render(fmt.Sprintf("%d of %d targets governed", governed, total))
	b.WriteString(boxStyle.Render(title + "\n" + stats))
	b.WriteString("\n\n")

	if len(groups) == 0 {
		b.WriteString("  " + dimStyle.Render("No governed targets found.") + "\n")
		return b.String(), nil
	}

	root := gtree.NewRoot("layers")
	for _, lg := range groups {
		layerNode := root.Add(string(lg.Layer))
		for _, mg := range lg.Modules {
			moduleNode := layerNode.Add(mg.Name)
			for _, t := range mg.Targets {
				moduleNode.Add(fmt.Sprintf("%s [%s] %s", t.Key.TargetName, t.Kind, t.Key.ProjectPath))
			}
		}
	}

	if err := gtree.OutputFromRoot(&b, root); err != nil {
		return "", fmt.Errorf("rendering module tree: %w", err)
	}
	return b.String(), nil
}

// RenderClassification renders the outcome of classifying one identifier.
func RenderClassification(identifier string, c domain.Classification) string {
	m, ok := c.Module()
	if !ok {
		return fmt.Sprintf("  %s %s %s\n",
			skipStyle.Render("○"),
			padRight(identifier, 40),
			warnStyle.Render("unclassified: "+string(c.Reason())),
		)
	}
	return fmt.Sprintf("  %s %s %s\n",
		passStyle.Render("●"),
		padRight(identifier, 40),
		dimStyle.Render(fmt.Sprintf("layer=%s module=%s kind=%s", m.Layer, m.ModuleName, m.Kind)),
	)
}
