package cmd

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/SteveThePug/rust-raytracer-sub000/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// SceneInfo prints a summary table of the built-in scene's contents.
func SceneInfo(ctx *cli.Context) error {
	setupLogging(ctx)

	sc, err := scene.Builtin(1)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Node", "Primitive", "World bounds"})

	labels := make([]string, 0, len(sc.Nodes))
	for label := range sc.Nodes {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	for _, label := range labels {
		node := sc.Nodes[label]
		bounds := node.WorldBounds()
		table.Append([]string{
			label,
			fmt.Sprintf("%T", node.Primitive),
			fmt.Sprintf("(%.2f %.2f %.2f) - (%.2f %.2f %.2f)",
				bounds.Min.X, bounds.Min.Y, bounds.Min.Z,
				bounds.Max.X, bounds.Max.Y, bounds.Max.Z),
		})
	}
	table.SetFooter([]string{
		fmt.Sprintf("%d nodes", len(sc.Nodes)),
		fmt.Sprintf("%d lights", len(sc.Lights)),
		fmt.Sprintf("%d cameras", len(sc.Cameras)),
	})

	table.Render()
	logger.Noticef("scene contents\n%s", buf.String())
	return nil
}
