package cmd

import (
	"bytes"
	"fmt"
	"image/png"
	"os"

	"github.com/SteveThePug/rust-raytracer-sub000/scene"
	"github.com/SteveThePug/rust-raytracer-sub000/tracer"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Render a still frame of the built-in scene.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	opts := tracer.Options{
		FrameW:  ctx.Int("width"),
		FrameH:  ctx.Int("height"),
		Workers: ctx.Int("workers"),
	}

	sc, err := scene.Builtin(float64(opts.FrameW) / float64(opts.FrameH))
	if err != nil {
		return err
	}

	camera, exists := sc.Cameras[ctx.String("camera")]
	if !exists {
		return fmt.Errorf("scene defines no camera named %q", ctx.String("camera"))
	}

	frame, stats, err := tracer.Render(sc, camera, opts)
	if err != nil {
		return err
	}

	outFile := ctx.String("out")
	f, err := os.Create(outFile)
	if err != nil {
		return err
	}
	defer f.Close()

	if err = png.Encode(f, frame); err != nil {
		return err
	}
	logger.Noticef("wrote frame to %s", outFile)

	displayFrameStats(stats)
	return nil
}

func displayFrameStats(stats tracer.FrameStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Worker", "Rows", "Render time"})
	for _, stat := range stats.Workers {
		table.Append([]string{
			fmt.Sprintf("%d", stat.Id),
			fmt.Sprintf("%d", stat.Rows),
			stat.RenderTime.String(),
		})
	}
	table.SetFooter([]string{"", "TOTAL", stats.RenderTime.String()})

	table.Render()
	logger.Noticef("frame statistics\n%s", buf.String())
}
