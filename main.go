package main

import (
	"os"

	"github.com/SteveThePug/rust-raytracer-sub000/cmd"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "raytracer"
	app.Usage = "render scenes with analytic ray tracing"
	app.Version = "0.0.1"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:        "render",
			Usage:       "render a single frame of the built-in scene",
			Description: `Trace one primary ray per pixel and write the frame as a png image.`,
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Value: 512,
					Usage: "frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 512,
					Usage: "frame height",
				},
				cli.IntFlag{
					Name:  "workers",
					Value: 0,
					Usage: "parallel render workers; 0 selects one per cpu",
				},
				cli.StringFlag{
					Name:  "camera",
					Value: "main",
					Usage: "scene camera to render from",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "frame.png",
					Usage: "image filename for the rendered frame",
				},
			},
			Action: cmd.RenderFrame,
		},
		{
			Name:   "info",
			Usage:  "print the contents of the built-in scene",
			Action: cmd.SceneInfo,
		},
		{
			Name:      "lint-mesh",
			Usage:     "parse mesh files and report errors",
			ArgsUsage: "mesh_file1 mesh_file2 ...",
			Action:    cmd.LintMesh,
		},
	}

	app.Run(os.Args)
}
