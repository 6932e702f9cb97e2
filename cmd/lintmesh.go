package cmd

import (
	"errors"

	"github.com/SteveThePug/rust-raytracer-sub000/primitive"
	"github.com/urfave/cli"
)

// LintMesh loads mesh files and reports parse errors without rendering.
func LintMesh(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() == 0 {
		return errors.New("missing mesh file argument")
	}

	var failed bool
	for _, path := range ctx.Args() {
		mesh, err := primitive.LoadMesh(path)
		if err != nil {
			logger.Errorf("%v", err)
			failed = true
			continue
		}

		bounds := mesh.Bounds()
		logger.Noticef("%s: %d triangles, bounds (%.3f %.3f %.3f) - (%.3f %.3f %.3f)",
			path, len(mesh.Triangles()),
			bounds.Min.X, bounds.Min.Y, bounds.Min.Z,
			bounds.Max.X, bounds.Max.Y, bounds.Max.Z)
	}

	if failed {
		return errors.New("one or more mesh files failed to load")
	}
	return nil
}
